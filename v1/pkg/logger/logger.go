// Package logger wraps klog so the rest of the tool logs through one surface.
package logger

import (
	"flag"
	"fmt"

	"k8s.io/klog/v2"
)

func InitFlags(fs *flag.FlagSet) {
	klog.InitFlags(fs)
}

func InfoS(msg string, keysAndValues ...interface{}) {
	klog.InfoS(msg, keysAndValues...)
}

func ErrorS(err error, msg string, keysAndValues ...interface{}) {
	klog.ErrorS(err, msg, keysAndValues...)
}

func V(level int) klog.Verbose {
	return klog.V(klog.Level(level))
}

func Flush() {
	klog.Flush()
}

// NamedLogger prefixes every message with a component name.
type NamedLogger struct {
	name string
}

func WithName(name string) *NamedLogger {
	return &NamedLogger{name: name}
}

func (l *NamedLogger) InfoS(msg string, keysAndValues ...interface{}) {
	klog.InfoS(fmt.Sprintf("[%s] %s", l.name, msg), keysAndValues...)
}

func (l *NamedLogger) ErrorS(err error, msg string, keysAndValues ...interface{}) {
	klog.ErrorS(err, fmt.Sprintf("[%s] %s", l.name, msg), keysAndValues...)
}

func (l *NamedLogger) V(level int) klog.Verbose {
	return klog.V(klog.Level(level))
}
