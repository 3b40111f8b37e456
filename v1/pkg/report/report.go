// Package report renders a human-readable summary of discovery findings.
package report

import (
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"mustgather-discover/v1/pkg/discovery"
)

// displayCap bounds how many domains/keywords the summary lists in full.
const displayCap = 20

// Summary is the console-facing view of a discovery run.
type Summary struct {
	findings *discovery.Findings
	printer  *message.Printer
}

func New(findings *discovery.Findings) *Summary {
	return &Summary{
		findings: findings,
		printer:  message.NewPrinter(language.English),
	}
}

// Print writes the findings summary. Secret counts follow catalog order so
// repeated runs render identically.
func (s *Summary) Print(w io.Writer) {
	divider := strings.Repeat("=", 70)
	s.printer.Fprintf(w, "%s\nDISCOVERY RESULTS\n%s\n", divider, divider)

	s.printSecrets(w)
	s.printList(w, "Custom domain names", "No custom domain names found", s.findings.Domains)
	s.printList(w, "Proprietary keywords", "No proprietary keywords detected", s.findings.Keywords)

	s.printer.Fprintf(w, "\n%s\n", divider)
}

func (s *Summary) printSecrets(w io.Writer) {
	if len(s.findings.Secrets) == 0 {
		s.printer.Fprintf(w, "\nNo known secret patterns detected\n")
		return
	}

	s.printer.Fprintf(w, "\nPotential secret patterns found:\n")
	for _, sig := range discovery.Catalog {
		if count := s.findings.Secrets[sig.Name]; count > 0 {
			s.printer.Fprintf(w, "  - %s: %d occurrence(s)\n", sig.Name, count)
		}
	}
}

func (s *Summary) printList(w io.Writer, title, emptyMsg string, values []string) {
	if len(values) == 0 {
		s.printer.Fprintf(w, "\n%s\n", emptyMsg)
		return
	}

	s.printer.Fprintf(w, "\n%s (%d found):\n", title, len(values))
	shown := values
	if len(shown) > displayCap {
		shown = shown[:displayCap]
	}
	for _, v := range shown {
		s.printer.Fprintf(w, "  - %s\n", v)
	}
	if rest := len(values) - displayCap; rest > 0 {
		s.printer.Fprintf(w, "  ... and %d more\n", rest)
	}
}
