// Package config holds the tunable scan options. Every option has a default
// taken from the discovery heuristics, so the tool runs without any config
// file; viper overlays values from config.yaml or MUSTGATHER_* variables.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Options bounds the work the discovery passes perform. The caps are
// performance safeguards, not correctness requirements.
type Options struct {
	// MaxFiles caps how many files the secret-pattern scan reads in total.
	MaxFiles int
	// MaxFileSizeBytes skips any file at or above this size.
	MaxFileSizeBytes int64
	// MaxReadBytes bounds how much of each file is read for matching.
	MaxReadBytes int64
	// MaxPodManifests caps the pod manifests inspected by the image pass.
	MaxPodManifests int
	// Workers sizes the pool running the discovery passes.
	Workers int
}

func Default() *Options {
	return &Options{
		MaxFiles:         500,
		MaxFileSizeBytes: 10 * 1024 * 1024,
		MaxReadBytes:     1024 * 1024,
		MaxPodManifests:  100,
		Workers:          3,
	}
}

// FromViper overlays viper-provided values onto the defaults.
func FromViper() (*Options, error) {
	opts := Default()

	viper.SetDefault("scan.maxFiles", opts.MaxFiles)
	viper.SetDefault("scan.maxFileSizeBytes", opts.MaxFileSizeBytes)
	viper.SetDefault("scan.maxReadBytes", opts.MaxReadBytes)
	viper.SetDefault("scan.maxPodManifests", opts.MaxPodManifests)
	viper.SetDefault("workers", opts.Workers)

	opts.MaxFiles = viper.GetInt("scan.maxFiles")
	opts.MaxFileSizeBytes = viper.GetInt64("scan.maxFileSizeBytes")
	opts.MaxReadBytes = viper.GetInt64("scan.maxReadBytes")
	opts.MaxPodManifests = viper.GetInt("scan.maxPodManifests")
	opts.Workers = viper.GetInt("workers")

	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

func (o *Options) Validate() error {
	if o.MaxFiles <= 0 {
		return fmt.Errorf("scan.maxFiles must be positive, got %d", o.MaxFiles)
	}
	if o.MaxFileSizeBytes <= 0 {
		return fmt.Errorf("scan.maxFileSizeBytes must be positive, got %d", o.MaxFileSizeBytes)
	}
	if o.MaxReadBytes <= 0 {
		return fmt.Errorf("scan.maxReadBytes must be positive, got %d", o.MaxReadBytes)
	}
	if o.MaxPodManifests <= 0 {
		return fmt.Errorf("scan.maxPodManifests must be positive, got %d", o.MaxPodManifests)
	}
	if o.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", o.Workers)
	}
	return nil
}
