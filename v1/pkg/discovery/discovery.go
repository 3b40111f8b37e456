// Package discovery analyzes a must-gather tree for material that should be
// obfuscated: known secret patterns, custom domain names, and
// organization-specific keywords. All passes are read-only and best-effort;
// a file that cannot be read simply contributes nothing.
package discovery

import (
	"context"
	"fmt"

	"mustgather-discover/v1/pkg/config"
	"mustgather-discover/v1/pkg/workers"
)

// Findings aggregates the results of the three discovery passes.
type Findings struct {
	Secrets  Tally
	Domains  []string
	Keywords []string
}

// scanTask adapts a discovery pass to the worker pool. Each pass writes its
// own Findings field, so no locking is needed before the merge in Run.
type scanTask struct {
	name string
	run  func()
}

func (t *scanTask) ID() string { return t.name }

func (t *scanTask) Execute(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	t.run()
	return nil
}

// Run executes the secret-pattern, domain, and keyword passes concurrently
// and merges their results. The passes are independent, so the pool is a
// throughput optimization only.
func Run(ctx context.Context, root string, opts *config.Options) (*Findings, error) {
	if opts == nil {
		opts = config.Default()
	}

	findings := &Findings{}
	tasks := []workers.Task{
		&scanTask{name: "secret-patterns", run: func() { findings.Secrets = ScanSecrets(root, opts) }},
		&scanTask{name: "domains", run: func() { findings.Domains = ScanDomains(root, opts) }},
		&scanTask{name: "keywords", run: func() { findings.Keywords = ScanKeywords(root, opts) }},
	}

	pool := workers.NewPool(opts.Workers, len(tasks))
	if err := pool.Start(ctx); err != nil {
		return nil, err
	}
	for _, task := range tasks {
		if err := pool.Submit(task); err != nil {
			return nil, fmt.Errorf("failed to submit discovery pass: %w", err)
		}
	}
	for _, result := range pool.Wait() {
		if result.Err != nil {
			return nil, fmt.Errorf("discovery pass %s: %w", result.TaskID, result.Err)
		}
	}
	return findings, nil
}
