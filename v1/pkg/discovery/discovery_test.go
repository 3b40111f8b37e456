package discovery

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mustgather-discover/v1/pkg/config"
)

func populateTestTree(t *testing.T, root string) {
	t.Helper()
	writeTreeFile(t, root, "namespaces/acme-billing/pods/api-1/logs/current.log",
		"credential AKIA1234567890ABCDEF seen\n")
	writeTreeFile(t, root, "namespaces/acme-billing/route.openshift.io/routes/site.yaml",
		"spec:\n  host: shop.mycompany.com\n")
	writeNamespaceManifest(t, root, "acme-billing", nil)
}

func TestRun_MergesAllPasses(t *testing.T) {
	root := t.TempDir()
	populateTestTree(t, root)

	findings, err := Run(context.Background(), root, config.Default())
	require.NoError(t, err)

	assert.Equal(t, Tally{"aws_access_key": 1}, findings.Secrets)
	assert.Equal(t, []string{"shop.mycompany.com"}, findings.Domains)
	assert.Equal(t, []string{"acme-billing"}, findings.Keywords)
}

func TestRun_DeterministicAcrossRuns(t *testing.T) {
	root := t.TempDir()
	populateTestTree(t, root)

	first, err := Run(context.Background(), root, config.Default())
	require.NoError(t, err)
	second, err := Run(context.Background(), root, config.Default())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRun_EmptyTree(t *testing.T) {
	findings, err := Run(context.Background(), t.TempDir(), config.Default())
	require.NoError(t, err)

	assert.Empty(t, findings.Secrets)
	assert.Empty(t, findings.Domains)
	assert.Empty(t, findings.Keywords)
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, t.TempDir(), config.Default())
	assert.Error(t, err)
}

func TestRun_SingleWorkerMatchesConcurrent(t *testing.T) {
	// Correctness does not depend on the pool size.
	root := t.TempDir()
	populateTestTree(t, root)

	serial := config.Default()
	serial.Workers = 1

	sequential, err := Run(context.Background(), root, serial)
	require.NoError(t, err)
	concurrent, err := Run(context.Background(), root, config.Default())
	require.NoError(t, err)

	assert.Equal(t, concurrent, sequential)
}
