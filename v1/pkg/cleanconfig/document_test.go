package cleanconfig

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mustgather-discover/v1/pkg/discovery"
)

func testDocument() *Document {
	return Synthesize(&discovery.Findings{
		Secrets:  discovery.Tally{"aws_access_key": 2, "jwt_token": 1},
		Domains:  []string{"shop.mycompany.com", "api.mycompany.com"},
		Keywords: []string{"acme-billing", "zeta-ops"},
	})
}

func TestDocument_SaveAndLoadRoundTrip(t *testing.T) {
	doc := testDocument()
	path := filepath.Join(t.TempDir(), "must-gather-clean-config.yaml")

	require.NoError(t, doc.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, doc, loaded)
}

func TestDocument_MarshalKeyOrder(t *testing.T) {
	data, err := testDocument().Marshal()
	require.NoError(t, err)
	out := string(data)

	// Root keys and rule discriminators appear in construction order.
	assert.True(t, strings.HasPrefix(out, "config:"))
	assert.Less(t, strings.Index(out, "obfuscate:"), strings.Index(out, "omit:"))

	regexIdx := strings.Index(out, "type: Regex")
	keywordsIdx := strings.Index(out, "type: Keywords")
	domainIdx := strings.Index(out, "type: Domain")
	ipIdx := strings.Index(out, "type: IP")
	macIdx := strings.Index(out, "type: MAC")

	require.NotEqual(t, -1, regexIdx)
	assert.Less(t, regexIdx, keywordsIdx)
	assert.Less(t, keywordsIdx, domainIdx)
	assert.Less(t, domainIdx, ipIdx)
	assert.Less(t, ipIdx, macIdx)
}

func TestDocument_SaveLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	require.NoError(t, testDocument().Save(path))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "config.yaml", entries[0].Name())
}

func TestDocument_SaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("stale: content\n"), 0o644))

	require.NoError(t, testDocument().Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.NotEmpty(t, loaded.Config.Obfuscate)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
