package discovery

import (
	"io"
	"io/fs"
	"os"
	"strings"

	"mustgather-discover/v1/pkg/config"
	"mustgather-discover/v1/pkg/logger"
)

// ScanSecrets samples manifests and pod logs under root and counts
// non-overlapping matches per catalog signature. The scan is bounded: at most
// opts.MaxFiles files are read, files at or above opts.MaxFileSizeBytes are
// skipped, and only the first opts.MaxReadBytes of each file are inspected.
// Files that cannot be read are skipped without consuming the file budget.
func ScanSecrets(root string, opts *config.Options) Tally {
	if opts == nil {
		opts = config.Default()
	}
	log := logger.WithName("secret-scan")

	findings := Tally{}
	scanned := 0

	match := func(segs []string) bool {
		return isClusterScopedManifest(segs) || isNamespacedManifest(segs) || isPodLog(segs)
	}

	walkMatching(root, match, func(path string, d fs.DirEntry) error {
		if scanned >= opts.MaxFiles {
			return fs.SkipAll
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}
		if info.Size() >= opts.MaxFileSizeBytes {
			log.V(3).InfoS("Skipping oversized file", "path", path, "size", info.Size())
			return nil
		}

		content, ok := readPrefix(path, opts.MaxReadBytes)
		if !ok {
			return nil
		}

		for _, sig := range Catalog {
			if n := len(sig.re.FindAllStringIndex(content, -1)); n > 0 {
				findings[sig.Name] += n
			}
		}
		scanned++
		return nil
	})

	log.V(1).InfoS("Secret pattern scan complete", "filesScanned", scanned, "signaturesHit", len(findings))
	return findings
}

// readPrefix reads at most limit bytes of the file as best-effort text.
// Invalid byte sequences are dropped rather than failing the scan.
func readPrefix(path string, limit int64) (string, bool) {
	f, err := os.Open(path)
	if err != nil {
		return "", false
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, limit))
	if err != nil {
		return "", false
	}
	return strings.ToValidUTF8(string(data), ""), true
}
