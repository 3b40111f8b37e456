package discovery

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// A must-gather tree keeps cluster-scoped manifests, namespaced manifests,
// and pod logs in well-known subdirectories at arbitrary depth. The matchers
// below work on slash-separated path segments relative to the scan root.

func splitSegments(rel string) []string {
	return strings.Split(filepath.ToSlash(rel), "/")
}

func hasSegmentBefore(segs []string, name string, end int) bool {
	if end > len(segs) {
		end = len(segs)
	}
	for _, s := range segs[:end] {
		if s == name {
			return true
		}
	}
	return false
}

// endsWithDirs reports whether the file's immediate parent directories equal
// dirs, e.g. dirs={"core","pods"} matches ".../core/pods/<file>".
func endsWithDirs(segs []string, dirs ...string) bool {
	if len(segs) < len(dirs)+1 {
		return false
	}
	offset := len(segs) - 1 - len(dirs)
	for i, d := range dirs {
		if segs[offset+i] != d {
			return false
		}
	}
	return true
}

func isClusterScopedManifest(segs []string) bool {
	return strings.HasSuffix(segs[len(segs)-1], ".yaml") &&
		hasSegmentBefore(segs, "cluster-scoped-resources", len(segs)-1)
}

func isNamespacedManifest(segs []string) bool {
	return strings.HasSuffix(segs[len(segs)-1], ".yaml") &&
		hasSegmentBefore(segs, "namespaces", len(segs)-1)
}

func isPodLog(segs []string) bool {
	return strings.HasSuffix(segs[len(segs)-1], ".log") &&
		len(segs) >= 3 && segs[len(segs)-2] == "logs" &&
		hasSegmentBefore(segs, "pods", len(segs)-2)
}

// walkMatching visits every regular file under root whose relative path
// satisfies match, in lexical order. Unreadable directories are skipped, and
// the visit callback may stop the walk early by returning fs.SkipAll.
func walkMatching(root string, match func([]string) bool, visit func(path string, d fs.DirEntry) error) {
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries contribute nothing.
			return nil
		}
		if d.IsDir() {
			return nil
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return nil
		}
		if !match(splitSegments(rel)) {
			return nil
		}
		return visit(path, d)
	})
}
