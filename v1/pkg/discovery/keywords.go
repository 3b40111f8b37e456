package discovery

import (
	"io/fs"
	"os"
	"regexp"
	"sort"
	"strings"

	corev1 "k8s.io/api/core/v1"
	k8syaml "sigs.k8s.io/yaml"

	"mustgather-discover/v1/pkg/config"
	"mustgather-discover/v1/pkg/logger"
)

// excludeKeywordPrefixes marks namespace names and label values that belong
// to the platform rather than the organization running the cluster.
var excludeKeywordPrefixes = []string{
	"openshift-", "kube-", "default", "istio-", "knative-",
	"prometheus", "grafana", "etcd", "apiserver", "controller",
}

// imagePattern captures the registry host and organization segment of
// image references shaped like registry/org/name.
var imagePattern = regexp.MustCompile(`image:\s*([a-z0-9.-]+)/([a-z0-9._-]+)/`)

var wellKnownRegistries = map[string]bool{
	"quay.io":            true,
	"registry.redhat.io": true,
	"gcr.io":             true,
	"docker.io":          true,
}

var wellKnownOrgs = map[string]bool{
	"openshift-release-dev": true,
	"openshift":             true,
	"redhat":                true,
}

// ScanKeywords unions two extraction passes: custom namespace names and
// label values from namespace manifests, and registry hosts plus
// organization segments from pod image references. Results are deduplicated
// and sorted. Malformed or unreadable manifests contribute nothing.
func ScanKeywords(root string, opts *config.Options) []string {
	if opts == nil {
		opts = config.Default()
	}
	log := logger.WithName("keyword-scan")

	seen := map[string]bool{}
	namespaceKeywords(root, seen)
	imageKeywords(root, opts.MaxPodManifests, seen)

	keywords := make([]string, 0, len(seen))
	for k := range seen {
		keywords = append(keywords, k)
	}
	sort.Strings(keywords)

	log.V(1).InfoS("Keyword discovery complete", "keywords", len(keywords))
	return keywords
}

func namespaceKeywords(root string, seen map[string]bool) {
	match := func(segs []string) bool {
		return endsWithDirs(segs, "cluster-scoped-resources", "core", "namespaces") &&
			strings.HasSuffix(segs[len(segs)-1], ".yaml")
	}

	walkMatching(root, match, func(path string, d fs.DirEntry) error {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil
		}

		var ns corev1.Namespace
		if err := k8syaml.Unmarshal(data, &ns); err != nil {
			return nil
		}
		if ns.Name != "" && !isPlatformKeyword(ns.Name) {
			seen[ns.Name] = true
		}
		for _, value := range ns.Labels {
			if strings.Contains(value, "/") || len(value) <= 3 {
				continue
			}
			if !isPlatformKeyword(value) {
				seen[value] = true
			}
		}
		return nil
	})
}

func imageKeywords(root string, maxManifests int, seen map[string]bool) {
	match := func(segs []string) bool {
		return endsWithDirs(segs, "core", "pods") &&
			hasSegmentBefore(segs, "namespaces", len(segs)-3) &&
			strings.HasSuffix(segs[len(segs)-1], ".yaml")
	}

	scanned := 0
	walkMatching(root, match, func(path string, d fs.DirEntry) error {
		if scanned >= maxManifests {
			return fs.SkipAll
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		for _, m := range imagePattern.FindAllStringSubmatch(string(data), -1) {
			registry, org := m[1], m[2]
			if !wellKnownRegistries[registry] {
				seen[registry] = true
			}
			if !wellKnownOrgs[org] {
				seen[org] = true
			}
		}
		scanned++
		return nil
	})
}

func isPlatformKeyword(value string) bool {
	for _, prefix := range excludeKeywordPrefixes {
		if strings.HasPrefix(value, prefix) {
			return true
		}
	}
	return false
}
