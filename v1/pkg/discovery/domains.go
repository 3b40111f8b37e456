package discovery

import (
	"io/fs"
	"os"
	"regexp"
	"sort"
	"strings"

	"mustgather-discover/v1/pkg/config"
	"mustgather-discover/v1/pkg/logger"
)

// domainPattern picks hostname-shaped values out of host, domain and dnsName
// fields in Route/Ingress manifests.
var domainPattern = regexp.MustCompile(`(?i)(?:host|domain|dnsName):\s*([a-z0-9.-]+\.[a-z]{2,})`)

// excludeDomainSuffixes covers platform-standard domains that appear in every
// cluster and carry no organization-specific information.
var excludeDomainSuffixes = []string{
	"cluster.local", "svc", "pod", "node",
	"openshift.io", "k8s.io", "kubernetes.io",
	"redhat.com", "coreos.com",
}

// ScanDomains extracts custom domain names from Ingress and Route manifests
// under root. Results are lowercased, deduplicated and sorted; domains ending
// in a platform-standard suffix are dropped.
func ScanDomains(root string, opts *config.Options) []string {
	if opts == nil {
		opts = config.Default()
	}
	log := logger.WithName("domain-scan")

	match := func(segs []string) bool {
		if !strings.HasSuffix(segs[len(segs)-1], ".yaml") {
			return false
		}
		if endsWithDirs(segs, "cluster-scoped-resources", "config.openshift.io", "ingresses") {
			return true
		}
		if endsWithDirs(segs, "route.openshift.io", "routes") ||
			endsWithDirs(segs, "networking.k8s.io", "ingresses") {
			return hasSegmentBefore(segs, "namespaces", len(segs)-3)
		}
		return false
	}

	seen := map[string]bool{}
	walkMatching(root, match, func(path string, d fs.DirEntry) error {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		for _, m := range domainPattern.FindAllStringSubmatch(string(data), -1) {
			domain := strings.TrimSpace(strings.ToLower(m[1]))
			if domain == "" || isPlatformDomain(domain) {
				continue
			}
			seen[domain] = true
		}
		return nil
	})

	domains := make([]string, 0, len(seen))
	for d := range seen {
		domains = append(domains, d)
	}
	sort.Strings(domains)

	log.V(1).InfoS("Domain discovery complete", "domains", len(domains))
	return domains
}

func isPlatformDomain(domain string) bool {
	for _, suffix := range excludeDomainSuffixes {
		if strings.HasSuffix(domain, suffix) {
			return true
		}
	}
	return false
}
