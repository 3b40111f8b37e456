package cleanconfig

import (
	"fmt"
	"sort"

	"mustgather-discover/v1/pkg/discovery"
)

const (
	targetAll          = "All"
	targetFileContents = "FileContents"
)

// Synthesize builds the configuration document from discovery findings. It is
// a pure function: identical findings always produce an identical document.
// Rule order is structural: detected-signature Regex rules in catalog order,
// then Keywords, then Domain (each only when findings exist), then the fixed
// IP and MAC rules; the omit list is always the same three entries.
func Synthesize(findings *discovery.Findings) *Document {
	doc := &Document{}

	for _, sig := range discovery.Catalog {
		if findings.Secrets[sig.Name] == 0 {
			continue
		}
		doc.Config.Obfuscate = append(doc.Config.Obfuscate, ObfuscateRule{
			Type:   TypeRegex,
			Regex:  sig.Pattern,
			Target: targetFileContents,
		})
	}

	if len(findings.Keywords) > 0 {
		doc.Config.Obfuscate = append(doc.Config.Obfuscate, ObfuscateRule{
			Type:        TypeKeywords,
			Target:      targetAll,
			Replacement: ReplacementTable(findings.Keywords),
		})
	}

	if len(findings.Domains) > 0 {
		domains := append([]string(nil), findings.Domains...)
		sort.Strings(domains)
		doc.Config.Obfuscate = append(doc.Config.Obfuscate, ObfuscateRule{
			Type:            TypeDomain,
			ReplacementType: ReplacementConsistent,
			Target:          targetAll,
			DomainNames:     domains,
		})
	}

	doc.Config.Obfuscate = append(doc.Config.Obfuscate,
		ObfuscateRule{Type: TypeIP, ReplacementType: ReplacementConsistent, Target: targetAll},
		ObfuscateRule{Type: TypeMAC, ReplacementType: ReplacementConsistent, Target: targetAll},
	)

	doc.Config.Omit = []OmitRule{
		{Type: "Kubernetes", KubernetesResource: &KubernetesResource{Kind: "Secret"}},
		{Type: "Kubernetes", KubernetesResource: &KubernetesResource{Kind: "ConfigMap"}},
		{Type: "Kubernetes", KubernetesResource: &KubernetesResource{
			Kind:       "CertificateSigningRequest",
			APIVersion: "certificates.k8s.io/v1",
		}},
	}

	return doc
}

// ReplacementTable assigns each keyword a stable synthetic token. Keywords
// are numbered 1-based in lexicographic order, so re-running discovery on
// unchanged input reproduces the same table.
func ReplacementTable(keywords []string) map[string]string {
	sorted := append([]string(nil), keywords...)
	sort.Strings(sorted)

	table := make(map[string]string, len(sorted))
	seq := 0
	for _, keyword := range sorted {
		if _, dup := table[keyword]; dup {
			continue
		}
		seq++
		table[keyword] = fmt.Sprintf("keyword-%04d", seq)
	}
	return table
}
