// Package cleanconfig models the configuration document consumed by
// must-gather-clean and synthesizes one from discovery findings.
package cleanconfig

// RuleType discriminates obfuscation rules.
type RuleType string

const (
	TypeRegex    RuleType = "Regex"
	TypeKeywords RuleType = "Keywords"
	TypeDomain   RuleType = "Domain"
	TypeIP       RuleType = "IP"
	TypeMAC      RuleType = "MAC"
)

// ReplacementConsistent maps equal inputs to equal outputs within one run.
const ReplacementConsistent = "Consistent"

// ObfuscateRule is one entry of the obfuscate list. Only the fields relevant
// to its type are populated; field order here fixes the serialized key order.
type ObfuscateRule struct {
	Type            RuleType          `yaml:"type"`
	Regex           string            `yaml:"regex,omitempty"`
	ReplacementType string            `yaml:"replacementType,omitempty"`
	Target          string            `yaml:"target,omitempty"`
	Replacement     map[string]string `yaml:"replacement,omitempty"`
	DomainNames     []string          `yaml:"domainNames,omitempty"`
}

// KubernetesResource identifies a resource kind to drop entirely.
type KubernetesResource struct {
	Kind       string `yaml:"kind"`
	APIVersion string `yaml:"apiVersion,omitempty"`
}

// OmitRule is one entry of the omit list.
type OmitRule struct {
	Type               string              `yaml:"type"`
	KubernetesResource *KubernetesResource `yaml:"kubernetesResource,omitempty"`
}

// Config holds the two ordered rule lists.
type Config struct {
	Obfuscate []ObfuscateRule `yaml:"obfuscate"`
	Omit      []OmitRule      `yaml:"omit"`
}

// Document is the root of the generated YAML file.
type Document struct {
	Config Config `yaml:"config"`
}
