package discovery

import "regexp"

// Target scopes where a signature's matches are expected to appear.
type Target string

const (
	// TargetFileContents limits matching to file bodies.
	TargetFileContents Target = "FileContents"
	// TargetAll covers file bodies and file names.
	TargetAll Target = "All"
)

// Signature is one named secret pattern. The catalog is fixed at build time
// and iterated in declaration order wherever ordering matters.
type Signature struct {
	Name    string
	Pattern string
	Target  Target

	re *regexp.Regexp
}

// Catalog is the known-secret signature taxonomy.
var Catalog = []Signature{
	{Name: "aws_access_key", Pattern: `AKIA[0-9A-Z]{16}`, Target: TargetFileContents},
	{Name: "aws_secret_key", Pattern: `aws_secret_access_key\s*[:=]\s*[A-Za-z0-9/+=]{40}`, Target: TargetFileContents},
	{Name: "github_token", Pattern: `(ghp_[A-Za-z0-9]{36}|github_pat_[A-Za-z0-9_]{82})`, Target: TargetFileContents},
	{Name: "slack_token", Pattern: `xox[pbar]-[0-9]{12}-[0-9]{12}-[0-9]{12}-[a-z0-9]{32}`, Target: TargetFileContents},
	{Name: "google_api_key", Pattern: `AIza[0-9A-Za-z-_]{35}`, Target: TargetFileContents},
	{Name: "private_key_header", Pattern: `-----BEGIN (RSA |DSA |EC |OPENSSH )?PRIVATE KEY-----`, Target: TargetFileContents},
	{Name: "azure_client_id", Pattern: `[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}`, Target: TargetFileContents},
	{Name: "jwt_token", Pattern: `eyJ[A-Za-z0-9_-]+\.eyJ[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+`, Target: TargetFileContents},
	{Name: "generic_api_key", Pattern: `api[_-]?key[_-]?[=:]\s*['"]?[A-Za-z0-9_\-]{20,}['"]?`, Target: TargetFileContents},
}

func init() {
	for i := range Catalog {
		Catalog[i].re = regexp.MustCompile(Catalog[i].Pattern)
	}
}

// SignatureByName looks a signature up in the catalog.
func SignatureByName(name string) (Signature, bool) {
	for _, sig := range Catalog {
		if sig.Name == name {
			return sig, true
		}
	}
	return Signature{}, false
}

// Tally maps signature names to occurrence counts. Names are present only
// when their count is positive.
type Tally map[string]int
