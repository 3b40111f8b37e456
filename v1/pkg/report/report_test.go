package report

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"mustgather-discover/v1/pkg/discovery"
)

func render(findings *discovery.Findings) string {
	var buf bytes.Buffer
	New(findings).Print(&buf)
	return buf.String()
}

func TestPrint_EmptyFindings(t *testing.T) {
	out := render(&discovery.Findings{})

	assert.Contains(t, out, "DISCOVERY RESULTS")
	assert.Contains(t, out, "No known secret patterns detected")
	assert.Contains(t, out, "No custom domain names found")
	assert.Contains(t, out, "No proprietary keywords detected")
}

func TestPrint_SecretCountsInCatalogOrder(t *testing.T) {
	out := render(&discovery.Findings{Secrets: discovery.Tally{
		"jwt_token":      3,
		"aws_access_key": 1,
	}})

	assert.Contains(t, out, "- aws_access_key: 1 occurrence(s)")
	assert.Contains(t, out, "- jwt_token: 3 occurrence(s)")
	assert.Less(t, strings.Index(out, "aws_access_key"), strings.Index(out, "jwt_token"))
}

func TestPrint_ListsDomainsAndKeywords(t *testing.T) {
	out := render(&discovery.Findings{
		Domains:  []string{"api.mycompany.com", "shop.mycompany.com"},
		Keywords: []string{"acme-billing"},
	})

	assert.Contains(t, out, "Custom domain names (2 found):")
	assert.Contains(t, out, "- api.mycompany.com")
	assert.Contains(t, out, "- shop.mycompany.com")
	assert.Contains(t, out, "Proprietary keywords (1 found):")
	assert.Contains(t, out, "- acme-billing")
}

func TestPrint_CapsLongLists(t *testing.T) {
	keywords := make([]string, 0, 25)
	for i := 0; i < 25; i++ {
		keywords = append(keywords, fmt.Sprintf("keyword-source-%02d", i))
	}

	out := render(&discovery.Findings{Keywords: keywords})

	assert.Contains(t, out, "Proprietary keywords (25 found):")
	assert.Contains(t, out, "keyword-source-19")
	assert.NotContains(t, out, "keyword-source-20")
	assert.Contains(t, out, "... and 5 more")
}
