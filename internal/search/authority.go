package search

import (
	"context"
	"net/url"
	"strings"

	"github.com/ppiankov/verdict/internal/model"
)

// Authority tiers assigned to evidence sources
const (
	AuthorityPrimary   = "primary"   // official statistics, legislation, institutions, academia
	AuthoritySecondary = "secondary" // reference works and established newsrooms
	AuthorityTertiary  = "tertiary"  // everything else
)

// DefaultPrimaryDomains are institutional sources, matched with their subdomains
var DefaultPrimaryDomains = []string{
	"gouv.fr",
	"service-public.fr",
	"insee.fr",
	"legifrance.gouv.fr",
	"conseil-constitutionnel.fr",
	"assemblee-nationale.fr",
	"senat.fr",
	"europa.eu",
	"echr.coe.int",
	"who.int",
	"un.org",
	"oecd.org",
	"ipcc.ch",
	"inserm.fr",
	"cnrs.fr",
	"pubmed.ncbi.nlm.nih.gov",
}

// DefaultSecondaryDomains are reference works and newsrooms
var DefaultSecondaryDomains = []string{
	"wikipedia.org",
	"britannica.com",
	"larousse.fr",
	"universalis.fr",
	"afp.com",
	"reuters.com",
	"lemonde.fr",
	"franceinfo.fr",
	"liberation.fr",
	"lefigaro.fr",
}

// AuthorityClassifier assigns an authority tier to source URLs
type AuthorityClassifier struct {
	primary   map[string]bool
	secondary map[string]bool
}

// NewAuthorityClassifier builds a classifier; nil lists use the defaults
func NewAuthorityClassifier(primary, secondary []string) *AuthorityClassifier {
	if primary == nil {
		primary = DefaultPrimaryDomains
	}
	if secondary == nil {
		secondary = DefaultSecondaryDomains
	}

	a := &AuthorityClassifier{
		primary:   make(map[string]bool, len(primary)),
		secondary: make(map[string]bool, len(secondary)),
	}
	for _, d := range primary {
		a.primary[strings.ToLower(strings.TrimPrefix(d, "www."))] = true
	}
	for _, d := range secondary {
		a.secondary[strings.ToLower(strings.TrimPrefix(d, "www."))] = true
	}
	return a
}

// Classify returns the tier of rawURL; unparsable URLs are tertiary
func (a *AuthorityClassifier) Classify(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Hostname() == "" {
		return AuthorityTertiary
	}
	host := strings.ToLower(strings.TrimPrefix(parsed.Hostname(), "www."))

	if matchDomain(a.primary, host) {
		return AuthorityPrimary
	}
	if matchDomain(a.secondary, host) {
		return AuthoritySecondary
	}

	// Public-sector and academic TLDs
	if strings.HasSuffix(host, ".gov") || strings.HasSuffix(host, ".edu") || strings.HasSuffix(host, ".ac.uk") {
		return AuthorityPrimary
	}
	return AuthorityTertiary
}

// matchDomain reports whether host is one of domains or a subdomain of one
func matchDomain(domains map[string]bool, host string) bool {
	if domains[host] {
		return true
	}
	for d := range domains {
		if strings.HasSuffix(host, "."+d) {
			return true
		}
	}
	return false
}

// Annotate returns a copy of items with the tier of each source set; order is unchanged
func (a *AuthorityClassifier) Annotate(items []model.EvidenceItem) []model.EvidenceItem {
	out := make([]model.EvidenceItem, len(items))
	for i, it := range items {
		it.Authority = a.Classify(it.URL)
		out[i] = it
	}
	return out
}

// Annotated labels the results of a retriever with their source authority
type Annotated struct {
	next      Retriever
	authority *AuthorityClassifier
}

// NewAnnotated wraps next with authority labelling
func NewAnnotated(next Retriever, authority *AuthorityClassifier) *Annotated {
	return &Annotated{next: next, authority: authority}
}

// Search delegates to the wrapped retriever and labels its results
func (r *Annotated) Search(ctx context.Context, query string, max int) ([]model.EvidenceItem, error) {
	items, err := r.next.Search(ctx, query, max)
	if err != nil {
		return nil, err
	}
	return r.authority.Annotate(items), nil
}
