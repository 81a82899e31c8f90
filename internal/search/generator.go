// Package search generates OSINT search URLs for investigation subjects.
// The catalog of platforms is fixed and ordered, so the same input always
// produces the same list of links.
package search

import (
	"net/url"
	"strings"

	"osint-tracker/internal/domain/entity"
)

// Link is a single labeled search URL.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// escape percent-encodes a query fragment for embedding in a search URL.
// Spaces become %20 and path separators stay literal, so emitted URLs are
// stable across releases.
func escape(s string) string {
	e := url.QueryEscape(s)
	e = strings.ReplaceAll(e, "+", "%20")
	e = strings.ReplaceAll(e, "%2F", "/")
	return e
}

type catalogEntry struct {
	label string
	build func(name string) string
}

func queryURL(prefix string) func(string) string {
	return func(name string) string { return prefix + escape(name) }
}

func siteQuery(site string) func(string) string {
	return func(name string) string {
		return "https://www.google.com/search?q=" + escape(`site:`+site+` "`+name+`"`)
	}
}

// catalog lists every English-language search target in emission order:
// professional networks, sanctions databases, corporate registries, social
// platforms, then general web search.
var catalog = []catalogEntry{
	{"LinkedIn People Search", queryURL("https://www.linkedin.com/search/results/people/?keywords=")},
	{"LinkedIn via Google", siteQuery("linkedin.com/in")},
	{"LinkedIn Iran Connections", func(name string) string {
		return "https://www.google.com/search?q=" + escape(`site:linkedin.com/in "`+name+`" (Iran OR Tehran OR IRGC)`)
	}},
	{"OFAC Sanctions Search", queryURL("https://sanctionssearch.ofac.treas.gov/Details.aspx?id=")},
	{"OpenSanctions", queryURL("https://www.opensanctions.org/search/?q=")},
	{"UK Sanctions List", queryURL("https://search-uk-sanctions-list.service.gov.uk/?searchTerm=")},
	{"EU Sanctions Map", queryURL("https://www.sanctionsmap.eu/#/main?search=")},
	{"OpenCorporates", queryURL("https://opencorporates.com/companies?q=")},
	{"UK Companies House", queryURL("https://find-and-update.company-information.service.gov.uk/search?q=")},
	{"ICIJ Offshore Leaks", queryURL("https://offshoreleaks.icij.org/search?q=")},
	{"Twitter User Search", func(name string) string {
		return "https://twitter.com/search?q=" + escape(name) + "&f=user"
	}},
	{"Instagram via Google", siteQuery("instagram.com")},
	{"Facebook via Google", siteQuery("facebook.com")},
	{"Google", queryURL("https://www.google.com/search?q=")},
	{"Google News", func(name string) string {
		return "https://www.google.com/search?q=" + escape(name) + "&tbm=nws"
	}},
	{"DuckDuckGo", queryURL("https://duckduckgo.com/?q=")},
}

// persianCatalog is appended when a Farsi name is supplied.
var persianCatalog = []catalogEntry{
	{"Google (Persian)", queryURL("https://www.google.com/search?q=")},
	{"LinkedIn (Persian)", queryURL("https://www.linkedin.com/search/results/people/?keywords=")},
	{"Twitter (Persian)", queryURL("https://twitter.com/search?q=")},
}

// Generate builds the ordered list of search links for a subject.
// nameEN is required; nameFA is optional and extends the list with
// Persian-language queries when non-empty.
func Generate(nameEN, nameFA string) ([]Link, error) {
	nameEN = strings.TrimSpace(nameEN)
	if nameEN == "" {
		return nil, &entity.ValidationError{Field: "name_en", Message: "is required"}
	}
	nameFA = strings.TrimSpace(nameFA)

	links := make([]Link, 0, len(catalog)+len(persianCatalog))
	for _, e := range catalog {
		links = append(links, Link{Label: e.label, URL: e.build(nameEN)})
	}
	if nameFA != "" {
		for _, e := range persianCatalog {
			links = append(links, Link{Label: e.label, URL: e.build(nameFA)})
		}
	}
	return links, nil
}
