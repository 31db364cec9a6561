package link

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
	"golang.org/x/net/html"
)

// DefaultHost is the repository hosting service whose links carry owners.
const DefaultHost = "github.com"

// reservedOwners are first path segments that name site features rather than
// accounts, e.g. https://github.com/topics/go.
var reservedOwners = map[string]bool{
	"about":       true,
	"apps":        true,
	"collections": true,
	"enterprise":  true,
	"explore":     true,
	"features":    true,
	"login":       true,
	"marketplace": true,
	"orgs":        true,
	"pricing":     true,
	"settings":    true,
	"site":        true,
	"sponsors":    true,
	"topics":      true,
	"trending":    true,
	"users":       true,
}

// Extractor finds owner identities in Markdown table rows.
// An Extractor is safe for reuse; it keeps no per-row state.
type Extractor struct {
	md   goldmark.Markdown
	host string
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithHost overrides the hosting service host name.
func WithHost(host string) Option {
	return func(e *Extractor) {
		e.host = strings.ToLower(host)
	}
}

// NewExtractor creates an Extractor for DefaultHost.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		md:   goldmark.New(goldmark.WithExtensions(extension.Linkify)),
		host: DefaultHost,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// URLs returns every link destination in the row, in document order.
func (e *Extractor) URLs(row string) []string {
	src := []byte(row)
	doc := e.md.Parser().Parse(text.NewReader(src))

	var urls []string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) { //nolint:errcheck // walker never fails
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Link:
			urls = append(urls, string(node.Destination))
		case *ast.AutoLink:
			if node.AutoLinkType == ast.AutoLinkURL {
				urls = append(urls, string(node.URL(src)))
			}
		case *ast.RawHTML:
			var raw bytes.Buffer
			for i := 0; i < node.Segments.Len(); i++ {
				seg := node.Segments.At(i)
				raw.Write(seg.Value(src))
			}
			urls = append(urls, anchorHrefs(raw.String())...)
		}
		return ast.WalkContinue, nil
	})
	return urls
}

// Owner returns the owner of the first repository link in the row.
func (e *Extractor) Owner(row string) (string, bool) {
	for _, u := range e.URLs(row) {
		if owner, ok := e.OwnerFromURL(u); ok {
			return owner, true
		}
	}
	return "", false
}

// OwnerFromURL returns the owner segment of a repository URL such as
// https://github.com/<owner>/<repo>. Both the owner and the repository
// segments must be present.
func (e *Extractor) OwnerFromURL(raw string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", false
	}
	if u.Scheme != "https" && u.Scheme != "http" {
		return "", false
	}
	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	if host != e.host {
		return "", false
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(segments) < 2 || segments[0] == "" || segments[1] == "" {
		return "", false
	}
	owner := segments[0]
	if reservedOwners[strings.ToLower(owner)] {
		return "", false
	}
	return owner, true
}

// anchorHrefs returns the href of every <a> element in an HTML fragment, in
// document order.
func anchorHrefs(fragment string) []string {
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return nil
	}

	var hrefs []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			for _, attr := range n.Attr {
				if attr.Key == "href" {
					hrefs = append(hrefs, attr.Val)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return hrefs
}

var defaultExtractor = NewExtractor()

// OwnerFromRow returns the owner of the first repository link in the row
// using DefaultHost.
func OwnerFromRow(row string) (string, bool) {
	return defaultExtractor.Owner(row)
}
