package restkit

import "strings"

// Links collects the navigational link declarations of one resource.
// It is populated during composition and treated as immutable afterwards:
// resolution never mutates the store, so it is safe for unsynchronized
// concurrent reads once serving starts.
//
// The store is a duplicate-permitting ordered multiset. Registering the same
// (kind, name, href) twice yields two entries in the resolved output.
type Links struct {
	group    []Link
	resource []Link
}

// NewLinks creates an empty link store.
func NewLinks() *Links {
	return &Links{}
}

// RegisterGroupLink declares a collection-level link. Href is relative
// unless it starts with a URI scheme.
func (l *Links) RegisterGroupLink(name, href string) {
	l.group = append(l.group, Link{Name: name, Href: href})
}

// RegisterResourceLink declares an instance-level link.
func (l *Links) RegisterResourceLink(name, href string) {
	l.resource = append(l.resource, Link{Name: name, Href: href})
}

// GroupLinks resolves all group links against base and appends the synthetic
// trailing entry {name: "index", href: base}.
func (l *Links) GroupLinks(base string) []Link {
	out := make([]Link, 0, len(l.group)+1)
	for _, link := range l.group {
		out = append(out, Link{Name: link.Name, Href: resolveHref(link.Href, base)})
	}
	return append(out, Link{Name: "index", Href: base})
}

// ResourceLinks resolves all resource links against base and appends the
// synthetic trailing entry {name: "self", href: base}.
func (l *Links) ResourceLinks(base string) []Link {
	out := make([]Link, 0, len(l.resource)+1)
	for _, link := range l.resource {
		out = append(out, Link{Name: link.Name, Href: resolveHref(link.Href, base)})
	}
	return append(out, Link{Name: "self", Href: base})
}

// GroupLinksContext resolves group links against the request's base URL and
// merges in references advertised earlier in the pipeline, excluding any
// whose name equals the serving resource's own singular name. The "index"
// trailer stays last.
func (l *Links) GroupLinksContext(rc Context) []Link {
	base := rc.BaseURL
	out := make([]Link, 0, len(l.group)+len(rc.References)+1)
	for _, link := range l.group {
		out = append(out, Link{Name: link.Name, Href: resolveHref(link.Href, base)})
	}
	self := ""
	if rc.Module != nil {
		self = rc.Module.Name()
	}
	for _, ref := range rc.References {
		if ref.Name == self {
			continue
		}
		out = append(out, ref.Link())
	}
	return append(out, Link{Name: "index", Href: base})
}

// ResourceLinksContext resolves resource links against the request's base URL.
func (l *Links) ResourceLinksContext(rc Context) []Link {
	return l.ResourceLinks(rc.BaseURL)
}

// resolveHref prefixes relative hrefs with base. Anything already carrying a
// URI scheme passes through verbatim.
func resolveHref(href, base string) string {
	if strings.HasPrefix(href, "http") {
		return href
	}
	return base + href
}
