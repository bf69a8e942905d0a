package catalog

import "strings"

// Group is a named bucket of products sharing a tag.
type Group struct {
	Tag      string
	Products []*Product
}

// Groups is an ordered list of groups. Order follows the first time each
// tag was encountered.
type Groups []Group

// Get returns the group for tag.
func (g Groups) Get(tag string) (Group, bool) {
	for _, grp := range g {
		if grp.Tag == tag {
			return grp, true
		}
	}
	return Group{}, false
}

// Tags returns the group tags in order.
func (g Groups) Tags() []string {
	out := make([]string, 0, len(g))
	for _, grp := range g {
		out = append(out, grp.Tag)
	}
	return out
}

// Filter keeps the groups named in tags, in the order tags lists them.
// Unknown tags are ignored, so the result may be empty.
func (g Groups) Filter(tags []string) Groups {
	var out Groups
	for _, tag := range tags {
		if grp, ok := g.Get(tag); ok {
			out = append(out, grp)
		}
	}
	return out
}

// splitTags splits a raw tag string on commas, trimming and dropping
// blanks and duplicates.
func splitTags(raw string) []string {
	var tags []string
	seen := make(map[string]bool)
	for _, t := range strings.Split(raw, ",") {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		tags = append(tags, t)
	}
	return tags
}

// GroupByTag places each product in one group per tag. Products without
// any usable tag go to UntaggedGroup.
func (c *Catalog) GroupByTag() Groups {
	var groups Groups
	index := make(map[string]int)

	add := func(tag string, p *Product) {
		i, ok := index[tag]
		if !ok {
			i = len(groups)
			index[tag] = i
			groups = append(groups, Group{Tag: tag})
		}
		groups[i].Products = append(groups[i].Products, p)
	}

	for _, p := range c.Products() {
		tags := splitTags(p.Tags)
		if len(tags) == 0 {
			add(UntaggedGroup, p)
			continue
		}
		for _, tag := range tags {
			add(tag, p)
		}
	}
	return groups
}

// GetByTag returns products whose raw tag string contains tag,
// case-insensitively.
func (c *Catalog) GetByTag(tag string) []*Product {
	needle := strings.ToLower(tag)
	var out []*Product
	for _, p := range c.Products() {
		if strings.Contains(strings.ToLower(p.Tags), needle) {
			out = append(out, p)
		}
	}
	return out
}

// Tags returns every distinct tag in first-seen order.
func (c *Catalog) Tags() []string {
	var out []string
	seen := make(map[string]bool)
	for _, p := range c.Products() {
		for _, t := range splitTags(p.Tags) {
			if !seen[t] {
				seen[t] = true
				out = append(out, t)
			}
		}
	}
	return out
}
