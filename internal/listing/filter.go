package listing

import "strings"

// Apply returns the records of list that pass the status filter, every facet
// filter and the search term, in their original order. It is a pure function
// of its inputs and always works from the full list it is given.
func (s Spec[T]) Apply(list []T, q Query) []T {
	status := q.StatusOrAll()
	term := strings.TrimSpace(q.Search)
	folded := strings.ToLower(term)

	out := make([]T, 0, len(list))
	for _, r := range list {
		if status != All && s.Status(r) != status {
			continue
		}
		if !s.matchFacets(r, q) {
			continue
		}
		if term != "" && !s.matchSearch(r, term, folded) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Matches reports whether r has at least one searchable field containing term.
// An empty or blank term matches everything.
func (s Spec[T]) Matches(r T, term string) bool {
	term = strings.TrimSpace(term)
	if term == "" {
		return true
	}
	return s.matchSearch(r, term, strings.ToLower(term))
}

func (s Spec[T]) matchSearch(r T, term, folded string) bool {
	for _, f := range s.Fields {
		for _, v := range f.Values(r) {
			if v == "" {
				continue
			}
			if f.Verbatim {
				if strings.Contains(v, term) {
					return true
				}
				continue
			}
			if strings.Contains(strings.ToLower(v), folded) {
				return true
			}
		}
	}
	return false
}

func (s Spec[T]) matchFacets(r T, q Query) bool {
	for _, f := range s.Facets {
		want := q.facet(f.Name)
		if want != All && f.Get(r) != want {
			return false
		}
	}
	return true
}
