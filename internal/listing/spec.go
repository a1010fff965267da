// Package listing holds the list-screen pattern shared by every entity: a
// Spec describing how to search, filter, count and tabulate records, and a
// Screen owning the in-memory list fetched from the API.
package listing

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
)

// All is the filter sentinel that excludes nothing.
const All = "all"

// Field is one searchable attribute of a record.
type Field[T any] struct {
	Name   string
	Values func(T) []string
	// Verbatim fields (phone numbers) are matched against the search term
	// without case folding.
	Verbatim bool
}

// Text is a case-insensitive single-valued field.
func Text[T any](name string, get func(T) string) Field[T] {
	return Field[T]{Name: name, Values: func(r T) []string { return []string{get(r)} }}
}

// TextList is a case-insensitive multi-valued field, such as the item names of an order.
func TextList[T any](name string, get func(T) []string) Field[T] {
	return Field[T]{Name: name, Values: get}
}

// Verbatim is a field matched by plain substring containment.
func Verbatim[T any](name string, get func(T) string) Field[T] {
	return Field[T]{Name: name, Values: func(r T) []string { return []string{get(r)} }, Verbatim: true}
}

// Facet is a secondary exact-match filter, such as document type.
type Facet[T any] struct {
	Name   string
	Values []string
	Get    func(T) string
}

type Column[T any] struct {
	Header string
	Value  func(T) string
}

// Spec configures one entity list screen.
type Spec[T any] struct {
	Entity   string
	Statuses []string
	Status   func(T) string
	Fields   []Field[T]
	Facets   []Facet[T]
	Columns  []Column[T]
	Key      func(T) string
	// ServerFiltered screens pass the query to the API and show the
	// response as is.
	ServerFiltered bool
}

// Query is the filter state of a screen.
type Query struct {
	Status string
	Search string
	Facets map[string]string
	Page   int
}

func (q Query) StatusOrAll() string {
	if q.Status == "" {
		return All
	}
	return q.Status
}

func (q Query) facet(name string) string {
	if v := q.Facets[name]; v != "" {
		return v
	}
	return All
}

// Equal reports whether two queries select the same records.
func (q Query) Equal(o Query) bool {
	if q.StatusOrAll() != o.StatusOrAll() || q.Search != o.Search || q.Page != o.Page {
		return false
	}
	for name := range q.Facets {
		if q.facet(name) != o.facet(name) {
			return false
		}
	}
	for name := range o.Facets {
		if q.facet(name) != o.facet(name) {
			return false
		}
	}
	return true
}

// Validate rejects status and facet values outside the fixed enums.
func (s Spec[T]) Validate(q Query) error {
	if status := q.StatusOrAll(); status != All && !slices.Contains(s.Statuses, status) {
		return fmt.Errorf("unknown %s status %q (want one of %s)", s.Entity, status, strings.Join(s.Options(), ", "))
	}
	for name, value := range q.Facets {
		facet, ok := s.facet(name)
		if !ok {
			return fmt.Errorf("%s cannot be filtered by %q", s.Entity, name)
		}
		if value != "" && value != All && !slices.Contains(facet.Values, value) {
			return fmt.Errorf("unknown %s %q (want one of all, %s)", name, value, strings.Join(facet.Values, ", "))
		}
	}
	return nil
}

// Options lists the status filter values in display order, "all" first.
func (s Spec[T]) Options() []string {
	return append([]string{All}, s.Statuses...)
}

func (s Spec[T]) facet(name string) (Facet[T], bool) {
	for _, f := range s.Facets {
		if f.Name == name {
			return f, true
		}
	}
	return Facet[T]{}, false
}

// Title turns an enum value into a label: "in_transit" becomes "In Transit".
func Title(value string) string {
	words := strings.Fields(strings.ReplaceAll(value, "_", " "))
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
