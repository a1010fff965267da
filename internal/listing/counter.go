package listing

import "fmt"

// Counts holds per-status record counts over an unfiltered list.
type Counts struct {
	All      int
	ByStatus map[string]int
}

// Of returns the count for a status value, or the total for All.
func (c Counts) Of(status string) int {
	if status == All || status == "" {
		return c.All
	}
	return c.ByStatus[status]
}

// Count tallies every enum status over list. Statuses outside the enum only
// contribute to the total.
func (s Spec[T]) Count(list []T) Counts {
	c := Counts{All: len(list), ByStatus: make(map[string]int, len(s.Statuses))}
	for _, status := range s.Statuses {
		c.ByStatus[status] = 0
	}
	for _, r := range list {
		if _, ok := c.ByStatus[s.Status(r)]; ok {
			c.ByStatus[s.Status(r)]++
		}
	}
	return c
}

// Button is one status filter control, labelled like "Active (12)". Count is
// -1 when the button carries no count.
type Button struct {
	Value  string
	Label  string
	Count  int
	Active bool
}

// Buttons labels every filter option with its count over the full list and
// marks the one equal to current.
func (s Spec[T]) Buttons(list []T, current string) []Button {
	if current == "" {
		current = All
	}
	counts := s.Count(list)
	buttons := make([]Button, 0, len(s.Statuses)+1)
	for _, value := range s.Options() {
		n := counts.Of(value)
		buttons = append(buttons, Button{
			Value:  value,
			Label:  fmt.Sprintf("%s (%d)", Title(value), n),
			Count:  n,
			Active: value == current,
		})
	}
	return buttons
}

// Choices labels the filter options without counts. Server-filtered screens
// only hold the page the server returned, so counts over it would mislead.
func (s Spec[T]) Choices(current string) []Button {
	if current == "" {
		current = All
	}
	options := s.Options()
	buttons := make([]Button, len(options))
	for i, value := range options {
		buttons[i] = Button{Value: value, Label: Title(value), Count: -1, Active: value == current}
	}
	return buttons
}
