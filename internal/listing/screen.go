package listing

import (
	"context"
	"errors"
	"sync"
)

type State int

const (
	Idle State = iota
	Loading
	Loaded
	LoadError
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case LoadError:
		return "load-error"
	default:
		return "idle"
	}
}

var (
	// ErrClosed is returned by a screen that has been closed.
	ErrClosed = errors.New("listing: screen closed")
	// ErrStale is returned by a fetch whose result was superseded by a newer one.
	ErrStale = errors.New("listing: fetch superseded")
)

// Page is one response of a list endpoint.
type Page[T any] struct {
	Items      []T
	TotalPages int
}

// Loader fetches the list for a query. Client-side filtered screens ignore
// the query.
type Loader[T any] func(ctx context.Context, q Query) (Page[T], error)

// Unpaged adapts a plain list fetch into a Loader.
func Unpaged[T any](fetch func(ctx context.Context) ([]T, error)) Loader[T] {
	return func(ctx context.Context, _ Query) (Page[T], error) {
		items, err := fetch(ctx)
		if err != nil {
			return Page[T]{}, err
		}
		return Page[T]{Items: items, TotalPages: 1}, nil
	}
}

// Screen owns the in-memory list of one entity for the lifetime of a view.
// Only its own Refresh writes the list; every fetch bumps a generation so a
// late response from an older fetch never overwrites a newer one.
type Screen[T any] struct {
	spec Spec[T]
	load Loader[T]

	mu         sync.Mutex
	state      State
	items      []T
	totalPages int
	query      Query
	err        error
	gen        uint64
	cancel     context.CancelFunc
	closed     bool
}

func NewScreen[T any](spec Spec[T], load Loader[T]) *Screen[T] {
	return &Screen[T]{spec: spec, load: load, totalPages: 1}
}

func (s *Screen[T]) Spec() Spec[T] { return s.spec }

// Refresh fetches the full list, replacing the in-memory copy. A fetch still
// in flight is cancelled. On failure the list degrades to empty and the
// screen moves to LoadError.
func (s *Screen[T]) Refresh(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	if s.cancel != nil {
		s.cancel()
	}
	s.gen++
	gen := s.gen
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.state = Loading
	q := s.query
	s.mu.Unlock()
	defer cancel()

	page, err := s.load(ctx, q)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	if gen != s.gen {
		return ErrStale
	}
	s.cancel = nil

	if err != nil {
		s.state = LoadError
		s.err = err
		s.items = nil
		s.totalPages = 1
		return err
	}

	s.state = Loaded
	s.err = nil
	s.items = page.Items
	s.totalPages = max(page.TotalPages, 1)
	return nil
}

// SetQuery replaces the filter state. It reports whether the list must be
// refetched, which only happens for server-filtered screens.
func (s *Screen[T]) SetQuery(q Query) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	changed := !s.query.Equal(q)
	s.query = q
	return changed && s.spec.ServerFiltered
}

func (s *Screen[T]) Query() Query {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// Close cancels any fetch in flight; results arriving afterwards are dropped.
func (s *Screen[T]) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// Snapshot is a consistent view of a screen for rendering.
type Snapshot[T any] struct {
	State      State
	Err        error
	Query      Query
	Items      []T
	Visible    []T
	Buttons    []Button
	TotalPages int
}

// Snapshot computes the visible subset and the filter buttons from the full
// list under one lock.
func (s *Screen[T]) Snapshot() Snapshot[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := append([]T(nil), s.items...)
	visible := items
	buttons := s.spec.Choices(s.query.StatusOrAll())
	if !s.spec.ServerFiltered {
		visible = s.spec.Apply(items, s.query)
		buttons = s.spec.Buttons(items, s.query.StatusOrAll())
	}
	return Snapshot[T]{
		State:      s.state,
		Err:        s.err,
		Query:      s.query,
		Items:      items,
		Visible:    visible,
		Buttons:    buttons,
		TotalPages: s.totalPages,
	}
}

// Visible is shorthand for Snapshot().Visible.
func (s *Screen[T]) Visible() []T {
	return s.Snapshot().Visible
}

// Find returns the record with the given key from the full list.
func (s *Screen[T]) Find(key string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.items {
		if s.spec.Key(r) == key {
			return r, true
		}
	}
	var zero T
	return zero, false
}
