// Package store holds the athlete search UI state: filter panel visibility,
// the static filter taxonomy, the athlete dataset and the preview results.
package store

import (
	"context"
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/naveenspark/athleten/pkg/domain"
)

// Searcher runs an athlete search for the given form.
type Searcher interface {
	SearchAthletes(ctx context.Context, form domain.SearchForm) ([]domain.AthletePreview, error)
}

// FormPoster sends form data to the backend.
type FormPoster interface {
	PostFormData(ctx context.Context, form domain.SearchForm) error
}

// StubSearcher ignores the form and always returns the same two athletes.
type StubSearcher struct{}

// SearchAthletes returns Markus Last and Kay Winkert.
func (StubSearcher) SearchAthletes(context.Context, domain.SearchForm) ([]domain.AthletePreview, error) {
	return []domain.AthletePreview{
		{ID: 1, FirstName: "Markus", LastName: "Last"},
		{ID: 2, FirstName: "Kay", LastName: "Winkert"},
	}, nil
}

// Store is the state behind the athlete search UI. It is shared by pointer;
// all methods are safe for concurrent use.
type Store struct {
	mu         sync.RWMutex
	filterOpen bool
	options    domain.FilterOptions
	data       domain.Dataset
	preview    []domain.AthletePreview
	searcher   Searcher
	poster     FormPoster
	logger     *zap.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithSearcher replaces the default StubSearcher.
func WithSearcher(s Searcher) Option {
	return func(st *Store) { st.searcher = s }
}

// WithLogger sets the store logger.
func WithLogger(l *zap.Logger) Option {
	return func(st *Store) { st.logger = l }
}

// WithDataset replaces the built-in mock dataset.
func WithDataset(d domain.Dataset) Option {
	return func(st *Store) { st.data = d }
}

// New returns a store seeded with the static filter options and mock data.
// poster may be nil, in which case PostFormData does nothing.
func New(poster FormPoster, opts ...Option) *Store {
	s := &Store{
		options:  domain.DefaultFilterOptions(),
		data:     domain.MockDataset(),
		searcher: StubSearcher{},
		poster:   poster,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FilterState reports whether the filter panel is open.
func (s *Store) FilterState() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filterOpen
}

// SetFilterState sets visibility to the negation of current. Callers pass
// the state they see now, not the state they want.
func (s *Store) SetFilterState(current bool) {
	s.mu.Lock()
	s.filterOpen = !current
	s.mu.Unlock()
}

// FilterOptions returns a copy of the static filter taxonomy.
func (s *Store) FilterOptions() domain.FilterOptions {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.options.Clone()
}

// TableData returns the first athlete of the dataset. ok is false when the
// dataset is empty.
func (s *Store) TableData() (a domain.Athlete, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.data.Athletes) == 0 {
		return domain.Athlete{}, false
	}
	a = s.data.Athletes[0]
	a.RaceList = slices.Clone(a.RaceList)
	return a, true
}

// ReplaceDataset swaps the athlete dataset behind TableData.
func (s *Store) ReplaceDataset(d domain.Dataset) {
	s.mu.Lock()
	s.data = d
	s.mu.Unlock()
}

// PreviewAthleteResults returns "first last" for every preview result, in order.
func (s *Store) PreviewAthleteResults() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.preview))
	for _, p := range s.preview {
		names = append(names, p.FullName())
	}
	return names
}

// Previews returns a copy of the raw preview results.
func (s *Store) Previews() []domain.AthletePreview {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.preview)
}

// PostSearchAthlete runs the configured searcher and replaces the preview
// results wholesale. On error the previous results are kept.
func (s *Store) PostSearchAthlete(ctx context.Context, form domain.SearchForm) error {
	s.mu.RLock()
	searcher := s.searcher
	s.mu.RUnlock()

	results, err := searcher.SearchAthletes(ctx, form)
	if err != nil {
		s.logger.Debug("athlete search failed", zap.Error(err))
		return err
	}

	s.mu.Lock()
	s.preview = slices.Clone(results)
	s.mu.Unlock()
	s.logger.Debug("athlete search", zap.Int("results", len(results)))
	return nil
}

// PostFormData forwards the form to the backend. Neither success nor failure
// changes state; a failure is logged at debug level and dropped.
func (s *Store) PostFormData(ctx context.Context, form domain.SearchForm) {
	if s.poster == nil {
		return
	}
	if err := s.poster.PostFormData(ctx, form); err != nil {
		s.logger.Debug("post form data", zap.Error(err))
	}
}
