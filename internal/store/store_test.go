package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/naveenspark/athleten/pkg/domain"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakePoster struct {
	mu    sync.Mutex
	forms []domain.SearchForm
	err   error
}

func (p *fakePoster) PostFormData(_ context.Context, form domain.SearchForm) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.forms = append(p.forms, form)
	return p.err
}

type fakeSearcher struct {
	results []domain.AthletePreview
	err     error
}

func (f fakeSearcher) SearchAthletes(context.Context, domain.SearchForm) ([]domain.AthletePreview, error) {
	return f.results, f.err
}

func TestSetFilterStateNegatesArgument(t *testing.T) {
	tests := []struct {
		name    string
		initial bool
		arg     bool
		want    bool
	}{
		{"pass true from closed", false, true, false},
		{"pass false from closed", false, false, true},
		{"pass true from open", true, true, false},
		{"pass false from open", true, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(nil)
			if tt.initial {
				s.SetFilterState(false)
			}
			s.SetFilterState(tt.arg)
			if got := s.FilterState(); got != tt.want {
				t.Errorf("FilterState() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterStateToggleWithCurrent(t *testing.T) {
	s := New(nil)
	if s.FilterState() {
		t.Fatal("filter panel should start closed")
	}
	s.SetFilterState(s.FilterState())
	if !s.FilterState() {
		t.Error("expected open after first toggle")
	}
	s.SetFilterState(s.FilterState())
	if s.FilterState() {
		t.Error("expected closed after second toggle")
	}
}

func TestFilterOptionsStatic(t *testing.T) {
	s := New(nil)
	opts := s.FilterOptions()
	if diff := cmp.Diff(domain.DefaultFilterOptions(), opts); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
	opts.Nations["GER"] = "Germany"
	opts.Ranks = nil
	again := s.FilterOptions()
	if again.Nations["GER"] != "Deutschland" || len(again.Ranks) != 4 {
		t.Error("caller mutation leaked into store options")
	}
}

func TestPostSearchAthleteStub(t *testing.T) {
	forms := []domain.SearchForm{
		{},
		{Name: "Helesic", Nation: "CZE"},
		{BirthYearFrom: 3000, BirthYearTo: -1, Ranks: []string{"???"}},
	}
	want := []string{"Markus Last", "Kay Winkert"}
	for _, form := range forms {
		s := New(nil)
		if err := s.PostSearchAthlete(context.Background(), form); err != nil {
			t.Fatalf("PostSearchAthlete(%+v) error: %v", form, err)
		}
		if diff := cmp.Diff(want, s.PreviewAthleteResults()); diff != "" {
			t.Errorf("form %+v: names mismatch (-want +got):\n%s", form, diff)
		}
	}
}

func TestPostSearchAthleteReplacesWholesale(t *testing.T) {
	three := fakeSearcher{results: []domain.AthletePreview{
		{ID: 1, FirstName: "A", LastName: "One"},
		{ID: 2, FirstName: "B", LastName: "Two"},
		{ID: 3, FirstName: "C", LastName: "Three"},
	}}
	s := New(nil, WithSearcher(three))
	s.PostSearchAthlete(context.Background(), domain.SearchForm{}) //nolint:errcheck
	if got := len(s.PreviewAthleteResults()); got != 3 {
		t.Fatalf("got %d names, want 3", got)
	}

	s = New(nil, WithSearcher(three))
	s.PostSearchAthlete(context.Background(), domain.SearchForm{}) //nolint:errcheck
	s.searcher = StubSearcher{}
	s.PostSearchAthlete(context.Background(), domain.SearchForm{}) //nolint:errcheck
	if diff := cmp.Diff([]string{"Markus Last", "Kay Winkert"}, s.PreviewAthleteResults()); diff != "" {
		t.Errorf("results not replaced (-want +got):\n%s", diff)
	}
}

func TestPostSearchAthleteErrorKeepsPrevious(t *testing.T) {
	s := New(nil)
	s.PostSearchAthlete(context.Background(), domain.SearchForm{}) //nolint:errcheck
	s.searcher = fakeSearcher{err: errors.New("HTTP 500")}
	if err := s.PostSearchAthlete(context.Background(), domain.SearchForm{}); err == nil {
		t.Fatal("expected searcher error to be returned")
	}
	if got := len(s.PreviewAthleteResults()); got != 2 {
		t.Errorf("got %d names after failed search, want previous 2", got)
	}
}

func TestPreviewAthleteResultsMatchesPreviews(t *testing.T) {
	s := New(nil)
	if got := s.PreviewAthleteResults(); got == nil || len(got) != 0 {
		t.Errorf("initial names = %#v, want empty non-nil", got)
	}
	s.PostSearchAthlete(context.Background(), domain.SearchForm{}) //nolint:errcheck
	previews := s.Previews()
	names := s.PreviewAthleteResults()
	if len(names) != len(previews) {
		t.Fatalf("len(names)=%d, len(previews)=%d", len(names), len(previews))
	}
	for i, p := range previews {
		if names[i] != p.FirstName+" "+p.LastName {
			t.Errorf("names[%d] = %q", i, names[i])
		}
	}
}

func TestTableDataInvariant(t *testing.T) {
	s := New(&fakePoster{})
	want, ok := s.TableData()
	if !ok || want.ID != 98245435 {
		t.Fatalf("TableData() = (%v, %v), want mock record", want.ID, ok)
	}

	ctx := context.Background()
	s.SetFilterState(false)
	s.PostSearchAthlete(ctx, domain.SearchForm{Name: "x"}) //nolint:errcheck
	s.PostFormData(ctx, domain.SearchForm{Name: "y"})

	got, _ := s.TableData()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("TableData changed after unrelated mutations (-want +got):\n%s", diff)
	}

	got.RaceList[0].Rank = 42
	again, _ := s.TableData()
	if again.RaceList[0].Rank != 2 {
		t.Error("caller mutation leaked into dataset")
	}
}

func TestReplaceDataset(t *testing.T) {
	s := New(nil)
	s.ReplaceDataset(domain.Dataset{Athletes: []domain.Athlete{{ID: 5, FirstName: "New"}}})
	a, ok := s.TableData()
	if !ok || a.ID != 5 {
		t.Errorf("TableData() = (%d, %v), want (5, true)", a.ID, ok)
	}

	s.ReplaceDataset(domain.Dataset{})
	if _, ok := s.TableData(); ok {
		t.Error("TableData() on empty dataset should report ok=false")
	}
}

func TestPostFormDataSwallowsErrors(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	poster := &fakePoster{err: errors.New("HTTP 503: unavailable")}
	s := New(poster, WithLogger(zap.New(core)))

	s.PostSearchAthlete(context.Background(), domain.SearchForm{}) //nolint:errcheck
	before := s.PreviewAthleteResults()
	open := s.FilterState()

	form := domain.SearchForm{Name: "Helesic"}
	s.PostFormData(context.Background(), form)

	if len(poster.forms) != 1 || poster.forms[0].Name != "Helesic" {
		t.Errorf("poster got %+v, want one form", poster.forms)
	}
	if diff := cmp.Diff(before, s.PreviewAthleteResults()); diff != "" {
		t.Errorf("preview changed:\n%s", diff)
	}
	if s.FilterState() != open {
		t.Error("filter state changed")
	}
	if logs.FilterMessage("post form data").Len() != 1 {
		t.Error("expected the dropped error to be logged once")
	}
}

func TestPostFormDataNilPoster(t *testing.T) {
	s := New(nil)
	s.PostFormData(context.Background(), domain.SearchForm{}) // must not panic
}

func TestConcurrentAccess(t *testing.T) {
	s := New(&fakePoster{})
	ctx := context.Background()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.SetFilterState(s.FilterState())
			s.PostSearchAthlete(ctx, domain.SearchForm{}) //nolint:errcheck
			s.PostFormData(ctx, domain.SearchForm{})
			_ = s.PreviewAthleteResults()
			_, _ = s.TableData()
		}()
	}
	wg.Wait()
	if got := len(s.PreviewAthleteResults()); got != 2 {
		t.Errorf("got %d names, want 2", got)
	}
}
