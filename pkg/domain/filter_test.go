package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNationName(t *testing.T) {
	opts := DefaultFilterOptions()
	tests := []struct {
		name   string
		code   string
		want   string
		wantOK bool
	}{
		{"germany", "GER", "Deutschland", true},
		{"czechia", "CZE", "Tschechien", true},
		{"singapore uses SGP", "SGP", "Singapur", true},
		{"rpc has no name", "RPC", "", true},
		{"unknown", "XXX", "", false},
		{"lowercase is not a code", "ger", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := opts.NationName(tt.code)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("NationName(%q) = (%q, %v), want (%q, %v)", tt.code, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestNationCodesSorted(t *testing.T) {
	codes := DefaultFilterOptions().NationCodes()
	if len(codes) != len(nations) {
		t.Fatalf("got %d codes, want %d", len(codes), len(nations))
	}
	for i := 1; i < len(codes); i++ {
		if codes[i-1] >= codes[i] {
			t.Fatalf("codes not sorted at %d: %q >= %q", i, codes[i-1], codes[i])
		}
	}
}

func TestBoatClassLookup(t *testing.T) {
	tax := DefaultFilterOptions().BoatClass
	tests := []struct {
		code string
		want string
		ok   bool
	}{
		{"JM1x", "Junior Men's Single Sculls", true},
		{"BLW2-", "U23 Lightweight Women's Pair", true},
		{"PR3 Mix4+", "PR3 Mixed Coxed Four", true},
		{"M8+", "Men's Eight", true},
		{"X9z", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			bc, ok := tax.Lookup(tt.code)
			if ok != tt.ok || bc.Name != tt.want {
				t.Errorf("Lookup(%q) = (%q, %v), want (%q, %v)", tt.code, bc.Name, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestBoatClassAll(t *testing.T) {
	all := DefaultFilterOptions().BoatClass.All()
	// 7+11+10+3 per gender, plus 3 mixed.
	if got, want := len(all), 2*(7+11+10+3)+3; got != want {
		t.Fatalf("len(All()) = %d, want %d", got, want)
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Code > all[i].Code {
			t.Fatalf("All() not sorted at %d", i)
		}
	}
}

func TestAgeCategoriesByName(t *testing.T) {
	men := DefaultFilterOptions().BoatClass.Men
	u19, ok := men.ByName("u19")
	if !ok {
		t.Fatal("u19 should be a declared category")
	}
	if len(u19) != 0 {
		t.Errorf("u19 has %d classes, want 0", len(u19))
	}
	if _, ok := men.ByName("masters"); ok {
		t.Error("masters should not be a category")
	}
	adult, _ := men.ByName("adult")
	if adult["eight"].Code != "M8+" {
		t.Errorf("adult eight = %q, want M8+", adult["eight"].Code)
	}
}

func TestFilterOptionsCloneIsolated(t *testing.T) {
	orig := DefaultFilterOptions()
	c := orig.Clone()
	if diff := cmp.Diff(orig, c); diff != "" {
		t.Fatalf("clone differs (-orig +clone):\n%s", diff)
	}

	c.Nations["GER"] = "Germany"
	c.Ranks[0] = "99"
	c.BoatClass.Men.Junior["single"] = BoatClass{Code: "X", Name: "X"}

	if orig.Nations["GER"] != "Deutschland" {
		t.Error("mutating clone nations changed original")
	}
	if orig.Ranks[0] != "1" {
		t.Error("mutating clone ranks changed original")
	}
	if orig.BoatClass.Men.Junior["single"].Code != "JM1x" {
		t.Error("mutating clone boat classes changed original")
	}
	if DefaultFilterOptions().Nations["GER"] != "Deutschland" {
		t.Error("package table was mutated")
	}
}

func TestDefaultFilterOptionsStatic(t *testing.T) {
	opts := DefaultFilterOptions()
	if opts.BirthYear.StartYear != 1950 || opts.BirthYear.EndYear != 2025 {
		t.Errorf("BirthYear = %+v, want 1950..2025", opts.BirthYear)
	}
	if diff := cmp.Diff([]string{"1", "2", "3", "4-6"}, opts.Ranks); diff != "" {
		t.Errorf("Ranks mismatch (-want +got):\n%s", diff)
	}
	if len(opts.CompetitionCategoryIDs) != 3 {
		t.Errorf("got %d competition categories, want 3", len(opts.CompetitionCategoryIDs))
	}
	if len(opts.Runs) != 1 || opts.Runs[0].DisplayName != "FA" {
		t.Errorf("Runs = %+v, want [FA]", opts.Runs)
	}
}
