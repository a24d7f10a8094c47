package domain

import (
	"maps"
	"slices"
	"sort"
)

// BirthYearRange bounds the birth-year selector.
type BirthYearRange struct {
	StartYear int `json:"start_year" yaml:"start_year"`
	EndYear   int `json:"end_year" yaml:"end_year"`
}

// BoatClass is a single boat class, e.g. {JM1x, Junior Men's Single Sculls}.
type BoatClass struct {
	Code string `json:"code" yaml:"code"`
	Name string `json:"name" yaml:"name"`
}

// BoatClasses maps a boat type ("single", "lw_pair", ...) to its class.
type BoatClasses map[string]BoatClass

// AgeCategories groups one gender's boat classes by age category.
// U19 is declared but currently has no classes.
type AgeCategories struct {
	Junior BoatClasses `json:"junior" yaml:"junior"`
	U19    BoatClasses `json:"u19" yaml:"u19"`
	U23    BoatClasses `json:"u23" yaml:"u23"`
	Adult  BoatClasses `json:"adult" yaml:"adult"`
	PR     BoatClasses `json:"pr" yaml:"pr"`
}

// ByName returns the classes for an age category key.
func (a AgeCategories) ByName(category string) (BoatClasses, bool) {
	switch category {
	case "junior":
		return a.Junior, true
	case "u19":
		return a.U19, true
	case "u23":
		return a.U23, true
	case "adult":
		return a.Adult, true
	case "pr":
		return a.PR, true
	}
	return nil, false
}

func (a AgeCategories) all() []BoatClasses {
	return []BoatClasses{a.Junior, a.U19, a.U23, a.Adult, a.PR}
}

// BoatClassTaxonomy is the gender → age category → boat type hierarchy.
// Mixed classes have no age category.
type BoatClassTaxonomy struct {
	Men   AgeCategories `json:"men" yaml:"men"`
	Women AgeCategories `json:"women" yaml:"women"`
	Mixed BoatClasses   `json:"mixed" yaml:"mixed"`
}

// All returns every boat class sorted by code.
func (t BoatClassTaxonomy) All() []BoatClass {
	var out []BoatClass
	for _, group := range append(append(t.Men.all(), t.Women.all()...), t.Mixed) {
		for _, bc := range group {
			out = append(out, bc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// Lookup finds a boat class by its code.
func (t BoatClassTaxonomy) Lookup(code string) (BoatClass, bool) {
	for _, bc := range t.All() {
		if bc.Code == code {
			return bc, true
		}
	}
	return BoatClass{}, false
}

// Option is a selectable entry with a display name and a backend id.
type Option struct {
	DisplayName string `json:"displayName" yaml:"display_name"`
	ID          string `json:"id" yaml:"id"`
}

// FilterOptions is the static taxonomy used to build the search filter panel.
type FilterOptions struct {
	BirthYear              BirthYearRange    `json:"birth_year" yaml:"birth_year"`
	BoatClass              BoatClassTaxonomy `json:"boat_class" yaml:"boat_class"`
	CompetitionCategoryIDs []Option          `json:"competition_category_ids" yaml:"competition_category_ids"`
	Runs                   []Option          `json:"runs" yaml:"runs"`
	Ranks                  []string          `json:"ranks" yaml:"ranks"`
	Nations                map[string]string `json:"nations" yaml:"nations"` // IOC code -> name; "" when the code has no name
}

// NationCodes returns all nation codes in sorted order.
func (f FilterOptions) NationCodes() []string {
	return slices.Sorted(maps.Keys(f.Nations))
}

// NationName returns the display name for an IOC code. Codes without a name
// (RPC) report ok=true with an empty name.
func (f FilterOptions) NationName(code string) (string, bool) {
	name, ok := f.Nations[code]
	return name, ok
}

// Clone returns a deep copy so callers cannot mutate the shared table.
func (f FilterOptions) Clone() FilterOptions {
	cloneClasses := func(bc BoatClasses) BoatClasses {
		if bc == nil {
			return nil
		}
		return maps.Clone(bc)
	}
	cloneAges := func(a AgeCategories) AgeCategories {
		return AgeCategories{
			Junior: cloneClasses(a.Junior),
			U19:    cloneClasses(a.U19),
			U23:    cloneClasses(a.U23),
			Adult:  cloneClasses(a.Adult),
			PR:     cloneClasses(a.PR),
		}
	}
	return FilterOptions{
		BirthYear: f.BirthYear,
		BoatClass: BoatClassTaxonomy{
			Men:   cloneAges(f.BoatClass.Men),
			Women: cloneAges(f.BoatClass.Women),
			Mixed: cloneClasses(f.BoatClass.Mixed),
		},
		CompetitionCategoryIDs: slices.Clone(f.CompetitionCategoryIDs),
		Runs:                   slices.Clone(f.Runs),
		Ranks:                  slices.Clone(f.Ranks),
		Nations:                maps.Clone(f.Nations),
	}
}

// DefaultFilterOptions returns a fresh copy of the built-in filter taxonomy.
func DefaultFilterOptions() FilterOptions {
	return FilterOptions{
		BirthYear: BirthYearRange{StartYear: 1950, EndYear: 2025},
		BoatClass: boatClassTaxonomy(),
		CompetitionCategoryIDs: []Option{
			{DisplayName: "Olympics", ID: "89346342"},
			{DisplayName: "World Rowing Championships", ID: "89346362"},
			{DisplayName: "Qualifications", ID: "89346362"},
		},
		Runs:    []Option{{DisplayName: "FA", ID: "89346342"}},
		Ranks:   []string{"1", "2", "3", "4-6"},
		Nations: maps.Clone(nations),
	}
}

func boatClassTaxonomy() BoatClassTaxonomy {
	return BoatClassTaxonomy{
		Men: AgeCategories{
			Junior: BoatClasses{
				"single":     {"JM1x", "Junior Men's Single Sculls"},
				"double":     {"JM2x", "Junior Men's Double Sculls"},
				"quad":       {"JM4x", "Junior Men's Quadruple Sculls"},
				"pair":       {"JM2-", "Junior Men's Pair"},
				"coxed_four": {"JM4+", "Junior Men's Coxed Four"},
				"four":       {"JM4-", "Junior Men's Four"},
				"eight":      {"JM8-", "Junior Men's Eight"},
			},
			U19: BoatClasses{},
			U23: BoatClasses{
				"single":     {"BM1x", "U23 Men's Single Sculls"},
				"double":     {"BM2x", "U23 Men's Double Sculls"},
				"quad":       {"BM4x", "U23 Men's Quadruple Sculls"},
				"pair":       {"BM2-", "U23 Men's Pair"},
				"coxed_four": {"BM4+", "U23 Men's Coxed Four"},
				"four":       {"BM4-", "U23 Men's Four"},
				"eight":      {"BM8+", "U23 Men's Eight"},
				"lw_single":  {"BLM1x", "U23 Lightweight Men's Single Sculls"},
				"lw_double":  {"BLM2x", "U23 Lightweight Men's Double Sculls"},
				"lw_quad":    {"BLM4x", "U23 Lightweight Men's Quadruple Sculls"},
				"lw_pair":    {"BLM2-", "U23 Lightweight Men's Pair"},
			},
			Adult: BoatClasses{
				"single":    {"M1x", "Men's Single Sculls"},
				"double":    {"M2x", "Men's Double Sculls"},
				"quad":      {"M4x", "Men's Quadruple Sculls"},
				"pair":      {"M2-", "Men's Pair"},
				"four":      {"M4-", "Men's Four"},
				"eight":     {"M8+", "Men's Eight"},
				"lw_single": {"LM1x", "Lightweight Men's Single Sculls"},
				"lw_double": {"LM2x", "Lightweight Men's Double Sculls"},
				"lw_quad":   {"LM4x", "Lightweight Men's Quadruple Sculls"},
				"lw_pair":   {"LM2-", "Lightweight Men's Pair"},
			},
			PR: BoatClasses{
				"1": {"PR1 M1x", "PR1 Men's Single Sculls"},
				"2": {"PR2 M1x", "PR2 Men's Single Sculls"},
				"3": {"PR3 M2-", "PR3 Men's Pair"},
			},
		},
		Women: AgeCategories{
			Junior: BoatClasses{
				"single":     {"JW1x", "Junior Women's Single Sculls"},
				"double":     {"JW2x", "Junior Women's Double Sculls"},
				"quad":       {"JW4x", "Junior Women's Quadruple Sculls"},
				"pair":       {"JW2-", "Junior Women's Pair"},
				"coxed_four": {"JW4+", "Junior Women's Coxed Four"},
				"four":       {"JW4-", "Junior Women's Four"},
				"eight":      {"JW8-", "Junior Women's Eight"},
			},
			U19: BoatClasses{},
			U23: BoatClasses{
				"single":     {"BW1x", "U23 Women's Single Sculls"},
				"double":     {"BW2x", "U23 Women's Double Sculls"},
				"quad":       {"BW4x", "U23 Women's Quadruple Sculls"},
				"pair":       {"BW2-", "U23 Women's Pair"},
				"coxed_four": {"BW4+", "U23 Women's Coxed Four"},
				"four":       {"BW4-", "U23 Women's Four"},
				"eight":      {"BW8+", "U23 Women's Eight"},
				"lw_single":  {"BLW1x", "U23 Lightweight Women's Single Sculls"},
				"lw_double":  {"BLW2x", "U23 Lightweight Women's Double Sculls"},
				"lw_quad":    {"BLW4x", "U23 Lightweight Women's Quadruple Sculls"},
				"lw_pair":    {"BLW2-", "U23 Lightweight Women's Pair"},
			},
			Adult: BoatClasses{
				"single":    {"W1x", "Women's Single Sculls"},
				"double":    {"W2x", "Women's Double Sculls"},
				"quad":      {"W4x", "Women's Quadruple Sculls"},
				"pair":      {"W2-", "Women's Pair"},
				"four":      {"W4-", "Women's Four"},
				"eight":     {"W8+", "Women's Eight"},
				"lw_single": {"LW1x", "Lightweight Women's Single Sculls"},
				"lw_double": {"LW2x", "Lightweight Women's Double Sculls"},
				"lw_quad":   {"LW4x", "Lightweight Women's Quadruple Sculls"},
				"lw_pair":   {"LW2-", "Lightweight Women's Pair"},
			},
			PR: BoatClasses{
				"1": {"PR1 W1x", "PR1 Women's Single Sculls"},
				"2": {"PR2 W1x", "PR2 Women's Single Sculls"},
				"3": {"PR3 W2-", "PR3 Women's Pair"},
			},
		},
		Mixed: BoatClasses{
			"double_2": {"PR2 Mix2x", "PR2 Mixed Double Sculls"},
			"double_3": {"PR3 Mix2x", "PR3 Mixed Double Sculls"},
			"four":     {"PR3 Mix4+", "PR3 Mixed Coxed Four"},
		},
	}
}
