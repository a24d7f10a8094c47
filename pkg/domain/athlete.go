package domain

import (
	"fmt"
	"time"
)

// StartDateLayout is the layout of RaceResult.StartDate.
const StartDateLayout = "2006-01-02 15:04:05"

// Athlete is a full athlete record as shown in the detail table.
type Athlete struct {
	ID                         int64        `json:"id" yaml:"id"`
	FirstName                  string       `json:"firstName" yaml:"first_name"`
	LastName                   string       `json:"lastName" yaml:"last_name"`
	DateOfBirth                string       `json:"dateOfBirth" yaml:"date_of_birth"`
	Gender                     string       `json:"gender" yaml:"gender"`
	NationIOC                  string       `json:"nation_ioc" yaml:"nation_ioc"`
	Weight                     int          `json:"weight" yaml:"weight"`
	Height                     int          `json:"height" yaml:"height"`
	Discipline                 string       `json:"discipline" yaml:"discipline"`
	CurrentBoatClass           string       `json:"currentBoatClass" yaml:"current_boat_class"`
	NumberOfRaces              int          `json:"numberOfRaces" yaml:"number_of_races"`
	MedalsTotal                int          `json:"medals_total" yaml:"medals_total"`
	MedalsGold                 int          `json:"medals_gold" yaml:"medals_gold"`
	MedalsSilver               int          `json:"medals_silver" yaml:"medals_silver"`
	MedalsBronze               int          `json:"medals_bronze" yaml:"medals_bronze"`
	PlacementsFinalA           int          `json:"placements_final_A" yaml:"placements_final_a"`
	PlacementsFinalB           int          `json:"placements_final_B" yaml:"placements_final_b"`
	BestTimeBoatClass          int64        `json:"bestTimeBoatClass" yaml:"best_time_boat_class"`                     // ms
	BestTimeBoatClassCurrentOZ int64        `json:"bestTimeBoatClassCurrentOZ" yaml:"best_time_boat_class_current_oz"` // ms, current Olympic cycle
	RaceList                   []RaceResult `json:"raceList" yaml:"race_list"`                                         // newest first, ordered by the data source
}

// FullName returns "first last".
func (a Athlete) FullName() string {
	return a.FirstName + " " + a.LastName
}

// RaceResult is one race in an athlete's race list.
type RaceResult struct {
	RaceID    int64  `json:"race_id" yaml:"race_id"`
	RaceName  string `json:"raceName" yaml:"race_name"`
	BoatClass string `json:"boatClass" yaml:"boat_class"`
	Rank      int    `json:"rank" yaml:"rank"`
	StartDate string `json:"startDate" yaml:"start_date"`
	Venue     string `json:"venue" yaml:"venue"`
}

// Start parses StartDate.
func (r RaceResult) Start() (time.Time, error) {
	t, err := time.Parse(StartDateLayout, r.StartDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse start date %q: %w", r.StartDate, err)
	}
	return t, nil
}

// FormatRaceTime renders a result time in milliseconds as m:ss.cc.
// Zero or negative values render as "-".
func FormatRaceTime(ms int64) string {
	if ms <= 0 {
		return "-"
	}
	minutes := ms / 60000
	seconds := (ms % 60000) / 1000
	centis := (ms % 1000) / 10
	return fmt.Sprintf("%d:%02d.%02d", minutes, seconds, centis)
}

// AthletePreview is the reduced projection returned by a search.
type AthletePreview struct {
	ID        int64  `json:"id" yaml:"id"`
	FirstName string `json:"firstName" yaml:"first_name"`
	LastName  string `json:"lastName" yaml:"last_name"`
}

// FullName returns "first last".
func (p AthletePreview) FullName() string {
	return p.FirstName + " " + p.LastName
}

// SearchForm is the form data submitted from the athlete search panel.
// The zero value is a valid, empty form.
type SearchForm struct {
	Name                  string   `json:"name,omitempty" yaml:"name"`
	BirthYearFrom         int      `json:"birth_year_from,omitempty" yaml:"birth_year_from"`
	BirthYearTo           int      `json:"birth_year_to,omitempty" yaml:"birth_year_to"`
	BoatClass             string   `json:"boat_class,omitempty" yaml:"boat_class"`
	CompetitionCategoryID string   `json:"competition_category_id,omitempty" yaml:"competition_category_id"`
	Run                   string   `json:"run,omitempty" yaml:"run"`
	Ranks                 []string `json:"ranks,omitempty" yaml:"ranks"`
	Nation                string   `json:"nation,omitempty" yaml:"nation"`
}

// Dataset is the athlete data backing the detail table.
type Dataset struct {
	Athletes []Athlete `json:"athlete" yaml:"athlete"`
}

// MockDataset returns a fresh copy of the built-in athlete data.
func MockDataset() Dataset {
	return Dataset{Athletes: []Athlete{{
		ID:                         98245435,
		FirstName:                  "Lukas",
		LastName:                   "Helesic",
		DateOfBirth:                "1997-12-06",
		Gender:                     "male",
		NationIOC:                  "CZE",
		Weight:                     80,
		Height:                     180,
		Discipline:                 "Scull",
		CurrentBoatClass:           "Men's Eight",
		NumberOfRaces:              13,
		MedalsTotal:                5,
		MedalsGold:                 1,
		MedalsSilver:               2,
		MedalsBronze:               2,
		PlacementsFinalA:           2,
		PlacementsFinalB:           4,
		BestTimeBoatClass:          358360,
		BestTimeBoatClassCurrentOZ: 358360,
		RaceList: []RaceResult{
			{
				RaceID:    195638,
				RaceName:  "Junior's Eight Heat 1",
				BoatClass: "Junior's Eight",
				Rank:      2,
				StartDate: "2022-06-16 14:12:00",
				Venue:     "Malta/Poznan, Poland",
			},
			{
				RaceID:    222222,
				RaceName:  "Men's Eight Heat 2",
				BoatClass: "Men's Eight",
				Rank:      1,
				StartDate: "2023-05-10 12:12:00",
				Venue:     "Berlin, Germany",
			},
		},
	}}}
}
