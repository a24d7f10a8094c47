package domain

import (
	"testing"
	"time"
)

func TestFormatRaceTime(t *testing.T) {
	tests := []struct {
		ms   int64
		want string
	}{
		{358360, "5:58.36"},
		{0, "-"},
		{-5, "-"},
		{59990, "0:59.99"},
		{420000, "7:00.00"},
	}
	for _, tt := range tests {
		if got := FormatRaceTime(tt.ms); got != tt.want {
			t.Errorf("FormatRaceTime(%d) = %q, want %q", tt.ms, got, tt.want)
		}
	}
}

func TestRaceResultStart(t *testing.T) {
	r := RaceResult{StartDate: "2022-06-16 14:12:00"}
	got, err := r.Start()
	if err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	want := time.Date(2022, 6, 16, 14, 12, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Start() = %v, want %v", got, want)
	}

	if _, err := (RaceResult{StartDate: "16.06.2022"}).Start(); err == nil {
		t.Error("expected error for malformed start date")
	}
}

func TestFullName(t *testing.T) {
	if got := (AthletePreview{FirstName: "Kay", LastName: "Winkert"}).FullName(); got != "Kay Winkert" {
		t.Errorf("preview FullName = %q", got)
	}
	if got := MockDataset().Athletes[0].FullName(); got != "Lukas Helesic" {
		t.Errorf("athlete FullName = %q", got)
	}
}

func TestMockDatasetFreshCopy(t *testing.T) {
	a := MockDataset()
	a.Athletes[0].FirstName = "changed"
	a.Athletes[0].RaceList[0].Rank = 99
	b := MockDataset()
	if b.Athletes[0].FirstName != "Lukas" || b.Athletes[0].RaceList[0].Rank != 2 {
		t.Error("MockDataset returned shared state")
	}
}
