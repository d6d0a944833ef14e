package services

import (
	"reflect"
	"testing"
	"time"
)

var testNow = time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

func foodAt(id uint, calories int, ts time.Time) HistoryEntry {
	return HistoryEntry{ID: id, Kind: EntryFood, Name: "food", Calories: calories, LoggedAt: ts}
}

func workoutAt(id uint, burned int, ts time.Time) HistoryEntry {
	return HistoryEntry{ID: id, Kind: EntryWorkout, Name: "workout", CaloriesBurned: burned, Activity: "run", LoggedAt: ts}
}

func TestBuildDayGroupsEmptyInput(t *testing.T) {
	groups := BuildDayGroups(nil, testNow)
	if len(groups) != 0 {
		t.Fatalf("expected no groups, got %d", len(groups))
	}
	groups = BuildDayGroups([]HistoryEntry{}, testNow)
	if len(groups) != 0 {
		t.Fatalf("expected no groups, got %d", len(groups))
	}
}

// Two food entries today (one timestamped after "now", still the same local
// day) and one workout yesterday.
func TestBuildDayGroupsTwoDays(t *testing.T) {
	entries := []HistoryEntry{
		foodAt(1, 300, time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)),
		foodAt(2, 500, time.Date(2024, 6, 10, 13, 0, 0, 0, time.UTC)),
		workoutAt(3, 200, time.Date(2024, 6, 9, 7, 0, 0, 0, time.UTC)),
	}

	groups := BuildDayGroups(entries, testNow)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}

	today := groups[0]
	if today.Date != "2024-06-10" || today.DisplayDate != "Today" {
		t.Errorf("group[0] = %s / %q, want 2024-06-10 / Today", today.Date, today.DisplayDate)
	}
	if today.TotalCalories != 800 || today.TotalBurned != 0 {
		t.Errorf("group[0] totals = %d consumed / %d burned, want 800 / 0", today.TotalCalories, today.TotalBurned)
	}
	if len(today.Entries) != 2 || today.Entries[0].ID != 2 || today.Entries[1].ID != 1 {
		t.Errorf("group[0] entries out of order: %+v", today.Entries)
	}

	yesterday := groups[1]
	if yesterday.Date != "2024-06-09" || yesterday.DisplayDate != "Yesterday" {
		t.Errorf("group[1] = %s / %q, want 2024-06-09 / Yesterday", yesterday.Date, yesterday.DisplayDate)
	}
	if yesterday.TotalCalories != 0 || yesterday.TotalBurned != 200 {
		t.Errorf("group[1] totals = %d consumed / %d burned, want 0 / 200", yesterday.TotalCalories, yesterday.TotalBurned)
	}
	if len(yesterday.Entries) != 1 || yesterday.Entries[0].ID != 3 {
		t.Errorf("group[1] entries: %+v", yesterday.Entries)
	}
}

func TestBuildDayGroupsConservation(t *testing.T) {
	entries := []HistoryEntry{
		foodAt(1, 120, testNow.Add(-30*time.Hour)),
		workoutAt(2, 90, testNow.Add(-29*time.Hour)),
		foodAt(3, 450, testNow.Add(-3*time.Hour)),
		foodAt(4, 0, testNow.Add(-100*time.Hour)),
		workoutAt(5, 310, testNow.Add(-99*time.Hour)),
		foodAt(6, 75, testNow.Add(-1*time.Minute)),
	}

	wantConsumed, wantBurned, wantCount := 0, 0, 0
	days := map[string]bool{}
	for _, e := range entries {
		wantConsumed += e.Calories
		wantBurned += e.CaloriesBurned
		wantCount++
		days[e.LoggedAt.In(testNow.Location()).Format("2006-01-02")] = true
	}

	groups := BuildDayGroups(entries, testNow)
	if len(groups) != len(days) {
		t.Errorf("group count = %d, want %d distinct dates", len(groups), len(days))
	}

	gotConsumed, gotBurned, gotCount := 0, 0, 0
	for _, g := range groups {
		gotConsumed += g.TotalCalories
		gotBurned += g.TotalBurned
		gotCount += len(g.Entries)
	}
	if gotConsumed != wantConsumed {
		t.Errorf("total consumed = %d, want %d", gotConsumed, wantConsumed)
	}
	if gotBurned != wantBurned {
		t.Errorf("total burned = %d, want %d", gotBurned, wantBurned)
	}
	if gotCount != wantCount {
		t.Errorf("entry count = %d, want %d (no record dropped or duplicated)", gotCount, wantCount)
	}
}

func TestBuildDayGroupsOrdering(t *testing.T) {
	entries := []HistoryEntry{
		foodAt(1, 100, testNow.Add(-50*time.Hour)),
		foodAt(2, 100, testNow.Add(-2*time.Hour)),
		workoutAt(3, 50, testNow.Add(-26*time.Hour)),
		foodAt(4, 100, testNow.Add(-1*time.Hour)),
	}

	groups := BuildDayGroups(entries, testNow)
	for i := 1; i < len(groups); i++ {
		if !(groups[i].Date < groups[i-1].Date) {
			t.Errorf("groups not strictly descending by date: %s then %s", groups[i-1].Date, groups[i].Date)
		}
	}
	for _, g := range groups {
		for i := 1; i < len(g.Entries); i++ {
			if g.Entries[i].LoggedAt.After(g.Entries[i-1].LoggedAt) {
				t.Errorf("entries within %s not non-increasing by timestamp", g.Date)
			}
		}
	}
}

// Equal timestamps across record kinds: both retained, input order kept.
func TestBuildDayGroupsStableTieBreak(t *testing.T) {
	ts := testNow.Add(-2 * time.Hour)
	entries := []HistoryEntry{
		foodAt(1, 100, ts),
		workoutAt(2, 80, ts),
		foodAt(3, 60, ts),
	}

	groups := BuildDayGroups(entries, testNow)
	if len(groups) != 1 || len(groups[0].Entries) != 3 {
		t.Fatalf("expected one group with 3 entries, got %+v", groups)
	}
	for i, e := range groups[0].Entries {
		if e.ID != uint(i+1) {
			t.Errorf("tie-break broke input order: position %d has id %d", i, e.ID)
		}
	}
}

func TestBuildDayGroupsIdempotent(t *testing.T) {
	entries := []HistoryEntry{
		foodAt(1, 300, testNow.Add(-4*time.Hour)),
		workoutAt(2, 150, testNow.Add(-28*time.Hour)),
		foodAt(3, 220, testNow.Add(-27*time.Hour)),
	}

	first := BuildDayGroups(entries, testNow)
	second := BuildDayGroups(entries, testNow)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("two runs over the same input differ:\n%+v\n%+v", first, second)
	}
}

// A record exactly at midnight belongs to the day it opens, by local-date
// truncation, not rounding.
func TestBuildDayGroupsDayBoundary(t *testing.T) {
	midnight := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	groups := BuildDayGroups([]HistoryEntry{foodAt(1, 100, midnight)}, testNow)
	if len(groups) != 1 || groups[0].Date != "2024-06-10" {
		t.Errorf("midnight entry bucketed into %v, want 2024-06-10", groups)
	}
}

func TestDisplayDateLabels(t *testing.T) {
	tests := []struct {
		name string
		ts   time.Time
		want string
	}{
		{"today", testNow.Add(-2 * time.Hour), "Today"},
		{"yesterday", testNow.AddDate(0, 0, -1), "Yesterday"},
		{"eight days ago", testNow.AddDate(0, 0, -8), "Sun, Jun 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			groups := BuildDayGroups([]HistoryEntry{foodAt(1, 10, tt.ts)}, testNow)
			if len(groups) != 1 {
				t.Fatalf("expected 1 group, got %d", len(groups))
			}
			if groups[0].DisplayDate != tt.want {
				t.Errorf("display date = %q, want %q", groups[0].DisplayDate, tt.want)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	entries := []HistoryEntry{
		foodAt(1, 300, testNow.Add(-2*time.Hour)),
		foodAt(2, 500, testNow.Add(-3*time.Hour)),
		workoutAt(3, 200, testNow.AddDate(0, 0, -1)),
		foodAt(4, 401, testNow.AddDate(0, 0, -1)),
		workoutAt(5, 100, testNow.AddDate(0, 0, -3)),
	}

	sum := Summarize(BuildDayGroups(entries, testNow))
	if sum.DaysLogged != 3 {
		t.Errorf("days logged = %d, want 3", sum.DaysLogged)
	}
	// (800 + 401 + 0) / 3 = 400.33, rounds to 400
	if sum.AvgDailyCalories != 400 {
		t.Errorf("avg daily calories = %d, want 400", sum.AvgDailyCalories)
	}
	if sum.WorkoutCount != 2 {
		t.Errorf("workout count = %d, want 2", sum.WorkoutCount)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	sum := Summarize(nil)
	if sum.DaysLogged != 0 || sum.AvgDailyCalories != 0 || sum.WorkoutCount != 0 {
		t.Errorf("empty summary should be all zeros, got %+v", sum)
	}
}
