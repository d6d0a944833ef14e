package services

import (
	"context"
	"math"
	"sort"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

const dayKeyFormat = "2006-01-02"

type EntryKind string

const (
	EntryFood    EntryKind = "food"
	EntryWorkout EntryKind = "workout"
)

// HistoryEntry is the flattened view of a food or workout record, as the
// history screen renders it.
type HistoryEntry struct {
	ID              uint      `json:"id"`
	Kind            EntryKind `json:"kind"`
	Name            string    `json:"name"`
	Calories        int       `json:"calories,omitempty"`
	CaloriesBurned  int       `json:"calories_burned,omitempty"`
	Activity        string    `json:"activity,omitempty"`
	DurationSeconds int       `json:"duration_seconds,omitempty"`
	PhotoURL        string    `json:"photo_url,omitempty"`
	Note            string    `json:"note,omitempty"`
	LoggedAt        time.Time `json:"logged_at"`
}

// DayGroup bundles every entry sharing one calendar date. It is derived on
// each fetch and never persisted.
type DayGroup struct {
	Date          string         `json:"date"` // yyyy-mm-dd
	DisplayDate   string         `json:"display_date"`
	Entries       []HistoryEntry `json:"entries"`
	TotalCalories int            `json:"total_calories"`
	TotalBurned   int            `json:"total_burned"`
}

type HistorySummary struct {
	DaysLogged       int `json:"days_logged"`
	AvgDailyCalories int `json:"avg_daily_calories"`
	WorkoutCount     int `json:"workout_count"`
}

func FoodHistoryEntry(f models.FoodEntry) HistoryEntry {
	return HistoryEntry{
		ID:       f.ID,
		Kind:     EntryFood,
		Name:     f.Name,
		Calories: f.Calories,
		PhotoURL: f.PhotoURL,
		Note:     f.Note,
		LoggedAt: f.LoggedAt,
	}
}

func WorkoutHistoryEntry(w models.Workout) HistoryEntry {
	return HistoryEntry{
		ID:              w.ID,
		Kind:            EntryWorkout,
		Name:            w.Name,
		CaloriesBurned:  w.CaloriesBurned,
		Activity:        w.Activity,
		DurationSeconds: w.DurationSeconds,
		LoggedAt:        w.LoggedAt,
	}
}

// BuildDayGroups turns an unordered entry list into day groups ordered
// newest-first, with entries inside each group ordered newest-first as well.
// Grouping is by calendar date in now's location. The sort is stable, so
// entries with equal timestamps keep their input order. Deterministic for a
// fixed now and input.
func BuildDayGroups(entries []HistoryEntry, now time.Time) []DayGroup {
	sorted := make([]HistoryEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].LoggedAt.After(sorted[j].LoggedAt)
	})

	loc := now.Location()
	var groups []DayGroup
	idx := map[string]int{}

	// Entries arrive globally sorted descending, so day keys show up in
	// descending order too; first-seen order is already the final order.
	for _, e := range sorted {
		local := e.LoggedAt.In(loc)
		key := local.Format(dayKeyFormat)
		i, ok := idx[key]
		if !ok {
			groups = append(groups, DayGroup{
				Date:        key,
				DisplayDate: displayDate(local, now),
			})
			i = len(groups) - 1
			idx[key] = i
		}
		g := &groups[i]
		g.Entries = append(g.Entries, e)
		switch e.Kind {
		case EntryFood:
			g.TotalCalories += e.Calories
		case EntryWorkout:
			g.TotalBurned += e.CaloriesBurned
		}
	}
	return groups
}

// Summarize reduces a group sequence to the headline stats shown above the
// history list.
func Summarize(groups []DayGroup) HistorySummary {
	var sum HistorySummary
	sum.DaysLogged = len(groups)

	total := 0
	for _, g := range groups {
		total += g.TotalCalories
		for _, e := range g.Entries {
			if e.Kind == EntryWorkout {
				sum.WorkoutCount++
			}
		}
	}
	if len(groups) > 0 {
		sum.AvgDailyCalories = int(math.Round(float64(total) / float64(len(groups))))
	}
	return sum
}

func displayDate(day, now time.Time) string {
	today := dayStart(now)
	d := dayStart(day.In(now.Location()))
	switch {
	case d.Equal(today):
		return "Today"
	case d.Equal(today.AddDate(0, 0, -1)):
		return "Yesterday"
	default:
		return d.Format("Mon, Jan 2")
	}
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ---------- fetch layer ----------

type HistoryService struct{ db *gorm.DB }

func NewHistoryService(db *gorm.DB) *HistoryService { return &HistoryService{db: db} }

// Entries fetches both collections for the user over the trailing lookback
// window and flattens them. The store is queried by owner only; ordering and
// grouping happen in memory.
func (s *HistoryService) Entries(ctx context.Context, userID uint, days int) ([]HistoryEntry, error) {
	if days <= 0 {
		days = 30
	}
	since := dayStart(time.Now()).AddDate(0, 0, -(days - 1))

	var foods []models.FoodEntry
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND logged_at >= ?", userID, since).
		Find(&foods).Error; err != nil {
		return nil, err
	}

	var workouts []models.Workout
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND logged_at >= ?", userID, since).
		Find(&workouts).Error; err != nil {
		return nil, err
	}

	entries := make([]HistoryEntry, 0, len(foods)+len(workouts))
	for _, f := range foods {
		entries = append(entries, FoodHistoryEntry(f))
	}
	for _, w := range workouts {
		entries = append(entries, WorkoutHistoryEntry(w))
	}
	return entries, nil
}
