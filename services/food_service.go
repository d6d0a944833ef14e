package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

type FoodService struct{ db *gorm.DB }

func NewFoodService(db *gorm.DB) *FoodService { return &FoodService{db: db} }

type FoodEntryRequest struct {
	Name     string    `json:"name"`
	Calories int       `json:"calories"`
	PhotoURL string    `json:"photo_url"`
	Note     string    `json:"note"`
	LoggedAt time.Time `json:"logged_at"`
}

func (r *FoodEntryRequest) validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name is required")
	}
	if r.Calories < 0 {
		return errors.New("calories must not be negative")
	}
	return nil
}

func (s *FoodService) Add(userID uint, req FoodEntryRequest) (*models.FoodEntry, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	loggedAt := req.LoggedAt
	if loggedAt.IsZero() {
		loggedAt = time.Now()
	}

	entry := &models.FoodEntry{
		UserID:   userID,
		Name:     strings.TrimSpace(req.Name),
		Calories: req.Calories,
		PhotoURL: req.PhotoURL,
		Note:     req.Note,
		LoggedAt: loggedAt,
	}
	if err := s.db.Create(entry).Error; err != nil {
		return nil, err
	}

	s.checkGoal(userID, loggedAt)
	return entry, nil
}

func (s *FoodService) List(userID uint) ([]models.FoodEntry, error) {
	var entries []models.FoodEntry
	err := s.db.
		Where("user_id = ?", userID).
		Order("logged_at DESC").
		Find(&entries).Error
	return entries, err
}

func (s *FoodService) Delete(userID, entryID uint) error {
	res := s.db.
		Where("id = ? AND user_id = ?", entryID, userID).
		Delete(&models.FoodEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// checkGoal emits a goal-exceeded alert when the entry's day crosses the
// user's calorie target. Only the day the entry lands on is checked.
func (s *FoodService) checkGoal(userID uint, loggedAt time.Time) {
	var goal models.DailyGoal
	if err := s.db.Where("user_id = ?", userID).First(&goal).Error; err != nil {
		return // no goal set, nothing to check
	}
	if goal.Calories <= 0 {
		return
	}

	start := dayStart(loggedAt)
	end := start.AddDate(0, 0, 1)

	var consumed int64
	s.db.Model(&models.FoodEntry{}).
		Where("user_id = ? AND logged_at >= ? AND logged_at < ?", userID, start, end).
		Select("COALESCE(SUM(calories), 0)").
		Scan(&consumed)

	if int(consumed) > goal.Calories {
		EmitAlert(userID, "goal_exceeded", fmt.Sprintf(
			"You've logged %d kcal today, over your %d kcal goal.", consumed, goal.Calories))
	}
}
