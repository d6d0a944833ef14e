package services

import (
	"errors"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

const (
	MinGoalCalories = 500
	MaxGoalCalories = 10000
)

var ErrGoalOutOfRange = errors.New("goal must be between 500 and 10000 kcal")

type GoalService struct{ db *gorm.DB }

func NewGoalService(db *gorm.DB) *GoalService { return &GoalService{db: db} }

// Get returns the user's goal, or a zero-value goal when none is set.
func (s *GoalService) Get(userID uint) (*models.DailyGoal, error) {
	var goal models.DailyGoal
	err := s.db.Where("user_id = ?", userID).First(&goal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.DailyGoal{UserID: userID}, nil
		}
		return nil, err
	}
	return &goal, nil
}

func (s *GoalService) Upsert(userID uint, calories int) (*models.DailyGoal, error) {
	if calories < MinGoalCalories || calories > MaxGoalCalories {
		return nil, ErrGoalOutOfRange
	}

	var goal models.DailyGoal
	err := s.db.Where("user_id = ?", userID).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		goal = models.DailyGoal{UserID: userID, Calories: calories}
		if err := s.db.Create(&goal).Error; err != nil {
			return nil, err
		}
		return &goal, nil
	}
	if err != nil {
		return nil, err
	}

	goal.Calories = calories
	if err := s.db.Save(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

type GoalProgress struct {
	Goal     int     `json:"goal"`
	Consumed int     `json:"consumed"`
	Percent  float64 `json:"percent"` // capped at 1.0
}

// Progress reports today's consumption against the goal.
func (s *GoalService) Progress(userID uint) (*GoalProgress, error) {
	goal, err := s.Get(userID)
	if err != nil {
		return nil, err
	}

	start := dayStart(time.Now())
	end := start.AddDate(0, 0, 1)

	var consumed int64
	if err := s.db.Model(&models.FoodEntry{}).
		Where("user_id = ? AND logged_at >= ? AND logged_at < ?", userID, start, end).
		Select("COALESCE(SUM(calories), 0)").
		Scan(&consumed).Error; err != nil {
		return nil, err
	}

	p := &GoalProgress{Goal: goal.Calories, Consumed: int(consumed)}
	if goal.Calories > 0 {
		p.Percent = float64(consumed) / float64(goal.Calories)
		if p.Percent > 1 {
			p.Percent = 1
		}
	}
	return p, nil
}
