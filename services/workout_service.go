package services

import (
	"errors"
	"math"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

// Fixed kcal-per-minute burn rates per activity. The estimate is rate ×
// elapsed minutes, captured once at logging time; no profile data is used.
var burnRates = map[string]float64{
	"run":     11,
	"cycle":   8,
	"swim":    10,
	"weights": 6,
	"yoga":    4,
	"hiit":    13,
}

var ErrUnknownActivity = errors.New("unknown activity")

// EstimateBurn returns the estimated calories burned for an activity over
// durationSeconds.
func EstimateBurn(activity string, durationSeconds int) (int, error) {
	rate, ok := burnRates[activity]
	if !ok {
		return 0, ErrUnknownActivity
	}
	minutes := float64(durationSeconds) / 60.0
	return int(math.Round(rate * minutes)), nil
}

type WorkoutService struct{ db *gorm.DB }

func NewWorkoutService(db *gorm.DB) *WorkoutService { return &WorkoutService{db: db} }

func (s *WorkoutService) Add(userID uint, activity, name string, durationSeconds int, loggedAt time.Time) (*models.Workout, error) {
	if durationSeconds <= 0 {
		return nil, errors.New("duration must be positive")
	}
	burned, err := EstimateBurn(activity, durationSeconds)
	if err != nil {
		return nil, err
	}
	if loggedAt.IsZero() {
		loggedAt = time.Now()
	}

	w := &models.Workout{
		UserID:          userID,
		Activity:        activity,
		Name:            name,
		DurationSeconds: durationSeconds,
		CaloriesBurned:  burned,
		LoggedAt:        loggedAt,
	}
	if err := s.db.Create(w).Error; err != nil {
		return nil, err
	}
	return w, nil
}

func (s *WorkoutService) List(userID uint) ([]models.Workout, error) {
	var workouts []models.Workout
	err := s.db.
		Where("user_id = ?", userID).
		Order("logged_at DESC").
		Find(&workouts).Error
	return workouts, err
}

func (s *WorkoutService) Delete(userID, workoutID uint) error {
	res := s.db.
		Where("id = ? AND user_id = ?", workoutID, userID).
		Delete(&models.Workout{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
