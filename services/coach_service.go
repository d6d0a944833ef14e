package services

import (
	"time"

	"backend/models"

	"gorm.io/gorm"
)

const coachSystemPrompt = "You are a friendly fitness and nutrition coach inside a calorie tracking app. " +
	"Give short, practical answers about food, workouts and healthy habits. " +
	"Do not give medical advice; suggest seeing a professional for medical questions."

type CoachService struct {
	db  *gorm.DB
	llm *LLMClient
}

func NewCoachService(db *gorm.DB, llm *LLMClient) *CoachService {
	return &CoachService{db: db, llm: llm}
}

// Send replays the stored conversation plus the new user turn against the
// model and persists both sides.
func (s *CoachService) Send(userID uint, content string) (*models.ChatMessage, error) {
	history, err := s.History(userID)
	if err != nil {
		return nil, err
	}

	messages := make([]LLMMessage, 0, len(history)+2)
	messages = append(messages, LLMMessage{Role: "system", Content: coachSystemPrompt})
	for _, m := range history {
		messages = append(messages, LLMMessage{Role: m.Role, Content: m.Content})
	}
	messages = append(messages, LLMMessage{Role: "user", Content: content})

	reply, err := s.llm.Chat(messages)
	if err != nil {
		return nil, err
	}

	userMsg := models.ChatMessage{UserID: userID, Role: "user", Content: content, CreatedAt: time.Now()}
	if err := s.db.Create(&userMsg).Error; err != nil {
		return nil, err
	}
	assistantMsg := models.ChatMessage{UserID: userID, Role: "assistant", Content: reply, CreatedAt: time.Now()}
	if err := s.db.Create(&assistantMsg).Error; err != nil {
		return nil, err
	}
	return &assistantMsg, nil
}

func (s *CoachService) History(userID uint) ([]models.ChatMessage, error) {
	var msgs []models.ChatMessage
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&msgs).Error
	return msgs, err
}

func (s *CoachService) Clear(userID uint) error {
	return s.db.Where("user_id = ?", userID).Delete(&models.ChatMessage{}).Error
}
