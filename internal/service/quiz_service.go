package service

import (
	"fmt"
	"math/rand"

	"github.com/yourusername/trivia-game-api/internal/domain/entity"
	"github.com/yourusername/trivia-game-api/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-game-api/internal/pkg/errors"
	"github.com/yourusername/trivia-game-api/internal/validation"
)

// QuizService выбирает следующий вопрос викторины.
// Сервер не хранит состояние сессии: список уже показанных вопросов
// приходит в каждом запросе.
type QuizService struct {
	questionRepo repository.QuestionRepository
}

// NewQuizService создает новый сервис викторины
func NewQuizService(questionRepo repository.QuestionRepository) *QuizService {
	return &QuizService{questionRepo: questionRepo}
}

// NextQuestion возвращает один равновероятно выбранный вопрос,
// подходящий под фильтр категории (если задан) и не входящий в
// previous_questions. Если подходящих вопросов не осталось,
// возвращает apperrors.ErrNoMoreQuestions.
func (s *QuizService) NextQuestion(input validation.NextQuestionInput) (*entity.Question, error) {
	available, err := s.questionRepo.GetAvailable(input.QuizCategory, input.HasCategory, input.PreviousQuestions)
	if err != nil {
		return nil, fmt.Errorf("failed to get available questions: %w", err)
	}

	if len(available) == 0 {
		return nil, apperrors.ErrNoMoreQuestions
	}

	next := available[rand.Intn(len(available))]
	return &next, nil
}
