package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/yourusername/trivia-game-api/internal/pkg/errors"
	"github.com/yourusername/trivia-game-api/internal/service"
	"github.com/yourusername/trivia-game-api/internal/validation"
)

// QuizHandler обрабатывает игровые запросы викторины
type QuizHandler struct {
	quizService *service.QuizService
}

// NewQuizHandler создает новый обработчик викторины
func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// GetNextQuestion возвращает случайный вопрос, не входящий в
// previous_questions, с необязательным фильтром по категории
// POST /quizzes
func (h *QuizHandler) GetNextQuestion(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, validation.NextQuestionFormat)
		return
	}

	input, verdict := validation.ValidateNextQuestion(body)
	if !verdict.Valid {
		respondError(c, verdict.Code, verdict.Message)
		return
	}

	question, err := h.quizService.NextQuestion(input)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoMoreQuestions) {
			respondError(c, http.StatusNotFound, "No more questions found")
			return
		}
		log.Printf("[QuizHandler] failed to pick next question: %v", err)
		respondError(c, http.StatusInternalServerError, "Internal server error occurred while picking the next question")
		return
	}

	respondOK(c, gin.H{"question": question.Format()})
}
