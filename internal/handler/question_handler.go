package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-game-api/internal/domain/entity"
	apperrors "github.com/yourusername/trivia-game-api/internal/pkg/errors"
	"github.com/yourusername/trivia-game-api/internal/service"
	"github.com/yourusername/trivia-game-api/internal/validation"
)

// QuestionHandler обрабатывает CRUD-запросы для вопросов
type QuestionHandler struct {
	questionService *service.QuestionService
	categoryService *service.CategoryService
}

// NewQuestionHandler создает новый обработчик вопросов
func NewQuestionHandler(
	questionService *service.QuestionService,
	categoryService *service.CategoryService,
) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
		categoryService: categoryService,
	}
}

// GetQuestions возвращает страницу вопросов (10 на страницу),
// общее количество, словарь категорий и текущую категорию
// GET /questions?page=N
func (h *QuestionHandler) GetQuestions(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1 // невалидный page трактуем как первую страницу
	}

	questions, total, err := h.questionService.GetPage(page)
	if err != nil {
		var pageErr *apperrors.PageNotFoundError
		if errors.As(err, &pageErr) {
			respondError(c, http.StatusNotFound, pageErr.Error())
			return
		}
		log.Printf("[QuestionHandler] failed to get questions page %d: %v", page, err)
		respondError(c, http.StatusInternalServerError, "Internal server error occurred while fetching questions")
		return
	}

	categories, err := h.categoryService.AllFormatted()
	if err != nil {
		log.Printf("[QuestionHandler] failed to get categories: %v", err)
		respondError(c, http.StatusInternalServerError, "Internal server error occurred while fetching categories")
		return
	}

	respondOK(c, gin.H{
		"questions":       entity.FormatQuestions(questions),
		"total_questions": total,
		"categories":      categories,
		"currentCategory": "",
	})
}

// CreateQuestion создает новый вопрос
// POST /questions
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, validation.CreateQuestionFormat)
		return
	}

	input, verdict := validation.ValidateCreateQuestion(body)
	if !verdict.Valid {
		respondError(c, verdict.Code, verdict.Message)
		return
	}

	question, err := h.questionService.CreateQuestion(input)
	if err != nil {
		var dup *apperrors.DuplicateQuestionError
		if errors.As(err, &dup) {
			respondError(c, http.StatusUnprocessableEntity, dup.Error())
			return
		}
		log.Printf("[QuestionHandler] failed to create question: %v", err)
		respondError(c, http.StatusInternalServerError, "Internal server error occurred while creating the question.")
		return
	}

	c.JSON(http.StatusCreated, envelope(http.StatusCreated, "Question Created", gin.H{
		"question_id": question.ID,
	}))
}

// DeleteQuestion удаляет вопрос по ID
// DELETE /questions/:id
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID := c.MustGet("questionID").(uint) // Получаем из контекста

	if err := h.questionService.DeleteQuestion(questionID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			respondError(c, http.StatusNotFound, fmt.Sprintf("Question with `id` %d does not exist", questionID))
			return
		}
		log.Printf("[QuestionHandler] failed to delete question %d: %v", questionID, err)
		respondError(c, http.StatusInternalServerError,
			fmt.Sprintf("Internal server error occurred. Question with `id` %d could not be deleted", questionID))
		return
	}

	c.JSON(http.StatusOK, envelope(http.StatusOK, "Question deleted", gin.H{
		"question_id": questionID,
	}))
}

// SearchQuestions ищет вопросы по подстроке текста вопроса
// POST /questions/search
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondError(c, http.StatusBadRequest, validation.SearchFormat)
		return
	}

	// Сам ключ searchTerm обязателен: его отсутствие — ошибка запроса,
	// а нулевое количество совпадений — нет
	value, present := body["searchTerm"]
	if len(body) == 0 || !present {
		respondError(c, http.StatusBadRequest, validation.SearchFormat)
		return
	}

	term, ok := value.(string)
	if !ok {
		term = fmt.Sprint(value)
	}

	questions, err := h.questionService.Search(term)
	if err != nil {
		log.Printf("[QuestionHandler] search failed for term %q: %v", term, err)
		respondError(c, http.StatusInternalServerError, "Internal server error occurred while searching questions")
		return
	}

	respondOK(c, gin.H{
		"questions":       entity.FormatQuestions(questions),
		"totalQuestions":  len(questions),
		"currentCategory": "",
	})
}
