package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-game-api/internal/domain/entity"
	apperrors "github.com/yourusername/trivia-game-api/internal/pkg/errors"
	"github.com/yourusername/trivia-game-api/internal/service"
)

// CategoryHandler обрабатывает запросы, связанные с категориями
type CategoryHandler struct {
	categoryService *service.CategoryService
	questionService *service.QuestionService
}

// NewCategoryHandler создает новый обработчик категорий
func NewCategoryHandler(
	categoryService *service.CategoryService,
	questionService *service.QuestionService,
) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		questionService: questionService,
	}
}

// GetCategories возвращает словарь всех категорий "id -> type"
// GET /categories
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.categoryService.AllFormatted()
	if err != nil {
		log.Printf("[CategoryHandler] failed to get categories: %v", err)
		respondError(c, http.StatusInternalServerError, "Internal server error occurred while fetching categories")
		return
	}

	respondOK(c, gin.H{"categories": categories})
}

// GetQuestionsForCategory возвращает все вопросы одной категории
// GET /categories/:id/questions
func (h *CategoryHandler) GetQuestionsForCategory(c *gin.Context) {
	categoryID := c.MustGet("categoryID").(uint) // Получаем из контекста

	questions, categoryType, err := h.questionService.GetByCategory(categoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			respondError(c, http.StatusNotFound, fmt.Sprintf("The category with ID %d does not exist", categoryID))
			return
		}
		log.Printf("[CategoryHandler] failed to get questions for category %d: %v", categoryID, err)
		respondError(c, http.StatusInternalServerError, "Internal server error occurred while fetching questions")
		return
	}

	respondOK(c, gin.H{
		"questions":       entity.FormatQuestions(questions),
		"total_questions": len(questions),
		"currentCategory": categoryType,
	})
}
