package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/trivia-game-api/internal/domain/entity"
	apperrors "github.com/yourusername/trivia-game-api/internal/pkg/errors"
	"github.com/yourusername/trivia-game-api/internal/service"
)

func newCategoryHandler(questionRepo *MockQuestionRepo, categoryRepo *MockCategoryRepo) *CategoryHandler {
	categoryService := service.NewCategoryService(categoryRepo, nil)
	questionService := service.NewQuestionService(questionRepo, categoryRepo)
	return NewCategoryHandler(categoryService, questionService)
}

func TestCategoryHandler_GetCategories_Success(t *testing.T) {
	// Arrange
	questionRepo := new(MockQuestionRepo)
	categoryRepo := new(MockCategoryRepo)
	handler := newCategoryHandler(questionRepo, categoryRepo)

	categoryRepo.On("GetAll").Return([]entity.Category{
		{ID: 1, Type: "Science"},
		{ID: 2, Type: "Art"},
	}, nil)

	c, w := newTestGinContext("GET", "/categories", nil)

	// Act
	handler.GetCategories(c)

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	resp := parseJSONResponse(t, w)
	assert.Equal(t, true, resp["success"])

	categories, ok := resp["categories"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Science", categories["1"])
	assert.Equal(t, "Art", categories["2"])
}

func TestCategoryHandler_GetCategories_StorageFailure(t *testing.T) {
	questionRepo := new(MockQuestionRepo)
	categoryRepo := new(MockCategoryRepo)
	handler := newCategoryHandler(questionRepo, categoryRepo)

	categoryRepo.On("GetAll").Return(nil, errors.New("connection refused"))

	c, w := newTestGinContext("GET", "/categories", nil)

	handler.GetCategories(c)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	resp := parseJSONResponse(t, w)
	assert.Equal(t, false, resp["success"])
}

func TestCategoryHandler_GetQuestionsForCategory_Success(t *testing.T) {
	questionRepo := new(MockQuestionRepo)
	categoryRepo := new(MockCategoryRepo)
	handler := newCategoryHandler(questionRepo, categoryRepo)

	categoryRepo.On("GetByID", uint(1)).Return(&entity.Category{ID: 1, Type: "Science"}, nil)
	questionRepo.On("GetByCategory", uint(1)).Return([]entity.Question{
		{ID: 20, Question: "Q20", Category: 1},
		{ID: 21, Question: "Q21", Category: 1},
	}, nil)

	c, w := newTestGinContext("GET", "/categories/1/questions", nil)
	c.Set("categoryID", uint(1)) // обычно это делает middleware

	handler.GetQuestionsForCategory(c)

	require.Equal(t, http.StatusOK, w.Code)
	resp := parseJSONResponse(t, w)
	assert.Equal(t, float64(2), resp["total_questions"])
	assert.Equal(t, "Science", resp["currentCategory"])
}

func TestCategoryHandler_GetQuestionsForCategory_UnknownCategory(t *testing.T) {
	questionRepo := new(MockQuestionRepo)
	categoryRepo := new(MockCategoryRepo)
	handler := newCategoryHandler(questionRepo, categoryRepo)

	categoryRepo.On("GetByID", uint(42)).Return(nil, apperrors.ErrNotFound)

	c, w := newTestGinContext("GET", "/categories/42/questions", nil)
	c.Set("categoryID", uint(42))

	handler.GetQuestionsForCategory(c)

	require.Equal(t, http.StatusNotFound, w.Code)
	resp := parseJSONResponse(t, w)
	assert.Equal(t, "The category with ID 42 does not exist", resp["message"])
	questionRepo.AssertNotCalled(t, "GetByCategory")
}
