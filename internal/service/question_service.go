package service

import (
	"fmt"

	"github.com/yourusername/trivia-game-api/internal/domain/entity"
	"github.com/yourusername/trivia-game-api/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-game-api/internal/pkg/errors"
	"github.com/yourusername/trivia-game-api/internal/validation"
)

// QuestionsPerPage — размер страницы при постраничном выводе вопросов
const QuestionsPerPage = 10

// QuestionService предоставляет методы для работы с вопросами
type QuestionService struct {
	questionRepo repository.QuestionRepository
	categoryRepo repository.CategoryRepository
}

// NewQuestionService создает новый сервис вопросов
func NewQuestionService(
	questionRepo repository.QuestionRepository,
	categoryRepo repository.CategoryRepository,
) *QuestionService {
	return &QuestionService{
		questionRepo: questionRepo,
		categoryRepo: categoryRepo,
	}
}

// GetPage возвращает страницу вопросов (полуоткрытый срез
// [(page-1)*10, page*10) по возрастанию id) и общее количество вопросов.
// Страница за пределами данных — это PageNotFoundError, а не пустой ответ.
func (s *QuestionService) GetPage(page int) ([]entity.Question, int64, error) {
	if page < 1 {
		page = 1
	}

	offset := (page - 1) * QuestionsPerPage
	questions, err := s.questionRepo.ListPage(offset, QuestionsPerPage)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list questions: %w", err)
	}

	if len(questions) == 0 {
		return nil, 0, &apperrors.PageNotFoundError{Page: page}
	}

	total, err := s.questionRepo.Count()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count questions: %w", err)
	}

	return questions, total, nil
}

// CreateQuestion сохраняет новый вопрос после проверки на дубликат.
// Дубликатом считается совпадение question, answer и category;
// difficulty в проверке не участвует.
func (s *QuestionService) CreateQuestion(input validation.CreateQuestionInput) (*entity.Question, error) {
	existing, err := s.questionRepo.FindDuplicate(input.Question, input.Answer, uint(input.Category))
	if err != nil {
		return nil, fmt.Errorf("failed to check for duplicate question: %w", err)
	}
	if existing != nil {
		return nil, &apperrors.DuplicateQuestionError{ID: existing.ID}
	}

	question := &entity.Question{
		Question:   input.Question,
		Answer:     input.Answer,
		Category:   uint(input.Category),
		Difficulty: input.Difficulty,
	}
	if err := s.questionRepo.Create(question); err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}

	return question, nil
}

// DeleteQuestion удаляет вопрос по ID.
// Возвращает apperrors.ErrNotFound, если вопроса не существует.
func (s *QuestionService) DeleteQuestion(id uint) error {
	if _, err := s.questionRepo.GetByID(id); err != nil {
		return err
	}

	if err := s.questionRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete question %d: %w", id, err)
	}
	return nil
}

// Search возвращает вопросы, текст которых содержит подстроку term
// без учёта регистра. Пустой результат — нормальный исход, не ошибка.
func (s *QuestionService) Search(term string) ([]entity.Question, error) {
	questions, err := s.questionRepo.SearchByText(term)
	if err != nil {
		return nil, fmt.Errorf("failed to search questions: %w", err)
	}
	return questions, nil
}

// GetByCategory возвращает все вопросы категории и её название.
// Возвращает apperrors.ErrNotFound, если категории не существует.
func (s *QuestionService) GetByCategory(categoryID uint) ([]entity.Question, string, error) {
	category, err := s.categoryRepo.GetByID(categoryID)
	if err != nil {
		return nil, "", err
	}

	questions, err := s.questionRepo.GetByCategory(categoryID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to get questions for category %d: %w", categoryID, err)
	}

	return questions, category.Type, nil
}

// GetAll возвращает все вопросы (используется экспортом)
func (s *QuestionService) GetAll() ([]entity.Question, error) {
	questions, err := s.questionRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get all questions: %w", err)
	}
	return questions, nil
}
