package repository

import (
	"github.com/yourusername/trivia-game-api/internal/domain/entity"
)

// QuestionRepository определяет методы для работы с вопросами
type QuestionRepository interface {
	// Create сохраняет новый вопрос
	Create(question *entity.Question) error

	// GetByID возвращает вопрос по ID
	GetByID(id uint) (*entity.Question, error)

	// Delete удаляет вопрос по ID
	Delete(id uint) error

	// ListPage возвращает срез вопросов, упорядоченных по возрастанию id
	ListPage(offset, limit int) ([]entity.Question, error)

	// Count возвращает общее количество вопросов
	Count() (int64, error)

	// GetAll возвращает все вопросы, упорядоченные по возрастанию id
	GetAll() ([]entity.Question, error)

	// SearchByText ищет вопросы по подстроке текста вопроса (без учёта регистра)
	SearchByText(term string) ([]entity.Question, error)

	// GetByCategory возвращает все вопросы указанной категории
	GetByCategory(categoryID uint) ([]entity.Question, error)

	// FindDuplicate ищет вопрос с совпадающими question, answer и category.
	// Возвращает nil, nil если дубликата нет.
	FindDuplicate(question, answer string, category uint) (*entity.Question, error)

	// GetAvailable возвращает вопросы, подходящие для викторины:
	// с фильтром по категории (если hasCategory) и без исключённых id
	GetAvailable(category uint, hasCategory bool, excludeIDs []uint) ([]entity.Question, error)
}
