package repository

import (
	"github.com/yourusername/trivia-game-api/internal/domain/entity"
)

// CategoryRepository определяет методы для работы с категориями
type CategoryRepository interface {
	// GetAll возвращает все категории, упорядоченные по возрастанию id
	GetAll() ([]entity.Category, error)

	// GetByID возвращает категорию по ID
	GetByID(id uint) (*entity.Category, error)
}
