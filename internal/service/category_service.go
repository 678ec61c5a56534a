package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/yourusername/trivia-game-api/internal/domain/entity"
	"github.com/yourusername/trivia-game-api/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-game-api/internal/pkg/errors"
)

// categoriesCacheKey — ключ кеша словаря категорий
const categoriesCacheKey = "categories:all"

// categoriesCacheTTL — время жизни кеша категорий.
// Категории меняются только миграцией, поэтому TTL щадящий.
const categoriesCacheTTL = time.Hour

// CategoryService предоставляет методы для работы с категориями
type CategoryService struct {
	categoryRepo repository.CategoryRepository
	cacheRepo    repository.CacheRepository
}

// NewCategoryService создает новый сервис категорий.
// cacheRepo может быть nil — тогда словарь каждый раз читается из БД.
func NewCategoryService(
	categoryRepo repository.CategoryRepository,
	cacheRepo repository.CacheRepository,
) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		cacheRepo:    cacheRepo,
	}
}

// AllFormatted возвращает словарь категорий "строковый id -> type".
// Сначала пробует кеш, при промахе читает БД и заполняет кеш.
// Ошибки кеша не фатальны: запрос обслуживается из БД.
func (s *CategoryService) AllFormatted() (map[string]string, error) {
	if s.cacheRepo != nil {
		var cached map[string]string
		err := s.cacheRepo.GetJSON(categoriesCacheKey, &cached)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			log.Printf("[CategoryService] cache read failed: %v", err)
		}
	}

	categories, err := s.categoryRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	formatted := entity.FormatCategoryMap(categories)

	if s.cacheRepo != nil {
		if err := s.cacheRepo.SetJSON(categoriesCacheKey, formatted, categoriesCacheTTL); err != nil {
			log.Printf("[CategoryService] cache write failed: %v", err)
		}
	}

	return formatted, nil
}
