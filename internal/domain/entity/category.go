package entity

import "strconv"

// Category представляет категорию вопросов.
// Категории только читаются через API и заполняются миграцией-сидом.
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Type string `gorm:"size:100;not null" json:"type"`
}

// TableName определяет имя таблицы для GORM
func (Category) TableName() string {
	return "categories"
}

// Format возвращает представление категории для JSON-ответа
func (c *Category) Format() map[string]interface{} {
	return map[string]interface{}{
		"id":   c.ID,
		"type": c.Type,
	}
}

// FormatCategoryMap преобразует список категорий в словарь
// "строковый id -> type": клиенты почти всегда ищут категорию по id
func FormatCategoryMap(categories []Category) map[string]string {
	result := make(map[string]string, len(categories))
	for i := range categories {
		result[strconv.FormatUint(uint64(categories[i].ID), 10)] = categories[i].Type
	}
	return result
}
