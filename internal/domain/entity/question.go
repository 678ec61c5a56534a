package entity

// Question представляет вопрос викторины
type Question struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Question   string `gorm:"size:1000;not null" json:"question"`
	Answer     string `gorm:"size:500;not null" json:"answer"`
	Category   uint   `gorm:"not null;index" json:"category"`
	Difficulty int    `gorm:"not null" json:"difficulty"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// Format возвращает представление вопроса с объявленными полями
// для JSON-ответа (id, question, answer, category, difficulty)
func (q *Question) Format() map[string]interface{} {
	return map[string]interface{}{
		"id":         q.ID,
		"question":   q.Question,
		"answer":     q.Answer,
		"category":   q.Category,
		"difficulty": q.Difficulty,
	}
}

// FormatQuestions форматирует срез вопросов для JSON-ответа.
// Возвращает пустой срез (не nil), чтобы в JSON попал [], а не null.
func FormatQuestions(questions []Question) []map[string]interface{} {
	formatted := make([]map[string]interface{}, 0, len(questions))
	for i := range questions {
		formatted = append(formatted, questions[i].Format())
	}
	return formatted
}
