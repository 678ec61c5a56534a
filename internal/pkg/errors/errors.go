package errors

import (
	"errors"
	"fmt"
)

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда запись или ресурс не найдены.
	ErrNotFound = errors.New("record not found")

	// ErrNoMoreQuestions используется, когда для викторины не осталось
	// ни одного подходящего вопроса.
	ErrNoMoreQuestions = errors.New("no more questions found")

	// ErrValidation используется для ошибок валидации входных данных.
	ErrValidation = errors.New("validation failed")
)

// DuplicateQuestionError возникает при попытке создать вопрос,
// который уже существует (совпадают question, answer и category).
type DuplicateQuestionError struct {
	// ID существующего вопроса-дубликата
	ID uint
}

func (e *DuplicateQuestionError) Error() string {
	return fmt.Sprintf("The question already exists with an ID %d", e.ID)
}

// PageNotFoundError возникает при запросе страницы за пределами данных.
type PageNotFoundError struct {
	Page int
}

func (e *PageNotFoundError) Error() string {
	return fmt.Sprintf("No questions on page %d", e.Page)
}
