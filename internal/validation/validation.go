// Package validation содержит чистые проверки тел запросов.
// Валидаторы не обращаются к HTTP и хранилищу: они разбирают
// декодированный JSON и возвращают явный вердикт вместо паники
// или прерывания запроса.
package validation

import (
	"math"
	"net/http"
	"strconv"
	"strings"
)

// Verdict — результат проверки тела запроса.
// При Valid == false Code и Message описывают ошибку для клиента.
type Verdict struct {
	Valid   bool
	Code    int
	Message string
}

// CreateQuestionFormat — подсказка клиенту о формате тела создания вопроса
const CreateQuestionFormat = `The request body must be a JSON object in the below format:
                {
                    "question":  "<The question>",
                    "answer":  "<The answer>",
                    "difficulty": "<integer: the question difficulty>",
                    "category": "<integer: the question category>"
                }`

// NextQuestionFormat — подсказка клиенту о формате тела следующего вопроса
const NextQuestionFormat = `The request body must be a JSON object in the below format:
                {
                    "previous_questions":  "<List of IDs of previous questions>",
                    "quiz_category":  "<ID of the category>"
                }`

// SearchFormat — подсказка клиенту о формате тела поиска
const SearchFormat = `The request body must be a JSON object in the below format:
                {"searchTerm": "<your search keyword>"}`

const (
	integerFieldsMessage = "'category' and 'difficulty' must be integers"
	quizTypesMessage     = "'previous_questions' must be a list of integers and 'quiz_category' must be an integer"
)

func valid() Verdict {
	return Verdict{Valid: true}
}

func invalid(code int, message string) Verdict {
	return Verdict{Valid: false, Code: code, Message: message}
}

// CreateQuestionInput — разобранные поля тела создания вопроса
type CreateQuestionInput struct {
	Question   string
	Answer     string
	Category   int
	Difficulty int
}

// ValidateCreateQuestion проверяет тело запроса на создание вопроса.
// Требуются все четыре ключа: question, answer, category, difficulty.
// Пустое тело, отсутствующий ключ или пустые question/answer дают 400;
// category/difficulty, которые не разбираются как целые числа, — 422.
// Числовой ноль считается присутствующим значением.
func ValidateCreateQuestion(body map[string]interface{}) (CreateQuestionInput, Verdict) {
	var input CreateQuestionInput

	if len(body) == 0 {
		return input, invalid(http.StatusBadRequest, CreateQuestionFormat)
	}

	for _, key := range []string{"question", "answer", "category", "difficulty"} {
		value, present := body[key]
		if !present || isEmptyValue(value) {
			return input, invalid(http.StatusBadRequest, CreateQuestionFormat)
		}
	}

	question, ok := body["question"].(string)
	if !ok {
		return input, invalid(http.StatusBadRequest, CreateQuestionFormat)
	}
	answer, ok := body["answer"].(string)
	if !ok {
		return input, invalid(http.StatusBadRequest, CreateQuestionFormat)
	}

	category, ok := parseInt(body["category"])
	if !ok {
		return input, invalid(http.StatusUnprocessableEntity, integerFieldsMessage)
	}
	difficulty, ok := parseInt(body["difficulty"])
	if !ok {
		return input, invalid(http.StatusUnprocessableEntity, integerFieldsMessage)
	}

	input.Question = question
	input.Answer = answer
	input.Category = category
	input.Difficulty = difficulty
	return input, valid()
}

// NextQuestionInput — разобранные поля тела запроса следующего вопроса
type NextQuestionInput struct {
	PreviousQuestions []uint
	QuizCategory      uint
	HasCategory       bool
}

// ValidateNextQuestion проверяет тело запроса следующего вопроса викторины.
// Оба поля необязательны: previous_questions по умолчанию пуст,
// quiz_category по умолчанию означает "без фильтра по категории".
// Проверка типов применяется только к непустым значениям: присланный
// пустой список или пустая строка трактуются как "не задано".
func ValidateNextQuestion(body map[string]interface{}) (NextQuestionInput, Verdict) {
	var input NextQuestionInput

	if len(body) == 0 {
		return input, invalid(http.StatusBadRequest, NextQuestionFormat)
	}

	if value, present := body["previous_questions"]; present && !isEmptyValue(value) {
		list, ok := value.([]interface{})
		if !ok {
			return input, invalid(http.StatusUnprocessableEntity, quizTypesMessage)
		}
		previous := make([]uint, 0, len(list))
		for _, element := range list {
			id, ok := asInt(element)
			if !ok {
				return input, invalid(http.StatusUnprocessableEntity, quizTypesMessage)
			}
			previous = append(previous, uint(id))
		}
		input.PreviousQuestions = previous
	}

	if value, present := body["quiz_category"]; present && !isEmptyValue(value) {
		category, ok := asInt(value)
		if !ok {
			return input, invalid(http.StatusUnprocessableEntity, quizTypesMessage)
		}
		// Категория 0 равнозначна отсутствию фильтра
		if category != 0 {
			input.QuizCategory = uint(category)
			input.HasCategory = true
		}
	}

	return input, valid()
}

// isEmptyValue определяет "пустые" значения декодированного JSON:
// nil, false, пустую строку, пустой список и пустой объект.
// Числовой ноль пустым не считается.
func isEmptyValue(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return true
	case bool:
		return !v
	case string:
		return v == ""
	case []interface{}:
		return len(v) == 0
	case map[string]interface{}:
		return len(v) == 0
	default:
		return false
	}
}

// parseInt разбирает значение как целое число: принимает целые числа,
// числа JSON без дробной части и строки из цифр ("5" -> 5)
func parseInt(value interface{}) (int, bool) {
	if n, ok := asInt(value); ok {
		return n, true
	}
	if s, ok := value.(string); ok {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

// asInt принимает только числовые значения без дробной части.
// Строки сюда не попадают: id предыдущих вопросов и категория викторины
// должны быть именно числами.
func asInt(value interface{}) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case uint:
		return int(v), true
	case float64:
		if math.Trunc(v) != v {
			return 0, false
		}
		return int(v), true
	default:
		return 0, false
	}
}
