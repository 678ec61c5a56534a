package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// envelope собирает стандартный успешный ответ:
// {success, status_code, message, ...payload}
func envelope(statusCode int, message string, payload gin.H) gin.H {
	response := gin.H{
		"success":     true,
		"status_code": statusCode,
		"message":     message,
	}
	for key, value := range payload {
		response[key] = value
	}
	return response
}

// respondOK отправляет успешный ответ с кодом 200 и сообщением "OK"
func respondOK(c *gin.Context, payload gin.H) {
	c.JSON(http.StatusOK, envelope(http.StatusOK, "OK", payload))
}

// respondError отправляет ответ с ошибкой в стандартном конверте:
// {success: false, error, message}
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   status,
		"message": message,
	})
}

// RegisterFallbackHandlers вешает на роутер конверты для
// несуществующих маршрутов (404) и неподдерживаемых методов (405)
func RegisterFallbackHandlers(router *gin.Engine) {
	router.HandleMethodNotAllowed = true

	router.NoRoute(func(c *gin.Context) {
		respondError(c, http.StatusNotFound, "resource not found")
	})
	router.NoMethod(func(c *gin.Context) {
		respondError(c, http.StatusMethodNotAllowed, "method not allowed")
	})
}
