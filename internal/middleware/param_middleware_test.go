package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestExtractUintParam_ValidID(t *testing.T) {
	// Arrange
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("DELETE", "/questions/5", nil)
	c.Params = gin.Params{{Key: "id", Value: "5"}}

	// Act
	ExtractUintParam("id", "questionID")(c)

	// Assert
	require.False(t, c.IsAborted())
	assert.Equal(t, uint(5), c.MustGet("questionID"))
}

func TestExtractUintParam_NonNumericIDIsNotFound(t *testing.T) {
	// Нечисловой id — как несуществующий маршрут
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("DELETE", "/questions/abc", nil)
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	ExtractUintParam("id", "questionID")(c)

	require.True(t, c.IsAborted())
	require.Equal(t, http.StatusNotFound, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "resource not found", resp["message"])
}

func TestExtractUintParam_NegativeIDIsNotFound(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("DELETE", "/questions/-1", nil)
	c.Params = gin.Params{{Key: "id", Value: "-1"}}

	ExtractUintParam("id", "questionID")(c)

	require.True(t, c.IsAborted())
	assert.Equal(t, http.StatusNotFound, w.Code)
}
