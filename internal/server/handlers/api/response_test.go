package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbortWithError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	AbortWithError(c, http.StatusInternalServerError, CodeInternalError, errors.New("boom"))

	assert.True(t, c.IsAborted())
	assert.Len(t, c.Errors, 1)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, CodeInternalError, body.Code)
	assert.Equal(t, "boom", body.Message)
}

func TestAPIError_Error(t *testing.T) {
	err := &APIError{Code: CodeNotFound, Message: "not found"}
	assert.Equal(t, "api error: code=E_NOT_FOUND, message=not found", err.Error())
}
