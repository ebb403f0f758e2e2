package handler

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wuchib/cbiu-website/internal/taxonomy"
)

func respond(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	respondDomainError(c, err)
	return w
}

func TestRespondValidationError(t *testing.T) {
	w := respond(t, &taxonomy.ValidationError{Field: "slug", Message: "bad pattern"})
	assert.Equal(t, 400, w.Code)

	var body FieldErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "bad pattern", body.Fields["slug"])
}

func TestRespondConflictError(t *testing.T) {
	w := respond(t, &taxonomy.ConflictError{Field: "slug", Message: "slug is already taken"})
	assert.Equal(t, 409, w.Code)

	var body FieldErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "slug is already taken", body.Fields["slug"])
}

func TestRespondNotFound(t *testing.T) {
	w := respond(t, taxonomy.ErrNotFound)
	assert.Equal(t, 404, w.Code)
}

func TestRespondUnknownErrorIsGeneric(t *testing.T) {
	w := respond(t, assert.AnError)
	assert.Equal(t, 500, w.Code)
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}
