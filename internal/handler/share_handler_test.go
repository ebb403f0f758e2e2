package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateShareResourceUnknownCategory(t *testing.T) {
	mock := useMockDB(t)

	// the category lookup misses; no INSERT may follow
	mock.ExpectQuery(`SELECT count\(\*\) FROM "share_categories"`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	body := `{"title":"SQL Playground","link":"https://example.com","category_key":"missing"}`
	c, w := testRequest(t, http.MethodPost, "/admin/share/resources", body)
	CreateShareResource(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp FieldErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Fields["category_key"], "must exist")
	require.NoError(t, mock.ExpectationsWereMet())
}
