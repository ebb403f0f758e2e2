package handler

import (
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteProjectFreesSlug(t *testing.T) {
	mock := useMockDB(t)

	// a real DELETE, not a deleted_at update: the slug must free up for reuse
	mock.ExpectExec(`DELETE FROM "projects"`).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	c, w := testRequest(t, http.MethodDelete, "/admin/projects/7", "")
	c.Params = gin.Params{{Key: "id", Value: "7"}}
	DeleteProject(c)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteProjectMissing(t *testing.T) {
	mock := useMockDB(t)

	mock.ExpectExec(`DELETE FROM "projects"`).
		WithArgs(8).
		WillReturnResult(sqlmock.NewResult(0, 0))

	c, w := testRequest(t, http.MethodDelete, "/admin/projects/8", "")
	c.Params = gin.Params{{Key: "id", Value: "8"}}
	DeleteProject(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
