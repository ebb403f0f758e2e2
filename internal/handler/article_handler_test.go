package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteArticleRemovesRowAndMemberships(t *testing.T) {
	mock := useMockDB(t)

	mock.ExpectBegin()
	// a real DELETE, not a deleted_at update: the slug must free up for reuse
	mock.ExpectExec(`DELETE FROM "articles"`).
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "article_tags"`).
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	c, w := testRequest(t, http.MethodDelete, "/admin/articles/5", "")
	c.Params = gin.Params{{Key: "id", Value: "5"}}
	DeleteArticle(c)

	assert.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteArticleMissing(t *testing.T) {
	mock := useMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "articles"`).
		WithArgs(9).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	c, w := testRequest(t, http.MethodDelete, "/admin/articles/9", "")
	c.Params = gin.Params{{Key: "id", Value: "9"}}
	DeleteArticle(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTogglePublishArticleReturnsTagsAndCategory(t *testing.T) {
	mock := useMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "articles"`).
		WithArgs(5, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "slug", "content", "published", "category_id"}).
			AddRow(5, "Post", "post", "body", false, 2))
	mock.ExpectExec(`UPDATE "articles" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	// the response is rebuilt from a preloaded reload; the reload runs on the
	// already-loaded struct, so gorm repeats the primary-key condition
	mock.ExpectQuery(`SELECT \* FROM "articles"`).
		WithArgs(5, 5, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "slug", "content", "published", "category_id"}).
			AddRow(5, "Post", "post", "body", true, 2))
	mock.ExpectQuery(`SELECT \* FROM "article_categories"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug"}).AddRow(2, "Notes", "notes"))
	mock.ExpectQuery(`SELECT \* FROM "article_tags"`).
		WillReturnRows(sqlmock.NewRows([]string{"article_id", "tag_id"}).AddRow(5, 3))
	mock.ExpectQuery(`SELECT \* FROM "tags"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug"}).AddRow(3, "Go", "go"))

	c, w := testRequest(t, http.MethodPost, "/admin/articles/5/publish", "")
	c.Params = gin.Params{{Key: "id", Value: "5"}}
	TogglePublishArticle(c)

	require.Equal(t, http.StatusOK, w.Code)

	var resp ArticleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Published)
	require.NotNil(t, resp.Category)
	assert.Equal(t, "notes", resp.Category.Slug)
	require.Len(t, resp.Tags, 1)
	assert.Equal(t, "go", resp.Tags[0].Slug)
	require.NoError(t, mock.ExpectationsWereMet())
}
