package taxonomy

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticleCategoryDeleteInUse(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewArticleCategoryStore(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "article_categories"`).
		WithArgs(3, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug"}).AddRow(3, "Notes", "notes"))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "articles"`).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectRollback()

	err := store.Delete(3)
	var ce *ConflictError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "category", ce.Field)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestArticleCategoryDeleteFreesSlug(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewArticleCategoryStore(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "article_categories"`).
		WithArgs(3, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug"}).AddRow(3, "Notes", "notes"))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "articles"`).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	// a real DELETE, not a deleted_at update: the row must stop owning its slug
	mock.ExpectExec(`DELETE FROM "article_categories"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, store.Delete(3))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestArticleCategoryDeleteMissing(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewArticleCategoryStore(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "article_categories"`).
		WithArgs(9, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	assert.ErrorIs(t, store.Delete(9), ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
