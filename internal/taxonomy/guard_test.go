package taxonomy

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckAvailableRejectsBadPattern(t *testing.T) {
	db, mock := newMockDB(t)
	g := NewSlugGuard(db)

	for _, slug := range []string{"", "Hello", "hello world", "héllo"} {
		err := g.CheckAvailable(EntityArticle, slug, 0)
		var ve *ValidationError
		require.ErrorAs(t, err, &ve, "slug %q", slug)
		assert.Equal(t, "slug", ve.Field)
	}

	// pattern failures never reach storage
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckAvailableFreeSlug(t *testing.T) {
	db, mock := newMockDB(t)
	g := NewSlugGuard(db)

	mock.ExpectQuery(`SELECT "id" FROM "articles"`).
		WithArgs("my-post", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	assert.NoError(t, g.CheckAvailable(EntityArticle, "my-post", 0))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckAvailableConflict(t *testing.T) {
	db, mock := newMockDB(t)
	g := NewSlugGuard(db)

	mock.ExpectQuery(`SELECT "id" FROM "articles"`).
		WithArgs("my-post", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

	err := g.CheckAvailable(EntityArticle, "my-post", 0)
	var ce *ConflictError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "slug", ce.Field)
}

func TestCheckAvailableUnchangedSlugOnUpdate(t *testing.T) {
	db, mock := newMockDB(t)
	g := NewSlugGuard(db)

	// the only owner is the entity being updated: not a conflict
	mock.ExpectQuery(`SELECT "id" FROM "articles"`).
		WithArgs("my-post", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

	assert.NoError(t, g.CheckAvailable(EntityArticle, "my-post", 5))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckAvailableSlugTakenByOtherID(t *testing.T) {
	db, mock := newMockDB(t)
	g := NewSlugGuard(db)

	mock.ExpectQuery(`SELECT "id" FROM "articles"`).
		WithArgs("my-post", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

	err := g.CheckAvailable(EntityArticle, "my-post", 9)
	var ce *ConflictError
	require.ErrorAs(t, err, &ce)
}

func TestCheckAvailablePerEntityNamespaces(t *testing.T) {
	db, mock := newMockDB(t)
	g := NewSlugGuard(db)

	// a project may reuse an article's slug; only its own table is consulted
	mock.ExpectQuery(`SELECT "id" FROM "projects"`).
		WithArgs("my-post", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	assert.NoError(t, g.CheckAvailable(EntityProject, "my-post", 0))
	require.NoError(t, mock.ExpectationsWereMet())
}
