package section

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/brightpage/brightpage/internal/db/models"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	err = db.AutoMigrate(&models.ContentSection{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestCreate(t *testing.T) {
	testCases := []struct {
		name          string
		dbNil         bool
		key           string
		fields        Fields
		preCreateKey  string
		expectedError error
	}{
		{
			name:          "nil database",
			dbNil:         true,
			key:           "hero",
			expectedError: ErrDBNil,
		},
		{
			name:          "empty key",
			key:           "",
			expectedError: ErrSectionKeyEmpty,
		},
		{
			name:          "duplicate key rejected",
			key:           "hero",
			preCreateKey:  "hero",
			expectedError: ErrSectionKeyExists,
		},
		{
			name:   "successful create",
			key:    "hero",
			fields: Fields{Title: strPtr("Welcome"), Subtitle: strPtr("to the site")},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var db *gorm.DB
			if !tc.dbNil {
				db = setupTestDB(t)
			}

			if tc.preCreateKey != "" {
				_, err := Create(db, tc.preCreateKey, Fields{})
				require.NoError(t, err)
			}

			sec, err := Create(db, tc.key, tc.fields)

			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, sec)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, sec)
			assert.NotZero(t, sec.ID, "created section must have a generated id")
			assert.Equal(t, tc.key, sec.SectionKey)
			assert.True(t, sec.IsActive, "sections default to active")

			var count int64
			db.Model(&models.ContentSection{}).Where("section_key = ?", tc.key).Count(&count)
			assert.Equal(t, int64(1), count, "key must exist exactly once")
		})
	}
}

func TestGetByKey(t *testing.T) {
	db := setupTestDB(t)

	_, err := Create(db, "about", Fields{Title: strPtr("About us")})
	require.NoError(t, err)

	sec, err := GetByKey(db, "about")
	require.NoError(t, err)
	assert.Equal(t, "About us", sec.Title)

	_, err = GetByKey(db, "missing")
	require.ErrorIs(t, err, ErrSectionNotFound)

	_, err = GetByKey(db, "")
	require.ErrorIs(t, err, ErrSectionKeyEmpty)

	_, err = GetByKey(nil, "about")
	require.ErrorIs(t, err, ErrDBNil)
}

func TestGetAllOrder(t *testing.T) {
	db := setupTestDB(t)

	for _, key := range []string{"first", "second", "third"} {
		_, err := Create(db, key, Fields{})
		require.NoError(t, err)
	}

	sections, err := GetAll(db)
	require.NoError(t, err)
	require.Len(t, sections, 3)
	assert.Equal(t, "first", sections[0].SectionKey)
	assert.Equal(t, "second", sections[1].SectionKey)
	assert.Equal(t, "third", sections[2].SectionKey)
}

func TestUpdate(t *testing.T) {
	db := setupTestDB(t)

	created, err := Create(db, "services", Fields{Title: strPtr("Services")})
	require.NoError(t, err)

	t.Run("partial update keeps other fields", func(t *testing.T) {
		updated, errUpd := Update(db, created.ID, "", Fields{Subtitle: strPtr("What we do")})
		require.NoError(t, errUpd)
		assert.Equal(t, "Services", updated.Title)
		assert.Equal(t, "What we do", updated.Subtitle)
	})

	t.Run("same key accepted", func(t *testing.T) {
		updated, errUpd := Update(db, created.ID, "services", Fields{IsActive: boolPtr(false)})
		require.NoError(t, errUpd)
		assert.False(t, updated.IsActive)
	})

	t.Run("key change rejected", func(t *testing.T) {
		_, errUpd := Update(db, created.ID, "renamed", Fields{})
		require.ErrorIs(t, errUpd, ErrSectionKeyImmutable)

		sec, errGet := GetByID(db, created.ID)
		require.NoError(t, errGet)
		assert.Equal(t, "services", sec.SectionKey, "key must be unchanged after rejected update")
	})

	t.Run("unknown id", func(t *testing.T) {
		_, errUpd := Update(db, 9999, "", Fields{Title: strPtr("x")})
		require.ErrorIs(t, errUpd, ErrSectionNotFound)
	})
}

func TestDelete(t *testing.T) {
	db := setupTestDB(t)

	created, err := Create(db, "contact", Fields{})
	require.NoError(t, err)

	deleted, err := Delete(db, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	// deleting again is idempotent and reports no row removed
	deleted, err = Delete(db, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = Delete(db, 12345)
	require.NoError(t, err)
	assert.False(t, deleted)
}
