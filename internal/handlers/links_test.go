package handlers_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMagicLink(t *testing.T) {
	request := map[string]interface{}{
		"photographer_email": "Photographer@Example.com",
		"client_email":       "client@example.com",
		"project_name":       "Johnson Family Portrait Session",
		"amount":             250.00,
	}

	t.Run("creates photographer and project for a new email", func(t *testing.T) {
		r, mock, sender := setupTest(t)

		mock.ExpectQuery(`SELECT (.+) FROM "photographers"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "email"}))
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "photographers"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
		mock.ExpectCommit()
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "projects"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
		mock.ExpectCommit()

		w := performJSON(t, r, http.MethodPost, "/api/links", request)

		require.Equal(t, http.StatusCreated, w.Code)

		body := decodeBody(t, w)
		url := body["url"].(string)
		slug := body["slug"].(string)

		assert.Len(t, slug, 10)
		assert.Equal(t, "https://onboardflow.test/client/"+slug, url)

		require.Eventually(t, func() bool {
			return sender.count() == 1
		}, time.Second, 10*time.Millisecond)
		assert.Equal(t, []string{"photographer@example.com"}, sender.recipients())

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reuses an existing photographer", func(t *testing.T) {
		r, mock, sender := setupTest(t)
		now := time.Now()

		mock.ExpectQuery(`SELECT (.+) FROM "photographers"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at", "deleted_at", "email"}).
				AddRow(42, now, now, nil, "photographer@example.com"))
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "projects"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(8))
		mock.ExpectCommit()

		w := performJSON(t, r, http.MethodPost, "/api/links", request)

		require.Equal(t, http.StatusCreated, w.Code)

		require.Eventually(t, func() bool {
			return sender.count() == 1
		}, time.Second, 10*time.Millisecond)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects an invalid email", func(t *testing.T) {
		r, _, _ := setupTest(t)

		bad := map[string]interface{}{
			"photographer_email": "not-an-email",
			"client_email":       "client@example.com",
			"project_name":       "Johnson Family Portrait Session",
			"amount":             250.00,
		}

		w := performJSON(t, r, http.MethodPost, "/api/links", bad)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects a non-positive amount", func(t *testing.T) {
		r, _, _ := setupTest(t)

		bad := map[string]interface{}{
			"photographer_email": "photographer@example.com",
			"client_email":       "client@example.com",
			"project_name":       "Johnson Family Portrait Session",
			"amount":             -5,
		}

		w := performJSON(t, r, http.MethodPost, "/api/links", bad)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("surfaces project insert failure", func(t *testing.T) {
		r, mock, _ := setupTest(t)
		now := time.Now()

		mock.ExpectQuery(`SELECT (.+) FROM "photographers"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at", "deleted_at", "email"}).
				AddRow(42, now, now, nil, "photographer@example.com"))
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "projects"`).
			WillReturnError(assert.AnError)
		mock.ExpectRollback()

		w := performJSON(t, r, http.MethodPost, "/api/links", request)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.True(t, strings.Contains(w.Body.String(), "Internal server error"))
	})
}
