package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/onboardflow/onboardflow/db"
	"github.com/onboardflow/onboardflow/internal/config"
	"github.com/onboardflow/onboardflow/internal/notify"
	"github.com/onboardflow/onboardflow/internal/router"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type recordingSender struct {
	mu   sync.Mutex
	sent []notify.Email
}

func (s *recordingSender) Send(email notify.Email) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, email)
	return nil
}

func (s *recordingSender) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}

func (s *recordingSender) recipients() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var to []string
	for _, email := range s.sent {
		to = append(to, email.To)
	}
	return to
}

// setupTest swaps the global DB for a sqlmock-backed connection and wires a
// recording sender behind the notification dispatcher.
func setupTest(t *testing.T) (*gin.Engine, sqlmock.Sqlmock, *recordingSender) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	db.DB = gdb

	sender := &recordingSender{}
	notify.Init(sender)

	config.Set(config.Config{
		AppURL:              "https://onboardflow.test",
		MailFrom:            "assistant@onboardflow.com",
		StripeWebhookSecret: "whsec_test",
	})

	return router.NewRouter(), mock, sender
}

func performJSON(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader

	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	return body
}

func projectColumns() []string {
	return []string{
		"id", "created_at", "updated_at", "deleted_at",
		"photographer_id", "client_email", "name", "amount",
		"magic_link", "status", "contract_signed_at", "paid_at",
	}
}

func projectRow(id uint, status string, signedAt, paidAt *time.Time) *sqlmock.Rows {
	now := time.Now()

	return sqlmock.NewRows(projectColumns()).AddRow(
		id, now, now, nil,
		1, "client@example.com", "Johnson Family Portrait Session", int64(25000),
		"a1b2c3d4e5", status, signedAt, paidAt,
	)
}

func photographerRow() *sqlmock.Rows {
	now := time.Now()

	return sqlmock.NewRows([]string{"id", "created_at", "updated_at", "deleted_at", "email"}).
		AddRow(1, now, now, nil, "photographer@example.com")
}
