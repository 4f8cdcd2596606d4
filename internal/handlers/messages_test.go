package handlers

import (
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/corpweb/internal/services"
)

func TestCreateMessageValidation(t *testing.T) {
	h := NewMessageHandler(setupMockDB(t), nil, nil, "")

	app := newTestApp()
	app.Post("/api/messages", h.CreateMessage)

	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"email":"a@b.com","body":"hello"}`},
		{"missing email", `{"name":"visitor","body":"hello"}`},
		{"missing body", `{"name":"visitor","email":"a@b.com"}`},
		{"invalid email", `{"name":"visitor","email":"not-an-email","body":"hello"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/messages", jsonBody(tt.body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, 400, resp.StatusCode)
		})
	}
}

func TestDeleteMessageRecordsAuditEntry(t *testing.T) {
	db, mock := setupMockDBConn(t)
	h := NewMessageHandler(db, nil, services.NewActivityRecorder(db), "")

	app := newTestApp()
	app.Delete("/api/admin/messages/:id", h.DeleteMessage)

	id := uuid.New()
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "messages"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "activity_logs"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	req := httptest.NewRequest("DELETE", "/api/admin/messages/"+id.String(), nil)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 204, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet(), "deleting a message must append an audit entry")
}
