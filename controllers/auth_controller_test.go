package controllers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"nutrifind/services"
)

func authRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		DriverName:           "postgres",
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	ac := NewAuthController(services.NewAuthService(db, []byte("test-secret")))
	r := gin.New()
	r.POST("/auth/register", ac.Register)
	return r, mock
}

func postRegister(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const registerBody = `{"email": "eater@example.com", "password": "hunter22!", "full_name": "Test Eater"}`

func TestRegisterSuccess(t *testing.T) {
	r, mock := authRouter(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	w := postRegister(r, registerBody)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A taken email is a conflict, not a server error.
func TestRegisterDuplicateEmail(t *testing.T) {
	r, mock := authRouter(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnError(gorm.ErrDuplicatedKey)
	mock.ExpectRollback()

	w := postRegister(r, registerBody)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already registered")
}

func TestRegisterRejectsBadEmail(t *testing.T) {
	r, _ := authRouter(t)

	w := postRegister(r, `{"email": "not-an-email", "password": "hunter22!", "full_name": "X"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
