package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/freshcut-app/freshcut-api/internal/models"
	"github.com/freshcut-app/freshcut-api/internal/token"
)

func newAuthTestEnv(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Barber{}))

	h := NewAuthHandler(db, token.New("test-secret", time.Hour))
	h.emailOK = func(string) bool { return true }

	r := gin.New()
	r.POST("/api/auth/register", h.Register)
	r.POST("/api/auth/forgot", h.Forgot)
	r.POST("/api/auth/reset", h.Reset)
	return r, db
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func seedUser(t *testing.T, db *gorm.DB, email, password string) *models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		Name:         "Cliente Test",
		Email:        email,
		PasswordHash: string(hashed),
		Role:         models.RoleUser,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func reload(t *testing.T, db *gorm.DB, id string) *models.User {
	t.Helper()

	var user models.User
	require.NoError(t, db.First(&user, "id = ?", id).Error)
	return &user
}

// --------- register ---------

func TestRegisterBarberCreatesLinkedProfile(t *testing.T) {
	r, db := newAuthTestEnv(t)

	w := postJSON(t, r, "/api/auth/register", RegisterRequest{
		Name:     "Luis Navaja",
		Email:    "luis@freshcut.test",
		Password: "secret123",
		Role:     "BARBER",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var user models.User
	require.NoError(t, db.Where("email = ?", "luis@freshcut.test").First(&user).Error)
	assert.Equal(t, models.RoleBarber, user.Role)
	require.NotEmpty(t, user.BarberID)

	var barber models.Barber
	require.NoError(t, db.First(&barber, "id = ?", user.BarberID).Error)
	assert.Equal(t, "Luis Navaja", barber.Name)
	assert.True(t, barber.Active)
}

func TestRegisterUnknownBarberProfileCreatesNothing(t *testing.T) {
	r, db := newAuthTestEnv(t)

	w := postJSON(t, r, "/api/auth/register", RegisterRequest{
		Name:     "Luis Navaja",
		Email:    "luis@freshcut.test",
		Password: "secret123",
		Role:     "BARBER",
		BarberID: "no-such-profile",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var users, barbers int64
	db.Model(&models.User{}).Count(&users)
	db.Model(&models.Barber{}).Count(&barbers)
	assert.Zero(t, users)
	assert.Zero(t, barbers)
}

func TestRegisterDuplicateEmailRejected(t *testing.T) {
	r, db := newAuthTestEnv(t)
	seedUser(t, db, "ana@freshcut.test", "secret123")

	w := postJSON(t, r, "/api/auth/register", RegisterRequest{
		Name:     "Otra Ana",
		Email:    "ana@freshcut.test",
		Password: "secret123",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --------- forgot / reset ---------

func TestForgotThenResetUpdatesPassword(t *testing.T) {
	r, db := newAuthTestEnv(t)
	user := seedUser(t, db, "ana@freshcut.test", "oldpass")

	w := postJSON(t, r, "/api/auth/forgot", ForgotRequest{Email: "ana@freshcut.test"})
	require.Equal(t, http.StatusOK, w.Code)

	stored := reload(t, db, user.ID)
	require.Len(t, stored.ResetCode, 6)
	require.NotNil(t, stored.ResetExpiry)
	assert.WithinDuration(t, time.Now().Add(resetCodeTTL), *stored.ResetExpiry, time.Minute)

	w = postJSON(t, r, "/api/auth/reset", ResetRequest{
		Email:       "ana@freshcut.test",
		Code:        stored.ResetCode,
		NewPassword: "brandnew1",
	})
	require.Equal(t, http.StatusOK, w.Code)

	stored = reload(t, db, user.ID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("brandnew1")))
	assert.Empty(t, stored.ResetCode)
	assert.Nil(t, stored.ResetExpiry)
}

func TestResetCodeIsSingleUse(t *testing.T) {
	r, db := newAuthTestEnv(t)
	user := seedUser(t, db, "ana@freshcut.test", "oldpass")

	postJSON(t, r, "/api/auth/forgot", ForgotRequest{Email: "ana@freshcut.test"})
	code := reload(t, db, user.ID).ResetCode
	require.Len(t, code, 6)

	w := postJSON(t, r, "/api/auth/reset", ResetRequest{
		Email:       "ana@freshcut.test",
		Code:        code,
		NewPassword: "brandnew1",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// The cleared code cannot be replayed.
	w = postJSON(t, r, "/api/auth/reset", ResetRequest{
		Email:       "ana@freshcut.test",
		Code:        code,
		NewPassword: "evennewer2",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	stored := reload(t, db, user.ID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("brandnew1")))
}

func TestResetExpiredCodeRejected(t *testing.T) {
	r, db := newAuthTestEnv(t)
	user := seedUser(t, db, "ana@freshcut.test", "oldpass")

	expired := time.Now().Add(-time.Minute)
	require.NoError(t, db.Model(user).Updates(map[string]any{
		"reset_code":   "123456",
		"reset_expiry": expired,
	}).Error)

	w := postJSON(t, r, "/api/auth/reset", ResetRequest{
		Email:       "ana@freshcut.test",
		Code:        "123456",
		NewPassword: "brandnew1",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	stored := reload(t, db, user.ID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("oldpass")))
}

func TestResetWrongCodeRejected(t *testing.T) {
	r, db := newAuthTestEnv(t)
	user := seedUser(t, db, "ana@freshcut.test", "oldpass")

	postJSON(t, r, "/api/auth/forgot", ForgotRequest{Email: "ana@freshcut.test"})
	require.NotEmpty(t, reload(t, db, user.ID).ResetCode)

	w := postJSON(t, r, "/api/auth/reset", ResetRequest{
		Email:       "ana@freshcut.test",
		Code:        "000000",
		NewPassword: "brandnew1",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestForgotUnknownEmailAnswersGenerically(t *testing.T) {
	r, _ := newAuthTestEnv(t)

	w := postJSON(t, r, "/api/auth/forgot", ForgotRequest{Email: "nobody@freshcut.test"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "if the account exists")
}
