package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ai-software-engineering-group/tech-store-website/models"
)

type apiResponse struct {
	Status  bool           `json:"status"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
}

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-jwt-secret")
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	r := gin.New()
	r.POST("/api/auth/register", Register(db))
	r.POST("/api/auth/login", Login(db))
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func parseAuthResponse(t *testing.T, w *httptest.ResponseRecorder) apiResponse {
	t.Helper()
	var resp apiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

const registerBody = `{
	"username": "alice",
	"email": "alice@example.com",
	"password": "secret1",
	"confirm_password": "secret1"
}`

func TestRegisterAndLogin(t *testing.T) {
	r := newAuthRouter(t)

	w := postJSON(r, "/api/auth/register", registerBody)
	require.Equal(t, http.StatusOK, w.Code)
	resp := parseAuthResponse(t, w)
	require.True(t, resp.Status)
	userID, _ := resp.Data["user_id"].(string)
	require.NotEmpty(t, userID)

	w = postJSON(r, "/api/auth/login", `{"username":"alice","password":"secret1"}`)
	require.Equal(t, http.StatusOK, w.Code)
	resp = parseAuthResponse(t, w)
	require.True(t, resp.Status)
	assert.Equal(t, userID, resp.Data["user_id"])

	// Issued token must verify against the signing secret and carry the
	// user id claim the middleware keys on.
	tokenString, _ := resp.Data["token"].(string)
	require.NotEmpty(t, tokenString)
	token, err := jwt.Parse(tokenString, func(*jwt.Token) (interface{}, error) {
		return []byte("test-jwt-secret"), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, userID, claims["user_id"])
	assert.Equal(t, "user", claims["role"])
}

func TestRegisterPasswordMismatch(t *testing.T) {
	r := newAuthRouter(t)

	w := postJSON(r, "/api/auth/register", `{
		"username": "alice",
		"email": "alice@example.com",
		"password": "secret1",
		"confirm_password": "other12"
	}`)
	require.Equal(t, http.StatusOK, w.Code)
	resp := parseAuthResponse(t, w)
	assert.False(t, resp.Status)
	assert.Equal(t, "Passwords do not match", resp.Message)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	r := newAuthRouter(t)

	require.Equal(t, http.StatusOK, postJSON(r, "/api/auth/register", registerBody).Code)

	w := postJSON(r, "/api/auth/register", `{
		"username": "alice",
		"email": "other@example.com",
		"password": "secret1",
		"confirm_password": "secret1"
	}`)
	require.Equal(t, http.StatusOK, w.Code)
	resp := parseAuthResponse(t, w)
	assert.False(t, resp.Status)
	assert.Equal(t, "This username is already taken", resp.Message)
}

func TestRegisterValidation(t *testing.T) {
	r := newAuthRouter(t)

	// Short password fails the binding rules before any handler logic.
	w := postJSON(r, "/api/auth/register", `{
		"username": "alice",
		"email": "alice@example.com",
		"password": "abc",
		"confirm_password": "abc"
	}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	r := newAuthRouter(t)

	require.Equal(t, http.StatusOK, postJSON(r, "/api/auth/register", registerBody).Code)

	w := postJSON(r, "/api/auth/login", `{"username":"alice","password":"wrong12"}`)
	require.Equal(t, http.StatusOK, w.Code)
	resp := parseAuthResponse(t, w)
	assert.False(t, resp.Status)
	assert.Equal(t, "Incorrect username or password", resp.Message)
}
