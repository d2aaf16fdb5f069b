package services_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Saaransh-Mehta/techfrag-your-all-in-one-newsletter/internal/controllers"
	"github.com/Saaransh-Mehta/techfrag-your-all-in-one-newsletter/internal/models"
	"github.com/Saaransh-Mehta/techfrag-your-all-in-one-newsletter/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoginRouter(t *testing.T, user *models.User) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := newTestConfig()
	svc, err := services.NewAuthService(userRepoWith(user), services.NewMemoryAttemptStore(), cfg)
	require.NoError(t, err)

	controller := controllers.NewAuthController(svc, cfg)

	router := gin.New()
	router.POST("/api/auth/login", controller.Login)
	router.POST("/api/auth/logout", controller.Logout)
	return router
}

func doLogin(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestLoginEndpoint_Success_SetsSessionCookie(t *testing.T) {
	user := newTestUser(t, "admin")
	router := newLoginRouter(t, user)

	w := doLogin(router, `{"username":"admin","password":"`+testPassword+`"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, "admin_session", cookie.Name)
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/", cookie.Path)
	// Cookie lifetime matches the 7 day token expiry.
	assert.Equal(t, 7*24*60*60, cookie.MaxAge)
}

func TestLoginEndpoint_MissingFields(t *testing.T) {
	router := newLoginRouter(t, newTestUser(t, "admin"))

	w := doLogin(router, `{"username":"admin"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doLogin(router, `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginEndpoint_UnknownUserAndWrongPasswordAreIdentical(t *testing.T) {
	router := newLoginRouter(t, newTestUser(t, "admin"))

	unknown := doLogin(router, `{"username":"nosuchuser","password":"whatever"}`)
	wrongPass := doLogin(router, `{"username":"admin","password":"wrong-password"}`)

	// Anti-enumeration: the two failures are byte-for-byte identical.
	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, http.StatusUnauthorized, wrongPass.Code)
	assert.Equal(t, unknown.Body.Bytes(), wrongPass.Body.Bytes())
}

func TestLoginEndpoint_LockedAccountGets423(t *testing.T) {
	router := newLoginRouter(t, newTestUser(t, "admin"))

	for i := 0; i < 5; i++ {
		w := doLogin(router, `{"username":"admin","password":"wrong-password"}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	}

	w := doLogin(router, `{"username":"admin","password":"`+testPassword+`"}`)
	assert.Equal(t, http.StatusLocked, w.Code)
	assert.Contains(t, w.Body.String(), "Account locked")
}

func TestLogoutEndpoint_ClearsCookie(t *testing.T) {
	router := newLoginRouter(t, newTestUser(t, "admin"))

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "admin_session", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Less(t, cookies[0].MaxAge, 0)
}
