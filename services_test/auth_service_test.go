package services_test

import (
	"testing"
	"time"

	"github.com/Saaransh-Mehta/techfrag-your-all-in-one-newsletter/internal/models"
	"github.com/Saaransh-Mehta/techfrag-your-all-in-one-newsletter/internal/repositories"
	"github.com/Saaransh-Mehta/techfrag-your-all-in-one-newsletter/internal/services"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testPassword = "correct-horse-battery"

func newTestUser(t *testing.T, username string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	return &models.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: string(hash),
	}
}

func newAuthService(t *testing.T, repo repositories.UserRepository, attempts services.AttemptStore) *services.AuthService {
	t.Helper()

	svc, err := services.NewAuthService(repo, attempts, newTestConfig())
	require.NoError(t, err)
	return svc
}

func userRepoWith(user *models.User) *mockUserRepo {
	return &mockUserRepo{
		getByUsernameFunc: func(username string) (*models.User, error) {
			if user != nil && username == user.Username {
				return user, nil
			}
			return nil, nil
		},
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	user := newTestUser(t, "admin")
	attempts := services.NewMemoryAttemptStore()
	svc := newAuthService(t, userRepoWith(user), attempts)

	token, err := svc.Login("admin", testPassword)

	require.NoError(t, err)
	require.NotEmpty(t, token)

	gotID, err := svc.VerifySessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, gotID)
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	attempts := services.NewMemoryAttemptStore()
	svc := newAuthService(t, userRepoWith(nil), attempts)

	_, err := svc.Login("", "password")
	assert.ErrorIs(t, err, services.ErrMissingFields)

	_, err = svc.Login("admin", "")
	assert.ErrorIs(t, err, services.ErrMissingFields)

	// Malformed input never touches the attempt tracker.
	_, tracked := attempts.Get("admin")
	assert.False(t, tracked)
}

func TestAuthService_Login_UnknownUserAndWrongPasswordLookIdentical(t *testing.T) {
	user := newTestUser(t, "admin")
	svc := newAuthService(t, userRepoWith(user), services.NewMemoryAttemptStore())

	_, unknownErr := svc.Login("nosuchuser", "whatever")
	_, wrongPassErr := svc.Login("admin", "wrong-password")

	require.Error(t, unknownErr)
	require.Error(t, wrongPassErr)
	assert.ErrorIs(t, unknownErr, services.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPassErr, services.ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongPassErr.Error())
}

func TestAuthService_Login_LockoutAfterMaxAttempts(t *testing.T) {
	user := newTestUser(t, "admin")
	attempts := services.NewMemoryAttemptStore()
	svc := newAuthService(t, userRepoWith(user), attempts)

	for i := 0; i < 5; i++ {
		_, err := svc.Login("admin", "wrong-password")
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	}

	rec, ok := attempts.Get("admin")
	require.True(t, ok)
	assert.Equal(t, 5, rec.Count)
	assert.True(t, rec.LockedUntil.After(time.Now()))

	// Even the correct password is rejected while locked; the credential
	// check must not run.
	_, err := svc.Login("admin", testPassword)
	assert.ErrorIs(t, err, services.ErrAccountLocked)
}

func TestAuthService_Login_UnknownUserAdvancesLockout(t *testing.T) {
	attempts := services.NewMemoryAttemptStore()
	svc := newAuthService(t, userRepoWith(nil), attempts)

	for i := 0; i < 5; i++ {
		_, err := svc.Login("ghost", "whatever")
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	}

	_, err := svc.Login("ghost", "whatever")
	assert.ErrorIs(t, err, services.ErrAccountLocked)
}

func TestAuthService_Login_ExpiredLockoutResets(t *testing.T) {
	user := newTestUser(t, "admin")
	attempts := services.NewMemoryAttemptStore()
	svc := newAuthService(t, userRepoWith(user), attempts)

	attempts.Put("admin", services.AttemptRecord{
		Count:       5,
		LockedUntil: time.Now().Add(-time.Minute),
	})

	token, err := svc.Login("admin", testPassword)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	// Success removes the record entirely.
	_, ok := attempts.Get("admin")
	assert.False(t, ok)
}

func TestAuthService_Login_SuccessResetsFailureCount(t *testing.T) {
	user := newTestUser(t, "admin")
	attempts := services.NewMemoryAttemptStore()
	svc := newAuthService(t, userRepoWith(user), attempts)

	for i := 0; i < 3; i++ {
		_, err := svc.Login("admin", "wrong-password")
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	}

	_, err := svc.Login("admin", testPassword)
	require.NoError(t, err)

	_, ok := attempts.Get("admin")
	assert.False(t, ok)

	// The counter starts over after a successful login.
	_, err = svc.Login("admin", "wrong-password")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	rec, ok := attempts.Get("admin")
	require.True(t, ok)
	assert.Equal(t, 1, rec.Count)
}

func TestAuthService_VerifySessionToken_Expired(t *testing.T) {
	cfg := newTestConfig()
	svc := newAuthService(t, userRepoWith(nil), services.NewMemoryAttemptStore())

	// Mint a token with a valid signature but an expiry in the past.
	userID := uuid.New()
	claims := services.SessionClaims{
		UserID: userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-48 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-24 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.Session.Secret))
	require.NoError(t, err)

	_, err = svc.VerifySessionToken(token)
	assert.ErrorIs(t, err, services.ErrInvalidSession)
}

func TestAuthService_VerifySessionToken_BadSignature(t *testing.T) {
	svc := newAuthService(t, userRepoWith(nil), services.NewMemoryAttemptStore())

	userID := uuid.New()
	claims := services.SessionClaims{
		UserID: userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("some-other-secret"))
	require.NoError(t, err)

	_, err = svc.VerifySessionToken(token)
	assert.ErrorIs(t, err, services.ErrInvalidSession)

	_, err = svc.VerifySessionToken("not-a-token")
	assert.ErrorIs(t, err, services.ErrInvalidSession)
}

func TestAuthService_DisabledWithoutSecret(t *testing.T) {
	cfg := newTestConfig()
	cfg.Session.Secret = ""

	user := newTestUser(t, "admin")
	svc, err := services.NewAuthService(userRepoWith(user), services.NewMemoryAttemptStore(), cfg)
	require.NoError(t, err)

	// Correct credentials cannot produce a session without a secret.
	_, err = svc.Login("admin", testPassword)
	assert.Error(t, err)

	_, err = svc.VerifySessionToken("anything")
	assert.ErrorIs(t, err, services.ErrSessionsDisabled)
}
