package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Saaransh-Mehta/techfrag-your-all-in-one-newsletter/internal/config"
	"github.com/Saaransh-Mehta/techfrag-your-all-in-one-newsletter/internal/repositories"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials covers both unknown usernames and wrong
	// passwords; the two are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrMissingFields indicates username or password was empty.
	ErrMissingFields = errors.New("username and password are required")
	// ErrAccountLocked indicates too many consecutive failures; the
	// credential check is skipped entirely while locked.
	ErrAccountLocked = errors.New("account locked")
	// ErrSessionsDisabled indicates no signing secret is configured.
	ErrSessionsDisabled = errors.New("session secret not configured")
	ErrInvalidSession   = errors.New("invalid session")
)

// SessionClaims is the payload of the stateless admin session token.
type SessionClaims struct {
	UserID string `json:"sub"`
	jwt.RegisteredClaims
}

// AuthService implements the admin login flow: failed-attempt lockout,
// credential verification, and stateless signed session tokens. Sessions
// carry no server-side state, so a token cannot be revoked before its
// natural expiry; logout only clears the client cookie.
type AuthService struct {
	userRepo    repositories.UserRepository
	attempts    AttemptStore
	secret      string
	sessionTTL  time.Duration
	maxAttempts int
	lockFor     time.Duration
	now         func() time.Time
}

func NewAuthService(userRepo repositories.UserRepository, attempts AttemptStore, cfg *config.Config) (*AuthService, error) {
	sessionTTL, err := cfg.Session.GetTTL()
	if err != nil {
		return nil, fmt.Errorf("invalid session ttl: %w", err)
	}
	lockFor, err := cfg.Auth.GetLockDuration()
	if err != nil {
		return nil, fmt.Errorf("invalid lock duration: %w", err)
	}

	if cfg.Session.Secret == "" {
		log.Warn().Msg("SESSION_SECRET not set - admin sessions are disabled, all session tokens will be rejected")
	}

	return &AuthService{
		userRepo:    userRepo,
		attempts:    attempts,
		secret:      cfg.Session.Secret,
		sessionTTL:  sessionTTL,
		maxAttempts: cfg.Auth.MaxAttempts,
		lockFor:     lockFor,
		now:         time.Now,
	}, nil
}

// Login verifies credentials for username and returns a signed session token
// on success.
//
// Unknown usernames and wrong passwords surface the identical
// ErrInvalidCredentials, and both advance the failure counter, so a caller
// cannot distinguish them. While the username is locked the credential check
// is skipped and ErrAccountLocked is returned even for a correct password.
func (s *AuthService) Login(username, password string) (string, error) {
	if username == "" || password == "" {
		return "", ErrMissingFields
	}

	now := s.now().UTC()

	rec, _ := s.attempts.Get(username)
	if rec.Locked(now) {
		return "", ErrAccountLocked
	}

	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return "", fmt.Errorf("lookup user: %w", err)
	}
	if user == nil {
		// Count the failure as if a real check ran, so missing users
		// are indistinguishable from wrong passwords.
		s.recordFailure(username, rec, now)
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.recordFailure(username, rec, now)
		return "", ErrInvalidCredentials
	}

	// Full reset on success.
	s.attempts.Delete(username)

	token, err := s.CreateSessionToken(user.ID)
	if err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}
	return token, nil
}

func (s *AuthService) recordFailure(username string, rec AttemptRecord, now time.Time) {
	next := AttemptRecord{Count: rec.Count + 1}
	if next.Count >= s.maxAttempts {
		next.LockedUntil = now.Add(s.lockFor)
		log.Warn().
			Str("username", username).
			Int("failures", next.Count).
			Time("locked_until", next.LockedUntil).
			Msg("Account locked after repeated failed logins")
	}
	s.attempts.Put(username, next)
}

// CreateSessionToken mints a signed token binding userID with the configured
// expiry.
func (s *AuthService) CreateSessionToken(userID uuid.UUID) (string, error) {
	if s.secret == "" {
		return "", ErrSessionsDisabled
	}

	now := s.now().UTC()
	claims := SessionClaims{
		UserID: userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.sessionTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

// VerifySessionToken decodes a session token and returns the embedded user
// ID. Any failure (bad signature, malformed token, past expiry, missing
// secret) yields ErrInvalidSession without detail; callers treat it as
// "no session".
func (s *AuthService) VerifySessionToken(tokenStr string) (uuid.UUID, error) {
	if s.secret == "" {
		return uuid.Nil, ErrSessionsDisabled
	}

	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, ErrInvalidSession
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, ErrInvalidSession
	}
	return userID, nil
}

// SessionTTL exposes the configured token lifetime so the controller can set
// a matching cookie max-age.
func (s *AuthService) SessionTTL() time.Duration {
	return s.sessionTTL
}
