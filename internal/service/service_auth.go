package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/MKhiriev/go-exchange-admin/internal/config"
	"github.com/MKhiriev/go-exchange-admin/internal/crypto"
	"github.com/MKhiriev/go-exchange-admin/internal/logger"
	"github.com/MKhiriev/go-exchange-admin/internal/utils"
	"github.com/MKhiriev/go-exchange-admin/models"
)

// adminSession is the active session of one operator. ctx is cancelled with
// ErrSessionSuperseded when a newer login replaces it.
type adminSession struct {
	id     string
	ctx    context.Context
	cancel context.CancelCauseFunc
}

// authService is the concrete implementation of AuthService.
type authService struct {
	// users maps an operator name to its argon2id "salt:hash".
	users map[string]string

	// limiters bound login attempts per configured operator. Names not in
	// users share the bucket under the empty key. Guarded by mu.
	limiters   map[string]*rate.Limiter
	loginRate  rate.Limit
	loginBurst int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	ids *utils.UUIDGenerator

	mu       sync.Mutex
	sessions map[string]*adminSession

	logger *logger.Logger
}

// NewAuthService constructs an AuthService for the operators listed in
// cfg.AdminUsers. Every hash is checked up front; a malformed one fails with
// ErrInvalidAdminUser.
func NewAuthService(cfg config.App, logger *logger.Logger) (AuthService, error) {
	users := make(map[string]string, len(cfg.AdminUsers))
	for username, hash := range cfg.AdminUsers {
		if username == "" {
			return nil, fmt.Errorf("%w: empty username", ErrInvalidAdminUser)
		}
		if err := crypto.ValidateHash(hash); err != nil {
			return nil, fmt.Errorf("%w: user %q: %w", ErrInvalidAdminUser, username, err)
		}
		users[username] = hash
	}

	return &authService{
		users:         users,
		limiters:      make(map[string]*rate.Limiter),
		loginRate:     rate.Limit(cfg.LoginRate),
		loginBurst:    cfg.LoginBurst,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		ids:           utils.NewUUIDGenerator(),
		sessions:      make(map[string]*adminSession),
		logger:        logger,
	}, nil
}

// Login implements [AuthService].
func (a *authService) Login(ctx context.Context, username, password string) (models.Token, error) {
	log := logger.FromContext(ctx)

	if !a.limiterFor(username).Allow() {
		log.Warn().Str("username", username).Msg("login rate exceeded")
		return models.Token{}, ErrTooManyLoginAttempts
	}

	hash, ok := a.users[username]
	if !ok {
		log.Warn().Str("username", username).Msg("login attempt for unknown operator")
		return models.Token{}, ErrInvalidCredentials
	}

	match, err := crypto.VerifyPassword(password, hash)
	if err != nil || !match {
		log.Warn().Str("username", username).Msg("wrong password")
		return models.Token{}, ErrInvalidCredentials
	}

	sessionID := a.ids.Generate()
	token, err := utils.GenerateJWTToken(a.tokenIssuer, username, sessionID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	a.startSession(username, sessionID)
	log.Info().Str("username", username).Str("session_id", sessionID).Msg("operator logged in")

	return token, nil
}

func (a *authService) limiterFor(username string) *rate.Limiter {
	key := username
	if _, ok := a.users[username]; !ok {
		key = ""
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	limiter, ok := a.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(a.loginRate, a.loginBurst)
		a.limiters[key] = limiter
	}
	return limiter
}

func (a *authService) startSession(username, sessionID string) {
	ctx, cancel := context.WithCancelCause(context.Background())

	a.mu.Lock()
	previous := a.sessions[username]
	a.sessions[username] = &adminSession{id: sessionID, ctx: ctx, cancel: cancel}
	a.mu.Unlock()

	if previous != nil {
		a.logger.Warn().Str("username", username).Str("session_id", previous.id).
			Msg("operator logged in from a new location, terminating the old session")
		previous.cancel(ErrSessionSuperseded)
	}
}

// Authenticate implements [AuthService].
func (a *authService) Authenticate(ctx context.Context, rawToken string) (context.Context, context.CancelFunc, error) {
	token, err := utils.ValidateAndParseJWTToken(rawToken, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}

	a.mu.Lock()
	session := a.sessions[token.Username()]
	a.mu.Unlock()

	if session == nil || session.id != token.SessionID() {
		return nil, nil, ErrSessionNotActive
	}

	callCtx, cancel := context.WithCancelCause(utils.WithSession(ctx, token.Username(), token.SessionID()))
	stop := context.AfterFunc(session.ctx, func() {
		cancel(context.Cause(session.ctx))
	})

	return callCtx, func() {
		stop()
		cancel(context.Canceled)
	}, nil
}
