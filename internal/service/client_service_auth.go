package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/career-dashboard/internal/adapter"
	"github.com/MKhiriev/career-dashboard/internal/app"
	"github.com/MKhiriev/career-dashboard/internal/logger"
	"github.com/MKhiriev/career-dashboard/internal/session"
	"github.com/MKhiriev/career-dashboard/internal/store"
	"github.com/MKhiriev/career-dashboard/internal/utils"
	"github.com/MKhiriev/career-dashboard/models"
)

const (
	loginPath   = "/auth/login"
	signupPath  = "/auth/signup"
	profilePath = "/auth/profile"
)

type authService struct {
	dispatcher  adapter.Dispatcher
	credentials store.CredentialStore
	session     *session.Store
	now         func() time.Time

	mu              sync.RWMutex
	logoutListeners []func()

	logger *logger.Logger
}

// NewAuthService wires the auth manager and registers it with the
// dispatcher so that any 401 resets the session.
func NewAuthService(dispatcher adapter.Dispatcher, credentials store.CredentialStore, sess *session.Store, logger *logger.Logger) AuthService {
	a := &authService{
		dispatcher:  dispatcher,
		credentials: credentials,
		session:     sess,
		now:         time.Now,
		logger:      logger,
	}
	dispatcher.OnUnauthorized(a.handleUnauthorized)
	return a
}

func (a *authService) Login(ctx context.Context, creds models.AuthRequest) (models.User, error) {
	return a.authenticate(ctx, loginPath, creds)
}

func (a *authService) Signup(ctx context.Context, creds models.AuthRequest) (models.User, error) {
	return a.authenticate(ctx, signupPath, creds)
}

func (a *authService) authenticate(ctx context.Context, path string, creds models.AuthRequest) (models.User, error) {
	var resp models.AuthResponse
	if err := a.dispatcher.Post(ctx, path, creds, &resp); err != nil {
		return models.User{}, err
	}

	if !resp.Success {
		msg := strings.TrimSpace(resp.Message)
		if msg == "" {
			msg = app.MsgGeneric
		}
		return models.User{}, adapter.NewValidationError(msg, ErrAuthRejected)
	}

	if !resp.Complete() {
		a.logger.Warn().Str("func", "authService.authenticate").Str("path", path).
			Bool("has_token", resp.Token != "").Bool("has_user", resp.User != nil).
			Msg("success response without token or user")
		return models.User{}, adapter.NewValidationError(app.MsgMalformedAuthResponse, ErrMalformedAuthResponse)
	}

	if utils.IsTokenExpired(resp.Token, a.now()) {
		a.logger.Warn().Str("func", "authService.authenticate").Str("path", path).
			Msg("success response carries an expired token")
		return models.User{}, adapter.NewValidationError(app.MsgMalformedAuthResponse, ErrExpiredToken)
	}

	user := *resp.User
	if err := a.credentials.Save(ctx, resp.Token, user); err != nil {
		a.logger.Err(err).Str("func", "authService.authenticate").Msg("failed to persist credentials")
		return models.User{}, fmt.Errorf("%w: %w", ErrPersistSession, err)
	}

	a.session.SetAuthenticated(user)
	a.logger.Info().Str("func", "authService.authenticate").Str("user_id", user.ID).Msg("session opened")

	return user, nil
}

func (a *authService) Logout(ctx context.Context) {
	if err := a.credentials.Clear(ctx); err != nil {
		a.logger.Err(err).Str("func", "authService.Logout").Msg("failed to clear credentials")
	}
	a.endSession("logout")
}

func (a *authService) handleUnauthorized(_ context.Context) {
	// credentials were already cleared by the dispatcher
	a.endSession("unauthorized")
}

func (a *authService) endSession(reason string) {
	a.session.SetUnauthenticated()
	a.logger.Info().Str("func", "authService.endSession").Str("reason", reason).Msg("session closed")

	a.mu.RLock()
	listeners := make([]func(), len(a.logoutListeners))
	copy(listeners, a.logoutListeners)
	a.mu.RUnlock()

	for _, fn := range listeners {
		fn()
	}
}

func (a *authService) Restore(ctx context.Context) bool {
	creds, err := a.credentials.Load(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrCredentialsNotFound) {
			a.logger.Err(err).Str("func", "authService.Restore").Msg("failed to load credentials")
		}
		a.session.SetUnauthenticated()
		return false
	}

	if utils.IsTokenExpired(creds.Token, a.now()) {
		a.logger.Info().Str("func", "authService.Restore").Msg("stored token expired")
		if err = a.credentials.Clear(ctx); err != nil {
			a.logger.Err(err).Str("func", "authService.Restore").Msg("failed to clear expired credentials")
		}
		a.session.SetUnauthenticated()
		return false
	}

	a.session.SetAuthenticated(creds.User)
	return true
}

func (a *authService) IsAuthenticated() bool {
	token := a.credentials.Token()
	return token != "" && !utils.IsTokenExpired(token, a.now())
}

func (a *authService) Token() string {
	return a.credentials.Token()
}

func (a *authService) CurrentUser() *models.User {
	return a.session.User()
}

func (a *authService) GetProfile(ctx context.Context) (models.User, error) {
	resp, err := adapter.Get[models.User](ctx, a.dispatcher, profilePath)
	if err != nil {
		return models.User{}, err
	}

	user, ok := profileFrom(resp)
	if !ok {
		return models.User{}, adapter.NewUnexpectedResponseError(ErrEmptyProfile)
	}
	return user, nil
}

func (a *authService) UpdateProfile(ctx context.Context, user models.User) (models.User, error) {
	resp, err := adapter.Put[models.User](ctx, a.dispatcher, profilePath, user)
	if err != nil {
		return models.User{}, err
	}

	updated, ok := profileFrom(resp)
	if !ok {
		return user, nil
	}

	token := a.credentials.Token()
	if token == "" {
		return models.User{}, ErrNotAuthenticated
	}
	if err = a.credentials.Save(ctx, token, updated); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrPersistSession, err)
	}
	a.session.SetAuthenticated(updated)

	return updated, nil
}

// profileFrom accepts the user either as data or as the top-level user field.
func profileFrom(resp models.APIResponse[models.User]) (models.User, bool) {
	if resp.Data != nil {
		return *resp.Data, true
	}
	if resp.User != nil {
		return *resp.User, true
	}
	return models.User{}, false
}

func (a *authService) OnLogout(fn func()) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.logoutListeners = append(a.logoutListeners, fn)
}
