package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/career-dashboard/internal/adapter"
	"github.com/MKhiriev/career-dashboard/internal/app"
	"github.com/MKhiriev/career-dashboard/internal/config"
	"github.com/MKhiriev/career-dashboard/internal/logger"
	"github.com/MKhiriev/career-dashboard/internal/mock"
	"github.com/MKhiriev/career-dashboard/internal/session"
	"github.com/MKhiriev/career-dashboard/internal/store"
	"github.com/MKhiriev/career-dashboard/models"
)

var testUser = models.User{ID: "u1", Email: "ada@example.com", FirstName: "Ada", LastName: "Lovelace"}

// newTestAuthSvc is a helper that builds authService on top of mocks.
func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*authService, *mock.MockDispatcher, *mock.MockCredentialStore, *session.Store, *func(context.Context)) {
	t.Helper()
	d := mock.NewMockDispatcher(ctrl)
	creds := mock.NewMockCredentialStore(ctrl)
	sess := session.NewStore()

	var onUnauthorized func(context.Context)
	d.EXPECT().OnUnauthorized(gomock.Any()).Do(func(fn func(context.Context)) { onUnauthorized = fn })

	svc := NewAuthService(d, creds, sess, logger.Nop()).(*authService)
	return svc, d, creds, sess, &onUnauthorized
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("k"))
	require.NoError(t, err)
	return token
}

// ── Login / Signup ──────────────────────────────────────────────────────────

func TestAuthService_Login_PersistsThenAuthenticates(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, d, creds, sess, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	req := models.AuthRequest{Email: testUser.Email, Password: "secret"}

	gomock.InOrder(
		d.EXPECT().Post(ctx, "/auth/login", req, gomock.Any()).
			DoAndReturn(postReturning(t, models.AuthResponse{Success: true, Token: "t1", User: &testUser})),
		creds.EXPECT().Save(ctx, "t1", testUser).DoAndReturn(func(context.Context, string, models.User) error {
			assert.False(t, sess.IsAuthenticated(), "session must change only after persistence")
			return nil
		}),
	)

	user, err := svc.Login(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, testUser, user)
	assert.True(t, sess.IsAuthenticated())
	assert.Equal(t, testUser, *svc.CurrentUser())
}

func TestAuthService_Signup_UsesSignupEndpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, d, creds, sess, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	req := models.AuthRequest{Email: testUser.Email, Password: "secret", FirstName: "Ada", LastName: "Lovelace"}

	d.EXPECT().Post(ctx, "/auth/signup", req, gomock.Any()).
		DoAndReturn(postReturning(t, models.AuthResponse{Success: true, Token: "t2", User: &testUser}))
	creds.EXPECT().Save(ctx, "t2", testUser).Return(nil)

	_, err := svc.Signup(ctx, req)
	require.NoError(t, err)
	assert.True(t, sess.IsAuthenticated())
}

func TestAuthService_Login_MalformedSuccessLeavesStateUnchanged(t *testing.T) {
	tests := []struct {
		name string
		resp models.AuthResponse
	}{
		{name: "missing token", resp: models.AuthResponse{Success: true, User: &testUser}},
		{name: "missing user", resp: models.AuthResponse{Success: true, Token: "t1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, d, _, sess, _ := newTestAuthSvc(t, ctrl)

			d.EXPECT().Post(gomock.Any(), "/auth/login", gomock.Any(), gomock.Any()).
				DoAndReturn(postReturning(t, tt.resp))

			_, err := svc.Login(context.Background(), models.AuthRequest{})
			require.Error(t, err)
			assert.ErrorIs(t, err, adapter.ErrValidation)
			assert.ErrorIs(t, err, ErrMalformedAuthResponse)
			assert.Equal(t, app.MsgMalformedAuthResponse, adapter.Message(err))
			assert.False(t, sess.IsAuthenticated())
		})
	}
}

func TestAuthService_Login_ExpiredTokenLeavesStateUnchanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, d, _, sess, _ := newTestAuthSvc(t, ctrl)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	expired := signedToken(t, now.Add(-time.Hour))
	d.EXPECT().Post(gomock.Any(), "/auth/login", gomock.Any(), gomock.Any()).
		DoAndReturn(postReturning(t, models.AuthResponse{Success: true, Token: expired, User: &testUser}))

	// no Save is expected on the credential mock
	_, err := svc.Login(context.Background(), models.AuthRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrValidation)
	assert.ErrorIs(t, err, ErrExpiredToken)
	assert.False(t, sess.IsAuthenticated())
}

func TestAuthFlow_LoginWithExpiredTokenIsNotPersisted(t *testing.T) {
	svc, _, creds, sess := newHTTPStack(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.AuthResponse{
			Success: true,
			Token:   signedToken(t, time.Now().Add(-time.Hour)),
			User:    &testUser,
		})
	})
	ctx := context.Background()

	_, err := svc.Login(ctx, models.AuthRequest{Email: testUser.Email, Password: "pw"})
	assert.ErrorIs(t, err, ErrExpiredToken)

	assert.False(t, sess.IsAuthenticated())
	assert.False(t, svc.IsAuthenticated())
	assert.Empty(t, creds.Token())
	_, err = creds.Load(ctx)
	assert.ErrorIs(t, err, store.ErrCredentialsNotFound)
}

func TestAuthService_Login_SuccessFalseIsValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, d, _, sess, _ := newTestAuthSvc(t, ctrl)

	d.EXPECT().Post(gomock.Any(), "/auth/login", gomock.Any(), gomock.Any()).
		DoAndReturn(postReturning(t, models.AuthResponse{Success: false, Message: "Invalid credentials"}))

	_, err := svc.Login(context.Background(), models.AuthRequest{})
	assert.ErrorIs(t, err, adapter.ErrValidation)
	assert.ErrorIs(t, err, ErrAuthRejected)
	assert.Equal(t, "Invalid credentials", adapter.Message(err))
	assert.False(t, sess.IsAuthenticated())
}

func TestAuthService_Login_TransportErrorPassedThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, d, _, sess, _ := newTestAuthSvc(t, ctrl)

	apiErr := &adapter.APIError{Kind: adapter.KindValidation, Status: 400, Message: "Email is required"}
	d.EXPECT().Post(gomock.Any(), "/auth/login", gomock.Any(), gomock.Any()).Return(apiErr)

	_, err := svc.Login(context.Background(), models.AuthRequest{})
	assert.Same(t, apiErr, adapter.AsAPIError(err))
	assert.False(t, sess.IsAuthenticated())
}

func TestAuthService_Login_PersistFailureKeepsUnauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, d, creds, sess, _ := newTestAuthSvc(t, ctrl)

	d.EXPECT().Post(gomock.Any(), "/auth/login", gomock.Any(), gomock.Any()).
		DoAndReturn(postReturning(t, models.AuthResponse{Success: true, Token: "t1", User: &testUser}))
	creds.EXPECT().Save(gomock.Any(), "t1", testUser).Return(store.ErrSavingCredentials)

	_, err := svc.Login(context.Background(), models.AuthRequest{})
	assert.ErrorIs(t, err, ErrPersistSession)
	assert.ErrorIs(t, err, store.ErrSavingCredentials)
	assert.False(t, sess.IsAuthenticated())
}

// ── Logout / 401 ────────────────────────────────────────────────────────────

func TestAuthService_Logout_IsIdempotentAndNotifies(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, creds, sess, _ := newTestAuthSvc(t, ctrl)
	sess.SetAuthenticated(testUser)

	notified := 0
	svc.OnLogout(func() { notified++ })

	creds.EXPECT().Clear(gomock.Any()).Return(nil)
	creds.EXPECT().Clear(gomock.Any()).Return(errors.New("readonly"))

	svc.Logout(context.Background())
	svc.Logout(context.Background())

	assert.False(t, sess.IsAuthenticated())
	assert.Nil(t, svc.CurrentUser())
	assert.Equal(t, 2, notified)
}

func TestAuthService_UnauthorizedHookResetsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _, sess, hook := newTestAuthSvc(t, ctrl)
	sess.SetAuthenticated(testUser)

	notified := false
	svc.OnLogout(func() { notified = true })

	require.NotNil(t, *hook)
	(*hook)(context.Background())

	assert.False(t, sess.IsAuthenticated())
	assert.True(t, notified)
}

// ── Restore / IsAuthenticated ───────────────────────────────────────────────

func TestAuthService_Restore(t *testing.T) {
	t.Run("stored record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, _, creds, sess, _ := newTestAuthSvc(t, ctrl)

		creds.EXPECT().Load(gomock.Any()).Return(models.Credentials{Token: "opaque", User: testUser}, nil)

		assert.True(t, svc.Restore(context.Background()))
		assert.True(t, sess.IsAuthenticated())
		assert.Equal(t, testUser, *sess.User())
	})

	t.Run("nothing stored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, _, creds, sess, _ := newTestAuthSvc(t, ctrl)

		creds.EXPECT().Load(gomock.Any()).Return(models.Credentials{}, store.ErrCredentialsNotFound)

		assert.False(t, svc.Restore(context.Background()))
		assert.False(t, sess.IsAuthenticated())
	})

	t.Run("expired token is cleared", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, _, creds, sess, _ := newTestAuthSvc(t, ctrl)

		expired := signedToken(t, time.Now().Add(-time.Hour))
		creds.EXPECT().Load(gomock.Any()).Return(models.Credentials{Token: expired, User: testUser}, nil)
		creds.EXPECT().Clear(gomock.Any()).Return(nil)

		assert.False(t, svc.Restore(context.Background()))
		assert.False(t, sess.IsAuthenticated())
	})

	t.Run("storage failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, _, creds, sess, _ := newTestAuthSvc(t, ctrl)

		creds.EXPECT().Load(gomock.Any()).Return(models.Credentials{}, store.ErrExecutingQuery)

		assert.False(t, svc.Restore(context.Background()))
		assert.False(t, sess.IsAuthenticated())
	})
}

func TestAuthService_IsAuthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, creds, _, _ := newTestAuthSvc(t, ctrl)

	valid := signedToken(t, time.Now().Add(time.Hour))
	expired := signedToken(t, time.Now().Add(-time.Hour))

	creds.EXPECT().Token().Return("")
	assert.False(t, svc.IsAuthenticated())

	creds.EXPECT().Token().Return("opaque")
	assert.True(t, svc.IsAuthenticated())

	creds.EXPECT().Token().Return(valid)
	assert.True(t, svc.IsAuthenticated())

	creds.EXPECT().Token().Return(expired)
	assert.False(t, svc.IsAuthenticated())
}

// ── Profile ─────────────────────────────────────────────────────────────────

func TestAuthService_GetProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, d, _, _, _ := newTestAuthSvc(t, ctrl)

	d.EXPECT().Get(gomock.Any(), "/auth/profile", gomock.Any()).
		DoAndReturn(getReturning(t, map[string]any{"success": true, "user": testUser}))

	user, err := svc.GetProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testUser, user)
}

func TestAuthService_GetProfile_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, d, _, _, _ := newTestAuthSvc(t, ctrl)

	d.EXPECT().Get(gomock.Any(), "/auth/profile", gomock.Any()).
		DoAndReturn(getReturning(t, map[string]any{"success": true}))

	_, err := svc.GetProfile(context.Background())
	assert.ErrorIs(t, err, ErrEmptyProfile)
	assert.ErrorIs(t, err, adapter.ErrUnknown)
}

func TestAuthService_UpdateProfile_ReplacesStoredUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, d, creds, sess, _ := newTestAuthSvc(t, ctrl)
	sess.SetAuthenticated(testUser)

	updated := testUser
	updated.Bio = "Analyst"
	updated.Skills = []string{"math"}

	d.EXPECT().Put(gomock.Any(), "/auth/profile", updated, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ any, result any) error {
			fill(t, result, map[string]any{"success": true, "data": updated})
			return nil
		})
	creds.EXPECT().Token().Return("t1")
	creds.EXPECT().Save(gomock.Any(), "t1", updated).Return(nil)

	got, err := svc.UpdateProfile(context.Background(), updated)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
	assert.Equal(t, "Analyst", sess.User().Bio)
}

// ── End to end over HTTP ────────────────────────────────────────────────────

func newHTTPStack(t *testing.T, handler http.HandlerFunc) (AuthService, adapter.Dispatcher, store.CredentialStore, *session.Store) {
	t.Helper()
	return newHTTPStackWith(t, handler, store.NewMemoryCredentialStore())
}

func newHTTPStackWith(t *testing.T, handler http.HandlerFunc, creds store.CredentialStore) (AuthService, adapter.Dispatcher, store.CredentialStore, *session.Store) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	d, err := adapter.NewHTTPDispatcher(config.ClientAdapter{HTTPAddress: srv.URL + "/api", RequestTimeout: 5 * time.Second}, creds, logger.Nop())
	require.NoError(t, err)

	sess := session.NewStore()
	return NewAuthService(d, creds, sess, logger.Nop()), d, creds, sess
}

func TestAuthFlow_LoginPersistsTokenAndSendsItAfterwards(t *testing.T) {
	var sawBearer atomic.Value
	svc, d, creds, sess := newHTTPStack(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/auth/login":
			_ = json.NewEncoder(w).Encode(models.AuthResponse{Success: true, Token: "t1", User: &testUser})
		default:
			sawBearer.Store(r.Header.Get("Authorization"))
			_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "data": []any{}})
		}
	})
	ctx := context.Background()

	_, err := svc.Login(ctx, models.AuthRequest{Email: testUser.Email, Password: "pw"})
	require.NoError(t, err)

	stored, err := creds.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "t1", stored.Token)
	assert.True(t, sess.IsAuthenticated())

	_, err = NewRecommendationService(d).Jobs(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bearer t1", sawBearer.Load())
}

func TestAuthFlow_401TearsDownSession(t *testing.T) {
	svc, d, creds, sess := newHTTPStack(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"success":false,"message":"Token expired"}`))
	})
	ctx := context.Background()

	require.NoError(t, creds.Save(ctx, "t1", testUser))
	require.True(t, svc.Restore(ctx))

	loggedOut := false
	svc.OnLogout(func() { loggedOut = true })

	_, err := NewTimelineService(d, logger.Nop()).GetMilestones(ctx, models.MilestoneFilter{})
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.Equal(t, "Token expired", adapter.Message(err))

	assert.False(t, sess.IsAuthenticated())
	assert.False(t, svc.IsAuthenticated())
	assert.Empty(t, creds.Token())
	assert.True(t, loggedOut)
}

func TestAuthFlow_RestoreMakesNoNetworkCalls(t *testing.T) {
	var hits atomic.Int32
	svc, _, creds, sess := newHTTPStack(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	})
	ctx := context.Background()

	require.NoError(t, creds.Save(ctx, "t1", testUser))

	assert.True(t, svc.Restore(ctx))
	assert.True(t, sess.IsAuthenticated())
	assert.Zero(t, hits.Load())
}

func TestAuthFlow_ConcurrentUnauthorizedAndLogoutBothEndCleared(t *testing.T) {
	ctx := context.Background()
	storages, err := store.NewClientStorages(ctx, config.ClientStorage{DB: config.ClientDB{DSN: ":memory:"}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	svc, d, creds, sess := newHTTPStackWith(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"success":false,"message":"Token expired"}`))
	}, storages.Credentials)

	for i := 0; i < 20; i++ {
		require.NoError(t, creds.Save(ctx, "t1", testUser))
		require.True(t, svc.Restore(ctx))

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = d.Get(ctx, "/timelines/milestones", nil)
		}()
		go func() {
			defer wg.Done()
			svc.Logout(ctx)
		}()
		wg.Wait()

		_, err = creds.Load(ctx)
		assert.ErrorIs(t, err, store.ErrCredentialsNotFound, "iteration %d", i)
		assert.Empty(t, creds.Token(), "iteration %d", i)
		assert.False(t, sess.IsAuthenticated(), "iteration %d", i)
	}
}
