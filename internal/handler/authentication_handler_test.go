package handler_test

import (
	"auth-web-server/config"
	"auth-web-server/internal/apperror"
	"auth-web-server/internal/handler"
	"auth-web-server/internal/model"
	"auth-web-server/internal/security"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAuthenticationService struct {
	mock.Mock
}

func (m *MockAuthenticationService) SignUp(ctx context.Context, clientID, password, name string) (*model.IdentitySummary, error) {
	args := m.Called(ctx, clientID, password, name)
	if s, ok := args.Get(0).(*model.IdentitySummary); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthenticationService) Authenticate(ctx context.Context, clientID, password string) (*model.AuthResult, error) {
	args := m.Called(ctx, clientID, password)
	if r, ok := args.Get(0).(*model.AuthResult); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

var testAuthConfig = &config.AuthConfig{
	SecretKey:       "test_secret_key",
	Issuer:          "auth-web-server-test",
	AccessTokenTTL:  time.Hour,
	RefreshTokenTTL: 7 * 24 * time.Hour,
	SaltRounds:      4,
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestAuthenticationHandler_SignUp(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		setupMocks  func(m *MockAuthenticationService)
		wantStatus  int
		wantMessage string
	}{
		{
			name: "created",
			body: `{"username":"alice1","password":"pass123","nickname":"Alice"}`,
			setupMocks: func(m *MockAuthenticationService) {
				m.On("SignUp", mock.Anything, "alice1", "pass123", "Alice").
					Return(&model.IdentitySummary{ClientID: "alice1", Name: "Alice", Role: "USER"}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:        "broken json",
			body:        `{"username":`,
			setupMocks:  func(m *MockAuthenticationService) {},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "некорректный JSON",
		},
		{
			name: "invalid input",
			body: `{"username":"abc","password":"pass123","nickname":"Alice"}`,
			setupMocks: func(m *MockAuthenticationService) {
				m.On("SignUp", mock.Anything, "abc", "pass123", "Alice").
					Return(nil, apperror.New(apperror.KindInvalidInput, "логин должен содержать не меньше 4 символов"))
			},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "логин должен содержать не меньше 4 символов",
		},
		{
			name: "conflict",
			body: `{"username":"alice1","password":"pass123","nickname":"Alice"}`,
			setupMocks: func(m *MockAuthenticationService) {
				m.On("SignUp", mock.Anything, "alice1", "pass123", "Alice").
					Return(nil, apperror.New(apperror.KindConflict, "пользователь с таким логином уже зарегистрирован"))
			},
			wantStatus:  http.StatusConflict,
			wantMessage: "пользователь с таким логином уже зарегистрирован",
		},
		{
			name: "store unavailable",
			body: `{"username":"alice1","password":"pass123","nickname":"Alice"}`,
			setupMocks: func(m *MockAuthenticationService) {
				m.On("SignUp", mock.Anything, "alice1", "pass123", "Alice").
					Return(nil, apperror.Wrap(apperror.KindStoreUnavailable, apperror.ErrStoreUnavailable.Message, errors.New("dial tcp")))
			},
			wantStatus:  http.StatusServiceUnavailable,
			wantMessage: apperror.ErrStoreUnavailable.Message,
		},
		{
			name: "unknown error is hidden",
			body: `{"username":"alice1","password":"pass123","nickname":"Alice"}`,
			setupMocks: func(m *MockAuthenticationService) {
				m.On("SignUp", mock.Anything, "alice1", "pass123", "Alice").
					Return(nil, errors.New("pq: secret details"))
			},
			wantStatus:  http.StatusInternalServerError,
			wantMessage: apperror.ErrInternal.Message,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authService := new(MockAuthenticationService)
			tt.setupMocks(authService)
			h := handler.NewAuthenticationHandler(authService, testAuthConfig, &config.CookieConfig{})

			req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.SignUp(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeBody(t, rec)
			if tt.wantStatus == http.StatusCreated {
				assert.Equal(t, map[string]any{
					"data": map[string]any{
						"username": "alice1",
						"nickname": "Alice",
						"authorities": []any{
							map[string]any{"authorityName": "USER"},
						},
					},
				}, body)
			} else {
				assert.Equal(t, false, body["success"])
				assert.Equal(t, tt.wantMessage, body["message"])
			}
			authService.AssertExpectations(t)
		})
	}
}

func TestAuthenticationHandler_Login(t *testing.T) {
	t.Run("success sets cookies", func(t *testing.T) {
		authService := new(MockAuthenticationService)
		authService.On("Authenticate", mock.Anything, "alice1", "pass123").Return(&model.AuthResult{
			UserID:       1,
			ClientID:     "alice1",
			Name:         "Alice",
			Role:         "USER",
			AccessToken:  "access-token",
			RefreshToken: "refresh-token",
		}, nil)
		h := handler.NewAuthenticationHandler(authService, testAuthConfig, &config.CookieConfig{Secure: true})

		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username":"alice1","password":"pass123"}`))
		rec := httptest.NewRecorder()
		h.Login(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, map[string]any{"token": "access-token"}, decodeBody(t, rec))

		cookies := map[string]*http.Cookie{}
		for _, c := range rec.Result().Cookies() {
			cookies[c.Name] = c
		}
		require.Contains(t, cookies, security.AccessTokenCookie)
		require.Contains(t, cookies, handler.RefreshTokenCookie)

		access := cookies[security.AccessTokenCookie]
		assert.Equal(t, "access-token", access.Value)
		assert.True(t, access.HttpOnly)
		assert.True(t, access.Secure)
		assert.Equal(t, 3600, access.MaxAge)

		refresh := cookies[handler.RefreshTokenCookie]
		assert.Equal(t, "refresh-token", refresh.Value)
		assert.Equal(t, 7*24*3600, refresh.MaxAge)
	})

	t.Run("empty fields", func(t *testing.T) {
		authService := new(MockAuthenticationService)
		h := handler.NewAuthenticationHandler(authService, testAuthConfig, &config.CookieConfig{})

		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username":"alice1"}`))
		rec := httptest.NewRecorder()
		h.Login(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		authService.AssertNotCalled(t, "Authenticate", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unauthorized", func(t *testing.T) {
		authService := new(MockAuthenticationService)
		authService.On("Authenticate", mock.Anything, "alice1", "wrong1").
			Return(nil, apperror.New(apperror.KindUnauthorized, "неверный логин или пароль"))
		h := handler.NewAuthenticationHandler(authService, testAuthConfig, &config.CookieConfig{})

		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"username":"alice1","password":"wrong1"}`))
		rec := httptest.NewRecorder()
		h.Login(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "неверный логин или пароль", decodeBody(t, rec)["message"])
		assert.Empty(t, rec.Result().Cookies())
	})
}

func TestAuthenticationHandler_Me(t *testing.T) {
	jwtService := security.NewJWTService(testAuthConfig)
	tokens, err := jwtService.GenerateAccessRefreshTokens(17)
	require.NoError(t, err)

	h := handler.NewAuthenticationHandler(new(MockAuthenticationService), testAuthConfig, &config.CookieConfig{})
	protected := security.JWTMiddleware(jwtService)(http.HandlerFunc(h.Me))

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+tokens.AccessToken)
	rec := httptest.NewRecorder()
	protected.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(17), decodeBody(t, rec)["userId"])

	rec = httptest.NewRecorder()
	h.Me(rec, httptest.NewRequest(http.MethodGet, "/auth/me", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
