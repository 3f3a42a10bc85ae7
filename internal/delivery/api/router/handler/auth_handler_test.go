package handler

import (
	"net/http"
	"testing"

	domainerrors "bakery/internal/domain/errors"
	mockUsecase "bakery/internal/mocks/usecase"
	"bakery/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newAuthTestServer(t *testing.T) (*mockUsecase.MockSessionUsecase, *AuthHandler) {
	sessionUC := mockUsecase.NewMockSessionUsecase(t)

	return sessionUC, NewAuthHandler(AuthHandlerParams{SessionUC: sessionUC, Logger: nil})
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(m *mockUsecase.MockSessionUsecase)
		wantStatus int
		wantCode   string
	}{
		{
			name: "success",
			body: `{"email":"admin@example.com","password":"secret"}`,
			setupMock: func(m *mockUsecase.MockSessionUsecase) {
				m.EXPECT().Login(mock.Anything, &usecase.LoginInput{Email: "admin@example.com", Password: "secret"}).
					Return(&usecase.LoginOutput{AccessToken: "token", TokenType: "Bearer", ExpiresIn: 3600, User: testAdmin}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing password",
			body:       `{"email":"admin@example.com"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "REQUIRED_FIELDS_MISSING",
		},
		{
			name: "wrong credentials",
			body: `{"email":"admin@example.com","password":"nope"}`,
			setupMock: func(m *mockUsecase.MockSessionUsecase) {
				m.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials).Once()
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_CREDENTIALS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessionUC, h := newAuthTestServer(t)
			if tt.setupMock != nil {
				tt.setupMock(sessionUC)
			}
			e := newTestEcho(nil)
			e.POST("/auth/login", h.Login)

			rec, env := doRequest(t, e, http.MethodPost, "/auth/login", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.False(t, env.Success)
				assert.Equal(t, tt.wantCode, env.Error.Code)

				return
			}
			assert.True(t, env.Success)
			login := decodeData[LoginResponse](t, env)
			assert.Equal(t, "token", login.AccessToken)
			assert.Equal(t, "admin@example.com", login.User.Email)
		})
	}
}

func TestHealthCheck(t *testing.T) {
	e := newTestEcho(nil)
	e.GET("/health", HealthCheck)

	rec, env := doRequest(t, e, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
}
