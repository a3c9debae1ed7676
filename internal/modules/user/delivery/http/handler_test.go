package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"anoa.com/nftmarketplace/internal/entity"
	"anoa.com/nftmarketplace/internal/modules/user/dto"
	"anoa.com/nftmarketplace/pkg/apperror"
	"anoa.com/nftmarketplace/pkg/response"
	"anoa.com/nftmarketplace/pkg/session"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthService struct {
	err error
}

func (s *stubAuthService) Register(_ context.Context, input dto.RegisterInput) (*dto.AuthResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &dto.AuthResponse{AccessToken: "tok", TokenType: "Bearer", User: &entity.User{Email: input.Email}}, nil
}

func (s *stubAuthService) Login(_ context.Context, input dto.LoginInput) (*dto.AuthResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &dto.AuthResponse{AccessToken: "tok", TokenType: "Bearer", User: &entity.User{Email: input.Email}}, nil
}

type stubUserService struct {
	wallet *dto.WalletResponse
	err    error
}

func (s *stubUserService) GetWallet(context.Context, uuid.UUID) (*dto.WalletResponse, error) {
	return s.wallet, s.err
}

func (s *stubUserService) AssignWallet(context.Context, uuid.UUID) (*dto.WalletResponse, error) {
	return s.wallet, s.err
}

func (s *stubUserService) GetDepositAddress(context.Context, uuid.UUID) (*dto.DepositAddressResponse, error) {
	return nil, s.err
}

func (s *stubUserService) GetExhibitionParticipations(context.Context, uuid.UUID) ([]entity.ExhibitionParticipation, error) {
	return []entity.ExhibitionParticipation{}, s.err
}

func newSessions() *session.Manager {
	return session.NewManager("test-secret", time.Hour, "session_token", false)
}

func TestLoginSetsSessionCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandler(&stubAuthService{}, newSessions())
	r := gin.New()
	r.POST("/api/auth/login", h.Login)
	r.POST("/api/auth/logout", h.Logout)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email":"a@example.com","password":"secret"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "session_token", cookies[0].Name)
	assert.Equal(t, "tok", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil))
	require.Equal(t, http.StatusOK, w.Code)
	cookies = w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Less(t, cookies[0].MaxAge, 0)
}

func TestLoginErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{"invalid email", `{"email":"nope","password":"x"}`, nil, http.StatusBadRequest},
		{"missing password", `{"email":"a@example.com"}`, nil, http.StatusBadRequest},
		{"bad credentials", `{"email":"a@example.com","password":"x"}`, apperror.New(http.StatusUnauthorized, "invalid credentials", apperror.ErrUnauthorized), http.StatusUnauthorized},
		{"rate limited", `{"email":"a@example.com","password":"x"}`, apperror.New(http.StatusTooManyRequests, "too many login attempts", apperror.ErrRateLimitExceeded), http.StatusTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAuthHandler(&stubAuthService{err: tt.err}, newSessions())
			r := gin.New()
			r.POST("/api/auth/login", h.Login)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Empty(t, w.Result().Cookies())
		})
	}
}

func TestGetWallet(t *testing.T) {
	gin.SetMode(gin.TestMode)
	address := "0x52908400098527886E0F7030069857D2E4169EE7"
	userID := uuid.New()

	tests := []struct {
		name       string
		setUser    bool
		svc        *stubUserService
		wantStatus int
	}{
		{"assigned", true, &stubUserService{wallet: &dto.WalletResponse{AssignedWallet: &address}}, http.StatusOK},
		{"no session user", false, &stubUserService{}, http.StatusUnauthorized},
		{"user row gone", true, &stubUserService{err: apperror.New(http.StatusNotFound, "user not found", apperror.ErrNotFound)}, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewUserHandler(tt.svc)
			r := gin.New()
			r.GET("/api/user/wallet", func(c *gin.Context) {
				if tt.setUser {
					c.Set(response.ContextUserIDKey, userID.String())
				}
				h.GetWallet(c)
			})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/user/wallet", nil))
			require.Equal(t, tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusOK {
				var body struct {
					Success bool               `json:"success"`
					Data    dto.WalletResponse `json:"data"`
				}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.True(t, body.Success)
				assert.Equal(t, address, *body.Data.AssignedWallet)
			}
		})
	}
}
