package handler

import (
	"net/http"

	"anoa.com/nftmarketplace/internal/modules/user/dto"
	user "anoa.com/nftmarketplace/internal/modules/user/service"
	"anoa.com/nftmarketplace/pkg/response"
	"anoa.com/nftmarketplace/pkg/session"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService user.AuthService
	sessions    *session.Manager
}

func NewAuthHandler(authService user.AuthService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ValidationError(c, err)
		return
	}

	res, err := h.authService.Register(c.Request.Context(), input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	h.sessions.SetCookie(c, res.AccessToken)
	response.Success(c, http.StatusCreated, res)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.ValidationError(c, err)
		return
	}

	res, err := h.authService.Login(c.Request.Context(), input)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	h.sessions.SetCookie(c, res.AccessToken)
	response.Success(c, http.StatusOK, res)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.sessions.ClearCookie(c)
	response.SuccessWithMessage(c, http.StatusOK, nil, "logged out")
}
