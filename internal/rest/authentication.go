package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/rest/request"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/rest/response"
)

// AuthenticationHandler represent the httphandler for login sessions
type AuthenticationHandler struct {
	Service domain.AuthenticationUsecase
}

func NewAuthenticationHandler(svc domain.AuthenticationUsecase) *AuthenticationHandler {
	return &AuthenticationHandler{Service: svc}
}

// Login issues an access and refresh token pair
func (h *AuthenticationHandler) Login(c *gin.Context) {
	var req request.Login
	if err := bindJSON(c, &req, domain.ErrLoginMissingProperty, domain.ErrLoginDataType); err != nil {
		writeError(c, err)
		return
	}

	auth, err := h.Service.Login(c.Request.Context(), req.ToPayload())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(auth))
}

// Refresh issues a new access token for a stored refresh token
func (h *AuthenticationHandler) Refresh(c *gin.Context) {
	var req request.RefreshToken
	if err := bindJSON(c, &req, domain.ErrRefreshTokenMissing, domain.ErrRefreshTokenDataType); err != nil {
		writeError(c, err)
		return
	}

	accessToken, err := h.Service.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(gin.H{"accessToken": accessToken}))
}

// Logout revokes the refresh token
func (h *AuthenticationHandler) Logout(c *gin.Context) {
	var req request.RefreshToken
	if err := bindJSON(c, &req, domain.ErrRefreshTokenMissing, domain.ErrRefreshTokenDataType); err != nil {
		writeError(c, err)
		return
	}

	if err := h.Service.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(nil))
}
