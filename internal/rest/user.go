package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/rest/request"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/rest/response"
)

// UserHandler represent the httphandler for user registration
type UserHandler struct {
	Service domain.UserUsecase
}

func NewUserHandler(svc domain.UserUsecase) *UserHandler {
	return &UserHandler{Service: svc}
}

// Register will create a new user
func (h *UserHandler) Register(c *gin.Context) {
	var req request.User
	if err := bindJSON(c, &req, domain.ErrRegisterUserMissingProperty, domain.ErrRegisterUserDataType); err != nil {
		writeError(c, err)
		return
	}

	user, err := h.Service.Register(c.Request.Context(), req.ToPayload())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(gin.H{"addedUser": user}))
}
