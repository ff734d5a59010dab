package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/rest/request"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/rest/response"
)

// ThreadHandler represent the httphandler for thread
type ThreadHandler struct {
	Service domain.ThreadUsecase
}

func NewThreadHandler(svc domain.ThreadUsecase) *ThreadHandler {
	return &ThreadHandler{
		Service: svc,
	}
}

// Store will create a thread owned by the authenticated user
func (h *ThreadHandler) Store(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		writeError(c, domain.ErrMissingAuthentication)
		return
	}

	var req request.Thread
	if err := bindJSON(c, &req, domain.ErrAddThreadMissingProperty, domain.ErrAddThreadDataType); err != nil {
		writeError(c, err)
		return
	}

	thread, err := h.Service.AddThread(c.Request.Context(), req.ToPayload(userID))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(gin.H{
		"addedThread": response.NewAddedThreadFromDomain(thread),
	}))
}

// GetByID will get the thread with its comments and replies
func (h *ThreadHandler) GetByID(c *gin.Context) {
	thread, err := h.Service.ViewThread(c.Request.Context(), c.Param("threadId"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(gin.H{"thread": thread}))
}
