package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/rest/response"
)

// LikeHandler represent the httphandler for comment likes
type LikeHandler struct {
	Service domain.LikeUsecase
}

func NewLikeHandler(svc domain.LikeUsecase) *LikeHandler {
	return &LikeHandler{Service: svc}
}

// Toggle likes the comment, or unlikes it if the caller already did
func (h *LikeHandler) Toggle(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		writeError(c, domain.ErrMissingAuthentication)
		return
	}

	err := h.Service.ToggleLike(c.Request.Context(), domain.ToggleLikePayload{
		ThreadID:  c.Param("threadId"),
		CommentID: c.Param("commentId"),
		UserID:    userID,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(nil))
}
