package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/rest/request"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/rest/response"
)

// ReplyHandler represent the httphandler for reply
type ReplyHandler struct {
	Service domain.ReplyUsecase
}

func NewReplyHandler(svc domain.ReplyUsecase) *ReplyHandler {
	return &ReplyHandler{Service: svc}
}

func (h *ReplyHandler) Store(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		writeError(c, domain.ErrMissingAuthentication)
		return
	}

	var req request.Content
	if err := bindJSON(c, &req, domain.ErrAddReplyMissingProperty, domain.ErrAddReplyDataType); err != nil {
		writeError(c, err)
		return
	}

	payload := req.ToReplyPayload(c.Param("threadId"), c.Param("commentId"), userID)
	reply, err := h.Service.AddReply(c.Request.Context(), payload)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(gin.H{
		"addedReply": response.NewAddedReplyFromDomain(reply),
	}))
}

func (h *ReplyHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		writeError(c, domain.ErrMissingAuthentication)
		return
	}

	err := h.Service.DeleteReply(c.Request.Context(), domain.DeleteReplyPayload{
		ThreadID:  c.Param("threadId"),
		CommentID: c.Param("commentId"),
		ReplyID:   c.Param("replyId"),
		UserID:    userID,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(nil))
}
