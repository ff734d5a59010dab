package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/rest/request"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/rest/response"
)

// CommentHandler represent the httphandler for comment
type CommentHandler struct {
	Service domain.CommentUsecase
}

func NewCommentHandler(svc domain.CommentUsecase) *CommentHandler {
	return &CommentHandler{Service: svc}
}

// Store will add a comment to the thread in the path
func (h *CommentHandler) Store(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		writeError(c, domain.ErrMissingAuthentication)
		return
	}

	var req request.Content
	if err := bindJSON(c, &req, domain.ErrAddCommentMissingProperty, domain.ErrAddCommentDataType); err != nil {
		writeError(c, err)
		return
	}

	comment, err := h.Service.AddComment(c.Request.Context(), req.ToCommentPayload(c.Param("threadId"), userID))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(gin.H{
		"addedComment": response.NewAddedCommentFromDomain(comment),
	}))
}

// Delete will soft delete the comment when the caller owns it
func (h *CommentHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		writeError(c, domain.ErrMissingAuthentication)
		return
	}

	err := h.Service.DeleteComment(c.Request.Context(), domain.DeleteCommentPayload{
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
