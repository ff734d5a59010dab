package rest_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain/mocks"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/rest"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/rest/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// authenticated stands in for the auth middleware.
func authenticated(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, userID)
		c.Next()
	}
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func do(t *testing.T, r *gin.Engine, method, path, body string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec.Code, env
}

func TestThreadHandler_Store(t *testing.T) {
	newRouter := func(svc domain.ThreadUsecase) *gin.Engine {
		r := gin.New()
		r.POST("/threads", authenticated("user-123"), rest.NewThreadHandler(svc).Store)
		return r
	}

	t.Run("created", func(t *testing.T) {
		svc := new(mocks.ThreadUsecase)
		svc.On("AddThread", mock.Anything, domain.AddThreadPayload{
			Title: "sebuah thread", Body: "sebuah body thread", UserID: "user-123",
		}).Return(domain.Thread{ID: "thread-123", Title: "sebuah thread", Body: "sebuah body thread", Owner: "user-123"}, nil).Once()

		code, env := do(t, newRouter(svc), http.MethodPost, "/threads", `{"title":"sebuah thread","body":"sebuah body thread"}`)

		assert.Equal(t, http.StatusCreated, code)
		assert.Equal(t, "success", env.Status)
		assert.JSONEq(t, `{"addedThread":{"id":"thread-123","title":"sebuah thread","owner":"user-123"}}`, string(env.Data))
	})

	t.Run("wrong data type", func(t *testing.T) {
		svc := new(mocks.ThreadUsecase)

		code, env := do(t, newRouter(svc), http.MethodPost, "/threads", `{"title":123,"body":"b"}`)

		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "fail", env.Status)
		assert.Equal(t, domain.ErrAddThreadDataType.Error(), env.Message)
		svc.AssertNotCalled(t, "AddThread", mock.Anything, mock.Anything)
	})

	t.Run("missing property comes from the use case", func(t *testing.T) {
		svc := new(mocks.ThreadUsecase)
		svc.On("AddThread", mock.Anything, mock.Anything).Return(domain.Thread{}, domain.ErrAddThreadMissingProperty).Once()

		code, env := do(t, newRouter(svc), http.MethodPost, "/threads", `{"title":"t"}`)

		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, domain.ErrAddThreadMissingProperty.Error(), env.Message)
	})

	t.Run("html is stripped before the use case", func(t *testing.T) {
		svc := new(mocks.ThreadUsecase)
		svc.On("AddThread", mock.Anything, domain.AddThreadPayload{
			Title: "judul", Body: "isi &amp; lain", UserID: "user-123",
		}).Return(domain.Thread{ID: "thread-1", Title: "judul", Body: "isi &amp; lain", Owner: "user-123"}, nil).Once()

		code, _ := do(t, newRouter(svc), http.MethodPost, "/threads", `{"title":"<b>judul</b>","body":"<script>x</script>isi &amp; lain"}`)

		assert.Equal(t, http.StatusCreated, code)
		svc.AssertExpectations(t)
	})

	t.Run("entity encoded markup stays escaped", func(t *testing.T) {
		svc := new(mocks.ThreadUsecase)
		svc.On("AddThread", mock.Anything, domain.AddThreadPayload{
			Title: "a &amp; b", Body: "&lt;script&gt;alert(1)&lt;/script&gt;", UserID: "user-123",
		}).Return(domain.Thread{ID: "thread-1", Title: "a &amp; b", Owner: "user-123"}, nil).Once()

		code, _ := do(t, newRouter(svc), http.MethodPost, "/threads", `{"title":"a &amp; b","body":"&lt;script&gt;alert(1)&lt;/script&gt;"}`)

		assert.Equal(t, http.StatusCreated, code)
		svc.AssertExpectations(t)
		svc.AssertNotCalled(t, "AddThread", mock.Anything, mock.MatchedBy(func(p domain.AddThreadPayload) bool {
			return strings.Contains(p.Body, "<script>")
		}))
	})
}

func TestThreadHandler_GetByID(t *testing.T) {
	svc := new(mocks.ThreadUsecase)
	r := gin.New()
	r.GET("/threads/:threadId", rest.NewThreadHandler(svc).GetByID)

	detail := domain.DetailThread{
		ID: "thread-123", Title: "t", Body: "b", Date: "2021-08-08T07:19:09.775Z", Username: "dicoding",
		Comments: []domain.DetailComment{{
			ID: "comment-1", Username: "johndoe", Date: "2021-08-08T07:22:33.555Z",
			Content: domain.DeletedCommentContent, LikeCount: 2, Replies: []domain.DetailReply{},
		}},
	}
	svc.On("ViewThread", mock.Anything, "thread-123").Return(detail, nil).Once()
	svc.On("ViewThread", mock.Anything, "thread-xxx").Return(domain.DetailThread{}, domain.ErrThreadNotFound).Once()

	code, env := do(t, r, http.MethodGet, "/threads/thread-123", "")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"thread":{
		"id":"thread-123","title":"t","body":"b","date":"2021-08-08T07:19:09.775Z","username":"dicoding",
		"comments":[{"id":"comment-1","username":"johndoe","date":"2021-08-08T07:22:33.555Z",
			"content":"**komentar telah dihapus**","likeCount":2,"replies":[]}]
	}}`, string(env.Data))

	code, env = do(t, r, http.MethodGet, "/threads/thread-xxx", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "fail", env.Status)
	assert.Equal(t, "thread tidak ditemukan", env.Message)
}

func TestCommentHandler(t *testing.T) {
	svc := new(mocks.CommentUsecase)
	h := rest.NewCommentHandler(svc)
	r := gin.New()
	r.POST("/threads/:threadId/comments", authenticated("user-123"), h.Store)
	r.DELETE("/threads/:threadId/comments/:commentId", authenticated("user-456"), h.Delete)

	svc.On("AddComment", mock.Anything, domain.AddCommentPayload{
		ThreadID: "thread-123", Content: "sebuah comment", UserID: "user-123",
	}).Return(domain.Comment{ID: "comment-123", Content: "sebuah comment", Owner: "user-123"}, nil).Once()
	svc.On("DeleteComment", mock.Anything, domain.DeleteCommentPayload{
		ThreadID: "thread-123", CommentID: "comment-123", UserID: "user-456",
	}).Return(domain.ErrCommentNotOwned).Once()

	code, env := do(t, r, http.MethodPost, "/threads/thread-123/comments", `{"content":"sebuah comment"}`)
	assert.Equal(t, http.StatusCreated, code)
	assert.JSONEq(t, `{"addedComment":{"id":"comment-123","content":"sebuah comment","owner":"user-123"}}`, string(env.Data))

	code, env = do(t, r, http.MethodPost, "/threads/thread-123/comments", `{"content":true}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, domain.ErrAddCommentDataType.Error(), env.Message)

	code, env = do(t, r, http.MethodDelete, "/threads/thread-123/comments/comment-123", "")
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "fail", env.Status)
}

func TestReplyHandler(t *testing.T) {
	svc := new(mocks.ReplyUsecase)
	h := rest.NewReplyHandler(svc)
	r := gin.New()
	r.POST("/threads/:threadId/comments/:commentId/replies", authenticated("user-123"), h.Store)
	r.DELETE("/threads/:threadId/comments/:commentId/replies/:replyId", authenticated("user-123"), h.Delete)

	svc.On("AddReply", mock.Anything, domain.AddReplyPayload{
		ThreadID: "thread-123", CommentID: "comment-123", Content: "sebuah balasan", UserID: "user-123",
	}).Return(domain.Reply{ID: "reply-123", Content: "sebuah balasan", Owner: "user-123"}, nil).Once()
	svc.On("DeleteReply", mock.Anything, domain.DeleteReplyPayload{
		ThreadID: "thread-123", CommentID: "comment-123", ReplyID: "reply-123", UserID: "user-123",
	}).Return(nil).Once()

	code, env := do(t, r, http.MethodPost, "/threads/thread-123/comments/comment-123/replies", `{"content":"sebuah balasan"}`)
	assert.Equal(t, http.StatusCreated, code)
	assert.JSONEq(t, `{"addedReply":{"id":"reply-123","content":"sebuah balasan","owner":"user-123"}}`, string(env.Data))

	code, env = do(t, r, http.MethodDelete, "/threads/thread-123/comments/comment-123/replies/reply-123", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "success", env.Status)
}

func TestLikeHandler(t *testing.T) {
	svc := new(mocks.LikeUsecase)
	r := gin.New()
	r.PUT("/threads/:threadId/comments/:commentId/likes", authenticated("user-123"), rest.NewLikeHandler(svc).Toggle)

	payload := domain.ToggleLikePayload{ThreadID: "thread-123", CommentID: "comment-123", UserID: "user-123"}
	svc.On("ToggleLike", mock.Anything, payload).Return(nil).Once()

	code, env := do(t, r, http.MethodPut, "/threads/thread-123/comments/comment-123/likes", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "success", env.Status)
	assert.Empty(t, env.Data)

	svc.On("ToggleLike", mock.Anything, payload).Return(errors.New("db down")).Once()
	code, env = do(t, r, http.MethodPut, "/threads/thread-123/comments/comment-123/likes", "")
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "error", env.Status)
	assert.Equal(t, rest.ServerErrorMessage, env.Message)
}

func TestHandlersRequireUser(t *testing.T) {
	r := gin.New()
	r.PUT("/threads/:threadId/comments/:commentId/likes", rest.NewLikeHandler(new(mocks.LikeUsecase)).Toggle)

	code, env := do(t, r, http.MethodPut, "/threads/thread-123/comments/comment-123/likes", "")
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Missing authentication", env.Message)
}
