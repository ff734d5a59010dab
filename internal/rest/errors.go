package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/rest/middleware"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/rest/response"
)

// ServerErrorMessage is the only message a client sees for an unexpected failure.
const ServerErrorMessage = "terjadi kegagalan pada server kami"

// getStatusCode will get the code of the error from the domain error kinds
func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	switch {
	case errors.Is(err, domain.ErrBadParamInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, err error) {
	code := getStatusCode(err)
	if code == http.StatusInternalServerError {
		logrus.WithError(err).Errorf("%s %s failed", c.Request.Method, c.FullPath())
		c.JSON(code, response.Error(ServerErrorMessage))
		return
	}

	logrus.WithError(err).Debugf("%s %s rejected", c.Request.Method, c.FullPath())
	c.JSON(code, response.Fail(err.Error()))
}

// bindJSON decodes the body into obj. A value of the wrong JSON type yields typeErr,
// any other decoding failure (empty or malformed body) yields missingErr.
func bindJSON(c *gin.Context, obj any, missingErr, typeErr error) error {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return nil
	}

	var typeMismatch *json.UnmarshalTypeError
	if errors.As(err, &typeMismatch) {
		return typeErr
	}
	return missingErr
}

// currentUserID returns the id set by middleware.AuthMiddleware.
func currentUserID(c *gin.Context) (string, bool) {
	id := c.GetString(middleware.ContextUserID)
	return id, id != ""
}
