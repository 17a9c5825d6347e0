package helper

import (
	"errors"
	"net/http"
	"strings"

	"blog-cms/models"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
)

// HTTPHelper shapes every response the API sends: successes as
// {message, data}, failures as {error}. The validator and translator are
// shared with the handlers for request payload validation.
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

// SendSuccess ...
// Send success response to consumers.
func (u *HTTPHelper) SendSuccess(c *gin.Context, message string, data interface{}) {
	if len(message) == 0 {
		message = `success`
	}

	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"data":    data,
	})
}

// SendCreated ...
// Send created response to consumers.
func (u *HTTPHelper) SendCreated(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{
		"message": message,
		"data":    data,
	})
}

// SendError ...
// Send error response to consumers.
func (u *HTTPHelper) SendError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

// SendBadRequest ...
// Send bad request response to consumers.
func (u *HTTPHelper) SendBadRequest(c *gin.Context, message string) {
	u.SendError(c, http.StatusBadRequest, message)
}

// SendUnauthorizedError ...
// Send unauthorized response to consumers.
func (u *HTTPHelper) SendUnauthorizedError(c *gin.Context, message string) {
	u.SendError(c, http.StatusUnauthorized, message)
}

// SendNotFoundError ...
// Send not found response to consumers.
func (u *HTTPHelper) SendNotFoundError(c *gin.Context, message string) {
	u.SendError(c, http.StatusNotFound, message)
}

// SendValidationError ...
// Send validation error response to consumers, with the field messages
// translated and joined into the error string.
func (u *HTTPHelper) SendValidationError(c *gin.Context, validationErrors validator.ValidationErrors) {
	messages := make([]string, 0, len(validationErrors))
	translations := validationErrors.Translate(u.Translator)
	for _, err := range validationErrors {
		messages = append(messages, translations[err.Namespace()])
	}

	u.SendError(c, http.StatusBadRequest, strings.Join(messages, "; "))
}

// GetStatusCode ...
// Map a service error to its HTTP status code.
func (u *HTTPHelper) GetStatusCode(err error) int {
	switch {
	case errors.Is(err, models.ErrSlugConflict), errors.Is(err, models.ErrConflict):
		return http.StatusForbidden
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrInvalid):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// SendServiceError ...
// Send a service error with the status code derived from its kind.
func (u *HTTPHelper) SendServiceError(c *gin.Context, err error) {
	u.SendError(c, u.GetStatusCode(err), err.Error())
}

func (u *HTTPHelper) EmptyJsonMap() map[string]interface{} {
	return make(map[string]interface{})
}
