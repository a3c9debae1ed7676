package response

import (
	"errors"
	"net/http"

	"anoa.com/nftmarketplace/pkg/apperror"
	"anoa.com/nftmarketplace/pkg/dto"
	"anoa.com/nftmarketplace/pkg/logger"
	"anoa.com/nftmarketplace/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	ContextUserIDKey = "user_id"
	ContextRoleKey   = "role"

	genericErrorMessage = "internal server error"
)

// Envelope is the JSON shape every endpoint responds with.
type Envelope struct {
	Success    bool                `json:"success"`
	Data       any                 `json:"data,omitempty"`
	Error      string              `json:"error,omitempty"`
	Message    string              `json:"message,omitempty"`
	Errors     map[string]string   `json:"errors,omitempty"`
	Pagination *dto.PaginationMeta `json:"pagination,omitempty"`
}

// GetUserID retrieves the authenticated user ID from the context
func GetUserID(c *gin.Context) (uuid.UUID, error) {
	userIDStr, exists := c.Get(ContextUserIDKey)
	if !exists {
		return uuid.Nil, apperror.ErrUnauthorized
	}

	s, ok := userIDStr.(string)
	if !ok {
		return uuid.Nil, apperror.ErrUnauthorized
	}

	userID, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, apperror.ErrUnauthorized
	}

	return userID, nil
}

func Success(c *gin.Context, status int, data any) {
	c.JSON(status, Envelope{Success: true, Data: data})
}

func SuccessWithMessage(c *gin.Context, status int, data any, message string) {
	c.JSON(status, Envelope{Success: true, Data: data, Message: message})
}

func Paginated(c *gin.Context, data any, meta dto.PaginationMeta) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data, Pagination: &meta})
}

// Fail writes an error envelope with an explicit status and message.
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, Envelope{Success: false, Error: message})
}

// ValidationError reports binding failures. Field-level messages are included when available.
func ValidationError(c *gin.Context, err error) {
	env := Envelope{Success: false, Error: "validation failed"}
	if validator.IsValidationError(err) {
		env.Errors = validator.FieldErrors(err)
		env.Message = validator.FormatValidationError(err)
	} else {
		env.Message = err.Error()
	}
	c.JSON(http.StatusBadRequest, env)
}

// ResponseError standardized error response
func ResponseError(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)

	if code >= http.StatusInternalServerError {
		logger.ErrorCtx(c.Request.Context(), err,
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
		)
		c.JSON(code, Envelope{Success: false, Error: genericErrorMessage, Message: clientMessage(err)})
		return
	}

	c.JSON(code, Envelope{Success: false, Error: clientMessage(err)})
}

// clientMessage prefers the explicit AppError message; internal failures only expose it when set.
func clientMessage(err error) string {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	if apperror.MapErrorToStatus(err) >= http.StatusInternalServerError {
		return ""
	}
	return err.Error()
}
