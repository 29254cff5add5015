package types

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	apperrors "github.com/killallgit/podcast-api/pkg/errors"
	"github.com/killallgit/podcast-api/pkg/logging"
	"github.com/killallgit/podcast-api/pkg/pagination"
)

// Context keys set by the auth middleware
const (
	UserIDKey    = "user_id"
	IsCreatorKey = "is_creator"
	ClaimsKey    = "claims"
)

// ParseUintParam extracts and parses a URL parameter as uint
// Returns the parsed value and sends error response if parsing fails
func ParseUintParam(c *gin.Context, paramName string) (uint, bool) {
	value, err := strconv.ParseUint(c.Param(paramName), 10, 32)
	if err != nil || value == 0 {
		SendError(c, apperrors.New(apperrors.ErrCodeInvalidInput, "invalid "+paramName))
		return 0, false
	}
	return uint(value), true
}

// BindJSONOrError attempts to bind JSON request body to target struct
// Returns false and sends error response if binding fails
func BindJSONOrError(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		SendError(c, apperrors.Wrap(err, apperrors.ErrCodeInvalidInput, "invalid request body").
			WithDetail("reason", err.Error()))
		return false
	}
	return true
}

// Pagination reads the offset and limit query values. It returns nil when
// the request does not ask for a page.
func Pagination(c *gin.Context, deps *Dependencies) *pagination.Params {
	return pagination.Parse(c.Query("offset"), c.Query("limit"), deps.PageLimit())
}

// RequesterID is the authenticated user id, or zero.
func RequesterID(c *gin.Context) uint {
	if id, ok := c.Get(UserIDKey); ok {
		if v, ok := id.(uint); ok {
			return v
		}
	}
	return 0
}

// SendError maps err to its HTTP status and writes the error envelope.
// Unexpected errors are logged and reported without their cause.
func SendError(c *gin.Context, err error) {
	appErr, ok := apperrors.As(err)
	if !ok {
		logging.FromContext(c).WithError(err).Error("unhandled error")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Status:  StatusError,
			Message: "internal server error",
			Error:   string(apperrors.ErrCodeInternal),
		})
		return
	}

	status := appErr.GetHTTPCode()
	if status >= http.StatusInternalServerError {
		logging.FromContext(c).WithError(err).Error("request failed")
		c.JSON(status, ErrorResponse{
			Status:  StatusError,
			Message: appErr.Message,
			Error:   string(appErr.Code),
		})
		return
	}

	c.JSON(status, ErrorResponse{
		Status:  StatusError,
		Message: appErr.Message,
		Error:   string(appErr.Code),
		Details: appErr.Details,
	})
}

// SendSuccess sends a standardized success response with data
func SendSuccess(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, DataResponse{
		BaseResponse: BaseResponse{Status: StatusOK, Message: message},
		Data:         data,
	})
}

// SendCreated sends a standardized created response with data
func SendCreated(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, DataResponse{
		BaseResponse: BaseResponse{Status: StatusOK, Message: message},
		Data:         data,
	})
}
