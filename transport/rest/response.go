package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// Response - envelope of every JSON reply.
type Response struct {
	Success bool `json:"success"`
	Code    int  `json:"code"`
	Extras  any  `json:"extras"`
}

func NewResponse(success bool, code int, extras any) Response {
	return Response{
		Success: success,
		Code:    code,
		Extras:  extras,
	}
}

func SuccessResponse(c *gin.Context, code int, extras any) {
	c.JSON(code, NewResponse(true, code, extras))
}

func ErrorResponse(c *gin.Context, code int, message string) {
	c.JSON(code, NewResponse(false, code, gin.H{"message": message}))
}

// statusFor maps domain errors to HTTP codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperror.ErrPlayerNotFound),
		errors.Is(err, apperror.ErrGameNotFound),
		errors.Is(err, apperror.ErrNoActiveGame):
		return http.StatusNotFound
	case errors.Is(err, apperror.ErrCellOccupied),
		errors.Is(err, apperror.ErrNotYourTurn),
		errors.Is(err, apperror.ErrGameFinished):
		return http.StatusConflict
	case errors.Is(err, apperror.ErrInvalidCell),
		errors.Is(err, apperror.ErrInvalidMark):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
