package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// HandleServiceError maps service sentinel errors onto HTTP responses.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrAttractionNotFound),
		errors.Is(err, ErrRaceNotFound),
		errors.Is(err, ErrRouteNotFound),
		errors.Is(err, ErrComplaintNotFound),
		errors.Is(err, ErrAccountNotFound),
		errors.Is(err, ErrRouteSessionNotFound),
		errors.Is(err, ErrScanSessionNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrInvalidTwoFactorCode),
		errors.Is(err, ErrInvalidResetToken):
		RespondError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrEmailAlreadyExists),
		errors.Is(err, ErrRaceFull),
		errors.Is(err, ErrAlreadyInRace),
		errors.Is(err, ErrNotInRace),
		errors.Is(err, ErrScanInProgress),
		errors.Is(err, ErrScanNotReady),
		errors.Is(err, ErrRouteNotCalculated):
		RespondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrInvalidRating),
		errors.Is(err, ErrInvalidPage),
		errors.Is(err, ErrInvalidPageSize),
		errors.Is(err, ErrNoDestinations),
		errors.Is(err, ErrUnknownMoonPhase),
		errors.Is(err, ErrUnknownHoroscope):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
