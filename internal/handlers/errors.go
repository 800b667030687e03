package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/l10n_addons/internal/apperrors"
	"github.com/SscSPs/l10n_addons/internal/middleware"
	"github.com/gin-gonic/gin"
)

// RedirectResponse is the body of a 409 configuration error.
type RedirectResponse struct {
	Error      string                   `json:"error"`
	Action     apperrors.RedirectAction `json:"action"`
	ButtonText string                   `json:"buttonText"`
}

// respondError maps a service error to its HTTP status. fallback is shown for unexpected errors.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	var redirect *apperrors.RedirectError
	switch {
	case errors.As(err, &redirect):
		logger.Warn("Configuration required", slog.String("error", err.Error()), slog.String("res_model", redirect.Action.ResModel))
		c.JSON(http.StatusConflict, RedirectResponse{
			Error:      redirect.Message,
			Action:     redirect.Action,
			ButtonText: redirect.ButtonText,
		})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Duplicate resource", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotEligible):
		logger.Warn("Records not eligible", slog.String("error", err.Error()))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// currentUser returns the authenticated user id or writes a 401.
func currentUser(c *gin.Context, logger *slog.Logger) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userID, true
}
