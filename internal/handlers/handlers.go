package handlers

import (
	"net/http"

	"leetremind/internal/services"
	"leetremind/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler owns the collaborators the HTTP endpoints depend on. Everything
// is injected so tests can substitute doubles.
type Handler struct {
	store      store.ReminderStore
	notifier   services.Notifier
	sweeper    *services.Sweeper
	cronSecret string
}

func New(st store.ReminderStore, notifier services.Notifier, sweeper *services.Sweeper, cronSecret string) *Handler {
	return &Handler{
		store:      st,
		notifier:   notifier,
		sweeper:    sweeper,
		cronSecret: cronSecret,
	}
}

// handleError logs the underlying error and sends a generic JSON error
// body, keeping internal detail out of the response.
func handleError(c *gin.Context, status int, message string, err error) {
	zap.L().Error(message, zap.Error(err))
	c.JSON(status, gin.H{"error": message})
}

// Home handles requests to the root path "/"
func (h *Handler) Home(c *gin.Context) {
	c.String(http.StatusOK, "Welcome to LeetRemind!")
}

// Health is a simple health check endpoint
func (h *Handler) Health(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}
