package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yyoonchul/murmur-blog/internal/http/response"
	"github.com/yyoonchul/murmur-blog/internal/services"
)

type SettingsHandler struct {
	settings services.SettingsService
}

func NewSettingsHandler(settings services.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// GET /api/settings
func (h *SettingsHandler) Get(c *gin.Context) {
	st, err := h.settings.Status()
	if err != nil {
		response.RespondServiceError(c, err, "load_settings_failed")
		return
	}
	response.RespondOK(c, st)
}

// PUT /api/settings
// body: { "provider": "...", "model": "...", "apiKey": "..." }; blank fields are kept.
func (h *SettingsHandler) Put(c *gin.Context) {
	var req services.SettingsUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", errInvalidBody)
		return
	}
	st, err := h.settings.Update(req)
	if err != nil {
		response.RespondServiceError(c, err, "save_settings_failed")
		return
	}
	response.RespondOK(c, st)
}

// GET /api/models
func (h *SettingsHandler) Models(c *gin.Context) {
	providers, err := h.settings.Models()
	if err != nil {
		response.RespondServiceError(c, err, "list_models_failed")
		return
	}
	response.RespondOK(c, gin.H{"providers": providers})
}
