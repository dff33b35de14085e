package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	types "github.com/yyoonchul/murmur-blog/internal/domain"
	"github.com/yyoonchul/murmur-blog/internal/http/response"
	"github.com/yyoonchul/murmur-blog/internal/services"
)

var errPersonasArray = errors.New("personas must be an array")

type PersonaHandler struct {
	personas services.PersonaService
}

func NewPersonaHandler(personas services.PersonaService) *PersonaHandler {
	return &PersonaHandler{personas: personas}
}

// GET /api/personas
func (h *PersonaHandler) Get(c *gin.Context) {
	response.RespondOK(c, h.personas.Get(c.Request.Context()))
}

// PUT /api/personas
func (h *PersonaHandler) Put(c *gin.Context) {
	var roster types.Roster
	if err := c.ShouldBindJSON(&roster); err != nil || roster.Personas == nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_personas", errPersonasArray)
		return
	}
	saved, err := h.personas.Save(c.Request.Context(), roster)
	if err != nil {
		response.RespondServiceError(c, err, "save_personas_failed")
		return
	}
	response.RespondOK(c, saved)
}
