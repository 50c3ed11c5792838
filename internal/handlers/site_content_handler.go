package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
	"github.com/BruksfildServices01/barbershop-booking/internal/state"
)

// SiteContentHandler edita os textos e links exibidos no site público.
type SiteContentHandler struct {
	state *state.Manager
	audit *audit.Dispatcher
}

func NewSiteContentHandler(st *state.Manager, au *audit.Dispatcher) *SiteContentHandler {
	return &SiteContentHandler{state: st, audit: au}
}

func (h *SiteContentHandler) Get(c *gin.Context) {
	httpresp.OK(c, h.state.SiteContent())
}

func (h *SiteContentHandler) Update(c *gin.Context) {
	var content models.SiteContent
	if err := c.ShouldBindJSON(&content); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if content.LogoName == "" {
		httperr.BadRequest(c, "logo_name_required", "O nome do site é obrigatório.")
		return
	}

	if err := h.state.UpdateSiteContent(c.Request.Context(), content); err != nil {
		httperr.Internal(c, "failed_to_save", "Erro ao salvar o conteúdo.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Actor:  "admin",
		Action: "site_content_updated",
		Entity: "site_content",
	})

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
