package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
	"github.com/BruksfildServices01/barbershop-booking/internal/state"
)

// ServiceHandler é o CRUD do catálogo no painel admin.
type ServiceHandler struct {
	state *state.Manager
	audit *audit.Dispatcher
}

func NewServiceHandler(st *state.Manager, au *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{state: st, audit: au}
}

// --------- Requests ---------

type ServiceRequest struct {
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"required,gt=0"`
	Duration int     `json:"duration" binding:"required,gt=0"`
	Icon     string  `json:"icon" binding:"required"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	httpresp.List(c, h.state.Services())
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if !models.IsValidServiceIcon(req.Icon) {
		httperr.BadRequest(c, "invalid_icon", "Ícone desconhecido.")
		return
	}

	svc, err := h.state.CreateService(c.Request.Context(), models.Service{
		Name:     req.Name,
		Price:    req.Price,
		Duration: req.Duration,
		Icon:     req.Icon,
	})
	if err != nil {
		httperr.Internal(c, "failed_to_save", "Erro ao salvar o serviço.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Actor:    "admin",
		Action:   "service_created",
		Entity:   "service",
		EntityID: strconv.Itoa(svc.ID),
	})

	httpresp.Created(c, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if !models.IsValidServiceIcon(req.Icon) {
		httperr.BadRequest(c, "invalid_icon", "Ícone desconhecido.")
		return
	}

	svc := models.Service{
		ID:       id,
		Name:     req.Name,
		Price:    req.Price,
		Duration: req.Duration,
		Icon:     req.Icon,
	}

	if err := h.state.UpdateService(c.Request.Context(), svc); err != nil {
		if errors.Is(err, state.ErrNotFound) {
			httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_save", "Erro ao salvar o serviço.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Actor:    "admin",
		Action:   "service_updated",
		Entity:   "service",
		EntityID: strconv.Itoa(id),
	})

	httpresp.OK(c, svc)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	if err := h.state.DeleteService(c.Request.Context(), id); err != nil {
		if errors.Is(err, state.ErrNotFound) {
			httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_delete", "Erro ao remover o serviço.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Actor:    "admin",
		Action:   "service_deleted",
		Entity:   "service",
		EntityID: strconv.Itoa(id),
	})

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
