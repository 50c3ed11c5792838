package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
	"github.com/BruksfildServices01/barbershop-booking/internal/state"
	"github.com/BruksfildServices01/barbershop-booking/internal/storage"
)

// Limite de upload da foto do barbeiro (o pipeline redimensiona para
// 400x400 de qualquer jeito).
const maxImageBytes = 8 << 20

// BarberHandler é o CRUD da equipe no painel admin, incluindo o upload
// da foto do card. A foto é opcional: sem storage configurado, o
// cadastro segue funcionando só com a URL informada.
type BarberHandler struct {
	state  *state.Manager
	images *storage.ImageStorage
	audit  *audit.Dispatcher
}

func NewBarberHandler(st *state.Manager, images *storage.ImageStorage, au *audit.Dispatcher) *BarberHandler {
	return &BarberHandler{state: st, images: images, audit: au}
}

// --------- Requests ---------

type BarberRequest struct {
	Name     string `json:"name" binding:"required"`
	ImageURL string `json:"imageUrl"`
}

// --------- Handlers ---------

func (h *BarberHandler) List(c *gin.Context) {
	httpresp.List(c, h.state.Barbers())
}

func (h *BarberHandler) Create(c *gin.Context) {
	var req BarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	b, err := h.state.CreateBarber(c.Request.Context(), models.Barber{
		Name:     req.Name,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		httperr.Internal(c, "failed_to_save", "Erro ao salvar o barbeiro.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Actor:    "admin",
		Action:   "barber_created",
		Entity:   "barber",
		EntityID: strconv.Itoa(b.ID),
	})

	httpresp.Created(c, b)
}

func (h *BarberHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req BarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	b := models.Barber{ID: id, Name: req.Name, ImageURL: req.ImageURL}

	if err := h.state.UpdateBarber(c.Request.Context(), b); err != nil {
		if errors.Is(err, state.ErrNotFound) {
			httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_save", "Erro ao salvar o barbeiro.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Actor:    "admin",
		Action:   "barber_updated",
		Entity:   "barber",
		EntityID: strconv.Itoa(id),
	})

	httpresp.OK(c, b)
}

func (h *BarberHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	if err := h.state.DeleteBarber(c.Request.Context(), id); err != nil {
		if errors.Is(err, state.ErrNotFound) {
			httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_delete", "Erro ao remover o barbeiro.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Actor:    "admin",
		Action:   "barber_deleted",
		Entity:   "barber",
		EntityID: strconv.Itoa(id),
	})

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// UploadImage recebe multipart (campo "image"), converte para WebP
// 400x400 e grava a URL publicada no cadastro do barbeiro.
func (h *BarberHandler) UploadImage(c *gin.Context) {
	if h.images == nil {
		httperr.Internal(c, "storage_not_configured", "Upload de imagens não está configurado.")
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	b, ok := h.state.BarberByID(id)
	if !ok {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado.")
		return
	}

	file, _, err := c.Request.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Envie o arquivo no campo 'image'.")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageBytes+1))
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Erro ao ler o arquivo.")
		return
	}
	if len(data) > maxImageBytes {
		httperr.BadRequest(c, "file_too_large", "Arquivo acima do limite de 8MB.")
		return
	}

	url, err := h.images.UploadBarberPortrait(c.Request.Context(), data)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Não foi possível processar a imagem.")
		return
	}

	b.ImageURL = url
	if err := h.state.UpdateBarber(c.Request.Context(), b); err != nil {
		httperr.Internal(c, "failed_to_save", "Erro ao salvar o barbeiro.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Actor:    "admin",
		Action:   "barber_image_uploaded",
		Entity:   "barber",
		EntityID: strconv.Itoa(id),
	})

	httpresp.OK(c, b)
}
