package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-booking/internal/state"
	"github.com/BruksfildServices01/barbershop-booking/internal/usecase/booking"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

// PublicHandler atende o fluxo de reserva do cliente: serviço →
// barbeiro → data/horário → confirmação. O servidor não guarda o
// passo-a-passo; o cliente reconsulta a disponibilidade sempre que
// troca serviço, barbeiro ou data.
type PublicHandler struct {
	state          *state.Manager
	availabilityUC *booking.GetAvailability
	createUC       *booking.CreateAppointment
	cancelUC       *booking.CancelAppointment
	tz             string
}

func NewPublicHandler(
	st *state.Manager,
	availabilityUC *booking.GetAvailability,
	createUC *booking.CreateAppointment,
	cancelUC *booking.CancelAppointment,
	tz string,
) *PublicHandler {
	return &PublicHandler{
		state:          st,
		availabilityUC: availabilityUC,
		createUC:       createUC,
		cancelUC:       cancelUC,
		tz:             tz,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type CreateAppointmentRequest struct {
	ServiceID     int    `json:"service_id" binding:"required"`
	BarberID      int    `json:"barber_id" binding:"required"`
	Date          string `json:"date" binding:"required"` // YYYY-MM-DD
	Time          string `json:"time" binding:"required"` // HH:mm
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerPhone string `json:"customer_phone" binding:"required"`
}

type SlotDTO struct {
	Time     string    `json:"time"` // HH:mm no fuso da barbearia
	StartsAt time.Time `json:"starts_at"`
}

////////////////////////////////////////////////////////
// CONTEÚDO E CATÁLOGO
////////////////////////////////////////////////////////

func (h *PublicHandler) SiteContent(c *gin.Context) {
	httpresp.OK(c, h.state.SiteContent())
}

func (h *PublicHandler) ListServices(c *gin.Context) {
	httpresp.List(c, h.state.Services())
}

func (h *PublicHandler) ListBarbers(c *gin.Context) {
	httpresp.List(c, h.state.Barbers())
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	dateStr := c.Query("date")
	barberIDStr := c.Query("barber_id")
	serviceIDStr := c.Query("service_id")

	if dateStr == "" || barberIDStr == "" || serviceIDStr == "" {
		httperr.BadRequest(c, "missing_params", "Data, barbeiro e serviço são obrigatórios.")
		return
	}

	barberID, err := strconv.Atoi(barberIDStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_barber_id", "Barbeiro inválido.")
		return
	}

	serviceID, err := strconv.Atoi(serviceIDStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Serviço inválido.")
		return
	}

	date, err := parseShopDate(h.tz, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	slots, err := h.availabilityUC.Execute(c.Request.Context(), booking.GetAvailabilityInput{
		Date:      date,
		BarberID:  barberID,
		ServiceID: serviceID,
		Now:       shopNow(h.tz),
	})
	if err != nil {
		if code, ok := httperr.BusinessCode(err); ok {
			httperr.BadRequest(c, code, "Consulta inválida.")
			return
		}
		httperr.Internal(c, "availability_failed", "Erro ao calcular horários.")
		return
	}

	out := make([]SlotDTO, 0, len(slots))
	for _, s := range slots {
		out = append(out, SlotDTO{Time: s.Format("15:04"), StartsAt: s})
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": out,
	})
}

////////////////////////////////////////////////////////
// CREATE / CANCEL
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), booking.CreateAppointmentInput{
		ServiceID:     req.ServiceID,
		BarberID:      req.BarberID,
		Date:          req.Date,
		Time:          req.Time,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Actor:         "customer",
		Now:           shopNow(h.tz),
	})
	if err != nil {
		mapCreateErrors(c, err)
		return
	}

	httpresp.Created(c, ap)
}

func (h *PublicHandler) CancelAppointment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	if err := h.cancelUC.Execute(c.Request.Context(), id, "customer"); err != nil {
		httperr.Internal(c, "cancel_failed", "Erro ao cancelar o agendamento.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// mapCreateErrors traduz os códigos de negócio da criação para HTTP.
func mapCreateErrors(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "create_failed", "Erro ao criar o agendamento.")
		return
	}

	switch code {
	case "slot_unavailable":
		httperr.Conflict(c, code, "Esse horário não está mais disponível.")
	case "customer_name_required", "customer_phone_required":
		httperr.BadRequest(c, code, "Nome e telefone são obrigatórios.")
	case "invalid_date_or_time":
		httperr.BadRequest(c, code, "Data ou horário inválido.")
	case "service_not_found", "barber_not_found":
		httperr.BadRequest(c, code, "Serviço ou barbeiro inválido.")
	default:
		httperr.BadRequest(c, code, "Não foi possível criar o agendamento.")
	}
}
