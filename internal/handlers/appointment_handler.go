package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
	"github.com/BruksfildServices01/barbershop-booking/internal/state"
	"github.com/BruksfildServices01/barbershop-booking/internal/usecase/booking"
)

// AppointmentHandler é a agenda do painel admin: listagem por dia e
// cancelamento.
type AppointmentHandler struct {
	state    *state.Manager
	cancelUC *booking.CancelAppointment
	tz       string
}

func NewAppointmentHandler(st *state.Manager, cancelUC *booking.CancelAppointment, tz string) *AppointmentHandler {
	return &AppointmentHandler{state: st, cancelUC: cancelUC, tz: tz}
}

// List devolve os agendamentos ordenados por início; com ?date= filtra
// pelo dia no fuso da barbearia.
func (h *AppointmentHandler) List(c *gin.Context) {
	apps := h.state.Appointments()

	if dateStr := c.Query("date"); dateStr != "" {
		day, err := parseShopDate(h.tz, dateStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}

		filtered := make([]models.Appointment, 0, len(apps))
		for _, ap := range apps {
			if ap.SameDay(day) {
				filtered = append(filtered, ap)
			}
		}
		apps = filtered
	}

	httpresp.List(c, apps)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	if err := h.cancelUC.Execute(c.Request.Context(), id, "admin"); err != nil {
		httperr.Internal(c, "cancel_failed", "Erro ao cancelar o agendamento.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
