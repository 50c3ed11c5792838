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

// WorkingHoursHandler administra o modelo semanal fixo de
// funcionamento: sete entradas, uma por dia da semana.
type WorkingHoursHandler struct {
	state *state.Manager
	audit *audit.Dispatcher
}

func NewWorkingHoursHandler(st *state.Manager, au *audit.Dispatcher) *WorkingHoursHandler {
	return &WorkingHoursHandler{state: st, audit: au}
}

// --------- Requests ---------

type WorkingHoursRequest struct {
	Schedule []models.DayHours `json:"schedule" binding:"required"`
}

// --------- Handlers ---------

func (h *WorkingHoursHandler) Get(c *gin.Context) {
	httpresp.OK(c, gin.H{"schedule": h.state.Schedule()})
}

// Update substitui a semana inteira de uma vez, como o painel envia.
// Validação estrutural apenas; a regra de almoço invertido (lunchEnd <=
// lunchStart desliga o bloqueio) fica a cargo do motor de horários.
func (h *WorkingHoursHandler) Update(c *gin.Context) {
	var req WorkingHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if err := validateSchedule(req.Schedule); err != nil {
		httperr.BadRequest(c, "invalid_schedule", err.Error())
		return
	}

	if err := h.state.ReplaceSchedule(c.Request.Context(), models.Schedule(req.Schedule)); err != nil {
		httperr.Internal(c, "failed_to_save", "Erro ao salvar os horários.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Actor:  "admin",
		Action: "working_hours_updated",
		Entity: "schedule",
	})

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func validateSchedule(s []models.DayHours) error {
	if len(s) != 7 {
		return errSchedule("a agenda precisa ter exatamente 7 dias")
	}

	var seen [7]bool
	for _, d := range s {
		if d.DayOfWeek < 0 || d.DayOfWeek > 6 {
			return errSchedule("dia da semana fora de 0–6")
		}
		if seen[d.DayOfWeek] {
			return errSchedule("dia da semana repetido")
		}
		seen[d.DayOfWeek] = true

		for _, hour := range []int{d.Opening, d.Closing, d.LunchStart, d.LunchEnd} {
			if hour < 0 || hour > 23 {
				return errSchedule("hora fora de 0–23")
			}
		}
		if d.IsOpen && d.Opening >= d.Closing {
			return errSchedule("abertura deve ser antes do fechamento")
		}
	}
	return nil
}

type errSchedule string

func (e errSchedule) Error() string { return string(e) }
