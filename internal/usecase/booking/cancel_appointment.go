package booking

import (
	"context"
	"strconv"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	"github.com/BruksfildServices01/barbershop-booking/internal/state"
)

type CancelAppointment struct {
	state *state.Manager
	audit *audit.Dispatcher
}

func NewCancelAppointment(st *state.Manager, au *audit.Dispatcher) *CancelAppointment {
	return &CancelAppointment{state: st, audit: au}
}

// Execute remove o agendamento por id. Id inexistente é no-op — o
// cancelamento é idempotente por contrato.
func (uc *CancelAppointment) Execute(ctx context.Context, id int64, actor string) error {
	if err := uc.state.RemoveAppointment(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    actor,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: strconv.FormatInt(id, 10),
	})

	return nil
}
