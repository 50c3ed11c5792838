package booking

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/state"
)

type GetAvailabilityInput struct {
	Date      time.Time // dia de calendário consultado
	BarberID  int
	ServiceID int
	Now       time.Time
}

type GetAvailability struct {
	state *state.Manager
}

func NewGetAvailability(st *state.Manager) *GetAvailability {
	return &GetAvailability{state: st}
}

// Execute resolve o serviço escolhido e delega o cálculo ao motor puro.
// Dia fechado devolve lista vazia — é resultado normal, não erro.
func (uc *GetAvailability) Execute(
	_ context.Context,
	in GetAvailabilityInput,
) ([]time.Time, error) {

	svc, ok := uc.state.ServiceByID(in.ServiceID)
	if !ok {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	if _, ok := uc.state.BarberByID(in.BarberID); !ok {
		return nil, httperr.ErrBusiness("barber_not_found")
	}

	db := uc.state.Snapshot()

	return domain.AvailableSlots(domain.AvailabilityInput{
		Date:         in.Date,
		BarberID:     in.BarberID,
		DurationMin:  svc.Duration,
		Schedule:     db.Schedule,
		Appointments: db.Appointments,
		Now:          in.Now,
	}), nil
}
