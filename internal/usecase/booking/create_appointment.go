package booking

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
	"github.com/BruksfildServices01/barbershop-booking/internal/state"
	"github.com/BruksfildServices01/barbershop-booking/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ServiceID int
	BarberID  int

	Date string // YYYY-MM-DD
	Time string // HH:mm

	CustomerName  string
	CustomerPhone string

	Actor string // "customer" ou "admin", só para auditoria
	Now   time.Time
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	state *state.Manager
	audit *audit.Dispatcher
}

func NewCreateAppointment(st *state.Manager, au *audit.Dispatcher) *CreateAppointment {
	return &CreateAppointment{state: st, audit: au}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (models.Appointment, error) {

	// 1. Dados do cliente — única validação de fronteira do fluxo
	name := strings.TrimSpace(in.CustomerName)
	if name == "" {
		return models.Appointment{}, httperr.ErrBusiness("customer_name_required")
	}
	if !validators.IsPhoneValid(in.CustomerPhone) {
		return models.Appointment{}, httperr.ErrBusiness("customer_phone_required")
	}
	phone := validators.NormalizePhone(in.CustomerPhone)

	// 2. Data/hora no fuso da barbearia
	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		in.Now.Location(),
	)
	if err != nil {
		return models.Appointment{}, httperr.ErrBusiness("invalid_date_or_time")
	}

	// 3. Serviço e barbeiro como estão HOJE: o agendamento embute cópia
	svc, ok := uc.state.ServiceByID(in.ServiceID)
	if !ok {
		return models.Appointment{}, httperr.ErrBusiness("service_not_found")
	}
	barber, ok := uc.state.BarberByID(in.BarberID)
	if !ok {
		return models.Appointment{}, httperr.ErrBusiness("barber_not_found")
	}

	// 4. O horário pedido precisa estar na grade livre de agora: isso
	// cobre dia fechado, almoço, conflito com o mesmo barbeiro e
	// horário já passado de uma vez só
	db := uc.state.Snapshot()
	slots := domain.AvailableSlots(domain.AvailabilityInput{
		Date:         start,
		BarberID:     in.BarberID,
		DurationMin:  svc.Duration,
		Schedule:     db.Schedule,
		Appointments: db.Appointments,
		Now:          in.Now,
	})

	free := false
	for _, s := range slots {
		if s.Equal(start) {
			free = true
			break
		}
	}
	if !free {
		return models.Appointment{}, httperr.ErrBusiness("slot_unavailable")
	}

	// 5. Criação
	ap, err := uc.state.AppendAppointment(ctx, models.Appointment{
		Service:       svc,
		Barber:        barber,
		Date:          start,
		CustomerName:  name,
		CustomerPhone: phone,
	}, in.Now)
	if err != nil {
		return models.Appointment{}, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    in.Actor,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: strconv.FormatInt(ap.ID, 10),
	})

	return ap, nil
}
