package appointment

import (
	"time"

	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

// Passo fixo da grade de horários, em minutos. A grade nasce sempre na
// hora de abertura do dia, então os horários não mudam conforme a hora
// da consulta.
const SlotIntervalMin = 30

type AvailabilityInput struct {
	Date         time.Time // dia de calendário consultado
	BarberID     int
	DurationMin  int // duração do serviço escolhido
	Schedule     models.Schedule
	Appointments []models.Appointment
	Now          time.Time // relógio injetado, nunca lido aqui dentro
}

// AvailableSlots calcula os inícios de horário livres para um barbeiro
// em um dia. Função pura e determinística: mesmo input, mesma lista.
//
// Um horário entra na lista quando:
//   - o dia da semana existe no modelo e está aberto;
//   - início + duração cabe até a hora de fechamento;
//   - não cruza o almoço nem agendamento do MESMO barbeiro no mesmo dia
//     (intervalos meio-abertos, encostar no limite não conflita);
//   - o início é estritamente depois de Now.
//
// Configuração contraditória (fechamento antes da abertura etc.) degrada
// para lista vazia ou menor, nunca para erro.
func AvailableSlots(in AvailabilityInput) []time.Time {
	day, ok := in.Schedule.For(in.Date.Weekday())
	if !ok || !day.IsOpen || in.DurationMin <= 0 {
		return []time.Time{}
	}

	year, month, dom := in.Date.Date()
	loc := in.Date.Location()
	at := func(totalMin int) time.Time {
		return time.Date(year, month, dom, totalMin/60, totalMin%60, 0, 0, loc)
	}

	busy := ForBarberOnDay(in.Appointments, in.BarberID, in.Date)

	lunchStart := at(day.LunchStart * 60)
	lunchEnd := at(day.LunchEnd * 60)

	slots := []time.Time{}
	for m := day.Opening * 60; m+in.DurationMin <= day.Closing*60; m += SlotIntervalMin {
		start := at(m)
		end := start.Add(time.Duration(in.DurationMin) * time.Minute)

		// almoço
		if start.Before(lunchEnd) && end.After(lunchStart) {
			continue
		}

		if overlapsAny(busy, start, end) {
			continue
		}

		if !start.After(in.Now) {
			continue
		}

		slots = append(slots, start)
	}

	return slots
}

// overlapsAny aplica o teste meio-aberto estrito (aStart < bEnd && bStart < aEnd).
// O intervalo ocupado usa a duração REGISTRADA na cópia do serviço.
func overlapsAny(apps []models.Appointment, start, end time.Time) bool {
	for _, ap := range apps {
		if start.Before(ap.End()) && end.After(ap.Date) {
			return true
		}
	}
	return false
}

// ForBarberOnDay filtra os agendamentos do barbeiro no mesmo dia de
// calendário. Agendamentos de outros barbeiros nunca bloqueiam horário.
func ForBarberOnDay(apps []models.Appointment, barberID int, day time.Time) []models.Appointment {
	out := make([]models.Appointment, 0, len(apps))
	for _, ap := range apps {
		if ap.Barber.ID == barberID && ap.SameDay(day) {
			out = append(out, ap)
		}
	}
	return out
}
