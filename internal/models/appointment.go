package models

import "time"

// Appointment guarda uma CÓPIA do serviço e do barbeiro no momento da
// reserva. Editar ou excluir o cadastro depois não altera o histórico.
type Appointment struct {
	ID int64 `json:"id"`

	Service Service `json:"service"`
	Barber  Barber  `json:"barber"`

	Date time.Time `json:"date"`

	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
}

// End é o fim do intervalo ocupado, calculado pela duração registrada
// na cópia do serviço (intervalo meio-aberto [Date, End)).
func (a Appointment) End() time.Time {
	return a.Date.Add(time.Duration(a.Service.Duration) * time.Minute)
}

// SameDay compara apenas o dia de calendário, ignorando o horário.
func (a Appointment) SameDay(t time.Time) bool {
	y1, m1, d1 := a.Date.Date()
	y2, m2, d2 := t.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
