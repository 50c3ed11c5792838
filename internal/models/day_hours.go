package models

import "time"

// DayHours é a configuração de um dia da semana no modelo fixo semanal.
// Os campos de hora são inteiros 0–23, sem granularidade de minutos.
type DayHours struct {
	DayOfWeek  int  `json:"dayOfWeek"` // 0=Dom .. 6=Sáb
	IsOpen     bool `json:"isOpen"`
	Opening    int  `json:"opening"`
	Closing    int  `json:"closing"`
	LunchStart int  `json:"lunchStart"`
	LunchEnd   int  `json:"lunchEnd"`
}

// Schedule é o modelo semanal completo (7 entradas, uma por dia).
type Schedule []DayHours

// For devolve a configuração do dia da semana. Dia ausente conta como
// fechado para quem consulta.
func (s Schedule) For(weekday time.Weekday) (DayHours, bool) {
	for _, d := range s {
		if d.DayOfWeek == int(weekday) {
			return d, true
		}
	}
	return DayHours{}, false
}
