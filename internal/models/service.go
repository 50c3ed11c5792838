package models

// Ícones disponíveis para o card do serviço (conjunto fixo do site)
const (
	IconCut   = "cut"
	IconBeard = "beard"
	IconShave = "shave"
	IconRazor = "razor"
	IconTowel = "towel"
)

var ServiceIcons = []string{IconCut, IconBeard, IconShave, IconRazor, IconTowel}

func IsValidServiceIcon(icon string) bool {
	for _, v := range ServiceIcons {
		if v == icon {
			return true
		}
	}
	return false
}

type Service struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Duration int     `json:"duration"` // minutos
	Icon     string  `json:"icon"`
}
