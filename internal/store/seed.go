package store

import (
	"time"

	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

// DefaultDatabase monta o estado inicial da barbearia, usado quando o
// store ainda não tem snapshot. Os dois agendamentos de exemplo caem no
// dia de "now" para a agenda não nascer vazia.
func DefaultDatabase(now time.Time) *models.Database {
	services := []models.Service{
		{ID: 1, Name: "Corte de Cabelo", Price: 50, Duration: 45, Icon: models.IconCut},
		{ID: 2, Name: "Barba", Price: 35, Duration: 30, Icon: models.IconBeard},
		{ID: 3, Name: "Corte e Barba", Price: 80, Duration: 75, Icon: models.IconShave},
		{ID: 4, Name: "Pezinho", Price: 20, Duration: 15, Icon: models.IconCut},
	}

	barbers := []models.Barber{
		{ID: 1, Name: "Ricardo", ImageURL: "https://picsum.photos/seed/ricardo/400/400"},
		{ID: 2, Name: "Fernando", ImageURL: "https://picsum.photos/seed/fernando/400/400"},
		{ID: 3, Name: "Júnior", ImageURL: "https://picsum.photos/seed/junior/400/400"},
	}

	year, month, day := now.Date()
	loc := now.Location()

	appointments := []models.Appointment{
		{
			ID:            1,
			Service:       services[1],
			Barber:        barbers[0],
			Date:          time.Date(year, month, day, 10, 0, 0, 0, loc),
			CustomerName:  "Carlos Silva",
			CustomerPhone: "11987654321",
		},
		{
			ID:            2,
			Service:       services[2],
			Barber:        barbers[1],
			Date:          time.Date(year, month, day, 14, 30, 0, 0, loc),
			CustomerName:  "Bruno Costa",
			CustomerPhone: "21912345678",
		},
	}

	schedule := models.Schedule{
		{DayOfWeek: 0, IsOpen: false, Opening: 9, Closing: 18, LunchStart: 12, LunchEnd: 13},
		{DayOfWeek: 1, IsOpen: true, Opening: 9, Closing: 19, LunchStart: 12, LunchEnd: 13},
		{DayOfWeek: 2, IsOpen: true, Opening: 9, Closing: 19, LunchStart: 12, LunchEnd: 13},
		{DayOfWeek: 3, IsOpen: true, Opening: 9, Closing: 19, LunchStart: 12, LunchEnd: 13},
		{DayOfWeek: 4, IsOpen: true, Opening: 9, Closing: 19, LunchStart: 12, LunchEnd: 13},
		{DayOfWeek: 5, IsOpen: true, Opening: 9, Closing: 19, LunchStart: 12, LunchEnd: 13},
		{DayOfWeek: 6, IsOpen: true, Opening: 10, Closing: 16, LunchStart: 12, LunchEnd: 13},
	}

	content := models.SiteContent{
		LogoName:      "Barber Shop",
		AboutText:     "Fundada em 2010, nossa barbearia combina a tradição da velha escola com técnicas modernas para oferecer uma experiência única. Nossos barbeiros são mestres em seus ofícios, dedicados a proporcionar cortes de cabelo e barbas impecáveis. Usamos apenas produtos da mais alta qualidade em um ambiente relaxante e acolhedor. Venha nos visitar e saia sentindo-se renovado e confiante.",
		FooterAddress: "Rua da Barbearia, 123\nCentro, Cidade, UF\nCEP: 12345-678",
		FooterPhone:   "(11) 98765-4321",
		FooterEmail:   "contato@barbershop.com",
		SocialLinks: models.SocialLinks{
			Instagram: "https://instagram.com",
			Facebook:  "https://facebook.com",
			WhatsApp:  "https://wa.me/5511987654321",
		},
	}

	return &models.Database{
		Services:      services,
		Barbers:       barbers,
		Appointments:  appointments,
		Schedule:      schedule,
		SiteContent:   content,
		AdminPassword: "fernando1984",
	}
}
