package handlers

import (
	"time"

	"github.com/BruksfildServices01/barbershop-booking/internal/timezone"
)

// A barbearia trabalha num único fuso, definido na configuração; todas
// as datas de consulta e reserva são interpretadas nele.

func shopNow(tz string) time.Time {
	return timezone.NowIn(tz)
}

func parseShopDate(tz, dateStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, timezone.Location(tz))
}
