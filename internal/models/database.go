package models

// Database é o estado completo da aplicação, persistido sempre como um
// único documento JSON (nunca atualização parcial). As datas dos
// agendamentos viajam como ISO-8601 e voltam sem perda.
type Database struct {
	Services      []Service     `json:"services"`
	Barbers       []Barber      `json:"barbers"`
	Appointments  []Appointment `json:"appointments"`
	Schedule      Schedule      `json:"schedule"`
	SiteContent   SiteContent   `json:"siteContent"`
	AdminPassword string        `json:"adminPassword"`
}

// Clone devolve uma cópia independente do documento (as structs internas
// são valores, basta copiar os slices).
func (db *Database) Clone() *Database {
	out := &Database{
		Services:      make([]Service, len(db.Services)),
		Barbers:       make([]Barber, len(db.Barbers)),
		Appointments:  make([]Appointment, len(db.Appointments)),
		Schedule:      make(Schedule, len(db.Schedule)),
		SiteContent:   db.SiteContent,
		AdminPassword: db.AdminPassword,
	}
	copy(out.Services, db.Services)
	copy(out.Barbers, db.Barbers)
	copy(out.Appointments, db.Appointments)
	copy(out.Schedule, db.Schedule)
	return out
}

func (db *Database) ServiceByID(id int) (Service, bool) {
	for _, s := range db.Services {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}

func (db *Database) BarberByID(id int) (Barber, bool) {
	for _, b := range db.Barbers {
		if b.ID == id {
			return b, true
		}
	}
	return Barber{}, false
}
