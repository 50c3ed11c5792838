package state

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbershop-booking/internal/models"
	"github.com/BruksfildServices01/barbershop-booking/internal/store"
)

var ErrNotFound = errors.New("record_not_found")

// Manager é o dono único do estado da aplicação. Toda mutação passa por
// aqui e termina com o snapshot completo regravado no store — nunca
// atualização parcial. O mutex existe porque o servidor HTTP é
// concorrente; coordenação entre clientes simultâneos não é objetivo.
type Manager struct {
	mu     sync.RWMutex
	db     *models.Database
	store  store.Store
	logger *zap.Logger
}

// NewManager carrega o snapshot ou semeia o estado inicial quando o
// store está vazio.
func NewManager(ctx context.Context, st store.Store, logger *zap.Logger, now time.Time) (*Manager, error) {
	db, err := st.Load(ctx)
	switch {
	case errors.Is(err, store.ErrNotFound):
		db = store.DefaultDatabase(now)
		if err := st.Save(ctx, db); err != nil {
			return nil, err
		}
		logger.Info("snapshot inicial criado",
			zap.Int("services", len(db.Services)),
			zap.Int("barbers", len(db.Barbers)),
		)
	case err != nil:
		return nil, err
	}

	return &Manager{db: db, store: st, logger: logger}, nil
}

// update aplica a mutação numa cópia e só troca o estado em memória
// depois que o store aceitou o novo snapshot.
func (m *Manager) update(ctx context.Context, fn func(db *models.Database) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := m.db.Clone()
	if err := fn(next); err != nil {
		return err
	}
	if err := m.store.Save(ctx, next); err != nil {
		return err
	}
	m.db = next
	return nil
}

// --------------------------------------------------
// Leitura (sempre cópias, nunca alias do estado)
// --------------------------------------------------

func (m *Manager) Snapshot() *models.Database {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.db.Clone()
}

func (m *Manager) Services() []models.Service {
	return m.Snapshot().Services
}

func (m *Manager) Barbers() []models.Barber {
	return m.Snapshot().Barbers
}

func (m *Manager) Appointments() []models.Appointment {
	return m.Snapshot().Appointments
}

func (m *Manager) Schedule() models.Schedule {
	return m.Snapshot().Schedule
}

func (m *Manager) SiteContent() models.SiteContent {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.db.SiteContent
}

func (m *Manager) ServiceByID(id int) (models.Service, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.db.ServiceByID(id)
}

func (m *Manager) BarberByID(id int) (models.Barber, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.db.BarberByID(id)
}

// CheckPassword é a comparação de igualdade em texto plano herdada do
// site original.
func (m *Manager) CheckPassword(password string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return password != "" && password == m.db.AdminPassword
}

// --------------------------------------------------
// Agendamentos
// --------------------------------------------------

// AppendAppointment atribui um id novo derivado do timestamp de criação
// e insere mantendo a coleção ordenada por início crescente.
func (m *Manager) AppendAppointment(ctx context.Context, ap models.Appointment, now time.Time) (models.Appointment, error) {
	err := m.update(ctx, func(db *models.Database) error {
		ap.ID = nextAppointmentID(db.Appointments, now)

		idx := sort.Search(len(db.Appointments), func(i int) bool {
			return db.Appointments[i].Date.After(ap.Date)
		})
		db.Appointments = append(db.Appointments, models.Appointment{})
		copy(db.Appointments[idx+1:], db.Appointments[idx:])
		db.Appointments[idx] = ap
		return nil
	})
	if err != nil {
		return models.Appointment{}, err
	}
	return ap, nil
}

// RemoveAppointment apaga por identidade; id ausente é no-op.
func (m *Manager) RemoveAppointment(ctx context.Context, id int64) error {
	return m.update(ctx, func(db *models.Database) error {
		for i, ap := range db.Appointments {
			if ap.ID == id {
				db.Appointments = append(db.Appointments[:i], db.Appointments[i+1:]...)
				return nil
			}
		}
		return nil
	})
}

// nextAppointmentID usa o timestamp de criação em milissegundos; se o
// relógio empatar ou andar para trás, avança além do maior id já usado.
func nextAppointmentID(apps []models.Appointment, now time.Time) int64 {
	id := now.UnixMilli()
	for _, ap := range apps {
		if ap.ID >= id {
			id = ap.ID + 1
		}
	}
	return id
}

// --------------------------------------------------
// Serviços
// --------------------------------------------------

func (m *Manager) CreateService(ctx context.Context, svc models.Service) (models.Service, error) {
	err := m.update(ctx, func(db *models.Database) error {
		svc.ID = 1
		for _, s := range db.Services {
			if s.ID >= svc.ID {
				svc.ID = s.ID + 1
			}
		}
		db.Services = append(db.Services, svc)
		return nil
	})
	if err != nil {
		return models.Service{}, err
	}
	return svc, nil
}

// UpdateService substitui o cadastro; agendamentos antigos guardam
// cópia própria e não são tocados.
func (m *Manager) UpdateService(ctx context.Context, svc models.Service) error {
	return m.update(ctx, func(db *models.Database) error {
		for i, s := range db.Services {
			if s.ID == svc.ID {
				db.Services[i] = svc
				return nil
			}
		}
		return ErrNotFound
	})
}

func (m *Manager) DeleteService(ctx context.Context, id int) error {
	return m.update(ctx, func(db *models.Database) error {
		for i, s := range db.Services {
			if s.ID == id {
				db.Services = append(db.Services[:i], db.Services[i+1:]...)
				return nil
			}
		}
		return ErrNotFound
	})
}

// --------------------------------------------------
// Barbeiros
// --------------------------------------------------

func (m *Manager) CreateBarber(ctx context.Context, b models.Barber) (models.Barber, error) {
	err := m.update(ctx, func(db *models.Database) error {
		b.ID = 1
		for _, cur := range db.Barbers {
			if cur.ID >= b.ID {
				b.ID = cur.ID + 1
			}
		}
		db.Barbers = append(db.Barbers, b)
		return nil
	})
	if err != nil {
		return models.Barber{}, err
	}
	return b, nil
}

func (m *Manager) UpdateBarber(ctx context.Context, b models.Barber) error {
	return m.update(ctx, func(db *models.Database) error {
		for i, cur := range db.Barbers {
			if cur.ID == b.ID {
				db.Barbers[i] = b
				return nil
			}
		}
		return ErrNotFound
	})
}

func (m *Manager) DeleteBarber(ctx context.Context, id int) error {
	return m.update(ctx, func(db *models.Database) error {
		for i, cur := range db.Barbers {
			if cur.ID == id {
				db.Barbers = append(db.Barbers[:i], db.Barbers[i+1:]...)
				return nil
			}
		}
		return ErrNotFound
	})
}

// --------------------------------------------------
// Horários, conteúdo e senha
// --------------------------------------------------

func (m *Manager) ReplaceSchedule(ctx context.Context, s models.Schedule) error {
	return m.update(ctx, func(db *models.Database) error {
		db.Schedule = s
		return nil
	})
}

func (m *Manager) UpdateSiteContent(ctx context.Context, c models.SiteContent) error {
	return m.update(ctx, func(db *models.Database) error {
		db.SiteContent = c
		return nil
	})
}

func (m *Manager) SetAdminPassword(ctx context.Context, password string) error {
	return m.update(ctx, func(db *models.Database) error {
		db.AdminPassword = password
		return nil
	})
}
