package state

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbershop-booking/internal/models"
	"github.com/BruksfildServices01/barbershop-booking/internal/store"
)

var seedTime = time.Date(2025, 6, 2, 8, 0, 0, 0, time.Local)

func newManager(t *testing.T) (*Manager, *store.MemoryStore) {
	t.Helper()
	mem := store.NewMemoryStore()
	m, err := NewManager(context.Background(), mem, zap.NewNop(), seedTime)
	require.NoError(t, err)
	return m, mem
}

func TestNewManager_SeedsEmptyStore(t *testing.T) {
	m, mem := newManager(t)

	assert.Len(t, m.Services(), 4)
	assert.Len(t, m.Barbers(), 3)
	assert.Equal(t, 1, mem.Saves, "o seed precisa ser persistido")

	// segundo manager no mesmo store carrega, não re-semeia
	m2, err := NewManager(context.Background(), mem, zap.NewNop(), seedTime.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, m.Snapshot(), m2.Snapshot())
	assert.Equal(t, 1, mem.Saves)
}

func TestAppendAppointment_OrderAndIDs(t *testing.T) {
	m, mem := newManager(t)

	svc, _ := m.ServiceByID(2)
	barber, _ := m.BarberByID(1)

	day := seedTime.AddDate(0, 0, 1)
	mk := func(hour int) models.Appointment {
		return models.Appointment{
			Service:       svc,
			Barber:        barber,
			Date:          time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, day.Location()),
			CustomerName:  "Cliente",
			CustomerPhone: "11999990000",
		}
	}

	now := seedTime
	late, err := m.AppendAppointment(context.Background(), mk(16), now)
	require.NoError(t, err)
	early, err := m.AppendAppointment(context.Background(), mk(9), now)
	require.NoError(t, err)

	assert.NotEqual(t, late.ID, early.ID)
	assert.Greater(t, early.ID, late.ID, "ids crescem mesmo com relógio parado")

	apps := m.Appointments()
	for i := 1; i < len(apps); i++ {
		assert.False(t, apps[i].Date.Before(apps[i-1].Date),
			"coleção precisa ficar ordenada por início")
	}

	saves := mem.Saves
	loaded, err := mem.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, loaded.Appointments, 4) // 2 do seed + 2 novos
	assert.Equal(t, saves, mem.Saves)
}

func TestAppendAppointment_SnapshotCopySemantics(t *testing.T) {
	m, _ := newManager(t)
	ctx := context.Background()

	svc, _ := m.ServiceByID(1)
	barber, _ := m.BarberByID(1)

	ap, err := m.AppendAppointment(ctx, models.Appointment{
		Service:       svc,
		Barber:        barber,
		Date:          seedTime.Add(26 * time.Hour),
		CustomerName:  "Cliente",
		CustomerPhone: "11999990000",
	}, seedTime)
	require.NoError(t, err)

	// editar o serviço depois não reescreve o histórico
	svc.Price = 999
	svc.Duration = 5
	require.NoError(t, m.UpdateService(ctx, svc))

	// excluir o barbeiro também não
	require.NoError(t, m.DeleteBarber(ctx, barber.ID))

	var stored models.Appointment
	for _, cur := range m.Appointments() {
		if cur.ID == ap.ID {
			stored = cur
		}
	}
	assert.Equal(t, float64(50), stored.Service.Price)
	assert.Equal(t, 45, stored.Service.Duration)
	assert.Equal(t, "Ricardo", stored.Barber.Name)
}

func TestRemoveAppointment_Idempotent(t *testing.T) {
	m, _ := newManager(t)
	ctx := context.Background()

	apps := m.Appointments()
	require.NotEmpty(t, apps)
	id := apps[0].ID

	require.NoError(t, m.RemoveAppointment(ctx, id))
	assert.Len(t, m.Appointments(), len(apps)-1)

	// repetir ou remover id inexistente não é erro
	require.NoError(t, m.RemoveAppointment(ctx, id))
	require.NoError(t, m.RemoveAppointment(ctx, 123456789))
	assert.Len(t, m.Appointments(), len(apps)-1)
}

func TestServiceCRUD(t *testing.T) {
	m, _ := newManager(t)
	ctx := context.Background()

	created, err := m.CreateService(ctx, models.Service{
		Name: "Sobrancelha", Price: 15, Duration: 15, Icon: models.IconRazor,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, created.ID, "id novo acima do maior existente")

	created.Price = 18
	require.NoError(t, m.UpdateService(ctx, created))
	got, ok := m.ServiceByID(created.ID)
	require.True(t, ok)
	assert.Equal(t, float64(18), got.Price)

	require.NoError(t, m.DeleteService(ctx, created.ID))
	_, ok = m.ServiceByID(created.ID)
	assert.False(t, ok)

	assert.ErrorIs(t, m.UpdateService(ctx, created), ErrNotFound)
	assert.ErrorIs(t, m.DeleteService(ctx, created.ID), ErrNotFound)
}

func TestPasswordGate(t *testing.T) {
	m, _ := newManager(t)
	ctx := context.Background()

	assert.True(t, m.CheckPassword("fernando1984"))
	assert.False(t, m.CheckPassword("errada"))
	assert.False(t, m.CheckPassword(""))

	require.NoError(t, m.SetAdminPassword(ctx, "nova-senha"))
	assert.True(t, m.CheckPassword("nova-senha"))
	assert.False(t, m.CheckPassword("fernando1984"))
}

func TestUpdateFailureKeepsState(t *testing.T) {
	m, _ := newManager(t)
	ctx := context.Background()

	before := m.Snapshot()
	err := m.UpdateService(ctx, models.Service{ID: 999, Name: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, before, m.Snapshot())
}
