package audit

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// tailSize limita o histórico em memória exposto no painel admin.
const tailSize = 200

type Entry struct {
	ID       string    `json:"id"`
	Actor    string    `json:"actor"`
	Action   string    `json:"action"`
	Entity   string    `json:"entity"`
	EntityID string    `json:"entity_id"`
	At       time.Time `json:"at"`
}

// Logger registra eventos de auditoria no log estruturado e guarda uma
// cauda recente em memória. Eventos são trilha operacional, não fazem
// parte do snapshot persistido.
type Logger struct {
	log *zap.Logger

	mu   sync.Mutex
	tail []Entry
}

func New(log *zap.Logger) *Logger {
	return &Logger{log: log}
}

func (l *Logger) Log(ev Event) error {
	entry := Entry{
		ID:       uuid.New().String(),
		Actor:    ev.Actor,
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: ev.EntityID,
		At:       time.Now(),
	}

	l.log.Info("audit",
		zap.String("audit_id", entry.ID),
		zap.String("actor", entry.Actor),
		zap.String("action", entry.Action),
		zap.String("entity", entry.Entity),
		zap.String("entity_id", entry.EntityID),
	)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.tail = append(l.tail, entry)
	if len(l.tail) > tailSize {
		l.tail = l.tail[len(l.tail)-tailSize:]
	}
	return nil
}

// Recent devolve a cauda do mais novo para o mais antigo.
func (l *Logger) Recent() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Entry, len(l.tail))
	for i, e := range l.tail {
		out[len(l.tail)-1-i] = e
	}
	return out
}
