package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/inventory-ops/internal/application/operation"
)

var _ operation.DraftStore = (*DraftStore)(nil)

type draft struct {
	mu      sync.Mutex
	form    *operation.Form
	touched time.Time
	evicted bool
}

// DraftStore guarda un operation.Form por operador. Cada borrador tiene su propio candado, de modo
// que las peticiones de un operador se aplican de a una sin bloquear a los demás.
type DraftStore struct {
	mu     sync.Mutex
	drafts map[string]*draft
	now    func() time.Time
}

// NewDraftStore construye un almacén vacío.
func NewDraftStore() *DraftStore {
	return &DraftStore{drafts: make(map[string]*draft), now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (s *DraftStore) WithClock(now func() time.Time) *DraftStore {
	s.now = now
	return s
}

// With ejecuta fn con acceso exclusivo al borrador de owner.
func (s *DraftStore) With(ctx context.Context, owner string, fn func(f *operation.Form) error) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		d := s.get(owner)
		d.mu.Lock()
		if d.evicted {
			// Sweep lo retiró entre get y Lock: tomar el nuevo.
			d.mu.Unlock()
			continue
		}
		err := fn(d.form)
		d.touched = s.now()
		d.mu.Unlock()
		return err
	}
}

func (s *DraftStore) get(owner string) *draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drafts[owner]
	if !ok {
		d = &draft{form: operation.NewForm(), touched: s.now()}
		s.drafts[owner] = d
	}
	return d
}

// Sweep descarta los borradores sin actividad por más de idle. Omite los que estén en uso.
// Devuelve cuántos se descartaron.
func (s *DraftStore) Sweep(idle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := s.now().Add(-idle)
	removed := 0
	for owner, d := range s.drafts {
		if !d.mu.TryLock() {
			continue
		}
		if d.touched.Before(cutoff) {
			d.evicted = true
			delete(s.drafts, owner)
			removed++
		}
		d.mu.Unlock()
	}
	return removed
}

// Len número de borradores vivos.
func (s *DraftStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.drafts)
}
