package memory

import (
	"context"
	"sync"

	"med-catalog/internal/domain/medications"
)

// medicationsRepo replica en memoria la semántica del store: una lista de nombres
// (con duplicados) y un hash por medicamento. Un solo mutex hace atómicas las
// operaciones compuestas, igual que los scripts del adapter Redis.
type medicationsRepo struct {
	mu     sync.RWMutex
	names  []string
	byName map[string]map[string]string
}

func NewMedicationsRepo() medications.Repository {
	return &medicationsRepo{
		byName: make(map[string]map[string]string),
	}
}

func (r *medicationsRepo) ListNames(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.names))
	copy(out, r.names)
	return out, nil
}

func (r *medicationsRepo) GetFields(ctx context.Context, name string) (map[string]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]string, len(r.byName[name]))
	for k, v := range r.byName[name] {
		out[k] = v
	}
	return out, nil
}

func (r *medicationsRepo) Create(ctx context.Context, m medications.Medication) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.writeFields(m)
	r.names = append(r.names, m.Name)
	return nil
}

func (r *medicationsRepo) Update(ctx context.Context, m medications.Medication) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[m.Name]; !exists {
		return medications.ErrNotFound
	}
	r.writeFields(m)
	return nil
}

func (r *medicationsRepo) Delete(ctx context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[name]; !exists {
		return medications.ErrNotFound
	}
	delete(r.byName, name)

	kept := r.names[:0]
	for _, n := range r.names {
		if n != name {
			kept = append(kept, n)
		}
	}
	r.names = kept
	return nil
}

func (r *medicationsRepo) Ping(ctx context.Context) error { return nil }

// writeFields pisa los campos indicados y conserva los demás, como HSET.
func (r *medicationsRepo) writeFields(m medications.Medication) {
	h, ok := r.byName[m.Name]
	if !ok {
		h = make(map[string]string)
		r.byName[m.Name] = h
	}
	f := m.Fields()
	for i := 0; i+1 < len(f); i += 2 {
		h[f[i]] = f[i+1]
	}
}
