package medications

import (
	"context"
	"errors"
	"testing"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	names  []string
	byName map[string]map[string]string

	err error // si no es nil, todas las operaciones fallan
}

func newTestRepo() *testRepo {
	return &testRepo{byName: map[string]map[string]string{}}
}

func (r *testRepo) ListNames(ctx context.Context) ([]string, error) {
	if r.err != nil {
		return nil, r.err
	}
	return append([]string(nil), r.names...), nil
}

func (r *testRepo) GetFields(ctx context.Context, name string) (map[string]string, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := map[string]string{}
	for k, v := range r.byName[name] {
		out[k] = v
	}
	return out, nil
}

func (r *testRepo) Create(ctx context.Context, m Medication) error {
	if r.err != nil {
		return r.err
	}
	r.put(m)
	r.names = append(r.names, m.Name)
	return nil
}

func (r *testRepo) Update(ctx context.Context, m Medication) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.byName[m.Name]; !ok {
		return ErrNotFound
	}
	r.put(m)
	return nil
}

func (r *testRepo) Delete(ctx context.Context, name string) error {
	if r.err != nil {
		return r.err
	}
	if _, ok := r.byName[name]; !ok {
		return ErrNotFound
	}
	delete(r.byName, name)
	kept := make([]string, 0, len(r.names))
	for _, n := range r.names {
		if n != name {
			kept = append(kept, n)
		}
	}
	r.names = kept
	return nil
}

func (r *testRepo) Ping(ctx context.Context) error { return r.err }

func (r *testRepo) put(m Medication) {
	h := map[string]string{}
	f := m.Fields()
	for i := 0; i+1 < len(f); i += 2 {
		h[f[i]] = f[i+1]
	}
	r.byName[m.Name] = h
}

// -------------------------
// Tests
// -------------------------

func TestService_Names_EmptyIsNotFound(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.Names(context.Background())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_Get_AttachesName(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)
	ctx := context.Background()

	if err := svc.Create(ctx, "ibuprofen", Input{Dosage: "200mg", Via: "oral", Adult: "1 tab", Ped: "5ml", GPO90: "yes"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	rec, err := svc.Get(ctx, "ibuprofen")
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	want := Record{"dosage": "200mg", "via": "oral", "adult": "1 tab", "ped": "5ml", "gpo90": "yes", "name": "ibuprofen"}
	if len(rec) != len(want) {
		t.Fatalf("expected %d fields, got %d: %v", len(want), len(rec), rec)
	}
	for k, v := range want {
		if rec[k] != v {
			t.Fatalf("field %s: expected %q, got %q", k, v, rec[k])
		}
	}

	// name no se persiste en el hash
	if _, ok := repo.byName["ibuprofen"][FieldName]; ok {
		t.Fatalf("name must not be stored as a hash field")
	}
}

func TestService_Get_EmptyHashIsNotFound(t *testing.T) {
	repo := newTestRepo()
	repo.byName["vacio"] = map[string]string{}
	svc := NewService(repo)

	_, err := svc.Get(context.Background(), "vacio")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for empty hash, got %v", err)
	}
}

func TestService_Create_DuplicatesName(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)
	ctx := context.Background()

	_ = svc.Create(ctx, "aspirina", Input{Dosage: "100mg"})
	_ = svc.Create(ctx, "aspirina", Input{Dosage: "500mg"})

	names, err := svc.Names(ctx)
	if err != nil {
		t.Fatalf("names: %v", err)
	}
	if len(names) != 2 || names[0] != "aspirina" || names[1] != "aspirina" {
		t.Fatalf("expected duplicated name, got %v", names)
	}

	rec, _ := svc.Get(ctx, "aspirina")
	if rec["dosage"] != "500mg" {
		t.Fatalf("expected overwrite, got %q", rec["dosage"])
	}
}

func TestService_Update_FullOverwrite(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	_ = svc.Create(ctx, "loratadina", Input{Dosage: "10mg", Via: "oral", Adult: "1 tab", Ped: "5ml", GPO90: "si"})

	if err := svc.Update(ctx, "loratadina", Input{Dosage: "5mg"}); err != nil {
		t.Fatalf("update: %v", err)
	}

	rec, _ := svc.Get(ctx, "loratadina")
	if rec["dosage"] != "5mg" || rec["via"] != "" || rec["gpo90"] != "" {
		t.Fatalf("expected overwrite-not-merge, got %v", rec)
	}
}

func TestService_Update_MissingIsNotFound(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	err := svc.Update(context.Background(), "ghost", Input{Dosage: "1"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, ok := repo.byName["ghost"]; ok {
		t.Fatalf("update must not create the record")
	}
}

func TestService_Delete(t *testing.T) {
	svc := NewService(newTestRepo())
	ctx := context.Background()

	_ = svc.Create(ctx, "a", Input{Dosage: "1"})
	_ = svc.Create(ctx, "b", Input{Dosage: "2"})

	if err := svc.Delete(ctx, "a"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(ctx, "a"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}

	names, _ := svc.Names(ctx)
	if len(names) != 1 || names[0] != "b" {
		t.Fatalf("expected [b], got %v", names)
	}

	if err := svc.Delete(ctx, "a"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestService_PropagatesStoreErrors(t *testing.T) {
	repo := newTestRepo()
	repo.err = errors.New("connection refused")
	svc := NewService(repo)
	ctx := context.Background()

	if _, err := svc.Names(ctx); err == nil || errors.Is(err, ErrNotFound) {
		t.Fatalf("expected store error, got %v", err)
	}
	if _, err := svc.Get(ctx, "x"); err == nil || errors.Is(err, ErrNotFound) {
		t.Fatalf("expected store error, got %v", err)
	}
	if err := svc.Ping(ctx); err == nil {
		t.Fatalf("expected ping error")
	}
}
