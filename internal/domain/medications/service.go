package medications

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("not found")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Input son los campos editables de una ficha. Los vacíos se guardan vacíos:
// no hay validación de presencia.
type Input struct {
	Dosage string
	Via    string
	Adult  string
	Ped    string
	GPO90  string
}

func (in Input) toMedication(name string) Medication {
	return Medication{
		Name:   name,
		Dosage: in.Dosage,
		Via:    in.Via,
		Adult:  in.Adult,
		Ped:    in.Ped,
		GPO90:  in.GPO90,
	}
}

// Names devuelve ErrNotFound si la lista está vacía.
func (s *Service) Names(ctx context.Context) ([]string, error) {
	names, err := s.repo.ListNames(ctx)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, ErrNotFound
	}
	return names, nil
}

// Get devuelve el hash con name agregado. Hash vacío y key ausente son lo mismo: ErrNotFound.
func (s *Service) Get(ctx context.Context, name string) (Record, error) {
	fields, err := s.repo.GetFields(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, ErrNotFound
	}

	out := make(Record, len(fields)+1)
	for k, v := range fields {
		out[k] = v
	}
	out[FieldName] = name
	return out, nil
}

// Create no verifica existencia: siempre sobreescribe y siempre agrega a la lista.
func (s *Service) Create(ctx context.Context, name string, in Input) error {
	return s.repo.Create(ctx, in.toMedication(name))
}

func (s *Service) Update(ctx context.Context, name string, in Input) error {
	return s.repo.Update(ctx, in.toMedication(name))
}

func (s *Service) Delete(ctx context.Context, name string) error {
	return s.repo.Delete(ctx, name)
}

// Ping verifica que el store responde (readiness).
func (s *Service) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
