package medications

import "context"

// Repository abstrae el store clave-valor (lista de nombres + un hash por medicamento).
type Repository interface {
	// ListNames devuelve la lista completa de nombres en orden de inserción (con duplicados).
	ListNames(ctx context.Context) ([]string, error)

	// GetFields devuelve el hash del medicamento. Un medicamento inexistente
	// devuelve un map vacío y nil error, igual que HGETALL.
	GetFields(ctx context.Context, name string) (map[string]string, error)

	// Create sobreescribe el hash y agrega el nombre al final de la lista, juntos.
	Create(ctx context.Context, m Medication) error

	// Update sobreescribe el hash solo si la key existe; si no, ErrNotFound.
	Update(ctx context.Context, m Medication) error

	// Delete borra el hash y todas las ocurrencias del nombre en la lista; si no existe, ErrNotFound.
	Delete(ctx context.Context, name string) error

	Ping(ctx context.Context) error
}
