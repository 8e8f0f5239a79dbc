package redis

import (
	"context"
	"fmt"

	"med-catalog/internal/domain/medications"

	goredis "github.com/redis/go-redis/v9"
)

// createScript: HSET + RPUSH. Si HSET falla (p.ej. WRONGTYPE) el script corta
// y el nombre no se agrega a la lista.
// KEYS[1] = medicamento, KEYS[2] = lista de nombres, ARGV = pares campo/valor.
var createScript = goredis.NewScript(`
redis.call('HSET', KEYS[1], unpack(ARGV))
redis.call('RPUSH', KEYS[2], KEYS[1])
return 1
`)

// updateScript: EXISTS + HSET en un solo paso atómico.
var updateScript = goredis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
	return 0
end
redis.call('HSET', KEYS[1], unpack(ARGV))
return 1
`)

// deleteScript: EXISTS + DEL + LREM en un solo paso atómico.
// KEYS[1] = medicamento, KEYS[2] = lista de nombres, ARGV[1] = nombre.
var deleteScript = goredis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
	return 0
end
redis.call('DEL', KEYS[1])
redis.call('LREM', KEYS[2], 0, ARGV[1])
return 1
`)

type MedicationsRepo struct {
	rdb goredis.UniversalClient
}

func NewMedicationsRepo(rdb goredis.UniversalClient) *MedicationsRepo {
	return &MedicationsRepo{rdb: rdb}
}

func (r *MedicationsRepo) ListNames(ctx context.Context) ([]string, error) {
	names, err := r.rdb.LRange(ctx, medications.NamesKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis: lrange %s: %w", medications.NamesKey, err)
	}
	return names, nil
}

func (r *MedicationsRepo) GetFields(ctx context.Context, name string) (map[string]string, error) {
	fields, err := r.rdb.HGetAll(ctx, name).Result()
	if err != nil {
		return nil, fmt.Errorf("redis: hgetall %q: %w", name, err)
	}
	return fields, nil
}

func (r *MedicationsRepo) Create(ctx context.Context, m medications.Medication) error {
	keys := []string{m.Name, medications.NamesKey}
	if err := createScript.Run(ctx, r.rdb, keys, toArgs(m.Fields())...).Err(); err != nil {
		return fmt.Errorf("redis: create %q: %w", m.Name, err)
	}
	return nil
}

func (r *MedicationsRepo) Update(ctx context.Context, m medications.Medication) error {
	n, err := updateScript.Run(ctx, r.rdb, []string{m.Name}, toArgs(m.Fields())...).Int()
	if err != nil {
		return fmt.Errorf("redis: update %q: %w", m.Name, err)
	}
	if n == 0 {
		return medications.ErrNotFound
	}
	return nil
}

func (r *MedicationsRepo) Delete(ctx context.Context, name string) error {
	n, err := deleteScript.Run(ctx, r.rdb, []string{name, medications.NamesKey}, name).Int()
	if err != nil {
		return fmt.Errorf("redis: delete %q: %w", name, err)
	}
	if n == 0 {
		return medications.ErrNotFound
	}
	return nil
}

func (r *MedicationsRepo) Ping(ctx context.Context) error {
	return r.rdb.Ping(ctx).Err()
}

func toArgs(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
