package memory

import (
	"context"
	"errors"
	"testing"

	"med-catalog/internal/domain/medications"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMedicationsRepo_Lifecycle(t *testing.T) {
	repo := NewMedicationsRepo()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, medications.Medication{Name: "amoxicilina", Dosage: "500mg", Via: "oral"}))
	require.NoError(t, repo.Create(ctx, medications.Medication{Name: "salbutamol", Via: "inhalada"}))
	require.NoError(t, repo.Create(ctx, medications.Medication{Name: "amoxicilina", Dosage: "250mg"}))

	names, err := repo.ListNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"amoxicilina", "salbutamol", "amoxicilina"}, names)

	fields, err := repo.GetFields(ctx, "amoxicilina")
	require.NoError(t, err)
	assert.Equal(t, "250mg", fields["dosage"])
	assert.Equal(t, "", fields["via"])

	// la copia devuelta no expone el estado interno
	fields["dosage"] = "mutated"
	again, _ := repo.GetFields(ctx, "amoxicilina")
	assert.Equal(t, "250mg", again["dosage"])

	require.NoError(t, repo.Delete(ctx, "amoxicilina"))
	names, _ = repo.ListNames(ctx)
	assert.Equal(t, []string{"salbutamol"}, names)

	gone, err := repo.GetFields(ctx, "amoxicilina")
	require.NoError(t, err)
	assert.Empty(t, gone)
}

func TestMedicationsRepo_NotFound(t *testing.T) {
	repo := NewMedicationsRepo()
	ctx := context.Background()

	assert.True(t, errors.Is(repo.Update(ctx, medications.Medication{Name: "x"}), medications.ErrNotFound))
	assert.True(t, errors.Is(repo.Delete(ctx, "x"), medications.ErrNotFound))

	fields, err := repo.GetFields(ctx, "x")
	require.NoError(t, err)
	assert.Empty(t, fields)
}
