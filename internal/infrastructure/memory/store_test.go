package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcastano/almacen-api/internal/domain"
	"github.com/dcastano/almacen-api/internal/domain/entity"
	"github.com/dcastano/almacen-api/internal/domain/repository"
	"github.com/dcastano/almacen-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func newItem(id, code, name string) *entity.Item {
	now := time.Now()
	return &entity.Item{
		ID: id, Code: code, Name: name,
		Category: entity.CategoryPartTool, Unit: "un",
		CurrentStock: 10, MinStock: 5,
		CreatedAt: now, UpdatedAt: now,
	}
}

func newMovement(id, code, movType string, qty int, at time.Time) *entity.Movement {
	return &entity.Movement{
		ID: id, ItemCode: code, ItemName: "Ítem " + code, Unit: "un",
		Type: movType, Quantity: qty, Responsible: "Ana", CreatedAt: at,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// ItemRepo
// ──────────────────────────────────────────────────────────────────────────────

// TestItemRepo_CodigoDuplicado: un código ya en uso se rechaza con ErrDuplicate.
func TestItemRepo_CodigoDuplicado(t *testing.T) {
	store := memory.NewStore()
	repo := store.Items()

	require.NoError(t, repo.Create(newItem("id-1", "PF001", "Martillo")))
	err := repo.Create(newItem("id-2", "PF001", "Llave"))
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// TestItemRepo_UpdatePreservaCodigo: Update nunca cambia el código almacenado,
// aunque el caller envíe otro.
func TestItemRepo_UpdatePreservaCodigo(t *testing.T) {
	store := memory.NewStore()
	repo := store.Items()

	require.NoError(t, repo.Create(newItem("id-1", "PF001", "Martillo")))

	modificado := newItem("id-1", "PF999", "Martillo de bola")
	require.NoError(t, repo.Update(modificado))

	got, err := repo.GetByID("id-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "PF001", got.Code, "el código almacenado no cambia por Update")
	assert.Equal(t, "Martillo de bola", got.Name)
}

// TestItemRepo_LecturasDevuelvenCopias: mutar lo devuelto por el repo no toca
// el estado interno del store.
func TestItemRepo_LecturasDevuelvenCopias(t *testing.T) {
	store := memory.NewStore()
	repo := store.Items()

	require.NoError(t, repo.Create(newItem("id-1", "PF001", "Martillo")))

	leido, err := repo.GetByCode("PF001")
	require.NoError(t, err)
	leido.Name = "Mutado"
	leido.CurrentStock = 9999

	otraVez, err := repo.GetByCode("PF001")
	require.NoError(t, err)
	assert.Equal(t, "Martillo", otraVez.Name)
	assert.Equal(t, 10, otraVez.CurrentStock)
}

// TestItemRepo_AusentesYCodes: (nil, nil) para los ausentes, ErrNotFound en
// mutaciones, y el snapshot de códigos refleja altas y bajas.
func TestItemRepo_AusentesYCodes(t *testing.T) {
	store := memory.NewStore()
	repo := store.Items()

	got, err := repo.GetByID("nada")
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.ErrorIs(t, repo.Update(newItem("nada", "PF001", "X")), domain.ErrNotFound)
	assert.ErrorIs(t, repo.Delete("nada"), domain.ErrNotFound)

	require.NoError(t, repo.Create(newItem("id-1", "PF001", "Martillo")))
	require.NoError(t, repo.Create(newItem("id-2", "EPI001", "Gafas")))
	codes := repo.Codes()
	assert.Len(t, codes, 2)
	assert.Contains(t, codes, "PF001")

	require.NoError(t, repo.Delete("id-1"))
	codes = repo.Codes()
	assert.NotContains(t, codes, "PF001", "el código borrado sale del conjunto")
}

// ──────────────────────────────────────────────────────────────────────────────
// MovementRepo
// ──────────────────────────────────────────────────────────────────────────────

// TestMovementRepo_ListOrdenYPaginacion: el historial se presenta del más
// reciente al más antiguo, con filtro por tipo, offset y limit.
func TestMovementRepo_ListOrdenYPaginacion(t *testing.T) {
	store := memory.NewStore()
	repo := store.Movements()
	base := time.Now()

	require.NoError(t, repo.Create(newMovement("m1", "PF001", entity.MovementTypeIn, 1, base)))
	require.NoError(t, repo.Create(newMovement("m2", "PF001", entity.MovementTypeOut, 2, base.Add(time.Minute))))
	require.NoError(t, repo.Create(newMovement("m3", "PF001", entity.MovementTypeIn, 3, base.Add(2*time.Minute))))

	todos, err := repo.List("", 0, 0)
	require.NoError(t, err)
	require.Len(t, todos, 3)
	assert.Equal(t, "m3", todos[0].ID, "el más reciente primero")
	assert.Equal(t, "m1", todos[2].ID)

	entradas, err := repo.List(entity.MovementTypeIn, 0, 0)
	require.NoError(t, err)
	require.Len(t, entradas, 2)
	assert.Equal(t, "m3", entradas[0].ID)

	pagina, err := repo.List("", 1, 1)
	require.NoError(t, err)
	require.Len(t, pagina, 1)
	assert.Equal(t, "m2", pagina[0].ID, "offset=1 salta el más reciente")
}

// TestMovementRepo_Contadores: CountByType sobre todo el historial y
// CountByTypeSince con corte temporal inclusivo.
func TestMovementRepo_Contadores(t *testing.T) {
	store := memory.NewStore()
	repo := store.Movements()
	base := time.Now()

	require.NoError(t, repo.Create(newMovement("m1", "PF001", entity.MovementTypeIn, 1, base.Add(-48*time.Hour))))
	require.NoError(t, repo.Create(newMovement("m2", "PF001", entity.MovementTypeOut, 2, base.Add(-time.Hour))))
	require.NoError(t, repo.Create(newMovement("m3", "PF001", entity.MovementTypeIn, 3, base)))

	in, out, err := repo.CountByType()
	require.NoError(t, err)
	assert.Equal(t, 2, in)
	assert.Equal(t, 1, out)

	in, out, err = repo.CountByTypeSince(base.Add(-2 * time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, in, "solo m3 entra en la ventana")
	assert.Equal(t, 1, out)
}

// ──────────────────────────────────────────────────────────────────────────────
// Run y Seed
// ──────────────────────────────────────────────────────────────────────────────

// TestRun_ErrorDescartaElResultado: si fn devuelve error, Run lo propaga.
func TestRun_ErrorDescartaElResultado(t *testing.T) {
	store := memory.NewStore()

	err := store.Run(context.Background(), func(itemRepo repository.ItemRepository, _ repository.MovementRepository) error {
		require.NoError(t, itemRepo.Create(newItem("id-1", "PF001", "Martillo")))
		return itemRepo.Create(newItem("id-2", "PF001", "Duplicado"))
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// TestSeed_CatalogoInicial: la carga de demostración inserta el catálogo
// completo con códigos únicos, y repetirla falla por duplicados.
func TestSeed_CatalogoInicial(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	n, err := memory.Seed(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, 17, n)

	items, err := store.Items().List()
	require.NoError(t, err)
	require.Len(t, items, 17)

	codes := store.Items().Codes()
	assert.Len(t, codes, 17, "ningún código repetido en el seed")
	assert.Contains(t, codes, "PF001")
	assert.Contains(t, codes, "EPI008")
	assert.Contains(t, codes, "CNS002")

	_, err = memory.Seed(ctx, store)
	assert.ErrorIs(t, err, domain.ErrDuplicate, "el seed no es idempotente sobre un store poblado")
}
