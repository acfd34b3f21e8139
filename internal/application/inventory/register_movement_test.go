package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dcastano/almacen-api/internal/application/catalog"
	"github.com/dcastano/almacen-api/internal/application/dto"
	"github.com/dcastano/almacen-api/internal/application/inventory"
	"github.com/dcastano/almacen-api/internal/domain"
	"github.com/dcastano/almacen-api/internal/domain/entity"
	"github.com/dcastano/almacen-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	store  *memory.Store
	itemUC *catalog.ItemUseCase
	movUC  *inventory.RegisterMovementUseCase
}

func newFixture() *fixture {
	store := memory.NewStore()
	return &fixture{
		store:  store,
		itemUC: catalog.NewItemUseCase(store, store.Items()),
		movUC:  inventory.NewRegisterMovementUseCase(store, store.Movements()),
	}
}

// seedOneItem crea un ítem de prueba con el stock indicado y devuelve su código.
func (f *fixture) seedOneItem(t *testing.T, stock int) string {
	t.Helper()
	out, err := f.itemUC.Create(context.Background(), dto.CreateItemRequest{
		Name:         "Mascarilla respiratoria",
		Category:     string(entity.CategoryPPE),
		Unit:         "un",
		CurrentStock: stock,
		MinStock:     10,
	})
	require.NoError(t, err)
	return out.Code
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

// TestRegister_EntradaSumaStock: una entrada suma la cantidad al stock actual.
func TestRegister_EntradaSumaStock(t *testing.T) {
	f := newFixture()
	code := f.seedOneItem(t, 100)

	out, err := f.movUC.Register(context.Background(), dto.RegisterMovementRequest{
		Code: code, Type: entity.MovementTypeIn, Quantity: 50, Responsible: "Carlos",
	})
	require.NoError(t, err)

	assert.Equal(t, 150, out.Item.CurrentStock, "100 + 50 = 150")
	assert.Equal(t, entity.MovementTypeIn, out.Movement.Type)
	assert.Equal(t, 50, out.Movement.Quantity)
	assert.Equal(t, code, out.Movement.ItemCode)
	assert.Equal(t, "Mascarilla respiratoria", out.Movement.ItemName,
		"el movimiento captura el nombre del ítem al registrarse")
	assert.Equal(t, "un", out.Movement.Unit)
	assert.NotEmpty(t, out.Movement.ID)
}

// TestRegister_SalidaRestaStock: una salida resta la cantidad.
func TestRegister_SalidaRestaStock(t *testing.T) {
	f := newFixture()
	code := f.seedOneItem(t, 100)

	out, err := f.movUC.Register(context.Background(), dto.RegisterMovementRequest{
		Code: code, Type: entity.MovementTypeOut, Quantity: 30, Responsible: "Laura",
	})
	require.NoError(t, err)
	assert.Equal(t, 70, out.Item.CurrentStock)
}

// TestRegister_SalidaConPisoEnCero: una salida mayor que el stock disponible
// deja el stock en cero, nunca en negativo. El movimiento registra la cantidad
// solicitada, no la efectivamente descontada.
func TestRegister_SalidaConPisoEnCero(t *testing.T) {
	f := newFixture()
	code := f.seedOneItem(t, 50)

	out, err := f.movUC.Register(context.Background(), dto.RegisterMovementRequest{
		Code: code, Type: entity.MovementTypeOut, Quantity: 500, Responsible: "Laura",
	})
	require.NoError(t, err)

	assert.Equal(t, 0, out.Item.CurrentStock, "el stock nunca queda negativo")
	assert.Equal(t, 500, out.Movement.Quantity, "el historial guarda lo solicitado")
}

// TestRegister_CodigoDesconocidoNoMutaNada: un código sin ítem vivo devuelve
// ErrUnknownCode y no deja rastro en el historial.
func TestRegister_CodigoDesconocidoNoMutaNada(t *testing.T) {
	f := newFixture()
	f.seedOneItem(t, 100)

	out, err := f.movUC.Register(context.Background(), dto.RegisterMovementRequest{
		Code: "PF999", Type: entity.MovementTypeIn, Quantity: 10, Responsible: "Carlos",
	})
	assert.ErrorIs(t, err, domain.ErrUnknownCode)
	assert.Nil(t, out)

	historial, err := f.movUC.List("", 0, 0)
	require.NoError(t, err)
	assert.Empty(t, historial.Items, "el intento fallido no genera movimiento")
}

// TestRegister_EntradaInvalida cubre los rechazos de validación previos a
// tocar el ledger.
func TestRegister_EntradaInvalida(t *testing.T) {
	f := newFixture()
	code := f.seedOneItem(t, 100)
	ctx := context.Background()

	cases := []struct {
		name string
		in   dto.RegisterMovementRequest
	}{
		{"tipo desconocido", dto.RegisterMovementRequest{Code: code, Type: "transfer", Quantity: 1, Responsible: "Ana"}},
		{"cantidad cero", dto.RegisterMovementRequest{Code: code, Type: entity.MovementTypeIn, Quantity: 0, Responsible: "Ana"}},
		{"cantidad negativa", dto.RegisterMovementRequest{Code: code, Type: entity.MovementTypeOut, Quantity: -5, Responsible: "Ana"}},
		{"sin responsable", dto.RegisterMovementRequest{Code: code, Type: entity.MovementTypeIn, Quantity: 1, Responsible: "  "}},
		{"sin código", dto.RegisterMovementRequest{Code: "", Type: entity.MovementTypeIn, Quantity: 1, Responsible: "Ana"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := f.movUC.Register(ctx, tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Nil(t, out)
		})
	}
}

// TestRegister_HistorialInmuneAEdiciones: editar el nombre del ítem después no
// reescribe los movimientos ya registrados.
func TestRegister_HistorialInmuneAEdiciones(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	code := f.seedOneItem(t, 100)

	_, err := f.movUC.Register(ctx, dto.RegisterMovementRequest{
		Code: code, Type: entity.MovementTypeIn, Quantity: 5, Responsible: "Ana",
	})
	require.NoError(t, err)

	// Renombrar el ítem
	items, err := f.itemUC.List("")
	require.NoError(t, err)
	nuevoNombre := "Mascarilla FFP2"
	_, err = f.itemUC.Update(ctx, items.Items[0].ID, dto.UpdateItemRequest{Name: &nuevoNombre})
	require.NoError(t, err)

	historial, err := f.movUC.List("", 0, 0)
	require.NoError(t, err)
	require.Len(t, historial.Items, 1)
	assert.Equal(t, "Mascarilla respiratoria", historial.Items[0].ItemName,
		"el historial conserva el nombre vigente al registrar el movimiento")
}

// ──────────────────────────────────────────────────────────────────────────────
// List
// ──────────────────────────────────────────────────────────────────────────────

// TestList_MasRecientePrimero verifica el orden de presentación del historial.
func TestList_MasRecientePrimero(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	code := f.seedOneItem(t, 100)

	cantidades := []int{1, 2, 3}
	for _, q := range cantidades {
		_, err := f.movUC.Register(ctx, dto.RegisterMovementRequest{
			Code: code, Type: entity.MovementTypeIn, Quantity: q, Responsible: "Ana",
		})
		require.NoError(t, err)
	}

	out, err := f.movUC.List("", 0, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 3)
	assert.Equal(t, 3, out.Items[0].Quantity, "el último registrado va primero")
	assert.Equal(t, 1, out.Items[2].Quantity)
}

// TestList_FiltroPorTipoYContadores verifica el filtro type y que los
// contadores globales no dependen del filtro ni de la paginación.
func TestList_FiltroPorTipoYContadores(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	code := f.seedOneItem(t, 100)

	for i := 0; i < 3; i++ {
		_, err := f.movUC.Register(ctx, dto.RegisterMovementRequest{
			Code: code, Type: entity.MovementTypeIn, Quantity: 1, Responsible: "Ana",
		})
		require.NoError(t, err)
	}
	for i := 0; i < 2; i++ {
		_, err := f.movUC.Register(ctx, dto.RegisterMovementRequest{
			Code: code, Type: entity.MovementTypeOut, Quantity: 1, Responsible: "Ana",
		})
		require.NoError(t, err)
	}

	salidas, err := f.movUC.List(entity.MovementTypeOut, 1, 0)
	require.NoError(t, err)
	assert.Len(t, salidas.Items, 1, "limit=1 devuelve una sola fila")
	assert.Equal(t, 5, salidas.Total)
	assert.Equal(t, 3, salidas.TotalIn)
	assert.Equal(t, 2, salidas.TotalOut)
	assert.Equal(t, 2, salidas.Page.Total, "el total de página cuenta todos los que casan con el filtro")
	assert.Equal(t, 1, salidas.Page.Limit)

	todos, err := f.movUC.List("", 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 5, todos.Page.Total, "sin filtro, el total de página es el historial entero")
}

// TestList_TipoInvalido verifica el rechazo de tipos desconocidos en el filtro.
func TestList_TipoInvalido(t *testing.T) {
	f := newFixture()
	out, err := f.movUC.List("transfer", 0, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, out)
}
