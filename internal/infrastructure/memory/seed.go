package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dcastano/almacen-api/internal/domain/entity"
	"github.com/dcastano/almacen-api/internal/domain/repository"
)

// seedItem fila compacta del catálogo inicial.
type seedItem struct {
	code     string
	name     string
	category entity.Category
	unit     string
	stock    int
	minStock int
	obs      string
}

// Catálogo de arranque de un taller de mantenimiento. Los códigos siguen la
// numeración del asignador (PF/EPI/CNS + contador) para que las altas
// posteriores continúen la serie sin colisiones.
var seedCatalog = []seedItem{
	{"PF001", "Tornillo métrico M6 × 20", entity.CategoryPartTool, "un", 250, 50, "pieza de fijación"},
	{"PF002", "Tuerca métrica M6", entity.CategoryPartTool, "un", 180, 40, "complemento del tornillo"},
	{"PF003", "Llave combinada 10mm", entity.CategoryPartTool, "un", 12, 5, "mantenimiento manual"},
	{"PF004", "Martillo de bola", entity.CategoryPartTool, "un", 8, 3, "mantenimiento/calderería"},
	{"PF005", "Sierra de calar", entity.CategoryPartTool, "un", 5, 2, "corte de chapas"},
	{"PF006", "Juego de limas", entity.CategoryPartTool, "un", 15, 5, "acabado de piezas mecanizadas"},
	{"PF007", "Juego de cepillos de acero", entity.CategoryPartTool, "un", 22, 10, "limpieza de piezas"},
	{"EPI001", "Gafas de protección", entity.CategoryPPE, "par", 45, 20, "protección ocular"},
	{"EPI002", "Mascarilla respiratoria desechable", entity.CategoryPPE, "un", 120, 50, "protección polvo/humo"},
	{"EPI003", "Guantes de vaqueta", entity.CategoryPPE, "par", 65, 30, "protección de manos"},
	{"EPI004", "Botas de seguridad con puntera de acero", entity.CategoryPPE, "par", 28, 15, "protección de pies"},
	{"EPI005", "Casco de seguridad", entity.CategoryPPE, "un", 35, 20, "protección de cabeza"},
	{"EPI006", "Protector auditivo", entity.CategoryPPE, "par", 52, 25, "protección auditiva"},
	{"EPI007", "Mandil de carnaza", entity.CategoryPPE, "un", 18, 10, "protección contra chispas"},
	{"EPI008", "Arnés de seguridad", entity.CategoryPPE, "un", 8, 5, "trabajos en altura"},
	{"CNS001", "Aceite de corte / fluido lubricante", entity.CategoryConsumable, "litro", 75, 30, "soporte de máquinas"},
	{"CNS002", "Disco de corte para metal", entity.CategoryConsumable, "un", 42, 20, "para amoladora"},
}

// Seed carga el catálogo inicial en el store. Pensado para entornos de
// demostración y desarrollo (flag SEED_CATALOG); en un store ya poblado los
// códigos repetidos harían fallar la carga con ErrDuplicate.
func Seed(ctx context.Context, store *Store) (int, error) {
	now := time.Now()
	err := store.Run(ctx, func(itemRepo repository.ItemRepository, _ repository.MovementRepository) error {
		for _, s := range seedCatalog {
			item := &entity.Item{
				ID:           uuid.New().String(),
				Code:         s.code,
				Name:         s.name,
				Category:     s.category,
				Unit:         s.unit,
				CurrentStock: s.stock,
				MinStock:     s.minStock,
				Observation:  s.obs,
				CreatedAt:    now,
				UpdatedAt:    now,
			}
			if err := itemRepo.Create(item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(seedCatalog), nil
}
