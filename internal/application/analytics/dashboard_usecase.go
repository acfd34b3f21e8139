// Package analytics contiene el caso de uso del Dashboard: la visión general
// del almacén (totales, alertas de stock bajo, movimientos del día y
// distribución por categoría).
package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dcastano/almacen-api/internal/application/dto"
	"github.com/dcastano/almacen-api/internal/domain/entity"
	"github.com/dcastano/almacen-api/internal/domain/repository"
)

const (
	dashboardTopItems = 6  // ítems en el widget de mayor stock
	nameLabelMax      = 20 // recorte de nombres para etiquetas de gráfico
)

// DashboardUseCase genera el resumen agregado del almacén. Solo lee; no tiene
// efecto sobre el estado del ledger.
type DashboardUseCase struct {
	itemRepo     repository.ItemRepository
	movementRepo repository.MovementRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(itemRepo repository.ItemRepository, movementRepo repository.MovementRepository) *DashboardUseCase {
	return &DashboardUseCase{itemRepo: itemRepo, movementRepo: movementRepo}
}

// GetSummary construye el DashboardSummaryDTO con el estado actual del ledger.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	items, err := uc.itemRepo.List()
	if err != nil {
		return nil, fmt.Errorf("dashboard: listar catálogo: %w", err)
	}

	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	in, out, err := uc.movementRepo.CountByTypeSince(todayStart)
	if err != nil {
		return nil, fmt.Errorf("dashboard: movimientos de hoy: %w", err)
	}

	summary := &dto.DashboardSummaryDTO{
		TotalItems: len(items),
		MovementsToday: dto.MovementsTodayDTO{
			In:    in,
			Out:   out,
			Total: in + out,
		},
		LowStockItems: make([]dto.LowStockItemDTO, 0),
	}

	counts := map[entity.Category]int{}
	for _, item := range items {
		summary.TotalStock += item.CurrentStock
		counts[item.Category]++
		if item.CurrentStock <= item.MinStock {
			summary.LowStockItems = append(summary.LowStockItems, dto.LowStockItemDTO{
				Code:         item.Code,
				Name:         item.Name,
				Unit:         item.Unit,
				CurrentStock: item.CurrentStock,
				MinStock:     item.MinStock,
			})
		}
	}

	summary.Categories = categoryShares(counts, len(items))
	summary.TopStockItems = topStockItems(items)
	return summary, nil
}

// categoryShares calcula la participación de cada categoría sobre el total,
// en orden fijo de la enumeración y con porcentaje a un decimal.
func categoryShares(counts map[entity.Category]int, total int) []dto.CategoryShareDTO {
	categories := []entity.Category{
		entity.CategoryPartTool,
		entity.CategoryPPE,
		entity.CategoryConsumable,
	}
	shares := make([]dto.CategoryShareDTO, 0, len(categories))
	for _, c := range categories {
		pct := decimal.Zero
		if total > 0 {
			pct = decimal.NewFromInt(int64(counts[c] * 100)).
				Div(decimal.NewFromInt(int64(total))).
				Round(1)
		}
		shares = append(shares, dto.CategoryShareDTO{
			Category:   string(c),
			Count:      counts[c],
			Percentage: pct,
		})
	}
	return shares
}

// topStockItems devuelve los ítems de mayor stock actual, de mayor a menor,
// con el nombre recortado para la etiqueta del gráfico.
func topStockItems(items []*entity.Item) []dto.TopStockItemDTO {
	sorted := make([]*entity.Item, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CurrentStock > sorted[j].CurrentStock
	})
	if len(sorted) > dashboardTopItems {
		sorted = sorted[:dashboardTopItems]
	}
	top := make([]dto.TopStockItemDTO, 0, len(sorted))
	for _, item := range sorted {
		top = append(top, dto.TopStockItemDTO{
			Name:     truncateLabel(item.Name),
			Quantity: item.CurrentStock,
		})
	}
	return top
}

// truncateLabel recorta por runas, no por bytes: los nombres llevan tildes.
func truncateLabel(name string) string {
	r := []rune(name)
	if len(r) <= nameLabelMax {
		return name
	}
	return string(r[:nameLabelMax]) + "..."
}
