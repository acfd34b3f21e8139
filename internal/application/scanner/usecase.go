// Package scanner resuelve códigos escaneados contra el catálogo. El origen
// del código (cámara, lector USB que teclea hasta Enter, entrada manual) es
// irrelevante aquí: solo llega la cadena ya completa.
package scanner

import (
	"strings"

	"github.com/dcastano/almacen-api/internal/application/dto"
	"github.com/dcastano/almacen-api/internal/domain"
	"github.com/dcastano/almacen-api/internal/domain/repository"
)

// ScannerUseCase resolución de códigos de barras / QR a ítems del catálogo.
type ScannerUseCase struct {
	itemRepo repository.ItemRepository
}

// NewScannerUseCase construye el caso de uso.
func NewScannerUseCase(itemRepo repository.ItemRepository) *ScannerUseCase {
	return &ScannerUseCase{itemRepo: itemRepo}
}

// Resolve busca el ítem cuyo código coincide con el escaneado. Si el código no
// está en el catálogo devuelve ErrUnknownCode; la recuperación esperada es que
// el cliente ofrezca crear el ítem y luego reintente el movimiento.
func (uc *ScannerUseCase) Resolve(code string) (*dto.ItemResponse, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.itemRepo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrUnknownCode
	}
	return dto.NewItemResponse(item), nil
}
