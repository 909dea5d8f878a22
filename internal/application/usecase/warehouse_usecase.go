package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventory-ops/internal/application/dto"
	"github.com/jhoicas/inventory-ops/internal/domain/repository"
)

// WarehouseUseCase lectura de bodegas.
type WarehouseUseCase struct {
	repo repository.WarehouseRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo}
}

// List devuelve las bodegas disponibles.
func (uc *WarehouseUseCase) List(ctx context.Context) (*dto.WarehouseListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar bodegas: %w", err)
	}
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		items = append(items, dto.WarehouseResponse{ID: w.ID, Name: w.Name})
	}
	return &dto.WarehouseListResponse{Items: items, Total: len(items)}, nil
}
