package usecase

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/inventory-ops/internal/application/dto"
	"github.com/jhoicas/inventory-ops/internal/domain/repository"
)

// PackagingUseCase consulta de etiquetas de empaque.
type PackagingUseCase struct {
	repo repository.PackagingOptionRepository
}

// NewPackagingUseCase construye el caso de uso.
func NewPackagingUseCase(repo repository.PackagingOptionRepository) *PackagingUseCase {
	return &PackagingUseCase{repo: repo}
}

// List devuelve las etiquetas en orden de alta. Si q no está vacío, solo las que lo contienen sin
// distinguir mayúsculas (plegado Unicode, así "KƏNAR" encuentra "50+kənar").
func (uc *PackagingUseCase) List(ctx context.Context, q string) (*dto.PackagingOptionListResponse, error) {
	labels, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar empaques: %w", err)
	}
	q = strings.TrimSpace(q)
	if q == "" {
		return &dto.PackagingOptionListResponse{Items: labels}, nil
	}
	fold := cases.Fold()
	needle := fold.String(q)
	items := make([]string, 0, len(labels))
	for _, l := range labels {
		if strings.Contains(fold.String(l), needle) {
			items = append(items, l)
		}
	}
	return &dto.PackagingOptionListResponse{Items: items, Query: q}, nil
}
