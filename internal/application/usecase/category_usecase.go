package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/PuntoVenta-api/internal/application/dto"
	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

// CategoryUseCase CRUD de categorías por tenant.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crea una categoría.
func (uc *CategoryUseCase) Create(ctx context.Context, tenantID, name string) (*dto.CategoryResponse, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	c := &entity.Category{TenantID: tenantID, Name: name, CreatedAt: time.Now()}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return &dto.CategoryResponse{ID: c.ID, Name: c.Name}, nil
}

// List lista las categorías del tenant.
func (uc *CategoryUseCase) List(ctx context.Context, tenantID string) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.CategoryResponse{ID: c.ID, Name: c.Name})
	}
	return out, nil
}

// Rename renombra una categoría.
func (uc *CategoryUseCase) Rename(ctx context.Context, tenantID string, id int64, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.Update(ctx, &entity.Category{TenantID: tenantID, ID: id, Name: name})
}

// Delete elimina una categoría.
func (uc *CategoryUseCase) Delete(ctx context.Context, tenantID string, id int64) error {
	return uc.repo.Delete(ctx, tenantID, id)
}
