package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/PuntoVenta-api/internal/application/dto"
	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

// StoreUseCase metadatos de tienda (uno a uno con el tenant).
type StoreUseCase struct {
	repo repository.StoreRepository
}

// NewStoreUseCase construye el caso de uso.
func NewStoreUseCase(repo repository.StoreRepository) *StoreUseCase {
	return &StoreUseCase{repo: repo}
}

// Get obtiene los metadatos de la tienda del tenant; nil si no se han configurado.
func (uc *StoreUseCase) Get(ctx context.Context, tenantID string) (*dto.StoreResponse, error) {
	s, err := uc.repo.Get(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	return &dto.StoreResponse{Name: s.Name, Address: s.Address, Phone: s.Phone, Email: s.Email}, nil
}

// Save crea o actualiza los metadatos de la tienda.
func (uc *StoreUseCase) Save(ctx context.Context, tenantID string, in dto.SaveStoreRequest) error {
	if strings.TrimSpace(in.Name) == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.Upsert(ctx, &entity.Store{
		TenantID: tenantID,
		Name:     in.Name,
		Address:  in.Address,
		Phone:    in.Phone,
		Email:    in.Email,
	})
}
