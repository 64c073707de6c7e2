package dto

// CreateCategoryRequest body para POST /api/categories.
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required"`
}

// CategoryResponse categoría en respuestas.
type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CreateUnitRequest body para POST /api/units.
type CreateUnitRequest struct {
	Name string `json:"name" validate:"required"`
}

// UnitResponse unidad de medida en respuestas.
type UnitResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// SaveStoreRequest body para PUT /api/store.
type SaveStoreRequest struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
}

// StoreResponse metadatos de la tienda en respuestas.
type StoreResponse struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
}
