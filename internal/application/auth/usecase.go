package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/PuntoVenta-api/internal/application/dto"
	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
	"github.com/jhoicas/PuntoVenta-api/pkg/jwt"
	"github.com/jhoicas/PuntoVenta-api/pkg/logger"
	"github.com/jhoicas/PuntoVenta-api/pkg/validator"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Unidades que se siembran al registrar un admin. El alta es best-effort:
// si falla se deja en el log y el registro continúa.
var defaultUnits = []string{"piece", "kilogram", "liter", "box"}

// AuthUseCase registro, login y gestión de empleados.
// La comparación de credenciales es byte-exacta (username y password en
// texto plano): contrato de compatibilidad con los clientes existentes,
// una deficiencia conocida que no se rediseña aquí.
type AuthUseCase struct {
	userRepo repository.UserRepository
	unitRepo repository.UnitRepository
	jwtCfg   JWTConfig
	log      *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, unitRepo repository.UnitRepository, jwtCfg JWTConfig, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, unitRepo: unitRepo, jwtCfg: jwtCfg, log: log}
}

// Register crea una cuenta admin (su propio tenant) y siembra las unidades
// por defecto. El UNIQUE de username convierte el duplicado en ErrDuplicate
// dentro del propio insert; no hay ventana chequeo-e-insert.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	if errs := validator.ValidateStruct(in); errs != nil {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	user := &entity.User{
		ID:            uuid.New().String(),
		Username:      in.Username,
		Password:      in.Password,
		Role:          entity.RoleAdmin,
		DefaultMarkup: in.DefaultMarkup,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	// Siembra de unidades por defecto: no-fatal si alguna falla.
	for _, name := range defaultUnits {
		unit := &entity.Unit{TenantID: user.ID, Name: name, CreatedAt: now}
		if err := uc.unitRepo.Create(ctx, unit); err != nil {
			uc.log.Warn().Err(err).Str("unit", name).Str("user_id", user.ID).
				Msg("no se pudo sembrar unidad por defecto")
		}
	}

	return toUserResponse(user), nil
}

// Login verifica username/password, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	// Comparación en texto plano, byte a byte (contrato de compatibilidad).
	if user.Password != in.Password {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.TenantID(), user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// CreateEmployee crea un empleado que comparte el tenant del admin.
func (uc *AuthUseCase) CreateEmployee(ctx context.Context, adminID string, in dto.CreateEmployeeRequest) (*dto.UserResponse, error) {
	if errs := validator.ValidateStruct(in); errs != nil {
		return nil, domain.ErrInvalidInput
	}
	admin, err := uc.userRepo.GetByID(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if admin == nil || admin.Role != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	now := time.Now()
	user := &entity.User{
		ID:        uuid.New().String(),
		Username:  in.Username,
		Password:  in.Password,
		Role:      entity.RoleEmployee,
		AdminID:   &adminID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// ListEmployees lista los empleados del admin.
func (uc *AuthUseCase) ListEmployees(ctx context.Context, adminID string) ([]dto.UserResponse, error) {
	list, err := uc.userRepo.ListEmployees(ctx, adminID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, *toUserResponse(u))
	}
	return out, nil
}

// UpdateDefaultMarkup actualiza el % de ganancia por defecto del usuario
// (usado como backfill del precio de venta en reportes).
func (uc *AuthUseCase) UpdateDefaultMarkup(ctx context.Context, userID string, markup decimal.Decimal) error {
	if markup.IsNegative() {
		return domain.ErrInvalidInput
	}
	return uc.userRepo.UpdateDefaultMarkup(ctx, userID, markup)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:            u.ID,
		Username:      u.Username,
		Role:          u.Role,
		TenantID:      u.TenantID(),
		DefaultMarkup: u.DefaultMarkup,
		CreatedAt:     u.CreatedAt,
	}
}
