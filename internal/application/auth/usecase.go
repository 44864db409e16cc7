package auth

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Ventanilla-api/internal/application/dto"
	"github.com/jhoicas/Ventanilla-api/internal/domain"
	"github.com/jhoicas/Ventanilla-api/internal/domain/entity"
	"github.com/jhoicas/Ventanilla-api/internal/domain/repository"
	"github.com/jhoicas/Ventanilla-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase inicio de sesión de cajeros.
type AuthUseCase struct {
	cashiers repository.CashierRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(cashiers repository.CashierRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{cashiers: cashiers, jwtCfg: jwtCfg}
}

// Login verifica usuario/password y emite el token con id de cajero, sucursal y rol.
// Usuario inexistente y password incorrecto devuelven el mismo ErrUnauthorized.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: usuario y password son requeridos", domain.ErrInvalidInput)
	}
	cashier, err := uc.cashiers.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrQueryFailed, err)
	}
	if cashier == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cashier.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !cashier.IsActive() {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, cashier.ID, cashier.BranchID, cashier.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: uc.jwtCfg.ExpMinutes * 60,
		Cashier:   toCashierResponse(cashier),
	}, nil
}

func toCashierResponse(c *entity.Cashier) dto.CashierResponse {
	return dto.CashierResponse{
		ID:       c.ID,
		BranchID: c.BranchID,
		Username: c.Username,
		Name:     c.Name,
		Role:     c.Role,
	}
}
