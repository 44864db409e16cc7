package dto

// LoginRequest credenciales del cajero.
type LoginRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,max=72"` // límite de bcrypt
}

// CashierResponse datos públicos del cajero autenticado (sin hash).
type CashierResponse struct {
	ID       string `json:"id"`
	BranchID string `json:"branchId"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// LoginResponse token Bearer y datos del cajero.
type LoginResponse struct {
	Token     string          `json:"token"`
	ExpiresIn int             `json:"expiresIn"` // segundos
	Cashier   CashierResponse `json:"cashier"`
}
