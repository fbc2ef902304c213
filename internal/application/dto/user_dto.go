package dto

import "github.com/tu-usuario/suministros-api/internal/domain/entity"

// RegisterRequest alta de usuario dentro de una organización.
type RegisterRequest struct {
	OrgID    string `json:"org_id" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name"`
	Role     string `json:"role" validate:"omitempty,oneof=admin manager receiver"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse usuario sin campos sensibles.
type UserResponse struct {
	ID            string                   `json:"id"`
	OrgID         string                   `json:"org_id"`
	Email         string                   `json:"email"`
	Name          string                   `json:"name"`
	Phone         string                   `json:"phone"`
	Role          string                   `json:"role"`
	Status        string                   `json:"status"`
	Notifications entity.NotificationPrefs `json:"notifications"`
}

// LoginResponse token + usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UpdateProfileRequest cambios de perfil. El email no se puede cambiar.
type UpdateProfileRequest struct {
	Name          *string                   `json:"name" validate:"omitempty,min=1,max=200"`
	Phone         *string                   `json:"phone"`
	Notifications *entity.NotificationPrefs `json:"notifications"`
}

// ChangePasswordRequest cambio de contraseña con verificación de la actual.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}
