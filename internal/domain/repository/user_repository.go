package repository

import "github.com/tu-usuario/suministros-api/internal/domain/entity"

// UserRepository puerto de persistencia para User.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	GetByEmailAndOrg(email, orgID string) (*entity.User, error)
	Update(user *entity.User) error
}
