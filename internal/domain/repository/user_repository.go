package repository

import (
	"github.com/alcaldia-digital/patrimonio-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para usuarios.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	GetByEmailAndMunicipality(email, municipalityID string) (*entity.User, error)
}
