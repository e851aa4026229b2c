package repository

import "github.com/conectfibra/gestor-api/internal/domain/entity"

// UserRepository define o porto de persistência para User.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	GetByEmailAndEmpresa(email, empresaID string) (*entity.User, error)
}
