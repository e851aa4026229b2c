package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/conectfibra/gestor-api/internal/application/dto"
	"github.com/conectfibra/gestor-api/internal/domain"
	"github.com/conectfibra/gestor-api/internal/domain/entity"
	"github.com/conectfibra/gestor-api/internal/domain/repository"
)

// ClienteUseCase operações de cadastro de assinantes.
type ClienteUseCase struct {
	repo repository.ClienteRepository
}

func NewClienteUseCase(repo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{repo: repo}
}

// Create valida e persiste um cliente. Nome e telefone são obrigatórios
// (o telefone é o destino das notificações WhatsApp).
func (uc *ClienteUseCase) Create(empresaID string, in dto.CreateClienteRequest) (*entity.Cliente, error) {
	if in.Nome == "" || in.Telefone == "" {
		return nil, domain.ErrEntradaInvalida
	}
	now := time.Now()
	cliente := &entity.Cliente{
		ID:        uuid.New().String(),
		EmpresaID: empresaID,
		Nome:      in.Nome,
		CPFCNPJ:   in.CPFCNPJ,
		Telefone:  in.Telefone,
		Email:     in.Email,
		Endereco:  in.Endereco,
		Bairro:    in.Bairro,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(cliente); err != nil {
		return nil, err
	}
	return cliente, nil
}

func (uc *ClienteUseCase) GetByID(empresaID, id string) (*entity.Cliente, error) {
	cliente, err := uc.repo.GetByID(empresaID, id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNaoEncontrado
	}
	return cliente, nil
}

func (uc *ClienteUseCase) List(empresaID string, limit, offset int) ([]*entity.Cliente, error) {
	return uc.repo.ListByEmpresa(empresaID, limit, offset)
}

func (uc *ClienteUseCase) Update(empresaID, id string, in dto.UpdateClienteRequest) (*entity.Cliente, error) {
	cliente, err := uc.repo.GetByID(empresaID, id)
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNaoEncontrado
	}
	if in.Nome != "" {
		cliente.Nome = in.Nome
	}
	if in.Telefone != "" {
		cliente.Telefone = in.Telefone
	}
	cliente.Email = in.Email
	cliente.Endereco = in.Endereco
	cliente.Bairro = in.Bairro
	cliente.UpdatedAt = time.Now()
	if err := uc.repo.Update(cliente); err != nil {
		return nil, err
	}
	return cliente, nil
}

func (uc *ClienteUseCase) Delete(empresaID, id string) error {
	return uc.repo.Delete(empresaID, id)
}
