package services

import (
	"strings"

	"github.com/SantoTourViagens/santo-tour-agency/internal/domain"
	"github.com/SantoTourViagens/santo-tour-agency/internal/repositories"
)

// ClienteService validates and persists the client registry used to pre-fill
// passenger forms by CPF.
type ClienteService struct {
	Clientes repositories.ClienteRepository
}

func (s ClienteService) List() ([]domain.Cliente, error) {
	return s.Clientes.List()
}

func (s ClienteService) Get(id int64) (domain.Cliente, error) {
	return s.Clientes.GetByID(id)
}

func (s ClienteService) GetByCPF(cpf string) (domain.Cliente, error) {
	cpf = normalizeCPF(cpf)
	if len(cpf) != 11 {
		return domain.Cliente{}, domain.ValidationError{Field: "cpf", Msg: "deve ter 11 digitos"}
	}
	return s.Clientes.GetByCPF(cpf)
}

func (s ClienteService) Create(c domain.Cliente) (domain.Cliente, error) {
	c, err := sanitizeCliente(c)
	if err != nil {
		return domain.Cliente{}, err
	}
	return s.Clientes.Create(c)
}

func (s ClienteService) Update(c domain.Cliente) (domain.Cliente, error) {
	c, err := sanitizeCliente(c)
	if err != nil {
		return domain.Cliente{}, err
	}
	if _, err := s.Clientes.GetByID(c.ID); err != nil {
		return domain.Cliente{}, err
	}
	return s.Clientes.Update(c)
}

func (s ClienteService) Delete(id int64) error {
	return s.Clientes.Delete(id)
}

func sanitizeCliente(c domain.Cliente) (domain.Cliente, error) {
	c.CPF = normalizeCPF(c.CPF)
	c.IndicadoPor = normalizeCPF(c.IndicadoPor)
	c.Nome = strings.TrimSpace(c.Nome)

	if len(c.CPF) != 11 {
		return c, domain.ValidationError{Field: "cpf", Msg: "deve ter 11 digitos"}
	}
	if c.Nome == "" {
		return c, domain.ValidationError{Field: "nome", Msg: "obrigatorio"}
	}
	if len(c.Nome) > 120 {
		return c, domain.ValidationError{Field: "nome", Msg: "maximo de 120 caracteres"}
	}
	if c.DataNascimento != "" && !validDate(c.DataNascimento) {
		return c, domain.ValidationError{Field: "datanascimento", Msg: "data invalida, use AAAA-MM-DD"}
	}
	if c.IndicadoPor != "" && len(c.IndicadoPor) != 11 {
		return c, domain.ValidationError{Field: "indicadopor", Msg: "deve ter 11 digitos"}
	}
	return c, nil
}
