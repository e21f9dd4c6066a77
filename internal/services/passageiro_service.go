package services

import (
	"strings"

	"github.com/SantoTourViagens/santo-tour-agency/internal/calc"
	"github.com/SantoTourViagens/santo-tour-agency/internal/domain"
	"github.com/SantoTourViagens/santo-tour-agency/internal/repositories"
)

// PassageiroService validates passenger writes against the trip they board
// and derives the outstanding balance of the payment plan.
type PassageiroService struct {
	Passageiros repositories.PassageiroRepository
	Viagens     repositories.ViagemRepository
}

func (s PassageiroService) List(viagemID int64) ([]domain.Passageiro, error) {
	return s.Passageiros.List(viagemID)
}

func (s PassageiroService) Get(id int64) (domain.Passageiro, error) {
	return s.Passageiros.GetByID(id)
}

func (s PassageiroService) Create(p domain.Passageiro) (domain.Passageiro, error) {
	p, v, err := s.prepare(p)
	if err != nil {
		return domain.Passageiro{}, err
	}
	ocupados, err := s.Passageiros.CountByViagem(p.ViagemID)
	if err != nil {
		return domain.Passageiro{}, err
	}
	if v.QtdeAssentos > 0 && ocupados >= v.QtdeAssentos {
		return domain.Passageiro{}, domain.ConflictError{Resource: "passageiro", Msg: "viagem sem assentos disponiveis"}
	}
	return s.Passageiros.Create(p)
}

func (s PassageiroService) Update(p domain.Passageiro) (domain.Passageiro, error) {
	if _, err := s.Passageiros.GetByID(p.ID); err != nil {
		return domain.Passageiro{}, err
	}
	p, _, err := s.prepare(p)
	if err != nil {
		return domain.Passageiro{}, err
	}
	return s.Passageiros.Update(p)
}

func (s PassageiroService) Delete(id int64) error {
	return s.Passageiros.Delete(id)
}

// prepare validates the payload, fills trip display fields from the trip
// record and rewrites valorfaltareceber.
func (s PassageiroService) prepare(p domain.Passageiro) (domain.Passageiro, domain.Viagem, error) {
	p.CPFPassageiro = normalizeCPF(p.CPFPassageiro)
	p.PassageiroIndicadoPor = normalizeCPF(p.PassageiroIndicadoPor)
	p.NomePassageiro = strings.TrimSpace(p.NomePassageiro)

	if p.ViagemID <= 0 {
		return p, domain.Viagem{}, domain.ValidationError{Field: "idviagem", Msg: "obrigatorio"}
	}
	if len(p.CPFPassageiro) != 11 {
		return p, domain.Viagem{}, domain.ValidationError{Field: "cpfpassageiro", Msg: "deve ter 11 digitos"}
	}
	if p.NomePassageiro == "" {
		return p, domain.Viagem{}, domain.ValidationError{Field: "nomepassageiro", Msg: "obrigatorio"}
	}
	if p.FormaPagamentoAVista != "" && !contains(domain.FormasPagamento, p.FormaPagamentoAVista) {
		return p, domain.Viagem{}, domain.ValidationError{Field: "formapagamentoavista", Msg: "forma de pagamento desconhecida"}
	}
	for _, parcela := range p.Parcelas {
		if parcela.Data != "" && !validDate(parcela.Data) {
			return p, domain.Viagem{}, domain.ValidationError{Field: "parcelas", Msg: "data de parcela invalida, use AAAA-MM-DD"}
		}
	}

	v, err := s.Viagens.GetByID(p.ViagemID)
	if err != nil {
		return p, domain.Viagem{}, err
	}
	if p.NomeViagem == "" {
		p.NomeViagem = v.Destino
	}
	if p.DataViagem == "" {
		p.DataViagem = v.DataPartida
	}
	if p.ValorViagem == 0 {
		p.ValorViagem = v.PrecoSugerido
	}

	p.ValorFaltaReceber = calc.ValorFaltaReceber(p)
	return p, v, nil
}
