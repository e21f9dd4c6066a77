package services

import (
	"github.com/SantoTourViagens/santo-tour-agency/internal/calc"
	"github.com/SantoTourViagens/santo-tour-agency/internal/domain"
	"github.com/SantoTourViagens/santo-tour-agency/internal/repositories"
)

// AdiantamentoService keeps advance balances derived from the stored trip
// totals on every read and write.
type AdiantamentoService struct {
	Adiantamentos repositories.AdiantamentoRepository
	Viagens       repositories.ViagemRepository
}

// GetByViagem returns the advances row of a trip. When none was saved yet
// the form still needs the category totals, so an unsaved record derived
// from the trip is returned instead.
func (s AdiantamentoService) GetByViagem(viagemID int64) (domain.Adiantamento, error) {
	v, err := s.Viagens.GetByID(viagemID)
	if err != nil {
		return domain.Adiantamento{}, err
	}
	a, err := s.Adiantamentos.GetByViagem(viagemID)
	if err != nil {
		if !domain.IsNotFound(err) {
			return domain.Adiantamento{}, err
		}
		a = domain.Adiantamento{ViagemID: viagemID}
	}
	return calc.RecomputeAdiantamento(a, calc.TotaisDaViagem(v)), nil
}

// Save upserts the advances row, rewriting every derived field from the
// stored trip totals before persisting.
func (s AdiantamentoService) Save(a domain.Adiantamento) (domain.Adiantamento, error) {
	if a.ViagemID <= 0 {
		return domain.Adiantamento{}, domain.ValidationError{Field: "viagemId", Msg: "obrigatorio"}
	}
	v, err := s.Viagens.GetByID(a.ViagemID)
	if err != nil {
		return domain.Adiantamento{}, err
	}
	a = calc.RecomputeAdiantamento(a, calc.TotaisDaViagem(v))
	return s.Adiantamentos.Save(a)
}

func (s AdiantamentoService) Delete(viagemID int64) error {
	return s.Adiantamentos.Delete(viagemID)
}
