package services

import (
	"strings"

	"go.uber.org/zap"

	"github.com/SantoTourViagens/santo-tour-agency/internal/calc"
	"github.com/SantoTourViagens/santo-tour-agency/internal/domain"
	"github.com/SantoTourViagens/santo-tour-agency/internal/repositories"
)

// ViagemService runs the calculation engine over trip writes and keeps the
// advances row of the trip consistent with the derived totals. A write either
// persists the fully derived record or nothing.
type ViagemService struct {
	Viagens       repositories.ViagemRepository
	Adiantamentos repositories.AdiantamentoRepository
	Log           *zap.Logger
}

func (s ViagemService) log() *zap.Logger {
	if s.Log != nil {
		return s.Log
	}
	return zap.NewNop()
}

func (s ViagemService) List() ([]domain.Viagem, error) {
	return s.Viagens.List()
}

func (s ViagemService) Get(id int64) (domain.Viagem, error) {
	return s.Viagens.GetByID(id)
}

func (s ViagemService) Create(v domain.Viagem) (domain.Viagem, error) {
	if err := validateViagem(v); err != nil {
		return domain.Viagem{}, err
	}
	v = withRetornoPadrao(v)
	v = calc.Recompute(v)
	out, err := s.Viagens.Create(v)
	if err != nil {
		return domain.Viagem{}, err
	}
	s.log().Info("viagem criada",
		zap.Int64("id", out.ID),
		zap.String("destino", out.Destino),
		zap.Float64("despesatotal", out.DespesaTotal))
	return out, nil
}

func (s ViagemService) Update(v domain.Viagem) (domain.Viagem, error) {
	if err := validateViagem(v); err != nil {
		return domain.Viagem{}, err
	}
	if _, err := s.Viagens.GetByID(v.ID); err != nil {
		return domain.Viagem{}, err
	}
	v = withRetornoPadrao(v)
	v = calc.Recompute(v)
	out, err := s.Viagens.Update(v)
	if err != nil {
		return domain.Viagem{}, err
	}
	if err := s.refreshAdiantamento(out); err != nil {
		return domain.Viagem{}, err
	}
	s.log().Info("viagem atualizada",
		zap.Int64("id", out.ID),
		zap.Float64("despesatotal", out.DespesaTotal))
	return out, nil
}

// SetPrecoSugerido applies a manual price edit: the suggested price switches
// to manual mode and revenue/profit follow the edited value.
func (s ViagemService) SetPrecoSugerido(id int64, preco float64) (domain.Viagem, error) {
	v, err := s.Viagens.GetByID(id)
	if err != nil {
		return domain.Viagem{}, err
	}
	v = calc.ApplyPriceEdit(v, preco)
	out, err := s.Viagens.Update(v)
	if err != nil {
		return domain.Viagem{}, err
	}
	s.log().Info("preco sugerido editado",
		zap.Int64("id", id),
		zap.Float64("precosugerido", out.PrecoSugerido))
	return out, nil
}

func (s ViagemService) Delete(id int64) error {
	// adiantamentos and passageiros rows follow via ON DELETE CASCADE
	if err := s.Viagens.Delete(id); err != nil {
		return err
	}
	s.log().Info("viagem removida", zap.Int64("id", id))
	return nil
}

// refreshAdiantamento rewrites the stored advance balances after the trip
// totals changed. A trip without an advances row is left alone.
func (s ViagemService) refreshAdiantamento(v domain.Viagem) error {
	a, err := s.Adiantamentos.GetByViagem(v.ID)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil
		}
		return err
	}
	a = calc.RecomputeAdiantamento(a, calc.TotaisDaViagem(v))
	_, err = s.Adiantamentos.Save(a)
	return err
}

// withRetornoPadrao fills an empty return date with the day after departure.
func withRetornoPadrao(v domain.Viagem) domain.Viagem {
	if v.DataRetorno == "" && v.DataPartida != "" {
		v.DataRetorno = nextDay(v.DataPartida)
	}
	return v
}

func validateViagem(v domain.Viagem) error {
	if strings.TrimSpace(v.Destino) == "" {
		return domain.ValidationError{Field: "destino", Msg: "obrigatorio"}
	}
	if len(v.Destino) > 190 {
		return domain.ValidationError{Field: "destino", Msg: "maximo de 190 caracteres"}
	}
	if v.TipoVeiculo != "" && !contains(domain.TiposVeiculo, v.TipoVeiculo) {
		return domain.ValidationError{Field: "tipoveiculo", Msg: "tipo de veiculo desconhecido"}
	}
	if v.TipoHospedagem != "" && !contains(domain.TiposHospedagem, v.TipoHospedagem) {
		return domain.ValidationError{Field: "tipohospedagem", Msg: "tipo de hospedagem desconhecido"}
	}
	if v.RegimeHospedagem != "" && !contains(domain.RegimesHospedagem, v.RegimeHospedagem) {
		return domain.ValidationError{Field: "regimehospedagem", Msg: "regime de hospedagem desconhecido"}
	}
	if v.DataPartida != "" && !validDate(v.DataPartida) {
		return domain.ValidationError{Field: "datapartida", Msg: "data invalida, use AAAA-MM-DD"}
	}
	if v.DataRetorno != "" && !validDate(v.DataRetorno) {
		return domain.ValidationError{Field: "dataretorno", Msg: "data invalida, use AAAA-MM-DD"}
	}
	return nil
}
