package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/SantoTourViagens/santo-tour-agency/internal/config"
	"github.com/SantoTourViagens/santo-tour-agency/internal/domain"
)

// AdiantamentoRepository wraps DB access for the adiantamentos table. Each
// trip holds at most one advances row, enforced by a unique key on idviagem,
// so writes go through an upsert.
type AdiantamentoRepository struct {
	DB *sql.DB
}

func (r AdiantamentoRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return config.DB
}

var adiantamentoCols = []string{
	"idviagem",
	"adianttaxaspara", "adianttaxasvalor", "valortaxastotal", "restantetaxas",
	"adiantfretepara", "adiantfretevalor", "valorfretetotal", "restantefrete",
	"adiantestacionamentopara", "adiantestacionamentovalor", "valorestacionamentototal", "restanteestacionamento",
	"adianttrasladospara", "adianttrasladosvalor", "valortrasladostotal", "restantetraslados",
	"adianthospedagempara", "adianthospedagemvalor", "valorhospedagemtotal", "restantehospedagem",
	"adiantpasseiospara", "adiantpasseiosvalor", "valorpasseiostotal", "restantepasseios",
	"adiantbrindespara", "adiantbrindesvalor", "valorbrindestotal", "restantebrindeseextras",
	"totaldespesas", "totaladiantamentos", "restantetotal",
}

func adiantamentoFields(a *domain.Adiantamento) []any {
	return []any{
		&a.ViagemID,
		&a.AdiantTaxasPara, &a.AdiantTaxasValor, &a.ValorTaxasTotal, &a.RestanteTaxas,
		&a.AdiantFretePara, &a.AdiantFreteValor, &a.ValorFreteTotal, &a.RestanteFrete,
		&a.AdiantEstacionamentoPara, &a.AdiantEstacionamentoValor, &a.ValorEstacionamentoTotal, &a.RestanteEstacionamento,
		&a.AdiantTrasladosPara, &a.AdiantTrasladosValor, &a.ValorTrasladosTotal, &a.RestanteTraslados,
		&a.AdiantHospedagemPara, &a.AdiantHospedagemValor, &a.ValorHospedagemTotal, &a.RestanteHospedagem,
		&a.AdiantPasseiosPara, &a.AdiantPasseiosValor, &a.ValorPasseiosTotal, &a.RestantePasseios,
		&a.AdiantBrindesPara, &a.AdiantBrindesValor, &a.ValorBrindesTotal, &a.RestanteBrindesExtras,
		&a.TotalDespesas, &a.TotalAdiantamentos, &a.RestanteTotal,
	}
}

func adiantamentoValues(a domain.Adiantamento) []any {
	ptrs := adiantamentoFields(&a)
	vals := make([]any, len(ptrs))
	for i, p := range ptrs {
		switch t := p.(type) {
		case *string:
			vals[i] = *t
		case *int64:
			vals[i] = *t
		case *float64:
			vals[i] = *t
		}
	}
	return vals
}

// GetByViagem loads the advances row of one trip.
func (r AdiantamentoRepository) GetByViagem(viagemID int64) (domain.Adiantamento, error) {
	var a domain.Adiantamento
	dest := append([]any{&a.ID}, adiantamentoFields(&a)...)
	err := r.db().QueryRow(
		"SELECT id, "+strings.Join(adiantamentoCols, ", ")+" FROM adiantamentos WHERE idviagem=?",
		viagemID).Scan(dest...)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Adiantamento{}, domain.NotFoundError{Resource: "adiantamento", Err: err}
	}
	if err != nil {
		return domain.Adiantamento{}, fmt.Errorf("buscar adiantamento da viagem %d: %w", viagemID, err)
	}
	return a, nil
}

// Save upserts the advances row keyed by idviagem.
func (r AdiantamentoRepository) Save(a domain.Adiantamento) (domain.Adiantamento, error) {
	ph := strings.TrimSuffix(strings.Repeat("?,", len(adiantamentoCols)), ",")
	updates := make([]string, 0, len(adiantamentoCols))
	for _, c := range adiantamentoCols {
		if c == "idviagem" {
			continue
		}
		updates = append(updates, c+"=VALUES("+c+")")
	}

	_, err := r.db().Exec(
		"INSERT INTO adiantamentos ("+strings.Join(adiantamentoCols, ", ")+") VALUES ("+ph+")"+
			" ON DUPLICATE KEY UPDATE id=LAST_INSERT_ID(id), "+strings.Join(updates, ", "),
		adiantamentoValues(a)...)
	if err != nil {
		return a, fmt.Errorf("salvar adiantamento: %w", err)
	}
	return r.GetByViagem(a.ViagemID)
}

func (r AdiantamentoRepository) Delete(viagemID int64) error {
	res, err := r.db().Exec(`DELETE FROM adiantamentos WHERE idviagem=?`, viagemID)
	if err != nil {
		return fmt.Errorf("remover adiantamento: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "adiantamento"}
	}
	return nil
}
