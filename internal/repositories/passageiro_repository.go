package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/SantoTourViagens/santo-tour-agency/internal/config"
	"github.com/SantoTourViagens/santo-tour-agency/internal/domain"
)

// PassageiroRepository wraps DB access for the passageiros table. The legacy
// schema keeps one pair of columns per installment (dataparcela2..12), mapped
// to the Parcelas array on the way in and out.
type PassageiroRepository struct {
	DB *sql.DB
}

func (r PassageiroRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return config.DB
}

var passageiroCols = func() []string {
	cols := []string{
		"idviagem", "nomeviagem", "valorviagem", "dataviagem",
		"cpfpassageiro", "nomepassageiro", "telefonepassageiro",
		"bairropassageiro", "cidadepassageiro", "localembarquepassageiro",
		"enderecoembarquepassageiro", "passageiroindicadopor",
		"pagamentoavista", "datapagamentoavista", "formapagamentoavista",
		"valorfaltareceber", "datasinal", "valorsinal",
	}
	for n := 2; n <= domain.MaxParcelas; n++ {
		cols = append(cols, fmt.Sprintf("dataparcela%d", n), fmt.Sprintf("valorparcela%d", n))
	}
	return cols
}()

// passageiroFields returns pointers to p's fields in passageiroCols order.
func passageiroFields(p *domain.Passageiro) []any {
	dest := []any{
		&p.ViagemID, &p.NomeViagem, &p.ValorViagem, &p.DataViagem,
		&p.CPFPassageiro, &p.NomePassageiro, &p.TelefonePassageiro,
		&p.BairroPassageiro, &p.CidadePassageiro, &p.LocalEmbarquePassageiro,
		&p.EnderecoEmbarquePassageiro, &p.PassageiroIndicadoPor,
		&p.PagamentoAVista, &p.DataPagamentoAVista, &p.FormaPagamentoAVista,
		&p.ValorFaltaReceber, &p.DataSinal, &p.ValorSinal,
	}
	for i := range p.Parcelas {
		dest = append(dest, &p.Parcelas[i].Data, &p.Parcelas[i].Valor)
	}
	return dest
}

func passageiroValues(p domain.Passageiro) []any {
	ptrs := passageiroFields(&p)
	vals := make([]any, len(ptrs))
	for i, ptr := range ptrs {
		switch t := ptr.(type) {
		case *string:
			vals[i] = *t
		case *int64:
			vals[i] = *t
		case *float64:
			vals[i] = *t
		case *bool:
			vals[i] = *t
		}
	}
	return vals
}

func passageiroSelect() string {
	return "SELECT id, " + strings.Join(passageiroCols, ", ") + " FROM passageiros"
}

func (r PassageiroRepository) GetByID(id int64) (domain.Passageiro, error) {
	var p domain.Passageiro
	dest := append([]any{&p.ID}, passageiroFields(&p)...)
	err := r.db().QueryRow(passageiroSelect()+" WHERE id=?", id).Scan(dest...)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Passageiro{}, domain.NotFoundError{Resource: "passageiro", Err: err}
	}
	if err != nil {
		return domain.Passageiro{}, fmt.Errorf("buscar passageiro %d: %w", id, err)
	}
	return p, nil
}

// List returns every passenger, optionally filtered by trip.
func (r PassageiroRepository) List(viagemID int64) ([]domain.Passageiro, error) {
	q := passageiroSelect()
	args := []any{}
	if viagemID > 0 {
		q += " WHERE idviagem=?"
		args = append(args, viagemID)
	}
	q += " ORDER BY nomepassageiro ASC"

	rows, err := r.db().Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("listar passageiros: %w", err)
	}
	defer rows.Close()

	out := []domain.Passageiro{}
	for rows.Next() {
		var p domain.Passageiro
		dest := append([]any{&p.ID}, passageiroFields(&p)...)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("ler passageiro: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// CountByViagem backs the seat occupancy check on passenger creation.
func (r PassageiroRepository) CountByViagem(viagemID int64) (int, error) {
	var n int
	err := r.db().QueryRow(`SELECT COUNT(*) FROM passageiros WHERE idviagem=?`, viagemID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("contar passageiros da viagem %d: %w", viagemID, err)
	}
	return n, nil
}

func (r PassageiroRepository) Create(p domain.Passageiro) (domain.Passageiro, error) {
	ph := strings.TrimSuffix(strings.Repeat("?,", len(passageiroCols)), ",")
	res, err := r.db().Exec(
		"INSERT INTO passageiros ("+strings.Join(passageiroCols, ", ")+") VALUES ("+ph+")",
		passageiroValues(p)...)
	if err != nil {
		return p, fmt.Errorf("inserir passageiro: %w", err)
	}
	p.ID, _ = res.LastInsertId()
	return p, nil
}

func (r PassageiroRepository) Update(p domain.Passageiro) (domain.Passageiro, error) {
	sets := make([]string, len(passageiroCols))
	for i, c := range passageiroCols {
		sets[i] = c + "=?"
	}
	args := append(passageiroValues(p), p.ID)
	res, err := r.db().Exec("UPDATE passageiros SET "+strings.Join(sets, ", ")+" WHERE id=?", args...)
	if err != nil {
		return p, fmt.Errorf("atualizar passageiro: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByID(p.ID); err != nil {
			return p, err
		}
	}
	return p, nil
}

func (r PassageiroRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM passageiros WHERE id=?`, id)
	if err != nil {
		return fmt.Errorf("remover passageiro: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "passageiro"}
	}
	return nil
}
