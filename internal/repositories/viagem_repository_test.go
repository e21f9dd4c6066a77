package repositories

import (
	"database/sql/driver"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/SantoTourViagens/santo-tour-agency/internal/calc"
	"github.com/SantoTourViagens/santo-tour-agency/internal/domain"
)

func viagemFixture() domain.Viagem {
	return calc.Recompute(domain.Viagem{
		ID:          3,
		Destino:     "Gramado",
		DataPartida: "2024-03-10",
		DataRetorno: "2024-03-13",
		TipoVeiculo: domain.VeiculoOnibus,
		Frete:       5000,
		TaxaCidade:  200,
	})
}

func viagemRows(v domain.Viagem) *sqlmock.Rows {
	rows := sqlmock.NewRows(append([]string{"id"}, viagemCols...))
	rows.AddRow(append([]driver.Value{v.ID}, toDriverValues(viagemValues(v))...)...)
	return rows
}

func toDriverValues(in []any) []driver.Value {
	out := make([]driver.Value, len(in))
	for i, v := range in {
		out[i] = v
	}
	return out
}

func TestViagemGetByIDRoundTrip(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	want := viagemFixture()
	mock.ExpectQuery("SELECT id, (.+) FROM viagens WHERE id=").
		WithArgs(int64(3)).
		WillReturnRows(viagemRows(want))

	repo := ViagemRepository{DB: db}
	got, err := repo.GetByID(3)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got != want {
		t.Fatalf("row did not survive the round trip:\ngot:  %+v\nwant: %+v", got, want)
	}
}

func TestViagemGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT id, (.+) FROM viagens WHERE id=").
		WillReturnRows(sqlmock.NewRows(append([]string{"id"}, viagemCols...)))

	repo := ViagemRepository{DB: db}
	if _, err := repo.GetByID(404); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestViagemCreateAssignsID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO viagens").
		WillReturnResult(sqlmock.NewResult(12, 1))

	repo := ViagemRepository{DB: db}
	out, err := repo.Create(viagemFixture())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if out.ID != 12 {
		t.Fatalf("id = %d, want 12", out.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAdiantamentoSaveUpserts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	a := calc.RecomputeAdiantamento(
		domain.Adiantamento{ViagemID: 3, AdiantFreteValor: 1500},
		calc.TotaisDaViagem(viagemFixture()))

	mock.ExpectExec("INSERT INTO adiantamentos").
		WillReturnResult(sqlmock.NewResult(2, 1))

	stored := a
	stored.ID = 2
	rows := sqlmock.NewRows(append([]string{"id"}, adiantamentoCols...))
	rows.AddRow(append([]driver.Value{stored.ID}, toDriverValues(adiantamentoValues(stored))...)...)
	mock.ExpectQuery("SELECT id, (.+) FROM adiantamentos WHERE idviagem=").
		WithArgs(int64(3)).
		WillReturnRows(rows)

	repo := AdiantamentoRepository{DB: db}
	got, err := repo.Save(a)
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if got != stored {
		t.Fatalf("Save = %+v, want %+v", got, stored)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPassageiroColumnsCoverEveryInstallment(t *testing.T) {
	// 18 scalar columns plus a date/value pair per installment slot
	want := 18 + 2*(domain.MaxParcelas-1)
	if len(passageiroCols) != want {
		t.Fatalf("passageiroCols has %d entries, want %d", len(passageiroCols), want)
	}
	if passageiroCols[len(passageiroCols)-1] != "valorparcela12" {
		t.Fatalf("last column = %s, want valorparcela12", passageiroCols[len(passageiroCols)-1])
	}
}
