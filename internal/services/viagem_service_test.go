package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/SantoTourViagens/santo-tour-agency/internal/domain"
	"github.com/SantoTourViagens/santo-tour-agency/internal/repositories"
)

func TestViagemCreateRejectsInvalidPayload(t *testing.T) {
	svc := ViagemService{}
	cases := []struct {
		name string
		v    domain.Viagem
	}{
		{"destino vazio", domain.Viagem{TipoVeiculo: domain.VeiculoVan}},
		{"tipoveiculo desconhecido", domain.Viagem{Destino: "Gramado", TipoVeiculo: "Charrete"}},
		{"tipohospedagem desconhecido", domain.Viagem{Destino: "Gramado", TipoHospedagem: "Iglu"}},
		{"regime desconhecido", domain.Viagem{Destino: "Gramado", RegimeHospedagem: "All Inclusive"}},
		{"data partida invalida", domain.Viagem{Destino: "Gramado", DataPartida: "10/03/2024"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(tc.v); !domain.IsValidation(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestViagemCreatePersistsDerivedRecord(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO viagens").
		WillReturnResult(sqlmock.NewResult(7, 1))

	svc := ViagemService{Viagens: repositories.ViagemRepository{DB: db}}
	out, err := svc.Create(domain.Viagem{
		Destino:     "Gramado",
		DataPartida: "2024-03-10",
		DataRetorno: "2024-03-13",
		TipoVeiculo: domain.VeiculoOnibus,
		Frete:       5000,
	})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if out.ID != 7 {
		t.Fatalf("id = %d, want 7", out.ID)
	}
	// engine must have run before the insert
	if out.QtdeAssentos != 46 || out.QtdePagantes != 42 {
		t.Fatalf("capacity not derived: %d/%d", out.QtdeAssentos, out.QtdePagantes)
	}
	if out.DespesaTotal != 5000 {
		t.Fatalf("despesatotal = %v, want 5000", out.DespesaTotal)
	}
	if out.PontoEquilibrio != 119.05 {
		t.Fatalf("pontoequilibrio = %v, want 119.05", out.PontoEquilibrio)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestWithRetornoPadrao(t *testing.T) {
	cases := []struct {
		name    string
		partida string
		retorno string
		want    string
	}{
		{"retorno vazio", "2024-03-10", "", "2024-03-11"},
		{"retorno informado", "2024-03-10", "2024-03-15", "2024-03-15"},
		{"virada de mes", "2024-01-31", "", "2024-02-01"},
		{"sem partida", "", "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := withRetornoPadrao(domain.Viagem{DataPartida: tc.partida, DataRetorno: tc.retorno})
			if v.DataRetorno != tc.want {
				t.Fatalf("dataretorno = %q, want %q", v.DataRetorno, tc.want)
			}
		})
	}
}

func TestAdiantamentoSaveRequiresViagem(t *testing.T) {
	svc := AdiantamentoService{}
	if _, err := svc.Save(domain.Adiantamento{}); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
