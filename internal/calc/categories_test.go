package calc

import (
	"testing"

	"github.com/SantoTourViagens/santo-tour-agency/internal/domain"
)

func TestTotalTaxas(t *testing.T) {
	v := domain.Viagem{TaxaCidade: 120.50, TaxaGuiaLocal: 80, OutrasTaxasValor: 19.49}
	if got := TotalTaxas(v); got != 219.99 {
		t.Fatalf("totaltaxas = %v, want 219.99", got)
	}
}

func TestTotalTaxasNegativeInputDegradesToZero(t *testing.T) {
	v := domain.Viagem{TaxaCidade: -50, TaxaGuiaLocal: 100}
	if got := TotalTaxas(v); got != 100 {
		t.Fatalf("totaltaxas = %v, want 100", got)
	}
}

func TestTotalDespesasTransporte(t *testing.T) {
	v := domain.Viagem{Frete: 4500, Estacionamento: 150.75}
	if got := TotalDespesasTransporte(v); got != 4650.75 {
		t.Fatalf("totaldespesastransporte = %v, want 4650.75", got)
	}
}

func TestDespesasMotoristas(t *testing.T) {
	v := domain.Viagem{
		QtdeAlmocosMotoristas:         4,
		QtdeJantasMotoristas:          3,
		RefeicaoMotoristaUnitario:     30,
		QtdeDeslocamentosMotoristas:   2,
		DeslocamentoMotoristaUnitario: 55.50,
	}
	refeicoes, deslocamentos, total := DespesasMotoristas(v)
	if refeicoes != 210 {
		t.Fatalf("totalrefeicaomotorista = %v, want 210", refeicoes)
	}
	if deslocamentos != 111 {
		t.Fatalf("totaldeslocamentosmotoristas = %v, want 111", deslocamentos)
	}
	if total != 321 {
		t.Fatalf("totaldespesasmotoristas = %v, want 321", total)
	}
}

func TestTotalTraslados(t *testing.T) {
	v := domain.Viagem{
		QtdeTraslado1: 2, Traslado1Valor: 100,
		QtdeTraslado2: 1, Traslado2Valor: 75.25,
		QtdeTraslado3: 0, Traslado3Valor: 999,
	}
	if got := TotalTraslados(v); got != 275.25 {
		t.Fatalf("totaltraslados = %v, want 275.25", got)
	}
}

func TestQtdeDiarias(t *testing.T) {
	cases := []struct {
		name     string
		partida  string
		retorno  string
		expected int
	}{
		{"two nights", "2024-03-10", "2024-03-12", 2},
		{"same day floors at one night", "2024-03-10", "2024-03-10", 1},
		{"return before departure", "2024-03-10", "2024-03-08", 0},
		{"missing departure", "", "2024-03-12", 0},
		{"missing return", "2024-03-10", "", 0},
		{"unparseable date", "10/03/2024", "2024-03-12", 0},
		{"week long", "2024-07-01", "2024-07-08", 7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := QtdeDiarias(tc.partida, tc.retorno); got != tc.expected {
				t.Fatalf("qtdediarias(%q, %q) = %d, want %d", tc.partida, tc.retorno, got, tc.expected)
			}
		})
	}
}

func TestDespesasHospedagem(t *testing.T) {
	v := domain.Viagem{ValorDiariaUnitario: 85.50, OutrosServicosValor: 200}
	totalDiarias, totalHospedagem := DespesasHospedagem(v, 3, 48)
	if totalDiarias != 12312 {
		t.Fatalf("totaldiarias = %v, want 12312", totalDiarias)
	}
	if totalHospedagem != 12512 {
		t.Fatalf("totaldespesashospedagem = %v, want 12512", totalHospedagem)
	}
}

func TestTotalDespesasPasseios(t *testing.T) {
	v := domain.Viagem{
		QtdePasseios1: 40, ValorPasseios1: 25,
		QtdePasseios2: 40, ValorPasseios2: 12.50,
	}
	if got := TotalDespesasPasseios(v); got != 1500 {
		t.Fatalf("totaldespesaspasseios = %v, want 1500", got)
	}
}

func TestDespesasBrindesDefaultsToSeatCount(t *testing.T) {
	v := domain.Viagem{BrindesUnitario: 5, Extras1Valor: 100, Extras2Valor: 50}
	qtde, brindesTotal, total := DespesasBrindes(v, 46)
	if qtde != 46 {
		t.Fatalf("qtdebrindes = %d, want 46", qtde)
	}
	if brindesTotal != 230 {
		t.Fatalf("brindestotal = %v, want 230", brindesTotal)
	}
	if total != 380 {
		t.Fatalf("totaldespesasbrindeesextras = %v, want 380", total)
	}
}

func TestDespesasBrindesExplicitQuantityKept(t *testing.T) {
	v := domain.Viagem{QtdeBrindes: 10, BrindesUnitario: 5}
	qtde, brindesTotal, _ := DespesasBrindes(v, 46)
	if qtde != 10 {
		t.Fatalf("qtdebrindes = %d, want explicit 10", qtde)
	}
	if brindesTotal != 50 {
		t.Fatalf("brindestotal = %v, want 50", brindesTotal)
	}
}

func TestTotalDespesasSorteios(t *testing.T) {
	v := domain.Viagem{
		Sorteio1Qtde: 3, Sorteio1Valor: 20,
		Sorteio2Qtde: 1, Sorteio2Valor: 99.90,
	}
	if got := TotalDespesasSorteios(v); got != 159.90 {
		t.Fatalf("totaldespesassorteios = %v, want 159.90", got)
	}
}

func TestTotalOutrasReceitas(t *testing.T) {
	v := domain.Viagem{OutrasReceitas1Valor: 300, OutrasReceitas2Valor: 150.10}
	if got := TotalOutrasReceitas(v); got != 450.10 {
		t.Fatalf("totaloutrasreceitas = %v, want 450.10", got)
	}
}

func TestCapacityForKnownTypes(t *testing.T) {
	cases := []struct {
		tipo     string
		assentos int
		guias    int
		promo    int
	}{
		{domain.VeiculoOnibus, 46, 2, 2},
		{domain.VeiculoSemiLeito, 44, 2, 2},
		{domain.VeiculoMicroonibus, 28, 1, 1},
		{domain.VeiculoVan, 15, 1, 1},
		{domain.VeiculoCarro, 4, 0, 0},
	}
	for _, tc := range cases {
		got := CapacityFor(tc.tipo)
		if got.Assentos != tc.assentos || got.ReservadosGuias != tc.guias || got.Promocionais != tc.promo {
			t.Fatalf("CapacityFor(%q) = %+v, want %d/%d/%d", tc.tipo, got, tc.assentos, tc.guias, tc.promo)
		}
	}
}

func TestCapacityForUnknownTypeIsZero(t *testing.T) {
	got := CapacityFor("Trem")
	if got.Assentos != 0 || got.ReservadosGuias != 0 || got.Promocionais != 0 {
		t.Fatalf("unknown vehicle type must map to zero capacity, got %+v", got)
	}
}
