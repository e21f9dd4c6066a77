package calc

import (
	"testing"

	"github.com/SantoTourViagens/santo-tour-agency/internal/domain"
)

func viagemBase() domain.Viagem {
	return domain.Viagem{
		Destino:     "Gramado",
		DataPartida: "2024-03-10",
		DataRetorno: "2024-03-13",
		TipoVeiculo: domain.VeiculoOnibus,

		TaxaCidade:       200,
		TaxaGuiaLocal:    300,
		OutrasTaxasValor: 100,

		Frete:          5000,
		Estacionamento: 150,

		QtdeMotoristas:                2,
		QtdeAlmocosMotoristas:         6,
		QtdeJantasMotoristas:          6,
		RefeicaoMotoristaUnitario:     30,
		QtdeDeslocamentosMotoristas:   2,
		DeslocamentoMotoristaUnitario: 50,

		QtdeTraslado1:  2,
		Traslado1Valor: 120,

		TipoHospedagem:      "Pousada",
		RegimeHospedagem:    "Café da Manhã",
		ValorDiariaUnitario: 10,
		OutrosServicosValor: 140,

		QtdePasseios1:  40,
		ValorPasseios1: 10,

		BrindesUnitario: 2,
		Extras1Valor:    58,

		Sorteio1Qtde:  2,
		Sorteio1Valor: 50,

		OutrasReceitas1Valor: 250,
	}
}

func TestRecomputeDerivesAllCategories(t *testing.T) {
	v := Recompute(viagemBase())

	if v.QtdeAssentos != 46 || v.QtdeNaoPagantes != 4 || v.QtdePagantes != 42 {
		t.Fatalf("capacity chain wrong: assentos=%d naopagantes=%d pagantes=%d", v.QtdeAssentos, v.QtdeNaoPagantes, v.QtdePagantes)
	}
	if v.TotalTaxas != 600 {
		t.Fatalf("totaltaxas = %v, want 600", v.TotalTaxas)
	}
	if v.TotalDespesasTransporte != 5150 {
		t.Fatalf("totaldespesastransporte = %v, want 5150", v.TotalDespesasTransporte)
	}
	if v.TotalDespesasMotoristas != 460 {
		t.Fatalf("totaldespesasmotoristas = %v, want 460", v.TotalDespesasMotoristas)
	}
	if v.TotalTraslados != 240 {
		t.Fatalf("totaltraslados = %v, want 240", v.TotalTraslados)
	}
	if v.QtdeDiarias != 3 {
		t.Fatalf("qtdediarias = %d, want 3", v.QtdeDiarias)
	}
	if v.QtdeHospedes != 48 {
		t.Fatalf("qtdehospedes = %d, want 48 (46 assentos + 2 motoristas)", v.QtdeHospedes)
	}
	if v.TotalDiarias != 1440 {
		t.Fatalf("totaldiarias = %v, want 1440", v.TotalDiarias)
	}
	if v.TotalDespesasHospedagem != 1580 {
		t.Fatalf("totaldespesashospedagem = %v, want 1580", v.TotalDespesasHospedagem)
	}
	if v.TotalDespesasPasseios != 400 {
		t.Fatalf("totaldespesaspasseios = %v, want 400", v.TotalDespesasPasseios)
	}
	if v.QtdeBrindes != 46 || v.BrindesTotal != 92 || v.TotalDespesasBrindesEExtras != 150 {
		t.Fatalf("brindes chain wrong: qtde=%d total=%v categoria=%v", v.QtdeBrindes, v.BrindesTotal, v.TotalDespesasBrindesEExtras)
	}
	if v.TotalDespesasSorteios != 100 {
		t.Fatalf("totaldespesassorteios = %v, want 100", v.TotalDespesasSorteios)
	}
	if v.TotalOutrasReceitas != 250 {
		t.Fatalf("totaloutrasreceitas = %v, want 250", v.TotalOutrasReceitas)
	}

	// despesatotal is the exact sum of the eight expense category totals
	soma := v.TotalTaxas + v.TotalDespesasTransporte + v.TotalDespesasMotoristas +
		v.TotalTraslados + v.TotalDespesasHospedagem + v.TotalDespesasPasseios +
		v.TotalDespesasBrindesEExtras + v.TotalDespesasSorteios
	if v.DespesaTotal != Round2(soma) {
		t.Fatalf("despesatotal = %v, want sum of categories %v", v.DespesaTotal, soma)
	}
	if v.DespesaTotal != 8680 {
		t.Fatalf("despesatotal = %v, want 8680", v.DespesaTotal)
	}

	// 8680 / 42 = 206.67; x1.15 = 237.67; x42 = 9982.14; +250 - 8680 = 1552.14
	if v.PontoEquilibrio != 206.67 {
		t.Fatalf("pontoequilibrio = %v, want 206.67", v.PontoEquilibrio)
	}
	if v.PrecoSugerido != 237.67 {
		t.Fatalf("precosugerido = %v, want 237.67", v.PrecoSugerido)
	}
	if v.ReceitaTotal != 9982.14 {
		t.Fatalf("receitatotal = %v, want 9982.14", v.ReceitaTotal)
	}
	if v.LucroBruto != 1552.14 {
		t.Fatalf("lucrobruto = %v, want 1552.14", v.LucroBruto)
	}
}

func TestRecomputeIsIdempotent(t *testing.T) {
	once := Recompute(viagemBase())
	twice := Recompute(once)
	if once != twice {
		t.Fatalf("recompute not idempotent:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}

func TestRecomputeDoesNotMutateInput(t *testing.T) {
	in := viagemBase()
	saved := in
	_ = Recompute(in)
	if in != saved {
		t.Fatal("Recompute mutated its input")
	}
}

func TestRecomputeUnknownVehicleZerosDownstream(t *testing.T) {
	v := viagemBase()
	v.TipoVeiculo = "Charrete"
	out := Recompute(v)
	if out.QtdeAssentos != 0 || out.QtdeReservadosGuias != 0 || out.QtdePromocionais != 0 {
		t.Fatalf("unknown vehicle must zero the capacity triple, got %d/%d/%d", out.QtdeAssentos, out.QtdeReservadosGuias, out.QtdePromocionais)
	}
	if out.QtdePagantes != 0 {
		t.Fatalf("qtdepagantes = %d, want 0", out.QtdePagantes)
	}
	if out.PontoEquilibrio != 0 || out.PrecoSugerido != 0 || out.ReceitaTotal != 0 {
		t.Fatalf("zero pagantes must zero the price side, got pe=%v ps=%v rt=%v", out.PontoEquilibrio, out.PrecoSugerido, out.ReceitaTotal)
	}
}

func TestRecomputeDefaultsReturnDate(t *testing.T) {
	v := viagemBase()
	v.DataRetorno = ""
	out := Recompute(v)
	if out.DataRetorno != "2024-03-11" {
		t.Fatalf("dataretorno = %q, want departure + 1 day", out.DataRetorno)
	}
	if out.QtdeDiarias != 1 {
		t.Fatalf("qtdediarias = %d, want 1", out.QtdeDiarias)
	}
}

func TestApplyPriceEditOverridesPriceOnly(t *testing.T) {
	v := Recompute(viagemBase())
	edited := ApplyPriceEdit(v, 250)

	if !edited.PrecoManual {
		t.Fatal("precomanual flag not set")
	}
	if edited.PrecoSugerido != 250 {
		t.Fatalf("precosugerido = %v, want 250", edited.PrecoSugerido)
	}
	if edited.PontoEquilibrio != v.PontoEquilibrio {
		t.Fatalf("pontoequilibrio changed: %v -> %v", v.PontoEquilibrio, edited.PontoEquilibrio)
	}
	if edited.DespesaTotal != v.DespesaTotal {
		t.Fatalf("despesatotal changed: %v -> %v", v.DespesaTotal, edited.DespesaTotal)
	}
	if edited.ReceitaTotal != 10500 { // 42 x 250
		t.Fatalf("receitatotal = %v, want 10500", edited.ReceitaTotal)
	}
	if edited.LucroBruto != Round2(10500+edited.TotalOutrasReceitas-edited.DespesaTotal) {
		t.Fatalf("lucrobruto = %v inconsistent with manual price", edited.LucroBruto)
	}
}

func TestManualPriceSurvivesBaseFieldChanges(t *testing.T) {
	v := ApplyPriceEdit(Recompute(viagemBase()), 250)

	// change an unrelated base field (tour cost) and recompute
	v.ValorPasseios1 = 20
	out := Recompute(v)

	if out.PrecoSugerido != 250 {
		t.Fatalf("manual price clobbered: precosugerido = %v, want 250", out.PrecoSugerido)
	}
	if !out.PrecoManual {
		t.Fatal("precomanual flag lost across recompute")
	}
	if out.DespesaTotal == v.DespesaTotal {
		t.Fatal("despesatotal should reflect the tour cost change")
	}
	if out.TotalDespesasPasseios != 800 {
		t.Fatalf("totaldespesaspasseios = %v, want 800", out.TotalDespesasPasseios)
	}
	// profit follows the manual price and the new expense
	if out.LucroBruto != Round2(out.ReceitaTotal+out.TotalOutrasReceitas-out.DespesaTotal) {
		t.Fatalf("lucrobruto = %v inconsistent", out.LucroBruto)
	}
	if out.ReceitaTotal != 10500 {
		t.Fatalf("receitatotal = %v, want 42 x 250", out.ReceitaTotal)
	}
}

func TestManualZeroPriceIsHonored(t *testing.T) {
	// A manually cleared price is a real zero, not "never set".
	out := ApplyPriceEdit(Recompute(viagemBase()), 0)
	if out.PrecoSugerido != 0 {
		t.Fatalf("precosugerido = %v, want 0", out.PrecoSugerido)
	}
	if out.ReceitaTotal != 0 {
		t.Fatalf("receitatotal = %v, want 0", out.ReceitaTotal)
	}
	again := Recompute(out)
	if again.PrecoSugerido != 0 {
		t.Fatalf("cleared price resurrected to %v", again.PrecoSugerido)
	}
}
