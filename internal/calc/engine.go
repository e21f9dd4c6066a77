package calc

import (
	"time"

	"github.com/SantoTourViagens/santo-tour-agency/internal/domain"
)

// Recompute runs the full derivation pass over a trip record and returns
// the record with every derived field rewritten. It is pure and
// idempotent: the input value is never mutated, so a failed save can keep
// showing the previous derived state, and running it twice on the same
// input yields the same output.
//
// Calculators run in dependency order: capacity first (seat counts feed
// guests, gifts and pagantes), then the expense categories, then the
// aggregate and the financial block. While precomanual is set the
// suggested price is preserved and revenue/profit are refreshed from it;
// only a form reset clears the flag.
func Recompute(v domain.Viagem) domain.Viagem {
	v = normalize(v)

	capacidade := CapacityFor(v.TipoVeiculo)
	v.QtdeAssentos = capacidade.Assentos
	v.QtdeReservadosGuias = capacidade.ReservadosGuias
	v.QtdePromocionais = capacidade.Promocionais
	v.QtdeNaoPagantes = capacidade.ReservadosGuias + capacidade.Promocionais
	v.QtdePagantes = Count(capacidade.Assentos - v.QtdeNaoPagantes)

	v.TotalTaxas = TotalTaxas(v)
	v.TotalDespesasTransporte = TotalDespesasTransporte(v)
	v.TotalRefeicaoMotorista, v.TotalDeslocamentosMotoristas, v.TotalDespesasMotoristas = DespesasMotoristas(v)
	v.TotalTraslados = TotalTraslados(v)

	v.QtdeDiarias = QtdeDiarias(v.DataPartida, v.DataRetorno)
	v.QtdeHospedes = v.QtdeAssentos + Count(v.QtdeMotoristas)
	v.TotalDiarias, v.TotalDespesasHospedagem = DespesasHospedagem(v, v.QtdeDiarias, v.QtdeHospedes)

	v.TotalDespesasPasseios = TotalDespesasPasseios(v)
	v.QtdeBrindes, v.BrindesTotal, v.TotalDespesasBrindesEExtras = DespesasBrindes(v, v.QtdeAssentos)
	v.TotalDespesasSorteios = TotalDespesasSorteios(v)
	v.TotalOutrasReceitas = TotalOutrasReceitas(v)

	v.DespesaTotal = Round2(
		v.TotalTaxas +
			v.TotalDespesasTransporte +
			v.TotalDespesasMotoristas +
			v.TotalTraslados +
			v.TotalDespesasHospedagem +
			v.TotalDespesasPasseios +
			v.TotalDespesasBrindesEExtras +
			v.TotalDespesasSorteios)

	fin := CalcFinancials(v.DespesaTotal, v.QtdePagantes, v.TotalOutrasReceitas)
	v.PontoEquilibrio = fin.PontoEquilibrio
	if v.PrecoManual {
		v.PrecoSugerido = Round2(Money(v.PrecoSugerido))
		v.ReceitaTotal, v.LucroBruto = RecalcWithPrice(v.PrecoSugerido, v.QtdePagantes, v.DespesaTotal, v.TotalOutrasReceitas)
	} else {
		v.PrecoSugerido = fin.PrecoSugerido
		v.ReceitaTotal = fin.ReceitaTotal
		v.LucroBruto = fin.LucroBruto
	}

	return v
}

// ApplyPriceEdit records a manual suggested-price edit and re-derives the
// dependent fields. The record stays in manual mode until a form reset.
func ApplyPriceEdit(v domain.Viagem, preco float64) domain.Viagem {
	v.PrecoManual = true
	v.PrecoSugerido = Round2(Money(preco))
	return Recompute(v)
}

// normalize coerces raw inputs before the calculators run: negative
// quantities and amounts degrade to zero and the return date defaults to
// the day after departure when the form left it unset.
func normalize(v domain.Viagem) domain.Viagem {
	v.QtdeMotoristas = Count(v.QtdeMotoristas)
	v.QtdeAlmocosMotoristas = Count(v.QtdeAlmocosMotoristas)
	v.QtdeJantasMotoristas = Count(v.QtdeJantasMotoristas)
	v.QtdeDeslocamentosMotoristas = Count(v.QtdeDeslocamentosMotoristas)
	v.QtdeTraslado1 = Count(v.QtdeTraslado1)
	v.QtdeTraslado2 = Count(v.QtdeTraslado2)
	v.QtdeTraslado3 = Count(v.QtdeTraslado3)
	v.QtdePasseios1 = Count(v.QtdePasseios1)
	v.QtdePasseios2 = Count(v.QtdePasseios2)
	v.QtdePasseios3 = Count(v.QtdePasseios3)
	v.QtdeBrindes = Count(v.QtdeBrindes)
	v.Sorteio1Qtde = Count(v.Sorteio1Qtde)
	v.Sorteio2Qtde = Count(v.Sorteio2Qtde)
	v.Sorteio3Qtde = Count(v.Sorteio3Qtde)

	if v.DataRetorno == "" && v.DataPartida != "" {
		if partida, err := time.Parse(dateLayout, v.DataPartida); err == nil {
			v.DataRetorno = partida.AddDate(0, 0, 1).Format(dateLayout)
		}
	}

	return v
}
