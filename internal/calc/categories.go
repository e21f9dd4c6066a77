package calc

import (
	"time"

	"github.com/SantoTourViagens/santo-tour-agency/internal/domain"
)

const dateLayout = "2006-01-02"

// Each category calculator is a pure function over the subset of trip
// fields it consumes. Inputs are coerced to non-negative numbers and the
// category total is rounded to two decimals at the point it is produced.

// Taxas: city tax + local guide tax + other taxes.
func TotalTaxas(v domain.Viagem) float64 {
	return Round2(Money(v.TaxaCidade) + Money(v.TaxaGuiaLocal) + Money(v.OutrasTaxasValor))
}

// Transporte: freight + parking.
func TotalDespesasTransporte(v domain.Viagem) float64 {
	return Round2(Money(v.Frete) + Money(v.Estacionamento))
}

// DespesasMotoristas returns the driver meal total, the displacement total
// and their sum.
func DespesasMotoristas(v domain.Viagem) (refeicoes, deslocamentos, total float64) {
	refeicoes = Round2(float64(Count(v.QtdeAlmocosMotoristas)+Count(v.QtdeJantasMotoristas)) * Money(v.RefeicaoMotoristaUnitario))
	deslocamentos = Round2(float64(Count(v.QtdeDeslocamentosMotoristas)) * Money(v.DeslocamentoMotoristaUnitario))
	total = Round2(refeicoes + deslocamentos)
	return refeicoes, deslocamentos, total
}

// Traslados: three fixed quantity x unit slots.
func TotalTraslados(v domain.Viagem) float64 {
	return Round2(
		float64(Count(v.QtdeTraslado1))*Money(v.Traslado1Valor) +
			float64(Count(v.QtdeTraslado2))*Money(v.Traslado2Valor) +
			float64(Count(v.QtdeTraslado3))*Money(v.Traslado3Valor))
}

// QtdeDiarias is the night count between departure and return. Valid pairs
// floor at one night (same-day trips still pay one); missing, unparseable
// or reversed dates yield zero rather than an error.
func QtdeDiarias(dataPartida, dataRetorno string) int {
	partida, err := time.Parse(dateLayout, dataPartida)
	if err != nil {
		return 0
	}
	retorno, err := time.Parse(dateLayout, dataRetorno)
	if err != nil {
		return 0
	}
	if retorno.Before(partida) {
		return 0
	}
	dias := int(retorno.Sub(partida).Hours() / 24)
	if dias < 1 {
		return 1
	}
	return dias
}

// Hospedagem: nights x unit rate x guests, plus extra services.
func DespesasHospedagem(v domain.Viagem, qtdeDiarias, qtdeHospedes int) (totalDiarias, totalHospedagem float64) {
	totalDiarias = Round2(float64(Count(qtdeDiarias)) * Money(v.ValorDiariaUnitario) * float64(Count(qtdeHospedes)))
	totalHospedagem = Round2(totalDiarias + Money(v.OutrosServicosValor))
	return totalDiarias, totalHospedagem
}

// Passeios: three fixed quantity x unit slots.
func TotalDespesasPasseios(v domain.Viagem) float64 {
	return Round2(
		float64(Count(v.QtdePasseios1))*Money(v.ValorPasseios1) +
			float64(Count(v.QtdePasseios2))*Money(v.ValorPasseios2) +
			float64(Count(v.QtdePasseios3))*Money(v.ValorPasseios3))
}

// DespesasBrindes: gift quantity defaults to the seat count unless the
// form set it explicitly; extras are three flat-value slots.
func DespesasBrindes(v domain.Viagem, qtdeAssentos int) (qtdeBrindes int, brindesTotal, totalBrindesEExtras float64) {
	qtdeBrindes = Count(v.QtdeBrindes)
	if qtdeBrindes == 0 {
		qtdeBrindes = Count(qtdeAssentos)
	}
	brindesTotal = Round2(float64(qtdeBrindes) * Money(v.BrindesUnitario))
	totalBrindesEExtras = Round2(brindesTotal + Money(v.Extras1Valor) + Money(v.Extras2Valor) + Money(v.Extras3Valor))
	return qtdeBrindes, brindesTotal, totalBrindesEExtras
}

// Sorteios: three fixed quantity x unit slots.
func TotalDespesasSorteios(v domain.Viagem) float64 {
	return Round2(
		float64(Count(v.Sorteio1Qtde))*Money(v.Sorteio1Valor) +
			float64(Count(v.Sorteio2Qtde))*Money(v.Sorteio2Valor) +
			float64(Count(v.Sorteio3Qtde))*Money(v.Sorteio3Valor))
}

// OutrasReceitas: three flat-value slots summed.
func TotalOutrasReceitas(v domain.Viagem) float64 {
	return Round2(Money(v.OutrasReceitas1Valor) + Money(v.OutrasReceitas2Valor) + Money(v.OutrasReceitas3Valor))
}
