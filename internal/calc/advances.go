package calc

import "github.com/SantoTourViagens/santo-tour-agency/internal/domain"

// ViagemTotais is the slice of stored trip totals the advances form reads:
// one total per advance category plus the overall expense.
type ViagemTotais struct {
	Taxas          float64
	Frete          float64
	Estacionamento float64
	Traslados      float64
	Hospedagem     float64
	Passeios       float64
	Brindes        float64
	DespesaTotal   float64
}

// TotaisDaViagem projects the advance category totals out of a trip record.
func TotaisDaViagem(v domain.Viagem) ViagemTotais {
	return ViagemTotais{
		Taxas:          v.TotalTaxas,
		Frete:          v.Frete,
		Estacionamento: v.Estacionamento,
		Traslados:      v.TotalTraslados,
		Hospedagem:     v.TotalDespesasHospedagem,
		Passeios:       v.TotalDespesasPasseios,
		Brindes:        v.TotalDespesasBrindesEExtras,
		DespesaTotal:   v.DespesaTotal,
	}
}

// RecomputeAdiantamento rewrites every derived field of an advance record
// from the advance amounts and the stored trip totals: per category the
// remaining balance is total minus advance (kept negative when an advance
// overshoots, so the excess stays visible), and the aggregate remaining is
// the trip expense minus everything advanced.
func RecomputeAdiantamento(a domain.Adiantamento, t ViagemTotais) domain.Adiantamento {
	a.AdiantTaxasValor = Money(a.AdiantTaxasValor)
	a.AdiantFreteValor = Money(a.AdiantFreteValor)
	a.AdiantEstacionamentoValor = Money(a.AdiantEstacionamentoValor)
	a.AdiantTrasladosValor = Money(a.AdiantTrasladosValor)
	a.AdiantHospedagemValor = Money(a.AdiantHospedagemValor)
	a.AdiantPasseiosValor = Money(a.AdiantPasseiosValor)
	a.AdiantBrindesValor = Money(a.AdiantBrindesValor)

	a.ValorTaxasTotal = Round2(t.Taxas)
	a.ValorFreteTotal = Round2(t.Frete)
	a.ValorEstacionamentoTotal = Round2(t.Estacionamento)
	a.ValorTrasladosTotal = Round2(t.Traslados)
	a.ValorHospedagemTotal = Round2(t.Hospedagem)
	a.ValorPasseiosTotal = Round2(t.Passeios)
	a.ValorBrindesTotal = Round2(t.Brindes)

	a.RestanteTaxas = Round2(a.ValorTaxasTotal - a.AdiantTaxasValor)
	a.RestanteFrete = Round2(a.ValorFreteTotal - a.AdiantFreteValor)
	a.RestanteEstacionamento = Round2(a.ValorEstacionamentoTotal - a.AdiantEstacionamentoValor)
	a.RestanteTraslados = Round2(a.ValorTrasladosTotal - a.AdiantTrasladosValor)
	a.RestanteHospedagem = Round2(a.ValorHospedagemTotal - a.AdiantHospedagemValor)
	a.RestantePasseios = Round2(a.ValorPasseiosTotal - a.AdiantPasseiosValor)
	a.RestanteBrindesExtras = Round2(a.ValorBrindesTotal - a.AdiantBrindesValor)

	a.TotalAdiantamentos = Round2(
		a.AdiantTaxasValor +
			a.AdiantFreteValor +
			a.AdiantEstacionamentoValor +
			a.AdiantTrasladosValor +
			a.AdiantHospedagemValor +
			a.AdiantPasseiosValor +
			a.AdiantBrindesValor)
	a.TotalDespesas = Round2(t.DespesaTotal)
	a.RestanteTotal = Round2(a.TotalDespesas - a.TotalAdiantamentos)

	return a
}
