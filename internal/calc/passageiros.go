package calc

import "github.com/SantoTourViagens/santo-tour-agency/internal/domain"

// ValorFaltaReceber derives the outstanding balance of a passenger payment
// plan: zero when the trip was paid cash up front, otherwise the trip price
// minus the down payment and every filled installment, floored at zero.
func ValorFaltaReceber(p domain.Passageiro) float64 {
	if p.PagamentoAVista {
		return 0
	}
	pago := Money(p.ValorSinal)
	for _, parcela := range p.Parcelas {
		pago += Money(parcela.Valor)
	}
	falta := Round2(Money(p.ValorViagem) - pago)
	if falta < 0 {
		return 0
	}
	return falta
}
