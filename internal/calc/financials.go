package calc

// MargemLucro is the fixed margin applied over the break-even point to
// produce the suggested price.
const MargemLucro = 0.15

// Financials is the derived money block of a trip.
type Financials struct {
	PontoEquilibrio float64
	PrecoSugerido   float64
	ReceitaTotal    float64
	LucroBruto      float64
}

// CalcFinancials derives break-even, suggested price, total revenue and
// gross profit from the aggregated expense, the paying passenger count and
// the other-revenue total. Zero pagantes yields a zero break-even (and so
// a zero suggested price) instead of a division error. Rounding happens at
// every step, so downstream values build on the already-rounded ones.
func CalcFinancials(despesaTotal float64, qtdePagantes int, totalOutrasReceitas float64) Financials {
	despesa := Money(despesaTotal)
	pagantes := Count(qtdePagantes)
	outras := Money(totalOutrasReceitas)

	pontoEquilibrio := 0.0
	if pagantes > 0 {
		pontoEquilibrio = Round2(despesa / float64(pagantes))
	}

	precoSugerido := Round2(pontoEquilibrio * (1 + MargemLucro))
	receitaTotal := Round2(float64(pagantes) * precoSugerido)
	lucroBruto := Round2(receitaTotal + outras - despesa)

	return Financials{
		PontoEquilibrio: pontoEquilibrio,
		PrecoSugerido:   precoSugerido,
		ReceitaTotal:    receitaTotal,
		LucroBruto:      lucroBruto,
	}
}

// RecalcWithPrice recomputes revenue and gross profit from a user-chosen
// price. Break-even and total expense are left to the caller untouched.
func RecalcWithPrice(precoCustomizado float64, qtdePagantes int, despesaTotal, totalOutrasReceitas float64) (receitaTotal, lucroBruto float64) {
	preco := Money(precoCustomizado)
	pagantes := Count(qtdePagantes)

	receitaTotal = Round2(float64(pagantes) * preco)
	lucroBruto = Round2(receitaTotal + Money(totalOutrasReceitas) - Money(despesaTotal))
	return receitaTotal, lucroBruto
}
