package domain

// Adiantamento tracks partial pre-payments per expense category of one trip.
// The valor*total and restante* fields are derived from the stored trip
// totals on every write; only the "para" and "valor" pairs are user input.
type Adiantamento struct {
	ID       int64 `json:"id"`
	ViagemID int64 `json:"viagemId"`

	// Taxas
	AdiantTaxasPara  string  `json:"adianttaxaspara"`
	AdiantTaxasValor float64 `json:"adianttaxasvalor"`
	ValorTaxasTotal  float64 `json:"valortaxastotal"`
	RestanteTaxas    float64 `json:"restantetaxas"`

	// Frete
	AdiantFretePara  string  `json:"adiantfretepara"`
	AdiantFreteValor float64 `json:"adiantfretevalor"`
	ValorFreteTotal  float64 `json:"valorfretetotal"`
	RestanteFrete    float64 `json:"restantefrete"`

	// Estacionamento
	AdiantEstacionamentoPara  string  `json:"adiantestacionamentopara"`
	AdiantEstacionamentoValor float64 `json:"adiantestacionamentovalor"`
	ValorEstacionamentoTotal  float64 `json:"valorestacionamentototal"`
	RestanteEstacionamento    float64 `json:"restanteestacionamento"`

	// Traslados
	AdiantTrasladosPara  string  `json:"adianttrasladospara"`
	AdiantTrasladosValor float64 `json:"adianttrasladosvalor"`
	ValorTrasladosTotal  float64 `json:"valortrasladostotal"`
	RestanteTraslados    float64 `json:"restantetraslados"`

	// Hospedagem
	AdiantHospedagemPara  string  `json:"adianthospedagempara"`
	AdiantHospedagemValor float64 `json:"adianthospedagemvalor"`
	ValorHospedagemTotal  float64 `json:"valorhospedagemtotal"`
	RestanteHospedagem    float64 `json:"restantehospedagem"`

	// Passeios
	AdiantPasseiosPara  string  `json:"adiantpasseiospara"`
	AdiantPasseiosValor float64 `json:"adiantpasseiosvalor"`
	ValorPasseiosTotal  float64 `json:"valorpasseiostotal"`
	RestantePasseios    float64 `json:"restantepasseios"`

	// Brindes e extras
	AdiantBrindesPara     string  `json:"adiantbrindespara"`
	AdiantBrindesValor    float64 `json:"adiantbrindesvalor"`
	ValorBrindesTotal     float64 `json:"valorbrindestotal"`
	RestanteBrindesExtras float64 `json:"restantebrindeseextras"`

	// Totais
	TotalDespesas      float64 `json:"totaldespesas"`
	TotalAdiantamentos float64 `json:"totaladiantamentos"`
	RestanteTotal      float64 `json:"restantetotal"`
}
