package domain

// Formas de pagamento aceitas no cadastro de passageiros.
var FormasPagamento = []string{"Dinheiro", "Crédito", "Débito", "PIX"}

// MaxParcelas is the fixed installment slot count of the payment plan
// (sinal + parcelas 2..12).
const MaxParcelas = 12

// Passageiro links a client to a trip with boarding data and a payment plan.
// valorfaltareceber is derived: zero for cash-up-front, otherwise the trip
// price minus the down payment and every filled installment.
type Passageiro struct {
	ID       int64 `json:"id"`
	ViagemID int64 `json:"idviagem"`

	NomeViagem  string  `json:"nomeviagem"`
	ValorViagem float64 `json:"valorviagem"`
	DataViagem  string  `json:"dataviagem"` // YYYY-MM-DD

	CPFPassageiro              string `json:"cpfpassageiro"`
	NomePassageiro             string `json:"nomepassageiro"`
	TelefonePassageiro         string `json:"telefonepassageiro"`
	BairroPassageiro           string `json:"bairropassageiro"`
	CidadePassageiro           string `json:"cidadepassageiro"`
	LocalEmbarquePassageiro    string `json:"localembarquepassageiro"`
	EnderecoEmbarquePassageiro string `json:"enderecoembarquepassageiro"`
	PassageiroIndicadoPor      string `json:"passageiroindicadopor"`

	PagamentoAVista      bool    `json:"pagamentoavista"`
	DataPagamentoAVista  string  `json:"datapagamentoavista"`
	FormaPagamentoAVista string  `json:"formapagamentoavista"`
	ValorFaltaReceber    float64 `json:"valorfaltareceber"`

	DataSinal  string  `json:"datasinal"`
	ValorSinal float64 `json:"valorsinal"`

	Parcelas [MaxParcelas - 1]Parcela `json:"parcelas"`
}

// Parcela is one installment slot (parcela 2..12 in the legacy schema).
type Parcela struct {
	Data  string  `json:"data"` // YYYY-MM-DD, empty when unused
	Valor float64 `json:"valor"`
}
