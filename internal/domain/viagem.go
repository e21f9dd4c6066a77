package domain

// Tipos de veículo aceitos pelo formulário de viagens. A capacidade de
// assentos é derivada deste enum por tabela fixa, nunca editada pelo usuário.
const (
	VeiculoOnibus      = "Ônibus"
	VeiculoSemiLeito   = "Semi Leito"
	VeiculoMicroonibus = "Microônibus"
	VeiculoVan         = "Van"
	VeiculoCarro       = "Carro"
)

var TiposVeiculo = []string{VeiculoOnibus, VeiculoSemiLeito, VeiculoMicroonibus, VeiculoVan, VeiculoCarro}

var TiposHospedagem = []string{"Hostel", "Pousada", "Hotel", "Casa", "Chácara"}

var RegimesHospedagem = []string{"Pernoite", "Café da Manhã", "Meia Pensão", "Pensão Completa"}

// Viagem is the flat trip record shared by the form, the calculation engine
// and persistence. Field names keep the legacy lowercase schema so stored
// rows stay compatible. Derived fields are always rewritten by the engine;
// precomanual marks that precosugerido was edited by hand and must not be
// overwritten by the automatic derivation.
type Viagem struct {
	ID int64 `json:"id"`

	// Informações gerais
	Destino        string `json:"destino"`
	CidadesVisitar string `json:"cidadesvisitar"`
	DataPartida    string `json:"datapartida"` // YYYY-MM-DD
	DataRetorno    string `json:"dataretorno"` // YYYY-MM-DD

	// Taxas
	TaxaCidade           float64 `json:"taxacidade"`
	TaxaGuiaLocal        float64 `json:"taxaguialocal"`
	OutrasTaxasDescricao string  `json:"outrastaxasdescricao"`
	OutrasTaxasValor     float64 `json:"outrastaxasvalor"`
	TotalTaxas           float64 `json:"totaltaxas"`
	TaxasObservacao      string  `json:"taxasobservacao"`

	// Transporte
	EmpresaTransporte       string  `json:"empresatransporte"`
	ContatoEmpresa          string  `json:"contatoempresa"`
	TelefoneEmpresa         string  `json:"telefoneempresa"`
	TipoVeiculo             string  `json:"tipoveiculo"`
	QtdeAssentos            int     `json:"qtdeassentos"`
	QtdeReservadosGuias     int     `json:"qtdereservadosguias"`
	QtdePromocionais        int     `json:"qtdepromocionais"`
	QtdeNaoPagantes         int     `json:"qtdenaopagantes"`
	QtdePagantes            int     `json:"qtdepagantes"`
	Frete                   float64 `json:"frete"`
	Estacionamento          float64 `json:"estacionamento"`
	TotalDespesasTransporte float64 `json:"totaldespesastransporte"`

	// Motoristas
	QtdeMotoristas                int     `json:"qtdemotoristas"`
	QtdeAlmocosMotoristas         int     `json:"qtdealmocosmotoristas"`
	QtdeJantasMotoristas          int     `json:"qtdejantasmotoristas"`
	RefeicaoMotoristaUnitario     float64 `json:"refeicaomotoristaunitario"`
	TotalRefeicaoMotorista        float64 `json:"totalrefeicaomotorista"`
	QtdeDeslocamentosMotoristas   int     `json:"qtdedeslocamentosmotoristas"`
	DeslocamentoMotoristaUnitario float64 `json:"deslocamentomotoristaunitario"`
	TotalDeslocamentosMotoristas  float64 `json:"totaldeslocamentosmotoristas"`
	TotalDespesasMotoristas       float64 `json:"totaldespesasmotoristas"`
	MotoristasObservacao          string  `json:"motoristasobservacao"`

	// Traslados
	Traslado1Descricao string  `json:"traslado1descricao"`
	QtdeTraslado1      int     `json:"qtdetraslado1"`
	Traslado1Valor     float64 `json:"traslado1valor"`
	Traslado2Descricao string  `json:"traslado2descricao"`
	QtdeTraslado2      int     `json:"qtdetraslado2"`
	Traslado2Valor     float64 `json:"traslado2valor"`
	Traslado3Descricao string  `json:"traslado3descricao"`
	QtdeTraslado3      int     `json:"qtdetraslado3"`
	Traslado3Valor     float64 `json:"traslado3valor"`
	TotalTraslados     float64 `json:"totaltraslados"`

	// Hospedagem
	TipoHospedagem          string  `json:"tipohospedagem"`
	QtdeHospedes            int     `json:"qtdehospedes"`
	NomeHospedagem          string  `json:"nomehospedagem"`
	ContatoHospedagem       string  `json:"contatohospedagem"`
	TelefoneHospedagem      string  `json:"telefonehospedagem"`
	RegimeHospedagem        string  `json:"regimehospedagem"`
	QtdeDiarias             int     `json:"qtdediarias"`
	ValorDiariaUnitario     float64 `json:"valordiariaunitario"`
	TotalDiarias            float64 `json:"totaldiarias"`
	OutrosServicosDescricao string  `json:"outrosservicosdescricao"`
	OutrosServicosValor     float64 `json:"outrosservicosvalor"`
	TotalDespesasHospedagem float64 `json:"totaldespesashospedagem"`
	HospedagemObservacao    string  `json:"hospedagemobservacao"`

	// Passeios
	QtdePasseios1         int     `json:"qtdepasseios1"`
	DescricaoPasseios1    string  `json:"descricaopasseios1"`
	ValorPasseios1        float64 `json:"valorpasseios1"`
	QtdePasseios2         int     `json:"qtdepasseios2"`
	DescricaoPasseios2    string  `json:"descricaopasseios2"`
	ValorPasseios2        float64 `json:"valorpasseios2"`
	QtdePasseios3         int     `json:"qtdepasseios3"`
	DescricaoPasseios3    string  `json:"descricaopasseios3"`
	ValorPasseios3        float64 `json:"valorpasseios3"`
	TotalDespesasPasseios float64 `json:"totaldespesaspasseios"`
	PasseiosObservacao    string  `json:"passeiosobservacao"`

	// Brindes e extras
	BrindesDescricao            string  `json:"brindesdescricao"`
	QtdeBrindes                 int     `json:"qtdebrindes"`
	BrindesUnitario             float64 `json:"brindesunitario"`
	BrindesTotal                float64 `json:"brindestotal"`
	Extras1Descricao            string  `json:"extras1descricao"`
	Extras1Valor                float64 `json:"extras1valor"`
	Extras2Descricao            string  `json:"extras2descricao"`
	Extras2Valor                float64 `json:"extras2valor"`
	Extras3Descricao            string  `json:"extras3descricao"`
	Extras3Valor                float64 `json:"extras3valor"`
	TotalDespesasBrindesEExtras float64 `json:"totaldespesasbrindeesextras"`
	BrindesEExtrasObservacao    string  `json:"brindeseextrasobservacao"`

	// Sorteios
	Sorteio1Descricao     string  `json:"sorteio1descricao"`
	Sorteio1Qtde          int     `json:"sorteio1qtde"`
	Sorteio1Valor         float64 `json:"sorteio1valor"`
	Sorteio2Descricao     string  `json:"sorteio2descricao"`
	Sorteio2Qtde          int     `json:"sorteio2qtde"`
	Sorteio2Valor         float64 `json:"sorteio2valor"`
	Sorteio3Descricao     string  `json:"sorteio3descricao"`
	Sorteio3Qtde          int     `json:"sorteio3qtde"`
	Sorteio3Valor         float64 `json:"sorteio3valor"`
	TotalDespesasSorteios float64 `json:"totaldespesassorteios"`

	// Outras receitas
	OutrasReceitas1Descricao string  `json:"outrasreceitas1descricao"`
	OutrasReceitas1Valor     float64 `json:"outrasreceitas1valor"`
	OutrasReceitas2Descricao string  `json:"outrasreceitas2descricao"`
	OutrasReceitas2Valor     float64 `json:"outrasreceitas2valor"`
	OutrasReceitas3Descricao string  `json:"outrasreceitas3descricao"`
	OutrasReceitas3Valor     float64 `json:"outrasreceitas3valor"`
	TotalOutrasReceitas      float64 `json:"totaloutrasreceitas"`
	OutrasReceitasObservacao string  `json:"outrasreceitasobservacao"`

	// Resultados
	DespesaTotal    float64 `json:"despesatotal"`
	PontoEquilibrio float64 `json:"pontoequilibrio"`
	PrecoSugerido   float64 `json:"precosugerido"`
	PrecoManual     bool    `json:"precomanual"`
	ReceitaTotal    float64 `json:"receitatotal"`
	LucroBruto      float64 `json:"lucrobruto"`
}
