package domain

// Cliente is the registry record used to pre-fill passenger forms by CPF.
type Cliente struct {
	ID               int64  `json:"id"`
	CPF              string `json:"cpf"`
	Nome             string `json:"nome"`
	Telefone         string `json:"telefone"`
	DataNascimento   string `json:"datanascimento"` // YYYY-MM-DD
	Bairro           string `json:"bairro"`
	Cidade           string `json:"cidade"`
	LocalEmbarque    string `json:"localembarque"`
	EnderecoEmbarque string `json:"enderecoembarque"`
	IndicadoPor      string `json:"indicadopor"` // CPF de quem indicou
}
