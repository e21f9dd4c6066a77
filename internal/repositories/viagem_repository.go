package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/SantoTourViagens/santo-tour-agency/internal/config"
	"github.com/SantoTourViagens/santo-tour-agency/internal/domain"
)

// ViagemRepository wraps DB access for the viagens table. The trip row is
// stored fully denormalized (inputs plus every derived total), so reads never
// need to rerun the calculation.
type ViagemRepository struct {
	DB *sql.DB
}

func (r ViagemRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return config.DB
}

// viagemCols lists every column except id, in the scan/exec order used below.
var viagemCols = []string{
	"destino", "cidadesvisitar", "datapartida", "dataretorno",

	"taxacidade", "taxaguialocal", "outrastaxasdescricao", "outrastaxasvalor",
	"totaltaxas", "taxasobservacao",

	"empresatransporte", "contatoempresa", "telefoneempresa", "tipoveiculo",
	"qtdeassentos", "qtdereservadosguias", "qtdepromocionais", "qtdenaopagantes",
	"qtdepagantes", "frete", "estacionamento", "totaldespesastransporte",

	"qtdemotoristas", "qtdealmocosmotoristas", "qtdejantasmotoristas",
	"refeicaomotoristaunitario", "totalrefeicaomotorista",
	"qtdedeslocamentosmotoristas", "deslocamentomotoristaunitario",
	"totaldeslocamentosmotoristas", "totaldespesasmotoristas", "motoristasobservacao",

	"traslado1descricao", "qtdetraslado1", "traslado1valor",
	"traslado2descricao", "qtdetraslado2", "traslado2valor",
	"traslado3descricao", "qtdetraslado3", "traslado3valor", "totaltraslados",

	"tipohospedagem", "qtdehospedes", "nomehospedagem", "contatohospedagem",
	"telefonehospedagem", "regimehospedagem", "qtdediarias", "valordiariaunitario",
	"totaldiarias", "outrosservicosdescricao", "outrosservicosvalor",
	"totaldespesashospedagem", "hospedagemobservacao",

	"qtdepasseios1", "descricaopasseios1", "valorpasseios1",
	"qtdepasseios2", "descricaopasseios2", "valorpasseios2",
	"qtdepasseios3", "descricaopasseios3", "valorpasseios3",
	"totaldespesaspasseios", "passeiosobservacao",

	"brindesdescricao", "qtdebrindes", "brindesunitario", "brindestotal",
	"extras1descricao", "extras1valor", "extras2descricao", "extras2valor",
	"extras3descricao", "extras3valor", "totaldespesasbrindeesextras",
	"brindeseextrasobservacao",

	"sorteio1descricao", "sorteio1qtde", "sorteio1valor",
	"sorteio2descricao", "sorteio2qtde", "sorteio2valor",
	"sorteio3descricao", "sorteio3qtde", "sorteio3valor", "totaldespesassorteios",

	"outrasreceitas1descricao", "outrasreceitas1valor",
	"outrasreceitas2descricao", "outrasreceitas2valor",
	"outrasreceitas3descricao", "outrasreceitas3valor",
	"totaloutrasreceitas", "outrasreceitasobservacao",

	"despesatotal", "pontoequilibrio", "precosugerido", "precomanual",
	"receitatotal", "lucrobruto",
}

// viagemFields returns pointers to v's fields in viagemCols order.
func viagemFields(v *domain.Viagem) []any {
	return []any{
		&v.Destino, &v.CidadesVisitar, &v.DataPartida, &v.DataRetorno,

		&v.TaxaCidade, &v.TaxaGuiaLocal, &v.OutrasTaxasDescricao, &v.OutrasTaxasValor,
		&v.TotalTaxas, &v.TaxasObservacao,

		&v.EmpresaTransporte, &v.ContatoEmpresa, &v.TelefoneEmpresa, &v.TipoVeiculo,
		&v.QtdeAssentos, &v.QtdeReservadosGuias, &v.QtdePromocionais, &v.QtdeNaoPagantes,
		&v.QtdePagantes, &v.Frete, &v.Estacionamento, &v.TotalDespesasTransporte,

		&v.QtdeMotoristas, &v.QtdeAlmocosMotoristas, &v.QtdeJantasMotoristas,
		&v.RefeicaoMotoristaUnitario, &v.TotalRefeicaoMotorista,
		&v.QtdeDeslocamentosMotoristas, &v.DeslocamentoMotoristaUnitario,
		&v.TotalDeslocamentosMotoristas, &v.TotalDespesasMotoristas, &v.MotoristasObservacao,

		&v.Traslado1Descricao, &v.QtdeTraslado1, &v.Traslado1Valor,
		&v.Traslado2Descricao, &v.QtdeTraslado2, &v.Traslado2Valor,
		&v.Traslado3Descricao, &v.QtdeTraslado3, &v.Traslado3Valor, &v.TotalTraslados,

		&v.TipoHospedagem, &v.QtdeHospedes, &v.NomeHospedagem, &v.ContatoHospedagem,
		&v.TelefoneHospedagem, &v.RegimeHospedagem, &v.QtdeDiarias, &v.ValorDiariaUnitario,
		&v.TotalDiarias, &v.OutrosServicosDescricao, &v.OutrosServicosValor,
		&v.TotalDespesasHospedagem, &v.HospedagemObservacao,

		&v.QtdePasseios1, &v.DescricaoPasseios1, &v.ValorPasseios1,
		&v.QtdePasseios2, &v.DescricaoPasseios2, &v.ValorPasseios2,
		&v.QtdePasseios3, &v.DescricaoPasseios3, &v.ValorPasseios3,
		&v.TotalDespesasPasseios, &v.PasseiosObservacao,

		&v.BrindesDescricao, &v.QtdeBrindes, &v.BrindesUnitario, &v.BrindesTotal,
		&v.Extras1Descricao, &v.Extras1Valor, &v.Extras2Descricao, &v.Extras2Valor,
		&v.Extras3Descricao, &v.Extras3Valor, &v.TotalDespesasBrindesEExtras,
		&v.BrindesEExtrasObservacao,

		&v.Sorteio1Descricao, &v.Sorteio1Qtde, &v.Sorteio1Valor,
		&v.Sorteio2Descricao, &v.Sorteio2Qtde, &v.Sorteio2Valor,
		&v.Sorteio3Descricao, &v.Sorteio3Qtde, &v.Sorteio3Valor, &v.TotalDespesasSorteios,

		&v.OutrasReceitas1Descricao, &v.OutrasReceitas1Valor,
		&v.OutrasReceitas2Descricao, &v.OutrasReceitas2Valor,
		&v.OutrasReceitas3Descricao, &v.OutrasReceitas3Valor,
		&v.TotalOutrasReceitas, &v.OutrasReceitasObservacao,

		&v.DespesaTotal, &v.PontoEquilibrio, &v.PrecoSugerido, &v.PrecoManual,
		&v.ReceitaTotal, &v.LucroBruto,
	}
}

// viagemValues returns v's field values in viagemCols order.
func viagemValues(v domain.Viagem) []any {
	ptrs := viagemFields(&v)
	vals := make([]any, len(ptrs))
	for i, p := range ptrs {
		switch t := p.(type) {
		case *string:
			vals[i] = *t
		case *int:
			vals[i] = *t
		case *float64:
			vals[i] = *t
		case *bool:
			vals[i] = *t
		}
	}
	return vals
}

func viagemSelect() string {
	return "SELECT id, " + strings.Join(viagemCols, ", ") + " FROM viagens"
}

func (r ViagemRepository) GetByID(id int64) (domain.Viagem, error) {
	var v domain.Viagem
	dest := append([]any{&v.ID}, viagemFields(&v)...)
	err := r.db().QueryRow(viagemSelect()+" WHERE id=?", id).Scan(dest...)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Viagem{}, domain.NotFoundError{Resource: "viagem", Err: err}
	}
	if err != nil {
		return domain.Viagem{}, fmt.Errorf("buscar viagem %d: %w", id, err)
	}
	return v, nil
}

func (r ViagemRepository) List() ([]domain.Viagem, error) {
	rows, err := r.db().Query(viagemSelect() + " ORDER BY datapartida DESC, id DESC")
	if err != nil {
		return nil, fmt.Errorf("listar viagens: %w", err)
	}
	defer rows.Close()

	out := []domain.Viagem{}
	for rows.Next() {
		var v domain.Viagem
		dest := append([]any{&v.ID}, viagemFields(&v)...)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("ler viagem: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r ViagemRepository) Create(v domain.Viagem) (domain.Viagem, error) {
	ph := strings.TrimSuffix(strings.Repeat("?,", len(viagemCols)), ",")
	res, err := r.db().Exec(
		"INSERT INTO viagens ("+strings.Join(viagemCols, ", ")+") VALUES ("+ph+")",
		viagemValues(v)...)
	if err != nil {
		return v, fmt.Errorf("inserir viagem: %w", err)
	}
	v.ID, _ = res.LastInsertId()
	return v, nil
}

func (r ViagemRepository) Update(v domain.Viagem) (domain.Viagem, error) {
	sets := make([]string, len(viagemCols))
	for i, c := range viagemCols {
		sets[i] = c + "=?"
	}
	args := append(viagemValues(v), v.ID)
	res, err := r.db().Exec("UPDATE viagens SET "+strings.Join(sets, ", ")+" WHERE id=?", args...)
	if err != nil {
		return v, fmt.Errorf("atualizar viagem: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByID(v.ID); err != nil {
			return v, err
		}
	}
	return v, nil
}

func (r ViagemRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM viagens WHERE id=?`, id)
	if err != nil {
		return fmt.Errorf("remover viagem: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "viagem"}
	}
	return nil
}
