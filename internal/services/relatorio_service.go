package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/SantoTourViagens/santo-tour-agency/internal/domain"
	"github.com/SantoTourViagens/santo-tour-agency/internal/repositories"
)

// RelatorioService builds the financial summary listing and the per-trip
// PDF statement.
type RelatorioService struct {
	Viagens       repositories.ViagemRepository
	Adiantamentos repositories.AdiantamentoRepository
}

// ResumoViagem is one line of the financial summary report.
type ResumoViagem struct {
	ID              int64   `json:"id"`
	Destino         string  `json:"destino"`
	DataPartida     string  `json:"datapartida"`
	DataRetorno     string  `json:"dataretorno"`
	QtdePagantes    int     `json:"qtdepagantes"`
	DespesaTotal    float64 `json:"despesatotal"`
	PontoEquilibrio float64 `json:"pontoequilibrio"`
	PrecoSugerido   float64 `json:"precosugerido"`
	ReceitaTotal    float64 `json:"receitatotal"`
	LucroBruto      float64 `json:"lucrobruto"`
}

// ResumoTotais aggregates the summary lines.
type ResumoTotais struct {
	Viagens      int     `json:"viagens"`
	DespesaTotal float64 `json:"despesatotal"`
	ReceitaTotal float64 `json:"receitatotal"`
	LucroBruto   float64 `json:"lucrobruto"`
}

// Resumo lists every trip with its financial results plus grand totals.
func (s RelatorioService) Resumo() ([]ResumoViagem, ResumoTotais, error) {
	viagens, err := s.Viagens.List()
	if err != nil {
		return nil, ResumoTotais{}, err
	}

	linhas := make([]ResumoViagem, 0, len(viagens))
	var totais ResumoTotais
	for _, v := range viagens {
		linhas = append(linhas, ResumoViagem{
			ID:              v.ID,
			Destino:         v.Destino,
			DataPartida:     v.DataPartida,
			DataRetorno:     v.DataRetorno,
			QtdePagantes:    v.QtdePagantes,
			DespesaTotal:    v.DespesaTotal,
			PontoEquilibrio: v.PontoEquilibrio,
			PrecoSugerido:   v.PrecoSugerido,
			ReceitaTotal:    v.ReceitaTotal,
			LucroBruto:      v.LucroBruto,
		})
		totais.Viagens++
		totais.DespesaTotal += v.DespesaTotal
		totais.ReceitaTotal += v.ReceitaTotal
		totais.LucroBruto += v.LucroBruto
	}
	return linhas, totais, nil
}

// GeraExtratoPDF renders the trip statement: every expense category total,
// the financial results and, when present, the advance balances.
func (s RelatorioService) GeraExtratoPDF(viagemID int64) ([]byte, string, error) {
	v, err := s.Viagens.GetByID(viagemID)
	if err != nil {
		return nil, "", err
	}

	var adiant *domain.Adiantamento
	if a, err := s.Adiantamentos.GetByViagem(viagemID); err == nil {
		adiant = &a
	} else if !domain.IsNotFound(err) {
		return nil, "", err
	}

	return buildExtratoPDF(v, adiant)
}

func buildExtratoPDF(v domain.Viagem, adiant *domain.Adiantamento) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Extrato da Viagem", false)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, tr("EXTRATO DA VIAGEM"))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	cabecalho := []string{
		fmt.Sprintf("Viagem      : #%d - %s", v.ID, valueOr(v.Destino, "-")),
		fmt.Sprintf("Período     : %s a %s", valueOr(v.DataPartida, "-"), valueOr(v.DataRetorno, "-")),
		fmt.Sprintf("Veículo     : %s (%d assentos, %d pagantes)", valueOr(v.TipoVeiculo, "-"), v.QtdeAssentos, v.QtdePagantes),
		fmt.Sprintf("Emitido em  : %s", time.Now().Format("2006-01-02 15:04")),
	}
	for _, l := range cabecalho {
		pdf.Cell(0, 7, tr(l))
		pdf.Ln(7)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, tr("Despesas por categoria"))
	pdf.Ln(9)

	pdf.SetFont("Helvetica", "", 11)
	categorias := []struct {
		nome  string
		valor float64
	}{
		{"Taxas", v.TotalTaxas},
		{"Transporte", v.TotalDespesasTransporte},
		{"Motoristas", v.TotalDespesasMotoristas},
		{"Traslados", v.TotalTraslados},
		{"Hospedagem", v.TotalDespesasHospedagem},
		{"Passeios", v.TotalDespesasPasseios},
		{"Brindes e extras", v.TotalDespesasBrindesEExtras},
		{"Sorteios", v.TotalDespesasSorteios},
	}
	for _, cat := range categorias {
		pdf.Cell(120, 6, tr(cat.nome))
		pdf.CellFormat(50, 6, tr(formatReal(cat.valor)), "", 0, "R", false, 0, "")
		pdf.Ln(6)
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(120, 7, tr("Despesa total"))
	pdf.CellFormat(50, 7, tr(formatReal(v.DespesaTotal)), "T", 0, "R", false, 0, "")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, tr("Resultados"))
	pdf.Ln(9)

	pdf.SetFont("Helvetica", "", 11)
	resultados := []struct {
		nome  string
		valor float64
	}{
		{"Ponto de equilíbrio", v.PontoEquilibrio},
		{"Preço sugerido", v.PrecoSugerido},
		{"Receita total", v.ReceitaTotal},
		{"Outras receitas", v.TotalOutrasReceitas},
		{"Lucro bruto", v.LucroBruto},
	}
	for _, res := range resultados {
		pdf.Cell(120, 6, tr(res.nome))
		pdf.CellFormat(50, 6, tr(formatReal(res.valor)), "", 0, "R", false, 0, "")
		pdf.Ln(6)
	}

	if adiant != nil {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, tr("Adiantamentos"))
		pdf.Ln(9)

		pdf.SetFont("Helvetica", "", 11)
		pdf.Cell(70, 6, tr("Categoria"))
		pdf.CellFormat(40, 6, tr("Adiantado"), "", 0, "R", false, 0, "")
		pdf.CellFormat(40, 6, tr("Restante"), "", 0, "R", false, 0, "")
		pdf.Ln(7)

		avancos := []struct {
			nome     string
			valor    float64
			restante float64
		}{
			{"Taxas", adiant.AdiantTaxasValor, adiant.RestanteTaxas},
			{"Frete", adiant.AdiantFreteValor, adiant.RestanteFrete},
			{"Estacionamento", adiant.AdiantEstacionamentoValor, adiant.RestanteEstacionamento},
			{"Traslados", adiant.AdiantTrasladosValor, adiant.RestanteTraslados},
			{"Hospedagem", adiant.AdiantHospedagemValor, adiant.RestanteHospedagem},
			{"Passeios", adiant.AdiantPasseiosValor, adiant.RestantePasseios},
			{"Brindes", adiant.AdiantBrindesValor, adiant.RestanteBrindesExtras},
		}
		for _, av := range avancos {
			pdf.Cell(70, 6, tr(av.nome))
			pdf.CellFormat(40, 6, tr(formatReal(av.valor)), "", 0, "R", false, 0, "")
			pdf.CellFormat(40, 6, tr(formatReal(av.restante)), "", 0, "R", false, 0, "")
			pdf.Ln(6)
		}

		pdf.SetFont("Helvetica", "B", 11)
		pdf.Cell(70, 7, tr("Total"))
		pdf.CellFormat(40, 7, tr(formatReal(adiant.TotalAdiantamentos)), "T", 0, "R", false, 0, "")
		pdf.CellFormat(40, 7, tr(formatReal(adiant.RestanteTotal)), "T", 0, "R", false, 0, "")
		pdf.Ln(6)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("gerar pdf: %w", err)
	}
	filename := fmt.Sprintf("EXTRATO_%d_%s.pdf", v.ID, safeFilenamePart(v.Destino))
	return buf.Bytes(), filename, nil
}

func valueOr(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "NA"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")
	s = replacer.Replace(s)
	if len(s) > 40 {
		s = s[:40]
	}
	return s
}

// formatReal renders a float64 as pt-BR currency (R$ 1.234,56).
func formatReal(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	cents := int64(v*100 + 0.5)
	inteiro := cents / 100
	resto := cents % 100

	s := fmt.Sprintf("%d", inteiro)
	var out []byte
	n := len(s)
	for i := 0; i < n; i++ {
		out = append(out, s[i])
		pos := n - i - 1
		if pos > 0 && pos%3 == 0 {
			out = append(out, '.')
		}
	}
	valor := fmt.Sprintf("R$ %s,%02d", string(out), resto)
	if neg {
		return "-" + valor
	}
	return valor
}
