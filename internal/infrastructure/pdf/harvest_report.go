// Package pdf implementa a geração do relatório de colheita (romaneio) em PDF.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Fazenda  │  Relatório de Colheita + período        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Data | Cultura | Talhão | Placa | Bruto | Tara |   │
//	│          Líquido                                             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMO: cargas / total líquido / área / kg/ha / sc/ha      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jprezende/AgroGestor-api/internal/application/harvest"
	"github.com/jprezende/AgroGestor-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 34, Green: 102, Blue: 51}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// HarvestReportGenerator gera o relatório de colheita usando Maroto v2.
type HarvestReportGenerator struct{}

// NewHarvestReportGenerator constrói o gerador.
func NewHarvestReportGenerator() *HarvestReportGenerator { return &HarvestReportGenerator{} }

// GenerateHarvestReport gera o PDF com as cargas e o resumo, e devolve os bytes.
func (g *HarvestReportGenerator) GenerateHarvestReport(
	farm *entity.Farm,
	loads []*entity.HarvestLoad,
	summary *harvest.Summary,
	from, to *time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório de Colheita", true).
		WithAuthor(farm.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(farm, from, to))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableLoadRows(loads) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(summaryRows(summary)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nome da fazenda (esq) e título + período (dir).
func headerRow(farm *entity.Farm, from, to *time.Time) core.Row {
	periodo := "Todas as datas"
	if from != nil && to != nil {
		periodo = from.Format("02/01/2006") + " a " + to.Format("02/01/2006")
	} else if from != nil {
		periodo = "A partir de " + from.Format("02/01/2006")
	} else if to != nil {
		periodo = "Até " + to.Format("02/01/2006")
	}

	return row.New(18).Add(
		col.New(7).Add(
			text.New(farm.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(farm.City+" - "+farm.State, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("RELATÓRIO DE COLHEITA", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Período: "+periodo, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabeçalho da tabela de cargas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Data", 1, align.Left),
		h("Cultura", 2, align.Left),
		h("Talhão", 2, align.Left),
		h("Placa", 1, align.Center),
		h("Ticket", 1, align.Center),
		h("Bruto (kg)", 2, align.Right),
		h("Tara (kg)", 1, align.Right),
		h("Líquido (kg)", 2, align.Right),
	)
}

// tableLoadRows: uma linha por carga de colheita.
func tableLoadRows(loads []*entity.HarvestLoad) []core.Row {
	result := make([]core.Row, 0, len(loads))
	for _, l := range loads {
		result = append(result, row.New(6).Add(
			col.New(1).Add(text.New(
				l.Date.Format("02/01"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				l.Crop,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				nonEmpty(l.FieldName, "—"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				nonEmpty(l.Plate, "—"),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(1).Add(text.New(
				nonEmpty(l.TicketNumber, "—"),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				l.GrossKg.StringFixed(0),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				l.TareKg.StringFixed(0),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				l.NetKg.StringFixed(0),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// summaryRows: bloco de totais e produtividade.
func summaryRows(s *harvest.Summary) []core.Row {
	label := func(t string) core.Component {
		return text.New(t, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(t string) core.Component {
		return text.New(t, props.Text{Size: 9, Align: align.Right, Right: 1})
	}

	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("RESUMO", props.Text{
				Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1,
			}),
		)),
		row.New(6).Add(
			col.New(6).Add(label("Cargas:")),
			col.New(6).Add(value(fmt.Sprintf("%d", s.Loads))),
		),
		row.New(6).Add(
			col.New(6).Add(label("Total líquido (kg):")),
			col.New(6).Add(value(s.TotalNetKg.StringFixed(0))),
		),
	}
	if s.ReferenceAreaHa.IsPositive() {
		rows = append(rows,
			row.New(6).Add(
				col.New(6).Add(label("Área de referência (ha):")),
				col.New(6).Add(value(s.ReferenceAreaHa.StringFixed(2))),
			),
			row.New(6).Add(
				col.New(6).Add(label("Produtividade (kg/ha):")),
				col.New(6).Add(value(s.YieldKgPerHa.StringFixed(2))),
			),
			row.New(6).Add(
				col.New(6).Add(label("Produtividade (sc/ha):")),
				col.New(6).Add(value(s.YieldSacksPerHa.StringFixed(2))),
			),
		)
	}
	return rows
}

func nonEmpty(s, fallback string) string {
	if s != "" && s != " - " {
		return s
	}
	return fallback
}
