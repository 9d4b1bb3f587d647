package reporting

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/360EntSecGroup-Skylar/excelize/v2"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/attribution-insights-api/internal/domain"
	"github.com/vfg2006/attribution-insights-api/internal/usecases/attributing"
)

// displayNames mapeia modelos para os títulos das planilhas
var displayNames = map[domain.ModelType]string{
	domain.ModelFirstTouch:   "First Touch",
	domain.ModelLastTouch:    "Last Touch",
	domain.ModelSecondToLast: "Second To Last",
	domain.ModelThirdToLast:  "Third To Last",
	domain.ModelLinear:       "Linear",
	domain.ModelUShaped:      "U-Shaped",
	domain.ModelWShaped:      "W-Shaped",
	domain.ModelTimeDecay:    "Time Decay",
}

var reportHeader = []string{
	"channel",
	"attribution_percentage",
	"attributed_conversions",
	"total_appearances",
	"success_rate",
	"total_cost",
	"attributed_revenue",
	"roi",
	"cpa",
}

// Exporter gera exportações dos relatórios de atribuição
type Exporter interface {
	// ExportComparisonWorkbook calcula todos os modelos e monta uma planilha
	// XLSX com uma aba por modelo e uma aba de resumo comparativo
	ExportComparisonWorkbook(ctx context.Context, opts *attributing.Options) ([]byte, string, error)

	// ExportModelCSV exporta o relatório de um único modelo em CSV
	ExportModelCSV(ctx context.Context, modelType domain.ModelType, opts *attributing.Options) ([]byte, string, error)
}

type Service struct {
	attributor attributing.Attributor
}

func NewService(attributor attributing.Attributor) Exporter {
	return &Service{
		attributor: attributor,
	}
}

func (s *Service) ExportComparisonWorkbook(ctx context.Context, opts *attributing.Options) ([]byte, string, error) {
	file := excelize.NewFile()

	reports := make([]*domain.AttributionReport, 0, len(s.attributor.AvailableModels()))
	for _, modelType := range s.attributor.AvailableModels() {
		report, err := s.attributor.CalculateChannelMetrics(ctx, modelType, opts)
		if err != nil {
			return nil, "", fmt.Errorf("erro ao calcular modelo %s: %w", modelType, err)
		}
		reports = append(reports, report)

		sheet := displayNames[modelType]
		file.NewSheet(sheet)
		if err := writeReportSheet(file, sheet, report); err != nil {
			return nil, "", fmt.Errorf("erro ao escrever aba %s: %w", sheet, err)
		}
	}

	if err := writeSummarySheet(file, reports); err != nil {
		return nil, "", fmt.Errorf("erro ao escrever aba de resumo: %w", err)
	}

	// Remove a aba padrão criada pelo excelize
	file.DeleteSheet("Sheet1")

	buffer, err := file.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("erro ao gerar arquivo XLSX: %w", err)
	}

	filename := fmt.Sprintf("attribution_comparison_%s.xlsx", time.Now().UTC().Format("20060102_150405"))

	logrus.WithFields(logrus.Fields{
		"filename": filename,
		"models":   len(reports),
	}).Info("Exportação XLSX de atribuição gerada")

	return buffer.Bytes(), filename, nil
}

func (s *Service) ExportModelCSV(ctx context.Context, modelType domain.ModelType, opts *attributing.Options) ([]byte, string, error) {
	report, err := s.attributor.CalculateChannelMetrics(ctx, modelType, opts)
	if err != nil {
		return nil, "", err
	}

	var buffer bytes.Buffer
	writer := csv.NewWriter(&buffer)

	if err := writer.Write(reportHeader); err != nil {
		return nil, "", fmt.Errorf("erro ao escrever cabeçalho do CSV: %w", err)
	}

	for _, c := range report.Channels {
		record := []string{
			c.Channel,
			formatFloat(c.AttributionPercentage),
			formatFloat(c.AttributedConversions),
			strconv.Itoa(c.TotalAppearances),
			formatFloat(c.SuccessRate),
			formatFloat(c.TotalCost),
			formatFloat(c.AttributedRevenue),
			formatFloat(c.ROI),
			formatFloat(c.CPA),
		}
		if err := writer.Write(record); err != nil {
			return nil, "", fmt.Errorf("erro ao escrever linha do CSV: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, "", fmt.Errorf("erro ao finalizar CSV: %w", err)
	}

	filename := fmt.Sprintf("%s_results_%s.csv", modelType, time.Now().UTC().Format("20060102_150405"))
	return buffer.Bytes(), filename, nil
}

func writeReportSheet(file *excelize.File, sheet string, report *domain.AttributionReport) error {
	for col, title := range reportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := file.SetCellValue(sheet, cell, title); err != nil {
			return err
		}
	}

	for row, c := range report.Channels {
		values := []interface{}{
			c.Channel,
			c.AttributionPercentage,
			c.AttributedConversions,
			c.TotalAppearances,
			c.SuccessRate,
			c.TotalCost,
			c.AttributedRevenue,
			c.ROI,
			c.CPA,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}

	return nil
}

// writeSummarySheet monta a aba comparativa: uma linha por canal com o
// percentual de atribuição e o ROI de cada modelo lado a lado
func writeSummarySheet(file *excelize.File, reports []*domain.AttributionReport) error {
	const sheet = "Summary"
	file.NewSheet(sheet)

	// Canais na ordem do primeiro relatório; os demais relatórios cobrem o
	// mesmo conjunto de canais
	if len(reports) == 0 {
		return nil
	}

	if err := file.SetCellValue(sheet, "A1", "channel"); err != nil {
		return err
	}

	col := 2
	for _, report := range reports {
		name := displayNames[report.ModelType]

		cell, err := excelize.CoordinatesToCellName(col, 1)
		if err != nil {
			return err
		}
		if err := file.SetCellValue(sheet, cell, name+" Attribution %"); err != nil {
			return err
		}

		cell, err = excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := file.SetCellValue(sheet, cell, name+" ROI"); err != nil {
			return err
		}

		col += 2
	}

	totalCostCol := col
	cell, err := excelize.CoordinatesToCellName(totalCostCol, 1)
	if err != nil {
		return err
	}
	if err := file.SetCellValue(sheet, cell, "Total Cost"); err != nil {
		return err
	}

	for row, channel := range reports[0].Channels {
		cell, err := excelize.CoordinatesToCellName(1, row+2)
		if err != nil {
			return err
		}
		if err := file.SetCellValue(sheet, cell, channel.Channel); err != nil {
			return err
		}

		col = 2
		for _, report := range reports {
			metrics := report.ChannelByName(channel.Channel)
			if metrics == nil {
				metrics = &domain.ChannelMetrics{}
			}

			cell, err := excelize.CoordinatesToCellName(col, row+2)
			if err != nil {
				return err
			}
			if err := file.SetCellValue(sheet, cell, metrics.AttributionPercentage); err != nil {
				return err
			}

			cell, err = excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := file.SetCellValue(sheet, cell, metrics.ROI); err != nil {
				return err
			}

			col += 2
		}

		cell, err = excelize.CoordinatesToCellName(totalCostCol, row+2)
		if err != nil {
			return err
		}
		if err := file.SetCellValue(sheet, cell, channel.TotalCost); err != nil {
			return err
		}
	}

	return nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
