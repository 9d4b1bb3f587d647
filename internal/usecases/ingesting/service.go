package ingesting

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/attribution-insights-api/infrastructure/repository"
	"github.com/vfg2006/attribution-insights-api/internal/domain"
	"github.com/vfg2006/attribution-insights-api/pkg/utils"
)

// Formatos de timestamp aceitos no CSV
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02",
}

// requiredColumns são as colunas obrigatórias do arquivo de touchpoints
var requiredColumns = []string{
	"customer_id",
	"touchpoint",
	"timestamp",
	"channel_cost",
	"channel_type",
	"is_conversion",
	"purchase_value",
}

// ImportSummary resume o resultado de uma importação
type ImportSummary struct {
	BatchID      string `json:"batch_id"`
	RowsImported int    `json:"rows_imported"`
	RowsSkipped  int    `json:"rows_skipped"`
	Replaced     bool   `json:"replaced"`
}

// Importer carrega arquivos CSV de touchpoints para o banco
type Importer interface {
	ImportCSV(ctx context.Context, reader io.Reader, replace bool) (*ImportSummary, error)
}

type Service struct {
	touchpointRepo repository.TouchpointRepository
}

func NewService(touchpointRepo repository.TouchpointRepository) Importer {
	return &Service{
		touchpointRepo: touchpointRepo,
	}
}

// ImportCSV lê um CSV de touchpoints e grava os registros no banco em lotes.
// Com replace = true os dados existentes são descartados antes da carga.
// Linhas malformadas são ignoradas e contabilizadas no resumo.
func (s *Service) ImportCSV(ctx context.Context, reader io.Reader, replace bool) (*ImportSummary, error) {
	batchID, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar ID do lote: %w", err)
	}

	csvReader := csv.NewReader(reader)
	csvReader.TrimLeadingSpace = true

	header, err := csvReader.Read()
	if err != nil {
		return nil, fmt.Errorf("erro ao ler cabeçalho do CSV: %w", err)
	}

	columns, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	summary := &ImportSummary{BatchID: batchID, Replaced: replace}
	touchpoints := make([]domain.Touchpoint, 0)

	for {
		record, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("erro ao ler linha do CSV: %w", err)
		}

		tp, err := parseRecord(record, columns)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"batch_id": batchID,
				"error":    err.Error(),
			}).Warn("Linha de touchpoint inválida, ignorando")
			summary.RowsSkipped++
			continue
		}

		touchpoints = append(touchpoints, tp)
	}

	if len(touchpoints) == 0 {
		return nil, fmt.Errorf("nenhum touchpoint válido encontrado no arquivo")
	}

	logrus.WithFields(logrus.Fields{
		"batch_id":   batchID,
		"total_rows": len(touchpoints),
		"replace":    replace,
	}).Info("Iniciando carga de touchpoints")

	if replace {
		err = s.touchpointRepo.ReplaceAll(ctx, touchpoints)
	} else {
		err = s.touchpointRepo.AppendBatch(ctx, touchpoints)
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao gravar touchpoints: %w", err)
	}

	summary.RowsImported = len(touchpoints)

	logrus.WithFields(logrus.Fields{
		"batch_id":      batchID,
		"rows_imported": summary.RowsImported,
		"rows_skipped":  summary.RowsSkipped,
	}).Info("Carga de touchpoints concluída")

	return summary, nil
}

func mapColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(strings.ToLower(name))] = i
	}

	for _, required := range requiredColumns {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("coluna obrigatória ausente no CSV: %s", required)
		}
	}

	return columns, nil
}

func parseRecord(record []string, columns map[string]int) (domain.Touchpoint, error) {
	field := func(name string) string {
		idx := columns[name]
		if idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	tp := domain.Touchpoint{
		CustomerID:  field("customer_id"),
		Channel:     field("touchpoint"),
		ChannelType: field("channel_type"),
	}

	if tp.CustomerID == "" {
		return tp, fmt.Errorf("customer_id vazio")
	}
	if tp.Channel == "" {
		return tp, fmt.Errorf("touchpoint vazio")
	}

	timestamp, err := parseTimestamp(field("timestamp"))
	if err != nil {
		return tp, err
	}
	tp.Timestamp = timestamp

	if tp.ChannelCost, err = parsePrice(field("channel_cost")); err != nil {
		return tp, fmt.Errorf("channel_cost inválido: %w", err)
	}
	if tp.PurchaseValue, err = parsePrice(field("purchase_value")); err != nil {
		return tp, fmt.Errorf("purchase_value inválido: %w", err)
	}

	isConversion := field("is_conversion")
	if isConversion != "" {
		tp.IsConversion, err = strconv.ParseBool(strings.ToLower(isConversion))
		if err != nil {
			return tp, fmt.Errorf("is_conversion inválido: %w", err)
		}
	}

	return tp, nil
}

func parseTimestamp(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("timestamp vazio")
	}

	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("timestamp em formato desconhecido: %s", value)
}

func parsePrice(value string) (float64, error) {
	if value == "" {
		return 0, nil
	}
	return strconv.ParseFloat(value, 64)
}
