package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/attribution-insights-api/infrastructure/repository"
	"github.com/vfg2006/attribution-insights-api/internal/domain"
	"github.com/vfg2006/attribution-insights-api/internal/usecases/attributing"
	"github.com/vfg2006/attribution-insights-api/internal/usecases/reporting"
	"github.com/vfg2006/attribution-insights-api/pkg/apiErrors"
)

// ListModels retorna os modelos de atribuição suportados
func ListModels(service attributing.Attributor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"models": service.AvailableModels(),
		})
	}
}

// GetAttributionReport calcula o relatório de um modelo sob demanda
func GetAttributionReport(service attributing.Attributor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetAttributionReport")

		modelType, ok := modelFromRequest(w, r)
		if !ok {
			return
		}

		opts, ok := optionsFromRequest(w, r)
		if !ok {
			return
		}

		report, err := service.CalculateChannelMetrics(r.Context(), modelType, opts)
		if err != nil {
			logrus.WithError(err).WithField("model", modelType).Error("Erro ao calcular relatório de atribuição")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao calcular relatório de atribuição", nil)
			return
		}

		if report.TotalConversions == 0 {
			apiErrors.WriteError(w, apiErrors.ErrNoTouchpointData, "Nenhuma jornada com conversão encontrada", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(report)
	}
}

// GetAttributionSnapshot retorna o último snapshot persistido de um modelo
func GetAttributionSnapshot(results repository.AttributionResultRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetAttributionSnapshot")

		modelType, ok := modelFromRequest(w, r)
		if !ok {
			return
		}

		entries, err := results.GetByModel(r.Context(), modelType)
		if err != nil {
			logrus.WithError(err).WithField("model", modelType).Error("Erro ao consultar snapshot de atribuição")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar snapshot de atribuição", nil)
			return
		}

		if len(entries) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrSnapshotNotFound,
				fmt.Sprintf("Nenhum snapshot encontrado para o modelo %s", modelType), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"model_type": modelType,
			"channels":   entries,
		})
	}
}

// ExportAttribution exporta os relatórios de atribuição em XLSX ou CSV.
// Sem o parâmetro model, gera a planilha comparativa com todos os modelos;
// com model, gera o CSV daquele modelo.
func ExportAttribution(service reporting.Exporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ExportAttribution")

		opts, ok := optionsFromRequest(w, r)
		if !ok {
			return
		}

		var (
			content     []byte
			filename    string
			contentType string
			err         error
		)

		modelParam := r.URL.Query().Get("model")
		if modelParam == "" {
			content, filename, err = service.ExportComparisonWorkbook(r.Context(), opts)
			contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		} else {
			modelType := domain.ModelType(modelParam)
			if !modelType.Valid() {
				apiErrors.WriteError(w, apiErrors.ErrUnknownModel,
					fmt.Sprintf("Modelo de atribuição desconhecido: %s", modelParam), nil)
				return
			}
			content, filename, err = service.ExportModelCSV(r.Context(), modelType, opts)
			contentType = "text/csv"
		}

		if err != nil {
			logrus.WithError(err).Error("Erro ao gerar exportação de atribuição")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao gerar exportação", nil)
			return
		}

		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		w.Write(content)
	}
}

// modelFromRequest extrai e valida o modelo de atribuição da URL
func modelFromRequest(w http.ResponseWriter, r *http.Request) (domain.ModelType, bool) {
	modelParam := httprouter.ParamsFromContext(r.Context()).ByName("model")
	if modelParam == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Modelo de atribuição não especificado", nil)
		return "", false
	}

	modelType := domain.ModelType(modelParam)
	if !modelType.Valid() {
		apiErrors.WriteError(w, apiErrors.ErrUnknownModel,
			fmt.Sprintf("Modelo de atribuição desconhecido: %s", modelParam), nil)
		return "", false
	}

	return modelType, true
}

// optionsFromRequest monta as opções de cálculo a partir da query string
func optionsFromRequest(w http.ResponseWriter, r *http.Request) (*attributing.Options, bool) {
	opts := &attributing.Options{}

	if raw := r.URL.Query().Get("half_life_days"); raw != "" {
		halfLife, err := strconv.ParseFloat(raw, 64)
		if err != nil || halfLife <= 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat,
				"half_life_days deve ser um número maior que zero", nil)
			return nil, false
		}
		opts.HalfLifeDays = halfLife
	}

	return opts, true
}
