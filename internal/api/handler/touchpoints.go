package handler

import (
	"io"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/attribution-insights-api/infrastructure/repository"
	"github.com/vfg2006/attribution-insights-api/internal/usecases/ingesting"
	"github.com/vfg2006/attribution-insights-api/pkg/apiErrors"
)

// Limite de 32 MB para uploads de CSV
const maxImportSize = 32 << 20

// ImportTouchpoints carrega um CSV de touchpoints para o banco.
// Aceita multipart (campo "file") ou o CSV direto no corpo da requisição.
// Com replace=true, os touchpoints existentes são substituídos.
func ImportTouchpoints(service ingesting.Importer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ImportTouchpoints")

		reader, err := csvReaderFromRequest(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		replace := r.URL.Query().Get("replace") == "true"

		summary, err := service.ImportCSV(r.Context(), reader, replace)
		if err != nil {
			logrus.WithError(err).Error("Erro ao importar touchpoints")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		logrus.WithFields(logrus.Fields{
			"batch_id": summary.BatchID,
			"rows":     summary.RowsImported,
		}).Info("Importação de touchpoints concluída")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(summary)
	}
}

// GetTouchpointStats retorna contagens agregadas dos touchpoints carregados
func GetTouchpointStats(repo repository.TouchpointRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := repo.Stats(r.Context())
		if err != nil {
			logrus.WithError(err).Error("Erro ao consultar estatísticas de touchpoints")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar estatísticas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(stats)
	}
}

// csvReaderFromRequest extrai o conteúdo CSV da requisição
func csvReaderFromRequest(r *http.Request) (io.Reader, error) {
	contentType := r.Header.Get("Content-Type")

	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxImportSize); err != nil {
			return nil, errInvalidUpload
		}

		file, _, err := r.FormFile("file")
		if err != nil {
			return nil, errMissingFile
		}

		return file, nil
	}

	return http.MaxBytesReader(nil, r.Body, maxImportSize), nil
}

var (
	errInvalidUpload = &importRequestError{"upload multipart inválido"}
	errMissingFile   = &importRequestError{"campo de arquivo 'file' não encontrado"}
)

type importRequestError struct {
	msg string
}

func (e *importRequestError) Error() string {
	return e.msg
}
