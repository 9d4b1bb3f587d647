package attributing

import (
	"context"

	"github.com/vfg2006/attribution-insights-api/internal/domain"
)

// Options ajusta parâmetros de modelos específicos
type Options struct {
	// HalfLifeDays é a meia-vida do modelo time decay, em dias.
	// Zero usa o padrão (7 dias).
	HalfLifeDays float64
}

// Attributor calcula métricas de atribuição por canal para um modelo
type Attributor interface {
	// CalculateChannelMetrics calcula o relatório de atribuição completo de
	// um modelo a partir dos touchpoints armazenados
	CalculateChannelMetrics(ctx context.Context, modelType domain.ModelType, opts *Options) (*domain.AttributionReport, error)

	// AvailableModels retorna os modelos suportados
	AvailableModels() []domain.ModelType
}
