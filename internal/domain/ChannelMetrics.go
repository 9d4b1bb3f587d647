package domain

import (
	"time"

	"github.com/vfg2006/attribution-insights-api/pkg/utils"
)

// ChannelMetrics agrega o crédito de conversão atribuído a um canal de
// marketing por um modelo de atribuição
type ChannelMetrics struct {
	Channel               string  `json:"channel"`
	AttributionPercentage float64 `json:"attribution_percentage"`
	AttributedConversions float64 `json:"attributed_conversions"`
	TotalAppearances      int     `json:"total_appearances"`
	SuccessRate           float64 `json:"success_rate"`
	TotalCost             float64 `json:"total_cost"`
	AttributedRevenue     float64 `json:"attributed_revenue"`
	ROI                   float64 `json:"roi"`
	CPA                   float64 `json:"cpa"`
}

// AttributionReport é o resultado completo de um modelo: uma linha de
// métricas por canal, ordenada por percentual de atribuição decrescente
type AttributionReport struct {
	ModelType            ModelType         `json:"model_type"`
	GeneratedAt          time.Time         `json:"generated_at"`
	TotalConversions     int               `json:"total_conversions"`
	TotalConversionValue float64           `json:"total_conversion_value"`
	Channels             []*ChannelMetrics `json:"channels"`
}

// ChannelByName procura as métricas de um canal no relatório
func (r *AttributionReport) ChannelByName(channel string) *ChannelMetrics {
	for _, c := range r.Channels {
		if c.Channel == channel {
			return c
		}
	}
	return nil
}

// CalculateROI calcula o retorno sobre investimento de um canal:
// (receita atribuída - custo) / custo. Canais sem custo retornam 0 em vez
// de dividir por zero.
func CalculateROI(attributedRevenue, totalCost float64) float64 {
	if totalCost <= 0 {
		return 0
	}
	return utils.RoundWithTwoDecimalPlace((attributedRevenue - totalCost) / totalCost)
}

// CalculateCPA calcula o custo por aquisição de um canal:
// custo / conversões atribuídas. Canais sem conversões retornam 0.
func CalculateCPA(totalCost, attributedConversions float64) float64 {
	if attributedConversions <= 0 {
		return 0
	}
	return utils.RoundWithTwoDecimalPlace(totalCost / attributedConversions)
}

// CalculateSuccessRate calcula a taxa de sucesso de um canal: clientes que
// converteram tendo passado pelo canal / total de clientes que passaram
func CalculateSuccessRate(customersWithConversions, totalAppearances int) float64 {
	if totalAppearances <= 0 {
		return 0
	}
	return float64(customersWithConversions) / float64(totalAppearances)
}
