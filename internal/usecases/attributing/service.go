package attributing

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/attribution-insights-api/infrastructure/repository"
	"github.com/vfg2006/attribution-insights-api/internal/domain"
	"github.com/vfg2006/attribution-insights-api/pkg/utils"
)

// Service implementa a interface Attributor sobre o repositório de
// touchpoints
type Service struct {
	touchpointRepo repository.TouchpointRepository

	// defaultHalfLifeDays é usado pelo modelo time decay quando a requisição
	// não informa uma meia-vida
	defaultHalfLifeDays float64
}

// NewService cria uma nova instância do serviço de atribuição
func NewService(touchpointRepo repository.TouchpointRepository, defaultHalfLifeDays float64) Attributor {
	return &Service{
		touchpointRepo:      touchpointRepo,
		defaultHalfLifeDays: defaultHalfLifeDays,
	}
}

func (s *Service) AvailableModels() []domain.ModelType {
	return domain.AllModelTypes()
}

// channelAccumulator acumula o crédito de um canal durante a agregação
type channelAccumulator struct {
	weight             float64
	revenue            float64
	convertingCustomer map[string]struct{}
}

// CalculateChannelMetrics calcula o relatório de atribuição de um modelo.
// O crédito fracionário de cada jornada é calculado pela fórmula do modelo e
// agregado por canal; canais sem nenhuma jornada convertida aparecem no
// relatório com crédito zero.
func (s *Service) CalculateChannelMetrics(
	ctx context.Context,
	modelType domain.ModelType,
	opts *Options,
) (*domain.AttributionReport, error) {
	if !modelType.Valid() {
		return nil, fmt.Errorf("modelo de atribuição não suportado: %s", modelType)
	}

	if opts == nil {
		opts = &Options{}
	}

	journeys, err := s.touchpointRepo.ListConvertingJourneys(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar jornadas: %w", err)
	}

	channelStats, err := s.touchpointRepo.ChannelStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar estatísticas de canais: %w", err)
	}

	accumulators := make(map[string]*channelAccumulator)
	totalConversionValue := 0.0

	for _, journey := range journeys {
		if journey.Length() == 0 {
			// Conversão sem nenhum touchpoint registrado: não há canal para
			// receber o crédito
			logrus.WithField("customer_id", journey.CustomerID).
				Debug("Jornada convertida sem touchpoints, ignorando")
			continue
		}

		totalConversionValue += journey.ConversionValue

		weights := s.journeyWeights(modelType, journey, opts)
		for i, tp := range journey.Touchpoints {
			acc, ok := accumulators[tp.Channel]
			if !ok {
				acc = &channelAccumulator{convertingCustomer: make(map[string]struct{})}
				accumulators[tp.Channel] = acc
			}
			acc.weight += weights[i]
			acc.revenue += weights[i] * journey.ConversionValue
			acc.convertingCustomer[journey.CustomerID] = struct{}{}
		}
	}

	totalWeight := 0.0
	totalAttributedRevenue := 0.0
	for _, acc := range accumulators {
		totalWeight += acc.weight
		totalAttributedRevenue += acc.revenue
	}

	// Reescala as receitas atribuídas para que a soma dos canais seja igual
	// ao valor total convertido
	revenueScale := 1.0
	if totalAttributedRevenue > 0 {
		revenueScale = totalConversionValue / totalAttributedRevenue
	}

	channels := make([]*domain.ChannelMetrics, 0, len(channelStats))
	for _, cs := range channelStats {
		metrics := &domain.ChannelMetrics{
			Channel:          cs.Channel,
			TotalAppearances: cs.TotalAppearances,
			TotalCost:        utils.RoundWithTwoDecimalPlace(cs.TotalCost),
		}

		if acc, ok := accumulators[cs.Channel]; ok {
			if totalWeight > 0 {
				metrics.AttributionPercentage = acc.weight / totalWeight
			}
			metrics.AttributedConversions = acc.weight
			metrics.AttributedRevenue = utils.RoundWithTwoDecimalPlace(acc.revenue * revenueScale)
			metrics.SuccessRate = domain.CalculateSuccessRate(len(acc.convertingCustomer), cs.TotalAppearances)
		}

		metrics.ROI = domain.CalculateROI(metrics.AttributedRevenue, metrics.TotalCost)
		metrics.CPA = domain.CalculateCPA(metrics.TotalCost, metrics.AttributedConversions)

		channels = append(channels, metrics)
	}

	sort.SliceStable(channels, func(i, j int) bool {
		if channels[i].AttributionPercentage != channels[j].AttributionPercentage {
			return channels[i].AttributionPercentage > channels[j].AttributionPercentage
		}
		return channels[i].Channel < channels[j].Channel
	})

	return &domain.AttributionReport{
		ModelType:            modelType,
		GeneratedAt:          time.Now().UTC(),
		TotalConversions:     len(journeys),
		TotalConversionValue: utils.RoundWithTwoDecimalPlace(totalConversionValue),
		Channels:             channels,
	}, nil
}

// journeyWeights calcula o crédito fracionário de cada touchpoint de uma
// jornada segundo o modelo escolhido. Os pesos retornados somam 1.
func (s *Service) journeyWeights(modelType domain.ModelType, journey *domain.Journey, opts *Options) []float64 {
	n := journey.Length()

	switch modelType {
	case domain.ModelFirstTouch:
		return firstTouchWeights(n)
	case domain.ModelLastTouch:
		return lastTouchWeights(n)
	case domain.ModelSecondToLast:
		return nthFromLastWeights(n, 2)
	case domain.ModelThirdToLast:
		return nthFromLastWeights(n, 3)
	case domain.ModelLinear:
		return linearWeights(n)
	case domain.ModelUShaped:
		return uShapedWeights(n, domain.UShapedWeights)
	case domain.ModelWShaped:
		return wShapedWeights(n, domain.WShapedWeights)
	case domain.ModelTimeDecay:
		halfLife := opts.HalfLifeDays
		if halfLife <= 0 {
			halfLife = s.defaultHalfLifeDays
		}
		return timeDecayWeights(journey, halfLife)
	default:
		// Valid() já barrou modelos desconhecidos
		return make([]float64, n)
	}
}
