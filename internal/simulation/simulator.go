package simulation

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/vfg2006/attribution-insights-api/internal/domain"
	"github.com/vfg2006/attribution-insights-api/pkg/utils"
)

// ConversionChannel é o nome do pseudo-canal dos eventos de conversão
const ConversionChannel = "Purchase"

// costRange delimita o custo por interação de um canal pago
type costRange struct {
	min float64
	max float64
}

// paidChannels e seus custos por interação
var paidChannels = map[string]costRange{
	"Facebook Ad":   {min: 2.0, max: 5.0},
	"Google Search": {min: 1.5, max: 4.0},
	"Instagram Ad":  {min: 2.5, max: 6.0},
	"YouTube Ad":    {min: 3.0, max: 7.0},
}

var organicChannels = []string{
	"Website Visit",
	"Email Newsletter",
	"Discount Code Email",
	"Recommend a Friend",
	"Blog Post View",
	"Product Review",
}

// Parâmetros do valor de compra (normal truncada)
const (
	purchaseValueMin  = 50.0
	purchaseValueMax  = 500.0
	purchaseValueMean = 150.0
	purchaseValueStd  = 75.0

	purchaseProbability = 0.3
	repeatProbability   = 0.2
)

// Simulator gera jornadas sintéticas de clientes para popular o banco de
// touchpoints em ambientes de desenvolvimento e demonstração
type Simulator struct {
	rng *rand.Rand

	paidList []string
	allList  []string
}

func NewSimulator(seed int64) *Simulator {
	paidList := make([]string, 0, len(paidChannels))
	for channel := range paidChannels {
		paidList = append(paidList, channel)
	}
	// A iteração de mapas é aleatória; ordena para que a mesma seed produza
	// o mesmo dataset
	sort.Strings(paidList)

	allList := append(append([]string{}, paidList...), organicChannels...)

	return &Simulator{
		rng:      rand.New(rand.NewSource(seed)),
		paidList: paidList,
		allList:  allList,
	}
}

// GenerateDataset gera as jornadas de numCustomers clientes a partir de
// startDate, ordenadas por timestamp
func (s *Simulator) GenerateDataset(numCustomers int, startDate time.Time) []domain.Touchpoint {
	touchpoints := make([]domain.Touchpoint, 0, numCustomers*5)

	for i := 1; i <= numCustomers; i++ {
		customerID := fmt.Sprintf("CUST_%04d", i)
		customerStart := startDate.AddDate(0, 0, s.rng.Intn(30))
		touchpoints = append(touchpoints, s.generateJourney(customerID, customerStart)...)
	}

	sort.SliceStable(touchpoints, func(a, b int) bool {
		return touchpoints[a].Timestamp.Before(touchpoints[b].Timestamp)
	})

	return touchpoints
}

// generateJourney gera uma jornada de 3 a 7 touchpoints; apenas canais pagos
// aparecem como primeiro touchpoint. Clientes que compram têm 20% de chance
// de iniciar uma nova jornada de recompra semanas depois.
func (s *Simulator) generateJourney(customerID string, start time.Time) []domain.Touchpoint {
	journeyLength := 3 + s.rng.Intn(5)
	willPurchase := s.rng.Float64() < purchaseProbability

	journey := make([]domain.Touchpoint, 0, journeyLength+1)
	current := start

	for i := 0; i < journeyLength; i++ {
		current = current.Add(time.Duration(1+s.rng.Intn(47)) * time.Hour)

		var channel string
		if i == 0 {
			channel = s.paidList[s.rng.Intn(len(s.paidList))]
		} else {
			channel = s.allList[s.rng.Intn(len(s.allList))]
		}

		channelType := domain.ChannelTypeOrganic
		if _, paid := paidChannels[channel]; paid {
			channelType = domain.ChannelTypePaid
		}

		journey = append(journey, domain.Touchpoint{
			CustomerID:  customerID,
			Channel:     channel,
			Timestamp:   current,
			ChannelCost: s.channelCost(channel),
			ChannelType: channelType,
		})
	}

	if willPurchase {
		current = current.Add(time.Duration(1+s.rng.Intn(23)) * time.Hour)
		journey = append(journey, domain.Touchpoint{
			CustomerID:    customerID,
			Channel:       ConversionChannel,
			Timestamp:     current,
			IsConversion:  true,
			PurchaseValue: s.purchaseValue(),
		})

		if s.rng.Float64() < repeatProbability {
			repeatStart := current.AddDate(0, 0, 15+s.rng.Intn(30))
			journey = append(journey, s.generateJourney(customerID, repeatStart)...)
		}
	}

	return journey
}

func (s *Simulator) channelCost(channel string) float64 {
	costs, paid := paidChannels[channel]
	if !paid {
		return 0
	}
	return utils.RoundWithTwoDecimalPlace(costs.min + s.rng.Float64()*(costs.max-costs.min))
}

// purchaseValue amostra de uma normal truncada em [50, 500]
func (s *Simulator) purchaseValue() float64 {
	value := s.rng.NormFloat64()*purchaseValueStd + purchaseValueMean
	if value < purchaseValueMin {
		value = purchaseValueMin
	}
	if value > purchaseValueMax {
		value = purchaseValueMax
	}
	return utils.RoundWithTwoDecimalPlace(value)
}
