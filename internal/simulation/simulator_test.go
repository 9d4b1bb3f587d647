package simulation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/attribution-insights-api/internal/domain"
)

var simulationStart = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func TestGenerateDatasetIsDeterministic(t *testing.T) {
	first := NewSimulator(42).GenerateDataset(50, simulationStart)
	second := NewSimulator(42).GenerateDataset(50, simulationStart)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].CustomerID, second[i].CustomerID)
		assert.Equal(t, first[i].Channel, second[i].Channel)
		assert.True(t, first[i].Timestamp.Equal(second[i].Timestamp))
		assert.Equal(t, first[i].PurchaseValue, second[i].PurchaseValue)
	}
}

func TestGenerateDatasetDifferentSeeds(t *testing.T) {
	first := NewSimulator(1).GenerateDataset(50, simulationStart)
	second := NewSimulator(2).GenerateDataset(50, simulationStart)

	assert.NotEqual(t, first, second)
}

func TestGenerateDatasetIsSortedByTimestamp(t *testing.T) {
	touchpoints := NewSimulator(42).GenerateDataset(100, simulationStart)
	require.NotEmpty(t, touchpoints)

	for i := 1; i < len(touchpoints); i++ {
		assert.False(t, touchpoints[i].Timestamp.Before(touchpoints[i-1].Timestamp))
	}
}

func TestJourneysStartWithPaidChannel(t *testing.T) {
	touchpoints := NewSimulator(42).GenerateDataset(200, simulationStart)

	firstByCustomer := make(map[string]domain.Touchpoint)
	for _, tp := range touchpoints {
		existing, ok := firstByCustomer[tp.CustomerID]
		if !ok || tp.Timestamp.Before(existing.Timestamp) {
			firstByCustomer[tp.CustomerID] = tp
		}
	}

	require.Len(t, firstByCustomer, 200)
	for customerID, tp := range firstByCustomer {
		_, paid := paidChannels[tp.Channel]
		assert.True(t, paid, "primeiro touchpoint de %s deveria ser pago: %s", customerID, tp.Channel)
		assert.Equal(t, domain.ChannelTypePaid, tp.ChannelType)
	}
}

func TestConversionRows(t *testing.T) {
	touchpoints := NewSimulator(42).GenerateDataset(300, simulationStart)

	conversions := 0
	for _, tp := range touchpoints {
		if !tp.IsConversion {
			assert.Zero(t, tp.PurchaseValue)
			continue
		}

		conversions++
		assert.Equal(t, ConversionChannel, tp.Channel)
		assert.GreaterOrEqual(t, tp.PurchaseValue, purchaseValueMin)
		assert.LessOrEqual(t, tp.PurchaseValue, purchaseValueMax)
		assert.Zero(t, tp.ChannelCost)
	}

	// Com probabilidade de compra de 30% e recompras, uma fração razoável
	// dos clientes converte
	assert.Greater(t, conversions, 50)
	assert.Less(t, conversions, 300)
}

func TestChannelCosts(t *testing.T) {
	touchpoints := NewSimulator(7).GenerateDataset(100, simulationStart)

	for _, tp := range touchpoints {
		costs, paid := paidChannels[tp.Channel]
		if !paid {
			assert.Zero(t, tp.ChannelCost)
			continue
		}

		assert.Equal(t, domain.ChannelTypePaid, tp.ChannelType)
		assert.GreaterOrEqual(t, tp.ChannelCost, costs.min)
		assert.LessOrEqual(t, tp.ChannelCost, costs.max)
	}
}
