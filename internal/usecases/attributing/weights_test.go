package attributing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/attribution-insights-api/internal/domain"
)

const weightEpsilon = 1e-9

func assertSumsToOne(t *testing.T, weights []float64) {
	t.Helper()

	total := 0.0
	for _, w := range weights {
		total += w
	}
	assert.InDelta(t, 1.0, total, weightEpsilon, "os pesos devem somar 1, obtido %v", weights)
}

func TestFirstTouchWeights(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		expected []float64
	}{
		{name: "jornada de um touchpoint", n: 1, expected: []float64{1.0}},
		{name: "jornada de quatro touchpoints", n: 4, expected: []float64{1.0, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			weights := firstTouchWeights(tt.n)
			assert.Equal(t, tt.expected, weights)
			assertSumsToOne(t, weights)
		})
	}
}

func TestLastTouchWeights(t *testing.T) {
	weights := lastTouchWeights(4)
	assert.Equal(t, []float64{0, 0, 0, 1.0}, weights)
	assertSumsToOne(t, weights)
}

func TestNthFromLastWeights(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		nth      int
		expected []float64
	}{
		{name: "penúltimo em jornada de quatro", n: 4, nth: 2, expected: []float64{0, 0, 1.0, 0}},
		{name: "antepenúltimo em jornada de cinco", n: 5, nth: 3, expected: []float64{0, 0, 1.0, 0, 0}},
		{name: "penúltimo equivale ao primeiro em jornada de dois", n: 2, nth: 2, expected: []float64{1.0, 0}},
		{name: "jornada mais curta que o necessário recua para o primeiro", n: 2, nth: 3, expected: []float64{1.0, 0}},
		{name: "jornada de um touchpoint", n: 1, nth: 3, expected: []float64{1.0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			weights := nthFromLastWeights(tt.n, tt.nth)
			assert.Equal(t, tt.expected, weights)
			assertSumsToOne(t, weights)
		})
	}
}

func TestLinearWeights(t *testing.T) {
	weights := linearWeights(4)
	for _, w := range weights {
		assert.InDelta(t, 0.25, w, weightEpsilon)
	}
	assertSumsToOne(t, weights)

	weights = linearWeights(3)
	for _, w := range weights {
		assert.InDelta(t, 1.0/3.0, w, weightEpsilon)
	}
	assertSumsToOne(t, weights)
}

func TestUShapedWeights(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		expected []float64
	}{
		{name: "jornada de um touchpoint recebe tudo", n: 1, expected: []float64{1.0}},
		{name: "jornada de dois normaliza extremos", n: 2, expected: []float64{0.5, 0.5}},
		{name: "jornada de três", n: 3, expected: []float64{0.40, 0.20, 0.40}},
		{name: "jornada de quatro", n: 4, expected: []float64{0.40, 0.10, 0.10, 0.40}},
		{name: "jornada de seis", n: 6, expected: []float64{0.40, 0.05, 0.05, 0.05, 0.05, 0.40}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			weights := uShapedWeights(tt.n, domain.UShapedWeights)
			assert.Len(t, weights, tt.n)
			for i, expected := range tt.expected {
				assert.InDelta(t, expected, weights[i], weightEpsilon, "posição %d", i)
			}
			assertSumsToOne(t, weights)
		})
	}
}

func TestWShapedWeights(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		expected []float64
	}{
		{name: "jornada de dois cai no modelo em U", n: 2, expected: []float64{0.5, 0.5}},
		{name: "jornada de três concentra o meio no lead", n: 3, expected: []float64{0.30, 0.40, 0.30}},
		{name: "jornada de cinco", n: 5, expected: []float64{0.30, 0.05, 0.30, 0.05, 0.30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			weights := wShapedWeights(tt.n, domain.WShapedWeights)
			assert.Len(t, weights, tt.n)
			for i, expected := range tt.expected {
				assert.InDelta(t, expected, weights[i], weightEpsilon, "posição %d", i)
			}
			assertSumsToOne(t, weights)
		})
	}
}

func TestWShapedWeightsExtremesAndLead(t *testing.T) {
	// Independente do tamanho, primeiro, lead e último recebem 30% cada
	for _, n := range []int{5, 7, 9} {
		weights := wShapedWeights(n, domain.WShapedWeights)
		assert.InDelta(t, 0.30, weights[0], weightEpsilon)
		assert.InDelta(t, 0.30, weights[n/2], weightEpsilon)
		assert.InDelta(t, 0.30, weights[n-1], weightEpsilon)
		assertSumsToOne(t, weights)
	}
}

func TestTimeDecayWeights(t *testing.T) {
	conversion := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	journey := &domain.Journey{
		CustomerID: "CUST_0001",
		Touchpoints: []domain.Touchpoint{
			{Channel: "Email", Timestamp: conversion.AddDate(0, 0, -14)},
			{Channel: "Social Media", Timestamp: conversion.AddDate(0, 0, -7)},
			{Channel: "Google Search", Timestamp: conversion.AddDate(0, 0, -1)},
		},
		ConversionTime: conversion,
	}

	weights := timeDecayWeights(journey, 7.0)
	assertSumsToOne(t, weights)

	// Touchpoints mais recentes recebem mais crédito
	assert.Greater(t, weights[1], weights[0])
	assert.Greater(t, weights[2], weights[1])

	// A 7 dias da conversão o peso bruto é metade do peso a 0 dias; a razão
	// sobrevive à normalização
	assert.InDelta(t, 2.0, weights[1]/weights[0], weightEpsilon)
}

func TestTimeDecayWeightsDefaultHalfLife(t *testing.T) {
	conversion := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	journey := &domain.Journey{
		Touchpoints: []domain.Touchpoint{
			{Channel: "Email", Timestamp: conversion.AddDate(0, 0, -7)},
			{Channel: "Direct", Timestamp: conversion},
		},
		ConversionTime: conversion,
	}

	// Meia-vida inválida cai no padrão de 7 dias
	weights := timeDecayWeights(journey, 0)
	assertSumsToOne(t, weights)
	assert.InDelta(t, 2.0, weights[1]/weights[0], weightEpsilon)
}

func TestTimeDecayWeightsTouchpointAfterConversion(t *testing.T) {
	conversion := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	// Timestamps posteriores à conversão são tratados como zero dias
	journey := &domain.Journey{
		Touchpoints: []domain.Touchpoint{
			{Channel: "Email", Timestamp: conversion.Add(2 * time.Hour)},
			{Channel: "Direct", Timestamp: conversion},
		},
		ConversionTime: conversion,
	}

	weights := timeDecayWeights(journey, 7.0)
	assertSumsToOne(t, weights)
	assert.InDelta(t, weights[0], weights[1], weightEpsilon)
}
