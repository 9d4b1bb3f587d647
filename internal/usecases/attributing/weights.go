package attributing

import (
	"math"

	"github.com/vfg2006/attribution-insights-api/internal/domain"
)

const hoursPerDay = 24.0

// firstTouchWeights atribui 100% do crédito ao primeiro touchpoint
func firstTouchWeights(n int) []float64 {
	weights := make([]float64, n)
	if n > 0 {
		weights[0] = 1.0
	}
	return weights
}

// lastTouchWeights atribui 100% do crédito ao último touchpoint
func lastTouchWeights(n int) []float64 {
	weights := make([]float64, n)
	if n > 0 {
		weights[n-1] = 1.0
	}
	return weights
}

// nthFromLastWeights atribui 100% do crédito ao enésimo touchpoint contado a
// partir do fim (nth = 1 equivale ao last touch). Jornadas mais curtas que o
// necessário recuam para o primeiro touchpoint.
func nthFromLastWeights(n, nth int) []float64 {
	weights := make([]float64, n)
	if n == 0 {
		return weights
	}

	idx := n - nth
	if idx < 0 {
		idx = 0
	}
	weights[idx] = 1.0
	return weights
}

// linearWeights divide o crédito igualmente entre todos os touchpoints
func linearWeights(n int) []float64 {
	weights := make([]float64, n)
	if n == 0 {
		return weights
	}

	share := 1.0 / float64(n)
	for i := range weights {
		weights[i] = share
	}
	return weights
}

// uShapedWeights aplica o modelo em U: peso cheio no primeiro e no último
// touchpoint e o restante dividido igualmente entre os do meio
func uShapedWeights(n int, cfg domain.PositionWeights) []float64 {
	weights := make([]float64, n)

	switch {
	case n == 0:
		return weights
	case n == 1:
		weights[0] = 1.0
		return weights
	case n == 2:
		// Sem touchpoints no meio: normaliza primeiro e último para somar 1
		total := cfg.First + cfg.Last
		weights[0] = cfg.First / total
		weights[1] = cfg.Last / total
		return weights
	}

	middleShare := cfg.Middle / float64(n-2)
	for i := range weights {
		weights[i] = middleShare
	}
	weights[0] = cfg.First
	weights[n-1] = cfg.Last
	return weights
}

// wShapedWeights aplica o modelo em W: primeiro, último e o touchpoint
// central ("lead") recebem os pesos cheios; os demais touchpoints do meio
// dividem o que sobra do peso do meio
func wShapedWeights(n int, cfg domain.PositionWeights) []float64 {
	if n <= 2 {
		return uShapedWeights(n, cfg)
	}

	weights := make([]float64, n)
	leadIdx := n / 2
	leadWeight := cfg.First // o lead recebe o mesmo peso dos extremos

	if n == 3 {
		// O lead é o único touchpoint do meio e absorve todo o peso do meio
		weights[0] = cfg.First
		weights[1] = cfg.Middle
		weights[2] = cfg.Last
		return weights
	}

	otherMiddles := n - 3
	middleShare := (cfg.Middle - leadWeight) / float64(otherMiddles)
	for i := 1; i < n-1; i++ {
		weights[i] = middleShare
	}
	weights[0] = cfg.First
	weights[leadIdx] = leadWeight
	weights[n-1] = cfg.Last
	return weights
}

// timeDecayWeights atribui crédito proporcional a 2^(-dias/meia-vida), de
// forma que touchpoints mais próximos da conversão recebem mais crédito. Os
// pesos são normalizados para somar 1 dentro da jornada.
func timeDecayWeights(journey *domain.Journey, halfLifeDays float64) []float64 {
	n := len(journey.Touchpoints)
	weights := make([]float64, n)
	if n == 0 {
		return weights
	}

	if halfLifeDays <= 0 {
		halfLifeDays = domain.DefaultHalfLifeDays
	}

	total := 0.0
	for i, tp := range journey.Touchpoints {
		daysBefore := journey.ConversionTime.Sub(tp.Timestamp).Hours() / hoursPerDay
		if daysBefore < 0 {
			daysBefore = 0
		}
		decay := math.Pow(2, -daysBefore/halfLifeDays)
		weights[i] = decay
		total += decay
	}

	for i := range weights {
		weights[i] /= total
	}
	return weights
}
