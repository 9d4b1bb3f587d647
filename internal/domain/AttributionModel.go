package domain

import (
	"time"
)

// ModelType identifica um modelo de atribuição suportado
type ModelType string

const (
	ModelFirstTouch   ModelType = "first_touch"
	ModelLastTouch    ModelType = "last_touch"
	ModelSecondToLast ModelType = "second_to_last"
	ModelThirdToLast  ModelType = "third_to_last"
	ModelLinear       ModelType = "linear"
	ModelUShaped      ModelType = "u_shaped"
	ModelWShaped      ModelType = "w_shaped"
	ModelTimeDecay    ModelType = "time_decay"
)

// DefaultHalfLifeDays é a meia-vida padrão do modelo time decay, em dias
const DefaultHalfLifeDays = 7.0

// AllModelTypes retorna todos os modelos suportados, na ordem de exibição
// dos relatórios
func AllModelTypes() []ModelType {
	return []ModelType{
		ModelFirstTouch,
		ModelLastTouch,
		ModelSecondToLast,
		ModelThirdToLast,
		ModelLinear,
		ModelUShaped,
		ModelWShaped,
		ModelTimeDecay,
	}
}

// Valid verifica se o tipo de modelo é suportado
func (m ModelType) Valid() bool {
	for _, known := range AllModelTypes() {
		if m == known {
			return true
		}
	}
	return false
}

// PositionWeights configura os pesos dos modelos posicionais (U e W).
// First e Last são os pesos do primeiro e do último touchpoint; Middle é o
// peso total distribuído igualmente entre os touchpoints do meio.
type PositionWeights struct {
	First  float64 `json:"first"`
	Last   float64 `json:"last"`
	Middle float64 `json:"middle"`
}

var (
	// UShapedWeights: 40% primeiro, 40% último, 20% dividido entre o meio
	UShapedWeights = PositionWeights{First: 0.4, Last: 0.4, Middle: 0.2}

	// WShapedWeights: 30% primeiro, 30% último e 40% para o meio, sendo que
	// o touchpoint central ("lead") recebe 30% e o restante do meio divide
	// os 10% que sobram
	WShapedWeights = PositionWeights{First: 0.3, Last: 0.3, Middle: 0.4}
)

// AttributionResultEntry representa um snapshot persistido de métricas de um
// canal para um modelo, armazenado na tabela attribution_results
type AttributionResultEntry struct {
	ID        int64           `json:"id"`
	ModelType ModelType       `json:"model_type"`
	Channel   string          `json:"channel"`
	Metrics   *ChannelMetrics `json:"metrics"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
