package domain

import (
	"time"
)

// Tipos de canal de marketing
const (
	ChannelTypePaid    = "paid"
	ChannelTypeOrganic = "organic"
)

// Touchpoint representa uma interação de um cliente com um canal de marketing.
// Registros de conversão (IsConversion = true) carregam o valor da compra e
// não pertencem a nenhum canal.
type Touchpoint struct {
	ID            int64     `json:"id"`
	CustomerID    string    `json:"customer_id"`
	Channel       string    `json:"channel"`
	Timestamp     time.Time `json:"timestamp"`
	ChannelCost   float64   `json:"channel_cost"`
	ChannelType   string    `json:"channel_type"`
	IsConversion  bool      `json:"is_conversion"`
	PurchaseValue float64   `json:"purchase_value"`
}

// Journey é a sequência ordenada de touchpoints de um cliente que converteu.
// Touchpoints não inclui o evento de conversão e está ordenado por timestamp
// crescente.
type Journey struct {
	CustomerID      string       `json:"customer_id"`
	Touchpoints     []Touchpoint `json:"touchpoints"`
	ConversionTime  time.Time    `json:"conversion_time"`
	ConversionValue float64      `json:"conversion_value"`
}

// Length retorna o número de touchpoints da jornada (sem a conversão)
func (j *Journey) Length() int {
	return len(j.Touchpoints)
}

// ChannelStats agrega aparições e custo por canal, incluindo canais de
// clientes que nunca converteram
type ChannelStats struct {
	Channel          string  `json:"channel"`
	TotalAppearances int     `json:"total_appearances"`
	TotalCost        float64 `json:"total_cost"`
}

// TouchpointStats resume o conteúdo da tabela de touchpoints
type TouchpointStats struct {
	TotalRows            int     `json:"total_rows"`
	TotalCustomers       int     `json:"total_customers"`
	TotalConversions     int     `json:"total_conversions"`
	TotalConversionValue float64 `json:"total_conversion_value"`
}
