package domain

// PriceKey identifica o preço de uma opção em um canal. Substitui as chaves
// compostas em string ("channelId-optionId") usadas pelo front antigo.
type PriceKey struct {
	ChannelID int64
	OptionID  int64
}

// ChannelOptionPrice é o preço unitário vigente de uma opção em um canal.
// Único por par (channel_id, option_id); gravação posterior substitui a anterior.
type ChannelOptionPrice struct {
	ChannelID int64 `json:"channel_id"`
	OptionID  int64 `json:"option_id"`
	Price     int64 `json:"price"`
}

// PriceMap indexa os preços vigentes por (canal, opção).
type PriceMap map[PriceKey]int64

// NewPriceMap monta o índice a partir das linhas da tabela de preços.
func NewPriceMap(prices []*ChannelOptionPrice) PriceMap {
	m := make(PriceMap, len(prices))
	for _, p := range prices {
		m[PriceKey{ChannelID: p.ChannelID, OptionID: p.OptionID}] = p.Price
	}
	return m
}

// Lookup retorna o preço vigente ou zero quando não cadastrado.
// Preço ausente nunca é erro nesta aplicação.
func (m PriceMap) Lookup(channelID, optionID int64) int64 {
	return m[PriceKey{ChannelID: channelID, OptionID: optionID}]
}
