package domain

// Channel representa um canal de venda (marketplace ou loja própria),
// cada um com sua própria tabela de preços.
type Channel struct {
	ID   int64  `json:"id"`
	Name string `json:"channel_name"`
}

// UnassignedChannel é o rótulo usado no relatório para métricas sem canal resolvido.
const UnassignedChannel = "Outros"
