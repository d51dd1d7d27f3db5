package domain

// Product representa um produto vendável. A unidade real de venda é a opção.
type Product struct {
	ID   int64  `json:"id"`
	Name string `json:"product_name"`
}

// ProductOption representa uma variação comprável de um produto
// (tamanho, cor etc.), a unidade de venda e de precificação.
type ProductOption struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"product_id"`
	Name      string `json:"option_name"`
}

// Catalog agrupa os dados de referência que as páginas de entrada carregam.
type Catalog struct {
	Channels []*Channel       `json:"channels"`
	Products []*Product       `json:"products"`
	Options  []*ProductOption `json:"options"`
}
