package models

// Product mirrors the wire shape of the store backend. The backend assigns
// IDs on creation, so a locally built Product carries an empty ID until the
// create response comes back.
type Product struct {
	ID          string  `json:"id,omitempty"`
	Name        string  `json:"nome"`
	Description string  `json:"descricao"`
	Price       float64 `json:"preco"`
	Stock       int     `json:"estoque"`
}

// Supplier mirrors the wire shape of the /fornecedores endpoints.
type Supplier struct {
	ID              string `json:"id,omitempty"`
	Name            string `json:"nome"`
	TaxID           string `json:"cnpj"`
	Address         string `json:"endereco"`
	SuppliedProduct string `json:"produtoFornecido"`
}
