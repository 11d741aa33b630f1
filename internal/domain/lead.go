package domain

const (
	LeadStatusNew   = "new"
	LeadStatusSaved = "saved"
)

// BusinessLead é um contato comercial produzido pela busca de prospecção.
// O ID é gerado localmente (timestamp + índice) e vale apenas para a sessão.
type BusinessLead struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Address string   `json:"address"`
	Rating  *float64 `json:"rating"`
	Phone   *string  `json:"phone"`
	Website *string  `json:"website"`
	Status  string   `json:"status"`
}
