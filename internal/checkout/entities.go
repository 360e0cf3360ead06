package checkout

// Métodos de pagamento aceitos (valores de wire)
const (
	PaymentBoleto     = "boleto"
	PaymentCreditCard = "credit_card"
)

// Item representa um item de um pedido dentro de uma requisição de checkout
type Item struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

// CardData carrega os dados do cartão, obrigatórios quando o pagamento é
// credit_card
type CardData struct {
	Number string `json:"number"`
	Name   string `json:"name"`
	Expiry string `json:"expiry"`
	CVV    string `json:"cvv"`
}

// Result é o resultado computado de um checkout. Nenhum pedido é persistido:
// o resultado existe apenas na resposta.
type Result struct {
	UserID        int     `json:"userId"`
	Items         []Item  `json:"items"`
	Freight       float64 `json:"freight"`
	PaymentMethod string  `json:"paymentMethod"`
	Total         float64 `json:"total"`
}
