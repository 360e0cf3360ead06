package checkout

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/storebench/ecommerce-api/internal/catalog"
)

// ErrCardDataRequired indica pagamento com cartão sem os dados do cartão
var ErrCardDataRequired = errors.New("Dados do cartão obrigatórios para pagamento com cartão")

// creditCardFactor aplica o desconto fixo de 5% para pagamento com cartão
var creditCardFactor = decimal.NewFromFloat(0.95)

// UseCase computa totais de pedido a partir do catálogo. O desconto e as
// pré-condições vivem aqui para que REST e GraphQL produzam exatamente os
// mesmos totais e a mesma taxonomia de erros.
type UseCase struct {
	catalog catalog.Repository
}

// NewUseCase cria uma nova instância de UseCase
func NewUseCase(catalogRepo catalog.Repository) *UseCase {
	return &UseCase{catalog: catalogRepo}
}

// CalculateTotal acumula preço unitário × quantidade na ordem dos itens,
// soma o frete, aplica 5% de desconto se o pagamento for credit_card e
// arredonda para 2 casas decimais (half-up). Falha com ErrProductNotFound
// no primeiro item cujo produto não exista, sem resultado parcial.
func (uc *UseCase) CalculateTotal(ctx context.Context, items []Item, freight float64, paymentMethod string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, item := range items {
		product, err := uc.catalog.FindByID(ctx, item.ProductID)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	total = total.Add(decimal.NewFromFloat(freight))

	if paymentMethod == PaymentCreditCard {
		total = total.Mul(creditCardFactor)
	}

	return total.Round(2), nil
}

// Checkout valida as pré-condições e monta o resultado do pedido.
// Pagamento com cartão sem cardData falha com ErrCardDataRequired antes de
// qualquer cálculo de preço.
func (uc *UseCase) Checkout(ctx context.Context, userID int, items []Item, freight float64, paymentMethod string, cardData *CardData) (*Result, error) {
	if paymentMethod == PaymentCreditCard && cardData == nil {
		return nil, ErrCardDataRequired
	}

	total, err := uc.CalculateTotal(ctx, items, freight, paymentMethod)
	if err != nil {
		return nil, err
	}

	totalValue, _ := total.Float64()
	return &Result{
		UserID:        userID,
		Items:         items,
		Freight:       freight,
		PaymentMethod: paymentMethod,
		Total:         totalValue,
	}, nil
}
