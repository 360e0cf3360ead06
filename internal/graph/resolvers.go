package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/storebench/ecommerce-api/internal/auth"
	"github.com/storebench/ecommerce-api/internal/checkout"
	"github.com/storebench/ecommerce-api/internal/users"
)

// authPayload é a forma canônica da resposta de login, idêntica nas duas
// superfícies
type authPayload struct {
	User  users.PublicUser `json:"user"`
	Token string           `json:"token"`
}

// Resolver agrega os casos de uso consumidos pelas resoluções GraphQL
type Resolver struct {
	users    *users.UseCase
	auth     *auth.UseCase
	checkout *checkout.UseCase
}

// NewResolver cria uma nova instância de Resolver
func NewResolver(usersUC *users.UseCase, authUC *auth.UseCase, checkoutUC *checkout.UseCase) *Resolver {
	return &Resolver{
		users:    usersUC,
		auth:     authUC,
		checkout: checkoutUC,
	}
}

// Users resolve Query.users
func (r *Resolver) Users(p graphql.ResolveParams) (interface{}, error) {
	return r.users.ListUsers(p.Context)
}

// Register resolve Mutation.register
func (r *Resolver) Register(p graphql.ResolveParams) (interface{}, error) {
	return r.users.Register(p.Context,
		p.Args["name"].(string),
		p.Args["email"].(string),
		p.Args["password"].(string),
	)
}

// Login resolve Mutation.login
func (r *Resolver) Login(p graphql.ResolveParams) (interface{}, error) {
	token, user, err := r.auth.Authenticate(p.Context,
		p.Args["email"].(string),
		p.Args["password"].(string),
	)
	if err != nil {
		return nil, err
	}
	return authPayload{User: user, Token: token}, nil
}

// Checkout resolve Mutation.checkout. Sem identidade no contexto a resolução
// falha com Token inválido antes de qualquer cálculo.
func (r *Resolver) Checkout(p graphql.ResolveParams) (interface{}, error) {
	claims, ok := ClaimsFrom(p.Context)
	if !ok {
		return nil, auth.ErrInvalidToken
	}

	freight, _ := p.Args["freight"].(float64)
	return r.checkout.Checkout(p.Context,
		claims.UserID,
		decodeItems(p.Args["items"]),
		freight,
		p.Args["paymentMethod"].(string),
		decodeCardData(p.Args["cardData"]),
	)
}

func decodeItems(raw interface{}) []checkout.Item {
	list, _ := raw.([]interface{})
	items := make([]checkout.Item, 0, len(list))
	for _, entry := range list {
		fields, _ := entry.(map[string]interface{})
		var item checkout.Item
		if v, ok := fields["productId"].(int); ok {
			item.ProductID = v
		}
		if v, ok := fields["quantity"].(int); ok {
			item.Quantity = v
		}
		items = append(items, item)
	}
	return items
}

func decodeCardData(raw interface{}) *checkout.CardData {
	fields, ok := raw.(map[string]interface{})
	if !ok {
		return nil
	}
	card := &checkout.CardData{}
	if v, ok := fields["number"].(string); ok {
		card.Number = v
	}
	if v, ok := fields["name"].(string); ok {
		card.Name = v
	}
	if v, ok := fields["expiry"].(string); ok {
		card.Expiry = v
	}
	if v, ok := fields["cvv"].(string); ok {
		card.CVV = v
	}
	return card
}
