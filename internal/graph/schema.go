package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/storebench/ecommerce-api/internal/checkout"
)

// NewSchema monta o schema GraphQL equivalente à superfície REST
func NewSchema(resolver *Resolver) (graphql.Schema, error) {
	userType := graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"name":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"email": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	authPayloadType := graphql.NewObject(graphql.ObjectConfig{
		Name: "AuthPayload",
		Fields: graphql.Fields{
			"user":  &graphql.Field{Type: graphql.NewNonNull(userType)},
			"token": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	checkoutItemType := graphql.NewObject(graphql.ObjectConfig{
		Name: "CheckoutItem",
		Fields: graphql.Fields{
			"productId": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"quantity":  &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		},
	})

	checkoutResultType := graphql.NewObject(graphql.ObjectConfig{
		Name: "CheckoutResult",
		Fields: graphql.Fields{
			"userId": &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"valorFinal": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Float),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*checkout.Result).Total, nil
				},
			},
			"paymentMethod": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"freight":       &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
			"items":         &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(checkoutItemType)))},
		},
	})

	checkoutItemInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CheckoutItemInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"productId": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
			"quantity":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
		},
	})

	cardDataInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "CardDataInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"number": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"name":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"expiry": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"cvv":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"users": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(userType))),
				Resolve: resolver.Users,
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"register": &graphql.Field{
				Type: graphql.NewNonNull(userType),
				Args: graphql.FieldConfigArgument{
					"name":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: resolver.Register,
			},
			"login": &graphql.Field{
				Type: graphql.NewNonNull(authPayloadType),
				Args: graphql.FieldConfigArgument{
					"email":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: resolver.Login,
			},
			"checkout": &graphql.Field{
				Type: graphql.NewNonNull(checkoutResultType),
				Args: graphql.FieldConfigArgument{
					"items":         &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(checkoutItemInput)))},
					"freight":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Float)},
					"paymentMethod": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"cardData":      &graphql.ArgumentConfig{Type: cardDataInput},
				},
				Resolve: resolver.Checkout,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}
