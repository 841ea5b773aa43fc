package main

import (
	"context"

	"github.com/creativus9/Railway-Repositorio/app"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
)

func handler(ctx context.Context, request events.APIGatewayProxyRequest) (*events.APIGatewayProxyResponse, error) {
	return app.NetlifyResponse(200, "Webhook para Pedidos Shopee está online e pronto para receber dados do n8n.")
}

func main() {
	lambda.Start(handler)
}
