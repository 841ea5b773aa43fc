package main

import (
	"context"

	"github.com/creativus9/Railway-Repositorio/app"
	"github.com/creativus9/Railway-Repositorio/catalog"
	"github.com/creativus9/Railway-Repositorio/firestore"
	"github.com/creativus9/Railway-Repositorio/pedidos"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
)

func handler(ctx context.Context, request events.APIGatewayProxyRequest) (*events.APIGatewayProxyResponse, error) {
	store, err := firestore.NewClient()
	if err != nil {
		return app.NetlifyLogAndJsonResponse(503, map[string]any{
			"message": "Erro interno: Serviço de banco de dados indisponível.",
		}, err)
	}

	payloads, err := pedidos.ParseBatch([]byte(request.Body))
	if err != nil {
		return app.NetlifyLogAndJsonResponse(400, map[string]any{
			"message": "Erro ao decodificar o JSON. Verifique o formato enviado pelo n8n.",
		}, err)
	}

	processor := &pedidos.Processor{
		Store:  store,
		Tables: catalog.Manager.Tables(),
	}
	summary := processor.ProcessBatch(ctx, payloads)

	body := map[string]any{"message": summary.Message()}
	status := 200
	if len(summary.Errors) > 0 {
		body["errors"] = summary.Errors
		status = 207
	}
	return app.NetlifyJsonResponse(status, body)
}

func main() {
	lambda.Start(app.ProfilingMiddleware(
		app.TimeoutMiddleware(app.CacheMiddleware(app.CheckEnvMiddleware(catalog.CatalogMiddleware(handler)))),
		"shopee-new-order",
	))
}
