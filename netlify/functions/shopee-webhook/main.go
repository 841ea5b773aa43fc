package main

import (
	"context"
	"log"
	"strings"

	"github.com/creativus9/Railway-Repositorio/app"
	"github.com/creativus9/Railway-Repositorio/rabbitmq"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	amqp "github.com/rabbitmq/amqp091-go"
)

// Relay endpoint: forwards the untouched webhook body onto the exchange so
// failed batches can be replayed without asking the marketplace again. The
// processing endpoint (shopee-new-order) never depends on the queue.
func handler(ctx context.Context, request events.APIGatewayProxyRequest) (*events.APIGatewayProxyResponse, error) {
	if len(request.Body) == 0 {
		return app.NetlifyResponse(400, "Empty request body")
	}

	topic := strings.ReplaceAll(request.Headers["x-shopee-topic"], "/", ".")
	if topic == "" {
		topic = "new-order"
	}
	err := rabbitmq.PublishMessage(
		ctx,
		"shopee.webhook",
		topic,
		request.Body,
		amqp.Table{
			"X-Shopee-Topic": topic,
		},
	)
	if err != nil {
		errMsg := "Error! Could not publish message to RabbitMQ"
		log.Printf("%s: %v", errMsg, err)
		return app.NetlifyResponse(400, errMsg)
	}

	return app.NetlifyResponse(200, "OK")
}

func main() {
	lambda.Start(app.ProfilingMiddleware(
		app.TimeoutMiddleware(app.CacheMiddleware(app.CheckEnvMiddleware(app.AuthMiddleware(handler)))),
		"shopee-webhook",
	))
}
