package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
)

// Adapter drives an http.Handler from AWS Lambda invocations. Each
// invocation is translated into exactly one call of the wrapped
// application. The adapter holds no per-invocation state and is safe
// for concurrent use.
type Adapter struct {
	source ProxySource

	v1  *httpadapter.HandlerAdapter
	v2  *httpadapter.HandlerAdapterV2
	alb *httpadapter.HandlerAdapterALB
}

var _ lambda.Handler = (*Adapter)(nil)

// New creates an adapter for app. The source selects the event shape
// that Invoke expects.
func New(app http.Handler, source ProxySource) (*Adapter, error) {
	if app == nil {
		return nil, ErrNilApplication
	}

	if !source.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidProxySource, source)
	}

	return &Adapter{
		source: source,
		v1:     httpadapter.New(app),
		v2:     httpadapter.NewV2(app),
		alb:    httpadapter.NewALB(app),
	}, nil
}

// Source returns the configured proxy source.
func (a *Adapter) Source() ProxySource {
	return a.source
}

// Invoke implements lambda.Handler. The payload is decoded according
// to the configured proxy source, handed to the application and the
// resulting response is encoded for the host.
func (a *Adapter) Invoke(ctx context.Context, payload []byte) ([]byte, error) {
	switch a.source {
	case ProxySourceApiGatewayV1:
		return invoke(ctx, payload, a.HandleV1)
	case ProxySourceApiGatewayV2:
		return invoke(ctx, payload, a.HandleV2)
	case ProxySourceAlb:
		return invoke(ctx, payload, a.HandleALB)
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidProxySource, a.source)
	}
}

// HandleV1 handles an API Gateway REST (v1) proxy event.
func (a *Adapter) HandleV1(
	ctx context.Context,
	evt events.APIGatewayProxyRequest,
) (res events.APIGatewayProxyResponse, err error) {
	defer recoverApp(&err)
	return a.v1.ProxyWithContext(ctx, evt)
}

// HandleV2 handles an API Gateway HTTP API (v2) event.
func (a *Adapter) HandleV2(
	ctx context.Context,
	evt events.APIGatewayV2HTTPRequest,
) (res events.APIGatewayV2HTTPResponse, err error) {
	defer recoverApp(&err)
	return a.v2.ProxyWithContext(ctx, evt)
}

// HandleALB handles an Application Load Balancer target group event.
func (a *Adapter) HandleALB(
	ctx context.Context,
	evt events.ALBTargetGroupRequest,
) (res events.ALBTargetGroupResponse, err error) {
	defer recoverApp(&err)
	return a.alb.ProxyWithContext(ctx, evt)
}

func invoke[E, R any](
	ctx context.Context,
	payload []byte,
	handle func(context.Context, E) (R, error),
) ([]byte, error) {
	var event E
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeEvent, err)
	}

	response, err := handle(ctx, event)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(response)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeResponse, err)
	}

	return data, nil
}
