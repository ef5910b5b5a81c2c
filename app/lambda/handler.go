package lambda

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/mealtrack/gateway/internal/adapter"
	"github.com/mealtrack/gateway/internal/telemetry"
)

// LambdaHandlerParams represents the parameters required for
// the Lambda handler.
type LambdaHandlerParams struct {
	fx.In

	// Config is the configuration for the Lambda handler.
	Config Config

	// Handler is the web application driven by lambda events.
	Handler http.Handler

	// Context is the context for the Lambda handler.
	Context context.Context

	// Logger is the logger for the Lambda handler.
	Logger *zap.Logger

	// Tracing is flushed after every invocation, as the execution
	// environment is frozen until the next event arrives.
	Tracing *telemetry.Tracing `optional:"true"`
}

type LambdaHandler struct {
	ctx     context.Context
	cancel  context.CancelFunc
	adapter *adapter.Adapter
	invoker lambda.Handler
	log     *zap.Logger
}

// NewLambdaHandler creates a new instance of LambdaHandler with
// the given parameters. It fails if the proxy source is invalid.
func NewLambdaHandler(params LambdaHandlerParams) (*LambdaHandler, error) {
	a, err := adapter.New(params.Handler, params.Config.ProxySource)
	if err != nil {
		return nil, err
	}

	var invoker lambda.Handler = a
	if params.Tracing != nil {
		invoker = &flushingHandler{
			next:  a,
			flush: params.Tracing.Flush,
			log:   params.Logger,
		}
	}

	ctx, cancel := context.WithCancel(params.Context)

	return &LambdaHandler{
		ctx:     ctx,
		cancel:  cancel,
		adapter: a,
		invoker: invoker,
		log:     params.Logger,
	}, nil
}

// NewLifecycleHandler creates a new instance of LambdaHandler
// with the given parameters and attaches lifecycle hooks to
// start and stop the handler.
func NewLifecycleHandler(params LambdaHandlerParams, lc fx.Lifecycle) (*LambdaHandler, error) {
	handler, err := NewLambdaHandler(params)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			handler.Start()
			return nil
		},
		OnStop: func(context.Context) error {
			handler.Shutdown()
			return nil
		},
	})

	return handler, nil
}

// Adapter returns the adapter invoked by the lambda runtime.
func (s *LambdaHandler) Adapter() *adapter.Adapter {
	return s.adapter
}

// Invoker returns the handler registered with the lambda runtime.
func (s *LambdaHandler) Invoker() lambda.Handler {
	return s.invoker
}

// Start starts the AWS Lambda runtime client in a new goroutine.
func (s *LambdaHandler) Start() {
	s.log.Debug("using lambda event proxy", zap.Stringer("proxy_source", s.adapter.Source()))

	go lambda.StartWithOptions(s.invoker, lambda.WithContext(s.ctx))
}

// Shutdown cancels the execution of the LambdaHandler.
func (s *LambdaHandler) Shutdown() {
	s.cancel()
}

// flushingHandler flushes telemetry once the wrapped handler returned.
type flushingHandler struct {
	next  lambda.Handler
	flush func(context.Context) error
	log   *zap.Logger
}

func (h *flushingHandler) Invoke(ctx context.Context, payload []byte) ([]byte, error) {
	res, err := h.next.Invoke(ctx, payload)

	if flushErr := h.flush(ctx); flushErr != nil {
		h.log.Warn("failed to flush traces", zap.Error(flushErr))
	}

	return res, err
}
