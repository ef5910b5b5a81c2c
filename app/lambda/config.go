package lambda

import (
	"github.com/mealtrack/gateway/internal/adapter"
	"github.com/mealtrack/gateway/util/conf"
)

// ProxySource represents the source of a lambda request.
type ProxySource = adapter.ProxySource

type Config struct {
	// ProxySource is the source of the AWS Lambda event.
	ProxySource ProxySource `conf:"lambda_proxy_source"`
}

var DefaultConfig = conf.DefaultConfig{
	"lambda_proxy_source": string(adapter.ProxySourceApiGatewayV2),
}
