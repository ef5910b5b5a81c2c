package webapp

import (
	"net/http"

	"go.uber.org/fx"

	"github.com/mealtrack/gateway/internal/status"
)

// Route is a handler mounted on the application mux under Pattern.
type Route struct {
	Pattern string
	Handler http.Handler
}

type RouteResult struct {
	fx.Out

	Route *Route `group:"routes"`
}

func AsRoute(pattern string, handler http.Handler) RouteResult {
	return RouteResult{
		Route: &Route{
			Pattern: pattern,
			Handler: handler,
		},
	}
}

// NewStatusRoute mounts the status handler on every path that no
// other route claims. It fails if the status payload does not match
// its schema.
func NewStatusRoute() (RouteResult, error) {
	if err := status.Verify(); err != nil {
		return RouteResult{}, err
	}

	return AsRoute("/", status.Handler()), nil
}
