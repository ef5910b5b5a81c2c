package webapp

import (
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mealtrack/gateway/util/logging"
)

const requestIDHeader = "X-Request-Id"

// requestID prefers an id set by the caller, then the lambda
// invocation id, and generates one otherwise.
func requestID(r *http.Request) string {
	if id := r.Header.Get(requestIDHeader); id != "" {
		return id
	}

	if lc, ok := lambdacontext.FromContext(r.Context()); ok && lc.AwsRequestID != "" {
		return lc.AwsRequestID
	}

	return uuid.NewString()
}

// withRequestLogger injects a request scoped logger into the request
// context and logs every handled request.
func withRequestLogger(log *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		log := log.With(
			zap.String("request_id", requestID(r)),
			zap.String("path", r.URL.Path),
			zap.String("method", r.Method),
		)

		ctx := logging.ContextWithLogger(r.Context(), log)

		next.ServeHTTP(w, r.WithContext(ctx))

		log.Debug("request handled", zap.Duration("duration", time.Since(start)))
	})
}

func withCors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
