package http

import (
	"go.uber.org/zap"

	"todo-api/pkg/log"
)

// HTTPLogger receives a callback around every outgoing request.
type HTTPLogger interface {
	LogRequest(method, url string, headers map[string]string, body string)
	LogResponseSuccess(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64)
	LogResponseError(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error)
}

type NoopLogger struct{}

func (NoopLogger) LogRequest(string, string, map[string]string, string) {}
func (NoopLogger) LogResponseSuccess(string, string, map[string]string, string, int, string, int64) {
}
func (NoopLogger) LogResponseError(string, string, map[string]string, string, int, string, int64, error) {
}

// ZapLogger logs outgoing calls through pkg/log. Bodies are omitted since they may carry credentials.
type ZapLogger struct {
	Name string
}

func (l ZapLogger) LogRequest(method, url string, _ map[string]string, _ string) {
	log.Debug("http request",
		zap.String("client", l.Name),
		zap.String("method", method),
		zap.String("url", url))
}

func (l ZapLogger) LogResponseSuccess(method, url string, _ map[string]string, _ string, httpStatus int, _ string, latency int64) {
	log.Info("http response",
		zap.String("client", l.Name),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency))
}

func (l ZapLogger) LogResponseError(method, url string, _ map[string]string, _ string, httpStatus int, _ string, latency int64, err error) {
	log.Error("http response failed",
		zap.String("client", l.Name),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
		zap.Error(err))
}
