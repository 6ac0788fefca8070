package util

import (
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const userAgent = "catimage/1.0"

// NewHTTPClient returns the process-wide client. Retries stay disabled and
// no timeout is set, so a request lasts as long as the transport allows.
func NewHTTPClient(log *zap.Logger) *resty.Client {
	return resty.New().
		SetHeader("User-Agent", userAgent).
		SetLogger(log.Sugar()).
		SetRetryCount(0)
}
