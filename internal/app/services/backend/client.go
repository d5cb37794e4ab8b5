package backend

import (
	"context"
	"dentclinic-service/internal/app/config"
	"dentclinic-service/internal/pkg/constvars"
	"dentclinic-service/internal/pkg/utils"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Client talks to the clinic REST backend. It never retries.
type Client struct {
	http    *resty.Client
	limiter *rate.Limiter
	Log     *zap.Logger
}

func NewClient(cfg config.AppBackend, logger *zap.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseUrl, "/")).
		SetTimeout(time.Duration(cfg.TimeoutInSeconds)*time.Second).
		SetRetryCount(0).
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal).
		SetHeader(constvars.HeaderAccept, constvars.MIMEApplicationJSON)

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	return &Client{
		http:    httpClient,
		limiter: rate.NewLimiter(limit, burst),
		Log:     logger,
	}
}

// do sends one request and decodes a 2xx body into result when both are
// present. Non-2xx responses become *APIError carrying the server's error
// field, or "HTTP <status>" when the body cannot be read as one.
func (c *Client) do(ctx context.Context, operation, method, path string, body, result interface{}) error {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info(fmt.Sprintf("backend.Client.%s called", operation),
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMethodKey, method),
		zap.String(constvars.LoggingEndpointKey, path),
	)

	if err := c.limiter.Wait(ctx); err != nil {
		c.Log.Error(fmt.Sprintf("backend.Client.%s error waiting for rate limiter", operation),
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return newTransportError(err)
	}

	req := c.http.R().SetContext(ctx)
	if requestID != "" {
		req.SetHeader(constvars.HeaderXRequestID, requestID)
	}
	if body != nil {
		req.SetHeader(constvars.HeaderContentType, constvars.MIMEApplicationJSON).SetBody(body)
	}

	start := time.Now()
	resp, err := req.Execute(method, path)
	if err != nil {
		c.Log.Error(fmt.Sprintf("backend.Client.%s error sending HTTP request", operation),
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return newTransportError(err)
	}

	if resp.IsError() || resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		var errBody errorBody
		_ = json.Unmarshal(resp.Body(), &errBody)
		apiErr := newStatusError(resp.StatusCode(), errBody.Error)
		c.Log.Error(fmt.Sprintf("backend.Client.%s backend returned error", operation),
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, apiErr.Status),
			zap.Error(apiErr),
		)
		return apiErr
	}

	if result != nil && len(resp.Body()) > 0 {
		if err := json.Unmarshal(resp.Body(), result); err != nil {
			c.Log.Error(fmt.Sprintf("backend.Client.%s error decoding response", operation),
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return &APIError{Status: resp.StatusCode(), Message: fmt.Sprintf(constvars.ErrDevBackendDecode, path)}
		}
	}

	c.Log.Info(fmt.Sprintf("backend.Client.%s succeeded", operation),
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode()),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)
	return nil
}
