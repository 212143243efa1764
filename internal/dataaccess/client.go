// Package dataaccess is the HTTP boundary to a Coolify instance's REST API.
// It hands already-deserialized collections to internal/correlate and never
// does any correlation itself.
package dataaccess

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/coolify-tools/coolify-ctl/internal/config"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const apiBasePath = "/api/v1"

// Configure retryable http client
// retryablehttp gives us automatic retries with exponential backoff.
func getRetryableHTTPClient() *http.Client {
	httpClient := retryablehttp.NewClient()
	// HTTP requests are logged at DEBUG level.
	httpClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	httpClient.CheckRetry = retryPolicy
	httpClient.Backoff = retryablehttp.DefaultBackoff
	httpClient.HTTPClient.Timeout = config.GetClientTimeout()
	httpClient.Logger = NewLeveledLogger()
	httpClient.RequestLogHook = func(logger retryablehttp.Logger, req *http.Request, retryNumber int) {
		if config.IsDebugLogLevel() {
			dump, err := httputil.DumpRequestOut(req, true)
			if err != nil {
				log.Err(err).Msg("Failed to dump request")
			}
			log.Debug().Msgf("Request %s %s\n%s", req.Method, req.URL, dump)
		}
	}
	httpClient.ResponseLogHook = func(logger retryablehttp.Logger, res *http.Response) {
		if config.IsDebugLogLevel() {
			dump, err := httputil.DumpResponse(res, true)
			if err != nil {
				log.Err(err).Msg("Failed to dump response")
			}
			log.Debug().Msgf("Response %s\n%s", res.Status, dump)
		}
	}
	return httpClient.StandardClient()
}

// Used to transform the retryablehttp logger to a zerolog logger
type LeveledLogger struct {
	retryablehttp.LeveledLogger
}

func NewLeveledLogger() *LeveledLogger {
	return &LeveledLogger{}
}

func (l *LeveledLogger) Error(msg string, keysAndValues ...interface{}) {
	log.Error().Msgf(msg, keysAndValues...)
}

func (l *LeveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	log.Debug().Msgf(msg, keysAndValues...)
}

func (l *LeveledLogger) Info(msg string, keysAndValues ...interface{}) {
	log.Info().Msgf(msg, keysAndValues...)
}

func (l *LeveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	log.Warn().Msgf(msg, keysAndValues...)
}

func retryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	shouldRetry, err := retryablehttp.ErrorPropagatedRetryPolicy(ctx, resp, err)
	// Do not retry POST requests on error
	if err != nil && resp != nil && resp.Request != nil && resp.Request.Method == http.MethodPost {
		shouldRetry = false
	}
	return shouldRetry, nil
}

// getRaw performs a GET against the API and returns the raw body, with
// 401/403 mapped to the config sentinel errors.
func getRaw(ctx context.Context, token, path string, query url.Values) (json.RawMessage, error) {
	instanceURL, err := config.GetInstanceURL()
	if err != nil {
		return nil, err
	}
	endpoint := instanceURL + apiBasePath + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build request for %s", path)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := getRetryableHTTPClient().Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "request to %s failed", path)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read response from %s", path)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, config.ErrTokenExpired
	case resp.StatusCode == http.StatusForbidden:
		return nil, config.ErrUnauthorized
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, errors.Errorf("GET %s returned status %d: %s", path, resp.StatusCode, string(body))
	}
	return body, nil
}

// getJSON decodes the response body of a GET into out.
func getJSON(ctx context.Context, token, path string, query url.Values, out any) error {
	body, err := getRaw(ctx, token, path, query)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrapf(err, "failed to decode response from %s", path)
	}
	return nil
}
