package services

import (
	"CaptionRelay/logging"
	"CaptionRelay/metrics"
	"CaptionRelay/utils"
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// CaptionService relays a prompt to the configured provider.
type CaptionService struct {
	Generator TextGenerator
	Provider  string
	Timeout   time.Duration
	log       *logrus.Logger
}

// NewCaptionService wires the relay to a provider. A zero timeout leaves the
// call bounded only by the caller's context.
func NewCaptionService(generator TextGenerator, provider string, timeout time.Duration) *CaptionService {
	return &CaptionService{
		Generator: generator,
		Provider:  provider,
		Timeout:   timeout,
		log:       logging.GetLogger(),
	}
}

// GenerateCaption issues exactly one provider call with the prompt as given.
// Failures come back as *utils.CustomError carrying the status to answer with.
func (s *CaptionService) GenerateCaption(ctx context.Context, prompt string) (string, error) {
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	start := time.Now()
	caption, err := s.Generator.GenerateText(ctx, prompt)
	elapsed := time.Since(start)

	if err != nil {
		// ctx.Err() catches providers that swallow the context error.
		customErr, outcome := translateProviderError(err, ctx.Err())
		metrics.RecordCaption(s.Provider, outcome, elapsed)
		s.log.WithFields(logrus.Fields{
			"provider": s.Provider,
			"outcome":  outcome,
			"status":   customErr.StatusCode,
			"elapsed":  elapsed,
		}).WithError(err).Error("caption provider call failed")
		return "", customErr
	}

	metrics.RecordCaption(s.Provider, "success", elapsed)
	s.log.WithFields(logrus.Fields{
		"provider":   s.Provider,
		"elapsed":    elapsed,
		"prompt_len": len(prompt),
	}).Debug("caption generated")
	return caption, nil
}

// translateProviderError maps a provider failure to the response status and
// a metrics outcome label.
func translateProviderError(err, ctxErr error) (*utils.CustomError, string) {
	switch {
	case errors.Is(err, ErrProviderNotConfigured):
		return utils.WrapCustomError(http.StatusServiceUnavailable, "caption provider is not configured", err), "not_configured"
	case errors.Is(err, context.DeadlineExceeded) || errors.Is(ctxErr, context.DeadlineExceeded):
		return utils.WrapCustomError(http.StatusGatewayTimeout, "caption provider timed out", err), "timeout"
	case errors.Is(err, context.Canceled) || errors.Is(ctxErr, context.Canceled):
		return utils.WrapCustomError(http.StatusServiceUnavailable, "caption request canceled", err), "canceled"
	case errors.Is(err, ErrEmptyCompletion):
		return utils.WrapCustomError(http.StatusBadGateway, "caption provider returned no text", err), "empty"
	}

	var providerErr *ProviderError
	if errors.As(err, &providerErr) {
		switch providerErr.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return utils.WrapCustomError(http.StatusBadGateway, "caption provider rejected the credentials", err), "unauthorized"
		case http.StatusTooManyRequests:
			return utils.WrapCustomError(http.StatusServiceUnavailable, "caption provider quota exceeded", err), "quota"
		case http.StatusGatewayTimeout, http.StatusRequestTimeout:
			return utils.WrapCustomError(http.StatusGatewayTimeout, "caption provider timed out", err), "timeout"
		}
	}

	return utils.WrapCustomError(http.StatusBadGateway, "caption provider request failed", err), "error"
}
