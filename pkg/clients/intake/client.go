package intake

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"onboardly/pkg/leadform"
	"onboardly/pkg/models"
)

// Client defines the interface for posting leads to the intake endpoint
type Client interface {
	SubmitLead(ctx context.Context, lead models.LeadForm) error
}

type clientImpl struct {
	endpoint string
	http     *resty.Client
	logger   *zap.Logger
}

// NewClient creates a new intake client posting to endpoint
func NewClient(endpoint string, logger *zap.Logger) Client {
	if logger == nil {
		logger = zap.NewNop()
	}

	// No retries: every submit is one independent attempt.
	http := resty.New().
		SetRetryCount(0).
		SetLogger(logger.Sugar())

	return &clientImpl{
		endpoint: endpoint,
		http:     http,
		logger:   logger,
	}
}

func (c *clientImpl) SubmitLead(ctx context.Context, lead models.LeadForm) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(lead).
		Post(c.endpoint)
	if err != nil {
		return &leadform.SubmissionError{
			Message: leadform.DefaultNetworkMessage,
			Err:     fmt.Errorf("error posting lead: %w", err),
		}
	}

	if resp.IsSuccess() {
		c.logger.Debug("intake accepted lead", zap.Int("status", resp.StatusCode()))
		return nil
	}

	body := resp.Body()
	return &leadform.SubmissionError{
		Message:    rejectionMessage(body),
		StatusCode: resp.StatusCode(),
		Err:        fmt.Errorf("error from intake endpoint: %s: %s", resp.Status(), string(body)),
	}
}

// rejectionMessage pulls "message" out of an error body
func rejectionMessage(body []byte) string {
	var response struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return leadform.DefaultRejectedMessage
	}
	if strings.TrimSpace(response.Message) == "" {
		return leadform.DefaultRejectedMessage
	}
	return response.Message
}
