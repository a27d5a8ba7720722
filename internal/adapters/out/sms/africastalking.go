// Package sms implements ports.Notifier.
//
// AfricasTalkingClient talks to the Africa's Talking bulk messaging API; LogNotifier only writes
// the message to the log and is meant for local runs.
package sms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"customerorder/internal/pkg/errs"
)

const (
	ProductionBaseURL = "https://api.africastalking.com"
	SandboxBaseURL    = "https://api.sandbox.africastalking.com"

	messagingPath  = "/version1/messaging"
	defaultTimeout = 15 * time.Second
)

// Recipient status codes the carrier reports for an accepted message.
var acceptedStatusCodes = map[int]struct{}{
	100: {}, // Processed
	101: {}, // Sent
	102: {}, // Queued
}

// AfricasTalkingConfig holds the carrier credentials.
type AfricasTalkingConfig struct {
	Username string
	APIKey   string
	SenderID string
	BaseURL  string
}

// AfricasTalkingClient sends text messages through Africa's Talking.
type AfricasTalkingClient struct {
	cfg    AfricasTalkingConfig
	http   *http.Client
	logger *slog.Logger
}

// NewAfricasTalkingClient validates the credentials once. A nil httpClient gets a default with a timeout.
func NewAfricasTalkingClient(cfg AfricasTalkingConfig, httpClient *http.Client, logger *slog.Logger) (*AfricasTalkingClient, error) {
	if cfg.Username == "" {
		return nil, errs.NewValueIsRequiredError("username")
	}
	if cfg.APIKey == "" {
		return nil, errs.NewValueIsRequiredError("api key")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = ProductionBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	return &AfricasTalkingClient{
		cfg:    cfg,
		http:   httpClient,
		logger: logger.With("component", "africastalking_client"),
	}, nil
}

type messagingResponse struct {
	SMSMessageData struct {
		Message    string `json:"Message"`
		Recipients []struct {
			StatusCode int    `json:"statusCode"`
			Number     string `json:"number"`
			Status     string `json:"status"`
			Cost       string `json:"cost"`
			MessageID  string `json:"messageId"`
		} `json:"Recipients"`
	} `json:"SMSMessageData"`
}

// Send posts the message and inspects the per-recipient status.
func (c *AfricasTalkingClient) Send(ctx context.Context, phoneNumber, message string) error {
	form := url.Values{}
	form.Set("username", c.cfg.Username)
	form.Set("to", phoneNumber)
	form.Set("message", message)
	if c.cfg.SenderID != "" {
		form.Set("from", c.cfg.SenderID)
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, strings.TrimRight(c.cfg.BaseURL, "/")+messagingPath, strings.NewReader(form.Encode()),
	)
	if err != nil {
		return errs.NewDeliveryFailedErrorWithCause(phoneNumber, err)
	}
	req.Header.Set("apiKey", c.cfg.APIKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return errs.NewDeliveryFailedErrorWithCause(phoneNumber, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return errs.NewDeliveryFailedErrorWithCause(phoneNumber, err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return errs.NewDeliveryFailedErrorWithCause(
			phoneNumber, fmt.Errorf("carrier responded %d: %s", resp.StatusCode, strings.TrimSpace(string(body))),
		)
	}

	var parsed messagingResponse
	if err = json.Unmarshal(body, &parsed); err != nil {
		return errs.NewDeliveryFailedErrorWithCause(phoneNumber, fmt.Errorf("decode carrier response: %w", err))
	}

	recipients := parsed.SMSMessageData.Recipients
	if len(recipients) == 0 {
		return errs.NewDeliveryFailedErrorWithCause(
			phoneNumber, fmt.Errorf("no recipients accepted: %s", parsed.SMSMessageData.Message),
		)
	}
	for _, r := range recipients {
		if _, ok := acceptedStatusCodes[r.StatusCode]; !ok {
			return errs.NewDeliveryFailedErrorWithCause(
				phoneNumber, fmt.Errorf("recipient %s rejected: %s (%d)", r.Number, r.Status, r.StatusCode),
			)
		}
		c.logger.DebugContext(ctx, "SMS accepted", "message_id", r.MessageID, "status", r.Status, "cost", r.Cost)
	}
	return nil
}
