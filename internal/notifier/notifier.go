package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/himanshu-suthar-simform/skillswap/internal/model"
	"github.com/himanshu-suthar-simform/skillswap/internal/utils/config"
	"github.com/himanshu-suthar-simform/skillswap/internal/utils/logger"
)

const (
	EventExchangeCreated       = "exchange.created"
	EventExchangeStatusChanged = "exchange.status_changed"
)

// Event is delivered to the notification collaborator, addressed to
// the party that did not act.
type Event struct {
	Type        string               `json:"type"`
	ExchangeID  uint                 `json:"exchange_id"`
	Status      model.ExchangeStatus `json:"status"`
	ActorID     uint                 `json:"actor_id"`
	RecipientID uint                 `json:"recipient_id"`
	Reason      string               `json:"reason,omitempty"`
}

type INotifier interface {
	Notify(ctx context.Context, event Event)
}

// Client posts events to the configured webhook URL. Delivery is best
// effort; failures are logged and never surfaced to the caller.
type Client struct {
	httpClient *http.Client
	webhookURL string
	logger     *logger.Logger
}

func New(appConfig *config.AppConfig, logger *logger.Logger) INotifier {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		webhookURL: appConfig.Notifier.WebhookURL,
		logger:     logger,
	}
}

func (c *Client) Notify(ctx context.Context, event Event) {
	if c.webhookURL == "" {
		return // Skip if webhook URL is not configured
	}

	payload, err := json.Marshal(event)
	if err != nil {
		c.logger.Error("failed to marshal notification event", map[string]string{
			"type":  event.Type,
			"error": err.Error(),
		})
		return
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.webhookURL, bytes.NewReader(payload))
	if err != nil {
		c.logger.Error("failed to create notification request", map[string]string{
			"url":   c.webhookURL,
			"error": err.Error(),
		})
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("failed to deliver notification", map[string]string{
			"url":   c.webhookURL,
			"type":  event.Type,
			"error": err.Error(),
		})
		return
	}
	defer resp.Body.Close()

	c.logger.Debug("notification delivered", map[string]string{
		"type":        event.Type,
		"exchange_id": strconv.FormatUint(uint64(event.ExchangeID), 10),
		"status_code": resp.Status,
	})
}
