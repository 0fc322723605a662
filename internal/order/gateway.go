package order

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gcordner/chargeguard/internal/config"
	"github.com/gcordner/chargeguard/internal/model"
)

// Gateway is the external order-management collaborator: it resolves order
// identifiers to contact data and requests status transitions. Screening
// never mutates order storage itself, it only signals through here.
type Gateway interface {
	OrderContact(ctx context.Context, id string) (*model.OrderContact, error)
	SetStatus(ctx context.Context, id string, status string) error
}

type httpGateway struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

func NewHTTPGateway(cfg config.OrdersCfg) Gateway {
	return &httpGateway{
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
	}
}

func (g *httpGateway) OrderContact(ctx context.Context, id string) (*model.OrderContact, error) {
	url := fmt.Sprintf("%s/orders/%s", g.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	g.authorize(req)

	res, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch order %s - %w", id, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("order system responded with status %d on lookup of order %s", res.StatusCode, id)
	}

	var contact model.OrderContact
	if err := json.NewDecoder(res.Body).Decode(&contact); err != nil {
		return nil, fmt.Errorf("failed to decode order %s - %w", id, err)
	}
	return &contact, nil
}

func (g *httpGateway) SetStatus(ctx context.Context, id string, status string) error {
	payload, err := json.Marshal(&struct {
		Status string `json:"status"`
	}{Status: status})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/orders/%s/status", g.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	g.authorize(req)

	res, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to request status %s for order %s - %w", status, id, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK && res.StatusCode != http.StatusNoContent {
		return fmt.Errorf("order system responded with status %d on transition of order %s", res.StatusCode, id)
	}
	return nil
}

func (g *httpGateway) authorize(req *http.Request) {
	if g.apiKey != "" {
		req.Header.Set("X-Api-Key", g.apiKey)
	}
}
