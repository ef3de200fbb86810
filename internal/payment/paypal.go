package payment

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"extremefit-api/internal/config"
)

// ErrWebhookVerification marks a webhook delivery PayPal did not confirm.
var ErrWebhookVerification = errors.New("paypal webhook verification failed")

// PaypalClient wraps the PayPal Orders v2 REST API.
type PaypalClient interface {
	CreateOrder(ctx context.Context, amount float64, currency string) (*CreateOrderResponse, error)
	CaptureOrder(ctx context.Context, paypalOrderID string) error
	VerifyWebhookSignature(ctx context.Context, headers http.Header, body []byte) error
}

type paypalClient struct {
	httpClient   *http.Client
	baseAPIURL   string
	clientID     string
	clientSecret string
	webhookID    string
	returnURL    string
	cancelURL    string
}

type paypalLink struct {
	Rel  string `json:"rel"`
	Href string `json:"href"`
}

type paypalOrderResult struct {
	ID     string       `json:"id"`
	Links  []paypalLink `json:"links"`
	Status string       `json:"status"`
}

type CreateOrderResponse struct {
	PaypalOrderID string
	ApproveURL    string
}

func NewPaypalClient(cfg *config.Paypal) PaypalClient {
	return &paypalClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseAPIURL:   cfg.BaseAPIURL,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		webhookID:    cfg.WebhookID,
		returnURL:    cfg.ReturnURL,
		cancelURL:    cfg.CancelURL,
	}
}

func (c *paypalClient) getAccessToken(ctx context.Context) (string, error) {
	auth := base64.StdEncoding.EncodeToString(
		[]byte(c.clientID + ":" + c.clientSecret),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseAPIURL+"/v1/oauth2/token",
		bytes.NewBufferString("grant_type=client_credentials"))
	if err != nil {
		return "", fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Authorization", "Basic "+auth)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	var res struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}

	return res.AccessToken, nil
}

func (c *paypalClient) CreateOrder(ctx context.Context, amount float64, currency string) (*CreateOrderResponse, error) {
	accessToken, err := c.getAccessToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("get paypal access token: %w", err)
	}

	payload := map[string]interface{}{
		"intent": "CAPTURE",
		"purchase_units": []map[string]interface{}{
			{
				"amount": map[string]string{
					"currency_code": currency,
					"value":         fmt.Sprintf("%.2f", amount),
				},
			},
		},
		"application_context": map[string]string{
			"return_url": c.returnURL,
			"cancel_url": c.cancelURL,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal req payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseAPIURL+"/v2/checkout/orders",
		bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("http new request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("paypal error %d: %s", resp.StatusCode, string(b))
	}

	var result paypalOrderResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode paypal response: %w", err)
	}

	return &CreateOrderResponse{
		PaypalOrderID: result.ID,
		ApproveURL:    extractApproveURL(result.Links),
	}, nil
}

func (c *paypalClient) CaptureOrder(ctx context.Context, paypalOrderID string) error {
	accessToken, err := c.getAccessToken(ctx)
	if err != nil {
		return fmt.Errorf("get paypal access token: %w", err)
	}

	url := fmt.Sprintf("%s/v2/checkout/orders/%s/capture", c.baseAPIURL, paypalOrderID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("paypal capture error %d: %s", resp.StatusCode, string(b))
	}

	return nil
}

// VerifyWebhookSignature asks PayPal whether a delivery's transmission
// headers match the registered webhook. Deliveries that PayPal does not
// answer SUCCESS for are rejected.
func (c *paypalClient) VerifyWebhookSignature(ctx context.Context, headers http.Header, body []byte) error {
	if c.webhookID == "" {
		return fmt.Errorf("%w: PAYPAL_WEBHOOK_ID not configured", ErrWebhookVerification)
	}

	accessToken, err := c.getAccessToken(ctx)
	if err != nil {
		return fmt.Errorf("get paypal access token: %w", err)
	}

	payload := map[string]interface{}{
		"auth_algo":         headers.Get("Paypal-Auth-Algo"),
		"cert_url":          headers.Get("Paypal-Cert-Url"),
		"transmission_id":   headers.Get("Paypal-Transmission-Id"),
		"transmission_sig":  headers.Get("Paypal-Transmission-Sig"),
		"transmission_time": headers.Get("Paypal-Transmission-Time"),
		"webhook_id":        c.webhookID,
		"webhook_event":     json.RawMessage(body),
	}

	reqBody, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal req payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseAPIURL+"/v1/notifications/verify-webhook-signature",
		bytes.NewBuffer(reqBody))
	if err != nil {
		return fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("paypal verify error %d: %s", resp.StatusCode, string(b))
	}

	var result struct {
		VerificationStatus string `json:"verification_status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("decode verify response: %w", err)
	}
	if result.VerificationStatus != "SUCCESS" {
		return fmt.Errorf("%w: status %s", ErrWebhookVerification, result.VerificationStatus)
	}

	return nil
}

func extractApproveURL(links []paypalLink) string {
	for _, link := range links {
		if link.Rel == "approve" {
			return link.Href
		}
	}
	return ""
}
