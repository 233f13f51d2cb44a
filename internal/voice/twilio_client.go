package voice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const twilioAPIBase = "https://api.twilio.com/2010-04-01"

// HTTPDoer allows tests to fake HTTP transport.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Dialer starts outbound calls.
type Dialer interface {
	StartCall(ctx context.Context, to string) (*CallResult, error)
}

// CallResult identifies a started call.
type CallResult struct {
	SID    string `json:"sid"`
	Status string `json:"status"`
}

// TwilioClient starts outbound calls through the Twilio REST API. Answered
// calls are pointed at the voice webhook, which runs the booking dialogue.
type TwilioClient struct {
	accountSID string
	authToken  string
	from       string
	webhookURL string
	baseURL    string
	httpClient HTTPDoer
}

// NewTwilioClient creates a Twilio REST client.
func NewTwilioClient(accountSID, authToken, from, webhookURL string, httpClient HTTPDoer) *TwilioClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &TwilioClient{
		accountSID: accountSID,
		authToken:  authToken,
		from:       from,
		webhookURL: webhookURL,
		baseURL:    twilioAPIBase,
		httpClient: httpClient,
	}
}

// StartCall dials the number and connects it to the voice webhook.
func (c *TwilioClient) StartCall(ctx context.Context, to string) (*CallResult, error) {
	if strings.TrimSpace(c.accountSID) == "" || strings.TrimSpace(c.authToken) == "" {
		return nil, fmt.Errorf("voice: twilio credentials are not configured")
	}

	form := url.Values{}
	form.Set("Url", c.webhookURL)
	form.Set("To", to)
	form.Set("From", c.from)
	form.Set("Timeout", "30")

	endpoint := fmt.Sprintf("%s/Accounts/%s/Calls.json", c.baseURL, c.accountSID)
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("voice: build call request: %w", err)
	}
	request.SetBasicAuth(c.accountSID, c.authToken)
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("voice: twilio request failed: %w", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("voice: read twilio response: %w", err)
	}

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		var apiErr struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Message != "" {
			return nil, fmt.Errorf("voice: twilio status %d: %s", response.StatusCode, apiErr.Message)
		}
		return nil, fmt.Errorf("voice: twilio status %d: %s", response.StatusCode, strings.TrimSpace(string(body)))
	}

	var result CallResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("voice: decode twilio response: %w", err)
	}
	return &result, nil
}
