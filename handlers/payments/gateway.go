package payments

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

type chargeRequest struct {
	PhoneNumber       string  `json:"phone_number"`
	Amount            float64 `json:"amount"`
	ChannelID         string  `json:"channel_id"`
	Provider          string  `json:"provider"`
	ExternalReference string  `json:"external_reference"`
	CustomerName      string  `json:"customer_name"`
	CallbackURL       string  `json:"callback_url"`
	Narration         string  `json:"narration"`
}

// gatewayError is a non-2xx answer from the gateway, carrying the message
// it returned if one could be decoded.
type gatewayError struct {
	StatusCode int
	Message    string
}

func (e *gatewayError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("payment gateway returned status %d", e.StatusCode)
}

type gatewayClient struct {
	apiURL   string
	username string
	password string
	client   *http.Client
}

func newGatewayClient(cfg Config) *gatewayClient {
	return &gatewayClient{
		apiURL:   cfg.APIURL,
		username: cfg.Username,
		password: cfg.Password,
		client:   http.DefaultClient,
	}
}

// Charge asks the gateway to start a mobile money charge. A nil return
// means the gateway accepted the request; the final outcome arrives later
// on the callback endpoint.
func (g *gatewayClient) Charge(payload chargeRequest) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, g.apiURL, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(g.username, g.password)

	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	gerr := &gatewayError{StatusCode: resp.StatusCode}
	respBody, _ := io.ReadAll(resp.Body)
	var decoded struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(respBody, &decoded); err == nil {
		gerr.Message = decoded.Message
	}
	return gerr
}
