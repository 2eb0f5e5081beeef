package payments

import "os"

const (
	// Base URL of the mobile money gateway API.
	defaultAPIURL = "https://api.mypayd.app/api/v2/payments"

	// Channel used when PAYD_CHANNEL_ID is not configured.
	defaultChannelID = "MOBILE"

	// Customer name sent to the gateway when the donor leaves theirs blank.
	fallbackCustomerName = "MKU Christian Union"
)

// Config carries everything the payment handlers need from the
// environment. It is loaded once at startup and injected into NewHandler,
// so a misconfigured deployment is visible in the logs immediately rather
// than on the first donation attempt.
type Config struct {
	APIURL          string
	Username        string
	Password        string
	ChannelID       string
	CallbackBaseURL string
	CustomerName    string

	StripeSecretKey     string
	StripeWebhookSecret string
}

func LoadConfig() Config {
	cfg := Config{
		APIURL:          defaultAPIURL,
		Username:        os.Getenv("PAYD_USERNAME"),
		Password:        os.Getenv("PAYD_PASSWORD"),
		ChannelID:       os.Getenv("PAYD_CHANNEL_ID"),
		CallbackBaseURL: os.Getenv("PUBLIC_BASE_URL"),
		CustomerName:    fallbackCustomerName,

		StripeSecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
		StripeWebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
	}
	if cfg.ChannelID == "" {
		cfg.ChannelID = defaultChannelID
	}
	return cfg
}

// HasGatewayCredentials reports whether the mobile money gateway can be
// called at all.
func (c Config) HasGatewayCredentials() bool {
	return c.Username != "" && c.Password != ""
}
