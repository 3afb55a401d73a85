package stripe

import "time"

type Config struct {
	APIKey           string
	APIURL           string // https://api.stripe.com
	WebhookSecret    string
	WebhookTolerance time.Duration
	SuccessURL       string
	CancelURL        string
	RefreshURL       string // onboarding link hết hạn -> quay lại đây
}

func (c *Config) endpoint(path string) string {
	return c.APIURL + path
}

const (
	pathAccounts         = "/v1/accounts"
	pathAccountLinks     = "/v1/account_links"
	pathCheckoutSessions = "/v1/checkout/sessions"
)
