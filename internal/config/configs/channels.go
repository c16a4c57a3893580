package configs

// Channels holds the credentials of every platform integration. A channel
// whose credentials are empty has no adapter and is skipped at execution.
type Channels struct {
	GoogleAds   GoogleAds   `envPrefix:"GOOGLE_ADS_"`
	MetaAds     MetaAds     `envPrefix:"META_ADS_"`
	LinkedInAds LinkedInAds `envPrefix:"LINKEDIN_ADS_"`
	Email       Email       `envPrefix:"EMAIL_"`

	// SimulatePerformance serves randomized metrics for channels with no
	// recorded platform campaign id instead of calling the platform.
	SimulatePerformance bool `env:"SIMULATE_PERFORMANCE" envDefault:"true"`
	// UserAgent is sent with every platform request.
	UserAgent string `env:"USER_AGENT" envDefault:"automark/1.0"`
}

// GoogleAds holds OAuth client and account settings for Google Ads.
type GoogleAds struct {
	ClientID       string `env:"CLIENT_ID"`
	ClientSecret   string `env:"CLIENT_SECRET"`
	RefreshToken   string `env:"REFRESH_TOKEN"`
	CustomerID     string `env:"CUSTOMER_ID"`
	DeveloperToken string `env:"DEVELOPER_TOKEN"`
	BaseURL        string `env:"BASE_URL" envDefault:"https://googleads.googleapis.com"`
	TokenURL       string `env:"TOKEN_URL" envDefault:"https://oauth2.googleapis.com/token"`
}

// Enabled reports whether enough credentials are set to build an adapter.
func (c GoogleAds) Enabled() bool {
	return c.ClientID != "" && c.ClientSecret != "" && c.RefreshToken != "" && c.CustomerID != ""
}

// MetaAds holds the Graph API token and ad account.
type MetaAds struct {
	AccessToken string `env:"ACCESS_TOKEN"`
	AdAccountID string `env:"AD_ACCOUNT_ID"`
	BaseURL     string `env:"BASE_URL" envDefault:"https://graph.facebook.com"`
}

func (c MetaAds) Enabled() bool { return c.AccessToken != "" && c.AdAccountID != "" }

// LinkedInAds holds the Marketing API token and sponsored account.
type LinkedInAds struct {
	AccessToken string `env:"ACCESS_TOKEN"`
	AdAccountID string `env:"AD_ACCOUNT_ID"`
	BaseURL     string `env:"BASE_URL" envDefault:"https://api.linkedin.com"`
}

func (c LinkedInAds) Enabled() bool { return c.AccessToken != "" && c.AdAccountID != "" }

// Email configures the email provider. Provider is one of sendgrid,
// mailgun or smtp.
type Email struct {
	Provider  string `env:"PROVIDER"`
	APIKey    string `env:"API_KEY"`
	Domain    string `env:"DOMAIN"`
	BaseURL   string `env:"BASE_URL"`
	FromEmail string `env:"FROM_EMAIL" envDefault:"noreply@automark.app"`
	FromName  string `env:"FROM_NAME" envDefault:"AutoMark"`

	SMTPAddr     string `env:"SMTP_ADDR"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
}

func (c Email) Enabled() bool {
	switch c.Provider {
	case "sendgrid":
		return c.APIKey != ""
	case "mailgun":
		return c.APIKey != "" && c.Domain != ""
	case "smtp":
		return c.SMTPAddr != ""
	}
	return false
}
