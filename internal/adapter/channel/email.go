package channel

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"mime"
	"net"
	"net/http"
	"net/mail"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	"github.com/google/uuid"

	"automark/internal/config/configs"
	"automark/internal/core/domain"
)

const (
	sendGridBaseURL = "https://api.sendgrid.com"
	mailgunBaseURL  = "https://api.mailgun.net"
)

// Email sends campaign messages through the configured provider. It has no
// pause capability: a sent message cannot be recalled.
type Email struct {
	cfg    configs.Email
	client *platformClient
	// now is replaceable in tests.
	now func() time.Time
}

func NewEmail(cfg configs.Email, hc *http.Client, userAgent string) *Email {
	if cfg.BaseURL == "" {
		switch cfg.Provider {
		case "sendgrid":
			cfg.BaseURL = sendGridBaseURL
		case "mailgun":
			cfg.BaseURL = mailgunBaseURL
		}
	}
	return &Email{
		cfg:    cfg,
		client: newPlatformClient(domain.ChannelEmail, hc, userAgent),
		now:    time.Now,
	}
}

func (e *Email) Channel() domain.Channel { return domain.ChannelEmail }

func (e *Email) endpoint(path string) string {
	return strings.TrimRight(e.cfg.BaseURL, "/") + path
}

// CreateCampaign sends the campaign message. An empty recipient list sends
// nothing and succeeds.
func (e *Email) CreateCampaign(ctx context.Context, spec domain.LaunchSpec) (domain.PlatformResult, error) {
	const op = "send campaign"
	if spec.Email == nil {
		return domain.PlatformResult{}, e.client.fail(op, 0, fmt.Errorf("missing email message"))
	}
	msg := *spec.Email
	if msg.FromEmail == "" {
		msg.FromEmail = e.cfg.FromEmail
	}
	if msg.FromName == "" {
		msg.FromName = e.cfg.FromName
	}
	if len(msg.Recipients) == 0 {
		return sentResult("", 0), nil
	}

	var (
		id  string
		err error
	)
	switch e.cfg.Provider {
	case "sendgrid":
		id, err = e.sendWithSendGrid(ctx, op, msg)
	case "mailgun":
		id, err = e.sendWithMailgun(ctx, op, msg)
	case "smtp":
		id, err = e.sendWithSMTP(ctx, op, msg)
	default:
		err = e.client.fail(op, 0, fmt.Errorf("unsupported email provider %q", e.cfg.Provider))
	}
	if err != nil {
		return domain.PlatformResult{}, err
	}
	return sentResult(id, len(msg.Recipients)), nil
}

func sentResult(messageID string, recipients int) domain.PlatformResult {
	return domain.PlatformResult{
		PlatformCampaignID: messageID,
		Status:             "sent",
		Details: map[string]any{
			"message_id": messageID,
			"recipients": recipients,
		},
	}
}

func (e *Email) sendWithSendGrid(ctx context.Context, op string, msg domain.EmailMessage) (string, error) {
	to := make([]map[string]string, 0, len(msg.Recipients))
	for _, r := range msg.Recipients {
		to = append(to, map[string]string{"email": r})
	}
	payload := map[string]any{
		"personalizations": []any{map[string]any{"to": to, "subject": msg.Subject}},
		"from":             map[string]string{"email": msg.FromEmail, "name": msg.FromName},
		"content":          []any{map[string]string{"type": "text/html", "value": msg.HTMLContent}},
	}
	req, err := e.client.newJSONRequest(ctx, op, http.MethodPost, e.endpoint("/v3/mail/send"), payload)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+e.cfg.APIKey)

	// SendGrid answers 202 with an empty body.
	header, err := e.client.do(ctx, op, req, nil)
	if err != nil {
		return "", err
	}
	return header.Get("X-Message-Id"), nil
}

func (e *Email) sendWithMailgun(ctx context.Context, op string, msg domain.EmailMessage) (string, error) {
	form := url.Values{}
	form.Set("from", formatAddress(msg.FromName, msg.FromEmail))
	form.Set("to", strings.Join(msg.Recipients, ","))
	form.Set("subject", msg.Subject)
	form.Set("html", msg.HTMLContent)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		e.endpoint("/v3/"+url.PathEscape(e.cfg.Domain)+"/messages"), strings.NewReader(form.Encode()))
	if err != nil {
		return "", e.client.fail(op, 0, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth("api", e.cfg.APIKey)

	var resp struct {
		ID      string `json:"id"`
		Message string `json:"message"`
	}
	if _, err = e.client.do(ctx, op, req, &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}

// sendWithSMTP delivers one message per recipient over a single
// connection.
func (e *Email) sendWithSMTP(ctx context.Context, op string, msg domain.EmailMessage) (string, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", e.cfg.SMTPAddr)
	if err != nil {
		return "", e.client.fail(op, 0, classifyRequestError(ctx, err))
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	c := smtp.NewClient(conn)
	defer c.Close()

	host, _, _ := net.SplitHostPort(e.cfg.SMTPAddr)
	if ok, _ := c.Extension("STARTTLS"); ok {
		if err = c.StartTLS(&tls.Config{ServerName: host, MinVersion: tls.VersionTLS12}); err != nil {
			return "", e.client.fail(op, 0, fmt.Errorf("starttls: %w", err))
		}
	}
	if e.cfg.SMTPUsername != "" {
		if err = c.Auth(sasl.NewPlainClient("", e.cfg.SMTPUsername, e.cfg.SMTPPassword)); err != nil {
			return "", e.client.fail(op, 0, fmt.Errorf("auth: %w", err))
		}
	}

	batchID := uuid.NewString()
	for _, rcpt := range msg.Recipients {
		data := e.buildMessage(msg, rcpt, host)
		if err = c.SendMail(msg.FromEmail, []string{rcpt}, bytes.NewReader(data)); err != nil {
			return "", e.client.fail(op, 0, fmt.Errorf("send to %s: %w", rcpt, err))
		}
	}
	if err = c.Quit(); err != nil {
		return "", e.client.fail(op, 0, fmt.Errorf("quit: %w", err))
	}
	return batchID, nil
}

func (e *Email) buildMessage(msg domain.EmailMessage, to, host string) []byte {
	if host == "" {
		host = "localhost"
	}
	var b bytes.Buffer
	fmt.Fprintf(&b, "From: %s\r\n", formatAddress(msg.FromName, msg.FromEmail))
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", msg.Subject))
	fmt.Fprintf(&b, "Date: %s\r\n", e.now().Format(time.RFC1123Z))
	fmt.Fprintf(&b, "Message-ID: <%s@%s>\r\n", uuid.NewString(), host)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.HTMLContent)
	b.WriteString("\r\n")
	return b.Bytes()
}

func formatAddress(name, addr string) string {
	return (&mail.Address{Name: name, Address: addr}).String()
}

// GetCampaignPerformance returns provider-wide engagement counters for the
// range. The message id is not needed by either stats API.
func (e *Email) GetCampaignPerformance(ctx context.Context, _ string, r domain.DateRange) (domain.RawMetrics, error) {
	const op = "get performance"
	var (
		stats domain.EmailMetrics
		err   error
	)
	switch e.cfg.Provider {
	case "sendgrid":
		stats, err = e.sendGridStats(ctx, op, r)
	case "mailgun":
		stats, err = e.mailgunStats(ctx, op, r)
	default:
		err = e.client.fail(op, 0, fmt.Errorf("provider %q has no stats api", e.cfg.Provider))
	}
	if err != nil {
		return domain.RawMetrics{}, err
	}
	return domain.RawMetrics{Email: &stats}, nil
}

func (e *Email) sendGridStats(ctx context.Context, op string, r domain.DateRange) (domain.EmailMetrics, error) {
	q := url.Values{}
	q.Set("start_date", r.StartString())
	q.Set("end_date", r.EndString())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.endpoint("/v3/stats")+"?"+q.Encode(), nil)
	if err != nil {
		return domain.EmailMetrics{}, e.client.fail(op, 0, err)
	}
	req.Header.Set("Authorization", "Bearer "+e.cfg.APIKey)

	var days []struct {
		Stats []struct {
			Metrics struct {
				Requests     int64 `json:"requests"`
				Delivered    int64 `json:"delivered"`
				UniqueOpens  int64 `json:"unique_opens"`
				UniqueClicks int64 `json:"unique_clicks"`
				Bounces      int64 `json:"bounces"`
				Unsubscribes int64 `json:"unsubscribes"`
			} `json:"metrics"`
		} `json:"stats"`
	}
	if _, err = e.client.do(ctx, op, req, &days); err != nil {
		return domain.EmailMetrics{}, err
	}

	var m domain.EmailMetrics
	for _, d := range days {
		for _, s := range d.Stats {
			m.Sent += s.Metrics.Requests
			m.Delivered += s.Metrics.Delivered
			m.Opened += s.Metrics.UniqueOpens
			m.Clicked += s.Metrics.UniqueClicks
			m.Bounced += s.Metrics.Bounces
			m.Unsubscribed += s.Metrics.Unsubscribes
		}
	}
	return m, nil
}

type mailgunTotal struct {
	Total int64 `json:"total"`
}

func (e *Email) mailgunStats(ctx context.Context, op string, r domain.DateRange) (domain.EmailMetrics, error) {
	q := url.Values{}
	for _, ev := range []string{"accepted", "delivered", "opened", "clicked", "failed", "unsubscribed"} {
		q.Add("event", ev)
	}
	q.Set("start", strconv.FormatInt(r.Start.Unix(), 10))
	q.Set("end", strconv.FormatInt(r.End.AddDate(0, 0, 1).Unix(), 10))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		e.endpoint("/v3/"+url.PathEscape(e.cfg.Domain)+"/stats/total")+"?"+q.Encode(), nil)
	if err != nil {
		return domain.EmailMetrics{}, e.client.fail(op, 0, err)
	}
	req.SetBasicAuth("api", e.cfg.APIKey)

	var resp struct {
		Stats []struct {
			Accepted     mailgunTotal `json:"accepted"`
			Delivered    mailgunTotal `json:"delivered"`
			Opened       mailgunTotal `json:"opened"`
			Clicked      mailgunTotal `json:"clicked"`
			Unsubscribed mailgunTotal `json:"unsubscribed"`
			Failed       struct {
				Permanent mailgunTotal `json:"permanent"`
			} `json:"failed"`
		} `json:"stats"`
	}
	if _, err = e.client.do(ctx, op, req, &resp); err != nil {
		return domain.EmailMetrics{}, err
	}

	var m domain.EmailMetrics
	for _, s := range resp.Stats {
		m.Sent += s.Accepted.Total
		m.Delivered += s.Delivered.Total
		m.Opened += s.Opened.Total
		m.Clicked += s.Clicked.Total
		m.Bounced += s.Failed.Permanent.Total
		m.Unsubscribed += s.Unsubscribed.Total
	}
	return m, nil
}
