package notify

import (
	"context"
	"fmt"
	"net/http"
	"net/smtp"
	"net/url"
	"strings"
	"time"

	"github.com/Domenick1991/staybooking/config"
	"github.com/Domenick1991/staybooking/internal/kafka"
	"go.uber.org/zap"
)

// Dispatcher delivers booking notifications over email and SMS. Every
// channel is best-effort: a failed or skipped send is logged and the
// dispatch still counts as handled. SMS goes out only to numbers from the
// configured verified set.
type Dispatcher struct {
	cfg      config.NotifyConfig
	client   *http.Client
	verified map[string]struct{}
	logger   *zap.Logger
}

func NewDispatcher(cfg config.NotifyConfig, logger *zap.Logger) *Dispatcher {
	verified := make(map[string]struct{}, len(cfg.VerifiedPhoneNumbers))
	for _, number := range cfg.VerifiedPhoneNumbers {
		verified[number] = struct{}{}
	}
	return &Dispatcher{
		cfg:      cfg,
		client:   &http.Client{Timeout: 10 * time.Second},
		verified: verified,
		logger:   logger,
	}
}

// Dispatch routes one booking event to the right recipients. It never
// returns a channel failure so the consumer loop keeps running.
func (d *Dispatcher) Dispatch(ctx context.Context, event kafka.BookingEvent) error {
	switch event.Type {
	case kafka.EventBookingCreated:
		d.sendEmail(event.OwnerEmail,
			fmt.Sprintf("New booking for %s", titleOrDefault(event)),
			fmt.Sprintf("Guest: %s\r\nCheck-in: %s\r\nCheck-out: %s\r\nTotal: $%.2f\r\nProperty: %s\r\nLocation: %s\r\n",
				event.GuestName, formatDate(event.CheckIn), formatDate(event.CheckOut),
				float64(event.TotalPriceCents)/100, titleOrDefault(event), event.ListingLocation))
		d.sendSMS(ctx, event.OwnerPhone,
			fmt.Sprintf("New booking from %s for %s. Check-in: %s", event.GuestName, titleOrDefault(event), formatDate(event.CheckIn)))
	case kafka.EventBookingConfirmed:
		d.sendEmail(event.GuestEmail,
			fmt.Sprintf("Booking confirmed - %s", titleOrDefault(event)),
			fmt.Sprintf("Your booking %s has been confirmed by the host.\r\nCheck-in: %s\r\nCheck-out: %s\r\n",
				event.Reference, formatDate(event.CheckIn), formatDate(event.CheckOut)))
	case kafka.EventBookingCancelled:
		body := fmt.Sprintf("The following booking has been cancelled:\r\nGuest: %s\r\nProperty: %s\r\nCheck-in: %s\r\nCheck-out: %s\r\n",
			event.GuestName, titleOrDefault(event), formatDate(event.CheckIn), formatDate(event.CheckOut))
		d.sendEmail(event.OwnerEmail, fmt.Sprintf("Booking cancelled - %s", titleOrDefault(event)), body)
		d.sendEmail(event.GuestEmail, fmt.Sprintf("Booking cancelled - %s", titleOrDefault(event)), body)
		d.sendSMS(ctx, event.OwnerPhone,
			fmt.Sprintf("Booking by %s for %s was cancelled", event.GuestName, titleOrDefault(event)))
	case kafka.EventBookingExpired:
		d.sendEmail(event.GuestEmail,
			fmt.Sprintf("Booking expired - %s", titleOrDefault(event)),
			fmt.Sprintf("Your booking %s expired before the host confirmed it. You have not been charged.\r\n", event.Reference))
	default:
		d.logger.Warn("unknown booking event type", zap.String("type", event.Type))
	}
	return nil
}

func (d *Dispatcher) IsVerifiedNumber(number string) bool {
	_, ok := d.verified[number]
	return ok
}

func (d *Dispatcher) sendEmail(to, subject, body string) {
	if to == "" {
		return
	}
	if d.cfg.SMTPHost == "" || d.cfg.EmailFrom == "" {
		d.logger.Warn("email not configured, skipping", zap.String("to", to))
		return
	}

	msg := strings.Join([]string{
		"From: " + d.cfg.EmailFrom,
		"To: " + to,
		"Subject: " + subject,
		"",
		body,
	}, "\r\n")

	addr := fmt.Sprintf("%s:%d", d.cfg.SMTPHost, d.cfg.SMTPPort)
	auth := smtp.PlainAuth("", d.cfg.EmailFrom, d.cfg.EmailPassword, d.cfg.SMTPHost)
	if err := smtp.SendMail(addr, auth, d.cfg.EmailFrom, []string{to}, []byte(msg)); err != nil {
		d.logger.Warn("failed to send email", zap.String("to", to), zap.Error(err))
		return
	}
	d.logger.Info("email sent", zap.String("to", to), zap.String("subject", subject))
}

func (d *Dispatcher) sendSMS(ctx context.Context, to, message string) {
	if to == "" {
		return
	}
	if !d.IsVerifiedNumber(to) {
		d.logger.Info("skip SMS: number not verified", zap.String("to", to))
		return
	}
	if d.cfg.SMSGatewayURL == "" || d.cfg.SMSAPIKey == "" {
		d.logger.Warn("SMS not configured, skipping", zap.String("to", to))
		return
	}

	data := url.Values{}
	data.Set("to", to)
	data.Set("from", d.cfg.SMSSender)
	data.Set("message", message)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.cfg.SMSGatewayURL, strings.NewReader(data.Encode()))
	if err != nil {
		d.logger.Warn("failed to build SMS request", zap.Error(err))
		return
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("apiKey", d.cfg.SMSAPIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		d.logger.Warn("failed to send SMS", zap.String("to", to), zap.Error(err))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		d.logger.Warn("SMS gateway rejected message", zap.String("to", to), zap.Int("status", resp.StatusCode))
		return
	}
	d.logger.Info("SMS sent", zap.String("to", to))
}

func titleOrDefault(event kafka.BookingEvent) string {
	if event.ListingTitle != "" {
		return event.ListingTitle
	}
	return "your property"
}

func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
