package notifier

import (
	"fmt"
	"log"
	"time"

	"github.com/wneessen/go-mail"

	"MarketDash/internal/config"
	"MarketDash/internal/report"
)

// EmailNotifier writes the report to disk and sends it as a PDF attachment
// over SMTP with implicit TLS.
type EmailNotifier struct {
	Sender     string
	Password   string
	Recipient  string
	SMTPHost   string
	SMTPPort   int
	OutputPath string

	// send is swappable for tests; defaults to a real SMTP round-trip.
	send func(msg *mail.Msg) error
}

// NewEmailNotifier creates a notifier from the loaded configuration.
func NewEmailNotifier(cfg *config.Config) *EmailNotifier {
	n := &EmailNotifier{
		Sender:     cfg.Email.Sender,
		Password:   cfg.Email.Password,
		Recipient:  cfg.Email.Recipient,
		SMTPHost:   cfg.Email.SMTPHost,
		SMTPPort:   cfg.Email.SMTPPort,
		OutputPath: cfg.Report.OutputPath,
	}
	n.send = n.sendSMTP
	return n
}

// Dispatch serializes the document to the configured path, then emails it.
// The returned bool reports email success only: missing credentials skip the
// send without attempting a connection, and transmission failures are logged
// and absorbed. A render failure is returned; the report cannot exist at all
// in that case.
func (n *EmailNotifier) Dispatch(doc *report.Document, chartPNG []byte, now time.Time) (bool, error) {
	if err := report.Render(doc, chartPNG, n.OutputPath); err != nil {
		return false, err
	}
	log.Printf("[INFO] report saved: %s", n.OutputPath)

	if n.Sender == "" || n.Password == "" || n.Recipient == "" {
		log.Println("[INFO] email credentials not set, skipping email")
		log.Println("[INFO] set EMAIL_SENDER, EMAIL_PASSWORD, EMAIL_RECIPIENT to enable")
		return false, nil
	}

	msg, err := n.compose(now)
	if err != nil {
		log.Printf("[ERROR] compose email: %v", err)
		return false, nil
	}
	if err := n.send(msg); err != nil {
		log.Printf("[ERROR] email failed: %v", err)
		return false, nil
	}
	log.Printf("[INFO] email sent to %s", n.Recipient)
	return true, nil
}

func (n *EmailNotifier) compose(now time.Time) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(n.Sender); err != nil {
		return nil, fmt.Errorf("sender address: %w", err)
	}
	if err := msg.To(n.Recipient); err != nil {
		return nil, fmt.Errorf("recipient address: %w", err)
	}
	msg.Subject(Subject(now))
	msg.SetBodyString(mail.TypeTextPlain, Body(now))
	msg.AttachFile(n.OutputPath, mail.WithFileName(AttachmentName(now)))
	return msg, nil
}

func (n *EmailNotifier) sendSMTP(msg *mail.Msg) error {
	client, err := mail.NewClient(n.SMTPHost,
		mail.WithPort(n.SMTPPort),
		mail.WithSSL(),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(n.Sender),
		mail.WithPassword(n.Password),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	return client.DialAndSend(msg)
}
