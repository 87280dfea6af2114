package mailer

import (
	"bytes"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"
)

//go:generate mockgen -destination=../../internal/domain/mocks/mock_mailer.go -package=mocks github.com/inboxwarm/inboxwarm/pkg/mailer Mailer

// ReplyMessage carries everything needed to produce a threaded
// plain-text reply from a warmup mailbox.
type ReplyMessage struct {
	From            string
	To              string
	OriginalSubject string
	Body            string
	InReplyTo       string
	References      string
}

// Subject returns the reply subject, avoiding "Re: Re:" stacking.
func (m *ReplyMessage) Subject() string {
	if len(m.OriginalSubject) >= 4 && (m.OriginalSubject[:4] == "Re: " || m.OriginalSubject[:4] == "RE: ") {
		return m.OriginalSubject
	}
	return "Re: " + m.OriginalSubject
}

// Mailer is the interface for sending warmup replies over SMTP
type Mailer interface {
	// SendReply sends a single threaded reply
	SendReply(msg *ReplyMessage) error
	// SendBatch sends several replies from the same mailbox over one
	// SMTP connection
	SendBatch(msgs []*ReplyMessage) error
}

// Config holds per-sender SMTP transport settings
type Config struct {
	Host     string
	Port     int
	UseSSL   bool // implicit TLS on 465 instead of STARTTLS on 587
	Username string
	Password string

	// RetryDelay is the pause before the single transient-error retry
	RetryDelay time.Duration
}

// SMTPMailer implements the Mailer interface using go-mail
type SMTPMailer struct {
	config *Config
}

// NewSMTPMailer creates a new SMTP mailer for one sender mailbox
func NewSMTPMailer(config *Config) *SMTPMailer {
	if config.RetryDelay == 0 {
		config.RetryDelay = 2 * time.Second
	}
	return &SMTPMailer{config: config}
}

// SendReply sends a single threaded reply
func (m *SMTPMailer) SendReply(msg *ReplyMessage) error {
	return m.SendBatch([]*ReplyMessage{msg})
}

// SendBatch sends all replies over one SMTP connection
func (m *SMTPMailer) SendBatch(msgs []*ReplyMessage) error {
	built := make([]*mail.Msg, 0, len(msgs))
	for _, msg := range msgs {
		mm, err := buildMailMsg(msg)
		if err != nil {
			return err
		}
		built = append(built, mm)
	}

	client, err := m.createSMTPClient()
	if err != nil {
		return err
	}

	if err := client.DialAndSend(built...); err != nil {
		// One retry after a short pause; persistent auth errors fail
		// identically on the second attempt and are classified upstream.
		time.Sleep(m.config.RetryDelay)
		if err2 := client.DialAndSend(built...); err2 != nil {
			return fmt.Errorf("failed to send reply: %w", err2)
		}
	}

	return nil
}

// RawMessage renders the reply as an RFC 5322 blob for transports that
// submit raw messages instead of speaking SMTP.
func RawMessage(msg *ReplyMessage) ([]byte, error) {
	mm, err := buildMailMsg(msg)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if _, err := mm.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to render reply: %w", err)
	}
	return buf.Bytes(), nil
}

func buildMailMsg(msg *ReplyMessage) (*mail.Msg, error) {
	mm := mail.NewMsg(mail.WithNoDefaultUserAgent())

	if err := mm.From(msg.From); err != nil {
		return nil, fmt.Errorf("failed to set reply from address: %w", err)
	}
	if err := mm.To(msg.To); err != nil {
		return nil, fmt.Errorf("failed to set reply recipient: %w", err)
	}

	mm.Subject(msg.Subject())
	if msg.InReplyTo != "" {
		mm.SetGenHeader(mail.HeaderInReplyTo, msg.InReplyTo)
	}
	if msg.References != "" {
		mm.SetGenHeader(mail.HeaderReferences, msg.References)
	}

	mm.SetBodyString(mail.TypeTextPlain, msg.Body)

	return mm, nil
}

func (m *SMTPMailer) createSMTPClient() (*mail.Client, error) {
	clientOptions := []mail.Option{
		mail.WithPort(m.config.Port),
		mail.WithTimeout(30 * time.Second),
		mail.WithUsername(m.config.Username),
		mail.WithPassword(m.config.Password),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
	}

	if m.config.UseSSL {
		clientOptions = append(clientOptions, mail.WithSSL())
	} else {
		clientOptions = append(clientOptions, mail.WithTLSPolicy(mail.TLSMandatory))
	}

	client, err := mail.NewClient(m.config.Host, clientOptions...)
	if err != nil {
		return nil, fmt.Errorf("failed to create SMTP client: %w", err)
	}

	return client, nil
}
