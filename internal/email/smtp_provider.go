package email

import (
	"crypto/tls"
	"fmt"

	gomail "gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
	UseTLS    bool
}

// SMTPProvider delivers mail through an SMTP relay.
type SMTPProvider struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPProvider(config SMTPConfig) (*SMTPProvider, error) {
	if config.Host == "" {
		return nil, fmt.Errorf("SMTP host is required")
	}
	if config.Port <= 0 || config.Port > 65535 {
		return nil, fmt.Errorf("invalid SMTP port: %d", config.Port)
	}
	if config.FromEmail == "" {
		return nil, fmt.Errorf("from email is required")
	}

	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)
	if config.UseTLS {
		dialer.TLSConfig = &tls.Config{ServerName: config.Host}
	}

	return &SMTPProvider{
		config: config,
		dialer: dialer,
	}, nil
}

func (p *SMTPProvider) Send(msg *Message) error {
	if len(msg.To) == 0 {
		return fmt.Errorf("no recipients specified")
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.config.FromEmail, p.config.FromName)
	m.SetHeader("To", msg.To...)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)
	if msg.HTMLBody != "" {
		m.AddAlternative("text/html", msg.HTMLBody)
	}

	if err := p.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (p *SMTPProvider) SendSwapRequested(to, requesterName, skillOffered, skillWanted string) error {
	return p.Send(&Message{
		To:      []string{to},
		Subject: "New skill swap request",
		Body:    renderSwapRequested(requesterName, skillOffered, skillWanted),
	})
}

func (p *SMTPProvider) SendSwapDecided(to, providerName, skillWanted string, accepted bool) error {
	subject := "Your swap request was rejected"
	if accepted {
		subject = "Your swap request was accepted"
	}
	return p.Send(&Message{
		To:      []string{to},
		Subject: subject,
		Body:    renderSwapDecided(providerName, skillWanted, accepted),
	})
}

func (p *SMTPProvider) Close() error {
	return nil
}
