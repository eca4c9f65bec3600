package mailer

//go:generate go run go.uber.org/mock/mockgen -source=./mailer.go -destination=./mocks/mailer_mock.go -package=mocks

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"praxis/config"
	"praxis/infras/otel"
	"praxis/shared/constant"
)

const (
	otelAttrRecipient = "recipient"
	otelAttrSubject   = "subject"
)

type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

type mailerImpl struct {
	dialer *gomail.Dialer
	config *config.Config
	otel   otel.Otel
}

func (m *mailerImpl) Send(ctx context.Context, to, subject, htmlBody string) (err error) {
	_, scope := m.otel.NewScope(ctx, constant.OtelMailerScopeName, constant.OtelMailerScopeName+".Send")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttributes(map[string]any{
		otelAttrRecipient: to,
		otelAttrSubject:   subject,
	})

	message := gomail.NewMessage()
	message.SetAddressHeader("From", m.config.Mail.FromAddress, m.config.Mail.FromName)
	message.SetHeader("To", to)
	message.SetHeader("Subject", subject)
	message.SetBody("text/html", htmlBody)

	if err = m.dialer.DialAndSend(message); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}

	return nil
}

func New(config *config.Config, otel otel.Otel) Mailer {
	dialer := gomail.NewDialer(
		config.Mail.SMTP.Host,
		config.Mail.SMTP.Port,
		config.Mail.SMTP.Username,
		config.Mail.SMTP.Password,
	)

	return &mailerImpl{
		dialer: dialer,
		config: config,
		otel:   otel,
	}
}
