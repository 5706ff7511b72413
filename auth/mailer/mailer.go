package mailer

import (
	"fmt"
	"net/http"

	sendgrid "github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/drowsalert/admin-api/common"
)

const (
	mailSendPath = "/v3/mail/send"
	baseURL      = "https://api.sendgrid.com"

	noReplyName  = "DrowsAlert"
	noReplyEmail = "noreply@drowsalert.app"
)

// Notification is a plain text email.
type Notification struct {
	Subject string
	Body    string
}

type Mailer interface {
	SendNotification(sn *Notification, to string) error
}

type SendGridMailer struct {
	apiKey string
}

// NewMailer returns a sendgrid backed mailer, or a coward mailer that only
// logs when SENDGRID_API_KEY is not set.
func NewMailer() Mailer {
	apiKey := common.GetEnv("SENDGRID_API_KEY", "")
	if apiKey == "" {
		return CowardMailer{}
	}

	return SendGridMailer{apiKey: apiKey}
}

func (m SendGridMailer) SendNotification(sn *Notification, to string) error {
	v3 := mail.NewV3Mail()
	v3.SetFrom(mail.NewEmail(noReplyName, noReplyEmail))
	v3.Subject = sn.Subject

	enable := false
	v3.SetTrackingSettings(&mail.TrackingSettings{SubscriptionTracking: &mail.SubscriptionTrackingSetting{Enable: &enable}})

	personalization := mail.NewPersonalization()
	personalization.AddTos(mail.NewEmail("", to))
	v3.AddPersonalizations(personalization)

	v3.AddContent(mail.NewContent("text/plain", sn.Body))

	request := sendgrid.GetRequest(m.apiKey, mailSendPath, baseURL)
	request.Method = http.MethodPost
	request.Body = mail.GetRequestBody(v3)

	if _, err := sendgrid.MakeRequestRetry(request); err != nil {
		return err
	}

	return nil
}

// CowardMailer prints instead of sending. Used when no sendgrid key is
// configured, e.g. on localhost.
type CowardMailer struct{}

func (CowardMailer) SendNotification(sn *Notification, to string) error {
	fmt.Printf("Coward mailer not sending %q to %s\n", sn.Subject, to)

	return nil
}
