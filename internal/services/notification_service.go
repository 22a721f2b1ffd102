package services

import (
	"context"
	"fmt"
	"html"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/AliHaider728/royal-palm-map-clone/internal/config"
	"github.com/AliHaider728/royal-palm-map-clone/internal/contact"
	"github.com/AliHaider728/royal-palm-map-clone/internal/models"
	"github.com/AliHaider728/royal-palm-map-clone/internal/utils"
)

// HTML template for the dealer's new-inquiry email.
const inquiryEmailHTML = `<!DOCTYPE html>
<html>
<body style="font-family:Arial,sans-serif;color:#111">
  <h2 style="color:#16a34a">New inquiry for %s</h2>
  <p><strong>Name:</strong> %s</p>
  <p><strong>Email:</strong> %s</p>
  <p><strong>Phone:</strong> %s</p>
  <p><strong>Message:</strong><br>%s</p>
  <p style="font-size:12px;color:#666">Received %s</p>
</body>
</html>`

// DealerNotifier tells a dealer about a new inquiry. Failures are reported
// but never block the inquiry itself.
type DealerNotifier interface {
	NotifyInquiry(ctx context.Context, dealer *models.Profile, property *models.Property, inq *models.Inquiry) error
}

type dealerNotifier struct {
	orgName        string
	fromEmail      string
	sandbox        bool
	fromPhone      string
	sendgridClient *sendgrid.Client
	twilioClient   *twilio.RestClient
}

func NewDealerNotifier(cfg *config.Config) DealerNotifier {
	n := &dealerNotifier{
		orgName:   cfg.OrganizationName,
		fromEmail: cfg.LDFlag_SendgridFromEmail,
		sandbox:   cfg.LDFlag_SendgridSandboxMode,
		fromPhone: cfg.TwilioFromPhone,
	}
	if cfg.SendgridAPIKey != "" {
		n.sendgridClient = sendgrid.NewSendClient(cfg.SendgridAPIKey)
	}
	if cfg.TwilioAccountSID != "" && cfg.TwilioAuthToken != "" && cfg.TwilioFromPhone != "" {
		n.twilioClient = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.TwilioAccountSID,
			Password: cfg.TwilioAuthToken,
		})
	}
	return n
}

func (n *dealerNotifier) NotifyInquiry(_ context.Context, dealer *models.Profile, property *models.Property, inq *models.Inquiry) error {
	subject := fmt.Sprintf("New inquiry: %s", property.Title)
	plain := fmt.Sprintf(
		"%s is interested in %s.\n\nEmail: %s\nPhone: %s\nMessage: %s",
		inq.Name, property.Title, utils.Val(inq.Email), utils.Val(inq.Phone), utils.Val(inq.Message),
	)

	var firstErr error

	// ---------- SendGrid Email ----------
	if n.sendgridClient != nil && dealer.Email != "" {
		htmlBody := fmt.Sprintf(
			inquiryEmailHTML,
			html.EscapeString(property.Title),
			html.EscapeString(inq.Name),
			html.EscapeString(utils.Val(inq.Email)),
			html.EscapeString(utils.Val(inq.Phone)),
			html.EscapeString(utils.Val(inq.Message)),
			time.Now().UTC().Format(time.RFC1123Z),
		)
		from := mail.NewEmail(n.orgName, n.fromEmail)
		to := mail.NewEmail(dealer.DisplayName(), dealer.Email)
		msg := mail.NewSingleEmail(from, subject, to, plain, htmlBody)
		if n.sandbox {
			ms := mail.NewMailSettings()
			ms.SetSandboxMode(mail.NewSetting(true))
			msg.MailSettings = ms
		}
		if _, err := n.sendgridClient.Send(msg); err != nil {
			utils.Logger.WithError(err).Warnf("Inquiry email failed for dealer %s", dealer.ID)
			firstErr = err
		}
	} else {
		utils.Logger.Debugf("SendGrid client is nil, skipping inquiry email to dealer %s", dealer.ID)
	}

	// ---------- Twilio SMS ----------
	if n.twilioClient != nil && utils.Val(dealer.Phone) != "" {
		params := &twilioApi.CreateMessageParams{}
		params.SetTo("+" + contact.SanitizePhone(*dealer.Phone))
		params.SetFrom(n.fromPhone)
		params.SetBody(subject + " :: " + inq.Name + " " + utils.Val(inq.Phone))
		if _, err := n.twilioClient.Api.CreateMessage(params); err != nil {
			utils.Logger.WithError(err).Warnf("Inquiry SMS failed for dealer %s", dealer.ID)
			if firstErr == nil {
				firstErr = err
			}
		}
	} else {
		utils.Logger.Debugf("Twilio client is nil, skipping inquiry SMS to dealer %s", dealer.ID)
	}

	return firstErr
}
