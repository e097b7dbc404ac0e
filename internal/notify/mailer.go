package notify

import (
	"fmt"
	"html"

	gomail "gopkg.in/gomail.v2"

	"github.com/AdityaVermayc/Ruu-girlf-portal/internal/config"
	"github.com/AdityaVermayc/Ruu-girlf-portal/internal/models"
)

// Mailer sends the HTML summary email to the admin address.
type Mailer struct {
	cfg *config.Config
}

// NewMailer creates a Mailer bound to the configured SMTP relay.
func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{cfg: cfg}
}

// NotifyNewGrievance sends one summary email for a freshly inserted grievance.
func (m *Mailer) NotifyNewGrievance(g *models.Grievance) error {
	mail := m.cfg.Mail

	msg := gomail.NewMessage()
	msg.SetHeader("From", mail.Sender)
	msg.SetHeader("To", mail.AdminAddr)
	msg.SetHeader("Subject", fmt.Sprintf("New Grievance from %s 💌", m.cfg.UserName))
	msg.SetBody("text/html", grievanceHTML(g))

	dialer := gomail.NewDialer(mail.Host, mail.Port, mail.Username, mail.Password)
	// Port 587 negotiates STARTTLS on its own; 465 needs TLS from the start.
	dialer.SSL = mail.UseTLS && mail.Port == 465

	return dialer.DialAndSend(msg)
}

func grievanceHTML(g *models.Grievance) string {
	return fmt.Sprintf(`
        <h3>New Grievance Submitted 💌</h3>
        <p><strong>Title:</strong> %s</p>
        <p><strong>Mood:</strong> %s</p>
        <p><strong>Priority:</strong> %s</p>
        <p><strong>Description:</strong><br>%s</p>
        `,
		html.EscapeString(g.Title),
		html.EscapeString(g.Mood),
		html.EscapeString(g.Priority),
		html.EscapeString(g.Description),
	)
}
