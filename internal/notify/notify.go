// Package notify sends best-effort admin notifications for new grievances.
// Delivery is fire-and-forget: a failed send is logged and never surfaced to
// the submitter, and a committed insert is never rolled back because of it.
package notify

import (
	"log"

	"github.com/AdityaVermayc/Ruu-girlf-portal/internal/config"
	"github.com/AdityaVermayc/Ruu-girlf-portal/internal/models"
)

// Notifier is a single outbound notification channel.
type Notifier interface {
	NotifyNewGrievance(g *models.Grievance) error
}

// Dispatcher fans a new-grievance event out to the configured channels.
type Dispatcher struct {
	cfg      *config.Config
	channels []Notifier
}

// NewDispatcher builds a dispatcher from the configuration. Channels with
// incomplete configuration are left out; an empty dispatcher is valid and
// simply logs that nothing was sent.
func NewDispatcher(cfg *config.Config) *Dispatcher {
	d := &Dispatcher{cfg: cfg}

	if cfg.Mail.AdminAddr != "" {
		d.channels = append(d.channels, NewMailer(cfg))
	}

	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != 0 {
		tg, err := NewTelegramNotifier(cfg)
		if err != nil {
			log.Printf("ERROR: Telegram notification channel disabled: %v", err)
		} else {
			d.channels = append(d.channels, tg)
		}
	}

	return d
}

// Dispatch sends the notification on every configured channel. It is meant
// to run in its own goroutine; errors are logged here and go no further.
// In the production deployment the outbound network path is unavailable, so
// sending is skipped entirely.
func (d *Dispatcher) Dispatch(g *models.Grievance) {
	if d.cfg.Production() {
		log.Printf("INFO: Skipping notification for grievance %d in production", g.ID)
		return
	}

	if len(d.channels) == 0 {
		log.Printf("INFO: No notification channels configured, grievance %d not announced", g.ID)
		return
	}

	for _, ch := range d.channels {
		if err := ch.NotifyNewGrievance(g); err != nil {
			log.Printf("ERROR: Failed to send grievance %d notification: %v", g.ID, err)
		}
	}
}
