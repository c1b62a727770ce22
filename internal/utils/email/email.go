package email

import (
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"

	"github.com/abdelrahmanemad10/GYM/internal/config"
	"github.com/abdelrahmanemad10/GYM/internal/models"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
	}
}

// Enabled reports whether SMTP is configured
func (s *Sender) Enabled() bool {
	return s.cfg.SMTPHost != ""
}

// SendProgressSummary sends a training progress summary email.
// Entries are expected newest first, as returned by the history query.
func (s *Sender) SendProgressSummary(to, username string, entries []models.ProgressEntry) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = "Your Weekly Training Progress"

	body := fmt.Sprintf("Dear %s,\n\n", username)
	if len(entries) == 0 {
		body += "No sets were logged yet. Time to hit the gym!\n"
	} else {
		body += "Here are your most recent logged sets:\n\n"
		limit := len(entries)
		if limit > 10 {
			limit = 10
		}
		for _, entry := range entries[:limit] {
			body += fmt.Sprintf(
				"%s  %s - %s: %.1f kg (%+.1f kg)\n",
				entry.Date, entry.DayLabel, entry.Exercise, entry.Weight, entry.Progress,
			)
		}
	}
	body += "\nKeep increasing the loads gradually and eat well.\n\nBest regards,\nGym Service"
	e.Text = []byte(body)

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	if err := e.Send(addr, auth); err != nil {
		s.logger.Errorf("Failed to send email to %s: %v", to, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", to, e.Subject)
	return nil
}
