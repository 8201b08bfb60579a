// Package notify delivers installment reminders to borrowers.
package notify

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"

	"github.com/jordan-wright/email"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Reminder is one installment a borrower should hear about.
type Reminder struct {
	To            string
	Name          string
	PaymentNumber string
	Installment   int
	Amount        decimal.Decimal
	LateFee       decimal.Decimal
	DueDate       time.Time
	Overdue       bool
}

type Notifier interface {
	SendReminder(ctx context.Context, r Reminder) error
}

// SMTPConfig holds the mail relay settings. Addr is host:port.
type SMTPConfig struct {
	Addr     string
	Username string
	Password string
	From     string
}

// EmailNotifier sends reminders through an SMTP relay.
type EmailNotifier struct {
	cfg  SMTPConfig
	log  logrus.FieldLogger
	send func(e *email.Email, addr string, auth smtp.Auth) error
}

func NewEmailNotifier(cfg SMTPConfig, log logrus.FieldLogger) *EmailNotifier {
	return &EmailNotifier{
		cfg:  cfg,
		log:  log,
		send: func(e *email.Email, addr string, auth smtp.Auth) error { return e.Send(addr, auth) },
	}
}

func (n *EmailNotifier) SendReminder(ctx context.Context, r Reminder) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	e := buildReminder(n.cfg.From, r)

	var auth smtp.Auth
	if n.cfg.Username != "" {
		host, _, err := net.SplitHostPort(n.cfg.Addr)
		if err != nil {
			return fmt.Errorf("notify: smtp addr %q: %w", n.cfg.Addr, err)
		}
		auth = smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, host)
	}
	if err := n.send(e, n.cfg.Addr, auth); err != nil {
		return fmt.Errorf("notify: send reminder to %s: %w", r.To, err)
	}
	n.log.WithFields(logrus.Fields{"to": r.To, "payment_number": r.PaymentNumber}).Info("reminder sent")
	return nil
}

func buildReminder(from string, r Reminder) *email.Email {
	e := email.NewEmail()
	e.From = from
	e.To = []string{r.To}

	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", r.Name)
	due := r.DueDate.Format("2006-01-02")
	if r.Overdue {
		e.Subject = fmt.Sprintf("Overdue loan installment %s", r.PaymentNumber)
		fmt.Fprintf(&b, "Installment %d of %s was due on %s and is overdue.\n", r.Installment, r.Amount.StringFixed(2), due)
		if r.LateFee.IsPositive() {
			fmt.Fprintf(&b, "A late fee of %s has accrued so far.\n", r.LateFee.StringFixed(2))
		}
		b.WriteString("Please pay as soon as possible to stop further late fees.\n")
	} else {
		e.Subject = fmt.Sprintf("Upcoming loan installment %s", r.PaymentNumber)
		fmt.Fprintf(&b, "Installment %d of %s is due on %s.\n", r.Installment, r.Amount.StringFixed(2), due)
	}
	b.WriteString("\nReference: " + r.PaymentNumber + "\n")
	e.Text = []byte(b.String())
	return e
}

// LogNotifier only logs reminders; used when no SMTP relay is configured.
type LogNotifier struct {
	log logrus.FieldLogger
}

func NewLogNotifier(log logrus.FieldLogger) *LogNotifier { return &LogNotifier{log: log} }

func (n *LogNotifier) SendReminder(_ context.Context, r Reminder) error {
	n.log.WithFields(logrus.Fields{
		"to":             r.To,
		"payment_number": r.PaymentNumber,
		"amount":         r.Amount.StringFixed(2),
		"due_date":       r.DueDate.Format("2006-01-02"),
		"overdue":        r.Overdue,
	}).Info("installment reminder")
	return nil
}
