package mail

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"sync"
	"time"

	"gym-booking/internal/domain/event"
	"gym-booking/internal/pkg/config"
	"gym-booking/internal/usecase/notify"
	"gym-booking/internal/usecase/queries"
)

var (
	ErrQueueFull     = errors.New("mail queue full")
	ErrMailerClosed  = errors.New("mailer closed")
	ErrNoRecipient   = errors.New("mail has no recipient")
	ErrNotConfigured = errors.New("smtp server not configured")
)

type Message struct {
	To      []string
	Subject string
	HTML    string
}

type SendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// Mailer delivers messages from a bounded queue on a single background worker.
type Mailer struct {
	cfg    config.MailConfig
	loc    *time.Location
	logger *slog.Logger
	send   SendFunc

	mu     sync.Mutex
	closed bool
	queue  chan Message
}

type Option func(*Mailer)

func WithSendFunc(fn SendFunc) Option {
	return func(m *Mailer) { m.send = fn }
}

func NewMailer(cfg config.MailConfig, loc *time.Location, logger *slog.Logger, opts ...Option) *Mailer {
	size := cfg.QueueSize
	if size <= 0 {
		size = 100
	}
	m := &Mailer{
		cfg:    cfg,
		loc:    loc,
		logger: logger,
		send:   smtp.SendMail,
		queue:  make(chan Message, size),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Mailer) Enabled() bool {
	return m.cfg.Host != ""
}

// Enqueue never blocks.
func (m *Mailer) Enqueue(msg Message) error {
	if len(msg.To) == 0 {
		return ErrNoRecipient
	}
	if !m.Enabled() {
		return ErrNotConfigured
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrMailerClosed
	}
	select {
	case m.queue <- msg:
		return nil
	default:
		return ErrQueueFull
	}
}

// Run delivers queued mail until ctx is cancelled or Close has been called and the queue drained.
func (m *Mailer) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-m.queue:
			if !ok {
				return
			}
			if err := m.deliver(msg); err != nil {
				m.logger.Error("failed to send mail",
					"subject", msg.Subject,
					"recipients", len(msg.To),
					"error", err.Error())
			}
		}
	}
}

func (m *Mailer) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.closed {
		m.closed = true
		close(m.queue)
	}
}

// SendBookingNotice informs the studio operators; it is a no-op when no operator address is configured.
func (m *Mailer) SendBookingNotice(_ context.Context, n notify.Notification) error {
	if m.cfg.NotifyAddress == "" || !m.Enabled() {
		return nil
	}

	subject := "New booking: " + n.FirstName + " " + n.LastName
	if n.Type == event.TypeDeleted {
		subject = "Booking cancelled: " + n.FirstName + " " + n.LastName
	}

	body, err := render(noticeTemplate, map[string]any{
		"Created":  n.Type == event.TypeCreated,
		"Name":     n.FirstName + " " + n.LastName,
		"StartsAt": n.StartsAt.In(m.loc).Format("Monday 02/01/2006 15:04"),
	})
	if err != nil {
		return err
	}
	return m.Enqueue(Message{To: []string{m.cfg.NotifyAddress}, Subject: subject, HTML: body})
}

func (m *Mailer) SendReminder(_ context.Context, r *queries.ReminderView) error {
	local := r.StartsAt.In(m.loc)
	body, err := render(reminderTemplate, map[string]any{
		"FirstName": r.FirstName,
		"Day":       local.Format("Monday 02/01/2006"),
		"Hour":      local.Format("15:04"),
	})
	if err != nil {
		return err
	}
	return m.Enqueue(Message{
		To:      []string{r.Email},
		Subject: "Reminder: your session tomorrow at " + local.Format("15:04"),
		HTML:    body,
	})
}

func (m *Mailer) deliver(msg Message) error {
	addr := net.JoinHostPort(m.cfg.Host, strconv.Itoa(m.cfg.Port))

	var auth smtp.Auth
	if m.cfg.User != "" {
		auth = smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)
	}
	return m.send(addr, auth, m.cfg.From, msg.To, m.compose(msg))
}

func (m *Mailer) compose(msg Message) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s\r\n", m.cfg.From)
	fmt.Fprintf(&buf, "To: %s\r\n", strings.Join(msg.To, ", "))
	// Subjects carry member names; encoding keeps CR/LF out of the header block.
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", msg.Subject))
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	buf.WriteString("\r\n")
	buf.WriteString(msg.HTML)
	return buf.Bytes()
}

var (
	noticeTemplate = template.Must(template.New("notice").Parse(
		`<p>{{if .Created}}New booking{{else}}Booking cancelled{{end}}: <strong>{{.Name}}</strong></p>` +
			`<p>Slot: {{.StartsAt}}</p>`))

	reminderTemplate = template.Must(template.New("reminder").Parse(
		`<p>Hi {{.FirstName}},</p>` +
			`<p>this is a reminder of your session on {{.Day}} at {{.Hour}}.</p>` +
			`<p>If you cannot make it, please cancel the booking so the slot can be used by someone else.</p>`))
)

func render(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s mail: %w", t.Name(), err)
	}
	return buf.String(), nil
}
