package services

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"mime"
	"net"
	"net/smtp"
	"strings"
	textTemplate "text/template"
	"time"

	"travelexplorer/internal/config"
	"travelexplorer/pkg/logger"
)

type IMailService interface {
	SendBookingConfirmation(to string, data BookingMail) error
	SendContactAcknowledgement(to, name, subject string) error
}

// BookingMail is what the confirmation e-mail shows about a booking.
type BookingMail struct {
	BookingID         string
	ContactName       string
	DestinationName   string
	StartDate         string
	EndDate           string
	NumberOfTravelers int
	TotalPrice        float64
	Currency          string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Username   string
	Password   string
	From       string
	FromName   string
	UseSSL     bool // implicit TLS (465) instead of STARTTLS (587)
	RequireTLS bool

	AppName    string
	AppBaseURL string
}

func SMTPConfigFrom(cfg *config.Config) SMTPConfig {
	return SMTPConfig{
		Host:       cfg.SMTPHost,
		Port:       cfg.SMTPPort,
		Username:   cfg.SMTPUsername,
		Password:   cfg.SMTPPassword,
		From:       cfg.SMTPFrom,
		FromName:   cfg.SMTPFromName,
		UseSSL:     cfg.SMTPUseSSL,
		RequireTLS: true,
		AppName:    cfg.AppName,
		AppBaseURL: cfg.AppBaseURL,
	}
}

type smtpMailService struct {
	cfg     SMTPConfig
	htmlTpl *template.Template
	textTpl *textTemplate.Template
	now     func() time.Time
}

func NewSMTPMailService(cfg SMTPConfig) IMailService {
	return &smtpMailService{
		cfg:     cfg,
		htmlTpl: template.Must(template.New("html").Parse(htmlTemplate)),
		textTpl: textTemplate.Must(textTemplate.New("text").Parse(plainTextTemplate)),
		now:     time.Now,
	}
}

func (s *smtpMailService) SendBookingConfirmation(to string, b BookingMail) error {
	subject := fmt.Sprintf("Your booking for %s is received", b.DestinationName)
	link := fmt.Sprintf("%s/bookings/%s/confirmation", strings.TrimRight(s.cfg.AppBaseURL, "/"), b.BookingID)

	html, text, err := s.renderEmail(EmailData{
		Title: subject,
		Intro: fmt.Sprintf("Hi %s, thank you for booking with us. Your trip is pending confirmation.", b.ContactName),
		Lines: []string{
			fmt.Sprintf("Destination: %s", b.DestinationName),
			fmt.Sprintf("Dates: %s to %s", b.StartDate, b.EndDate),
			fmt.Sprintf("Travelers: %d", b.NumberOfTravelers),
			fmt.Sprintf("Total: %.2f %s", b.TotalPrice, b.Currency),
		},
		ButtonURL: link,
		ButtonTxt: "View booking",
		AppName:   s.cfg.AppName,
		Year:      s.now().Year(),
	})
	if err != nil {
		return err
	}
	return s.send(to, subject, html, text)
}

func (s *smtpMailService) SendContactAcknowledgement(to, name, subject string) error {
	title := "We received your message"

	html, text, err := s.renderEmail(EmailData{
		Title:   title,
		Intro:   fmt.Sprintf("Hi %s, thanks for reaching out about \"%s\". We usually respond within 24h.", name, subject),
		AppName: s.cfg.AppName,
		Year:    s.now().Year(),
	})
	if err != nil {
		return err
	}
	return s.send(to, title, html, text)
}

type EmailData struct {
	Title     string
	Intro     string
	Lines     []string
	ButtonURL string
	ButtonTxt string
	AppName   string
	Year      int
}

const htmlTemplate = `<!doctype html>
<html>
<head>
  <meta charset="UTF-8">
  <title>{{.Title}}</title>
  <style>
    body { margin: 0; padding: 0; background: #f1f5f9; color: #0f172a; font-family: Helvetica, Arial, sans-serif; }
    .container { max-width: 600px; margin: 32px auto; background: #ffffff; border-radius: 16px; overflow: hidden; }
    .header { padding: 24px 32px; background: #0f172a; color: #60a5fa; font-weight: 700; text-transform: uppercase; }
    .body { padding: 32px; line-height: 1.6; }
    .btn { display: inline-block; padding: 14px 28px; background: #2563eb; color: #ffffff !important; text-decoration: none; border-radius: 12px; }
    .footer { padding: 20px 32px; color: #64748b; font-size: 13px; text-align: center; }
  </style>
</head>
<body>
  <div class="container">
    <div class="header">{{.AppName}}</div>
    <div class="body">
      <h1>{{.Title}}</h1>
      <p>{{.Intro}}</p>
      {{if .Lines}}<ul>{{range .Lines}}<li>{{.}}</li>{{end}}</ul>{{end}}
      {{if .ButtonURL}}<p><a class="btn" href="{{.ButtonURL}}">{{.ButtonTxt}}</a></p>{{end}}
    </div>
    <div class="footer">&copy; {{.Year}} {{.AppName}}</div>
  </div>
</body>
</html>`

const plainTextTemplate = `{{.Title}}

{{.Intro}}
{{range .Lines}}
- {{.}}{{end}}
{{if .ButtonURL}}
{{.ButtonTxt}}: {{.ButtonURL}}
{{end}}
{{.AppName}} (c) {{.Year}}
`

func (s *smtpMailService) renderEmail(data EmailData) (html string, text string, err error) {
	var hb, tb bytes.Buffer

	if err = s.htmlTpl.Execute(&hb, data); err != nil {
		return "", "", err
	}
	if err = s.textTpl.Execute(&tb, data); err != nil {
		return "", "", err
	}
	return hb.String(), tb.String(), nil
}

func (s *smtpMailService) buildMessage(to, subject, htmlBody, textBody string) []byte {
	now := s.now()
	boundary := fmt.Sprintf("alt_%d", now.UnixNano())

	var msg bytes.Buffer
	write := func(format string, a ...any) { _, _ = fmt.Fprintf(&msg, format, a...) }

	write("From: %s\r\n", s.formatFromHeader())
	write("To: %s\r\n", to)
	write("Subject: %s\r\n", mime.QEncoding.Encode("UTF-8", subject))
	write("Date: %s\r\n", now.Format(time.RFC1123Z))
	write("MIME-Version: 1.0\r\n")
	write("Content-Type: multipart/alternative; boundary=%q\r\n", boundary)
	write("\r\n")

	write("--%s\r\n", boundary)
	write("Content-Type: text/plain; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 8bit\r\n\r\n")
	write("%s\r\n\r\n", textBody)

	write("--%s\r\n", boundary)
	write("Content-Type: text/html; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 8bit\r\n\r\n")
	write("%s\r\n\r\n", htmlBody)

	write("--%s--\r\n", boundary)
	return msg.Bytes()
}

func (s *smtpMailService) send(to, subject, htmlBody, textBody string) error {
	msg := s.buildMessage(to, subject, htmlBody, textBody)
	addr := net.JoinHostPort(s.cfg.Host, fmt.Sprint(s.cfg.Port))
	tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}

	var conn net.Conn
	var err error
	if s.cfg.UseSSL {
		conn, err = tls.DialWithDialer(&net.Dialer{Timeout: 10 * time.Second}, "tcp", addr, tlsCfg)
	} else {
		conn, err = (&net.Dialer{Timeout: 10 * time.Second}).Dial("tcp", addr)
	}
	if err != nil {
		return fmt.Errorf("dial smtp: %w", err)
	}
	defer conn.Close()

	c, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return err
	}
	defer c.Quit()

	if !s.cfg.UseSSL {
		if ok, _ := c.Extension("STARTTLS"); ok {
			if err = c.StartTLS(tlsCfg); err != nil {
				return err
			}
		} else if s.cfg.RequireTLS {
			return fmt.Errorf("server does not support STARTTLS and RequireTLS=true")
		}
	}

	if s.cfg.Username != "" {
		if err = c.Auth(smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)); err != nil {
			return err
		}
	}
	if err = c.Mail(s.cfg.From); err != nil {
		return err
	}
	if err = c.Rcpt(to); err != nil {
		return err
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err = w.Write(msg); err != nil {
		return err
	}
	return w.Close()
}

func (s *smtpMailService) formatFromHeader() string {
	name := strings.TrimSpace(s.cfg.FromName)
	if name == "" {
		return s.cfg.From
	}
	return fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("UTF-8", name), s.cfg.From)
}

// logMailService stands in when no SMTP host is configured.
type logMailService struct {
	log logger.Logger
}

func NewLogMailService(log logger.Logger) IMailService {
	return &logMailService{log: log}
}

func (l *logMailService) SendBookingConfirmation(to string, b BookingMail) error {
	l.log.Info("Mail disabled, skipping booking confirmation", "to", to, "booking_id", b.BookingID)
	return nil
}

func (l *logMailService) SendContactAcknowledgement(to, name, subject string) error {
	l.log.Info("Mail disabled, skipping contact acknowledgement", "to", to, "subject", subject)
	return nil
}
