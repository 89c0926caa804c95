package smtp

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"mime/multipart"
	"net/smtp"
	"net/textproto"

	"github.com/Shreyas75/cmv-backend/internal/config"
)

// Attachment is a file sent along with an email.
type Attachment struct {
	Filename string
	Data     []byte
}

// Mailer sends transactional email: plain text, text+HTML alternatives, and
// messages with a file attachment.
type Mailer interface {
	SendEmail(to, subject, text string) error
	SendHTMLEmail(to, subject, text, html string) error
	SendEmailWithAttachment(to, subject, text string, att Attachment) error
}

type mailer struct {
	host     string
	port     string
	from     string
	fromName string
	username string
	password string
}

func NewMailer(cfg *config.Config) Mailer {
	return &mailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		from:     cfg.SMTPFrom,
		fromName: cfg.SMTPFromName,
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
	}
}

func (m *mailer) SendEmail(to, subject, text string) error {
	msg := m.headers(to, subject, `text/plain; charset="utf-8"`)
	msg = append(msg, []byte(text)...)
	return m.send(to, msg)
}

func (m *mailer) SendHTMLEmail(to, subject, text, html string) error {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	msg := m.headers(to, subject, fmt.Sprintf(`multipart/alternative; boundary="%s"`, w.Boundary()))

	// Plain-text part first so clients that cannot render HTML fall back to it.
	part, err := w.CreatePart(textproto.MIMEHeader{"Content-Type": {`text/plain; charset="utf-8"`}})
	if err != nil {
		return err
	}
	if _, err := part.Write([]byte(text)); err != nil {
		return err
	}
	part, err = w.CreatePart(textproto.MIMEHeader{"Content-Type": {`text/html; charset="utf-8"`}})
	if err != nil {
		return err
	}
	if _, err := part.Write([]byte(html)); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	return m.send(to, append(msg, body.Bytes()...))
}

func (m *mailer) SendEmailWithAttachment(to, subject, text string, att Attachment) error {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	msg := m.headers(to, subject, fmt.Sprintf(`multipart/mixed; boundary="%s"`, w.Boundary()))

	part, err := w.CreatePart(textproto.MIMEHeader{"Content-Type": {`text/plain; charset="utf-8"`}})
	if err != nil {
		return err
	}
	if _, err := part.Write([]byte(text)); err != nil {
		return err
	}

	part, err = w.CreatePart(textproto.MIMEHeader{
		"Content-Type":              {"text/csv"},
		"Content-Transfer-Encoding": {"base64"},
		"Content-Disposition":       {fmt.Sprintf(`attachment; filename="%s"`, att.Filename)},
	})
	if err != nil {
		return err
	}
	encoded := make([]byte, base64.StdEncoding.EncodedLen(len(att.Data)))
	base64.StdEncoding.Encode(encoded, att.Data)
	if _, err := part.Write(encoded); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	return m.send(to, append(msg, body.Bytes()...))
}

func (m *mailer) headers(to, subject, contentType string) []byte {
	from := m.from
	if m.fromName != "" {
		from = fmt.Sprintf("%q <%s>", m.fromName, m.from)
	}
	return []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: %s\r\n\r\n",
		from, to, subject, contentType,
	))
}

func (m *mailer) send(to string, msg []byte) error {
	addr := fmt.Sprintf("%s:%s", m.host, m.port)

	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	return smtp.SendMail(addr, auth, m.from, []string{to}, msg)
}
