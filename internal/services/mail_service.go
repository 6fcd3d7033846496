package services

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"net"
	"net/smtp"
	"net/url"
	"strings"
	"time"
)

type IMailService interface {
	SendTwoFactorCode(to, code string) error
	SendMailToResetPassword(to, token string) error
}

// SMTPConfig holds SMTP + branding config.
type SMTPConfig struct {
	Host       string // e.g. "smtp.gmail.com"
	Port       int    // e.g. 587 (STARTTLS)
	Username   string
	Password   string
	From       string // envelope from, e.g. "no-reply@keliauk.lt"
	FromName   string // display name, e.g. "Keliauk.lt"
	RequireTLS bool   // if true, fail if STARTTLS not available

	AppName    string
	AppBaseURL string // e.g. "https://keliauk.lt"
}

type smtpMailService struct {
	cfg     SMTPConfig
	htmlTpl *template.Template
	textTpl *template.Template
}

func NewSMTPMailService(cfg SMTPConfig) (IMailService, error) {
	return &smtpMailService{
		cfg:     cfg,
		htmlTpl: template.Must(template.New("html").Parse(mailHTMLTemplate)),
		textTpl: template.Must(template.New("text").Parse(mailTextTemplate)),
	}, nil
}

func (s *smtpMailService) SendTwoFactorCode(to, code string) error {
	subject := "Jūsų prisijungimo kodas"
	return s.sendRendered(to, subject, mailData{
		Title:   subject,
		Intro:   fmt.Sprintf("Jūsų vienkartinis prisijungimo kodas: %s. Kodas galioja 5 minutes.", code),
		AppName: s.cfg.AppName,
		Year:    time.Now().Year(),
	})
}

func (s *smtpMailService) SendMailToResetPassword(to, token string) error {
	link := fmt.Sprintf("%s/resetpassword?token=%s", strings.TrimRight(s.cfg.AppBaseURL, "/"), url.QueryEscape(token))
	subject := "Slaptažodžio atkūrimas"
	return s.sendRendered(to, subject, mailData{
		Title:     subject,
		Intro:     "Gavome prašymą atkurti jūsų slaptažodį. Jei to neprašėte, ignoruokite šį laišką.",
		ButtonURL: link,
		ButtonTxt: "Atkurti slaptažodį",
		AppName:   s.cfg.AppName,
		Year:      time.Now().Year(),
	})
}

type mailData struct {
	Title     string
	Intro     string
	ButtonURL string
	ButtonTxt string
	AppName   string
	Year      int
}

const mailHTMLTemplate = `<!doctype html>
<html>
<head><meta charset="UTF-8"><title>{{.Title}}</title></head>
<body style="margin:0;background:#f0fdf4;font-family:Helvetica,Arial,sans-serif;color:#1a2e22">
  <div style="max-width:600px;margin:0 auto;padding:32px 16px">
    <div style="background:#ffffff;border-radius:12px;padding:32px;border:1px solid #bbf7d0">
      <div style="font-weight:700;font-size:20px;color:#4d9560">{{.AppName}}</div>
      <h1 style="font-size:24px;margin:24px 0 12px">{{.Title}}</h1>
      <p style="line-height:1.6">{{.Intro}}</p>
      {{if .ButtonURL}}
      <p style="margin:28px 0">
        <a href="{{.ButtonURL}}" style="background:#4d9560;color:#ffffff;text-decoration:none;padding:14px 28px;border-radius:8px;font-weight:600">{{.ButtonTxt}}</a>
      </p>
      <p style="font-size:12px;color:#6b7280;word-break:break-all">{{.ButtonURL}}</p>
      {{end}}
    </div>
    <p style="text-align:center;font-size:12px;color:#6b7280">© {{.Year}} {{.AppName}}</p>
  </div>
</body>
</html>`

const mailTextTemplate = `{{.Title}}

{{.Intro}}

{{if .ButtonURL}}{{.ButtonURL}}
{{end}}
— {{.AppName}} (c) {{.Year}}
`

func (s *smtpMailService) sendRendered(to, subject string, data mailData) error {
	var hb, tb bytes.Buffer
	if err := s.htmlTpl.Execute(&hb, data); err != nil {
		return err
	}
	if err := s.textTpl.Execute(&tb, data); err != nil {
		return err
	}
	return s.send(to, subject, hb.String(), tb.String())
}

func (s *smtpMailService) send(to, subject, htmlBody, textBody string) error {
	from := s.cfg.From
	if name := strings.TrimSpace(s.cfg.FromName); name != "" {
		from = fmt.Sprintf("%s <%s>", name, s.cfg.From)
	}
	boundary := fmt.Sprintf("alt_%d", time.Now().UnixNano())

	var msg bytes.Buffer
	write := func(format string, a ...any) { _, _ = msg.WriteString(fmt.Sprintf(format, a...)) }

	write("From: %s\r\n", from)
	write("To: %s\r\n", to)
	write("Subject: %s\r\n", subject)
	write("Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	write("MIME-Version: 1.0\r\n")
	write("Content-Type: multipart/alternative; boundary=%q\r\n", boundary)
	write("\r\n")

	write("--%s\r\n", boundary)
	write("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	write("%s\r\n\r\n", textBody)

	write("--%s\r\n", boundary)
	write("Content-Type: text/html; charset=UTF-8\r\n\r\n")
	write("%s\r\n\r\n", htmlBody)

	write("--%s--\r\n", boundary)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	dialer := &net.Dialer{Timeout: 10 * time.Second}
	conn, err := dialer.Dial("tcp", addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	c, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return err
	}
	defer c.Quit()

	if ok, _ := c.Extension("STARTTLS"); ok {
		tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
		if err = c.StartTLS(tlsCfg); err != nil {
			return err
		}
	} else if s.cfg.RequireTLS {
		return fmt.Errorf("server does not support STARTTLS and RequireTLS=true")
	}

	if err = c.Auth(auth); err != nil {
		return err
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
	if _, err = w.Write(msg.Bytes()); err != nil {
		return err
	}
	return w.Close()
}
