package mailer

import (
	"fmt"
	"time"

	"maverik-copilot-be/internal/config"

	"github.com/go-resty/resty/v2"
	"gopkg.in/gomail.v2"
)

const welcomeSubject = "Bienvenido a Maverik"

type IEmailService interface {
	SendWelcome(toEmail, password string) error
}

// WelcomeBody renders the signup mail with the login credentials.
func WelcomeBody(username, password, frontendURL string) string {
	return fmt.Sprintf(
		"Felicitaciones. Has creado tu cuenta en Maverik Copiloto.<br>"+
			"Tus datos para iniciar sesión son:<br/>"+
			"Usuario: %s<br/>"+
			"Clave: %s<br/>"+
			"Website: %s",
		username, password, frontendURL,
	)
}

// NewEmailService picks the transport named by cfg.Transport ("api" or "smtp").
func NewEmailService(cfg config.MailConfig, frontendURL string) IEmailService {
	if cfg.Transport == "smtp" {
		return &smtpEmailService{
			dialer:      gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
			senderName:  cfg.SenderName,
			senderEmail: cfg.SenderAddress,
			frontendURL: frontendURL,
		}
	}
	return &apiEmailService{
		client: resty.New().
			SetTimeout(15 * time.Second).
			SetHeader("accept", "application/json").
			SetHeader("content-type", "application/json").
			SetHeader("api-key", cfg.APIKey),
		apiURL:      cfg.APIURL,
		senderName:  cfg.SenderName,
		senderEmail: cfg.SenderAddress,
		frontendURL: frontendURL,
	}
}

// apiEmailService posts to a transactional mail HTTP API.
type apiEmailService struct {
	client      *resty.Client
	apiURL      string
	senderName  string
	senderEmail string
	frontendURL string
}

type apiContact struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

type apiMessage struct {
	Sender      apiContact   `json:"sender"`
	To          []apiContact `json:"to"`
	Subject     string       `json:"subject"`
	TextContent string       `json:"textContent"`
}

func (s *apiEmailService) SendWelcome(toEmail, password string) error {
	if s.apiURL == "" {
		return fmt.Errorf("mail api url is not configured")
	}
	msg := apiMessage{
		Sender:      apiContact{Name: s.senderName, Email: s.senderEmail},
		To:          []apiContact{{Email: toEmail}},
		Subject:     welcomeSubject,
		TextContent: WelcomeBody(toEmail, password, s.frontendURL),
	}

	resp, err := s.client.R().SetBody(msg).Post(s.apiURL)
	if err != nil {
		return fmt.Errorf("send welcome mail: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("send welcome mail: api answered %d", resp.StatusCode())
	}
	return nil
}

type smtpEmailService struct {
	dialer      *gomail.Dialer
	senderName  string
	senderEmail string
	frontendURL string
}

func (s *smtpEmailService) SendWelcome(toEmail, password string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.senderEmail, s.senderName)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", welcomeSubject)
	m.SetBody("text/html", WelcomeBody(toEmail, password, s.frontendURL))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send welcome mail over smtp: %w", err)
	}
	return nil
}
