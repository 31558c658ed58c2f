package email

import (
	"context"
	"errors"
	"fmt"
	"log"

	"fitlife/fitness-api/internal/config"

	"github.com/resend/resend-go/v2"
)

// Mailer defines the interface for transactional email delivery.
type Mailer interface {
	SendWelcome(ctx context.Context, toEmail, name string) error
	SendPasswordReset(ctx context.Context, toEmail, resetURL string) error
	SendMagicLink(ctx context.Context, toEmail, linkURL string) error
}

// resendMailer implements Mailer using the Resend API.
type resendMailer struct {
	client *resend.Client
	from   string
	appURL string
}

// NewResendMailer creates a new Mailer backed by Resend.
func NewResendMailer(cfg config.EmailConfig) (Mailer, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("resend API key is required")
	}
	return &resendMailer{
		client: resend.NewClient(cfg.APIKey),
		from:   cfg.FromAddress,
		appURL: cfg.AppURL,
	}, nil
}

func (m *resendMailer) send(ctx context.Context, toEmail, subject, html string) error {
	params := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{toEmail},
		Subject: subject,
		Html:    html,
	}

	sent, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return err
	}

	log.Printf("INFO: Email '%s' sent to %s (id: %s)", subject, toEmail, sent.Id)
	return nil
}

// SendWelcome greets a newly registered user.
func (m *resendMailer) SendWelcome(ctx context.Context, toEmail, name string) error {
	heading := "Welcome aboard!"
	if name != "" {
		heading = fmt.Sprintf("Welcome aboard, %s!", name)
	}
	body := fmt.Sprintf(`
		<h2 style="color: #e2e8f0; font-size: 24px; margin: 0 0 16px 0;">%s 🎉</h2>
		<p style="color: #94a3b8; line-height: 1.6; margin: 0 0 24px 0;">
			You're one step away from starting your fitness transformation. Click the button below to open the app and unlock your personalized health journey.
		</p>
		<a href="%s" style="display: inline-block; background: linear-gradient(135deg, #3b82f6 0%%, #8b5cf6 100%%); color: white; text-decoration: none; padding: 14px 32px; border-radius: 8px; font-weight: 600; font-size: 16px;">
			Get Started
		</a>`, heading, m.appURL)
	footer := "If you didn't create an account, you can safely ignore this email."

	return m.send(ctx, toEmail, "Welcome to FitLife Pro", wrapTemplate(body, footer))
}

// SendPasswordReset delivers a password reset link.
func (m *resendMailer) SendPasswordReset(ctx context.Context, toEmail, resetURL string) error {
	body := fmt.Sprintf(`
		<h2 style="color: #e2e8f0; font-size: 24px; margin: 0 0 16px 0;">Password Reset Request</h2>
		<p style="color: #94a3b8; line-height: 1.6; margin: 0 0 24px 0;">
			We received a request to reset your password. Click the button below to set a new password.
		</p>
		<a href="%s" style="display: inline-block; background: linear-gradient(135deg, #3b82f6 0%%, #8b5cf6 100%%); color: white; text-decoration: none; padding: 14px 32px; border-radius: 8px; font-weight: 600; font-size: 16px;">
			Reset Password
		</a>`, resetURL)
	footer := "This link expires in 1 hour. If you didn't request this, ignore this email."

	return m.send(ctx, toEmail, "Reset Your FitLife Pro Password", wrapTemplate(body, footer))
}

// SendMagicLink delivers a one-time sign-in link.
func (m *resendMailer) SendMagicLink(ctx context.Context, toEmail, linkURL string) error {
	body := fmt.Sprintf(`
		<h2 style="color: #e2e8f0; font-size: 24px; margin: 0 0 16px 0;">Magic Login Link</h2>
		<p style="color: #94a3b8; line-height: 1.6; margin: 0 0 24px 0;">
			Click the button below to sign in to your FitLife Pro account.
		</p>
		<a href="%s" style="display: inline-block; background: linear-gradient(135deg, #3b82f6 0%%, #8b5cf6 100%%); color: white; text-decoration: none; padding: 14px 32px; border-radius: 8px; font-weight: 600; font-size: 16px;">
			Sign In to FitLife Pro
		</a>`, linkURL)
	footer := "This link expires in 1 hour."

	return m.send(ctx, toEmail, "Your FitLife Pro Login Link", wrapTemplate(body, footer))
}

// wrapTemplate renders the shared branded email frame around a body block.
func wrapTemplate(body, footer string) string {
	return fmt.Sprintf(`
		<div style="font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; max-width: 600px; margin: 0 auto; background: linear-gradient(135deg, #0f0f23 0%%, #1a1a2e 100%%); padding: 40px; border-radius: 16px;">
			<div style="text-align: center; margin-bottom: 32px;">
				<h1 style="color: #3b82f6; font-size: 32px; margin: 0;">FitLife Pro</h1>
				<p style="color: #94a3b8; margin-top: 8px;">Your AI-Powered Fitness Partner</p>
			</div>
			<div style="background: rgba(59, 130, 246, 0.1); border: 1px solid rgba(59, 130, 246, 0.3); border-radius: 12px; padding: 24px; margin-bottom: 24px;">%s</div>
			<p style="color: #64748b; font-size: 14px; text-align: center; margin: 0;">%s</p>
		</div>`, body, footer)
}
