package utils

import (
	"fmt"
	"net/smtp"
	"palpite/config"
	"strings"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// Skip silently when SMTP is not configured (local/dev setups)
	if from == "" || from == "defaultSecret" {
		fmt.Println("Email sender not configured, skipping email:", subject)
		return nil
	}

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Central do Palpite <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		fmt.Println("Error sending email:", err)
		return err
	}
	return nil
}

// HTML wrapper matching the site's dark theme
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #0F172A; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #1E293B; border-radius: 8px; overflow: hidden; }
			.header { background-color: #020617; padding: 30px; text-align: center; }
			.header h1 { color: #00FF88; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #E2E8F0; line-height: 1.6; }
			.content h2 { color: #FFFFFF; margin-top: 0; }
			.footer { background-color: #020617; padding: 20px; text-align: center; font-size: 12px; color: #64748B; }
			.info-box { background: #0F172A; padding: 15px; border-radius: 4px; border-left: 4px solid #00FF88; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>Central do Palpite</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				Central do Palpite &bull; Palpites e análises de futebol
			</div>
		</div>
	</body>
	</html>`, title, bodyContent)
}

// SendPurchaseReceipt emails the viewer after a payment is confirmed.
// Failures are logged by the caller and never block the unlock.
func SendPurchaseReceipt(email, name, matchName string, amount float64) error {
	body := fmt.Sprintf(`
		<p>Olá %s,</p>
		<p>Seu pagamento foi confirmado e o palpite premium já está desbloqueado.</p>
		<div class="info-box">
			<p><strong>Partida:</strong> %s</p>
			<p><strong>Valor:</strong> R$ %.2f</p>
		</div>
		<p>Bons palpites!</p>`, name, matchName, amount)

	return SendEmail([]string{email}, "Pagamento confirmado - Central do Palpite", getEmailTemplate("Compra confirmada", body))
}
