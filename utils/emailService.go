package utils

import (
	"fmt"
	"net/smtp"
	"strings"

	"studytask/config"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	headers := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n\n"
	message := []byte("Subject: " + subject + "\n" + headers + htmlBody)

	auth := smtp.PlainAuth("", from, password, smtpHost)

	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, message); err != nil {
		fmt.Println("Error sending email:", err)
		return err
	}

	fmt.Println("Email sent successfully to", strings.Join(to, ", "))
	return nil
}

// SendWelcomeEmail sends the registration email with the initial login
func SendWelcomeEmail(email, name string) error {
	subject := "Welcome to Study Task"

	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px; box-shadow: 0 2px 8px rgba(0, 0, 0, 0.1);">
					<h2 style="color: #333333; text-align: center;">Welcome to Study Task, %s!</h2>
					<p style="font-size: 16px; color: #555555; text-align: center;">Your account is ready. Enroll in a course with its code and start collecting stars.</p>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 30px;">The Study Task team</p>
				</div>
			</body>
		</html>
	`, name)

	return SendEmail([]string{email}, subject, body)
}

// SendDigestEmail sends the weekly gamification digest to a student
func SendDigestEmail(email, name string, stars, newAchievements int) error {
	subject := "Your weekly Study Task progress"

	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px; box-shadow: 0 2px 8px rgba(0, 0, 0, 0.1);">
					<h2 style="color: #333333; text-align: center;">Keep it up, %s!</h2>
					<p style="font-size: 16px; color: #555555; text-align: center;">Star balance: <b>%d</b></p>
					<p style="font-size: 16px; color: #555555; text-align: center;">Achievements unlocked this week: <b>%d</b></p>
				</div>
			</body>
		</html>
	`, name, stars, newAchievements)

	return SendEmail([]string{email}, subject, body)
}
