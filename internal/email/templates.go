package email

import (
	"bytes"
	"html/template"
)

var verificationTmpl = template.Must(template.New("verification").Parse(`
<html>
<body style="font-family: sans-serif;">
	<h2>Welcome to FlexyGig!</h2>
	<p>Thanks for signing up. Please confirm your email address to activate your account.</p>
	<p><a href="{{.Link}}" style="display:inline-block;padding:10px 20px;background:#2b6cb0;color:#fff;text-decoration:none;border-radius:4px;">Verify Email</a></p>
	<p>Or paste this link into your browser:</p>
	<p>{{.Link}}</p>
	<p>If you didn't create an account, you can safely ignore this email.</p>
</body>
</html>`))

var passwordResetTmpl = template.Must(template.New("password_reset").Parse(`
<html>
<body style="font-family: sans-serif;">
	<h2>Password Reset</h2>
	<p>We received a request to reset your password. The link is valid for one hour.</p>
	<p><a href="{{.Link}}" style="display:inline-block;padding:10px 20px;background:#2b6cb0;color:#fff;text-decoration:none;border-radius:4px;">Reset Password</a></p>
	<p>Or paste this link into your browser:</p>
	<p>{{.Link}}</p>
	<p>If you didn't request a reset, you can safely ignore this email.</p>
</body>
</html>`))

type linkData struct {
	Link string
}

func render(tmpl *template.Template, link string) string {
	var buf bytes.Buffer
	// шаблоны статические, ошибка исполнения невозможна
	_ = tmpl.Execute(&buf, linkData{Link: link})
	return buf.String()
}

// NewVerificationMessage собирает письмо подтверждения регистрации.
func NewVerificationMessage(to, frontendURL, token string) *Message {
	link := frontendURL + "/verify-email?token=" + token
	return &Message{
		To:      to,
		Subject: "Verify your FlexyGig account",
		HTML:    render(verificationTmpl, link),
	}
}

// NewPasswordResetMessage собирает письмо сброса пароля.
func NewPasswordResetMessage(to, frontendURL, token string) *Message {
	link := frontendURL + "/reset-password?token=" + token
	return &Message{
		To:      to,
		Subject: "Reset your FlexyGig password",
		HTML:    render(passwordResetTmpl, link),
	}
}
