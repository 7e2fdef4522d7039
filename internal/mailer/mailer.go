// Package mailer sends generated plans by email over SMTP.
package mailer

import (
	"errors"
	"fmt"
	"time"

	"gopkg.in/gomail.v2"

	"example.com/fitness4all/backend/internal/config"
	"example.com/fitness4all/backend/internal/models"
)

// Accent colors per plan type, matching the web app's plan views.
const (
	exerciseAccent  = "#2c3e50"
	nutritionAccent = "#28a745"
)

var ErrDisabled = errors.New("mail is not configured")

type Mailer struct {
	cfg config.MailConfig
}

func New(cfg config.MailConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

// SendPlan emails one generated plan to the user, rendered as HTML.
func (m *Mailer) SendPlan(to, userName string, plan models.GeneratedPlan) error {
	if !m.cfg.Enabled() {
		return ErrDisabled
	}

	subject := "Tu plan de alimentación - Fitness4All"
	accent := nutritionAccent
	if plan.PlanType == models.PlanTypeExercise {
		subject = "Tu plan de ejercicios - Fitness4All"
		accent = exerciseAccent
	}

	body := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; color: #333; max-width: 640px;">
<p>Hola %s,</p>
<p>Aquí tienes tu plan <strong>%s</strong>, generado el %s.</p>
%s
<p style="margin-top: 24px; color: #868e96; font-size: 12px;">Fitness4All</p>
</div>`,
		inlineHTML(userName, accent),
		inlineHTML(plan.QuestionnaireTitle, accent),
		plan.CreatedAt.Format("02/01/2006"),
		PlanHTML(plan.Plan, accent))

	message := gomail.NewMessage()
	message.SetHeader("From", m.cfg.From)
	message.SetHeader("To", to)
	message.SetHeader("Subject", subject)
	message.SetHeader("Date", time.Now().Format(time.RFC1123Z))
	message.SetBody("text/html", body)

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)
	return dialer.DialAndSend(message)
}
