package mailer

import (
	"errors"
	"strings"
	"testing"

	"example.com/fitness4all/backend/internal/config"
	"example.com/fitness4all/backend/internal/models"
)

func TestPlanHTMLHeadings(t *testing.T) {
	html := PlanHTML("## Lunes\n### Desayuno", nutritionAccent)

	if !strings.Contains(html, ">Lunes</h2>") {
		t.Fatalf("expected h2 heading, got:\n%s", html)
	}
	if !strings.Contains(html, ">Desayuno</h3>") {
		t.Fatalf("expected h3 heading, got:\n%s", html)
	}
	if !strings.Contains(html, nutritionAccent) {
		t.Fatalf("expected accent color applied, got:\n%s", html)
	}
}

func TestPlanHTMLList(t *testing.T) {
	html := PlanHTML("- avena\n- fruta\n\ntexto", exerciseAccent)

	if strings.Count(html, "<li") != 2 {
		t.Fatalf("expected 2 list items, got:\n%s", html)
	}
	if strings.Count(html, "<ul") != 1 || !strings.Contains(html, "</ul>") {
		t.Fatalf("expected a single closed list, got:\n%s", html)
	}
	if !strings.Contains(html, ">texto</p>") {
		t.Fatalf("expected paragraph after the list, got:\n%s", html)
	}
}

func TestPlanHTMLBold(t *testing.T) {
	html := PlanHTML("come **mucha** fruta", nutritionAccent)

	if !strings.Contains(html, "<strong") || !strings.Contains(html, "mucha</strong>") {
		t.Fatalf("expected bold span, got:\n%s", html)
	}
}

func TestPlanHTMLEscapesMarkup(t *testing.T) {
	html := PlanHTML("1 < 2 & <script>alert(1)</script>", nutritionAccent)

	if strings.Contains(html, "<script>") {
		t.Fatalf("markup must be escaped, got:\n%s", html)
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Fatalf("expected escaped entities, got:\n%s", html)
	}
}

func TestSendPlanDisabled(t *testing.T) {
	m := New(config.MailConfig{})

	plan := models.GeneratedPlan{PlanType: models.PlanTypeNutrition, Plan: "## Lunes"}
	if err := m.SendPlan("user@example.com", "Ana", plan); !errors.Is(err, ErrDisabled) {
		t.Fatalf("expected ErrDisabled, got %v", err)
	}
}
