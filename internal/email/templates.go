package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"seller_landing/platform/phone"
)

//go:embed templates/*.html
var templateFS embed.FS

type baseEmailData struct {
	Title      string
	Heading    string
	Subheading string
	CTALabel   string
	CTAURL     template.URL
}

type leadNotificationEmailData struct {
	baseEmailData
	Name         string
	Phone        string
	Message      string
	ConsentLabel string
	SubmittedAt  string
}

func newLeadNotificationData(lead Lead) leadNotificationEmailData {
	data := leadNotificationEmailData{
		baseEmailData: baseEmailData{
			Title:      "새 상담 신청",
			Heading:    "새 상담 신청이 접수되었습니다",
			Subheading: "무료 상세페이지 진단 신청 내역입니다.",
		},
		Name:         lead.Name,
		Phone:        lead.Phone,
		Message:      lead.Message,
		ConsentLabel: "미동의",
		SubmittedAt:  lead.SubmittedAt,
	}
	if lead.Privacy {
		data.ConsentLabel = "동의함"
	}
	// tel: links are only emitted for numbers that parse as E.164.
	if e164, ok := phone.E164(lead.Phone); ok {
		data.CTALabel = "전화 걸기"
		data.CTAURL = template.URL("tel:" + e164)
	}
	return data
}

func renderEmailTemplate(name string, data any) (string, error) {
	templates := []string{"templates/base.html", "templates/" + name}
	tmpl, err := template.New("base.html").ParseFS(templateFS, templates...)
	if err != nil {
		return "", fmt.Errorf("parse email template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "email", data); err != nil {
		return "", fmt.Errorf("execute email template %s: %w", name, err)
	}
	return buf.String(), nil
}
