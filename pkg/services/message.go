package services

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/ragecodemaster/landing/pkg/cardinput"
	"github.com/ragecodemaster/landing/pkg/models"
)

const source = "RageCodeMaster Pro"

// Telegram receives these with parse_mode=HTML, so every user value is escaped.

func consultationMessage(form models.ConsultationForm, ref string, at time.Time) string {
	goal := "not specified"
	if form.Goal != "" {
		goal = form.Goal.Label()
	}
	message := strings.TrimSpace(form.Message)
	if message == "" {
		message = "-"
	}

	var b strings.Builder
	b.WriteString("🎯 <b>New consultation request</b>\n\n")
	fmt.Fprintf(&b, "👤 Name: %s\n", html.EscapeString(form.Name))
	fmt.Fprintf(&b, "📧 Email: %s\n", html.EscapeString(form.Email))
	fmt.Fprintf(&b, "🎯 Goal: %s\n", html.EscapeString(goal))
	fmt.Fprintf(&b, "💬 Message: %s\n\n", html.EscapeString(message))
	fmt.Fprintf(&b, "📅 Date: %s\n", at.Format("2006-01-02 15:04 MST"))
	fmt.Fprintf(&b, "🌐 Source: %s\n", source)
	fmt.Fprintf(&b, "🔖 Ref: %s", ref)
	return b.String()
}

// The card number is masked and the CVV never leaves the server.
func cardLinkMessage(form models.CardLinkForm, ref string, at time.Time) string {
	var b strings.Builder
	b.WriteString("💳 <b>New card linking: FREE first lesson access</b>\n\n")
	b.WriteString("👤 Personal info:\n")
	fmt.Fprintf(&b, "Name: %s %s\n", html.EscapeString(form.FirstName), html.EscapeString(form.LastName))
	fmt.Fprintf(&b, "Email: %s\n", html.EscapeString(form.Email))
	if form.Course != "" {
		fmt.Fprintf(&b, "Course: %s\n", html.EscapeString(form.Course))
	}
	b.WriteString("\n💳 Card info:\n")
	fmt.Fprintf(&b, "Card: %s\n", cardinput.MaskCardNumber(form.CardNumber))
	fmt.Fprintf(&b, "Expiry: %s\n\n", html.EscapeString(form.Expiry))
	b.WriteString("📍 Address:\n")
	fmt.Fprintf(&b, "%s\n", html.EscapeString(form.Address))
	fmt.Fprintf(&b, "%s, %s %s\n\n",
		html.EscapeString(form.City), html.EscapeString(strings.ToUpper(form.State)), html.EscapeString(form.Zip))
	b.WriteString("🎯 Status: card linked, first lesson access granted\n")
	fmt.Fprintf(&b, "📅 Date: %s\n", at.Format("2006-01-02 15:04 MST"))
	fmt.Fprintf(&b, "🔖 Ref: %s", ref)
	return b.String()
}
