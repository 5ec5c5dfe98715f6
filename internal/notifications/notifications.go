// Package notifications delivers templated emails for application events.
// Delivery is best-effort: callers fire a notification after their primary
// write has committed and a failed send is logged, never propagated.
package notifications

import (
	"context"

	"animal-rescue-backend/internal/logger"
)

// Template identifies one of the email templates.
type Template string

const (
	TemplateWelcome                 Template = "welcome"
	TemplateAwgApplied              Template = "awg_applied"
	TemplateAwgPublished            Template = "awg_published"
	TemplateCommentReply            Template = "comment_reply"
	TemplateApplicationReceived     Template = "application_received"
	TemplateApplicationAccepted     Template = "application_accepted"
	TemplateApplicationRejected     Template = "application_rejected"
	TemplateFostererProfileComplete Template = "fosterer_profile_complete"
	TemplateSavedSearchDigest       Template = "saved_search_digest"
)

// Recipient is one addressee of a notification.
type Recipient struct {
	Email string
	Name  string
}

// Message is a fully resolved notification ready for a provider.
type Message struct {
	Template Template
	To       []Recipient
	// Context carries the template variables. Keys are template-specific.
	Context map[string]interface{}
}

// Provider delivers a rendered message over some channel.
type Provider interface {
	Send(ctx context.Context, subject, htmlBody string, to []Recipient) error
}

// Notifier renders templates and hands them to a provider.
type Notifier struct {
	provider Provider
}

// NewNotifier creates a new notifier
func NewNotifier(provider Provider) *Notifier {
	return &Notifier{provider: provider}
}

// Notify renders and sends a message. Errors are logged and swallowed so a
// mail outage never fails the request that triggered the notification.
func (n *Notifier) Notify(ctx context.Context, msg Message) {
	if len(msg.To) == 0 {
		return
	}
	log := logger.WithContext(ctx).WithField("template", string(msg.Template))
	subject, body, err := Render(msg.Template, msg.Context)
	if err != nil {
		log.Errorf("Failed to render notification: %v", err)
		return
	}
	if err := n.provider.Send(ctx, subject, body, msg.To); err != nil {
		log.Errorf("Failed to send notification: %v", err)
	}
}
