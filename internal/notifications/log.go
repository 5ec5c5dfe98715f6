package notifications

import (
	"context"

	"animal-rescue-backend/internal/logger"
)

// LogProvider writes notifications to the application log instead of sending
// them. Used in development when no mail API key is configured.
type LogProvider struct{}

// NewLogProvider creates a new log-only provider
func NewLogProvider() *LogProvider {
	return &LogProvider{}
}

// Send logs the message and reports success.
func (p *LogProvider) Send(ctx context.Context, subject, htmlBody string, to []Recipient) error {
	emails := make([]string, len(to))
	for i, r := range to {
		emails[i] = r.Email
	}
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"to":      emails,
		"subject": subject,
	}).Info("Notification (log provider)")
	return nil
}
