package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// RSVPReceivedEmailData holds data for the organizer notification sent on each new RSVP.
type RSVPReceivedEmailData struct {
	Name               string
	WillAttend         bool
	HasChildren        bool
	ChildrenNames      string
	DietaryRestriction string
	ReceivedAt         string
}
