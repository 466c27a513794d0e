package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eventrsvp/internal/domain"
	"eventrsvp/internal/metrics"
)

const rsvpReceivedTemplate = "rsvp_received"

type emailNotifier struct {
	mailer     domain.Mailer
	renderer   domain.EmailTemplateRenderer
	recipients []string
}

// NewEmailNotifier returns an RSVPNotifier that emails every recipient about each new RSVP.
func NewEmailNotifier(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, recipients []string) domain.RSVPNotifier {
	return &emailNotifier{mailer: mailer, renderer: renderer, recipients: recipients}
}

func (n *emailNotifier) RSVPCreated(ctx context.Context, rsvp *domain.RSVP) error {
	if rsvp == nil {
		return fmt.Errorf("rsvp is nil")
	}
	data := &domain.RSVPReceivedEmailData{
		Name:               rsvp.Name,
		WillAttend:         rsvp.WillAttend,
		HasChildren:        rsvp.HasChildren,
		ChildrenNames:      deref(rsvp.ChildrenNames),
		DietaryRestriction: deref(rsvp.DietaryRestriction),
		ReceivedAt:         rsvp.Timestamp.UTC().Format(time.RFC3339),
	}
	subject, htmlBody, textBody, err := n.renderer.Render(rsvpReceivedTemplate, data)
	if err != nil {
		return fmt.Errorf("failed to render %s template: %w", rsvpReceivedTemplate, err)
	}

	var errs []error
	for _, to := range n.recipients {
		if err := n.mailer.Send(ctx, to, subject, htmlBody, textBody); err != nil {
			metrics.NotificationsTotal.WithLabelValues("failed").Inc()
			errs = append(errs, fmt.Errorf("send to %s: %w", to, err))
			continue
		}
		metrics.NotificationsTotal.WithLabelValues("sent").Inc()
	}
	return errors.Join(errs...)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
