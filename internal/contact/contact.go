// Package contact validates contact-form submissions and hands them to a
// delivery sink. Nothing is stored locally.
package contact

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/fekuna/omnipos-storefront/internal/contact/dto"
	"github.com/fekuna/omnipos-storefront/pkg/i18n"
)

// ErrDeliveryFailed is returned once every delivery attempt has failed.
var ErrDeliveryFailed = errors.New("contact delivery failed")

// Sink delivers an accepted submission.
type Sink interface {
	Deliver(ctx context.Context, s *dto.Submission) error
	Name() string
}

type UseCase interface {
	// Submit validates input and delivers it. On a delivery failure the
	// receipt still carries the failure notification.
	Submit(ctx context.Context, input *dto.Input, loc *i18n.Localizer) (*dto.Receipt, error)
}

// ValidationError maps field names to localized messages.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	return "invalid contact form: " + strings.Join(names, ", ")
}
