package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fekuna/omnipos-storefront/internal/contact"
	"github.com/fekuna/omnipos-storefront/internal/contact/dto"
	"github.com/fekuna/omnipos-storefront/pkg/i18n"
	"github.com/fekuna/omnipos-storefront/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSink struct {
	mu        sync.Mutex
	failFirst int
	delivered []*dto.Submission
	attempts  int
}

func (f *fakeSink) Deliver(_ context.Context, s *dto.Submission) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.attempts++
	if f.attempts <= f.failFirst {
		return errors.New("broker unavailable")
	}
	f.delivered = append(f.delivered, s)
	return nil
}

func (f *fakeSink) Name() string { return "fake" }

var translator = i18n.MustNew("fr")

func validInput() *dto.Input {
	return &dto.Input{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Phone:   "+229 90 00 00 00",
		Message: "Je voudrais un devis pour 3 laptops.",
	}
}

func newUC(sink contact.Sink, retries int) contact.UseCase {
	return NewContactUseCase(sink, Options{
		Retries: retries,
		Now:     func() time.Time { return time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC) },
	}, logger.NewNop())
}

func validationFields(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr *contact.ValidationError
	require.True(t, errors.As(err, &verr), "expected validation error, got %v", err)
	return verr.Fields
}

func TestSubmit_Success(t *testing.T) {
	sink := &fakeSink{}
	uc := newUC(sink, 0)

	in := validInput()
	in.Name = "  Ada Lovelace  "
	receipt, err := uc.Submit(context.Background(), in, translator.Localizer("fr"))
	require.NoError(t, err)

	assert.NotEmpty(t, receipt.ID)
	assert.True(t, receipt.Reset)
	assert.Equal(t, dto.NotificationSuccess, receipt.Notification.Kind)
	assert.Equal(t, "Message envoyé avec succès !", receipt.Notification.Title)

	require.Len(t, sink.delivered, 1)
	assert.Equal(t, "Ada Lovelace", sink.delivered[0].Name)
	assert.Equal(t, receipt.ID, sink.delivered[0].ID)
	assert.Equal(t, "fr", sink.delivered[0].Locale)
}

func TestSubmit_LengthBoundaries(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*dto.Input)
		field  string
		ok     bool
	}{
		{"name 1 char", func(in *dto.Input) { in.Name = "A" }, "name", false},
		{"name 2 chars", func(in *dto.Input) { in.Name = "Al" }, "", true},
		{"name padded to 1 char", func(in *dto.Input) { in.Name = "   A   " }, "name", false},
		{"name 100 chars", func(in *dto.Input) { in.Name = strings.Repeat("a", 100) }, "", true},
		{"name 101 chars", func(in *dto.Input) { in.Name = strings.Repeat("a", 101) }, "name", false},
		{"name counted in characters", func(in *dto.Input) { in.Name = "Éé" }, "", true},
		{"bad email", func(in *dto.Input) { in.Email = "not-an-email" }, "email", false},
		{"short email", func(in *dto.Input) { in.Email = "a@b.co" }, "", true},
		{"long email", func(in *dto.Input) { in.Email = strings.Repeat("a", 250) + "@b.com" }, "email", false},
		{"phone 7 chars", func(in *dto.Input) { in.Phone = "1234567" }, "phone", false},
		{"phone 8 chars", func(in *dto.Input) { in.Phone = "12345678" }, "", true},
		{"phone 21 chars", func(in *dto.Input) { in.Phone = strings.Repeat("1", 21) }, "phone", false},
		{"message 9 chars", func(in *dto.Input) { in.Message = "123456789" }, "message", false},
		{"message 10 chars", func(in *dto.Input) { in.Message = "1234567890" }, "", true},
		{"message 1001 chars", func(in *dto.Input) { in.Message = strings.Repeat("m", 1001) }, "message", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sink := &fakeSink{}
			in := validInput()
			tc.mutate(in)

			_, err := newUC(sink, 0).Submit(context.Background(), in, translator.Localizer("en"))
			if tc.ok {
				require.NoError(t, err)
				return
			}
			fields := validationFields(t, err)
			assert.Contains(t, fields, tc.field)
			assert.Len(t, fields, 1)
			assert.Empty(t, sink.delivered)
		})
	}
}

func TestSubmit_LocalizedMessages(t *testing.T) {
	in := &dto.Input{Name: "A", Email: "nope", Phone: "123", Message: "short"}

	_, err := newUC(&fakeSink{}, 0).Submit(context.Background(), in, translator.Localizer("fr"))
	fields := validationFields(t, err)

	assert.Equal(t, "Le nom doit contenir au moins 2 caractères", fields["name"])
	assert.Equal(t, "Adresse email invalide", fields["email"])
	assert.Equal(t, "Le numéro de téléphone doit contenir au moins 8 caractères", fields["phone"])
	assert.Equal(t, "Le message doit contenir au moins 10 caractères", fields["message"])
	assert.Equal(t, "invalid contact form: email, message, name, phone", err.Error())
}

func TestSubmit_EmptyForm(t *testing.T) {
	_, err := newUC(&fakeSink{}, 0).Submit(context.Background(), &dto.Input{}, translator.Localizer("en"))
	fields := validationFields(t, err)

	assert.Len(t, fields, 4)
	assert.Equal(t, "Invalid email address", fields["email"])
	assert.Equal(t, "Name must be at least 2 characters", fields["name"])
}

func TestSubmit_RetriesTransientFailure(t *testing.T) {
	sink := &fakeSink{failFirst: 2}

	receipt, err := newUC(sink, 3).Submit(context.Background(), validInput(), translator.Localizer("en"))
	require.NoError(t, err)
	assert.True(t, receipt.Reset)
	assert.Equal(t, 3, sink.attempts)
}

func TestSubmit_DeliveryFailure(t *testing.T) {
	sink := &fakeSink{failFirst: 100}

	receipt, err := newUC(sink, 2).Submit(context.Background(), validInput(), translator.Localizer("en"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, contact.ErrDeliveryFailed))
	assert.Equal(t, 3, sink.attempts)

	require.NotNil(t, receipt)
	assert.False(t, receipt.Reset)
	assert.Equal(t, dto.NotificationError, receipt.Notification.Kind)
	assert.Equal(t, "Failed to send message", receipt.Notification.Title)
	assert.Contains(t, receipt.Notification.Description, "WhatsApp")
}

func TestMessageID(t *testing.T) {
	assert.Equal(t, "validation.name.min", messageID("name", "required"))
	assert.Equal(t, "validation.email.invalid", messageID("email", "required"))
	assert.Equal(t, "validation.email.invalid", messageID("email", "email"))
	assert.Equal(t, "validation.email.max", messageID("email", "max"))
	assert.Equal(t, "validation.phone.min", messageID("phone", "min"))
}
