package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/fekuna/omnipos-storefront/internal/contact"
	"github.com/fekuna/omnipos-storefront/internal/contact/dto"
	"github.com/fekuna/omnipos-storefront/pkg/i18n"
	"github.com/fekuna/omnipos-storefront/pkg/logger"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Options struct {
	// Retries is the number of extra delivery attempts after a failure.
	Retries   int
	BaseDelay time.Duration
	MaxDelay  time.Duration
	Now       func() time.Time
}

type contactUseCase struct {
	sink     contact.Sink
	validate *validator.Validate
	opts     Options
	logger   logger.ZapLogger
}

func NewContactUseCase(sink contact.Sink, opts Options, log logger.ZapLogger) contact.UseCase {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.MaxDelay < opts.BaseDelay {
		opts.MaxDelay = opts.BaseDelay
	}
	return &contactUseCase{
		sink:     sink,
		validate: newValidator(),
		opts:     opts,
		logger:   log,
	}
}

func (uc *contactUseCase) Submit(ctx context.Context, input *dto.Input, loc *i18n.Localizer) (*dto.Receipt, error) {
	in := input.Trimmed()
	if err := validate(uc.validate, &in, loc); err != nil {
		return nil, err
	}

	sub := &dto.Submission{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		Message:     in.Message,
		Locale:      loc.Lang(),
		SubmittedAt: uc.opts.Now(),
	}

	if err := uc.deliver(ctx, sub); err != nil {
		uc.logger.Error("contact submission not delivered",
			zap.String("submission_id", sub.ID),
			zap.String("sink", uc.sink.Name()),
			zap.Error(err),
		)
		return &dto.Receipt{
			ID: sub.ID,
			Notification: dto.Notification{
				Kind:        dto.NotificationError,
				Title:       loc.T("contact.failure.title", nil),
				Description: loc.T("contact.failure.description", nil),
			},
			Reset: false,
		}, fmt.Errorf("%w: %v", contact.ErrDeliveryFailed, err)
	}

	uc.logger.Info("contact submission delivered",
		zap.String("submission_id", sub.ID),
		zap.String("sink", uc.sink.Name()),
	)
	return &dto.Receipt{
		ID: sub.ID,
		Notification: dto.Notification{
			Kind:        dto.NotificationSuccess,
			Title:       loc.T("contact.success.title", nil),
			Description: loc.T("contact.success.description", nil),
		},
		Reset: true,
	}, nil
}

func (uc *contactUseCase) deliver(ctx context.Context, sub *dto.Submission) error {
	var err error
	delay := uc.opts.BaseDelay
	for attempt := 0; attempt <= uc.opts.Retries; attempt++ {
		if attempt > 0 {
			uc.logger.Warn("retrying contact delivery",
				zap.String("submission_id", sub.ID),
				zap.Int("attempt", attempt),
				zap.Error(err),
			)
			if werr := wait(ctx, delay); werr != nil {
				return err
			}
			delay = min(delay*2, uc.opts.MaxDelay)
		}
		if err = uc.sink.Deliver(ctx, sub); err == nil {
			return nil
		}
	}
	return err
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
