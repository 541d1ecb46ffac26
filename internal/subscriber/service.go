package subscriber

import (
	"context"
	"log/slog"
	"strings"

	"github.com/asaskevich/govalidator"

	id "codedrip/pkg/domain"
	dErrors "codedrip/pkg/domainerrors"
	"codedrip/pkg/requestcontext"
)

type Service struct {
	store  Store
	logger *slog.Logger
}

func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Subscribe adds the email to the list. The address is normalized to lower
// case so repeat signups with different casing hit the conflict path.
func (s *Service) Subscribe(ctx context.Context, email string) (Subscriber, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !govalidator.IsEmail(email) {
		return Subscriber{}, dErrors.New(dErrors.CodeBadRequest, "invalid email")
	}

	sub := Subscriber{
		ID:        id.NewSubscriberID(),
		Email:     email,
		CreatedAt: requestcontext.Now(ctx).UTC(),
	}
	if err := s.store.Save(ctx, sub); err != nil {
		if dErrors.HasCode(err, dErrors.CodeConflict) {
			return Subscriber{}, err
		}
		return Subscriber{}, dErrors.Wrap(err, dErrors.CodeInternal, "subscriber save failed")
	}

	s.logger.Info("subscriber added", "subscriber_id", sub.ID)
	return sub, nil
}

func (s *Service) List(ctx context.Context) ([]Subscriber, error) {
	subs, err := s.store.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "subscriber list failed")
	}
	if subs == nil {
		subs = []Subscriber{}
	}
	return subs, nil
}
