package usecase

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/iho/pixdash/internal/domain"
)

// report logs err, surfaces it as a notification and returns it unchanged.
// Every public operation funnels its failures through here so none fails silently.
func report(logger zerolog.Logger, notifier Notifier, op string, err error) error {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		logger.Debug().Str("op", op).Str("field", vErr.Field).Msg(vErr.Message)
		notifier.Notify(domain.UserMessage(err), domain.SeverityWarning)
		return err
	}

	logger.Warn().Err(err).Str("op", op).Msg("operation failed")
	notifier.Notify(domain.UserMessage(err), domain.SeverityError)

	return err
}

func requireSession(state *State) error {
	if !state.Authenticated() {
		return domain.ErrNotAuthenticated
	}
	return nil
}
