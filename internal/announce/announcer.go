package announce

import (
	"context"
	"errors"
)

// Announcer publishes a plain-text message to an external channel.
type Announcer interface {
	Announce(ctx context.Context, text string) error
}

type announcers []Announcer

// Multi sends to every announcer and reports all failures together.
func Multi(list ...Announcer) Announcer {
	return announcers(list)
}

func (a announcers) Announce(ctx context.Context, text string) error {
	var errs []error
	for _, announcer := range a {
		if err := announcer.Announce(ctx, text); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
