package pages

import (
	"context"
	"fmt"

	"github.com/zenithlab/storefront-client/internal/apiclient"
	"github.com/zenithlab/storefront-client/internal/apperr"
	"github.com/zenithlab/storefront-client/internal/events"
	"github.com/zenithlab/storefront-client/internal/session"
)

// Deps wires one page controller. Controllers own their page state
// explicitly; there is no process-wide shared state.
type Deps struct {
	API     *apiclient.Client
	Session *session.Session
	Events  *events.Producer
}

// requireLogin gates an authenticated action. A stored token whose expiry
// has passed reports itself distinctly so the user knows to re-authenticate
// instead of retrying.
func (d Deps) requireLogin(prompt string) error {
	if d.Session.IsLoggedIn() {
		return nil
	}
	if d.Session.Token() != "" && d.Session.Expired() {
		return fmt.Errorf("your session has expired, please login again: %w", apperr.ErrAuthRequired)
	}
	return fmt.Errorf("%s: %w", prompt, apperr.ErrAuthRequired)
}

func (d Deps) publish(ctx context.Context, eventType string, fields map[string]any) {
	if d.Events == nil {
		return
	}
	d.Events.Publish(ctx, eventType, fields)
}
