package engine

import (
	"context"

	"github.com/bnema/osrview/internal/application/port"
	"github.com/bnema/osrview/internal/logging"
)

// Preferences forced on every request context.
var requestContextPreferences = []struct {
	name  string
	value any
}{
	{"credentials_enable_service", false},
	{"session.restore_on_startup", 5},
}

// RequestContextHandler disables saved-password prompts and session restore
// on the dedicated request context of each browser.
type RequestContextHandler struct {
	ctx context.Context
}

var _ port.RequestContextHandler = (*RequestContextHandler)(nil)

func NewRequestContextHandler(ctx context.Context) *RequestContextHandler {
	return &RequestContextHandler{ctx: ctx}
}

func (h *RequestContextHandler) OnRequestContextInitialized(prefs port.PreferenceSetter) {
	log := logging.FromContext(h.ctx)
	if prefs == nil {
		return
	}
	for _, p := range requestContextPreferences {
		if err := prefs.SetPreference(p.name, p.value); err != nil {
			log.Warn().Err(err).Str("preference", p.name).Msg("failed to set request context preference")
		}
	}
}
