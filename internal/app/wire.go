package app

import (
	"time"

	"github.com/rs/zerolog"

	"bleprofile/internal/discovery"
	"bleprofile/internal/domain"
	"bleprofile/internal/radio"
	"bleprofile/internal/session"
	"bleprofile/internal/store"
)

// Wire bundles the stores and settings shared by the CLI commands.
type Wire struct {
	Config   Config
	Profiles *store.ProfileFileStore
	Log      zerolog.Logger
}

// NewWire validates cfg and constructs the dependency graph.
func NewWire(cfg Config, log zerolog.Logger) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Wire{
		Config:   cfg,
		Profiles: store.NewProfileFileStore(cfg.ProfilesPath, log.With().Str("component", "store").Logger()),
		Log:      log,
	}, nil
}

// Source returns the advertisement source for a scan: a replay of the
// capture at replayPath when set, the host Bluetooth adapter otherwise.
func (w *Wire) Source(replayPath string, interval time.Duration) (domain.AdvertisementSource, error) {
	if replayPath == "" {
		return radio.NewAdapter(nil, w.Log), nil
	}
	events, err := radio.LoadCapture(replayPath)
	if err != nil {
		return nil, err
	}
	w.Log.Debug().Str("capture", replayPath).Int("events", len(events)).Msg("Replaying capture")
	return radio.NewReplay(events, interval), nil
}

// NewSession builds a scan session over source using the configured
// template, window and profile store. onDiscover may be nil.
func (w *Wire) NewSession(
	source domain.AdvertisementSource,
	selector domain.DeviceSelector,
	onDiscover func(int, domain.DiscoveredDevice),
) *session.Session {
	var opts []discovery.Option
	if onDiscover != nil {
		opts = append(opts, discovery.WithOnDiscover(onDiscover))
	}

	return session.New(source, selector, w.Profiles, w.Config.Template,
		session.WithScanDuration(w.Config.ScanDuration),
		session.WithLogger(w.Log.With().Str("component", "session").Logger()),
		session.WithDeduplicator(discovery.New(opts...)),
	)
}
