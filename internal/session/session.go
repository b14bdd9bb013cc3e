package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"bleprofile/internal/discovery"
	"bleprofile/internal/domain"
)

// DefaultScanDuration is the scan window used when none is configured.
const DefaultScanDuration = 10 * time.Second

// Status describes how a run ended.
type Status int

const (
	// StatusIncomplete is the status of a run that returned an error.
	StatusIncomplete Status = iota
	// StatusSaved means a profile was written.
	StatusSaved
	// StatusNoDevices means the scan window ended without named devices.
	StatusNoDevices
	// StatusInvalidSelection means the operator's choice was rejected.
	StatusInvalidSelection
)

// String returns a short, log-friendly form of the status.
func (s Status) String() string {
	switch s {
	case StatusIncomplete:
		return "incomplete"
	case StatusSaved:
		return "saved"
	case StatusNoDevices:
		return "no_devices"
	case StatusInvalidSelection:
		return "invalid_selection"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Result is the outcome of Run. Device and Profile are set only for StatusSaved;
// Profile.Name holds the resolved, stored name. Reason is set for
// StatusNoDevices (domain.ErrDiscoveryEmpty) and StatusInvalidSelection
// (wrapping domain.ErrSelectionInvalid).
type Result struct {
	ID      string
	Status  Status
	Reason  error
	Devices []domain.DiscoveredDevice
	Device  domain.DiscoveredDevice
	Profile domain.Profile
}

// Option configures a Session.
type Option func(*Session)

// WithScanDuration sets the scan window.
func WithScanDuration(d time.Duration) Option {
	return func(s *Session) { s.duration = d }
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) { s.log = l }
}

// WithDeduplicator replaces the default deduplicator, e.g. to attach a discovery hook.
func WithDeduplicator(d *discovery.Deduplicator) Option {
	return func(s *Session) { s.dedup = d }
}

// Session wires a source, selector and store for one scan flow.
type Session struct {
	source   domain.AdvertisementSource
	selector domain.DeviceSelector
	store    domain.ProfileStore
	template domain.Template

	dedup    *discovery.Deduplicator
	duration time.Duration
	log      zerolog.Logger
}

// New returns a Session.
func New(
	source domain.AdvertisementSource,
	selector domain.DeviceSelector,
	store domain.ProfileStore,
	template domain.Template,
	opts ...Option,
) *Session {
	s := &Session{
		source:   source,
		selector: selector,
		store:    store,
		template: template,
		duration: DefaultScanDuration,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.dedup == nil {
		s.dedup = discovery.New()
	}
	return s
}

// Run scans for the configured window, lets the selector choose a device
// and saves its profile. Cancelling ctx stops the scan and returns ctx.Err()
// without touching the store.
func (s *Session) Run(ctx context.Context) (Result, error) {
	res := Result{ID: uuid.NewString()}
	log := s.log.With().Str("session", res.ID).Logger()

	devices, err := s.scan(ctx, log)
	if err != nil {
		return res, err
	}
	res.Devices = devices

	if len(devices) == 0 {
		log.Info().Dur("window", s.duration).Msg("No devices discovered")
		res.Status = StatusNoDevices
		res.Reason = domain.ErrDiscoveryEmpty
		return res, nil
	}

	device, err := s.selector.Select(ctx, devices)
	if ctxErr := ctx.Err(); ctxErr != nil {
		log.Info().Msg("Interrupted before saving")
		return res, ctxErr
	}
	switch {
	case errors.Is(err, domain.ErrSelectionInvalid):
		log.Info().Err(err).Msg("Selection rejected")
		res.Status = StatusInvalidSelection
		res.Reason = err
		return res, nil
	case err != nil:
		return res, fmt.Errorf("select device: %w", err)
	}

	profile := s.template.NewProfile(device)
	name, err := s.store.Save(profile)
	if err != nil {
		return res, fmt.Errorf("save profile: %w", err)
	}
	profile.Name = name

	log.Info().
		Str("device", device.Name).
		Str("address", device.AddressHex()).
		Str("profile", name).
		Msg("Profile saved")

	res.Status = StatusSaved
	res.Device = device
	res.Profile = profile
	return res, nil
}

func (s *Session) scan(ctx context.Context, log zerolog.Logger) ([]domain.DiscoveredDevice, error) {
	s.dedup.Reset()

	if err := s.source.Start(s.dedup.Observe); err != nil {
		return nil, fmt.Errorf("start scan: %w", err)
	}
	log.Debug().Dur("window", s.duration).Msg("Scanning")

	timer := time.NewTimer(s.duration)
	select {
	case <-timer.C:
	case <-ctx.Done():
		timer.Stop()
	}

	if err := s.source.Stop(); err != nil {
		return nil, fmt.Errorf("stop scan: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	devices := s.dedup.Devices()
	log.Debug().Int("devices", s.dedup.Len()).Msg("Scan finished")
	return devices, nil
}
