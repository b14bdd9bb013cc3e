package discovery

import (
	"sync"

	"bleprofile/internal/domain"
)

// Option configures a Deduplicator.
type Option func(*Deduplicator)

// WithOnDiscover registers fn to be called for every newly recorded device
// with its 1-based position in the list. fn runs outside the lock, on the
// goroutine that delivered the advertisement.
func WithOnDiscover(fn func(position int, d domain.DiscoveredDevice)) Option {
	return func(dd *Deduplicator) { dd.onDiscover = fn }
}

// Deduplicator records at most one device per address. It is safe for
// concurrent use; each Observe is a single critical section.
type Deduplicator struct {
	mu      sync.Mutex
	seen    map[domain.Address]struct{}
	devices []domain.DiscoveredDevice

	onDiscover func(int, domain.DiscoveredDevice)
}

// New returns an empty Deduplicator.
func New(opts ...Option) *Deduplicator {
	d := &Deduplicator{seen: make(map[domain.Address]struct{})}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Observe records adv unless it has no name or its address was already seen.
func (d *Deduplicator) Observe(adv domain.Advertisement) {
	if adv.Name == "" {
		return
	}

	d.mu.Lock()
	if _, ok := d.seen[adv.Address]; ok {
		d.mu.Unlock()
		return
	}
	d.seen[adv.Address] = struct{}{}
	dev := domain.DiscoveredDevice{Name: adv.Name, Address: adv.Address, RSSI: adv.RSSI}
	d.devices = append(d.devices, dev)
	position := len(d.devices)
	d.mu.Unlock()

	if d.onDiscover != nil {
		d.onDiscover(position, dev)
	}
}

// Devices returns a copy of the recorded devices in first-seen order.
func (d *Deduplicator) Devices() []domain.DiscoveredDevice {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]domain.DiscoveredDevice, len(d.devices))
	copy(out, d.devices)
	return out
}

// Len returns the number of recorded devices.
func (d *Deduplicator) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.devices)
}

// Reset forgets every address and device so the Deduplicator can serve a new session.
func (d *Deduplicator) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seen = make(map[domain.Address]struct{})
	d.devices = nil
}
