package radio

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"tinygo.org/x/bluetooth"

	"bleprofile/internal/domain"
)

const stopTimeout = 5 * time.Second

// Adapter scans for advertisements with a host Bluetooth adapter.
type Adapter struct {
	adapter *bluetooth.Adapter
	log     zerolog.Logger

	mu   sync.Mutex
	done chan error
}

// NewAdapter wraps a; pass nil to use bluetooth.DefaultAdapter.
func NewAdapter(a *bluetooth.Adapter, log zerolog.Logger) *Adapter {
	if a == nil {
		a = bluetooth.DefaultAdapter
	}
	return &Adapter{adapter: a, log: log.With().Str("component", "radio").Logger()}
}

// Start enables the adapter and begins scanning in the background. handler
// runs on the adapter's event goroutine.
func (a *Adapter) Start(handler func(domain.Advertisement)) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.done != nil {
		return errors.New("scan already running")
	}
	if err := a.adapter.Enable(); err != nil {
		return fmt.Errorf("enable bluetooth adapter: %w", err)
	}

	done := make(chan error, 1)
	a.done = done
	go func() {
		done <- a.adapter.Scan(func(_ *bluetooth.Adapter, r bluetooth.ScanResult) {
			adv, ok := a.advertisement(r.Address.String(), r.LocalName(), r.RSSI)
			if ok {
				handler(adv)
			}
		})
	}()

	a.log.Debug().Msg("Scan started")
	return nil
}

// Stop ends the scan and waits for the scan loop to return.
func (a *Adapter) Stop() error {
	a.mu.Lock()
	done := a.done
	a.done = nil
	a.mu.Unlock()

	if done == nil {
		return nil
	}

	stopErr := a.adapter.StopScan()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("scan: %w", err)
		}
	case <-time.After(stopTimeout):
		if stopErr != nil {
			return fmt.Errorf("stop scan: %w", stopErr)
		}
		return errors.New("stop scan: timed out waiting for scan to end")
	}

	a.log.Debug().Msg("Scan stopped")
	return nil
}

// advertisement converts one scan result. Results whose address is not a
// MAC (some platforms report opaque identifiers) are dropped.
func (a *Adapter) advertisement(addr, name string, rssi int16) (domain.Advertisement, bool) {
	if strings.Count(addr, ":") != 5 {
		a.log.Debug().Str("address", addr).Msg("Skipping advertisement without MAC address")
		return domain.Advertisement{}, false
	}
	parsed, err := ParseAddress(addr)
	if err != nil {
		a.log.Debug().Err(err).Msg("Skipping advertisement")
		return domain.Advertisement{}, false
	}
	return domain.Advertisement{Address: parsed, Name: name, RSSI: rssi}, true
}

// Compile-time assertion that Adapter implements domain.AdvertisementSource.
var _ domain.AdvertisementSource = (*Adapter)(nil)
