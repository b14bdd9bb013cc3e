package radio

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"bleprofile/internal/domain"
)

// Capture is the on-disk form of a recorded scan.
//
//	advertisements:
//	  - address: "A4:C1:38:00:00:01"
//	    name: "Polar H10 1A2B3C4D"
//	    rssi: -61
type Capture struct {
	Advertisements []CapturedAdvertisement `yaml:"advertisements"`
}

// CapturedAdvertisement is one recorded frame. Name may be empty.
type CapturedAdvertisement struct {
	Address string `yaml:"address"`
	Name    string `yaml:"name"`
	RSSI    int16  `yaml:"rssi"`
}

// LoadCapture reads a capture file.
func LoadCapture(path string) ([]domain.Advertisement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read capture: %w", err)
	}

	var c Capture
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse capture %s: %w", path, err)
	}

	out := make([]domain.Advertisement, 0, len(c.Advertisements))
	for i, ca := range c.Advertisements {
		addr, err := ParseAddress(ca.Address)
		if err != nil {
			return nil, fmt.Errorf("capture entry %d: %w", i+1, err)
		}
		out = append(out, domain.Advertisement{Address: addr, Name: ca.Name, RSSI: ca.RSSI})
	}
	return out, nil
}

// Replay delivers a fixed list of advertisements, in order, from one goroutine.
type Replay struct {
	events   []domain.Advertisement
	interval time.Duration

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

// NewReplay returns a source that emits events with interval between them.
func NewReplay(events []domain.Advertisement, interval time.Duration) *Replay {
	return &Replay{events: events, interval: interval}
}

// Start begins delivery. Delivery ends when all events are sent or Stop is called.
func (r *Replay) Start(handler func(domain.Advertisement)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.done != nil {
		return errors.New("replay already running")
	}
	stop := make(chan struct{})
	done := make(chan struct{})
	r.stop, r.done = stop, done

	go func() {
		defer close(done)
		for i, e := range r.events {
			select {
			case <-stop:
				return
			default:
			}
			handler(e)

			if r.interval > 0 && i < len(r.events)-1 {
				select {
				case <-stop:
					return
				case <-time.After(r.interval):
				}
			}
		}
	}()
	return nil
}

// Stop halts delivery and waits until the handler is no longer called.
func (r *Replay) Stop() error {
	r.mu.Lock()
	stop, done := r.stop, r.done
	r.stop, r.done = nil, nil
	r.mu.Unlock()

	if done == nil {
		return nil
	}
	close(stop)
	<-done
	return nil
}

// Compile-time assertion that Replay implements domain.AdvertisementSource.
var _ domain.AdvertisementSource = (*Replay)(nil)
