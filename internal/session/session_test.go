package session

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bleprofile/internal/discovery"
	"bleprofile/internal/domain"
	"bleprofile/internal/logger"
	"bleprofile/internal/radio"
	"bleprofile/internal/store"
)

var heartRate = domain.Template{
	ServiceUUID:        "0000180D-0000-1000-8000-00805F9B34FB",
	CharacteristicUUID: "00002A37-0000-1000-8000-00805F9B34FB",
	ParserType:         "HeartRate",
}

// pickSelector chooses a fixed 1-based index and records what it was offered.
type pickSelector struct {
	choice  int
	offered []domain.DiscoveredDevice
	err     error
}

func (p *pickSelector) Select(_ context.Context, devices []domain.DiscoveredDevice) (domain.DiscoveredDevice, error) {
	p.offered = devices
	if p.err != nil {
		return domain.DiscoveredDevice{}, p.err
	}
	if p.choice < 1 || p.choice > len(devices) {
		return domain.DiscoveredDevice{}, domain.ErrSelectionInvalid
	}
	return devices[p.choice-1], nil
}

// cancellingSelector cancels the run's context and then picks the first device,
// as an operator pressing Ctrl-C at the prompt followed by Enter would.
type cancellingSelector struct {
	cancel context.CancelFunc
}

func (c cancellingSelector) Select(_ context.Context, devices []domain.DiscoveredDevice) (domain.DiscoveredDevice, error) {
	c.cancel()
	return devices[0], nil
}

type failingSource struct {
	startErr, stopErr error
}

func (f failingSource) Start(func(domain.Advertisement)) error { return f.startErr }
func (f failingSource) Stop() error                             { return f.stopErr }

type failingStore struct{}

func (failingStore) Load() []domain.Profile { return nil }
func (failingStore) Save(domain.Profile) (string, error) {
	return "", domain.ErrProfilesUnwritable
}

var capture = []domain.Advertisement{
	{Address: 0xA4C138000001, Name: "", RSSI: -90},
	{Address: 0xA4C138000001, Name: "Polar H10 1A2B3C4D", RSSI: -61},
	{Address: 0xC0FFEE123456, Name: "HW706-0029277", RSSI: -75},
	{Address: 0xA4C138000001, Name: "Polar H10 renamed", RSSI: -40},
	{Address: 0x00DEADBEEF00, Name: "HW706-0029277", RSSI: -82},
}

func newFileStore(t *testing.T) (*store.ProfileFileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), store.DefaultProfilesFile)
	return store.NewProfileFileStore(path, logger.NewTestLogger()), path
}

func TestRun_SavesSelectedDevice(t *testing.T) {
	fs, _ := newFileStore(t)
	sel := &pickSelector{choice: 2}
	s := New(radio.NewReplay(capture, 0), sel, fs, heartRate, WithScanDuration(200*time.Millisecond))

	res, err := s.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, StatusSaved, res.Status)
	assert.NotEmpty(t, res.ID)
	assert.Equal(t, []domain.DiscoveredDevice{
		{Name: "Polar H10 1A2B3C4D", Address: 0xA4C138000001, RSSI: -61},
		{Name: "HW706-0029277", Address: 0xC0FFEE123456, RSSI: -75},
		{Name: "HW706-0029277", Address: 0x00DEADBEEF00, RSSI: -82},
	}, sel.offered)
	assert.Equal(t, sel.offered, res.Devices)

	want := domain.Profile{
		Name:               "HW706-0029277",
		AddressHex:         "C0FFEE123456",
		ServiceUUID:        heartRate.ServiceUUID,
		CharacteristicUUID: heartRate.CharacteristicUUID,
		ParserType:         heartRate.ParserType,
	}
	assert.Equal(t, want, res.Profile)
	assert.Equal(t, []domain.Profile{want}, fs.Load())
}

func TestRun_SecondRunResolvesName(t *testing.T) {
	fs, _ := newFileStore(t)

	for _, choice := range []int{2, 3} {
		s := New(radio.NewReplay(capture, 0), &pickSelector{choice: choice}, fs, heartRate,
			WithScanDuration(200*time.Millisecond))
		_, err := s.Run(context.Background())
		require.NoError(t, err)
	}

	stored := fs.Load()
	require.Len(t, stored, 2)
	assert.Equal(t, "HW706-0029277", stored[0].Name)
	assert.Equal(t, "HW706-0029277-01", stored[1].Name)
	assert.Equal(t, "DEADBEEF00", stored[1].AddressHex)
}

func TestRun_NoDevices(t *testing.T) {
	fs, path := newFileStore(t)
	sel := &pickSelector{choice: 1}
	nameless := []domain.Advertisement{{Address: 1, RSSI: -50}, {Address: 2, RSSI: -60}}
	s := New(radio.NewReplay(nameless, 0), sel, fs, heartRate, WithScanDuration(200*time.Millisecond))

	res, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StatusNoDevices, res.Status)
	assert.ErrorIs(t, res.Reason, domain.ErrDiscoveryEmpty)
	assert.Nil(t, sel.offered)
	assert.NoFileExists(t, path)
}

func TestRun_InvalidSelection(t *testing.T) {
	fs, path := newFileStore(t)
	s := New(radio.NewReplay(capture, 0), &pickSelector{choice: 9}, fs, heartRate,
		WithScanDuration(200*time.Millisecond))

	res, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, StatusInvalidSelection, res.Status)
	assert.ErrorIs(t, res.Reason, domain.ErrSelectionInvalid)
	assert.Empty(t, res.Profile)
	assert.NoFileExists(t, path)
}

func TestRun_SelectorFailure(t *testing.T) {
	fs, path := newFileStore(t)
	s := New(radio.NewReplay(capture, 0), &pickSelector{err: errors.New("tty closed")}, fs, heartRate,
		WithScanDuration(200*time.Millisecond))

	_, err := s.Run(context.Background())
	assert.ErrorContains(t, err, "tty closed")
	assert.NoFileExists(t, path)
}

func TestRun_SaveFailureIsReturned(t *testing.T) {
	s := New(radio.NewReplay(capture, 0), &pickSelector{choice: 1}, failingStore{}, heartRate,
		WithScanDuration(200*time.Millisecond))

	res, err := s.Run(context.Background())
	assert.ErrorIs(t, err, domain.ErrProfilesUnwritable)
	assert.Equal(t, StatusIncomplete, res.Status)
}

func TestRun_SourceFailures(t *testing.T) {
	fs, _ := newFileStore(t)

	s := New(failingSource{startErr: errors.New("adapter off")}, &pickSelector{choice: 1}, fs, heartRate,
		WithScanDuration(time.Millisecond))
	_, err := s.Run(context.Background())
	assert.ErrorContains(t, err, "adapter off")

	s = New(failingSource{stopErr: errors.New("stuck")}, &pickSelector{choice: 1}, fs, heartRate,
		WithScanDuration(time.Millisecond))
	_, err = s.Run(context.Background())
	assert.ErrorContains(t, err, "stuck")
}

func TestRun_CancelledContext(t *testing.T) {
	fs, path := newFileStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := New(radio.NewReplay(capture, 0), &pickSelector{choice: 1}, fs, heartRate,
		WithScanDuration(time.Hour))

	start := time.Now()
	_, err := s.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Minute)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRun_CancelledDuringSelection(t *testing.T) {
	fs, path := newFileStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s := New(radio.NewReplay(capture, 0), cancellingSelector{cancel: cancel}, fs, heartRate,
		WithScanDuration(200*time.Millisecond))

	res, err := s.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, StatusIncomplete, res.Status)
	assert.Empty(t, res.Profile)
	assert.NoFileExists(t, path)
}

func TestRun_ReusesDeduplicatorAcrossRuns(t *testing.T) {
	fs, _ := newFileStore(t)
	var found int
	dedup := discovery.New(discovery.WithOnDiscover(func(int, domain.DiscoveredDevice) { found++ }))

	for i := 0; i < 2; i++ {
		s := New(radio.NewReplay(capture, 0), &pickSelector{choice: 1}, fs, heartRate,
			WithScanDuration(200*time.Millisecond), WithDeduplicator(dedup))
		res, err := s.Run(context.Background())
		require.NoError(t, err)
		assert.Len(t, res.Devices, 3)
	}
	assert.Equal(t, 6, found)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "incomplete", StatusIncomplete.String())
	assert.Equal(t, "saved", StatusSaved.String())
	assert.Equal(t, "no_devices", StatusNoDevices.String())
	assert.Equal(t, "invalid_selection", StatusInvalidSelection.String())
	assert.Equal(t, "status(42)", Status(42).String())
}
