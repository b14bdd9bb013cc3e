package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"bleprofile/internal/domain"
	"bleprofile/internal/naming"
)

// DefaultProfilesFile is the collection path used when none is configured.
const DefaultProfilesFile = "profiles.json"

const profilesMode = 0o644

// ProfileFileStore keeps the profile collection as a JSON array in one file.
type ProfileFileStore struct {
	path string
	log  zerolog.Logger
	mu   sync.Mutex
}

// NewProfileFileStore returns a ProfileFileStore backed by the file at path.
func NewProfileFileStore(path string, log zerolog.Logger) *ProfileFileStore {
	return &ProfileFileStore{
		path: path,
		log:  log.With().Str("component", "profile_store").Str("path", path).Logger(),
	}
}

// Path returns the backing file path.
func (s *ProfileFileStore) Path() string { return s.path }

// Load returns the stored profiles. A missing file is an empty collection;
// an unreadable one is logged and also treated as empty, leaving the file
// itself untouched.
func (s *ProfileFileStore) Load() []domain.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load()
}

// Save appends p under a name made unique against the stored collection,
// rewrites the whole file and returns the final name.
func (s *ProfileFileStore) Save(p domain.Profile) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profiles := s.load()
	p.Name = naming.Resolve(p.Name, profiles)
	profiles = append(profiles, p)

	if err := writeJSON(s.path, profiles, profilesMode); err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrProfilesUnwritable, err)
	}

	s.log.Debug().Str("name", p.Name).Int("count", len(profiles)).Msg("Profile saved")
	return p.Name, nil
}

func (s *ProfileFileStore) load() []domain.Profile {
	profiles, err := s.read()
	if err != nil {
		s.log.Warn().Err(err).Msg("Could not load existing profiles; starting with an empty collection")
		return []domain.Profile{}
	}
	return profiles
}

func (s *ProfileFileStore) read() ([]domain.Profile, error) {
	b, err := readFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrProfilesUnreadable, err)
	}
	if b == nil {
		return []domain.Profile{}, nil
	}

	var profiles []domain.Profile
	if err := json.Unmarshal(b, &profiles); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrProfilesUnreadable, err)
	}
	if profiles == nil {
		profiles = []domain.Profile{}
	}
	return profiles, nil
}

// Compile-time assertion that ProfileFileStore implements domain.ProfileStore.
var _ domain.ProfileStore = (*ProfileFileStore)(nil)
