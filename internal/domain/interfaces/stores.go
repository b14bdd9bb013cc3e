package interfaces

import domaintypes "bleprofile/internal/domain/types"

// ProfileStore persists the profile collection.
type ProfileStore interface {
	// Load returns the stored collection, or an empty one when it is
	// missing or unreadable.
	Load() []domaintypes.Profile
	// Save appends p under a collision-free name and returns that name.
	Save(p domaintypes.Profile) (string, error)
}
