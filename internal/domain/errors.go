package domain

import "errors"

var (
	// ErrDiscoveryEmpty is reported when a scan window ends with no named devices.
	ErrDiscoveryEmpty = errors.New("no devices discovered")

	// ErrSelectionInvalid is returned for non-numeric or out-of-range device choices.
	ErrSelectionInvalid = errors.New("invalid selection")

	// ErrProfilesUnreadable marks an existing profile file that could not be
	// read or parsed. Loading falls back to an empty collection.
	ErrProfilesUnreadable = errors.New("profile file unreadable")

	// ErrProfilesUnwritable marks a failed write of the profile file.
	ErrProfilesUnwritable = errors.New("profile file unwritable")
)
