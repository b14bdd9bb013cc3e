package domain

import (
	interfaces "bleprofile/internal/domain/interfaces"
	types "bleprofile/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Address          = types.Address
	Advertisement    = types.Advertisement
	DiscoveredDevice = types.DiscoveredDevice
	Profile          = types.Profile
	Template         = types.Template
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	AdvertisementSource = interfaces.AdvertisementSource
	DeviceSelector      = interfaces.DeviceSelector
	ProfileStore        = interfaces.ProfileStore
)
