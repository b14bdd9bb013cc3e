package interfaces

import (
	"context"

	domaintypes "bleprofile/internal/domain/types"
)

// DeviceSelector asks the operator to choose one of the discovered devices.
// Select returns ctx.Err() when ctx is cancelled before a choice is made.
type DeviceSelector interface {
	Select(ctx context.Context, devices []domaintypes.DiscoveredDevice) (domaintypes.DiscoveredDevice, error)
}
