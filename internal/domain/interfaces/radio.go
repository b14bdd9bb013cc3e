package interfaces

import domaintypes "bleprofile/internal/domain/types"

// AdvertisementSource pushes advertisements to a handler between Start and Stop.
//
// Implementations may call the handler from their own goroutine; callers
// must not assume delivery on the goroutine that called Start.
type AdvertisementSource interface {
	Start(handler func(domaintypes.Advertisement)) error
	Stop() error
}
