package types

// Advertisement is one raw broadcast frame as reported by the radio.
// Name is empty when the frame carries no local name.
type Advertisement struct {
	Address Address
	Name    string
	RSSI    int16
}

// DiscoveredDevice is the first named advertisement seen for an address
// during a scan session.
type DiscoveredDevice struct {
	Name    string
	Address Address
	RSSI    int16
}

// AddressHex returns the device address in profile form.
func (d DiscoveredDevice) AddressHex() string { return d.Address.Hex() }
