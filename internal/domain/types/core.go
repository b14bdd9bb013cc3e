package types

import "fmt"

// Address is a 48-bit Bluetooth device address held in the low bits of a uint64.
type Address uint64

// Hex renders the address as upper-case hexadecimal without padding or separators.
func (a Address) Hex() string { return fmt.Sprintf("%X", uint64(a)) }

// String returns the colon-separated MAC form of the address.
func (a Address) String() string {
	v := uint64(a)
	return fmt.Sprintf("%02X:%02X:%02X:%02X:%02X:%02X",
		byte(v>>40), byte(v>>32), byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}
