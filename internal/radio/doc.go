// Package radio provides advertisement sources for scan sessions.
//
//   - Adapter   scans with the host Bluetooth controller (tinygo.org/x/bluetooth)
//   - Replay    replays a recorded capture file, for demos and tests without hardware
//
// Both implement domain.AdvertisementSource.
package radio
