// Package discovery turns a stream of raw advertisements into a stable,
// deduplicated device list for one scan session.
//
// The first named advertisement seen for an address wins; later frames from
// the same address are ignored even when their name or signal differ.
// Frames without a name are never recorded. Devices keep first-seen order.
package discovery
