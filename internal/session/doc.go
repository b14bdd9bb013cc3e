// Package session runs one scan-select-save flow.
//
// A Session drives an advertisement source for a fixed window, feeds every
// advertisement into a discovery.Deduplicator, asks a selector to pick one
// device, builds a profile from the run's template and hands it to the
// profile store. It holds no dedup or naming logic of its own.
//
// Operator outcomes (nothing discovered, invalid choice) are reported in
// Result.Status with a nil error and leave the profile file untouched.
// Only source failures, selector I/O failures and write failures are
// returned as errors.
package session
