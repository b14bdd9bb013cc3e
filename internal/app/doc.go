// Package app wires application dependencies for the CLI.
//
// It loads Config (defaults, then bleprofile.yaml, then BLEPROFILE_*
// environment variables) and builds the profile store, advertisement
// sources and scan sessions from it, exposing them via the Wire struct for
// commands to use.
package app
