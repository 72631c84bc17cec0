// Package app wires application dependencies for both binaries.
//
// Config is read through viper from an optional lunaphase.yaml, LUNAPHASE_*
// environment variables and command-line flags. NewWire builds the image
// store, the ephemeris provider and the phase, calendar and visual services
// from it; App is the in-process facade the server and CLI call.
package app
