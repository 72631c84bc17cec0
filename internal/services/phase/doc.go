// Package phase classifies the Moon's illumination into a named phase and
// aggregates an ephemeris sample into a domain.Snapshot.
//
// Classification is a pure function of illumination percent and the waning
// flag. The Service asks its EphemerisProvider for exactly one sample per
// snapshot and never fabricates a result when the provider fails.
package phase
