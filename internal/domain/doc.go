// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (phases, ephemeris samples, snapshots) and
// contracts (interfaces) only; the types and interfaces subpackages hold
// the definitions and this package re-exports them.
package domain
