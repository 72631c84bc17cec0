// Package visual picks the image shown for a snapshot.
//
// A static image for the phase is preferred. When that file is missing the
// Selector renders one from the illumination and phase angle and stores it
// under a unique name.
package visual
