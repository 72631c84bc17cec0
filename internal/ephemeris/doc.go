// Package ephemeris implements domain.EphemerisProvider.
//
// Provider samples the geocentric model in internal/astro: it reports the
// Moon's illuminated fraction, a phase angle running 0 (new) through 180
// (full) to 360, and the calendar dates of the next new moon, first
// quarter, full moon and last quarter after the sampled instant.
//
// The phase angle comes from the law of cosines over the Earth-Moon and
// Earth-Sun distances and the Moon-Sun separation; the Moon is waxing when
// its right ascension leads the Sun's by less than π. When that triangle
// is degenerate the angle falls back to illumination percent × 3.6.
//
// Fixed is a deterministic stand-in that returns a preset sample, for
// tests of code that consumes a provider.
package ephemeris
