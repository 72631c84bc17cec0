// Package astro is a small geocentric model of the Sun and the Moon.
//
// Contents
//
//   - Julian day conversion (JulianDay, TimeOf)
//   - Apparent Sun and Moon positions (Sun, Moon) in ecliptic and
//     equatorial coordinates, with distances in astronomical units
//   - Angular separation and the Sun-Moon-Earth angle (Separation,
//     SunMoonEarthAngle, Illumination)
//   - Forward search for the next instant the Moon reaches a given
//     elongation (Elongation, NextLunation)
//
// # Notes
//
// The series are the leading terms of Meeus, "Astronomical Algorithms"
// (2nd ed.), chapters 22, 25 and 47. Positions are good to a few
// hundredths of a degree for dates within a few centuries of J2000; phase
// instants come out within minutes. There is no observer: everything is
// geocentric and nothing here depends on latitude or longitude.
package astro
