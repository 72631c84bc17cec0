// Package render draws procedural moon images.
//
// The disc is lit white with a light grey rim. A shadow ellipse anchored on
// the dark limb covers a share of the disc that grows with 1 - illumination;
// below 5% illumination a bar leaves only a thin sliver and at 1% or less
// the whole disc is dark. As seen from the northern hemisphere a waxing
// moon is lit on the right, so its shadow sits on the left.
package render
