package interfaces

import (
	"image"

	domaintypes "lunaphase/internal/domain/types"
)

// ImageStore keeps static and generated moon images on disk.
type ImageStore interface {
	// StaticPath returns the on-disk path of the static image for phase and
	// whether that file exists.
	StaticPath(phase domaintypes.Phase) (path string, ok bool)
	// Generated returns the path of an image previously saved with prefix.
	Generated(prefix string) (path string, ok bool)
	// SaveGenerated writes img under a unique name and returns its path.
	SaveGenerated(prefix string, img image.Image) (string, error)
	// SaveStatic writes img as the static image for phase.
	SaveStatic(phase domaintypes.Phase, img image.Image) (string, error)
	// Resolve maps a bare file name to its path inside Dir, rejecting
	// anything that would escape it.
	Resolve(name string) (string, error)
	// Dir is the directory all images live in.
	Dir() string
}
