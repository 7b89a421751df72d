// Package backdrop decodes background images and scales them to the window.
package backdrop

import (
	"fmt"
	"image"
	"io/fs"
	"os"

	_ "image/gif" // decoders for image.Decode
	_ "image/jpeg"
	_ "image/png"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Extensions are offered by the file picker. webp decodes too but stays
// behind the "all files" filter.
var Extensions = []string{"png", "jpg", "jpeg", "gif", "bmp"}

// Kind tells the two load failures apart.
type Kind int

const (
	// NotFound means the path does not exist.
	NotFound Kind = iota + 1
	// Decode covers unreadable, corrupt or unsupported files and bad target sizes.
	Decode
)

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "not found"
	case Decode:
		return "decode"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// LoadError is the only error Load returns.
type LoadError struct {
	Kind Kind
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Kind == NotFound {
		return "file not found: " + e.Path
	}
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// KindOf extracts the failure kind from err, 0 if err is not a LoadError.
func KindOf(err error) Kind {
	var le *LoadError
	if errors.As(err, &le) {
		return le.Kind
	}
	return 0
}

// Load decodes path and scales it to exactly width x height.
func Load(path string, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, &LoadError{Kind: Decode, Path: path, Err: errors.Errorf("invalid target size %dx%d", width, height)}
	}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &LoadError{Kind: NotFound, Path: path, Err: err}
		}
		return nil, &LoadError{Kind: Decode, Path: path, Err: err}
	}
	defer file.Close()

	src, format, err := image.Decode(file)
	if err != nil {
		return nil, &LoadError{Kind: Decode, Path: path, Err: errors.Wrap(err, "decode")}
	}
	if src.Bounds().Empty() {
		return nil, &LoadError{Kind: Decode, Path: path, Err: errors.Errorf("empty %s image", format)}
	}

	return Scale(src, width, height), nil
}

// Scale resizes src to width x height with Catmull-Rom, ignoring aspect ratio
// the same way the overlay stretches its background.
func Scale(src image.Image, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
