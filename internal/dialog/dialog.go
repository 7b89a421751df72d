// Package dialog shows the native file picker and error box. Both calls
// block the caller until the user dismisses them.
package dialog

import (
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
	native "github.com/sqweek/dialog"

	"github.com/elir-elirlab/elirdeskclock/internal/backdrop"
)

const (
	PickerTitle = "Choose a background image"
	ErrorTitle  = "Error"
)

// Native talks to the desktop's own dialogs.
type Native struct{}

// PickImage returns the chosen path, or "" when the user cancelled.
func (Native) PickImage() (string, error) {
	path, err := native.File().
		Title(PickerTitle).
		Filter(ImageFilterLabel(), backdrop.Extensions...).
		Filter("All files", "*").
		Load()
	if errors.Is(err, native.ErrCancelled) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return path, nil
}

// ShowError blocks on a modal box with a single OK button.
func (Native) ShowError(title, message string) {
	log.Debug().Str("title", title).Msg("showing error dialog")
	native.Message("%s", message).Title(title).Error()
}

// ImageFilterLabel reads "Image files (*.png *.jpg ...)".
func ImageFilterLabel() string {
	patterns := make([]string, len(backdrop.Extensions))
	for i, ext := range backdrop.Extensions {
		patterns[i] = "*." + ext
	}
	return "Image files (" + strings.Join(patterns, " ") + ")"
}
