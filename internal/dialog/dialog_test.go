package dialog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageFilterLabel(t *testing.T) {
	assert.Equal(t, "Image files (*.png *.jpg *.jpeg *.gif *.bmp)", ImageFilterLabel())
}
