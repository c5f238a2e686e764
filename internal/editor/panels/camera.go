package panels

import (
	"github.com/framepeach/framepeach/internal/editor/bus"
	"github.com/framepeach/framepeach/internal/editor/scene"
)

// CameraControls follows the selection: the orbit target snaps to the
// selected object's position and returns to the origin on deselect.
type CameraControls struct {
	target   scene.Vector3
	hasFocus bool
}

func NewCameraControls(b *bus.Bus) *CameraControls {
	c := &CameraControls{}
	b.Subscribe(c.handle)
	return c
}

func (c *CameraControls) handle(e bus.Event) {
	switch e := e.(type) {
	case bus.ObjectSelected:
		if e.Object == nil {
			c.target = scene.Vector3{}
			c.hasFocus = false
			return
		}
		c.target = e.Object.Position
		c.hasFocus = true

	case bus.NewProject:
		c.target = scene.Vector3{}
		c.hasFocus = false
	}
}

// Target returns the current orbit target.
func (c *CameraControls) Target() scene.Vector3 {
	return c.target
}

// Focused reports whether the camera is tracking a selection.
func (c *CameraControls) Focused() bool {
	return c.hasFocus
}
