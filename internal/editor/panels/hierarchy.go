package panels

import (
	"github.com/framepeach/framepeach/internal/editor/bus"
	"github.com/framepeach/framepeach/internal/editor/scene"
)

// Hierarchy mirrors the scene's object list for the tree view and is the
// producer of visibility and lock toggles.
type Hierarchy struct {
	bus *bus.Bus

	objects    []scene.Object
	selectedID string
}

func NewHierarchy(b *bus.Bus) *Hierarchy {
	h := &Hierarchy{bus: b}
	b.Subscribe(h.handle)
	return h
}

func (h *Hierarchy) handle(e bus.Event) {
	switch e := e.(type) {
	case bus.SceneUpdated:
		h.objects = e.Objects

	case bus.ObjectSelected:
		if e.Object == nil {
			h.selectedID = ""
		} else {
			h.selectedID = e.Object.ID
		}

	case bus.NewProject:
		h.objects = nil
		h.selectedID = ""
	}
}

// Count returns the number of objects currently shown.
func (h *Hierarchy) Count() int {
	return len(h.objects)
}

// Objects returns the mirrored list in scene order.
func (h *Hierarchy) Objects() []scene.Object {
	return h.objects
}

func (h *Hierarchy) SelectedID() string {
	return h.selectedID
}

func (h *Hierarchy) find(id string) *scene.Object {
	for i := range h.objects {
		if h.objects[i].ID == id {
			return &h.objects[i]
		}
	}
	return nil
}

// ToggleVisibility flips an object's visibility flag via the bus.
func (h *Hierarchy) ToggleVisibility(id string) {
	o := h.find(id)
	if o == nil {
		return
	}
	h.bus.Publish(bus.ObjectVisibilityUpdated{ObjectID: id, Visible: !o.Visible})
}

// ToggleLock flips an object's lock flag via the bus.
func (h *Hierarchy) ToggleLock(id string) {
	o := h.find(id)
	if o == nil {
		return
	}
	h.bus.Publish(bus.ObjectLockUpdated{ObjectID: id, Locked: !o.Locked})
}
