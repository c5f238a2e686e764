package panels

import (
	"github.com/framepeach/framepeach/internal/editor/bus"
	"github.com/framepeach/framepeach/internal/editor/scene"
)

// Properties mirrors the selected object's transform for the inspector
// fields and produces single-axis edits plus delete/duplicate requests.
type Properties struct {
	bus *bus.Bus

	selected *scene.Object
}

func NewProperties(b *bus.Bus) *Properties {
	p := &Properties{bus: b}
	b.Subscribe(p.handle)
	return p
}

func (p *Properties) handle(e bus.Event) {
	switch e := e.(type) {
	case bus.ObjectSelected:
		if e.Object == nil {
			p.selected = nil
		} else {
			p.selected = e.Object.Clone()
		}

	case bus.SceneUpdated:
		// keep the mirrored copy fresh after any scene mutation
		if p.selected == nil {
			return
		}
		for i := range e.Objects {
			if e.Objects[i].ID == p.selected.ID {
				p.selected = e.Objects[i].Clone()
				return
			}
		}
		p.selected = nil

	case bus.NewProject:
		p.selected = nil
	}
}

// Selected returns a copy of the mirrored object, nil when nothing is
// selected.
func (p *Properties) Selected() *scene.Object {
	if p.selected == nil {
		return nil
	}
	return p.selected.Clone()
}

func (p *Properties) SetPositionAxis(axis scene.Axis, value float64) {
	p.bus.Publish(bus.PositionUpdated{Axis: axis, Value: value})
}

func (p *Properties) SetRotationAxis(axis scene.Axis, value float64) {
	p.bus.Publish(bus.RotationUpdated{Axis: axis, Value: value})
}

func (p *Properties) SetScaleAxis(axis scene.Axis, value float64) {
	p.bus.Publish(bus.ScaleUpdated{Axis: axis, Value: value})
}

// RequestDelete asks the viewport to delete the selected object.
func (p *Properties) RequestDelete() {
	if p.selected == nil {
		return
	}
	p.bus.Publish(bus.DeleteObjectRequested{ObjectID: p.selected.ID})
}

// RequestDuplicate asks the viewport to duplicate the selected object.
func (p *Properties) RequestDuplicate() {
	if p.selected == nil {
		return
	}
	p.bus.Publish(bus.DuplicateObjectRequested{ObjectID: p.selected.ID})
}
