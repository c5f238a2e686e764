package scene

import (
	"fmt"
	"sync"

	"github.com/framepeach/framepeach/internal/common"
)

// TransformKind selects which vector a SetAxis call mutates.
type TransformKind string

const (
	TransformPosition TransformKind = "position"
	TransformRotation TransformKind = "rotation"
	TransformScale    TransformKind = "scale"
)

// Scene is an ordered list of objects. All mutations go through its
// methods; panels never hold live pointers into it. Writes are last-writer
// wins with no conflict resolution.
type Scene struct {
	mu      sync.Mutex
	objects []*Object
}

func NewScene() *Scene {
	return &Scene{}
}

func (s *Scene) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}

// Objects returns deep copies of all objects in order.
func (s *Scene) Objects() []Object {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]Object, 0, len(s.objects))
	for _, o := range s.objects {
		result = append(result, *o.Clone())
	}
	return result
}

// Get returns a deep copy of the object with the given id.
func (s *Scene) Get(id string) (*Object, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o := s.find(id)
	if o == nil {
		return nil, false
	}
	return o.Clone(), true
}

func (s *Scene) find(id string) *Object {
	for _, o := range s.objects {
		if o.ID == id {
			return o
		}
	}
	return nil
}

// Add appends a copy of the object to the scene.
func (s *Scene) Add(o *Object) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects = append(s.objects, o.Clone())
}

// Remove deletes the object with the given id.
func (s *Scene) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, o := range s.objects {
		if o.ID == id {
			s.objects = append(s.objects[:i], s.objects[i+1:]...)
			return true
		}
	}
	return false
}

// Duplicate clones an object under a fresh id with a " copy" name suffix
// and a slight positional offset, and appends it to the scene.
func (s *Scene) Duplicate(id string) (*Object, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	src := s.find(id)
	if src == nil {
		return nil, false
	}

	cp := src.Clone()
	cp.ID = NewID()
	cp.Name = src.Name + " copy"
	cp.Position.X += 0.5
	cp.Position.Z += 0.5
	s.objects = append(s.objects, cp)
	return cp.Clone(), true
}

// SetAxis sets one component of an object's position, rotation or scale.
// Locked objects reject transform edits.
func (s *Scene) SetAxis(id string, kind TransformKind, axis Axis, value float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	o := s.find(id)
	if o == nil {
		return common.ErrorNotFound
	}
	if o.Locked {
		return fmt.Errorf("%w: object %q is locked", common.ErrorValidation, o.Name)
	}

	switch kind {
	case TransformPosition:
		return o.Position.Set(axis, value)
	case TransformRotation:
		return o.Rotation.Set(axis, value)
	case TransformScale:
		return o.Scale.Set(axis, value)
	default:
		return fmt.Errorf("%w: unknown transform %q", common.ErrorValidation, kind)
	}
}

// SetMaterialProperty applies one material property to an object, creating
// the material bag on first use.
func (s *Scene) SetMaterialProperty(id string, property string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	o := s.find(id)
	if o == nil {
		return common.ErrorNotFound
	}
	if o.Material == nil {
		o.Material = &Material{Opacity: 1, Roughness: 1}
	}
	return o.Material.SetProperty(property, value)
}

// Replace overwrites the stored object with the given one, matched by id.
// Used for whole-object updates coming from the transform gizmo.
func (s *Scene) Replace(o *Object) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.objects {
		if existing.ID == o.ID {
			s.objects[i] = o.Clone()
			return nil
		}
	}
	return common.ErrorNotFound
}

func (s *Scene) SetVisibility(id string, visible bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	o := s.find(id)
	if o == nil {
		return common.ErrorNotFound
	}
	o.Visible = visible
	return nil
}

func (s *Scene) SetLock(id string, locked bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	o := s.find(id)
	if o == nil {
		return common.ErrorNotFound
	}
	o.Locked = locked
	return nil
}

func (s *Scene) Rename(id string, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	o := s.find(id)
	if o == nil {
		return common.ErrorNotFound
	}
	o.Name = name
	return nil
}

// Reset drops every object.
func (s *Scene) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects = nil
}

// Restore replaces the whole object list, e.g. when loading a snapshot.
func (s *Scene) Restore(objects []Object) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.objects = make([]*Object, 0, len(objects))
	for i := range objects {
		s.objects = append(s.objects, objects[i].Clone())
	}
}
