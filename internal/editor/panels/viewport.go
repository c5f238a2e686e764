// Package panels contains the editor's panel state holders. Each panel
// keeps its own copy of whatever it displays and stays in sync with its
// siblings exclusively through the event bus, mirroring how the panels are
// mounted independently in the editor shell.
package panels

import (
	"context"

	"github.com/framepeach/framepeach/internal/editor/bus"
	"github.com/framepeach/framepeach/internal/editor/scene"
	"github.com/framepeach/framepeach/internal/editor/storage"
	"github.com/framepeach/framepeach/internal/logging"
)

// Viewport owns the scene and the viewport UI state. It is the single
// consumer of edit-request events and the producer of SceneUpdated; every
// mutation funnels through here, which is what makes last-writer-wins the
// only conflict rule the editor needs.
type Viewport struct {
	bus      *bus.Bus
	scene    *scene.Scene
	logger   logging.Logger
	onChange func()

	selectedID string
	ui         storage.UIState
}

// NewViewport wires a viewport to the bus. onChange is invoked after every
// scene mutation (the autosaver's debounce hook); it may be nil.
func NewViewport(b *bus.Bus, sc *scene.Scene, logger logging.Logger, onChange func()) *Viewport {
	v := &Viewport{
		bus:      b,
		scene:    sc,
		logger:   logger,
		onChange: onChange,
		ui:       storage.UIState{GridVisible: true},
	}
	b.Subscribe(v.handle)
	return v
}

func (v *Viewport) handle(e bus.Event) {
	ctx := context.Background()

	switch e := e.(type) {
	case bus.PositionUpdated:
		v.applyAxis(ctx, scene.TransformPosition, e.Axis, e.Value)

	case bus.RotationUpdated:
		v.applyAxis(ctx, scene.TransformRotation, e.Axis, e.Value)

	case bus.ScaleUpdated:
		v.applyAxis(ctx, scene.TransformScale, e.Axis, e.Value)

	case bus.MaterialUpdated:
		if err := v.scene.SetMaterialProperty(e.ObjectID, e.Property, e.Value); err != nil {
			v.logger.Warn(ctx, "material update rejected", "object", e.ObjectID, "property", e.Property, "error", err)
			return
		}
		v.publishScene()

	case bus.GizmoTransform:
		obj := e.Object
		if err := v.scene.Replace(&obj); err != nil {
			v.logger.Warn(ctx, "gizmo transform rejected", "object", obj.ID, "error", err)
			return
		}
		v.publishScene()

	case bus.DeleteObjectRequested:
		if !v.scene.Remove(e.ObjectID) {
			return
		}
		if v.selectedID == e.ObjectID {
			v.selectedID = ""
			v.bus.Publish(bus.ObjectSelected{})
		}
		v.publishScene()

	case bus.DuplicateObjectRequested:
		cp, ok := v.scene.Duplicate(e.ObjectID)
		if !ok {
			return
		}
		v.publishScene()
		v.selectedID = cp.ID
		v.bus.Publish(bus.ObjectSelected{Object: cp})

	case bus.ObjectVisibilityUpdated:
		if err := v.scene.SetVisibility(e.ObjectID, e.Visible); err != nil {
			return
		}
		v.publishScene()

	case bus.ObjectLockUpdated:
		if err := v.scene.SetLock(e.ObjectID, e.Locked); err != nil {
			return
		}
		v.publishScene()
	}
}

func (v *Viewport) applyAxis(ctx context.Context, kind scene.TransformKind, axis scene.Axis, value float64) {
	if v.selectedID == "" {
		return
	}
	if err := v.scene.SetAxis(v.selectedID, kind, axis, value); err != nil {
		v.logger.Warn(ctx, "transform rejected", "object", v.selectedID, "error", err)
		return
	}
	v.publishScene()
}

func (v *Viewport) publishScene() {
	v.bus.Publish(bus.SceneUpdated{Objects: v.scene.Objects()})
	if v.onChange != nil {
		v.onChange()
	}
}

// AddObject creates an object of the given kind, adds it to the scene and
// selects it.
func (v *Viewport) AddObject(kind string) *scene.Object {
	o := scene.NewObject(kind)
	v.scene.Add(o)
	v.publishScene()
	v.Select(o.ID)
	return o
}

// Select announces a new selection; an empty id clears it.
func (v *Viewport) Select(id string) {
	if id == "" {
		v.selectedID = ""
		v.bus.Publish(bus.ObjectSelected{})
		return
	}
	o, ok := v.scene.Get(id)
	if !ok {
		return
	}
	v.selectedID = id
	v.bus.Publish(bus.ObjectSelected{Object: o})
}

// SelectedID returns the currently selected object id, empty when nothing
// is selected.
func (v *Viewport) SelectedID() string {
	return v.selectedID
}

// LoadSnapshot restores the scene and UI state from a snapshot and
// announces the load to the other panels.
func (v *Viewport) LoadSnapshot(snap *storage.Snapshot) {
	v.scene.Restore(snap.Objects)
	v.ui = snap.UI
	v.selectedID = ""

	v.bus.Publish(bus.ProjectLoaded{})
	v.publishScene()

	if snap.UI.SelectedObjectID != "" {
		v.Select(snap.UI.SelectedObjectID)
	}
}

// Rename changes an object's display name.
func (v *Viewport) Rename(id, name string) error {
	if err := v.scene.Rename(id, name); err != nil {
		return err
	}
	v.publishScene()
	return nil
}

// NewProject resets the scene to an empty project.
func (v *Viewport) NewProject() {
	v.scene.Reset()
	v.selectedID = ""
	v.ui = storage.UIState{GridVisible: true}

	v.bus.Publish(bus.NewProject{})
	v.bus.Publish(bus.ObjectSelected{})
	v.publishScene()
}

// Snapshot captures the current scene and UI state for persistence.
func (v *Viewport) Snapshot() *storage.Snapshot {
	ui := v.ui
	ui.SelectedObjectID = v.selectedID
	return &storage.Snapshot{
		Objects: v.scene.Objects(),
		UI:      ui,
	}
}

func (v *Viewport) SetGridVisible(visible bool) {
	v.ui.GridVisible = visible
	if v.onChange != nil {
		v.onChange()
	}
}

func (v *Viewport) SetActiveViewport(index int) {
	v.ui.ActiveViewport = index
	if v.onChange != nil {
		v.onChange()
	}
}

// SetRenderMode records the render mode of one viewport pane.
func (v *Viewport) SetRenderMode(viewport, mode string) {
	if v.ui.RenderModes == nil {
		v.ui.RenderModes = make(map[string]string)
	}
	v.ui.RenderModes[viewport] = mode
	if v.onChange != nil {
		v.onChange()
	}
}

func (v *Viewport) UI() storage.UIState {
	return v.ui
}
