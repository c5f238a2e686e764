// Package bus is the editor's cross-panel message channel. It replaces the
// browser-global string-keyed CustomEvent convention with a closed union of
// typed messages routed through a single dispatcher, so payload shape is
// checked at compile time while the producer/consumer map stays the same.
package bus

import (
	"github.com/framepeach/framepeach/internal/editor/scene"
	"github.com/framepeach/framepeach/internal/editor/storage"
)

// Event is the sealed union of editor messages. Only types in this package
// implement it.
type Event interface {
	isEvent()
}

// ObjectSelected announces the current selection. Object is nil when the
// selection was cleared.
type ObjectSelected struct {
	Object *scene.Object
}

// SceneUpdated carries the full object list after any scene mutation.
type SceneUpdated struct {
	Objects []scene.Object
}

// PositionUpdated / RotationUpdated / ScaleUpdated request a single-axis
// edit of the selected object.
type PositionUpdated struct {
	Axis  scene.Axis
	Value float64
}

type RotationUpdated struct {
	Axis  scene.Axis
	Value float64
}

type ScaleUpdated struct {
	Axis  scene.Axis
	Value float64
}

// MaterialUpdated requests one material property change on one object.
type MaterialUpdated struct {
	ObjectID string
	Property string
	Value    any
}

// GizmoTransform carries a whole updated object from the transform gizmo.
type GizmoTransform struct {
	Object scene.Object
}

type DeleteObjectRequested struct {
	ObjectID string
}

type DuplicateObjectRequested struct {
	ObjectID string
}

// RequestAssetData asks the assets panel to publish its current lists.
type RequestAssetData struct{}

// AssetDataResponse answers RequestAssetData with the texture and video
// asset lists.
type AssetDataResponse struct {
	Textures []storage.UserAsset
	Videos   []storage.UserAsset
}

type ObjectVisibilityUpdated struct {
	ObjectID string
	Visible  bool
}

type ObjectLockUpdated struct {
	ObjectID string
	Locked   bool
}

// ProjectLoaded fires after a snapshot was restored into the scene.
type ProjectLoaded struct{}

// NewProject fires after the scene was reset to an empty project.
type NewProject struct{}

func (ObjectSelected) isEvent()           {}
func (SceneUpdated) isEvent()             {}
func (PositionUpdated) isEvent()          {}
func (RotationUpdated) isEvent()          {}
func (ScaleUpdated) isEvent()             {}
func (MaterialUpdated) isEvent()          {}
func (GizmoTransform) isEvent()           {}
func (DeleteObjectRequested) isEvent()    {}
func (DuplicateObjectRequested) isEvent() {}
func (RequestAssetData) isEvent()         {}
func (AssetDataResponse) isEvent()        {}
func (ObjectVisibilityUpdated) isEvent()  {}
func (ObjectLockUpdated) isEvent()        {}
func (ProjectLoaded) isEvent()            {}
func (NewProject) isEvent()               {}
