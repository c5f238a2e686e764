package panels

import (
	"github.com/framepeach/framepeach/internal/editor/bus"
	"github.com/framepeach/framepeach/internal/editor/scene"
	"github.com/framepeach/framepeach/internal/editor/storage"
)

// Materials mirrors the selected object's material bag and the asset
// panel's texture/video lists, and produces per-property material edits.
type Materials struct {
	bus *bus.Bus

	selectedID string
	material   *scene.Material
	textures   []storage.UserAsset
	videos     []storage.UserAsset
}

func NewMaterials(b *bus.Bus) *Materials {
	m := &Materials{bus: b}
	b.Subscribe(m.handle)
	return m
}

func (m *Materials) handle(e bus.Event) {
	switch e := e.(type) {
	case bus.ObjectSelected:
		if e.Object == nil {
			m.selectedID = ""
			m.material = nil
			return
		}
		m.selectedID = e.Object.ID
		m.material = cloneMaterial(e.Object.Material)

	case bus.SceneUpdated:
		if m.selectedID == "" {
			return
		}
		for i := range e.Objects {
			if e.Objects[i].ID == m.selectedID {
				m.material = cloneMaterial(e.Objects[i].Material)
				return
			}
		}
		m.selectedID = ""
		m.material = nil

	case bus.AssetDataResponse:
		m.textures = e.Textures
		m.videos = e.Videos

	case bus.NewProject:
		m.selectedID = ""
		m.material = nil
	}
}

func cloneMaterial(mat *scene.Material) *scene.Material {
	if mat == nil {
		return nil
	}
	cp := *mat
	return &cp
}

// Material returns a copy of the mirrored material, nil when no object is
// selected or the object has no material bag yet.
func (m *Materials) Material() *scene.Material {
	return cloneMaterial(m.material)
}

func (m *Materials) Textures() []storage.UserAsset {
	return m.textures
}

func (m *Materials) Videos() []storage.UserAsset {
	return m.videos
}

// ApplyProperty publishes one material property edit for the selected
// object.
func (m *Materials) ApplyProperty(property string, value any) {
	if m.selectedID == "" {
		return
	}
	m.bus.Publish(bus.MaterialUpdated{ObjectID: m.selectedID, Property: property, Value: value})
}

// RefreshAssets asks the assets panel for its current lists.
func (m *Materials) RefreshAssets() {
	m.bus.Publish(bus.RequestAssetData{})
}
