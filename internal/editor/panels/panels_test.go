package panels

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/framepeach/framepeach/internal/editor/bus"
	"github.com/framepeach/framepeach/internal/editor/scene"
	"github.com/framepeach/framepeach/internal/editor/storage"
	"github.com/framepeach/framepeach/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	bus        *bus.Bus
	viewport   *Viewport
	hierarchy  *Hierarchy
	properties *Properties
	materials  *Materials
	camera     *CameraControls
	changes    int
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{bus: bus.New()}
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	f.viewport = NewViewport(f.bus, scene.NewScene(), logger, func() { f.changes++ })
	f.hierarchy = NewHierarchy(f.bus)
	f.properties = NewProperties(f.bus)
	f.materials = NewMaterials(f.bus)
	f.camera = NewCameraControls(f.bus)
	return f
}

// The end-to-end flow from the editor: create a cube, select it, type a new
// X into the properties panel, and watch every sibling panel converge.
func TestPanels_CubePositionScenario(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	cube := f.viewport.AddObject("cube")

	sel := f.properties.Selected()
	require.NotNil(t, sel)
	assert.Equal(t, cube.ID, sel.ID)
	assert.Equal(t, 0.0, sel.Position.X)

	f.properties.SetPositionAxis(scene.AxisX, 5)

	// viewport applied the edit and republished the scene
	sel = f.properties.Selected()
	require.NotNil(t, sel)
	assert.Equal(t, 5.0, sel.Position.X, "properties panel X field")

	assert.Equal(t, 1, f.hierarchy.Count(), "hierarchy count")
	assert.Equal(t, 5.0, f.hierarchy.Objects()[0].Position.X, "hierarchy view of the scene")
}

func TestPanels_ObjectSelectedIdempotent(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	cube := f.viewport.AddObject("cube")

	f.viewport.Select(cube.ID)
	first := f.properties.Selected()
	firstTarget := f.camera.Target()
	firstHierarchySel := f.hierarchy.SelectedID()

	f.viewport.Select(cube.ID)

	assert.Equal(t, first, f.properties.Selected())
	assert.Equal(t, firstTarget, f.camera.Target())
	assert.Equal(t, firstHierarchySel, f.hierarchy.SelectedID())
}

func TestPanels_DeselectClearsConsumers(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.viewport.AddObject("cube")

	f.viewport.Select("")

	assert.Nil(t, f.properties.Selected())
	assert.Nil(t, f.materials.Material())
	assert.False(t, f.camera.Focused())
	assert.Empty(t, f.hierarchy.SelectedID())
}

func TestPanels_MaterialUpdateFlow(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.viewport.AddObject("cube")

	f.materials.ApplyProperty("color", "#ff0000")
	f.materials.ApplyProperty("metalness", 0.8)

	mat := f.materials.Material()
	require.NotNil(t, mat)
	assert.Equal(t, "#ff0000", mat.Color)
	assert.Equal(t, 0.8, mat.Metalness)

	// the properties panel sees the same object state
	sel := f.properties.Selected()
	require.NotNil(t, sel)
	assert.Equal(t, "#ff0000", sel.Material.Color)
}

func TestPanels_DeleteViaProperties(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	cube := f.viewport.AddObject("cube")
	f.viewport.AddObject("sphere")

	f.viewport.Select(cube.ID)
	f.properties.RequestDelete()

	assert.Equal(t, 1, f.hierarchy.Count())
	assert.Nil(t, f.properties.Selected(), "deleting the selection must clear it")
	assert.Empty(t, f.viewport.SelectedID())
}

func TestPanels_DuplicateSelectsCopy(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	cube := f.viewport.AddObject("cube")

	f.properties.RequestDuplicate()

	assert.Equal(t, 2, f.hierarchy.Count())
	sel := f.properties.Selected()
	require.NotNil(t, sel)
	assert.NotEqual(t, cube.ID, sel.ID, "the copy becomes the selection")
	assert.Equal(t, "cube copy", sel.Name)
}

func TestPanels_VisibilityAndLockFromHierarchy(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	cube := f.viewport.AddObject("cube")

	f.hierarchy.ToggleVisibility(cube.ID)
	assert.False(t, f.hierarchy.Objects()[0].Visible)

	f.hierarchy.ToggleLock(cube.ID)
	assert.True(t, f.hierarchy.Objects()[0].Locked)

	// a locked object rejects transforms; panel copies stay unchanged
	f.properties.SetPositionAxis(scene.AxisX, 9)
	sel := f.properties.Selected()
	require.NotNil(t, sel)
	assert.Equal(t, 0.0, sel.Position.X)
}

func TestPanels_GizmoTransform(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	cube := f.viewport.AddObject("cube")

	edited := *f.properties.Selected()
	edited.Position = scene.Vector3{X: 1, Y: 2, Z: 3}
	edited.Rotation = scene.Vector3{Y: 90}
	f.bus.Publish(bus.GizmoTransform{Object: edited})

	got := f.hierarchy.Objects()[0]
	assert.Equal(t, cube.ID, got.ID)
	assert.Equal(t, scene.Vector3{X: 1, Y: 2, Z: 3}, got.Position)
	assert.Equal(t, scene.Vector3{Y: 90}, got.Rotation)
}

func TestPanels_NewProjectClearsEverything(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.viewport.AddObject("cube")
	f.viewport.AddObject("sphere")

	f.viewport.NewProject()

	assert.Equal(t, 0, f.hierarchy.Count())
	assert.Nil(t, f.properties.Selected())
	assert.Nil(t, f.materials.Material())
	assert.Empty(t, f.viewport.SelectedID())
}

func TestPanels_SnapshotRestoreRoundTrip(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	cube := f.viewport.AddObject("cube")
	f.properties.SetPositionAxis(scene.AxisX, 5)
	f.viewport.SetRenderMode("viewport-1", "wireframe")

	snap := f.viewport.Snapshot()
	assert.Equal(t, cube.ID, snap.UI.SelectedObjectID)

	g := newFixture(t)
	g.viewport.LoadSnapshot(snap)

	assert.Equal(t, 1, g.hierarchy.Count())
	sel := g.properties.Selected()
	require.NotNil(t, sel)
	assert.Equal(t, cube.ID, sel.ID)
	assert.Equal(t, 5.0, sel.Position.X)
	assert.Equal(t, "wireframe", g.viewport.UI().RenderModes["viewport-1"])
}

func TestPanels_ChangeHookFiresOnMutations(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	before := f.changes
	f.viewport.AddObject("cube")
	assert.Greater(t, f.changes, before)
}

func TestAssetsPanel_AnswersRequestAssetData(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	b := bus.New()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	db, err := storage.InitDatabase(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store := storage.NewAssetStore(storage.NewSQLiteStore(db), func(string) bool { return true }, logger)
	assets := NewAssets(ctx, b, store)
	materials := NewMaterials(b)

	_, err = assets.Import(ctx, "wood.png", storage.AssetKindTexture, []byte{1})
	require.NoError(t, err)
	_, err = assets.Import(ctx, "clip.mp4", storage.AssetKindVideo, []byte{2})
	require.NoError(t, err)

	materials.RefreshAssets()

	require.Len(t, materials.Textures(), 1)
	assert.Equal(t, "wood.png", materials.Textures()[0].Name)
	require.Len(t, materials.Videos(), 1)
	assert.Equal(t, "clip.mp4", materials.Videos()[0].Name)
}
