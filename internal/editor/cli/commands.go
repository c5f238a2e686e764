package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/framepeach/framepeach/internal/common"
	"github.com/framepeach/framepeach/internal/editor/scene"
	"github.com/framepeach/framepeach/internal/editor/storage"
)

var objectKinds = map[string]bool{
	"cube":     true,
	"sphere":   true,
	"cylinder": true,
	"cone":     true,
	"plane":    true,
	"torus":    true,
}

// resolveRef turns a user reference, either an object id or a 1-based list
// index, into an object id.
func (a *App) resolveRef(ref string) (string, error) {
	objects := a.hierarchy.Objects()

	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(objects) {
		return objects[n-1].ID, nil
	}
	for i := range objects {
		if objects[i].ID == ref {
			return ref, nil
		}
	}
	return "", fmt.Errorf("no object %q: %w", ref, common.ErrorNotFound)
}

func (a *App) requireSelection() error {
	if a.viewport.SelectedID() == "" {
		return fmt.Errorf("nothing selected: %w", common.ErrorValidation)
	}
	return nil
}

// Add creates a primitive of the given kind and selects it.
func (a *App) Add(ctx context.Context, kind string) error {
	kind = strings.ToLower(kind)
	if !objectKinds[kind] {
		return fmt.Errorf("unknown kind %q: %w", kind, common.ErrorValidation)
	}
	o := a.viewport.AddObject(kind)
	printlnFn("Added", o.Name, o.ID)
	return nil
}

// List prints the scene objects as the hierarchy panel sees them.
func (a *App) List(ctx context.Context) error {
	objects := a.hierarchy.Objects()
	if len(objects) == 0 {
		printlnFn("Scene is empty")
		return nil
	}

	for i, o := range objects {
		marker := " "
		if o.ID == a.hierarchy.SelectedID() {
			marker = "*"
		}
		flags := ""
		if !o.Visible {
			flags += " hidden"
		}
		if o.Locked {
			flags += " locked"
		}
		printlnFn(fmt.Sprintf("%s %2d. %-20s %-8s pos(%.2f %.2f %.2f)%s  %s",
			marker, i+1, o.Name, o.Kind, o.Position.X, o.Position.Y, o.Position.Z, flags, o.ID))
	}
	return nil
}

// Select makes the referenced object the current selection.
func (a *App) Select(ctx context.Context, ref string) error {
	id, err := a.resolveRef(ref)
	if err != nil {
		return err
	}
	a.viewport.Select(id)
	return nil
}

// Transform applies a single-axis edit to the selected object. kind is one
// of "pos", "rot", "scale".
func (a *App) Transform(ctx context.Context, kind, axis, value string) error {
	if err := a.requireSelection(); err != nil {
		return err
	}

	ax, ok := scene.ParseAxis(axis)
	if !ok {
		return fmt.Errorf("invalid axis %q: %w", axis, common.ErrorValidation)
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("invalid value %q: %w", value, common.ErrorValidation)
	}

	switch kind {
	case "pos":
		a.properties.SetPositionAxis(ax, v)
	case "rot":
		a.properties.SetRotationAxis(ax, v)
	case "scale":
		a.properties.SetScaleAxis(ax, v)
	default:
		return fmt.Errorf("invalid transform %q: %w", kind, common.ErrorValidation)
	}
	return nil
}

// Material applies one material property edit to the selected object.
// Numeric values are passed as floats, everything else as a string.
func (a *App) Material(ctx context.Context, property, value string) error {
	if err := a.requireSelection(); err != nil {
		return err
	}

	var v any = value
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		v = f
	}
	a.materials.ApplyProperty(property, v)
	return nil
}

// ToggleVisibility flips the referenced object's visibility.
func (a *App) ToggleVisibility(ctx context.Context, ref string) error {
	id, err := a.resolveRef(ref)
	if err != nil {
		return err
	}
	a.hierarchy.ToggleVisibility(id)
	return nil
}

// ToggleLock flips the referenced object's lock flag.
func (a *App) ToggleLock(ctx context.Context, ref string) error {
	id, err := a.resolveRef(ref)
	if err != nil {
		return err
	}
	a.hierarchy.ToggleLock(id)
	return nil
}

// Delete removes the selected object.
func (a *App) Delete(ctx context.Context) error {
	if err := a.requireSelection(); err != nil {
		return err
	}
	a.properties.RequestDelete()
	return nil
}

// Duplicate copies the selected object and selects the copy.
func (a *App) Duplicate(ctx context.Context) error {
	if err := a.requireSelection(); err != nil {
		return err
	}
	a.properties.RequestDuplicate()
	return nil
}

// Rename changes the selected object's display name.
func (a *App) Rename(ctx context.Context, name string) error {
	if err := a.requireSelection(); err != nil {
		return err
	}
	return a.viewport.Rename(a.viewport.SelectedID(), name)
}

// Save persists the current project snapshot.
func (a *App) Save(ctx context.Context) error {
	if err := a.projectStore.Save(ctx, a.viewport.Snapshot()); err != nil {
		return err
	}
	printlnFn("Project saved")
	return nil
}

// Load restores the last saved project snapshot.
func (a *App) Load(ctx context.Context) error {
	a.viewport.LoadSnapshot(a.projectStore.Load(ctx))
	printlnFn("Project loaded,", a.hierarchy.Count(), "objects")
	return nil
}

// NewProject resets the editor to an empty scene.
func (a *App) NewProject(ctx context.Context) error {
	a.viewport.NewProject()
	printlnFn("New project")
	return nil
}

// Assets lists the user asset library.
func (a *App) Assets(ctx context.Context) error {
	list := a.assets.List()
	if len(list) == 0 {
		printlnFn("Asset library is empty")
		return nil
	}
	for i, asset := range list {
		printlnFn(fmt.Sprintf("%2d. %-20s %-8s %d bytes", i+1, asset.Name, asset.Kind, len(asset.Data)))
	}
	if a.assetStore.MemoryOnly() {
		printlnFn("(library is kept in memory only for this session)")
	}
	return nil
}

// Import reads a file from disk and adds it to the asset library. The kind
// is derived from the file extension.
func (a *App) Import(ctx context.Context, path string) error {
	kind, err := assetKindForPath(path)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	asset, err := a.assets.Import(ctx, filepath.Base(path), kind, data)
	if err != nil {
		return err
	}
	printlnFn("Imported", asset.Name, "as", asset.Kind)
	return nil
}

func assetKindForPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg", ".webp":
		return storage.AssetKindTexture, nil
	case ".mp4", ".webm", ".mov":
		return storage.AssetKindVideo, nil
	case ".glb", ".gltf", ".obj":
		return storage.AssetKindModel, nil
	}
	return "", fmt.Errorf("unsupported file type %q: %w", filepath.Ext(path), common.ErrorValidation)
}
