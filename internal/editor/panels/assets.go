package panels

import (
	"context"

	"github.com/framepeach/framepeach/internal/editor/bus"
	"github.com/framepeach/framepeach/internal/editor/storage"
)

// Assets holds the user asset library and answers RequestAssetData with
// the texture and video lists.
type Assets struct {
	bus   *bus.Bus
	store *storage.AssetStore

	assets []storage.UserAsset
}

// NewAssets loads the persisted library and wires the panel to the bus.
func NewAssets(ctx context.Context, b *bus.Bus, store *storage.AssetStore) *Assets {
	a := &Assets{bus: b, store: store, assets: store.Load(ctx)}
	b.Subscribe(a.handle)
	return a
}

func (a *Assets) handle(e bus.Event) {
	switch e.(type) {
	case bus.RequestAssetData:
		a.bus.Publish(bus.AssetDataResponse{
			Textures: a.byKind(storage.AssetKindTexture),
			Videos:   a.byKind(storage.AssetKindVideo),
		})
	}
}

func (a *Assets) byKind(kind string) []storage.UserAsset {
	var result []storage.UserAsset
	for _, asset := range a.assets {
		if asset.Kind == kind {
			result = append(result, asset)
		}
	}
	return result
}

// List returns the whole library.
func (a *Assets) List() []storage.UserAsset {
	return a.assets
}

// Import adds a file to the library and persists the full list. The save
// may prompt via the store's Confirmer when the library is oversized.
func (a *Assets) Import(ctx context.Context, name, kind string, data []byte) (storage.UserAsset, error) {
	asset := storage.NewUserAsset(name, kind, data)
	updated := append(append([]storage.UserAsset{}, a.assets...), asset)

	if err := a.store.Save(ctx, updated); err != nil {
		return storage.UserAsset{}, err
	}
	a.assets = updated
	return asset, nil
}

// Remove deletes an asset from the library and persists the list.
func (a *Assets) Remove(ctx context.Context, id string) error {
	updated := make([]storage.UserAsset, 0, len(a.assets))
	for _, asset := range a.assets {
		if asset.ID != id {
			updated = append(updated, asset)
		}
	}

	if err := a.store.Save(ctx, updated); err != nil {
		return err
	}
	a.assets = updated
	return nil
}
