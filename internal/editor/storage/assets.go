package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/framepeach/framepeach/internal/common"
	"github.com/framepeach/framepeach/internal/logging"
	"github.com/google/uuid"
)

// AssetSoftLimitBytes is the serialized-size threshold above which the
// user is asked before the asset library is written to the local store.
const AssetSoftLimitBytes = 4 << 20

// Asset kinds.
const (
	AssetKindTexture = "texture"
	AssetKindVideo   = "video"
	AssetKindModel   = "model"
)

// UserAsset is an imported texture, video or model file kept in the user's
// local library. Data holds the raw file content.
type UserAsset struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Kind   string `json:"kind"`
	Folder string `json:"folder,omitempty"`
	Data   []byte `json:"data,omitempty"`
}

// NewUserAsset assigns a fresh id to an imported file.
func NewUserAsset(name, kind string, data []byte) UserAsset {
	return UserAsset{ID: uuid.NewString(), Name: name, Kind: kind, Data: data}
}

// Confirmer asks the user a yes/no question and blocks for the answer.
// The CLI implementation prompts on the terminal.
type Confirmer func(prompt string) bool

// AssetStore manages the user asset library and folder state. Oversized
// writes go through the Confirmer: the user picks between keeping the
// library in memory only and aborting the write; data is never silently
// truncated. On a quota error from the store the user may wipe all editor
// keys and retry once.
type AssetStore struct {
	store   LocalStore
	confirm Confirmer
	logger  logging.Logger

	memoryOnly bool
	memory     []UserAsset
}

func NewAssetStore(store LocalStore, confirm Confirmer, logger logging.Logger) *AssetStore {
	return &AssetStore{store: store, confirm: confirm, logger: logger}
}

// MemoryOnly reports whether the library currently lives only in memory.
func (a *AssetStore) MemoryOnly() bool {
	return a.memoryOnly
}

// Save persists the whole asset list. Returns common.ErrWriteDeclined when
// the user aborts an oversized write.
func (a *AssetStore) Save(ctx context.Context, assets []UserAsset) error {
	data, err := json.Marshal(assets)
	if err != nil {
		return err
	}

	if len(data) > AssetSoftLimitBytes {
		keep := a.confirm(fmt.Sprintf(
			"Asset library is %.1f MB, over the %d MB storage limit. Keep it in memory only for this session?",
			float64(len(data))/(1<<20), AssetSoftLimitBytes>>20))
		if !keep {
			return common.ErrWriteDeclined
		}
		a.memoryOnly = true
		a.memory = assets
		return nil
	}

	a.memoryOnly = false
	a.memory = nil

	err = a.store.Set(ctx, KeyUserAssets, data)
	if errors.Is(err, common.ErrQuotaExceeded) {
		wipe := a.confirm("Device storage is full. Clear all saved FramePeach data and retry?")
		if !wipe {
			return err
		}
		n, werr := a.store.WipePrefix(ctx, KeyPrefix)
		if werr != nil {
			return werr
		}
		a.logger.Warn(ctx, "wiped local keys to free storage", "removed", n)
		return a.store.Set(ctx, KeyUserAssets, data)
	}
	return err
}

// Load returns the asset list: the in-memory copy when the library was
// kept memory-only, otherwise the stored one. A missing or malformed
// stored list yields an empty library.
func (a *AssetStore) Load(ctx context.Context) []UserAsset {
	if a.memoryOnly {
		return a.memory
	}

	data, err := a.store.Get(ctx, KeyUserAssets)
	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			a.logger.Warn(ctx, "asset load failed, starting empty", "error", err)
		}
		return nil
	}

	var assets []UserAsset
	if err := json.Unmarshal(data, &assets); err != nil {
		a.logger.Warn(ctx, "asset list malformed, starting empty", "error", err)
		return nil
	}
	return assets
}

// SaveFolders persists the folder list.
func (a *AssetStore) SaveFolders(ctx context.Context, folders []string) error {
	data, err := json.Marshal(folders)
	if err != nil {
		return err
	}
	return a.store.Set(ctx, KeyUserFolders, data)
}

// LoadFolders returns the folder list, empty on any failure.
func (a *AssetStore) LoadFolders(ctx context.Context) []string {
	data, err := a.store.Get(ctx, KeyUserFolders)
	if err != nil {
		return nil
	}
	var folders []string
	if err := json.Unmarshal(data, &folders); err != nil {
		a.logger.Warn(ctx, "folder list malformed, starting empty", "error", err)
		return nil
	}
	return folders
}

// SetCurrentFolder records the folder the assets panel is browsing.
func (a *AssetStore) SetCurrentFolder(ctx context.Context, folder string) error {
	return a.store.Set(ctx, KeyCurrentFolder, []byte(folder))
}

// CurrentFolder returns the recorded folder, empty when unset.
func (a *AssetStore) CurrentFolder(ctx context.Context) string {
	data, err := a.store.Get(ctx, KeyCurrentFolder)
	if err != nil {
		return ""
	}
	return string(data)
}
