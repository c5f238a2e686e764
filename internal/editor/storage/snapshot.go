package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/framepeach/framepeach/internal/common"
	"github.com/framepeach/framepeach/internal/editor/scene"
	"github.com/framepeach/framepeach/internal/logging"
)

// SnapshotSchemaVersion is bumped on incompatible snapshot layout changes.
// Loads of a different version fall back to an empty project.
const SnapshotSchemaVersion = 1

// UIState is the non-scene editor state carried in the snapshot.
type UIState struct {
	GridVisible      bool              `json:"gridVisible"`
	ActiveViewport   int               `json:"activeViewport"`
	RenderModes      map[string]string `json:"renderModes,omitempty"`
	SelectedObjectID string            `json:"selectedObjectId,omitempty"`
}

// Snapshot is the full serialized editor state. It is overwritten wholesale
// on every save; there is no diffing and no migration between versions.
type Snapshot struct {
	SchemaVersion int            `json:"schemaVersion"`
	Objects       []scene.Object `json:"objects"`
	UI            UIState        `json:"ui"`
	SavedAt       time.Time      `json:"savedAt"`
}

// DefaultSnapshot is the empty project every failed load falls back to.
func DefaultSnapshot() *Snapshot {
	return &Snapshot{
		SchemaVersion: SnapshotSchemaVersion,
		UI:            UIState{GridVisible: true},
	}
}

// ProjectStore saves and loads project snapshots through the local store.
type ProjectStore struct {
	store  LocalStore
	logger logging.Logger
}

func NewProjectStore(store LocalStore, logger logging.Logger) *ProjectStore {
	return &ProjectStore{store: store, logger: logger}
}

// Save serializes the snapshot and writes the project and autosave keys in
// a single transaction, so the two can never disagree after a crash.
func (p *ProjectStore) Save(ctx context.Context, snap *Snapshot) error {
	snap.SchemaVersion = SnapshotSchemaVersion
	snap.SavedAt = time.Now()

	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	return p.store.SetMany(ctx, map[string][]byte{
		KeyProject:  data,
		KeyAutosave: data,
	})
}

// Load reads the project key. A missing key, malformed JSON, or a schema
// version mismatch is logged and yields the default empty project; load
// never fails the caller.
func (p *ProjectStore) Load(ctx context.Context) *Snapshot {
	data, err := p.store.Get(ctx, KeyProject)
	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			p.logger.Warn(ctx, "project load failed, starting empty", "error", err)
		}
		return DefaultSnapshot()
	}

	snap := &Snapshot{}
	if err := json.Unmarshal(data, snap); err != nil {
		p.logger.Warn(ctx, "project snapshot malformed, starting empty", "error", err)
		return DefaultSnapshot()
	}
	if snap.SchemaVersion != SnapshotSchemaVersion {
		p.logger.Warn(ctx, "project snapshot version mismatch, starting empty",
			"got", snap.SchemaVersion, "want", SnapshotSchemaVersion)
		return DefaultSnapshot()
	}

	return snap
}
