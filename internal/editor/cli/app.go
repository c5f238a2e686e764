// Package cli is the terminal shell of the FramePeach editor. It wires the
// panels, the event bus, local persistence and the auth client together and
// drives them from a REPL.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/framepeach/framepeach/internal/editor/bus"
	"github.com/framepeach/framepeach/internal/editor/client"
	"github.com/framepeach/framepeach/internal/editor/config"
	"github.com/framepeach/framepeach/internal/editor/panels"
	"github.com/framepeach/framepeach/internal/editor/scene"
	"github.com/framepeach/framepeach/internal/editor/storage"
	"github.com/framepeach/framepeach/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// App owns the whole editor session: the viewport and its sibling panels,
// the stores behind them, the autosaver, and the auth client. All editing
// works in either mode; only account commands need the server.
type App struct {
	config    *config.Config
	logger    logging.Logger
	apiClient *client.Client

	db           *sql.DB
	projectStore *storage.ProjectStore
	assetStore   *storage.AssetStore
	autosaver    *storage.Autosaver

	bus        *bus.Bus
	viewport   *panels.Viewport
	hierarchy  *panels.Hierarchy
	properties *panels.Properties
	materials  *panels.Materials
	assets     *panels.Assets
	camera     *panels.CameraControls

	userName string
	Mode     Mode
	reader   *bufio.Reader
}

// NewApp wires the editor. The previous session's project is restored from
// the local store before the REPL starts.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, err := storage.InitDatabase(ctx, c.ProjectDBPath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	a := &App{
		config:    c,
		logger:    logger,
		apiClient: client.New(c.ServerEndpointAddr),
		db:        db,
		bus:       bus.New(),
		Mode:      ModeOffline,
		reader:    bufio.NewReader(os.Stdin),
	}

	store := storage.NewSQLiteStore(db)
	a.projectStore = storage.NewProjectStore(store, logger)
	a.assetStore = storage.NewAssetStore(store, func(prompt string) bool {
		return GetConfirm(a.reader, prompt, os.Stdout)
	}, logger)

	a.viewport = panels.NewViewport(a.bus, scene.NewScene(), logger, func() {
		if a.autosaver != nil {
			a.autosaver.NotifyChange()
		}
	})
	a.hierarchy = panels.NewHierarchy(a.bus)
	a.properties = panels.NewProperties(a.bus)
	a.materials = panels.NewMaterials(a.bus)
	a.assets = panels.NewAssets(ctx, a.bus, a.assetStore)
	a.camera = panels.NewCameraControls(a.bus)

	a.autosaver = storage.NewAutosaver(
		c.AutosaveInterval, c.DebounceDelay, a.viewport.Snapshot, a.projectStore, logger)

	a.viewport.LoadSnapshot(a.projectStore.Load(ctx))

	if err := a.apiClient.Ping(ctx); err == nil {
		a.Mode = ModeOnline
	}

	return a, nil
}

// Close releases the local database.
func (a *App) Close() error {
	return a.db.Close()
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		printlnFn(fmt.Sprintf("Switched to %s mode", mode))
	}
}

func (a *App) isLoggedIn() bool {
	return a.apiClient.Token() != ""
}

func (a *App) getStatus() string {
	s := ""
	if a.userName != "" {
		s = a.userName + " "
	}
	s = s + string(a.Mode)
	return fmt.Sprintf("(%s)", s)
}

// Run drives the REPL and keeps the autosaver and the online status
// watcher alive for the duration of the session. The autosaver performs a
// final save before Run returns.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		a.autosaver.Run(ctx)
	}()
	go func() {
		defer wg.Done()
		a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	}()

	printlnFn("Welcome to FramePeach (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))

	cancel()
	wg.Wait()
}

// StartOnlineStatusWatcher pings the auth service on the given interval and
// flips the editor between online and offline mode accordingly.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.apiClient.Ping(pingCtx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
