package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/framepeach/framepeach/internal/common"
	"github.com/framepeach/framepeach/internal/editor/config"
	"github.com/framepeach/framepeach/internal/logging"
	"github.com/framepeach/framepeach/internal/server"
	srvconfig "github.com/framepeach/framepeach/internal/server/config"
	"github.com/framepeach/framepeach/internal/server/httpapi"
	"github.com/framepeach/framepeach/internal/server/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func silencePrintln(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

// startAuthServer brings up a real auth service for login tests.
func startAuthServer(t *testing.T) string {
	t.Helper()

	db, err := server.InitDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	cfg := &srvconfig.Config{}
	cfg.LoadDefaults()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	svc := users.NewService(users.NewSQLiteRepository(db), cfg)
	s := httpapi.NewServer(":0", logger, svc, cfg.SecretKey)

	ts := httptest.NewServer(s.Router())
	t.Cleanup(ts.Close)
	return ts.URL
}

func newTestApp(t *testing.T, serverURL string) *App {
	t.Helper()
	silencePrintln(t)

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.ProjectDBPath = ":memory:"
	if serverURL != "" {
		cfg.ServerEndpointAddr = serverURL
	} else {
		// nothing listens here, the app starts offline
		cfg.ServerEndpointAddr = "http://127.0.0.1:1"
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	app, err := NewApp(context.Background(), cfg, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })
	return app
}

func TestApp_StartsOffline(t *testing.T) {
	app := newTestApp(t, "")
	assert.Equal(t, ModeOffline, app.Mode)
	assert.False(t, app.isLoggedIn())
}

func TestApp_AddSelectTransform(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t, "")

	require.NoError(t, app.Add(ctx, "cube"))
	require.Equal(t, 1, app.hierarchy.Count())

	require.NoError(t, app.Transform(ctx, "pos", "x", "5"))

	sel := app.properties.Selected()
	require.NotNil(t, sel)
	assert.Equal(t, 5.0, sel.Position.X)
	assert.Equal(t, 5.0, app.hierarchy.Objects()[0].Position.X)
}

func TestApp_AddUnknownKind(t *testing.T) {
	app := newTestApp(t, "")
	err := app.Add(context.Background(), "teapot")
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestApp_TransformWithoutSelection(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t, "")

	require.NoError(t, app.Add(ctx, "cube"))
	app.viewport.Select("")

	err := app.Transform(ctx, "pos", "x", "1")
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestApp_TransformBadInput(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t, "")
	require.NoError(t, app.Add(ctx, "cube"))

	assert.ErrorIs(t, app.Transform(ctx, "pos", "w", "1"), common.ErrorValidation)
	assert.ErrorIs(t, app.Transform(ctx, "pos", "x", "abc"), common.ErrorValidation)
}

func TestApp_ResolveRef(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t, "")

	require.NoError(t, app.Add(ctx, "cube"))
	require.NoError(t, app.Add(ctx, "sphere"))

	objects := app.hierarchy.Objects()

	id, err := app.resolveRef("1")
	require.NoError(t, err)
	assert.Equal(t, objects[0].ID, id)

	id, err = app.resolveRef(objects[1].ID)
	require.NoError(t, err)
	assert.Equal(t, objects[1].ID, id)

	_, err = app.resolveRef("nope")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestApp_SaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t, "")

	require.NoError(t, app.Add(ctx, "cube"))
	require.NoError(t, app.Transform(ctx, "pos", "x", "5"))
	require.NoError(t, app.Material(ctx, "color", "#00ff00"))
	require.NoError(t, app.Save(ctx))

	require.NoError(t, app.NewProject(ctx))
	require.Equal(t, 0, app.hierarchy.Count())

	require.NoError(t, app.Load(ctx))
	require.Equal(t, 1, app.hierarchy.Count())

	got := app.hierarchy.Objects()[0]
	assert.Equal(t, 5.0, got.Position.X)
	require.NotNil(t, got.Material)
	assert.Equal(t, "#00ff00", got.Material.Color)
}

func TestApp_ToggleVisibilityAndLock(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t, "")
	require.NoError(t, app.Add(ctx, "cube"))

	require.NoError(t, app.ToggleVisibility(ctx, "1"))
	assert.False(t, app.hierarchy.Objects()[0].Visible)

	require.NoError(t, app.ToggleLock(ctx, "1"))
	assert.True(t, app.hierarchy.Objects()[0].Locked)
}

func TestApp_RegisterAndLogin(t *testing.T) {
	// not parallel: overrides the input seams
	url := startAuthServer(t)
	app := newTestApp(t, url)
	assert.Equal(t, ModeOnline, app.Mode)

	answers := []string{"Jane", "Doe", "jane@example.com"}
	origText, origPw := getSimpleText, getPassword
	getSimpleText = func(r *bufio.Reader, prompt string, w io.Writer) (string, error) {
		a := answers[0]
		answers = answers[1:]
		return a, nil
	}
	getPassword = func(w io.Writer) ([]byte, error) { return []byte("password1"), nil }
	t.Cleanup(func() { getSimpleText, getPassword = origText, origPw })

	ctx := context.Background()
	require.NoError(t, app.Register(ctx))

	answers = []string{"jane@example.com"}
	require.NoError(t, app.Login(ctx))
	assert.True(t, app.isLoggedIn())
	assert.Equal(t, "jane@example.com", app.userName)
	assert.Contains(t, app.getStatus(), "jane@example.com")

	require.NoError(t, app.Logout(ctx))
	assert.False(t, app.isLoggedIn())
}

func TestApp_LoginWrongPassword(t *testing.T) {
	// not parallel: overrides the input seams
	url := startAuthServer(t)
	app := newTestApp(t, url)

	answers := []string{"Jane", "Doe", "jane@example.com"}
	origText, origPw := getSimpleText, getPassword
	getSimpleText = func(r *bufio.Reader, prompt string, w io.Writer) (string, error) {
		a := answers[0]
		answers = answers[1:]
		return a, nil
	}
	getPassword = func(w io.Writer) ([]byte, error) { return []byte("password1"), nil }
	t.Cleanup(func() { getSimpleText, getPassword = origText, origPw })

	ctx := context.Background()
	require.NoError(t, app.Register(ctx))

	answers = []string{"jane@example.com"}
	getPassword = func(w io.Writer) ([]byte, error) { return []byte("wrong"), nil }

	err := app.Login(ctx)
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
	assert.False(t, app.isLoggedIn())
}

func TestApp_ImportRejectsUnknownExtension(t *testing.T) {
	app := newTestApp(t, "")
	err := app.Import(context.Background(), "file.exe")
	assert.ErrorIs(t, err, common.ErrorValidation)
}

var _ execIface = (*App)(nil)
