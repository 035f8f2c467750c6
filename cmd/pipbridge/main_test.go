package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/pipbridge/internal/adapters/telemetry"
	"go.trai.ch/pipbridge/internal/app"
	"go.trai.ch/pipbridge/internal/core/domain"
	"go.trai.ch/pipbridge/internal/core/ports"
	"go.trai.ch/pipbridge/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	testscript.Main(m, map[string]func(){
		"pipbridge": func() {
			os.Exit(run(context.Background(), os.Args[1:], os.Stderr, provideComponents))
		},
	})
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:   "testdata",
		Setup: setupScript,
	})
}

func setupScript(env *testscript.Env) error {
	env.Setenv("NO_COLOR", "1")
	env.Setenv("CI", "true")

	homeDir := filepath.Join(env.WorkDir, ".home")
	if err := os.MkdirAll(homeDir, 0o750); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)
	return nil
}

type mockedApp struct {
	app     *app.App
	locator *mocks.MockWorkspaceLocator
	logger  *mocks.MockLogger
}

func newMockedApp(t *testing.T) *mockedApp {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := &mockedApp{
		locator: mocks.NewMockWorkspaceLocator(ctrl),
		logger:  mocks.NewMockLogger(ctrl),
	}
	m.app = app.New(
		m.locator,
		mocks.NewMockManifestStore(ctrl),
		mocks.NewMockGraphReader(ctrl),
		mocks.NewMockLockStore(ctrl),
		mocks.NewMockFileWriter(ctrl),
		mocks.NewMockProjectFinder(ctrl),
		mocks.NewMockFingerprintStore(ctrl),
		m.logger,
		telemetry.NewNoOpTracer(),
		func() (ports.Watcher, error) { return mocks.NewMockWatcher(ctrl), nil },
	)
	return m
}

func (m *mockedApp) provider(_ context.Context) (*app.Components, func(), error) {
	return &app.Components{
		App:    m.app,
		Logger: m.logger,
	}, func() {}, nil
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	m := newMockedApp(t)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, m.provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 and logs when the command fails.
func TestRun_ExecutionError(t *testing.T) {
	m := newMockedApp(t)
	m.locator.EXPECT().Locate("/work", "").Return(nil, domain.ErrManifestNotFound)
	m.logger.EXPECT().Error(domain.ErrManifestNotFound)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"convert", "-C", "/work"}, stderr, m.provider)

	assert.Equal(t, 1, exitCode)
}

// TestRun_AppliesOptions verifies that options see the assembled App.
func TestRun_AppliesOptions(t *testing.T) {
	m := newMockedApp(t)

	var seen *app.App
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), m.provider, func(a *app.App) {
		seen = a
	})

	assert.Equal(t, 0, exitCode)
	assert.Same(t, m.app, seen)
}
