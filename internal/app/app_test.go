package app_test

import (
	"testing"
	"time"

	"go.trai.ch/pipbridge/internal/adapters/telemetry"
	"go.trai.ch/pipbridge/internal/app"
	"go.trai.ch/pipbridge/internal/core/domain"
	"go.trai.ch/pipbridge/internal/core/ports"
	"go.trai.ch/pipbridge/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

var fixedTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	app          *app.App
	locator      *mocks.MockWorkspaceLocator
	manifests    *mocks.MockManifestStore
	graphs       *mocks.MockGraphReader
	locks        *mocks.MockLockStore
	writer       *mocks.MockFileWriter
	projects     *mocks.MockProjectFinder
	fingerprints *mocks.MockFingerprintStore
	logger       *mocks.MockLogger
	watcher      *mocks.MockWatcher
	watcherErr   error
	ws           *domain.Workspace
	target       app.Target
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &fixture{
		locator:      mocks.NewMockWorkspaceLocator(ctrl),
		manifests:    mocks.NewMockManifestStore(ctrl),
		graphs:       mocks.NewMockGraphReader(ctrl),
		locks:        mocks.NewMockLockStore(ctrl),
		writer:       mocks.NewMockFileWriter(ctrl),
		projects:     mocks.NewMockProjectFinder(ctrl),
		fingerprints: mocks.NewMockFingerprintStore(ctrl),
		logger:       mocks.NewMockLogger(ctrl),
		watcher:      mocks.NewMockWatcher(ctrl),
		ws:           domain.NewWorkspace("/work/Pipfile", "demo"),
		target:       app.Target{Dir: "/work"},
	}
	f.app = app.New(
		f.locator,
		f.manifests,
		f.graphs,
		f.locks,
		f.writer,
		f.projects,
		f.fingerprints,
		f.logger,
		telemetry.NewNoOpTracer(),
		func() (ports.Watcher, error) {
			if f.watcherErr != nil {
				return nil, f.watcherErr
			}
			return f.watcher, nil
		},
	).WithClock(func() time.Time { return fixedTime })
	return f
}

// expectOpen sets up workspace discovery and manifest loading for m.
func (f *fixture) expectOpen(m *domain.Manifest) {
	f.locator.EXPECT().Locate("/work", "").Return(f.ws, nil)
	f.manifests.EXPECT().Load(f.ws.ManifestPath).Return(m, nil)
}

// expectProjectWrite sets up a pyproject.toml write and captures the written bytes.
func (f *fixture) expectProjectWrite(data *[]byte) {
	f.fingerprints.EXPECT().Digest(gomock.Any()).Return("digest")
	f.writer.EXPECT().Exists(f.ws.ProjectPath).Return(false)
	f.writer.EXPECT().WriteFile(f.ws.ProjectPath, gomock.Any()).DoAndReturn(func(_ string, b []byte) error {
		if data != nil {
			*data = b
		}
		return nil
	})
	f.fingerprints.EXPECT().Put(f.ws.StateDir, domain.Fingerprint{
		Output:    f.ws.ProjectPath,
		Digest:    "digest",
		Timestamp: fixedTime,
	}).Return(nil)
}

// recordInfo collects every Info message.
func (f *fixture) recordInfo() *[]string {
	var messages []string
	f.logger.EXPECT().Info(gomock.Any(), gomock.Any()).Do(func(msg string, _ ...any) {
		messages = append(messages, msg)
	}).AnyTimes()
	return &messages
}

func manifestWith(packages ...string) *domain.Manifest {
	m := domain.NewManifest()
	for _, p := range packages {
		m.Packages.Set(p, domain.SimpleSpec{Version: domain.Wildcard})
	}
	return m
}
