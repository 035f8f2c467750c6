// Package config locates the Pipfile and resolves per-project settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.trai.ch/pipbridge/internal/core/domain"
	"go.trai.ch/pipbridge/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// EnvPipfile overrides manifest discovery with an explicit path.
	EnvPipfile = "PIPENV_PIPFILE"

	// EnvMaxDepth bounds how many parent directories are searched.
	EnvMaxDepth = "PIPENV_MAX_DEPTH"

	// EnvProjectName overrides the generated project name.
	EnvProjectName = "PIPBRIDGE_PROJECT_NAME"
)

var _ ports.WorkspaceLocator = (*Locator)(nil)

// Locator implements ports.WorkspaceLocator.
type Locator struct {
	Logger ports.Logger
}

// NewLocator creates a new Locator with the given logger.
func NewLocator(logger ports.Logger) *Locator {
	return &Locator{Logger: logger}
}

// Locate finds the Pipfile and builds the workspace around it.
// Precedence for the manifest path: explicit, then $PIPENV_PIPFILE, then an upward
// search from cwd bounded by $PIPENV_MAX_DEPTH.
func (l *Locator) Locate(cwd, explicit string) (*domain.Workspace, error) {
	abs, err := filepath.Abs(cwd)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve working directory"), "cwd", cwd)
	}
	cwd = abs

	manifestPath, err := l.findManifest(cwd, explicit)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(manifestPath)
	settings, err := readSettings(filepath.Join(dir, domain.SettingsFileName))
	if err != nil {
		return nil, err
	}

	ws := domain.NewWorkspace(manifestPath, l.projectName(dir, settings))
	ws.ProjectPath = resolvePath(dir, settings.Pyproject, ws.ProjectPath)
	ws.ResolvedGraphPath = resolvePath(dir, settings.ResolvedGraph, ws.ResolvedGraphPath)
	ws.LockPath = resolvePath(dir, settings.LockFile, ws.LockPath)
	ws.StateDir = resolvePath(dir, settings.StateDir, ws.StateDir)
	return ws, nil
}

func (l *Locator) findManifest(cwd, explicit string) (string, error) {
	if explicit != "" {
		return requireFile(absolute(cwd, explicit), "flag")
	}
	if env := os.Getenv(EnvPipfile); env != "" {
		return requireFile(absolute(cwd, env), EnvPipfile)
	}

	maxDepth := l.maxDepth()
	current := filepath.Clean(cwd)
	for range maxDepth + 1 {
		candidate := filepath.Join(current, domain.ManifestFileName)
		if isFile(candidate) {
			return candidate, nil
		}
		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}

	err := zerr.With(domain.ErrManifestNotFound, "cwd", cwd)
	return "", zerr.With(err, "max_depth", maxDepth)
}

func (l *Locator) maxDepth() int {
	raw := os.Getenv(EnvMaxDepth)
	if raw == "" {
		return domain.DefaultMaxDepth
	}
	depth, err := strconv.Atoi(raw)
	if err != nil || depth < 0 {
		l.Logger.Warn(fmt.Sprintf("ignoring invalid %s=%q", EnvMaxDepth, raw))
		return domain.DefaultMaxDepth
	}
	return depth
}

// projectName resolves the name in order: process environment, .env file,
// settings file, directory name.
func (l *Locator) projectName(dir string, settings Settings) string {
	if name := strings.TrimSpace(os.Getenv(EnvProjectName)); name != "" {
		return name
	}

	envPath := filepath.Join(dir, domain.EnvFileName)
	if isFile(envPath) {
		values, err := godotenv.Read(envPath)
		if err != nil {
			l.Logger.Warn(fmt.Sprintf("ignoring unreadable %s: %v", domain.EnvFileName, err))
		} else if name := strings.TrimSpace(values[EnvProjectName]); name != "" {
			return name
		}
	}

	if name := strings.TrimSpace(settings.ProjectName); name != "" {
		return name
	}

	return ProjectNameFromDir(dir)
}

// ProjectNameFromDir returns the base name of dir, or the default name for a root directory.
func ProjectNameFromDir(dir string) string {
	base := filepath.Base(filepath.Clean(dir))
	if base == "" || base == "." || base == ".." || base == string(filepath.Separator) {
		return domain.DefaultProjectName
	}
	return base
}

func readSettings(path string) (Settings, error) {
	var settings Settings

	//nolint:gosec // Path is the settings file next to the located Pipfile
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, zerr.With(zerr.Wrap(err, domain.ErrSettingsRead.Error()), "path", path)
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return settings, zerr.With(zerr.Wrap(err, domain.ErrSettingsParse.Error()), "path", path)
	}
	return settings, nil
}

func requireFile(path, origin string) (string, error) {
	if !isFile(path) {
		err := zerr.With(domain.ErrManifestNotFound, "path", path)
		return "", zerr.With(err, "origin", origin)
	}
	return path, nil
}

func absolute(cwd, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(cwd, path)
}

func resolvePath(dir, configured, fallback string) string {
	if configured == "" {
		return fallback
	}
	return absolute(dir, configured)
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
