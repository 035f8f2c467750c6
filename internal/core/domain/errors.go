package domain

import "go.trai.ch/zerr"

var (
	// ErrManifestNotFound is returned when no Pipfile can be located.
	ErrManifestNotFound = zerr.New("could not find Pipfile")

	// ErrManifestRead is returned when the Pipfile cannot be read.
	ErrManifestRead = zerr.New("failed to read Pipfile")

	// ErrManifestParse is returned when the Pipfile is malformed or does not match the schema.
	ErrManifestParse = zerr.New("failed to parse Pipfile")

	// ErrDuplicatePackage is returned when two keys of one package section normalize to the same name.
	ErrDuplicatePackage = zerr.New("duplicate package name")

	// ErrManifestSerialize is returned when the manifest model cannot be rendered.
	ErrManifestSerialize = zerr.New("failed to render Pipfile")

	// ErrManifestWrite is returned when the Pipfile cannot be written.
	ErrManifestWrite = zerr.New("failed to write Pipfile")

	// ErrInvalidProjectName is returned when the generated project would have no name.
	ErrInvalidProjectName = zerr.New("project name must not be empty")

	// ErrProjectEncode is returned when the project manifest cannot be encoded.
	ErrProjectEncode = zerr.New("failed to encode pyproject.toml")

	// ErrProjectWrite is returned when the project manifest cannot be written.
	ErrProjectWrite = zerr.New("failed to write pyproject.toml")

	// ErrLockGraphRead is returned when the resolved graph exists but cannot be read.
	ErrLockGraphRead = zerr.New("failed to read uv.lock")

	// ErrLockGraphParse is returned when the resolved graph cannot be decoded.
	ErrLockGraphParse = zerr.New("failed to parse uv.lock")

	// ErrLockGraphMissing is returned when an operation requires a resolved graph and none exists.
	ErrLockGraphMissing = zerr.New("no resolved graph found, run the resolver first")

	// ErrLockSerialize is returned when the legacy lock artifact cannot be marshaled.
	ErrLockSerialize = zerr.New("failed to serialize Pipfile.lock")

	// ErrLockWrite is returned when the legacy lock artifact cannot be written.
	ErrLockWrite = zerr.New("failed to write Pipfile.lock")

	// ErrLockRead is returned when an existing legacy lock artifact cannot be read.
	ErrLockRead = zerr.New("failed to read Pipfile.lock")

	// ErrLockParse is returned when an existing legacy lock artifact cannot be decoded.
	ErrLockParse = zerr.New("failed to parse Pipfile.lock")

	// ErrLockMissing is returned when an operation requires Pipfile.lock and none exists.
	ErrLockMissing = zerr.New("no Pipfile.lock found, run lock first")

	// ErrLockOutdated is returned when Pipfile.lock was produced from a different Pipfile.
	ErrLockOutdated = zerr.New("Pipfile.lock is out of date")

	// ErrInvalidHash is returned when a lock entry carries a malformed hash string.
	ErrInvalidHash = zerr.New("invalid package hash")

	// ErrHashComputation is returned when the manifest content hash cannot be computed.
	ErrHashComputation = zerr.New("failed to compute Pipfile hash")

	// ErrNoPackagesSpecified is returned when add or remove is called without package names.
	ErrNoPackagesSpecified = zerr.New("no packages specified")

	// ErrInvalidPackageSpec is returned when a package argument cannot be split into a name.
	ErrInvalidPackageSpec = zerr.New("invalid package specification")

	// ErrRequirementsRead is returned when a requirements file cannot be read.
	ErrRequirementsRead = zerr.New("failed to read requirements file")

	// ErrSettingsRead is returned when the settings file cannot be read.
	ErrSettingsRead = zerr.New("failed to read settings file")

	// ErrSettingsParse is returned when the settings file cannot be parsed.
	ErrSettingsParse = zerr.New("failed to parse settings file")

	// ErrStoreReadFailed is returned when the fingerprint state cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read fingerprint state")

	// ErrStoreUnmarshalFailed is returned when the fingerprint state cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal fingerprint state")

	// ErrStoreMarshalFailed is returned when the fingerprint state cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal fingerprint state")

	// ErrStoreCreateFailed is returned when the state directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create state directory")

	// ErrStoreWriteFailed is returned when the fingerprint state cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write fingerprint state")

	// ErrWatchFailed is returned when the manifest watcher cannot be started.
	ErrWatchFailed = zerr.New("failed to watch Pipfile")
)
