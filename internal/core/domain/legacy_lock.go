package domain

// LegacyLock is the Pipfile.lock artifact. Field order matches the emitted JSON.
type LegacyLock struct {
	Meta    LockMeta               `json:"_meta"`
	Default map[string]LockedEntry `json:"default"`
	Develop map[string]LockedEntry `json:"develop"`
}

// LockMeta is the _meta section.
type LockMeta struct {
	Hash        LockHash          `json:"hash"`
	PipfileSpec int               `json:"pipfile-spec"`
	Requires    map[string]string `json:"requires"`
	Sources     []LockSource      `json:"sources"`
}

// LockHash holds the manifest content digest.
type LockHash struct {
	SHA256 string `json:"sha256"`
}

// LockSource is a source copied verbatim from the manifest.
type LockSource struct {
	Name      string `json:"name"`
	URL       string `json:"url"`
	VerifySSL bool   `json:"verify_ssl"`
}

// LockedEntry is one package of the default or develop section.
type LockedEntry struct {
	Hashes  []string `json:"hashes"`
	Index   string   `json:"index,omitempty"`
	Markers string   `json:"markers,omitempty"`
	Version string   `json:"version"`
}
