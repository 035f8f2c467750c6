package ports

// FileWriter defines the interface for replacing generated files.
//
//go:generate mockgen -source=file_writer.go -destination=mocks/mock_file_writer.go -package=mocks
type FileWriter interface {
	// WriteFile replaces the file at path with data. Readers never observe a partial file.
	WriteFile(path string, data []byte) error

	// Exists reports whether a regular file exists at path.
	Exists(path string) bool
}
