package ports

// IconRepository gives access to the icons of an IntelliJ source tree
type IconRepository interface {
	// Glob returns the files under root matching a doublestar pattern, as absolute
	// forward-slash paths. A missing root yields no files.
	Glob(root, pattern string) ([]string, error)

	// Exists reports whether a file exists at path
	Exists(path string) bool

	// IsDir reports whether path is an existing directory
	IsDir(path string) bool

	// ReadFile returns the full content of the file at path
	ReadFile(path string) ([]byte, error)
}
