package ports

// PackStore holds generated icon pack files
type PackStore interface {
	// Path returns the location of a pack file in the store
	Path(name string) string

	// Checksum returns the content digest of a pack file, and false if it does not exist
	Checksum(name string) (string, bool, error)

	// Remove deletes a pack file
	Remove(name string) error

	// Write creates a pack file with the given content
	Write(name string, content []byte) error
}
