package layoutfile

import "fmt"

// Loader reads layout documents from a file system
type Loader struct {
	fs FileSystem
}

// NewLoader creates a loader over fs
func NewLoader(fs FileSystem) *Loader {
	return &Loader{fs: fs}
}

// Load reads and parses the document at path
func (l *Loader) Load(path string) (*Document, error) {
	info, err := l.fs.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat layout file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("layout file %s is a directory", path)
	}

	data, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout file: %w", err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	doc.Path = path
	return doc, nil
}

// Load reads the document at path from the local file system
func Load(path string) (*Document, error) {
	return NewLoader(OSFileSystem{}).Load(path)
}
