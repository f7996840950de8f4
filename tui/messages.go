package tui

import (
	"github.com/young1lin/termgrid/internal/layoutfile"
)

// LayoutLoadedMsg is sent when a layout document has been (re)loaded
type LayoutLoadedMsg struct {
	Doc *layoutfile.Document
}

// LayoutErrorMsg is sent when a layout document fails to load. The previous
// layout stays on screen.
type LayoutErrorMsg struct {
	Err error
}

// WatcherFailedMsg is sent when the file watcher fails
type WatcherFailedMsg struct {
	Err error
}
