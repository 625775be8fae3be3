package stage

import (
	"fmt"
	"io"
)

// DirectivePrefix starts every change-tracking line emitted for the host
// build system. A line reading
//
//	protostage:rerun-if-changed=../src/main/protobuf/hello.proto
//
// tells the orchestrator to treat this step as stale whenever that file
// changes.
const DirectivePrefix = "protostage:rerun-if-changed="

// DependencyTracker declares staged input files to the host build
// system. TrackFile is called once per matching source file, in
// enumeration order, before the file is copied.
type DependencyTracker interface {
	TrackFile(path string) error
	TrackedFiles() []string
}

// DirectiveTracker writes one rerun-if-changed directive per tracked
// file and retains the list for callers that want it as a value.
type DirectiveTracker struct {
	w     io.Writer
	files []string
}

func NewDirectiveTracker(w io.Writer) *DirectiveTracker {
	return &DirectiveTracker{w: w}
}

func (t *DirectiveTracker) TrackFile(path string) error {
	if _, err := fmt.Fprintf(t.w, "%s%s\n", DirectivePrefix, path); err != nil {
		return err
	}
	t.files = append(t.files, path)
	return nil
}

func (t *DirectiveTracker) TrackedFiles() []string {
	return t.files
}

// ListTracker collects tracked paths without emitting directives, for
// callers that consume the dependency list as a return value only.
type ListTracker struct {
	files []string
}

func NewListTracker() *ListTracker {
	return &ListTracker{}
}

func (t *ListTracker) TrackFile(path string) error {
	t.files = append(t.files, path)
	return nil
}

func (t *ListTracker) TrackedFiles() []string {
	return t.files
}
