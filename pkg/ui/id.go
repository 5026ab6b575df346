// Package ui is a small immediate-mode host: it owns the per-frame
// lifecycle, the keyed persistent memory, pointer/keyboard input, layout
// regions and a layered display list that backends replay.
//
// Widgets are plain function calls made every frame. Anything that must
// survive between frames lives in [Memory], keyed by an [ID] and by the Go
// type of the stored value, so two concerns sharing an ID never collide.
//
// A frame looks like:
//
//	root := ctx.BeginFrame(input)
//	if widgets.Button(root, "Open").Clicked { ... }
//	out := ctx.EndFrame()
//	backend.Present(out.DisplayList)
//	// wait for input or out.RepaintAfter
package ui

import (
	"encoding/binary"
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// ID identifies a widget across frames. IDs are derived from caller-chosen
// values; uniqueness is the caller's responsibility.
type ID uint64

// NewID hashes parts into an ID.
func NewID(parts ...any) ID {
	d := xxhash.New()
	for i, p := range parts {
		if i > 0 {
			_, _ = d.Write([]byte{0})
		}
		_, _ = d.WriteString(fmt.Sprint(p))
	}
	return ID(d.Sum64())
}

// With derives a child ID, e.g. id.With("content").
func (id ID) With(part any) ID {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(id))
	d := xxhash.New()
	_, _ = d.Write(buf[:])
	_, _ = d.WriteString(fmt.Sprint(part))
	return ID(d.Sum64())
}

// String returns the ID in hex.
func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 16)
}
