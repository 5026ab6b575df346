package overlay

import (
	"github.com/go-drift/shadcn/pkg/animation"
	"github.com/go-drift/shadcn/pkg/graphics"
)

// PlaceholderExtent is the surface size drawn on the single frame where
// content is being measured for the first time.
const PlaceholderExtent = 8

// ShouldMount reports whether content is laid out and drawn. Content stays
// mounted while any progress remains, so closing overlays fade out, and
// is mounted as soon as the target is open, before the first animation
// step. It is unmounted only when fully closed without forceMount.
func ShouldMount(p animation.Progress, forceMount bool) bool {
	return forceMount || p.Target || p.T > 0
}

// placeholderSize is the extent used before content has been measured.
func placeholderSize() graphics.Size {
	return graphics.Size{Width: PlaceholderExtent, Height: PlaceholderExtent}
}
