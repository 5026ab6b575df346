// Package overlay implements floating content anchored to a trigger:
// popovers, menus, hover cards, tooltips.
//
// Every overlay follows the same per-frame sequence:
//
//  1. draw the trigger and read its response
//  2. update the open target through a [Behavior] (click or hover intent)
//  3. advance the animation progress toward the target
//  4. stop if the content is not mounted
//  5. place the content with the placement package against the viewport
//  6. offset it along the used side by the remaining slide distance
//  7. draw the surface and the content in a floating area
//  8. remember the drawn rect for next frame's outside-click and hover tests
//
// State lives in the context memory under the overlay's ID, so callers
// only hold IDs across frames. Content hover and outside-click detection
// use the rect drawn in the previous frame.
package overlay
