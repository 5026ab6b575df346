// Package widgets provides the shadcn component family on top of the
// overlay skeleton: Popover, DropdownMenu, ContextMenu, HoverCard,
// Tooltip, NavigationMenu, DatePicker, Combobox, Collapsible, Accordion
// and Dialog.
//
// # Widget Construction
//
// Widgets are plain structs configured with a literal and drawn with Show
// every frame:
//
//	widgets.Popover{Label: "Open"}.Show(u, func(c *ui.Ui) {
//	    c.Label("Hello")
//	})
//
// Zero fields fall back to the current theme (see theme.Use). Widgets that
// can be opened accept an optional Open *bool; when set it is read at the
// start of the frame and written back at the end, so the caller and the
// widget can both change it.
//
// # Identity
//
// Every widget keeps its state in the context memory under an ID. Widgets
// with a Label derive the ID from the enclosing region and the label when
// ID is zero; give repeated labels explicit IDs.
//
// # Collision Behavior
//
// Popover, DropdownMenu, ContextMenu, DatePicker and Combobox only
// translate their panel back inside the viewport. HoverCard, Tooltip and
// NavigationMenu flip to the other side of the trigger when the requested
// side does not fit and follow the trigger out of the viewport on the
// cross axis (placement.StickyPartial) unless told otherwise.
package widgets
