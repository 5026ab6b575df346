// Package testing drives frames deterministically for widget tests.
//
// # Quick Start
//
// Create a harness, script input, run frames and assert on responses or
// on the recorded display list:
//
//	func TestPopover(t *testing.T) {
//	    h := uitest.NewHarness()
//	    draw := func(u *ui.Ui) { widgets.Popover(u, "p", "Open", body) }
//
//	    h.Frame(draw)
//	    h.Click(graphics.Offset{X: 10, Y: 10})
//	    h.Settle(draw)
//
//	    if !uitest.FindText(h.Output().DisplayList, "Dimensions").Exists() {
//	        t.Error("expected popover content")
//	    }
//	}
//
// # Time
//
// Every frame reads the harness clock and then advances it by Step, so
// frame k runs at k*Step. Timers are exercised with Wait, which runs
// frames until the clock has moved by the given duration.
//
// # Snapshot Testing
//
// Display lists can be compared against golden files:
//
//	uitest.CaptureSnapshot(out.DisplayList).MatchesFile(t, "testdata/popover.json")
//
// Update golden files with:
//
//	SHADCN_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import uitest "github.com/go-drift/shadcn/pkg/testing"
package testing
