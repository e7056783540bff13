package viewport

import (
	"testing"

	"github.com/xq773939719/gitbutler/internal/layout"
	"github.com/xq773939719/gitbutler/internal/store"
	"github.com/xq773939719/gitbutler/internal/unit"
)

func testEngine() layout.Engine {
	return layout.Engine{
		ContainerMin:    800,
		Margin:          1,
		FoldedLeftWidth: 48,
	}
}

func testConfig() Config {
	return Config{
		LayoutName:    "workspace",
		FallbackWidth: 1000,
		Left:          PaneConfig{Default: 300, Min: 100},
		Preview:       PaneConfig{Default: 400, Min: 120},
		Right:         PaneConfig{Default: 200, Min: 100},
	}
}

func TestViewport_DefaultsWithoutStore(t *testing.T) {
	v := New(testEngine(), testConfig(), store.NewMemStore())
	v.SetContainerWidth(1200)

	res := v.Widths()
	if res.Left != 300 {
		t.Errorf("Left = %v, want configured default 300", res.Left)
	}
}

func TestViewport_RestoresCommittedWidth(t *testing.T) {
	widths := store.NewMemStore()
	key := store.Key{Layout: "workspace", Role: layout.Left}
	if err := widths.Set(key, 250); err != nil {
		t.Fatal(err)
	}

	v := New(testEngine(), testConfig(), widths)
	v.SetContainerWidth(1200)

	if res := v.Widths(); res.Left != 250 {
		t.Errorf("Left = %v, want restored 250", res.Left)
	}
}

func TestViewport_FallbackBeforeMeasurement(t *testing.T) {
	v := New(testEngine(), testConfig(), store.NewMemStore())

	// No measurement delivered yet: the fallback width of 1000 applies.
	// middleMin = 800 - 100 - 0 - 0 - 1 = 699, left budget = 1000 - 700 = 300.
	res := v.Widths()
	if res.Left != 300 {
		t.Errorf("Left = %v, want 300 from fallback width", res.Left)
	}
}

func TestViewport_FrameChromeSubtracted(t *testing.T) {
	cfg := testConfig()
	cfg.FrameChrome = 16
	v := New(testEngine(), cfg, store.NewMemStore())
	v.SetContainerWidth(1016)

	plain := New(testEngine(), testConfig(), store.NewMemStore())
	plain.SetContainerWidth(1000)

	if v.Widths() != plain.Widths() {
		t.Errorf("1016px with 16px chrome should solve like 1000px: %+v vs %+v", v.Widths(), plain.Widths())
	}
}

func TestViewport_NotifiesListeners(t *testing.T) {
	v := New(testEngine(), testConfig(), store.NewMemStore())

	var got []layout.Result
	v.Subscribe(func(res layout.Result) {
		got = append(got, res)
	})

	v.SetContainerWidth(1200)
	v.SetRightVisible(true)

	if len(got) != 2 {
		t.Fatalf("listener called %d times, want 2", len(got))
	}
	if got[1] != v.Widths() {
		t.Errorf("last notification %+v does not match Widths() %+v", got[1], v.Widths())
	}
}

func TestViewport_RestoreAfterShrink(t *testing.T) {
	v := New(testEngine(), testConfig(), store.NewMemStore())

	v.SetContainerWidth(1000)
	if res := v.Widths(); res.Left != 300 {
		t.Fatalf("Left = %v at 1000px, want 300", res.Left)
	}

	// Shrinking clamps the displayed width but never rewrites the
	// preference, so enlarging restores the original width.
	v.SetContainerWidth(700)
	if res := v.Widths(); res.Left != 100 {
		t.Fatalf("Left = %v at 700px, want clamped 100", res.Left)
	}
	if v.Preferred(layout.Left) != 300 {
		t.Fatalf("Preferred = %v after clamping, want untouched 300", v.Preferred(layout.Left))
	}

	v.SetContainerWidth(1000)
	if res := v.Widths(); res.Left != 300 {
		t.Errorf("Left = %v after re-enlarging, want restored 300", res.Left)
	}
}

func TestViewport_OrderIndependentInputs(t *testing.T) {
	a := New(testEngine(), testConfig(), store.NewMemStore())
	a.SetZoom(2)
	a.SetContainerWidth(2400)

	b := New(testEngine(), testConfig(), store.NewMemStore())
	b.SetContainerWidth(2400)
	b.SetZoom(2)

	if a.Widths() != b.Widths() {
		t.Errorf("input order changed the result: %+v vs %+v", a.Widths(), b.Widths())
	}
}

func TestViewport_ZoomScalesSpecs(t *testing.T) {
	v := New(testEngine(), testConfig(), store.NewMemStore())
	v.SetZoom(2)
	v.SetContainerWidth(2400)

	// 2400px at zoom 2 is 1200 layout units; the 300px default preferred
	// becomes 150 units.
	if res := v.Widths(); res.Left != 150 {
		t.Errorf("Left = %v at zoom 2, want 150", res.Left)
	}
}

func TestViewport_LivePreferredShadowsCommitted(t *testing.T) {
	v := New(testEngine(), testConfig(), store.NewMemStore())
	v.SetContainerWidth(1200)

	v.SetLivePreferred(layout.Left, 350)
	if res := v.Widths(); res.Left != 350 {
		t.Fatalf("Left = %v during drag, want live 350", res.Left)
	}
	if v.Preferred(layout.Left) != 300 {
		t.Fatalf("committed preferred changed during drag: %v", v.Preferred(layout.Left))
	}

	v.ClearLivePreferred(layout.Left)
	if res := v.Widths(); res.Left != 300 {
		t.Errorf("Left = %v after clearing drag, want committed 300", res.Left)
	}
}

func TestViewport_PreviewPresence(t *testing.T) {
	v := New(testEngine(), testConfig(), store.NewMemStore())
	v.SetContainerWidth(1600)

	if res := v.Widths(); res.Preview != 0 || res.PreviewBesideLeft {
		t.Fatalf("absent preview should contribute zero, got %+v", res)
	}

	v.SetPreviewVisible(true)
	res := v.Widths()
	if res.Preview == 0 {
		t.Error("visible preview should receive width")
	}
	if !res.PreviewBesideLeft {
		t.Error("PreviewBesideLeft should be set when the preview pane is present")
	}
}

func TestViewport_Folded(t *testing.T) {
	v := New(testEngine(), testConfig(), store.NewMemStore())
	v.SetContainerWidth(1200)
	v.SetFolded(true)

	if res := v.Widths(); res.Left != 48 {
		t.Errorf("folded Left = %v, want fixed 48", res.Left)
	}
	if !v.Folded() {
		t.Error("Folded() should report true")
	}
}

func TestViewport_ReloadPreferred(t *testing.T) {
	widths := store.NewMemStore()
	v := New(testEngine(), testConfig(), widths)
	v.SetContainerWidth(1200)

	// Another window commits a new left width.
	key := store.Key{Layout: "workspace", Role: layout.Left}
	if err := widths.Set(key, 220); err != nil {
		t.Fatal(err)
	}

	v.ReloadPreferred()
	if res := v.Widths(); res.Left != 220 {
		t.Errorf("Left = %v after reload, want 220", res.Left)
	}
}

func TestViewport_SetPaneConfig(t *testing.T) {
	v := New(testEngine(), testConfig(), store.NewMemStore())
	v.SetContainerWidth(700)

	// Raising the minimum tightens the clamp floor without touching the
	// committed preferred width.
	v.SetPaneConfig(layout.Left, PaneConfig{Default: 300, Min: 150})
	if res := v.Widths(); res.Left != 150 {
		t.Errorf("Left = %v after raising minimum, want 150", res.Left)
	}
	if v.Preferred(layout.Left) != 300 {
		t.Errorf("Preferred = %v, want untouched 300", v.Preferred(layout.Left))
	}
}

func TestViewport_VisibilityAccessors(t *testing.T) {
	v := New(testEngine(), testConfig(), store.NewMemStore())

	if v.PreviewVisible() || v.RightVisible() {
		t.Error("panes should start hidden")
	}

	v.SetPreviewVisible(true)
	v.SetRightVisible(true)
	if !v.PreviewVisible() || !v.RightVisible() {
		t.Error("visibility accessors should reflect setters")
	}
}

func TestViewport_MinWidth(t *testing.T) {
	v := New(testEngine(), testConfig(), store.NewMemStore())
	if got := v.MinWidth(layout.Left); got != 100 {
		t.Errorf("MinWidth(Left) = %v, want 100", got)
	}

	v.SetZoom(2)
	if got := v.MinWidth(layout.Left); got != unit.Length(50) {
		t.Errorf("MinWidth(Left) at zoom 2 = %v, want 50", got)
	}
}
