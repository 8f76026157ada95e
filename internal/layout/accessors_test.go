package layout

import "testing"

func TestGlobalPosition(t *testing.T) {
	root := newRoot(200, 100).Position(OffsetPixels(5), OffsetPixels(5)).
		Padding(OffsetPixels(10)).Layout(Column)
	a := fixedChild(root, 2, 50, 20)
	b := fixedChild(root, 3, 50, 20).Padding(OffsetPixels(2))
	leaf := fixedChild(b, 4, 5, 5).Position(OffsetPixels(1), OffsetPixels(1))
	Compute(root)

	type tc struct {
		node     *Node
		expected Vec2
	}

	tests := map[string]tc{
		"root":       {node: root, expected: Vec2{X: 5, Y: 5}},
		"first":      {node: a, expected: Vec2{X: 15, Y: 15}},
		"second":     {node: b, expected: Vec2{X: 15, Y: 35}},
		"grandchild": {node: leaf, expected: Vec2{X: 18, Y: 38}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.node.GlobalPosition(); got != tt.expected {
				t.Errorf("GlobalPosition() = %+v, want %+v", got, tt.expected)
			}
		})
	}

	if got, want := b.Rect(), NewRect(15, 35, 50, 20); got != want {
		t.Errorf("Rect() = %+v, want %+v", got, want)
	}
	if got, want := b.InnerRect(), NewRect(17, 37, 46, 16); got != want {
		t.Errorf("InnerRect() = %+v, want %+v", got, want)
	}
}

func TestSnapshot(t *testing.T) {
	root := newRoot(200, 100).Padding(OffsetPixels(10)).Layout(Row).Scrollbars(false, true)
	fixedChild(root, 2, 150, 20)
	fixedChild(root, 3, 150, 20)
	Compute(root)

	got := root.Snapshot()
	want := Layout{
		Scale:               Vec2{X: 200, Y: 100},
		MaxScale:            root.MaxScale(),
		Paddings:            SpacingAll(10),
		Position:            Vec2{},
		ContentRect:         NewRect(0, 0, 300, 20),
		HorizontalScrollbar: true,
	}
	if got != want {
		t.Errorf("Snapshot() = %+v, want %+v", got, want)
	}
}

func TestClipRect(t *testing.T) {
	type tc struct {
		clip     Clip
		ok       bool
		expected Rect
	}

	tests := map[string]tc{
		"none":  {clip: ClipNone},
		"inner": {clip: ClipInner, ok: true, expected: NewRect(4, 4, 92, 42)},
		"outer": {clip: ClipOuter, ok: true, expected: NewRect(0, 0, 100, 50)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			n := newRoot(100, 50).Padding(OffsetPixels(4)).Clip(tt.clip)
			Compute(n)

			got, ok := n.ClipRect()
			if ok != tt.ok || got != tt.expected {
				t.Errorf("ClipRect() = %+v, %v, want %+v, %v", got, ok, tt.expected, tt.ok)
			}
			if s, ok := ParseClip(name); !ok || s != tt.clip || s.String() != name {
				t.Errorf("ParseClip(%q) = %v, %v", name, s, ok)
			}
		})
	}
}

func TestVisibleRect(t *testing.T) {
	root := newRoot(100, 100).Padding(OffsetPixels(10)).Clip(ClipInner)
	inside := fixedChild(root, 2, 20, 20).Position(OffsetPixels(10), OffsetPixels(10))
	partial := fixedChild(root, 3, 50, 20).Position(OffsetPixels(60), OffsetPixels(0))
	outside := fixedChild(root, 4, 20, 20).Position(OffsetPixels(200), OffsetPixels(0))
	Compute(root)

	if got, ok := inside.VisibleRect(); !ok || got != NewRect(20, 20, 20, 20) {
		t.Errorf("inside VisibleRect() = %+v, %v", got, ok)
	}
	if got, ok := partial.VisibleRect(); !ok || got != NewRect(70, 10, 20, 20) {
		t.Errorf("partial VisibleRect() = %+v, %v, want {70 10 20 20}", got, ok)
	}
	if _, ok := outside.VisibleRect(); ok {
		t.Error("outside VisibleRect() reported visible")
	}

	root.Clip(ClipNone)
	if got, ok := outside.VisibleRect(); !ok || got != NewRect(210, 10, 20, 20) {
		t.Errorf("unclipped VisibleRect() = %+v, %v", got, ok)
	}
}
