package figma

import (
	"reflect"
	"testing"
)

func boolPtr(b bool) *bool { return &b }

func TestCollectFramesTraversalOrder(t *testing.T) {
	document := &Node{
		ID:   "0:0",
		Name: "Document",
		Children: []Node{
			{
				ID:   "0:1",
				Name: "Page 1",
				Type: "CANVAS",
				Children: []Node{
					{
						ID:   "1:1",
						Name: "Hero",
						Type: TypeFrame,
						Children: []Node{
							{ID: "1:2", Name: "Hero/CTA", Type: TypeFrame},
							{ID: "1:3", Name: "copy", Type: "TEXT"},
						},
					},
				},
			},
			{
				ID:   "0:2",
				Name: "Page 2",
				Type: "CANVAS",
				Children: []Node{
					{
						ID:   "2:1",
						Name: "Cards",
						Type: TypeGroup,
						Children: []Node{
							{ID: "2:2", Name: "Card", Type: TypeComponent},
							{ID: "2:3", Name: "Card Instance", Type: TypeInstance},
						},
					},
				},
			},
		},
	}

	got := CollectFrames(document)
	want := []FrameSummary{
		{ID: "1:1", Name: "Hero", Type: TypeFrame, Page: "Page 1"},
		{ID: "1:2", Name: "Hero/CTA", Type: TypeFrame, Page: "Page 1"},
		{ID: "2:1", Name: "Cards", Type: TypeGroup, Page: "Page 2"},
		{ID: "2:2", Name: "Card", Type: TypeComponent, Page: "Page 2"},
		{ID: "2:3", Name: "Card Instance", Type: TypeInstance, Page: "Page 2"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected frames:\n got %#v\nwant %#v", got, want)
	}
}

func TestCollectFramesToleratesLeaves(t *testing.T) {
	if got := CollectFrames(nil); len(got) != 0 {
		t.Fatalf("expected no frames for nil document, got %d", len(got))
	}
	if got := CollectFrames(&Node{ID: "0:0"}); len(got) != 0 {
		t.Fatalf("expected no frames for childless document, got %d", len(got))
	}
	// a page with no children is a leaf, not an error
	document := &Node{Children: []Node{{ID: "0:1", Name: "Empty Page", Type: "CANVAS"}}}
	if got := CollectFrames(document); len(got) != 0 {
		t.Fatalf("expected no frames for empty page, got %d", len(got))
	}
}

func TestFindFirstFrameDepthFirst(t *testing.T) {
	document := &Node{
		Children: []Node{
			{
				Name: "Page 1",
				Type: "CANVAS",
				Children: []Node{
					{ID: "1:1", Name: "Hidden", Type: TypeFrame, Visible: boolPtr(false)},
					{
						ID:   "1:2",
						Name: "Wrapper",
						Type: TypeGroup,
						Children: []Node{
							{ID: "1:3", Name: "Nested", Type: TypeFrame},
						},
					},
					{ID: "1:4", Name: "Sibling", Type: TypeFrame},
				},
			},
		},
	}

	frame := FindFirstFrame(document)
	if frame == nil {
		t.Fatal("expected a frame")
	}
	// the nested frame precedes the later sibling in pre-order, and the
	// invisible frame is skipped
	if frame.ID != "1:3" {
		t.Fatalf("expected frame 1:3, got %s", frame.ID)
	}
}

func TestFindFirstFrameAbsent(t *testing.T) {
	if FindFirstFrame(nil) != nil {
		t.Fatal("expected nil for nil document")
	}
	document := &Node{
		Children: []Node{
			{
				Name: "Page 1",
				Type: "CANVAS",
				Children: []Node{
					{ID: "1:1", Name: "Shape", Type: "RECTANGLE"},
					{ID: "1:2", Name: "Group", Type: TypeGroup},
				},
			},
		},
	}
	if frame := FindFirstFrame(document); frame != nil {
		t.Fatalf("expected no frame, got %s", frame.ID)
	}
}
