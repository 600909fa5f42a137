package figma

// CollectFrames walks every page of a document in depth-first
// pre-order and returns a summary for each frame-like node, tagged
// with the name of the page it sits under. Matching nodes are not
// pruned: frames nest, and nested frames are wanted too.
func CollectFrames(document *Node) []FrameSummary {
	frames := make([]FrameSummary, 0)
	if document == nil {
		return frames
	}
	for i := range document.Children {
		page := &document.Children[i]
		for j := range page.Children {
			collectFrames(&page.Children[j], page.Name, &frames)
		}
	}
	return frames
}

func collectFrames(n *Node, page string, out *[]FrameSummary) {
	if n == nil {
		return
	}
	switch n.Type {
	case TypeFrame, TypeComponent, TypeInstance, TypeGroup:
		*out = append(*out, FrameSummary{ID: n.ID, Name: n.Name, Type: n.Type, Page: page})
	}
	for i := range n.Children {
		collectFrames(&n.Children[i], page, out)
	}
}

// FindFirstFrame returns the first visible FRAME in depth-first
// pre-order across the document's pages, or nil when no page contains
// one. The search short-circuits on the first match.
func FindFirstFrame(document *Node) *Node {
	if document == nil {
		return nil
	}
	for i := range document.Children {
		if frame := findFrame(&document.Children[i]); frame != nil {
			return frame
		}
	}
	return nil
}

func findFrame(n *Node) *Node {
	if n == nil {
		return nil
	}
	if n.Type == TypeFrame && n.IsVisible() {
		return n
	}
	for i := range n.Children {
		if frame := findFrame(&n.Children[i]); frame != nil {
			return frame
		}
	}
	return nil
}
