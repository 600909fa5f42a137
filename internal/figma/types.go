package figma

// Node types that qualify as gallery frames. Anything else is carried
// through untouched so traversal keeps descending past it.
const (
	TypeFrame     = "FRAME"
	TypeComponent = "COMPONENT"
	TypeInstance  = "INSTANCE"
	TypeGroup     = "GROUP"
)

// Node is one element of a file's document tree. Visible is a pointer
// because the API omits the field when the node is visible.
type Node struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Visible  *bool  `json:"visible,omitempty"`
	Children []Node `json:"children,omitempty"`
}

// IsVisible reports whether the node should be considered for preview
// rendering.
func (n *Node) IsVisible() bool {
	return n == nil || n.Visible == nil || *n.Visible
}

// FrameSummary is the projection of a frame-like node handed to the
// gallery UI.
type FrameSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
	Page string `json:"page,omitempty"`
}

// Project is one entry of a team's project listing.
type Project struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// File is a file's metadata as returned by the project listing, passed
// through unmodified apart from sorting.
type File struct {
	Key                string `json:"key"`
	Name               string `json:"name"`
	Description        string `json:"description,omitempty"`
	UpdatedAt          string `json:"updated_at"`
	CreatedAt          string `json:"created_at"`
	ThumbnailURL       string `json:"thumbnail_url"`
	SharedPluginCount  *int   `json:"shared_plugin_count,omitempty"`
	SharedLibraryCount *int   `json:"shared_library_count,omitempty"`
	SortPosition       *int   `json:"sort_position,omitempty"`
}

// TeamFileEntry is one gallery card: identity fields from the listing
// plus best-effort preview enrichment. Either PreviewURL is set, or
// Error/Note explain why it is not.
type TeamFileEntry struct {
	ProjectID   string `json:"projectId"`
	ProjectName string `json:"projectName"`
	FileKey     string `json:"fileKey"`
	FileName    string `json:"fileName"`
	FigmaURL    string `json:"figmaUrl"`
	FrameID     string `json:"frameId,omitempty"`
	PreviewURL  string `json:"previewUrl,omitempty"`
	Error       string `json:"error,omitempty"`
	Note        string `json:"note,omitempty"`
}

// Response envelopes for the upstream endpoints this service consumes.

type ProjectsResponse struct {
	Projects []Project `json:"projects"`
}

type FilesResponse struct {
	Files []File `json:"files"`
}

type FileResponse struct {
	Document *Node `json:"document"`
}

type ImagesResponse struct {
	Images map[string]string `json:"images"`
	Err    string            `json:"err,omitempty"`
}
