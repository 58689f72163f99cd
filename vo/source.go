package vo

// Mode selects how the document is acquired
type Mode string

const (
	// ModeFile read the document from the local filesystem
	ModeFile Mode = "file"
	// ModeURL fetch the document with a GET request
	ModeURL Mode = "url"
)

// Source describes where a document comes from
type Source struct {
	Mode     Mode
	Location string
}
