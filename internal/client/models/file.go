package models

// FileReference points at an uploaded file.
type FileReference struct {
	URL string
}

// NewFileReference normalizes an upload response.
func NewFileReference(p *FilePayload) FileReference {
	if p == nil {
		return FileReference{}
	}
	return FileReference{URL: str(p.URL)}
}
