package cpx

// EvidenceRef points at external proof material supporting a claimed
// status. The URL is never dereferenced or checked for reachability.
type EvidenceRef struct {
	URL         string `json:"url" yaml:"url" jsonschema:"required" validate:"required"`
	Type        string `json:"type,omitempty" yaml:"type,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Expires     string `json:"expires,omitempty" yaml:"expires,omitempty"`
	Hash        string `json:"hash,omitempty" yaml:"hash,omitempty"`
	SizeBytes   int64  `json:"size_bytes,omitempty" yaml:"size_bytes,omitempty"`
}

// Document converts the reference to its canonical document form.
// SizeBytes is emitted only when non-zero.
func (e EvidenceRef) Document() map[string]any {
	doc := map[string]any{"url": e.URL}
	if e.Type != "" {
		doc["type"] = e.Type
	}
	if e.Description != "" {
		doc["description"] = e.Description
	}
	if e.Expires != "" {
		doc["expires"] = e.Expires
	}
	if e.Hash != "" {
		doc["hash"] = e.Hash
	}
	if e.SizeBytes != 0 {
		doc["size_bytes"] = e.SizeBytes
	}
	return doc
}
