package cpx

// Organization identifies the organization the posture describes.
type Organization struct {
	Name    string `json:"name" yaml:"name" jsonschema:"required" validate:"required"`
	Domain  string `json:"domain,omitempty" yaml:"domain,omitempty"`
	Contact string `json:"contact,omitempty" yaml:"contact,omitempty"`
}

// Document converts the organization to its canonical document form.
func (o Organization) Document() map[string]any {
	doc := map[string]any{"name": o.Name}
	if o.Domain != "" {
		doc["domain"] = o.Domain
	}
	if o.Contact != "" {
		doc["contact"] = o.Contact
	}
	return doc
}
