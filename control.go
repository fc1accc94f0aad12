package cpx

// Control is a single checkable requirement within a framework.
// EvidenceRefs holds free-text reference identifiers; they are not resolved
// against any evidence registry.
type Control struct {
	ID              string        `json:"id" yaml:"id" jsonschema:"required" validate:"required"`
	Status          ControlStatus `json:"status" yaml:"status" jsonschema:"required,enum=compliant,enum=partial,enum=non_compliant" validate:"required,oneof=compliant partial non_compliant"`
	Title           string        `json:"title,omitempty" yaml:"title,omitempty"`
	Reason          string        `json:"reason,omitempty" yaml:"reason,omitempty"`
	RemediationDate string        `json:"remediation_date,omitempty" yaml:"remediation_date,omitempty"`
	EvidenceRefs    []string      `json:"evidence_refs,omitempty" yaml:"evidence_refs,omitempty"`
}

// NewControl creates a Control with the required fields, rejecting a status
// outside the ControlStatus vocabulary.
func NewControl(id string, status ControlStatus) (Control, error) {
	if !status.IsValid() {
		return Control{}, NewInvalidEnumValueError("control_status", string(status), controlStatusValues)
	}
	return Control{ID: id, Status: status}, nil
}

// Document converts the control to its canonical document form.
func (c Control) Document() map[string]any {
	doc := map[string]any{
		"id":     c.ID,
		"status": string(c.Status),
	}
	if c.Title != "" {
		doc["title"] = c.Title
	}
	if c.Reason != "" {
		doc["reason"] = c.Reason
	}
	if c.RemediationDate != "" {
		doc["remediation_date"] = c.RemediationDate
	}
	if len(c.EvidenceRefs) > 0 {
		doc["evidence_refs"] = c.EvidenceRefs
	}
	return doc
}
