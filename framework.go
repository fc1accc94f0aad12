package cpx

// Framework is a named compliance standard and its evaluated status.
// Score carries no enforced range and no required relationship to Status;
// both are reported as the caller supplied them.
type Framework struct {
	Name           string          `json:"name" yaml:"name" jsonschema:"required" validate:"required"`
	Status         FrameworkStatus `json:"status" yaml:"status" jsonschema:"required,enum=compliant,enum=partial,enum=non_compliant" validate:"required,oneof=compliant partial non_compliant"`
	Score          float64         `json:"score" yaml:"score" jsonschema:"required"`
	Version        string          `json:"version,omitempty" yaml:"version,omitempty"`
	LastAudit      string          `json:"last_audit,omitempty" yaml:"last_audit,omitempty"`
	Auditor        string          `json:"auditor,omitempty" yaml:"auditor,omitempty"`
	ReportRef      string          `json:"report_ref,omitempty" yaml:"report_ref,omitempty"`
	CertificateRef string          `json:"certificate_ref,omitempty" yaml:"certificate_ref,omitempty"`
	Controls       []Control       `json:"controls,omitempty" yaml:"controls,omitempty" validate:"dive"`
}

// NewFramework creates a Framework with the required fields, rejecting a
// status outside the FrameworkStatus vocabulary.
func NewFramework(name string, status FrameworkStatus, score float64) (Framework, error) {
	if !status.IsValid() {
		return Framework{}, NewInvalidEnumValueError("framework_status", string(status), frameworkStatusValues)
	}
	return Framework{Name: name, Status: status, Score: score}, nil
}

// AddControl appends a control, preserving insertion order. It returns the
// framework for chaining.
func (f *Framework) AddControl(c Control) *Framework {
	f.Controls = append(f.Controls, c)
	return f
}

// Document converts the framework to its canonical document form. Controls
// are emitted in insertion order and omitted entirely when empty.
func (f Framework) Document() map[string]any {
	doc := map[string]any{
		"name":   f.Name,
		"status": string(f.Status),
		"score":  f.Score,
	}
	if f.Version != "" {
		doc["version"] = f.Version
	}
	if f.LastAudit != "" {
		doc["last_audit"] = f.LastAudit
	}
	if f.Auditor != "" {
		doc["auditor"] = f.Auditor
	}
	if f.ReportRef != "" {
		doc["report_ref"] = f.ReportRef
	}
	if f.CertificateRef != "" {
		doc["certificate_ref"] = f.CertificateRef
	}
	if len(f.Controls) > 0 {
		controls := make([]any, len(f.Controls))
		for i, c := range f.Controls {
			controls[i] = c.Document()
		}
		doc["controls"] = controls
	}
	return doc
}
