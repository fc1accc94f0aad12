package cpx

import "time"

// Posture is the root OpenCPX document: the aggregate compliance state of
// one organization at one point in time.
//
// A Posture is built incrementally through the fluent Add/Set methods and
// must be treated as immutable once handed to the serialization layer or an
// adapter. It carries no locking; concurrent mutation is the caller's bug.
type Posture struct {
	Version           string            `json:"version" yaml:"version" jsonschema:"required" validate:"required"`
	Timestamp         time.Time         `json:"timestamp" yaml:"timestamp" jsonschema:"required"`
	CompliancePosture CompliancePosture `json:"compliance_posture" yaml:"compliance_posture" jsonschema:"required,enum=compliant,enum=partially_compliant,enum=non_compliant,enum=unknown" validate:"required,oneof=compliant partially_compliant non_compliant unknown"`
	Organization      *Organization     `json:"organization,omitempty" yaml:"organization,omitempty"`
	Frameworks        []Framework       `json:"frameworks" yaml:"frameworks" validate:"dive"`
	EvidenceRefs      []any             `json:"evidence_refs,omitempty" yaml:"evidence_refs,omitempty"`
	Extensions        map[string]any    `json:"extensions,omitempty" yaml:"extensions,omitempty"`
}

// NewPosture creates a Posture with schema version defaults: posture
// "unknown", version "v1", timestamp now (UTC).
func NewPosture() *Posture {
	return &Posture{
		Version:           Version,
		Timestamp:         time.Now().UTC(),
		CompliancePosture: PostureUnknown,
	}
}

// AddFramework appends a framework, preserving insertion order. It returns
// the posture for chaining.
func (p *Posture) AddFramework(f Framework) *Posture {
	p.Frameworks = append(p.Frameworks, f)
	return p
}

// SetOrganization sets the organization information.
func (p *Posture) SetOrganization(org Organization) *Posture {
	p.Organization = &org
	return p
}

// SetPosture sets the stored overall compliance posture. Callers wanting
// the derived value apply CalculateOverallPosture themselves; the SDK never
// overwrites a stored posture on its own.
func (p *Posture) SetPosture(posture CompliancePosture) *Posture {
	p.CompliancePosture = posture
	return p
}

// SetTimestamp sets the document timestamp. The instant must already be
// UTC; serialization appends the "Z" marker without converting.
func (p *Posture) SetTimestamp(t time.Time) *Posture {
	p.Timestamp = t
	return p
}

// AddEvidence appends a structured evidence reference.
func (p *Posture) AddEvidence(ref EvidenceRef) *Posture {
	p.EvidenceRefs = append(p.EvidenceRefs, ref)
	return p
}

// AddEvidenceRef appends an arbitrary evidence value, for hosts carrying
// references in a shape of their own.
func (p *Posture) AddEvidenceRef(ref any) *Posture {
	p.EvidenceRefs = append(p.EvidenceRefs, ref)
	return p
}

// AddExtension adds a forward-compatible custom field.
func (p *Posture) AddExtension(key string, value any) *Posture {
	if p.Extensions == nil {
		p.Extensions = make(map[string]any)
	}
	p.Extensions[key] = value
	return p
}
