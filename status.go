package cpx

// CompliancePosture is the overall compliance status of a posture document.
type CompliancePosture string

const (
	PostureCompliant          CompliancePosture = "compliant"
	PosturePartiallyCompliant CompliancePosture = "partially_compliant"
	PostureNonCompliant       CompliancePosture = "non_compliant"
	PostureUnknown            CompliancePosture = "unknown"
)

// compliancePostureValues lists the closed vocabulary in declaration order.
var compliancePostureValues = []string{
	string(PostureCompliant),
	string(PosturePartiallyCompliant),
	string(PostureNonCompliant),
	string(PostureUnknown),
}

// IsValid reports whether the value is one of the declared tokens.
func (p CompliancePosture) IsValid() bool {
	switch p {
	case PostureCompliant, PosturePartiallyCompliant, PostureNonCompliant, PostureUnknown:
		return true
	}
	return false
}

// ParseCompliancePosture converts a string token to a CompliancePosture,
// rejecting anything outside the vocabulary.
func ParseCompliancePosture(s string) (CompliancePosture, error) {
	p := CompliancePosture(s)
	if !p.IsValid() {
		return "", NewInvalidEnumValueError("compliance_posture", s, compliancePostureValues)
	}
	return p, nil
}

// FrameworkStatus is the compliance state of a single framework.
type FrameworkStatus string

const (
	StatusCompliant    FrameworkStatus = "compliant"
	StatusPartial      FrameworkStatus = "partial"
	StatusNonCompliant FrameworkStatus = "non_compliant"
)

var frameworkStatusValues = []string{
	string(StatusCompliant),
	string(StatusPartial),
	string(StatusNonCompliant),
}

// IsValid reports whether the value is one of the declared tokens.
func (s FrameworkStatus) IsValid() bool {
	switch s {
	case StatusCompliant, StatusPartial, StatusNonCompliant:
		return true
	}
	return false
}

// ParseFrameworkStatus converts a string token to a FrameworkStatus,
// rejecting anything outside the vocabulary.
func ParseFrameworkStatus(s string) (FrameworkStatus, error) {
	fs := FrameworkStatus(s)
	if !fs.IsValid() {
		return "", NewInvalidEnumValueError("framework_status", s, frameworkStatusValues)
	}
	return fs, nil
}

// ControlStatus is the compliance state of a single control.
type ControlStatus string

const (
	ControlCompliant    ControlStatus = "compliant"
	ControlPartial      ControlStatus = "partial"
	ControlNonCompliant ControlStatus = "non_compliant"
)

var controlStatusValues = []string{
	string(ControlCompliant),
	string(ControlPartial),
	string(ControlNonCompliant),
}

// IsValid reports whether the value is one of the declared tokens.
func (s ControlStatus) IsValid() bool {
	switch s {
	case ControlCompliant, ControlPartial, ControlNonCompliant:
		return true
	}
	return false
}

// ParseControlStatus converts a string token to a ControlStatus, rejecting
// anything outside the vocabulary.
func ParseControlStatus(s string) (ControlStatus, error) {
	cs := ControlStatus(s)
	if !cs.IsValid() {
		return "", NewInvalidEnumValueError("control_status", s, controlStatusValues)
	}
	return cs, nil
}
