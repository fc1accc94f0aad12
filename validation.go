package cpx

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is a package-level singleton; constructing a validator per call
// is expensive and the instance is safe for concurrent use.
var validate = validator.New()

// checkVocabulary verifies every status token in the posture graph against
// its closed vocabulary. Entities built through the checked constructors
// pass by construction; this catches postures decoded from files or
// assembled as struct literals.
func (p *Posture) checkVocabulary() error {
	if !p.CompliancePosture.IsValid() {
		return NewInvalidEnumValueError("compliance_posture", string(p.CompliancePosture), compliancePostureValues)
	}
	for _, f := range p.Frameworks {
		if !f.Status.IsValid() {
			return NewInvalidEnumValueError("framework_status", string(f.Status), frameworkStatusValues)
		}
		for _, c := range f.Controls {
			if !c.Status.IsValid() {
				return NewInvalidEnumValueError("control_status", string(c.Status), controlStatusValues)
			}
		}
	}
	return nil
}

// Validate checks the whole posture graph: status vocabularies first, then
// the structural rules declared on the entity validate tags (required
// names, ids, evidence URLs). Score is deliberately unchecked beyond
// presence; the schema declares no range for it and no relationship to
// status.
func (p *Posture) Validate() error {
	if err := p.checkVocabulary(); err != nil {
		return err
	}
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("posture validation failed: %w", err)
	}
	// EvidenceRefs is []any, so the validator will not descend into it on
	// its own; structured references are checked explicitly.
	for i := range p.EvidenceRefs {
		if ref, ok := p.EvidenceRefs[i].(EvidenceRef); ok {
			if err := validate.Struct(ref); err != nil {
				return fmt.Errorf("evidence_refs[%d] validation failed: %w", i, err)
			}
		}
	}
	return nil
}
