package cpx

// CalculateOverallPosture derives an overall posture from the framework
// statuses: unknown with no frameworks, compliant when every framework is
// compliant, partially_compliant when at least one (but not all) is, and
// non_compliant otherwise.
//
// The stored CompliancePosture is left untouched so a manually set posture
// survives; apply the result with SetPosture when the derived value is
// wanted.
func (p *Posture) CalculateOverallPosture() CompliancePosture {
	if len(p.Frameworks) == 0 {
		return PostureUnknown
	}

	allCompliant := true
	anyCompliant := false
	for _, f := range p.Frameworks {
		if f.Status == StatusCompliant {
			anyCompliant = true
		} else {
			allCompliant = false
		}
	}

	if allCompliant {
		return PostureCompliant
	}
	if anyCompliant {
		return PosturePartiallyCompliant
	}
	return PostureNonCompliant
}
