package cpx

import (
	"encoding/json"
	"fmt"
	"time"
)

// timestampLayout renders an ISO-8601 instant without a zone designator;
// the serializer appends the literal "Z" itself. Fractional seconds are
// emitted only when present.
const timestampLayout = "2006-01-02T15:04:05.999999"

func formatTimestamp(t time.Time) string {
	return t.Format(timestampLayout) + "Z"
}

// Document converts the posture to its canonical document form: a nested
// JSON-compatible structure with version, timestamp, compliance_posture and
// frameworks always present, and organization, evidence_refs and extensions
// only when non-empty. Evidence entries are serialized recursively when
// they are EvidenceRef values and passed through untouched otherwise.
func (p *Posture) Document() map[string]any {
	frameworks := make([]any, len(p.Frameworks))
	for i, f := range p.Frameworks {
		frameworks[i] = f.Document()
	}

	doc := map[string]any{
		"version":            p.Version,
		"timestamp":          formatTimestamp(p.Timestamp),
		"compliance_posture": string(p.CompliancePosture),
		"frameworks":         frameworks,
	}
	if p.Organization != nil {
		doc["organization"] = p.Organization.Document()
	}
	if len(p.EvidenceRefs) > 0 {
		refs := make([]any, len(p.EvidenceRefs))
		for i, r := range p.EvidenceRefs {
			switch v := r.(type) {
			case EvidenceRef:
				refs[i] = v.Document()
			case *EvidenceRef:
				refs[i] = v.Document()
			default:
				refs[i] = r
			}
		}
		doc["evidence_refs"] = refs
	}
	if len(p.Extensions) > 0 {
		doc["extensions"] = p.Extensions
	}
	return doc
}

// ToJSON renders the canonical document as compact JSON text.
func (p *Posture) ToJSON() ([]byte, error) {
	return json.Marshal(p.Document())
}

// ToJSONIndent renders the canonical document as JSON text indented with
// two spaces.
func (p *Posture) ToJSONIndent() ([]byte, error) {
	return json.MarshalIndent(p.Document(), "", "  ")
}

// ParseDocument reads a JSON posture document back into a Posture. Status
// tokens outside their vocabularies are rejected with InvalidEnumValueError;
// a document without a compliance_posture defaults to "unknown".
func ParseDocument(data []byte) (*Posture, error) {
	var p Posture
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode posture document: %w", err)
	}
	if p.CompliancePosture == "" {
		p.CompliancePosture = PostureUnknown
	}
	if err := p.checkVocabulary(); err != nil {
		return nil, err
	}
	return &p, nil
}
