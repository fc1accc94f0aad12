package cpx

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// EncodeYAML renders the canonical document as YAML. This is a library-side
// encoding for tooling and review; the HTTP adapters serve JSON only.
func (p *Posture) EncodeYAML() ([]byte, error) {
	data, err := yaml.Marshal(p.Document())
	if err != nil {
		return nil, fmt.Errorf("encode posture as yaml: %w", err)
	}
	return data, nil
}
