// Package postureio loads OpenCPX posture definitions from YAML or JSON
// files, for services that keep a static posture alongside their config
// instead of assembling one per request.
package postureio

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	cpx "github.com/LowerPlane/OpenCPX"
)

// Format selects the encoding of a posture definition.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Decode reads a posture definition into a validated Posture. Missing
// version, posture and timestamp fields take the schema defaults ("v1",
// "unknown", now UTC); anything structurally invalid or outside an enum
// vocabulary is rejected.
func Decode(data []byte, format Format) (*cpx.Posture, error) {
	var p cpx.Posture

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("decode yaml posture: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("decode json posture: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported posture format %q", format)
	}

	if p.Version == "" {
		p.Version = cpx.Version
	}
	if p.CompliancePosture == "" {
		p.CompliancePosture = cpx.PostureUnknown
	}
	if p.Timestamp.IsZero() {
		p.Timestamp = time.Now().UTC()
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Load reads a posture definition file, choosing the format from the file
// extension (.yaml/.yml or .json).
func Load(path string) (*cpx.Posture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read posture file: %w", err)
	}

	format, err := formatForPath(path)
	if err != nil {
		return nil, err
	}
	return Decode(data, format)
}

// Provider returns a cpx.Provider that re-reads the file on every call, so
// edits to the posture file show up without a restart.
func Provider(path string) cpx.Provider {
	return func() (*cpx.Posture, error) {
		return Load(path)
	}
}

func formatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("cannot infer posture format from %q (want .yaml, .yml or .json)", filepath.Base(path))
	}
}
