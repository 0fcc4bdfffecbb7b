package plan

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/zeebo/blake3"
	"gopkg.in/yaml.v3"
)

// cborMode uses Core Deterministic Encoding (RFC 8949 section 4.2): sorted map
// keys and shortest integer forms, so equal plans encode to identical bytes.
var cborMode cbor.EncMode

func init() {
	var err error

	cborMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("plan: CBOR encoder initialization failed: " + err.Error())
	}
}

// ExportJSON encodes the plan as indented JSON. Map keys are sorted, so
// equal plans encode to identical bytes.
func ExportJSON(p *BuildPlan) ([]byte, error) {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode plan: %w", err)
	}

	return append(data, '\n'), nil
}

// ExportYAML encodes the plan as YAML.
func ExportYAML(p *BuildPlan) ([]byte, error) {
	data, err := yaml.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to encode plan: %w", err)
	}

	return data, nil
}

// ExportCBOR encodes the plan as deterministic CBOR for consumers that
// exchange plans in binary form. Field names follow the JSON export.
func ExportCBOR(p *BuildPlan) ([]byte, error) {
	data, err := cborMode.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to encode plan: %w", err)
	}

	return data, nil
}

// Fingerprint returns the hex BLAKE3-256 digest of the plan's compact JSON
// encoding. Plans resolved from equal configurations have equal fingerprints.
func (p *BuildPlan) Fingerprint() (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("failed to encode plan: %w", err)
	}

	sum := blake3.Sum256(data)

	return hex.EncodeToString(sum[:]), nil
}
