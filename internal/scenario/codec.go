package scenario

import "gopkg.in/yaml.v3"

// DecodeYAML parses a scenario document from YAML text.
func DecodeYAML(data []byte) (Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Scenario{}, err
	}
	return s, nil
}

// EncodeYAML serializes a scenario back to YAML text.
func EncodeYAML(s Scenario) ([]byte, error) {
	return yaml.Marshal(s)
}
