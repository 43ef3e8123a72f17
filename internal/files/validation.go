package files

import (
	"encoding/json"
	"os"

	"gopkg.in/yaml.v3"
)

// IsJsonType checks if the content is a valid JSON document.
func IsJsonType(content []byte) bool {
	return json.Valid(content)
}

// IsYamlType checks if the content is a valid YAML mapping.
func IsYamlType(content []byte) bool {
	var yamlData map[string]interface{}
	err := yaml.Unmarshal(content, &yamlData)
	return err == nil && yamlData != nil
}

// IsRegularFile reports whether path exists and is a regular file.
func IsRegularFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
