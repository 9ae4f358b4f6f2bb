// Package output renders a parsed model as JSON, a self-contained HTML
// dashboard, or a BI starter kit of CSV tables and scripts.
package output

import (
	"encoding/json"

	"raciboard/pkg/raci/models"
)

// ToJSON serializes a model, optionally indented.
func ToJSON(m *models.Model, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(m, "", "  ")
	}
	return json.Marshal(m)
}
