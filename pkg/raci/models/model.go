package models

// RoleStatus marks whether a role column maps to a filled position.
type RoleStatus string

const (
	// RoleFilled is the default status for a detected role.
	RoleFilled RoleStatus = "filled"
	// RoleUnfilled marks roles whose header hints at an open position
	// (e.g. "TBD", "vacant", "new hire").
	RoleUnfilled RoleStatus = "unfilled"
)

// Role is one RACI-bearing column (standard layout) or row (transposed).
type Role struct {
	// ID is a snake_case identifier derived from the label, unique per parse.
	ID string `json:"id"`
	// Label is the display name, preferring sub-header full names.
	Label string `json:"label"`
	// Short is the abbreviation shown in tight layouts.
	Short string `json:"short"`
	// Color is assigned from the role palette by detection order.
	Color  string     `json:"color"`
	Status RoleStatus `json:"status"`
}

// CapabilityItem is a single capability row with its responsibility
// assignments and optional maturity pair.
type CapabilityItem struct {
	Name string `json:"name"`
	Desc string `json:"desc,omitempty"`
	// Now and Tgt are maturity scores normalized into [0,5]; nil when the
	// source cell is absent or unparseable.
	Now *int `json:"now,omitempty"`
	Tgt *int `json:"tgt,omitempty"`
	// Assignments maps role ID to one of R, A, C, I.
	Assignments map[string]string `json:"assignments,omitempty"`
}

// Category groups capability items under a named section of the sheet.
type Category struct {
	Name  string           `json:"name"`
	Color string           `json:"color"`
	Items []CapabilityItem `json:"items"`
}

// Model is the canonical parse result: roles, grouped capabilities, and
// the validation metadata.
type Model struct {
	Roles      []Role     `json:"roles"`
	Categories []Category `json:"categories"`
	Meta       Meta       `json:"meta"`
}

// FindItem returns the item with the given capability name inside the
// named category, or nil if either is absent.
func (m *Model) FindItem(category, capability string) *CapabilityItem {
	for ci := range m.Categories {
		if m.Categories[ci].Name != category {
			continue
		}
		items := m.Categories[ci].Items
		for ii := range items {
			if items[ii].Name == capability {
				return &items[ii]
			}
		}
	}
	return nil
}
