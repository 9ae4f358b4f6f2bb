package models

// ColumnTag is the semantic classification assigned to a grid column.
// Every column index receives exactly one tag.
type ColumnTag string

const (
	TagRaci           ColumnTag = "raci"
	TagName           ColumnTag = "name"
	TagCategory       ColumnTag = "category"
	TagDescription    ColumnTag = "description"
	TagMaturityNow    ColumnTag = "maturity_now"
	TagMaturityTarget ColumnTag = "maturity_target"
	TagID             ColumnTag = "id"
	TagStatus         ColumnTag = "status"
	TagPriority       ColumnTag = "priority"
	TagDelta          ColumnTag = "delta"
	TagEmpty          ColumnTag = "empty"
	TagNumericSkip    ColumnTag = "numeric_skip"
	TagUnknown        ColumnTag = "unknown"
)

// Layout identifies which extraction path produced the model.
type Layout string

const (
	LayoutStandard   Layout = "standard"
	LayoutTransposed Layout = "transposed"
)

// ColumnInfo is one row of the reported column-classification table.
type ColumnInfo struct {
	Header         string    `json:"header"`
	Classification ColumnTag `json:"classification"`
}

// Meta is the validation report merged with parse provenance. It is
// derived, read-only output; nothing in the engine consumes it.
type Meta struct {
	Filename        string `json:"filename"`
	Sheet           string `json:"sheet"`
	RoleCount       int    `json:"role_count"`
	CategoryCount   int    `json:"category_count"`
	CapabilityCount int    `json:"capability_count"`
	// OrphanedCapabilities lists "Category > Capability" strings for items
	// with no role assigned R.
	OrphanedCapabilities []string `json:"orphaned_capabilities"`
	// ZeroRRoles lists role labels that never receive an R anywhere.
	ZeroRRoles    []string `json:"zero_r_roles"`
	HasMaturity   bool     `json:"has_maturity"`
	MaturityScale int      `json:"maturity_scale,omitempty"`
	// ColumnClassifications keeps only caller-relevant tags; bookkeeping
	// tags (empty, delta, priority, id, numeric_skip, unknown) are omitted.
	ColumnClassifications map[int]ColumnInfo `json:"column_classifications"`
	Layout                Layout             `json:"layout"`
}
