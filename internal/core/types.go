package core

// DataType names the coercion applied to a mapped column.
type DataType string

const (
	TypeString DataType = "string"
	TypeNumber DataType = "number"
	TypeBool   DataType = "bool"
)

// Known reports whether t is one of the recognised coercions.
func (t DataType) Known() bool {
	switch t {
	case TypeString, TypeNumber, TypeBool:
		return true
	}
	return false
}

// MappingRule maps one CSV column to one output field.
type MappingRule struct {
	CSVColumn int      `json:"csvColumn" yaml:"csvColumn"` // Zero-based index into the split row
	KeyName   string   `json:"keyName" yaml:"keyName"`     // Output field name
	DataType  DataType `json:"dataType" yaml:"dataType"`   // Validated lazily while mapping rows
}

// MappingConfig is the ordered rule list read from the mapping file.
// It is loaded once and only read afterwards.
type MappingConfig []MappingRule

// Row is one CSV line split on commas.
type Row []string

// Field returns the raw value at column i and whether it exists.
func (r Row) Field(i int) (string, bool) {
	if i < 0 || i >= len(r) {
		return "", false
	}
	return r[i], true
}

// Record is the JSON object built from one row.
// Values are string, int64 or bool.
type Record map[string]any

// RunResult summarises a completed run.
type RunResult struct {
	Rows      int // Rows mapped and dispatched
	Succeeded int // Requests answered with 2xx
	Failed    int // Requests that errored or got a non-2xx status
	InFlight  int // Requests still outstanding when the run returned
}
