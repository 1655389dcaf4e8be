package skemalab

// UnknownPolicy controls how unknown object keys are handled.
type UnknownPolicy int

const (
	UnknownStrip       UnknownPolicy = iota // Drop unknown keys (default).
	UnknownStrict                           // Reject unknown keys with an error.
	UnknownPassthrough                      // Preserve unknown keys under a target field.
)

// NumberMode dictates how numbers are interpreted by the decoder.
type NumberMode int

const (
	NumberJSONNumber NumberMode = iota // Preserve json.Number text.
	NumberFloat64                      // Round to float64 while decoding.
)

// Severity expresses the severity level for enforcement findings.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

// Strictness configures duplicate-key enforcement.
type Strictness struct {
	OnDuplicateKey Severity
}

// ParseOpt bundles parsing options.
type ParseOpt struct {
	Strictness Strictness
	MaxDepth   int
	MaxBytes   int64
	FailFast   bool
	// OnWarning receives findings reported at Warn severity. Parsing goes on.
	OnWarning  func(Issue)
}
