package datagraph

// Severity expresses how an enforcement finding is treated.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

// Strictness configures duplicate key handling.
type Strictness struct {
	OnDuplicateKey Severity // Ignore, Warn (collect) or Error (fail).
}

// ParseOpt bundles the limits applied while parsing JSON input.
type ParseOpt struct {
	Strictness Strictness
	MaxDepth   int   // 0 disables the check.
	MaxBytes   int64 // 0 disables the check.
	FailFast   bool  // Stop at the first finding, even warnings.
}

// DefaultParseOpt returns the options used by readers unless configured
// otherwise: duplicates are errors, no depth or size limits.
func DefaultParseOpt() ParseOpt {
	return ParseOpt{Strictness: Strictness{OnDuplicateKey: Error}}
}
