//nolint:revive // types is a standard Go package name pattern
package types

// ConstraintResult records the outcome of validating or repairing one
// generated string against its character bounds.
type ConstraintResult struct {
	Original string `json:"original"`
	Final    string `json:"final"`
	Length   int    `json:"length"`
	Valid    bool   `json:"valid"`
	Repaired bool   `json:"repaired"`
	// BestEffort is set when expansion could not reach the minimum bound and
	// the result is the longest achievable in-bounds variant.
	BestEffort bool `json:"best_effort,omitempty"`
}

// ConstraintReport aggregates per-string results for a generation payload.
// Result ordering matches the input ordering of the validated strings.
type ConstraintReport struct {
	Headlines    []ConstraintResult `json:"headlines"`
	Descriptions []ConstraintResult `json:"descriptions"`
}

// FailedHeadlines returns the headline results that required repair or missed bounds
func (r *ConstraintReport) FailedHeadlines() []ConstraintResult {
	var failed []ConstraintResult
	for _, res := range r.Headlines {
		if !res.Valid {
			failed = append(failed, res)
		}
	}
	return failed
}

// AllValid reports whether every string passed validation without repair
func (r *ConstraintReport) AllValid() bool {
	for _, res := range r.Headlines {
		if !res.Valid {
			return false
		}
	}
	for _, res := range r.Descriptions {
		if !res.Valid {
			return false
		}
	}
	return true
}
