package constraints

import "github.com/maya/adcopy-agent/internal/types"

// RepairHeadline validates one headline and repairs it if out of bounds.
// In-bounds input is returned unchanged (the repair is idempotent). The
// function is pure: no I/O, no external calls.
func RepairHeadline(text string) types.ConstraintResult {
	result := types.ConstraintResult{Original: text}

	switch {
	case len(text) >= HeadlineMin && len(text) <= HeadlineMax:
		result.Valid = true
		result.Final = text
	case len(text) < HeadlineMin:
		expanded, reachedMin := expandHeadline(text)
		result.Final = expanded
		result.Repaired = true
		result.BestEffort = !reachedMin
	default:
		result.Final = shortenHeadline(text)
		result.Repaired = true
	}

	result.Length = len(result.Final)
	return result
}

// RepairDescription validates one description and repairs it if out of bounds.
// Same contract as RepairHeadline with the description bounds.
func RepairDescription(text string) types.ConstraintResult {
	result := types.ConstraintResult{Original: text}

	switch {
	case len(text) >= DescriptionMin && len(text) <= DescriptionMax:
		result.Valid = true
		result.Final = text
	case len(text) < DescriptionMin:
		expanded, reachedMin := expandDescription(text)
		result.Final = expanded
		result.Repaired = true
		result.BestEffort = !reachedMin
	default:
		result.Final = shortenDescription(text)
		result.Repaired = true
	}

	result.Length = len(result.Final)
	return result
}

// ValidateAndRepair runs per-string repair over a generation payload.
// Each string's repair is independent; output ordering matches input ordering.
func ValidateAndRepair(copy *types.AdCopy) *types.ConstraintReport {
	report := &types.ConstraintReport{
		Headlines:    make([]types.ConstraintResult, len(copy.Headlines)),
		Descriptions: make([]types.ConstraintResult, len(copy.Descriptions)),
	}
	for i, h := range copy.Headlines {
		report.Headlines[i] = RepairHeadline(h)
	}
	for i, d := range copy.Descriptions {
		report.Descriptions[i] = RepairDescription(d)
	}
	return report
}

// Validate checks bounds without repairing, for the pre-correction pass
func Validate(copy *types.AdCopy) *types.ConstraintReport {
	report := &types.ConstraintReport{
		Headlines:    make([]types.ConstraintResult, len(copy.Headlines)),
		Descriptions: make([]types.ConstraintResult, len(copy.Descriptions)),
	}
	for i, h := range copy.Headlines {
		report.Headlines[i] = types.ConstraintResult{
			Original: h,
			Final:    h,
			Length:   len(h),
			Valid:    len(h) >= HeadlineMin && len(h) <= HeadlineMax,
		}
	}
	for i, d := range copy.Descriptions {
		report.Descriptions[i] = types.ConstraintResult{
			Original: d,
			Final:    d,
			Length:   len(d),
			Valid:    len(d) >= DescriptionMin && len(d) <= DescriptionMax,
		}
	}
	return report
}
