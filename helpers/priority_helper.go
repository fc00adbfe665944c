package helpers

// ResolveTotal picks exactly one total for a form from the three
// candidate sources, in priority order: the comprehensive total when
// non-zero, else the sum generated from the form's category fields,
// else the legacy aggregate kept for returns filed before the
// comprehensive forms existed. Sources are never combined.
//
// Every reductions/credits/deductions total in the engine goes through
// this one function so the fallback order cannot drift per category.
func ResolveTotal(comprehensive, generated, legacy float64) float64 {
	if comprehensive != 0 {
		return comprehensive
	}
	if generated != 0 {
		return generated
	}
	return legacy
}
