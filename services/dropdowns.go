package services

// DirectionalityOptions lists the accepted integration directions.
var DirectionalityOptions = []string{
	"Inbound",
	"Outbound",
	"Bi-Directional",
}

// HoursSplitOptions lists which sections a tasklist request can generate.
var HoursSplitOptions = []string{
	SplitAssessment,
	SplitDevelopment,
	SplitBoth,
}

// AnyOf converts options for validation.In.
func AnyOf(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
