package domain

// UsageLevel describes how close an assembled prompt's estimated token
// cost is to the model ceiling. Five ordered severities.
type UsageLevel string

const (
	// UsageComfortable is under half the ceiling.
	UsageComfortable UsageLevel = "comfortable"

	// UsageModerate is between 50% and 75% of the ceiling.
	UsageModerate UsageLevel = "moderate"

	// UsageCaution is between 75% and 90% of the ceiling.
	UsageCaution UsageLevel = "caution"

	// UsageHigh is between 90% and 100% of the ceiling.
	UsageHigh UsageLevel = "high"

	// UsageOverLimit exceeds the ceiling. Assembly still succeeds;
	// the level is advisory only.
	UsageOverLimit UsageLevel = "over_limit"
)

// Token estimation constants. The estimate uses a fixed
// characters-per-token divisor, not a real tokenizer.
const (
	// CharsPerToken approximates how many runes one model token covers.
	CharsPerToken = 4

	// TokenCeiling is the model context budget the estimate is
	// compared against.
	TokenCeiling = 250_000
)

// UsageBands maps usage ratio lower bounds to severity labels.
// Shared with the quality scorer's band lookup routine.
var UsageBands = []Band[UsageLevel]{
	{Min: 0, Value: UsageComfortable},
	{Min: 0.5, Value: UsageModerate},
	{Min: 0.75, Value: UsageCaution},
	{Min: 0.9, Value: UsageHigh},
	{Min: 1.0, Value: UsageOverLimit},
}

// EstimateTokens approximates the token cost of text from its rune
// count using the fixed divisor heuristic.
func EstimateTokens(text string) int {
	runes := 0
	for range text {
		runes++
	}
	return runes / CharsPerToken
}

// ClassifyUsage maps an estimated token count to a usage level
// against the given ceiling.
func ClassifyUsage(estimated, ceiling int) UsageLevel {
	if ceiling <= 0 {
		return UsageOverLimit
	}
	return LookupBand(UsageBands, float64(estimated)/float64(ceiling))
}

// PromptDocument is the final assembled generation request:
// outline section, optional research/quality/terminology sections and
// task instructions, plus an advisory token estimate. Constructed once
// per generation request and never mutated.
type PromptDocument struct {
	// Text is the complete prompt document.
	Text string `json:"text"`

	// EstimatedTokens is the divisor-heuristic token estimate.
	EstimatedTokens int `json:"estimated_tokens"`

	// UsageLevel is the severity of EstimatedTokens vs the ceiling.
	UsageLevel UsageLevel `json:"usage_level"`
}
