package intake

import "strings"

// Priority levels, as stored on tasks.
const (
	PriorityLow  = "Low"
	PriorityMed  = "Med"
	PriorityHigh = "High"
)

// Keyword sets for urgency classification. Matching is case-insensitive
// substring membership, so "urgent" also fires on "urgently".
var (
	highKeywords = []string{
		"urgent", "asap", "immediately", "critical", "emergency",
		"high priority", "important", "deadline", "today", "now",
		"crucial", "vital",
	}
	lowKeywords = []string{
		"later", "low priority", "when possible", "eventually",
		"someday", "nice to have", "optional", "whenever", "no rush",
	}
)

// ClassifyPriority maps normalized text to one of the three priority levels.
// A high-urgency keyword wins over any low-urgency keyword present in the
// same text; text matching neither set is Med. The function is total: every
// non-empty string classifies.
func ClassifyPriority(text string) string {
	lower := strings.ToLower(text)

	for _, k := range highKeywords {
		if strings.Contains(lower, k) {
			return PriorityHigh
		}
	}
	for _, k := range lowKeywords {
		if strings.Contains(lower, k) {
			return PriorityLow
		}
	}
	return PriorityMed
}
