package pedagogy

import "strings"

// bloomLevels is the taxonomy ordered from lowest to highest. The
// extractor walks the list in order and reports the first level the
// text mentions.
var bloomLevels = []string{
	"пам'ять",
	"розуміння",
	"застосування",
	"аналіз",
	"синтез",
	"оцінювання",
}

// DefaultBloomLevel is reported when the text names no level.
const DefaultBloomLevel = "розуміння"

// engagementKeywords are the method names recognized in strategy text.
var engagementKeywords = []string{
	"Think-Pair-Share",
	"Jigsaw",
	"гейміфікація",
	"проблемне навчання",
}

// ExtractBloomLevel scans strategy text for Bloom level names and
// returns the first one in taxonomy order, or DefaultBloomLevel.
func ExtractBloomLevel(text string) string {
	lower := strings.ToLower(text)
	for _, l := range bloomLevels {
		if strings.Contains(lower, l) {
			return l
		}
	}
	return DefaultBloomLevel
}

// ExtractEngagementMethods returns the recognized engagement methods
// mentioned in the text, in canonical order.
func ExtractEngagementMethods(text string) []string {
	lower := strings.ToLower(text)
	var methods []string
	for _, k := range engagementKeywords {
		if strings.Contains(lower, strings.ToLower(k)) {
			methods = append(methods, k)
		}
	}
	return methods
}
