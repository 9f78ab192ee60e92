package scenario

import "strings"

// geopoliticalKeywords is the fixed vocabulary used to decide whether a
// scenario warrants dual-perspective analysis. Multi-word entries match
// as substrings of the lowercased text.
var geopoliticalKeywords = []string{
	// Nations and blocs
	"china", "russia", "usa", "america", "europe", "india", "japan",
	"nato", "brics", "g7", "g20", "asean",

	// Geopolitical concepts
	"geopolitical", "sovereignty", "sanctions", "alliance", "treaty",
	"diplomatic", "territorial", "border", "conflict", "war", "peace",
	"military", "defense", "security", "nuclear", "weapon",

	// International organizations
	"united nations", "world bank", "imf", "wto",

	// Economic-political
	"trade war", "embargo", "tariff", "globalization", "nationalism",
	"protectionism", "hegemony", "superpower", "colonialism",

	// Values and systems
	"democracy", "autocracy", "communism", "capitalism", "socialism",
	"liberty", "freedom", "rights", "justice", "equality",

	// Specific flashpoints
	"taiwan", "ukraine", "israel", "palestine", "kashmir", "tibet",
	"south china sea", "middle east", "korean peninsula",
}

// GeoSignal is the result of the geopolitical content pre-check.
type GeoSignal struct {
	Detected bool
	Score    float64  // unique keyword hits per 100 words
	Keywords []string // distinct keywords matched, in vocabulary order
}

// DetectGeopolitical scans text for the geopolitical vocabulary and
// scores keyword density per 100 words. The scenario is flagged when the
// density exceeds threshold or at least minKeywords distinct keywords
// matched, whichever triggers first.
func DetectGeopolitical(text string, threshold float64, minKeywords int) GeoSignal {
	lower := strings.ToLower(text)

	var matched []string
	for _, kw := range geopoliticalKeywords {
		if strings.Contains(lower, kw) {
			matched = append(matched, kw)
		}
	}

	totalWords := len(strings.Fields(text))
	per100 := float64(totalWords) / 100
	if per100 < 1 {
		per100 = 1
	}
	score := float64(len(matched)) / per100

	return GeoSignal{
		Detected: score > threshold || len(matched) >= minKeywords,
		Score:    score,
		Keywords: matched,
	}
}
