package compile

// Default word lists for Stage 5's c2 pass, per spec §4.5. Empty-string
// replacements in phraseMap denote deletion of the matched phrase.

var defaultStopwords = []string{
	"the", "a", "an", "and", "really", "just", "that", "is", "are", "was",
	"were", "of", "in", "on", "at", "for", "with", "by", "from", "to",
}

var defaultProtectWords = []string{
	"no", "not", "never", "must", "should", "may",
}

var defaultPhraseMap = map[string]string{
	"in order to":     "to",
	"as well as":      "¦",
	"due to":          "because",
	"is able to":      "can",
	"is used to":      "",
	"is responsible for": "handles",
	"refers to":       "=",
}

var defaultUnits = map[string]string{
	"requests per minute": "/m",
	"milliseconds":        "ms",
	"seconds":             "s",
}
