package compile

// ScopeMode selects how a nested heading's scope name is resolved against
// the heading stack.
type ScopeMode string

const (
	// ScopeFlat emits only the innermost heading's normalized name.
	ScopeFlat ScopeMode = "flat"
	// ScopeConcat joins every stack entry's name with "_", bottom to top.
	ScopeConcat ScopeMode = "concat"
	// ScopeStacked resolves names exactly as ScopeConcat does.
	ScopeStacked ScopeMode = "stacked"
)

// Config is the resolved configuration record the core pipeline consumes.
// Zero-value fields are not meaningful on their own; construct one via
// DefaultConfig and override individual fields, mirroring how a caller would
// load a partial YAML document over a set of defaults.
type Config struct {
	Compression      int               `yaml:"compression"`
	ScopeMode        ScopeMode         `yaml:"scope_mode"`
	KeepURLs         bool              `yaml:"keep_urls"`
	SentenceSplit    bool              `yaml:"sentence_split"`
	AnchorEvery      int               `yaml:"anchor_every"`
	MaxKVPerLine     int               `yaml:"max_kv_per_line"`
	PrefixExtraction bool              `yaml:"prefix_extraction"`
	MinPrefixLen     int               `yaml:"min_prefix_len"`
	MinPrefixPct     float64           `yaml:"min_prefix_pct"`
	BoolCompress     bool              `yaml:"bool_compress"`
	Stopwords        []string          `yaml:"stopwords"`
	ProtectWords     []string          `yaml:"protect_words"`
	PhraseMap        map[string]string `yaml:"phrase_map"`
	Units            map[string]string `yaml:"units"`
}

// DefaultConfig returns the configuration record spec §6.2 describes:
// compression 2, flat scope mode, and the documented default word lists.
func DefaultConfig() Config {
	return Config{
		Compression:      2,
		ScopeMode:        ScopeFlat,
		KeepURLs:         false,
		SentenceSplit:    false,
		AnchorEvery:      0,
		MaxKVPerLine:     4,
		PrefixExtraction: true,
		MinPrefixLen:     6,
		MinPrefixPct:     0.6,
		BoolCompress:     true,
		Stopwords:        append([]string(nil), defaultStopwords...),
		ProtectWords:     append([]string(nil), defaultProtectWords...),
		PhraseMap:        cloneStringMap(defaultPhraseMap),
		Units:            cloneStringMap(defaultUnits),
	}
}

func cloneStringMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
