package compile

import "strings"

type tableKind int

const (
	tableRaw tableKind = iota
	tableProperty
	tableKeyedMulti
)

var genericHeaders = map[string]bool{
	"value": true, "description": true, "details": true, "info": true,
	"notes": true, "default": true, "type": true,
}

var boolValues = map[string]string{
	"yes": "Y", "no": "N", "true": "T", "false": "F", "enabled": "Y", "disabled": "N",
}

func isGenericHeader(h string) bool {
	return genericHeaders[strings.ToLower(strings.TrimSpace(h))]
}

func isIdentifierLike(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	switch {
	case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c == '.', c == '-':
	default:
		return false
	}
	return len(strings.Fields(s)) <= 4
}

// classifyTable implements §4.4.2: a table is property (2 columns),
// keyed_multi (3+ columns), or raw, based on first-column uniqueness and
// identifier shape across data rows. Any violation demotes to raw.
func classifyTable(rows [][]string) tableKind {
	if len(rows) < 2 {
		return tableRaw
	}
	cols := len(rows[0])
	if cols < 2 {
		return tableRaw
	}
	for _, row := range rows {
		if len(row) != cols {
			return tableRaw
		}
	}
	seen := make(map[string]bool, len(rows)-1)
	for _, row := range rows[1:] {
		cell := row[0]
		if seen[cell] || !isIdentifierLike(cell) {
			return tableRaw
		}
		seen[cell] = true
	}
	if cols == 2 {
		return tableProperty
	}
	return tableKeyedMulti
}

// applyBoolCompression rewrites every non-first column whose data cells
// (case-folded) are all drawn from {yes,no,true,false,enabled,disabled} into
// single-letter Y/N/T/F form, in place.
func applyBoolCompression(rows [][]string) {
	if len(rows) == 0 {
		return
	}
	cols := len(rows[0])
	for c := 1; c < cols; c++ {
		allBool := true
		for _, row := range rows {
			if _, ok := boolValues[strings.ToLower(strings.TrimSpace(row[c]))]; !ok {
				allBool = false
				break
			}
		}
		if !allBool {
			continue
		}
		for _, row := range rows {
			row[c] = boolValues[strings.ToLower(strings.TrimSpace(row[c]))]
		}
	}
}

type kvPair struct {
	Key   string
	Value string
}

type stackEntry struct {
	level int
	name  string
}

type emitter struct {
	cfg   Config
	blocks []Block
	out   []string
	scope *string
	stack []stackEntry
	kvBuf []kvPair
}

// emit runs Stages 3+4 over the flat IR, producing pre-compression output
// lines. It owns the heading stack, the pending KV buffer, and the current
// scope cursor — all local to this single call, per §5.
func emit(nodes []Node, blocks []Block, cfg Config) []string {
	e := &emitter{cfg: cfg, blocks: blocks}
	for _, node := range nodes {
		if node.Kind != KindKV {
			e.flush()
		}
		switch node.Kind {
		case KindHeading:
			e.heading(node)
		case KindParagraph:
			e.paragraph(node)
		case KindListItem:
			e.listItem(node)
		case KindTable:
			e.table(node)
		case KindKV:
			e.kv(node)
		case KindBlockRef:
			e.blockRef(node)
		case KindBlank:
			// no-op
		}
	}
	e.flush()
	return e.out
}

func (e *emitter) flush() {
	e.out = append(e.out, flushKV(e.kvBuf, e.cfg)...)
	e.kvBuf = nil
}

func (e *emitter) ensureScope() {
	if e.scope == nil {
		root := "root"
		e.out = append(e.out, "@root")
		e.scope = &root
	}
}

func (e *emitter) emitScopeIfChanged(name string) {
	if e.scope == nil || *e.scope != name {
		e.out = append(e.out, "@"+name)
		s := name
		e.scope = &s
	}
}

func (e *emitter) heading(n Node) {
	name := normScopeName(n.Text, e.cfg.Compression)
	for len(e.stack) > 0 && e.stack[len(e.stack)-1].level >= n.Level {
		e.stack = e.stack[:len(e.stack)-1]
	}
	e.stack = append(e.stack, stackEntry{level: n.Level, name: name})

	resolved := name
	if e.cfg.ScopeMode == ScopeConcat || e.cfg.ScopeMode == ScopeStacked {
		names := make([]string, len(e.stack))
		for i, s := range e.stack {
			names[i] = s.name
		}
		resolved = strings.Join(names, "_")
	}
	e.emitScopeIfChanged(resolved)
}

func (e *emitter) paragraph(n Node) {
	e.ensureScope()
	text := renderInline(n.Text, e.cfg.Compression, e.cfg.KeepURLs)

	sentences := []string{strings.TrimSpace(text)}
	if e.cfg.Compression >= 2 && e.cfg.SentenceSplit {
		sentences = splitSentences(text)
	}
	for _, s := range sentences {
		if s != "" {
			e.out = append(e.out, s)
		}
	}
}

func (e *emitter) listItem(n Node) {
	e.ensureScope()
	text := renderInline(n.Text, e.cfg.Compression, e.cfg.KeepURLs)
	prefix := "-" + strings.Repeat(".", n.Depth)
	if n.Depth > 0 {
		e.out = append(e.out, prefix+" "+text)
	} else {
		e.out = append(e.out, prefix+text)
	}
}

func (e *emitter) kv(n Node) {
	e.ensureScope()
	key := normKey(n.Key)
	if key == "" {
		e.out = append(e.out, renderInline(n.Key+": "+n.Value, e.cfg.Compression, e.cfg.KeepURLs))
		return
	}
	e.kvBuf = append(e.kvBuf, kvPair{
		Key:   key,
		Value: renderInline(n.Value, e.cfg.Compression, e.cfg.KeepURLs),
	})
}

func (e *emitter) blockRef(n Node) {
	e.ensureScope()
	lang := "code"
	var payload string
	if n.BlockIndex >= 0 && n.BlockIndex < len(e.blocks) {
		b := e.blocks[n.BlockIndex]
		if b.Lang != "" {
			lang = b.Lang
		}
		payload = b.Payload
	}
	e.out = append(e.out, "::"+lang, "<<<")
	if payload != "" {
		e.out = append(e.out, strings.Split(payload, "\n")...)
	}
	e.out = append(e.out, ">>>")
}

func (e *emitter) table(n Node) {
	e.ensureScope()
	kind := classifyTable(n.Rows)
	header := n.Rows[0]
	data := n.Rows[1:]

	renderedHeader := make([]string, len(header))
	for i, h := range header {
		renderedHeader[i] = renderInline(h, e.cfg.Compression, e.cfg.KeepURLs)
	}
	renderedRows := make([][]string, len(data))
	for i, row := range data {
		rr := make([]string, len(row))
		for j, c := range row {
			rr[j] = renderInline(c, e.cfg.Compression, e.cfg.KeepURLs)
		}
		renderedRows[i] = rr
	}
	if e.cfg.Compression >= 2 && e.cfg.BoolCompress {
		applyBoolCompression(renderedRows)
	}

	switch kind {
	case tableProperty:
		if !isGenericHeader(renderedHeader[1]) {
			if col := normKey(renderedHeader[1]); col != "" {
				e.out = append(e.out, ":_col="+col)
			}
		}
		for i, row := range renderedRows {
			key := normKey(data[i][0])
			if key == "" {
				e.out = append(e.out, row[0]+"¦"+row[1])
				continue
			}
			e.kvBuf = append(e.kvBuf, kvPair{Key: key, Value: row[1]})
		}

	case tableKeyedMulti:
		cols := make([]string, len(renderedHeader))
		for i, h := range renderedHeader {
			cols[i] = normKey(h)
		}
		e.out = append(e.out, ":_cols="+strings.Join(cols, "¦"))
		for i, row := range renderedRows {
			key := normKey(data[i][0])
			if key == "" {
				e.out = append(e.out, strings.Join(row, "¦"))
				continue
			}
			e.kvBuf = append(e.kvBuf, kvPair{Key: key, Value: strings.Join(row[1:], "¦")})
		}

	default: // tableRaw
		if len(renderedHeader) >= 2 {
			e.out = append(e.out, ":_cols="+strings.Join(renderedHeader, "¦"))
		}
		for _, row := range renderedRows {
			e.out = append(e.out, strings.Join(row, "¦"))
		}
	}
}

// findCommonPrefix computes the longest shared prefix across keys, trimmed
// back to its last `-`/`_`/`.` separator. Returns "" if fewer than 2 keys,
// if no separator is found, or if the separator sits at position 0 (the
// shared prefix is itself only a separator) — the boundary rule resolved
// from the original reference implementation; see DESIGN.md.
func findCommonPrefix(keys []string) string {
	if len(keys) < 2 {
		return ""
	}
	prefix := keys[0]
	for _, k := range keys[1:] {
		for len(prefix) > 0 && !strings.HasPrefix(k, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
		if prefix == "" {
			return ""
		}
	}
	pos := strings.LastIndexAny(prefix, "-_.")
	if pos <= 0 {
		return ""
	}
	return prefix[:pos+1]
}

func chunkKV(pairs []kvPair, size int) []string {
	if size < 1 {
		size = 1
	}
	var lines []string
	for i := 0; i < len(pairs); i += size {
		end := i + size
		if end > len(pairs) {
			end = len(pairs)
		}
		chunk := pairs[i:end]
		parts := make([]string, len(chunk))
		for j, p := range chunk {
			parts[j] = p.Key + "=" + p.Value
		}
		lines = append(lines, ":"+strings.Join(parts, " "))
	}
	return lines
}

// flushKV implements §4.4.4: at compression 0 each pair is its own line; at
// compression >= 1, an optional common-prefix extraction runs first, then
// the (possibly rewritten) pairs are chunked by MaxKVPerLine.
func flushKV(buf []kvPair, cfg Config) []string {
	if len(buf) == 0 {
		return nil
	}
	if cfg.Compression == 0 {
		lines := make([]string, len(buf))
		for i, p := range buf {
			lines[i] = ":" + p.Key + "=" + p.Value
		}
		return lines
	}

	if cfg.PrefixExtraction && len(buf) >= 3 {
		keys := make([]string, len(buf))
		for i, p := range buf {
			keys[i] = p.Key
		}
		prefix := findCommonPrefix(keys)
		if len(prefix) >= cfg.MinPrefixLen {
			matches := 0
			for _, k := range keys {
				if strings.HasPrefix(k, prefix) {
					matches++
				}
			}
			if float64(matches)/float64(len(keys)) >= cfg.MinPrefixPct {
				rewritten := make([]kvPair, len(buf))
				for i, p := range buf {
					if strings.HasPrefix(p.Key, prefix) {
						rewritten[i] = kvPair{Key: strings.TrimPrefix(p.Key, prefix), Value: p.Value}
					} else {
						rewritten[i] = p
					}
				}
				out := []string{":_pfx=" + prefix}
				return append(out, chunkKV(rewritten, cfg.MaxKVPerLine)...)
			}
		}
	}
	return chunkKV(buf, cfg.MaxKVPerLine)
}
