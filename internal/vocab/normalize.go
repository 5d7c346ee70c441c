package vocab

import (
	"errors"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// ErrNotArray is returned when a dataset payload is not a JSON array
// (or a container record wrapping one).
var ErrNotArray = errors.New("dataset is not a JSON array")

// Field aliases seen across the bundled and imported datasets.
var (
	phoneticFields    = []string{"phonetic", "yb", "pronunciation"}
	posFields         = []string{"pos", "partOfSpeech", "cx"}
	definitionFields  = []string{"definition", "meaning", "translation", "trans", "explain"}
	translationFields = []string{"translation", "meaning", "trans", "explain"}
)

// Normalize parses a dataset payload for mode into items. Bare strings
// become words or phrases depending on mode; objects are resolved by
// their "word" or "phrase" field; anything else is kept as a malformed
// item so that one bad record never aborts a session.
//
// A container record of the form {"name": ..., "data": [...]} is unwrapped.
func Normalize(mode Mode, raw []byte) ([]Item, error) {
	if !gjson.ValidBytes(raw) {
		return nil, ErrNotArray
	}
	root := gjson.ParseBytes(raw)
	if root.IsObject() && root.Get("data").IsArray() {
		root = root.Get("data")
	}
	if !root.IsArray() {
		return nil, ErrNotArray
	}

	records := root.Array()
	items := make([]Item, 0, len(records))
	for _, r := range records {
		items = append(items, normalizeRecord(mode, r))
	}
	return items, nil
}

func normalizeRecord(mode Mode, r gjson.Result) Item {
	if r.Type == gjson.String {
		text := strings.TrimSpace(r.String())
		if text == "" {
			return malformed(r)
		}
		if mode == ModePhrases {
			return NewPhrase(text, "")
		}
		return NewWord(text, "", "", "")
	}

	if !r.IsObject() {
		return malformed(r)
	}

	if w := strings.TrimSpace(r.Get("word").String()); w != "" {
		return NewWord(w,
			firstOf(r, phoneticFields),
			firstOf(r, posFields),
			firstOf(r, definitionFields))
	}
	if p := strings.TrimSpace(r.Get("phrase").String()); p != "" {
		return NewPhrase(p, firstOf(r, translationFields))
	}
	return malformed(r)
}

// malformed keeps the record as compact JSON so that records differing
// only in whitespace share one identity key.
func malformed(r gjson.Result) Item {
	return Item{Kind: KindMalformed, Raw: string(pretty.Ugly([]byte(r.Raw)))}
}

func firstOf(r gjson.Result, fields []string) string {
	for _, f := range fields {
		v := r.Get(f)
		if !v.Exists() {
			continue
		}
		if v.IsArray() {
			var parts []string
			for _, e := range v.Array() {
				if s := strings.TrimSpace(e.String()); s != "" {
					parts = append(parts, s)
				}
			}
			if len(parts) > 0 {
				return strings.Join(parts, "; ")
			}
			continue
		}
		if s := strings.TrimSpace(v.String()); s != "" {
			return s
		}
	}
	return ""
}
