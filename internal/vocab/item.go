package vocab

import (
	"fmt"
	"strings"
)

// Mode selects which pool a session draws from.
type Mode string

const (
	ModeWords   Mode = "words"
	ModePhrases Mode = "phrases"
	ModeReview  Mode = "review"
)

// Modes lists the dataset-backed modes in display order.
var Modes = []Mode{ModeWords, ModePhrases}

// ParseMode parses a mode name. Unknown names are an error.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeWords, ModePhrases, ModeReview:
		return m, nil
	}
	return "", fmt.Errorf("unknown mode %q", s)
}

// DisplayName returns the human-readable label for the mode.
func (m Mode) DisplayName() string {
	switch m {
	case ModeWords:
		return "Words"
	case ModePhrases:
		return "Phrases"
	case ModeReview:
		return "Review"
	}
	return string(m)
}

// Kind tags the variant held by an Item.
type Kind int

const (
	KindMalformed Kind = iota
	KindWord
	KindPhrase
)

func (k Kind) String() string {
	switch k {
	case KindWord:
		return "word"
	case KindPhrase:
		return "phrase"
	}
	return "malformed"
}

// Placeholder labels for records that carry neither a word nor a phrase.
const (
	MalformedText    = "Unknown item"
	MalformedMeaning = "Unrecognised record format"
)

// Item is a single flashcard. The variant is resolved once at
// normalization time; Kind says which fields are meaningful.
type Item struct {
	Kind Kind `json:"kind"`

	// Text is the word or phrase itself.
	Text string `json:"text,omitempty"`

	// Word fields.
	Phonetic     string `json:"phonetic,omitempty"`
	PartOfSpeech string `json:"pos,omitempty"`
	Definition   string `json:"definition,omitempty"`

	// Phrase fields.
	Translation string `json:"translation,omitempty"`

	// Raw holds the original record for malformed items.
	Raw string `json:"raw,omitempty"`
}

// NewWord returns a word item.
func NewWord(text, phonetic, pos, definition string) Item {
	return Item{Kind: KindWord, Text: text, Phonetic: phonetic, PartOfSpeech: pos, Definition: definition}
}

// NewPhrase returns a phrase item.
func NewPhrase(text, translation string) Item {
	return Item{Kind: KindPhrase, Text: text, Translation: translation}
}

// Key returns the identity key used for deduplication.
func (it Item) Key() string {
	if it.Kind == KindMalformed {
		return it.Raw
	}
	return it.Text
}

// DisplayText returns the front of the card.
func (it Item) DisplayText() string {
	if it.Kind == KindMalformed {
		return MalformedText
	}
	return it.Text
}

// Meaning returns the back of the card.
func (it Item) Meaning() string {
	switch it.Kind {
	case KindWord:
		if it.PartOfSpeech != "" && it.Definition != "" {
			return it.PartOfSpeech + " " + it.Definition
		}
		return it.Definition
	case KindPhrase:
		return it.Translation
	}
	return MalformedMeaning
}

// CleanPhonetic strips the surrounding brackets some datasets wrap phonetics in.
func (it Item) CleanPhonetic() string {
	p := strings.TrimSpace(it.Phonetic)
	p = strings.TrimPrefix(p, "[")
	p = strings.TrimSuffix(p, "]")
	return p
}

// SpeakText is the text handed to pronunciation lookup; empty for malformed items.
func (it Item) SpeakText() string {
	if it.Kind == KindMalformed {
		return ""
	}
	return it.Text
}

// identity distinguishes a word from a phrase with the same text.
type identity struct {
	kind Kind
	key  string
}

func (it Item) identity() identity {
	return identity{kind: it.Kind, key: it.Key()}
}

// SameAs reports whether it and o are the same card: same kind and same
// identity key.
func (it Item) SameAs(o Item) bool {
	return it.identity() == o.identity()
}

// Dedup returns items with duplicate cards removed, keeping the first
// occurrence. A word and a phrase sharing their text are both kept.
func Dedup(items []Item) []Item {
	seen := make(map[identity]bool, len(items))
	out := make([]Item, 0, len(items))
	for _, it := range items {
		id := it.identity()
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, it)
	}
	return out
}
