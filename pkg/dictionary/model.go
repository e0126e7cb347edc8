package dictionary

import "fmt"

// ResultKind discriminates a LookupResult
type ResultKind int

const (
	// KindSuccess means the API returned one or more word entries
	KindSuccess ResultKind = iota
	// KindFailure means the API returned an error object
	KindFailure
)

// String returns the string representation of the kind
func (k ResultKind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// LookupResult is either a list of entries or an API error
type LookupResult struct {
	Kind    ResultKind
	Entries []WordEntry
	Failure *APIError
}

// Success wraps entries in a LookupResult
func Success(entries []WordEntry) *LookupResult {
	if entries == nil {
		entries = []WordEntry{}
	}
	return &LookupResult{Kind: KindSuccess, Entries: entries}
}

// Failure wraps an API error in a LookupResult
func Failure(apiErr *APIError) *LookupResult {
	return &LookupResult{Kind: KindFailure, Failure: apiErr}
}

// IsSuccess reports whether the lookup produced entries
func (r *LookupResult) IsSuccess() bool {
	return r.Kind == KindSuccess
}

// WordEntry is one dictionary result for the queried word
type WordEntry struct {
	Word       string          `json:"word"`
	Phonetic   *string         `json:"phonetic"`
	Phonetics  []PhoneticEntry `json:"phonetics"`
	Origin     *string         `json:"origin"`
	Meanings   []Meaning       `json:"meanings"`
	License    License         `json:"license"`
	SourceURLs []string        `json:"sourceUrls"`
}

// HasPhonetic reports whether the entry carries a headline phonetic
func (e WordEntry) HasPhonetic() bool {
	return e.Phonetic != nil
}

// PhoneticEntry is a pronunciation with optional attribution
type PhoneticEntry struct {
	// Audio is a URL; the API sends "" when there is no recording
	Audio     string   `json:"audio"`
	SourceURL *string  `json:"sourceUrl"`
	License   *License `json:"license"`
	Text      *string  `json:"text"`
}

// HasAudio reports whether a recording URL is present
func (p PhoneticEntry) HasAudio() bool {
	return p.Audio != ""
}

// License names the license of an entry or a recording
type License struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Meaning groups definitions under one part of speech
type Meaning struct {
	PartOfSpeech string       `json:"partOfSpeech"`
	Definitions  []Definition `json:"definitions"`
	Synonyms     []string     `json:"synonyms"`
	Antonyms     []string     `json:"antonyms"`
}

// Definition is a single sense of a word
type Definition struct {
	Definition string   `json:"definition"`
	Synonyms   []string `json:"synonyms"`
	Antonyms   []string `json:"antonyms"`
	Example    *string  `json:"example"`
}

// HasExample reports whether the definition carries a usage example
func (d Definition) HasExample() bool {
	return d.Example != nil
}

// APIError is the service's explanation for a lookup it could not fulfil,
// e.g. "No Definitions Found"
type APIError struct {
	Title      string `json:"title"`
	Message    string `json:"message"`
	Resolution string `json:"resolution"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Title, e.Message)
}

func (e *WordEntry) normalize() {
	if e.Phonetics == nil {
		e.Phonetics = []PhoneticEntry{}
	}
	if e.Meanings == nil {
		e.Meanings = []Meaning{}
	}
	if e.SourceURLs == nil {
		e.SourceURLs = []string{}
	}
	for i := range e.Meanings {
		e.Meanings[i].normalize()
	}
}

func (m *Meaning) normalize() {
	if m.Definitions == nil {
		m.Definitions = []Definition{}
	}
	if m.Synonyms == nil {
		m.Synonyms = []string{}
	}
	if m.Antonyms == nil {
		m.Antonyms = []string{}
	}
	for i := range m.Definitions {
		d := &m.Definitions[i]
		if d.Synonyms == nil {
			d.Synonyms = []string{}
		}
		if d.Antonyms == nil {
			d.Antonyms = []string{}
		}
	}
}
