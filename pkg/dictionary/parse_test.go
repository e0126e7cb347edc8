package dictionary_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/dict/pkg/dictionary"
	"github.com/arthur-debert/dict/pkg/errors"
)

func readFixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return data
}

func strPtr(s string) *string { return &s }

func TestParse_Success(t *testing.T) {
	result, err := dictionary.Parse(readFixture(t, "hello.json"))
	require.NoError(t, err)

	require.True(t, result.IsSuccess())
	assert.Equal(t, dictionary.KindSuccess, result.Kind)
	assert.Nil(t, result.Failure)
	require.Len(t, result.Entries, 1)

	entry := result.Entries[0]
	assert.Equal(t, "hello", entry.Word)
	assert.Equal(t, strPtr("həˈləʊ"), entry.Phonetic)
	assert.Equal(t, strPtr("early 19th century: variant of earlier hollo; related to holla."), entry.Origin)
	assert.Equal(t, dictionary.License{
		Name: "CC BY-SA 3.0",
		URL:  "https://creativecommons.org/licenses/by-sa/3.0",
	}, entry.License)
	assert.Equal(t, []string{"https://en.wiktionary.org/wiki/hello"}, entry.SourceURLs)

	require.Len(t, entry.Phonetics, 3)
	assert.Equal(t, strPtr("həˈləʊ"), entry.Phonetics[0].Text)
	assert.True(t, entry.Phonetics[0].HasAudio())
	assert.Nil(t, entry.Phonetics[0].License)
	assert.False(t, entry.Phonetics[1].HasAudio())
	assert.Nil(t, entry.Phonetics[2].Text)
	assert.Equal(t, strPtr("https://commons.wikimedia.org/w/index.php?curid=75797336"), entry.Phonetics[2].SourceURL)
	assert.Equal(t, &dictionary.License{
		Name: "BY-SA 4.0",
		URL:  "https://creativecommons.org/licenses/by-sa/4.0",
	}, entry.Phonetics[2].License)

	require.Len(t, entry.Meanings, 2)
	assert.Equal(t, "exclamation", entry.Meanings[0].PartOfSpeech)
	assert.Equal(t, []string{"greeting"}, entry.Meanings[0].Synonyms)
	assert.Equal(t, "noun", entry.Meanings[1].PartOfSpeech)
	assert.Equal(t, []string{"bye", "goodbye"}, entry.Meanings[1].Antonyms)

	defs := entry.Meanings[1].Definitions
	require.Len(t, defs, 2)
	assert.Equal(t, "an utterance of ‘hello’; a greeting.", defs[0].Definition)
	assert.Equal(t, []string{"greeting", "welcome", "salutation"}, defs[0].Synonyms)
	assert.True(t, defs[0].HasExample())
	assert.False(t, defs[1].HasExample())
	assert.Equal(t, "A call for response if it is not clear if anyone is present or listening.", defs[1].Definition)
}

func TestParse_PreservesOrder(t *testing.T) {
	body := `[{
		"word": "w",
		"meanings": [
			{"partOfSpeech": "verb", "definitions": [
				{"definition": "z-first"}, {"definition": "a-second"}, {"definition": "m-third"}
			], "synonyms": ["c", "a", "b"]},
			{"partOfSpeech": "adjective", "definitions": []}
		],
		"sourceUrls": ["https://b.example", "https://a.example"]
	}, {"word": "w2"}]`

	result, err := dictionary.Parse([]byte(body))
	require.NoError(t, err)
	require.Len(t, result.Entries, 2)
	assert.Equal(t, "w2", result.Entries[1].Word)

	meanings := result.Entries[0].Meanings
	require.Len(t, meanings, 2)
	assert.Equal(t, "verb", meanings[0].PartOfSpeech)
	assert.Equal(t, "adjective", meanings[1].PartOfSpeech)

	var got []string
	for _, d := range meanings[0].Definitions {
		got = append(got, d.Definition)
	}
	assert.Equal(t, []string{"z-first", "a-second", "m-third"}, got)
	assert.Equal(t, []string{"c", "a", "b"}, meanings[0].Synonyms)
	assert.Equal(t, []string{"https://b.example", "https://a.example"}, result.Entries[0].SourceURLs)
}

func TestParse_MissingFieldsDecodeToEmpty(t *testing.T) {
	result, err := dictionary.Parse([]byte(`[{"word":"bare","meanings":[{"partOfSpeech":"noun","definitions":[{"definition":"d","synonyms":null}]}]}]`))
	require.NoError(t, err)
	require.Len(t, result.Entries, 1)

	entry := result.Entries[0]
	assert.NotNil(t, entry.Phonetics)
	assert.Empty(t, entry.Phonetics)
	assert.NotNil(t, entry.SourceURLs)
	assert.Empty(t, entry.SourceURLs)
	assert.Nil(t, entry.Phonetic)
	assert.Nil(t, entry.Origin)
	assert.Equal(t, dictionary.License{}, entry.License)

	meaning := entry.Meanings[0]
	assert.NotNil(t, meaning.Synonyms)
	assert.NotNil(t, meaning.Antonyms)
	assert.NotNil(t, meaning.Definitions[0].Synonyms)
	assert.NotNil(t, meaning.Definitions[0].Antonyms)
	assert.Nil(t, meaning.Definitions[0].Example)
}

func TestParse_IgnoresUnknownFields(t *testing.T) {
	result, err := dictionary.Parse([]byte(`[{"word":"x","frequency":12,"meanings":[{"partOfSpeech":"noun","register":"formal"}]}]`))
	require.NoError(t, err)
	require.Len(t, result.Entries, 1)
	assert.Equal(t, "noun", result.Entries[0].Meanings[0].PartOfSpeech)
}

func TestParse_EmptyArrayIsSuccess(t *testing.T) {
	result, err := dictionary.Parse([]byte(`[]`))
	require.NoError(t, err)
	assert.True(t, result.IsSuccess())
	assert.NotNil(t, result.Entries)
	assert.Empty(t, result.Entries)
}

func TestParse_APIError(t *testing.T) {
	result, err := dictionary.Parse(readFixture(t, "not_found.json"))
	require.NoError(t, err)

	require.False(t, result.IsSuccess())
	assert.Equal(t, dictionary.KindFailure, result.Kind)
	assert.Nil(t, result.Entries)
	require.NotNil(t, result.Failure)
	assert.Equal(t, &dictionary.APIError{
		Title:      "No Definitions Found",
		Message:    "Sorry pal, we couldn't find definitions for the word you were looking for.",
		Resolution: "You can try the search again at later time or head to the web instead.",
	}, result.Failure)
	assert.Equal(t, "No Definitions Found: Sorry pal, we couldn't find definitions for the word you were looking for.", result.Failure.Error())
}

func TestParse_APIErrorWithExtraFields(t *testing.T) {
	result, err := dictionary.Parse([]byte(`{"title":"t","message":"m","resolution":"r","status":404}`))
	require.NoError(t, err)
	require.Equal(t, dictionary.KindFailure, result.Kind)
	assert.Equal(t, "m", result.Failure.Message)
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty body", ``},
		{"invalid json", `[{"word":`},
		{"null root", `null`},
		{"string root", `"hello"`},
		{"number root", `42`},
		{"empty object", `{}`},
		{"partial error object", `{"title":"No Definitions Found"}`},
		{"array of scalars", `[1, 2]`},
		{"null element", `[null]`},
		{"null after a valid entry", `[{"word":"hello"}, null]`},
		{"nested array element", `[[{"word":"hello"}]]`},
		{"wrong field type", `[{"word": 5}]`},
		{"error object with wrong type", `{"title":1,"message":"m","resolution":"r"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := dictionary.Parse([]byte(tt.body))
			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, errors.IsErrorCode(err, errors.ErrParse), "got %v", err)
			assert.Contains(t, err.Error(), dictionary.MsgMalformedResponse)
			assert.Contains(t, errors.GetErrorDetails(err), "fallback")
		})
	}
}

func TestResultKindString(t *testing.T) {
	assert.Equal(t, "success", dictionary.KindSuccess.String())
	assert.Equal(t, "failure", dictionary.KindFailure.String())
	assert.Equal(t, "unknown", dictionary.ResultKind(9).String())
}
