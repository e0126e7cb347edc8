package dictionary

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"

	"github.com/arthur-debert/dict/pkg/errors"
)

// MsgMalformedResponse is the message of the PARSE error returned when a body
// matches neither response shape
const MsgMalformedResponse = "malformed response"

var (
	errNullRoot           = stderrors.New("response root is null")
	errIncompleteAPIError = stderrors.New("error object lacks title, message or resolution")
	errEntryNotObject     = stderrors.New("entry is not an object")
)

// wireAPIError detects which error fields were actually sent
type wireAPIError struct {
	Title      *string `json:"title"`
	Message    *string `json:"message"`
	Resolution *string `json:"resolution"`
}

// Parse decodes a response body. The entry array is tried first, then the
// error object.
func Parse(body []byte) (*LookupResult, error) {
	entries, entriesErr := parseEntries(body)
	if entriesErr == nil {
		return Success(entries), nil
	}

	apiErr, apiErrErr := parseAPIError(body)
	if apiErrErr == nil {
		return Failure(apiErr), nil
	}

	return nil, errors.Wrap(entriesErr, errors.ErrParse, MsgMalformedResponse).
		WithDetail("fallback", apiErrErr.Error())
}

func parseEntries(body []byte) ([]WordEntry, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, errNullRoot
	}

	entries := make([]WordEntry, len(raw))
	for i, element := range raw {
		// null would decode into a blank entry
		if !isObject(element) {
			return nil, fmt.Errorf("entry %d: %w", i, errEntryNotObject)
		}
		if err := json.Unmarshal(element, &entries[i]); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		entries[i].normalize()
	}
	return entries, nil
}

func isObject(element json.RawMessage) bool {
	trimmed := bytes.TrimLeft(element, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '{'
}

func parseAPIError(body []byte) (*APIError, error) {
	var wire wireAPIError
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, err
	}
	if wire.Title == nil || wire.Message == nil || wire.Resolution == nil {
		return nil, errIncompleteAPIError
	}
	return &APIError{
		Title:      *wire.Title,
		Message:    *wire.Message,
		Resolution: *wire.Resolution,
	}, nil
}
