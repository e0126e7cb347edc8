// Package dictionary defines the data model returned by the dictionary API
// and the Parse operation that turns a response body into a LookupResult.
//
// The API answers with either a JSON array of word entries or a single error
// object, with no field telling the two apart. Parse tries the entry array
// first and only then the error object; a body matching neither is a
// PARSE error, never an empty success.
//
// Optional fields are pointers: nil means the field was absent. Lists are
// never nil after Parse, and keep the order the API sent them in.
package dictionary
