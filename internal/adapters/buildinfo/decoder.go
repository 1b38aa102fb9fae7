// Package buildinfo decodes the JSON build info document describing an
// nginx module's sources and include directories.
package buildinfo

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"go.trai.ch/cmakegen/internal/core/domain"
	"go.trai.ch/zerr"
)

// requiredFields are checked in this order, so a document missing both
// reports include_directories.
var requiredFields = []string{
	domain.FieldIncludeDirectories,
	domain.FieldCSources,
}

// Decoder implements ports.BuildInfoDecoder for JSON documents.
type Decoder struct{}

// NewDecoder creates a new Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode reads a JSON object from r. Both required fields must be present and
// hold arrays of strings. Unknown fields are ignored.
func (d *Decoder) Decode(r io.Reader) (domain.BuildInfo, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return domain.BuildInfo{}, zerr.Wrap(err, domain.ErrInputReadFailed.Error())
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return domain.BuildInfo{}, parseError(err)
	}
	if doc == nil {
		return domain.BuildInfo{}, zerr.Wrap(errors.New("document is not a JSON object"), domain.ErrParse.Error())
	}

	for _, field := range requiredFields {
		if _, ok := doc[field]; !ok {
			err := zerr.Wrap(domain.ErrMissingField, "build info has no \""+field+"\" field")
			return domain.BuildInfo{}, zerr.With(err, "field", field)
		}
	}

	includes, err := stringList(doc, domain.FieldIncludeDirectories)
	if err != nil {
		return domain.BuildInfo{}, err
	}

	sources, err := stringList(doc, domain.FieldCSources)
	if err != nil {
		return domain.BuildInfo{}, err
	}

	return domain.BuildInfo{
		IncludeDirectories: includes,
		CSources:           sources,
	}, nil
}

func stringList(doc map[string]json.RawMessage, field string) ([]string, error) {
	raw := bytes.TrimSpace(doc[field])
	if bytes.Equal(raw, []byte("null")) {
		err := zerr.Wrap(errors.New("expected an array of strings, got null"), fieldParseMessage(field))
		return nil, zerr.With(err, "field", field)
	}

	var values []string
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, zerr.With(zerr.Wrap(err, fieldParseMessage(field)), "field", field)
	}
	return values, nil
}

func fieldParseMessage(field string) string {
	return domain.ErrParse.Error() + ": field \"" + field + "\""
}

func parseError(err error) error {
	wrapped := zerr.Wrap(err, domain.ErrParse.Error())

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return zerr.With(wrapped, "offset", syntaxErr.Offset)
	}
	return wrapped
}
