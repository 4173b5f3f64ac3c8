package gradebook

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

const indent = "    "

// Encode serializes doc in the durable format: sorted keys, 4-space indent, trailing newline.
// Names are written as is ("R&D", not "R\u0026D").
func Encode(doc Document) ([]byte, error) {
	if doc == nil {
		doc = Document{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(doc); err != nil {
		return nil, errors.Wrap(err, "encoding gradebook")
	}
	return buf.Bytes(), nil
}

// Decode parses a durable document. Any parse or schema failure wraps ErrMalformedDocument.
func Decode(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(ErrMalformedDocument, err.Error())
	}
	return doc.Clone(), nil
}
