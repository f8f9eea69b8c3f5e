package validation

import "errors"

// ErrInvalidDocument is returned when a document does not match its schema
var ErrInvalidDocument = errors.New("schema validation failed")

// Error messages
const (
	ErrMsgReadDataFmt   = "failed to read data file %s: %w"
	ErrMsgLoadSchemaFmt = "failed to load schema %s: %w"
	ErrMsgParseData     = "failed to parse data"
	ErrMsgParseSchema   = "failed to parse schema JSON"
)
