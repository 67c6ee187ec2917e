package model

import (
	"bytes"
	"encoding/json"
)

// Field is a single projected column of a sales document row
type Field struct {
	Column string
	Value  any
}

// Row is a schema-free projection of one result row. Column order is
// preserved as returned by the database; SQL NULL is carried as nil Value
// and marshals to JSON null for every column uniformly.
type Row []Field

// MarshalJSON renders the row as a JSON object keeping column order
func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(f.Column)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		value, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Document is a sales document: one header row and zero or more item rows
type Document struct {
	Header Row   `json:"header"`
	Items  []Row `json:"items"`
}
