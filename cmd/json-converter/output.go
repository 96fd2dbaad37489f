package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"

	"json-converter/hydrate"
)

const (
	formatJSON = "json"
	formatSpew = "spew"
)

func decodeJSON(r io.Reader) (any, error) {
	var doc any

	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode input: %w", err)
	}

	return doc, nil
}

// writeResult prints a hydrated tree. spew shows the live Go values, json the
// rendered form.
func writeResult(w io.Writer, v any, format string) error {
	if format == formatSpew {
		cfg := spew.ConfigState{Indent: "  ", SortKeys: true, DisablePointerAddresses: true}
		cfg.Fdump(w, v)

		return nil
	}

	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")

	if err := enc.Encode(hydrate.Render(v)); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}

	_, err := w.Write(buf.Bytes())

	return err
}
