package format

import (
	"encoding/json"
	"fmt"
	"io"
)

// Marshal renders v as JSON, indented unless compact is set.
func Marshal(v any, compact bool) (string, error) {
	var (
		output []byte
		err    error
	)
	if compact {
		output, err = json.Marshal(v)
	} else {
		output, err = json.MarshalIndent(v, "", "  ")
	}
	if err != nil {
		return "", err
	}
	return string(output), nil
}

// WriteJSON writes v to w as JSON followed by a newline.
func WriteJSON(w io.Writer, v any, compact bool) error {
	output, err := Marshal(v, compact)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, output)
	return err
}
