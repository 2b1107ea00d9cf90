package commands

import (
	"encoding/json"
	"fmt"
	"io"
)

// OutputJSON writes data as indented JSON
func OutputJSON(w io.Writer, data interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}
