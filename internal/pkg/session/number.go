package session

import (
	"strconv"
	"strings"
)

// jsonNumber accepts ids encoded as numbers or numeric strings.
type jsonNumber int64

func (n *jsonNumber) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*n = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*n = jsonNumber(v)
	return nil
}
