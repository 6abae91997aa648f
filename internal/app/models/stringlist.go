package models

import (
	"encoding/json"

	"github.com/wandererhq/wanderer/internal/pkg/utils"
)

// StringList accepts either a JSON array of strings or a single
// comma-separated string. Admin forms post the latter; API clients send the
// former. Comma input is trimmed and empty segments are dropped.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var asSlice []string
	if err := json.Unmarshal(data, &asSlice); err == nil {
		*l = asSlice
		return nil
	}
	var asString string
	if err := json.Unmarshal(data, &asString); err != nil {
		return err
	}
	*l = utils.SplitCommaList(asString)
	return nil
}
