package validate

import (
	"encoding/json"
	"strings"
)

// Checkbox is a bool that binds from HTML checkbox values ("y", "on",
// "true", "1") as well as from JSON booleans. Absent or anything else is
// false.
type Checkbox bool

// UnmarshalParam implements gin's binding.BindUnmarshaler for form posts.
func (c *Checkbox) UnmarshalParam(param string) error {
	*c = Checkbox(truthy(param))
	return nil
}

func (c *Checkbox) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*c = Checkbox(b)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*c = Checkbox(truthy(s))
	return nil
}

func (c Checkbox) Bool() bool { return bool(c) }

func truthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes", "on", "true", "1":
		return true
	}
	return false
}
