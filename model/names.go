package model

// Name is a display name, optionally tagged with a Windows LCID
// (1033 for en-US, 1031 for de-DE).
type Name struct {
	Text string  `yaml:"text"`
	LcID *uint32 `yaml:"lcid,omitempty"`
}

// Names is a list of localized names in document order.
type Names []Name

// Default returns the first name, or "" when there is none.
func (n Names) Default() string {
	if len(n) == 0 {
		return ""
	}
	return n[0].Text
}

// ByLcID returns the first name tagged with id.
func (n Names) ByLcID(id uint32) (string, bool) {
	for _, name := range n {
		if name.LcID != nil && *name.LcID == id {
			return name.Text, true
		}
	}
	return "", false
}
