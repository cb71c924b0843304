package transport

import (
	"encoding/json"
	"strconv"
	"strings"
)

// TagList accepts either a JSON array of strings or a single string,
// matching what clients of the original API send.
type TagList []string

func (t *TagList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*t = list
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	if single == "" {
		*t = []string{}
		return nil
	}
	*t = []string{single}
	return nil
}

// Minutes accepts a JSON number or a numeric string; anything else parses
// to zero and falls back to the server default.
type Minutes int

func (m *Minutes) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*m = Minutes(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if parsed, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		*m = Minutes(parsed)
	} else {
		*m = 0
	}
	return nil
}

// CreateQuestRequest is the quest creation body.
type CreateQuestRequest struct {
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Priority      string  `json:"priority"`
	Category      string  `json:"category"`
	Deadline      string  `json:"deadline"`
	Tags          TagList `json:"tags"`
	EstimatedTime Minutes `json:"estimated_time"`
	Difficulty    string  `json:"difficulty"`
}

// UpdatePreferencesRequest is the partial preferences update body. Absent
// fields stay nil and leave the stored value untouched.
type UpdatePreferencesRequest struct {
	Categories    []string `json:"categories"`
	Difficulty    *string  `json:"difficulty"`
	Notifications *bool    `json:"notifications"`
	Theme         *string  `json:"theme"`
}
