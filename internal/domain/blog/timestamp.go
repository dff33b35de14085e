package blog

import (
	"encoding/json"
	"time"
)

// TimestampLayout always prints milliseconds, e.g. 2025-01-02T03:04:05.120Z.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

func (c Comment) MarshalJSON() ([]byte, error) {
	type plain Comment
	return json.Marshal(struct {
		plain
		CreatedAt string `json:"createdAt"`
	}{plain: plain(c), CreatedAt: FormatTimestamp(c.CreatedAt)})
}

func (p Post) MarshalJSON() ([]byte, error) {
	type plain Post
	return json.Marshal(struct {
		plain
		CreatedAt string `json:"createdAt"`
		UpdatedAt string `json:"updatedAt"`
	}{plain: plain(p), CreatedAt: FormatTimestamp(p.CreatedAt), UpdatedAt: FormatTimestamp(p.UpdatedAt)})
}
