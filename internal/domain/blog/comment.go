package blog

import "time"

// UserPersonaID marks comments written by the human author.
const UserPersonaID = "user"

type Comment struct {
	ID     string `gorm:"column:id;type:varchar(36);primaryKey" json:"id"`
	PostID string `gorm:"column:post_id;type:varchar(36);not null;index:idx_comment_post_seq,priority:1" json:"-"`
	Seq    int    `gorm:"column:seq;not null;default:0;index:idx_comment_post_seq,priority:2" json:"-"`

	PersonaID string    `gorm:"column:persona_id;not null;index" json:"personaId"`
	Content   string    `gorm:"column:content;type:text;not null;default:''" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"createdAt"`

	// Empty means top-level.
	ParentID string `gorm:"column:parent_id;type:varchar(36);not null;default:'';index" json:"parentId,omitempty"`
}

func (Comment) TableName() string { return "comment" }

func (c Comment) IsTopLevel() bool { return c.ParentID == "" }

func (c Comment) IsUser() bool { return c.PersonaID == UserPersonaID }
