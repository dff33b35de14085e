package blog

import "time"

type Post struct {
	ID        string    `gorm:"column:id;type:varchar(36);primaryKey" json:"id"`
	Title     string    `gorm:"column:title;not null" json:"title"`
	Content   string    `gorm:"column:content;type:text;not null;default:''" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at;not null;index" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"updatedAt"`
}

func (Post) TableName() string { return "post" }

// PostBody is the part of a post the comment generator reads.
type PostBody struct {
	Title   string
	Content string
}

func (p Post) Body() PostBody { return PostBody{Title: p.Title, Content: p.Content} }
