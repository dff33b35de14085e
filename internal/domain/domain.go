package domain

import "github.com/yyoonchul/murmur-blog/internal/domain/blog"

const UserPersonaID = blog.UserPersonaID

type (
	Comment  = blog.Comment
	Post     = blog.Post
	PostBody = blog.PostBody
	Persona  = blog.Persona
	Roster   = blog.Roster
)
