package models

// Comment represents a user's comment on a post
type Comment struct {
	Model
	AuthorID    uint   `json:"author_id" gorm:"not null;index"`
	PostID      uint   `json:"post_id" gorm:"not null;index"`
	CommentText string `json:"comment_text" gorm:"not null;default:null"`
	Author      *User  `json:"author,omitempty" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Post        *Post  `json:"post,omitempty" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

func (Comment) TableName() string { return "comment" }

func (c Comment) Serialize() map[string]interface{} {
	return map[string]interface{}{
		"id":           c.ID,
		"author_id":    c.AuthorID,
		"post_id":      c.PostID,
		"comment_text": c.CommentText,
	}
}
