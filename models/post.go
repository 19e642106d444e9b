package models

// Post represents an image post owned by a user
type Post struct {
	Model
	UserID   uint      `json:"user_id" gorm:"not null;index"`
	Caption  string    `json:"caption" gorm:"not null;default:null"`
	Image    string    `json:"image" gorm:"not null;default:null"`
	User     *User     `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	Media    []Media   `json:"media,omitempty" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

func (Post) TableName() string { return "post" }

func (p Post) Serialize() map[string]interface{} {
	return map[string]interface{}{
		"id":      p.ID,
		"user_id": p.UserID,
		"caption": p.Caption,
		"image":   p.Image,
	}
}
