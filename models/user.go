package models

// User is the root of the ownership graph.
type User struct {
	Model
	Email     string  `json:"email" gorm:"type:varchar(120);unique;not null;default:null"`
	FirstName string  `json:"first_name" gorm:"not null;default:null"`
	LastName  *string `json:"last_name"`
	// HashedPassword is never part of a projection.
	HashedPassword *string   `json:"-"`
	Posts          []Post    `json:"posts,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Comments       []Comment `json:"comments,omitempty" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}

func (User) TableName() string { return "user" }

// Serialize returns the public fields of the user. New fields stay private
// until they are added here.
func (u User) Serialize() map[string]interface{} {
	return map[string]interface{}{
		"id":         u.ID,
		"email":      u.Email,
		"first_name": u.FirstName,
		"last_name":  stringOrNil(u.LastName),
	}
}
