package models

// Follower is the junction row for "FollowerID follows FollowedID".
// The composite primary key makes each pair unique and a user cannot follow themselves.
type Follower struct {
	FollowerID uint  `json:"follower_id" gorm:"primaryKey;autoIncrement:false;check:chk_follower_not_self,follower_id <> followed_id"`
	FollowedID uint  `json:"followed_id" gorm:"primaryKey;autoIncrement:false;index"`
	Follower   *User `json:"-" gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE"`
	Followed   *User `json:"-" gorm:"foreignKey:FollowedID;constraint:OnDelete:CASCADE"`
}

func (Follower) TableName() string { return "follower" }
