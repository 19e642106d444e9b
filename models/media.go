package models

const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
	MediaTypeAudio = "audio"
)

// MediaType is a lookup row classifying Media.
type MediaType struct {
	ID    uint    `json:"id" gorm:"primaryKey"`
	Name  string  `json:"name" gorm:"not null;unique;default:null"`
	Media []Media `json:"media,omitempty" gorm:"foreignKey:MediaTypeID;constraint:OnDelete:SET NULL"`
}

func (MediaType) TableName() string { return "mediatype" }

func (m MediaType) Serialize() map[string]interface{} {
	return map[string]interface{}{
		"id":   m.ID,
		"name": m.Name,
	}
}

// Media is a typed attachment on a post. MediaTypeID is optional.
type Media struct {
	Model
	PostID      uint       `json:"post_id" gorm:"not null;index"`
	MediaTypeID *uint      `json:"media_type_id" gorm:"index"`
	URL         string     `json:"url" gorm:"not null;default:null"`
	Post        *Post      `json:"post,omitempty" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	MediaType   *MediaType `json:"media_type,omitempty" gorm:"foreignKey:MediaTypeID;constraint:OnDelete:SET NULL"`
}

func (Media) TableName() string { return "media" }

func (m Media) Serialize() map[string]interface{} {
	return map[string]interface{}{
		"id":            m.ID,
		"post_id":       m.PostID,
		"media_type_id": uintOrNil(m.MediaTypeID),
		"url":           m.URL,
	}
}
