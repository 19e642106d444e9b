package models

// Model holds the system-assigned primary key shared by every id-keyed table.
type Model struct {
	ID uint `json:"id" gorm:"primaryKey"`
}

// Serializer is implemented by entities that can be projected for transmission.
// Only whitelisted fields end up in the returned map.
type Serializer interface {
	Serialize() map[string]interface{}
}

// SerializeAll projects every item in order.
func SerializeAll[T Serializer](items []T) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(items))
	for _, item := range items {
		out = append(out, item.Serialize())
	}
	return out
}

func stringOrNil(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

func uintOrNil(u *uint) interface{} {
	if u == nil {
		return nil
	}
	return *u
}
