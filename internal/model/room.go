package model

// Room is a physical room referenced by courses and attendance logs.
type Room struct {
	RoomID string `gorm:"column:room_id;type:varchar(10);primaryKey" json:"room_id"`
}

// TableName pins the table name.
func (Room) TableName() string { return "room" }
