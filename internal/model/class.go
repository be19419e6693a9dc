package model

// Class is a cohort of students; courses are scheduled against it.
type Class struct {
	ClassID string `gorm:"column:class_id;type:varchar(10);primaryKey" json:"class_id"`

	Students []User   `gorm:"foreignKey:StudentClass;references:ClassID" json:"students,omitempty"`
	Courses  []Course `gorm:"foreignKey:ClassID;references:ClassID"      json:"courses,omitempty"`
}

// TableName pins the table name.
func (Class) TableName() string { return "class" }
