package models

import "time"

type Student struct {
	ID        int64    `gorm:"primaryKey" json:"id"`
	FirstName string   `gorm:"size:50;not null" json:"firstName" validate:"required,max=50"`
	LastName  string   `gorm:"size:50;not null" json:"lastName" validate:"required,max=50"`
	Age       int      `gorm:"not null" json:"age" validate:"min=1,max=100"`
	Address   *Address `gorm:"foreignKey:StudentID" json:"address,omitempty" validate:"-"`
	Marks     []Mark   `gorm:"foreignKey:StudentID" json:"marks,omitempty" validate:"-"`
}

// Address belongs to at most one owner; StudentID and TeacherID are
// mutually exclusive in practice but nothing enforces it.
type Address struct {
	ID        int64  `gorm:"primaryKey" json:"id"`
	City      string `gorm:"size:50;not null" json:"city" validate:"required,max=50"`
	Street    string `gorm:"size:50;not null" json:"street" validate:"required,max=50"`
	Number    int    `gorm:"not null" json:"number" validate:"min=1"`
	StudentID *int64 `json:"studentId,omitempty"`
	TeacherID *int64 `json:"teacherId,omitempty"`
}

type Teacher struct {
	ID      int64    `gorm:"primaryKey" json:"id"`
	Name    string   `gorm:"size:50;not null" json:"name" validate:"required,max=50"`
	Rank    Rank     `gorm:"type:text;not null" json:"rank" validate:"rank"`
	Address *Address `gorm:"foreignKey:TeacherID" json:"address,omitempty" validate:"-"`
	Subject *Subject `gorm:"-" json:"subject,omitempty" validate:"-"`
}

// Subject.TeacherID is set on creation and cleared when its teacher is deleted.
type Subject struct {
	ID        int64  `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"size:50;not null" json:"name" validate:"required,max=50"`
	TeacherID *int64 `json:"teacherId" validate:"required,gt=0"`
}

type Mark struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Value     int       `gorm:"not null" json:"value" validate:"min=1,max=10"`
	SubjectID int64     `gorm:"not null" json:"subjectId" validate:"gt=0"`
	StudentID int64     `gorm:"not null" json:"studentId" validate:"gt=0"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
}

type AverageForSubject struct {
	SubjectID int64   `json:"subjectId"`
	Average   float64 `json:"average"`
}

type StudentWithAverage struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Age     int     `json:"age"`
	Average float64 `json:"average"`
}

// Stats holds row counts per catalogue table.
type Stats struct {
	Students int64
	Teachers int64
	Subjects int64
	Marks    int64
}
