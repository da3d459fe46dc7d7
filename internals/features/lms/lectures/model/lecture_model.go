// file: internals/features/lms/lectures/model/lecture_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Hari pakai nama bahasa Inggris ("Sunday".."Saturday"),
// urutan minggu dihitung saat query.
type LectureModel struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Day       string    `gorm:"column:day;type:varchar(10);not null" json:"day"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (LectureModel) TableName() string {
	return "lectures"
}

var WeekDays = []string{
	"Sunday", "Monday", "Tuesday", "Wednesday",
	"Thursday", "Friday", "Saturday",
}

func IsWeekDay(day string) bool {
	for _, d := range WeekDays {
		if d == day {
			return true
		}
	}
	return false
}
