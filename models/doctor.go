package models

import "time"

// DoctorStatus gates a doctor's visibility in listings.
type DoctorStatus string

const (
	DoctorPending   DoctorStatus = "pending"
	DoctorActive    DoctorStatus = "active"
	DoctorSuspended DoctorStatus = "suspended"
)

// WeeklySession is one contiguous working interval on a recurring weekday.
// Day accepts either the full weekday name ("Monday") or the 3-letter
// abbreviation ("Mon"); both forms are normalized at slot derivation.
type WeeklySession struct {
	Day       string `bson:"day" json:"day" binding:"required"`
	StartTime string `bson:"startTime" json:"startTime" binding:"required"` // "15:04"
	EndTime   string `bson:"endTime" json:"endTime" binding:"required"`     // "15:04"
}

// Doctor is a doctor's public profile plus the recurring weekly schedule the
// availability model derives bookable slots from.
type Doctor struct {
	ID              string          `bson:"id" json:"id"`
	UserID          string          `bson:"userId" json:"userId"`
	Hospital        string          `bson:"hospital" json:"hospital"`
	Degree          string          `bson:"degree" json:"degree"`
	Specialization  string          `bson:"specialization" json:"specialization"`
	Experience      int             `bson:"experience" json:"experience"` // years
	Location        string          `bson:"location,omitempty" json:"location,omitempty"`
	Timings         []WeeklySession `bson:"timings" json:"timings"`
	SlotDuration    int             `bson:"slotDuration" json:"slotDuration"` // minutes, uniform across sessions
	Status          DoctorStatus    `bson:"status" json:"status"`
	Rating          float64         `bson:"rating" json:"rating"`
	ReviewCount     int             `bson:"reviewCount" json:"reviewCount"`
	ConsultationFee int64           `bson:"consultationFee" json:"consultationFee"` // smallest currency unit
	Bio             string          `bson:"bio,omitempty" json:"bio,omitempty"`
	ProfileImage    string          `bson:"profileImage,omitempty" json:"profileImage,omitempty"` // storage public ID
	CreatedAt       time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time       `bson:"updatedAt" json:"updatedAt"`
}

// DoctorRegistration is the payload for creating a doctor profile.
type DoctorRegistration struct {
	Hospital        string          `json:"hospital" binding:"required"`
	Degree          string          `json:"degree" binding:"required"`
	Specialization  string          `json:"specialization" binding:"required"`
	Experience      *int            `json:"experience" binding:"required"`
	Location        string          `json:"location"`
	Timings         []WeeklySession `json:"timings"`
	SlotDuration    int             `json:"slotDuration"`
	ConsultationFee int64           `json:"consultationFee"`
	Bio             string          `json:"bio"`
}

// DoctorUpdate carries optional profile fields for a partial update.
type DoctorUpdate struct {
	Hospital        string  `json:"hospital"`
	Degree          string  `json:"degree"`
	Specialization  string  `json:"specialization"`
	Experience      *int    `json:"experience"`
	Location        string  `json:"location"`
	ConsultationFee *int64  `json:"consultationFee"`
	Bio             *string `json:"bio"`
}

// TimingsUpdate replaces a doctor's weekly schedule wholesale.
type TimingsUpdate struct {
	Timings      []WeeklySession `json:"timings" binding:"required"`
	SlotDuration int             `json:"slotDuration"`
}
