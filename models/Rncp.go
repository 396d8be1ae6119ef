package models

import "time"

// RncpTitle is a professional certification listed in the French national
// register (RNCP). Code is the public identifier, e.g. "RNCP34079".
type RncpTitle struct {
	ID        uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Code      string     `gorm:"uniqueIndex;not null" json:"code" validate:"required,notblank"`
	Label     string     `gorm:"not null" json:"label" validate:"required,notblank"`
	Level     *string    `json:"level,omitempty" validate:"omitempty,notblank"`
	Active    bool       `gorm:"not null" json:"active"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
	Reac      *ReacCache `gorm:"foreignKey:RncpTitleID" json:"reac,omitempty" validate:"-"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// ReacCache keeps the last fetched competency reference (REAC) of a title.
// There is at most one cache row per title.
type ReacCache struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	RncpTitleID uint           `gorm:"uniqueIndex;not null" json:"rncpTitleId" validate:"gt=0"`
	Payload     map[string]any `gorm:"serializer:json;type:text;not null" json:"payload" validate:"required"`
	FetchedAt   time.Time      `gorm:"not null" json:"fetchedAt"`
}
