package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionStatus tracks the lifecycle of a coaching session.
type SessionStatus string

const (
	SessionStatusActive    SessionStatus = "ACTIVE"
	SessionStatusCompleted SessionStatus = "COMPLETED"
	SessionStatusCancelled SessionStatus = "CANCELLED"
)

// ParticipantRole is the part a user plays within one session.
type ParticipantRole string

const (
	ParticipantRoleHost        ParticipantRole = "HOST"
	ParticipantRoleFacilitator ParticipantRole = "FACILITATOR"
	ParticipantRoleMember      ParticipantRole = "MEMBER"
)

type Session struct {
	ID           uuid.UUID            `gorm:"type:uuid;primaryKey" json:"id"`
	Title        string               `gorm:"not null" json:"title" validate:"required,notblank"`
	Status       SessionStatus        `gorm:"type:varchar(16);not null;index" json:"status" validate:"required,oneof=ACTIVE COMPLETED CANCELLED"`
	OwnerID      uuid.UUID            `gorm:"type:uuid;not null;index" json:"ownerId" validate:"required"`
	Owner        *User                `gorm:"foreignKey:OwnerID" json:"owner,omitempty" validate:"-"`
	StartedAt    time.Time            `gorm:"not null" json:"startedAt"`
	EndedAt      *time.Time           `json:"endedAt,omitempty"`
	Metadata     map[string]any       `gorm:"serializer:json;type:text" json:"metadata,omitempty"`
	Participants []SessionParticipant `gorm:"foreignKey:SessionID" json:"participants,omitempty" validate:"-"`
	Messages     []Message            `gorm:"foreignKey:SessionID" json:"messages,omitempty" validate:"-"`
	CreatedAt    time.Time            `json:"createdAt"`
	UpdatedAt    time.Time            `json:"updatedAt"`
}

// BeforeCreate assigns the primary key, the default status and the start time.
func (s *Session) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.Status == "" {
		s.Status = SessionStatusActive
	}
	if s.StartedAt.IsZero() {
		s.StartedAt = tx.NowFunc()
	}
	return nil
}

// SessionParticipant links a user to a session. A user joins a session once.
type SessionParticipant struct {
	ID        uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	SessionID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_participant_session_user" json:"sessionId" validate:"required"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_participant_session_user" json:"userId" validate:"required"`
	Role      ParticipantRole `gorm:"type:varchar(16);not null" json:"role" validate:"required,oneof=HOST FACILITATOR MEMBER"`
	JoinedAt  time.Time       `gorm:"not null" json:"joinedAt"`
}

func (p *SessionParticipant) BeforeCreate(tx *gorm.DB) error {
	if p.Role == "" {
		p.Role = ParticipantRoleMember
	}
	if p.JoinedAt.IsZero() {
		p.JoinedAt = tx.NowFunc()
	}
	return nil
}
