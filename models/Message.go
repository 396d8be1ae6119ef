package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MessageRole identifies who produced a message.
type MessageRole string

const (
	MessageRoleUser      MessageRole = "USER"
	MessageRoleAssistant MessageRole = "ASSISTANT"
	MessageRoleSystem    MessageRole = "SYSTEM"
)

// AttachmentType classifies the resource an attachment points to.
type AttachmentType string

const (
	AttachmentTypeFile  AttachmentType = "FILE"
	AttachmentTypeImage AttachmentType = "IMAGE"
	AttachmentTypeLink  AttachmentType = "LINK"
)

// EmbeddingProvider names the service that computed an embedding.
type EmbeddingProvider string

const (
	EmbeddingProviderOpenAI      EmbeddingProvider = "OPENAI"
	EmbeddingProviderHuggingFace EmbeddingProvider = "HUGGINGFACE"
	EmbeddingProviderCustom      EmbeddingProvider = "CUSTOM"
)

// Message is one turn of a session transcript. AuthorID is nil for
// assistant and system messages.
type Message struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	SessionID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"sessionId" validate:"required"`
	AuthorID    *uuid.UUID     `gorm:"type:uuid;index" json:"authorId"`
	Role        MessageRole    `gorm:"type:varchar(16);not null" json:"role" validate:"required,oneof=USER ASSISTANT SYSTEM"`
	Content     string         `gorm:"type:text;not null" json:"content" validate:"required"`
	Metadata    map[string]any `gorm:"serializer:json;type:text" json:"metadata,omitempty"`
	Evaluations []Evaluation   `gorm:"foreignKey:MessageID" json:"evaluations,omitempty" validate:"-"`
	Attachments []Attachment   `gorm:"foreignKey:MessageID" json:"attachments,omitempty" validate:"-"`
	Embeddings  []Embedding    `gorm:"foreignKey:MessageID" json:"embeddings,omitempty" validate:"-"`
	CreatedAt   time.Time      `json:"createdAt"`
}

func (m *Message) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// Evaluation scores a message.
type Evaluation struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	MessageID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"messageId" validate:"required"`
	EvaluatorID *uuid.UUID `gorm:"type:uuid" json:"evaluatorId"`
	Score       float64    `gorm:"not null" json:"score" validate:"finite"`
	Label       *string    `json:"label,omitempty" validate:"omitempty,notblank"`
	Notes       *string    `gorm:"type:text" json:"notes,omitempty" validate:"omitempty,notblank"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (e *Evaluation) BeforeCreate(*gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// Attachment references an external resource shared in a message.
type Attachment struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	MessageID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"messageId" validate:"required"`
	Type        AttachmentType `gorm:"type:varchar(16);not null" json:"type" validate:"required,oneof=FILE IMAGE LINK"`
	URL         string         `gorm:"not null" json:"url" validate:"required,url"`
	Title       *string        `json:"title,omitempty" validate:"omitempty,notblank"`
	Description *string        `gorm:"type:text" json:"description,omitempty" validate:"omitempty,notblank"`
	CreatedAt   time.Time      `json:"createdAt"`
}

func (a *Attachment) BeforeCreate(*gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// Embedding stores a vector computed for a message. The vector is kept as a
// JSON array so the schema stays portable across drivers.
type Embedding struct {
	ID        uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	MessageID uuid.UUID         `gorm:"type:uuid;not null;index" json:"messageId" validate:"required"`
	Provider  EmbeddingProvider `gorm:"type:varchar(16);not null" json:"provider" validate:"required,oneof=OPENAI HUGGINGFACE CUSTOM"`
	Dimension int               `gorm:"not null" json:"dimension" validate:"gt=0"`
	Vector    []float64         `gorm:"serializer:json;type:text;not null" json:"vector" validate:"min=1,dive,finite"`
	Metadata  map[string]any    `gorm:"serializer:json;type:text" json:"metadata,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
}

func (e *Embedding) BeforeCreate(*gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
