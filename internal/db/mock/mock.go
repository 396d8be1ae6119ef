package mock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"atelier/internal/db"
	applog "atelier/internal/log"
	"atelier/models"
)

// New returns an in-memory sqlite database seeded with a representative
// coaching session and the sample RNCP titles. Every call gets its own
// database.
func New(ctx context.Context) (*gorm.DB, error) {
	applog.Debug(ctx, "initialising mock database")

	dsn := fmt.Sprintf("file:atelier-mock-%s?mode=memory&cache=shared", uuid.NewString())
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		PrepareStmt:                              true,
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(database); err != nil {
		return nil, err
	}

	if err := seed(ctx, database); err != nil {
		return nil, err
	}

	if err := db.SeedRncpTitles(ctx, database); err != nil {
		return nil, err
	}

	applog.Debug(ctx, "mock database ready")
	return database, nil
}

func seed(ctx context.Context, database *gorm.DB) error {
	applog.Debug(ctx, "seeding mock database")

	mentorName := "Camille Atelier"
	memberName := "Noé Martin"
	mentor := models.User{Email: "camille@atelier.test", Name: &mentorName, Role: models.UserRoleMentor}
	member := models.User{Email: "noe@atelier.test", Name: &memberName, Role: models.UserRoleMember}

	for _, user := range []*models.User{&mentor, &member} {
		if err := models.Validate(user); err != nil {
			return err
		}
		if err := database.WithContext(ctx).Create(user).Error; err != nil {
			return err
		}
	}

	session := models.Session{
		Title:   "Préparation oral RNCP34079",
		OwnerID: mentor.ID,
		Metadata: map[string]any{
			"format": "mock interview",
		},
	}
	if err := database.WithContext(ctx).Create(&session).Error; err != nil {
		return err
	}

	participants := []models.SessionParticipant{
		{SessionID: session.ID, UserID: mentor.ID, Role: models.ParticipantRoleHost},
		{SessionID: session.ID, UserID: member.ID, Role: models.ParticipantRoleMember},
	}
	if err := database.WithContext(ctx).Create(&participants).Error; err != nil {
		return err
	}

	question := models.Message{
		SessionID: session.ID,
		AuthorID:  &mentor.ID,
		Role:      models.MessageRoleUser,
		Content:   "Présentez un tableau de bord que vous avez conçu.",
	}
	answer := models.Message{
		SessionID: session.ID,
		Role:      models.MessageRoleAssistant,
		Content:   "Commencez par le besoin métier, puis les indicateurs retenus.",
	}
	for _, message := range []*models.Message{&question, &answer} {
		if err := models.Validate(message); err != nil {
			return err
		}
		if err := database.WithContext(ctx).Create(message).Error; err != nil {
			return err
		}
	}

	label := "structured"
	evaluation := models.Evaluation{MessageID: answer.ID, EvaluatorID: &mentor.ID, Score: 4, Label: &label}
	return database.WithContext(ctx).Create(&evaluation).Error
}
