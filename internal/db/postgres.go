package db

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/vantagecare/practice-backend/internal/domain/practice"
	"github.com/vantagecare/practice-backend/internal/pkg/logger"
	"github.com/vantagecare/practice-backend/internal/utils"
)

type PostgresService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPostgresService(log *logger.Logger) (*PostgresService, error) {
	serviceLog := log.With("service", "PostgresService")

	postgresHost := utils.GetEnv("POSTGRES_HOST", "localhost", log)
	postgresPort := utils.GetEnv("POSTGRES_PORT", "5432", log)
	postgresUser := utils.GetEnv("POSTGRES_USER", "postgres", log)
	postgresPassword := utils.GetEnv("POSTGRES_PASSWORD", "", log)
	postgresName := utils.GetEnv("POSTGRES_NAME", "practice", log)

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", postgresUser, postgresPassword, postgresHost, postgresPort, postgresName)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		log.Error("Failed to connect to Postgres", "error", err)
		return nil, fmt.Errorf("failed to connect to Postgres: %w", err)
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
		log.Error("Failed to enable uuid-ossp extension", "error", err)
		return nil, fmt.Errorf("failed to enable uuid-ossp extension: %w", err)
	}

	return &PostgresService{db: db, log: serviceLog}, nil
}

func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Auto migrating postgres tables...")
	err := s.db.AutoMigrate(
		&practice.Challenge{},
		&practice.PatientChallenge{},
		&practice.ChallengeLike{},
		&practice.EmployeeShortcut{},
	)
	if err != nil {
		s.log.Error("Auto migration failed for postgres tables", "error", err)
		return err
	}
	if err := s.db.Exec(`
    ALTER TABLE "patient_challenge"
    ADD CONSTRAINT "fk_patient_challenge_challenge_id"
    FOREIGN KEY ("challenge_id")
    REFERENCES "challenge"("id")
    ON DELETE CASCADE
  `).Error; err != nil && !isDuplicateConstraint(err) {
		return fmt.Errorf("failed to add fk_patient_challenge_challenge_id: %w", err)
	}
	if err := s.db.Exec(`
    ALTER TABLE "challenge_like"
    ADD CONSTRAINT "fk_challenge_like_challenge_id"
    FOREIGN KEY ("challenge_id")
    REFERENCES "challenge"("id")
    ON DELETE CASCADE
  `).Error; err != nil && !isDuplicateConstraint(err) {
		return fmt.Errorf("failed to add fk_challenge_like_challenge_id: %w", err)
	}
	return nil
}

func (s *PostgresService) DB() *gorm.DB {
	return s.db
}

func isDuplicateConstraint(err error) bool {
	return err != nil && strings.Contains(err.Error(), "already exists")
}
