package repos

import (
	"gorm.io/gorm"

	"github.com/vantagecare/practice-backend/internal/data/materializer"
	practicerepo "github.com/vantagecare/practice-backend/internal/data/repos/practice"
	"github.com/vantagecare/practice-backend/internal/domain/flow"
	"github.com/vantagecare/practice-backend/internal/domain/practice"
	"github.com/vantagecare/practice-backend/internal/pkg/logger"
)

type ChallengeRepo = practicerepo.ChallengeRepo
type PatientChallengeRepo = practicerepo.PatientChallengeRepo
type ChallengeLikeRepo = practicerepo.ChallengeLikeRepo
type ShortcutRepo = practicerepo.ShortcutRepo

func NewChallengeRepo(db *gorm.DB, baseLog *logger.Logger) ChallengeRepo {
	return practicerepo.NewChallengeRepo(db, baseLog)
}

func NewPatientChallengeRepo(db *gorm.DB, baseLog *logger.Logger) PatientChallengeRepo {
	return practicerepo.NewPatientChallengeRepo(db, baseLog)
}

func NewChallengeLikeRepo(db *gorm.DB, baseLog *logger.Logger) ChallengeLikeRepo {
	return practicerepo.NewChallengeLikeRepo(db, baseLog)
}

func NewShortcutRepo(db *gorm.DB, baseLog *logger.Logger) ShortcutRepo {
	return practicerepo.NewShortcutRepo(db, baseLog)
}

// NewAggregateStore wires one loader per aggregate kind for the materializer.
func NewAggregateStore(baseLog *logger.Logger) materializer.AggregateStore {
	return materializer.NewStore(map[flow.AggregateKind]materializer.Loader{
		practice.AggregateChallenge: practicerepo.NewChallengeLoader(baseLog),
	})
}
