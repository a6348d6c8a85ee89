package practice

import "github.com/google/uuid"

// Aggregate event names routed to challenge reducers.
const (
	EventChallengeLiked            = "challenge_liked"
	EventChallengeUnliked          = "challenge_unliked"
	EventChallengeParticipantAdded = "new_challenge_participant_added"
	EventChallengeCompleted        = "challenge_completed"
)

// ChallengeEventNames lists every event name a challenge flow can emit. Main
// asserts reducer completeness against this list before serving traffic.
func ChallengeEventNames() []string {
	return []string{
		EventChallengeLiked,
		EventChallengeUnliked,
		EventChallengeParticipantAdded,
		EventChallengeCompleted,
	}
}

// Integration event types published to other subsystems after commit.
const (
	IntegrationChallengeLiked                = "challenge.liked"
	IntegrationChallengeParticipationStarted = "challenge.participation_started"
	IntegrationChallengeCompleted            = "challenge.completed"
)

// ChallengeLikedPayload marks who liked; the reducer only needs the event
// name, the payload travels for audit.
type ChallengeLikedPayload struct {
	PatientID uuid.UUID `json:"patient_id"`
}

type ParticipantAddedPayload struct {
	PatientID uuid.UUID `json:"patient_id"`
}

type ChallengeCompletedPayload struct {
	PatientID uuid.UUID `json:"patient_id"`
	Auto      bool      `json:"auto"`
}
