package learnstate

// Decision field values. Each is chosen mechanically from one state axis.
type (
	SessionDesign         string
	LearningPace          string
	ActivityBias          string
	SupportStyle          string
	CollaborationPressure string
)

const (
	DesignShorterBlocks SessionDesign = "shorter_blocks"
	DesignDeepDive      SessionDesign = "deep_dive_sessions"
	DesignStandard      SessionDesign = "standard_blocks"

	PaceFlexibleCatchup    LearningPace = "flexible_catchup"
	PaceSteadyAcceleration LearningPace = "steady_acceleration"

	BiasIncreaseHandsOn     ActivityBias = "increase_hands_on"
	BiasMaintainActiveTools ActivityBias = "maintain_active_tools"

	SupportGentleNudges         SupportStyle = "gentle_nudges"
	SupportCollaborativeInquiry SupportStyle = "collaborative_inquiry"

	PressureNone     CollaborationPressure = "none"
	PressureModerate CollaborationPressure = "moderate"
)

// Decisions is the pedagogical policy derived from a learning state.
type Decisions struct {
	SessionDesign         SessionDesign         `json:"session_design"`
	LearningPace          LearningPace          `json:"learning_pace"`
	ActivityBias          ActivityBias          `json:"activity_bias"`
	SupportStyle          SupportStyle          `json:"support_style"`
	CollaborationPressure CollaborationPressure `json:"collaboration_pressure"`
}

// Decide maps a learning state to decisions via the fixed table.
func Decide(s State) Decisions {
	d := Decisions{
		SessionDesign:         DesignStandard,
		LearningPace:          PaceFlexibleCatchup,
		ActivityBias:          BiasIncreaseHandsOn,
		SupportStyle:          SupportGentleNudges,
		CollaborationPressure: PressureNone,
	}

	switch s.Focus {
	case FocusShortBurst:
		d.SessionDesign = DesignShorterBlocks
	case FocusSustained:
		d.SessionDesign = DesignDeepDive
	}

	if s.Consistency == ConsistencyConsistent {
		d.LearningPace = PaceSteadyAcceleration
	}

	if s.EngagementMode == EngagementHandsOn {
		d.ActivityBias = BiasMaintainActiveTools
	}

	if s.HelpSeeking == HelpHealthy {
		d.SupportStyle = SupportCollaborativeInquiry
	}

	if s.Collaboration == CollabCollaborative {
		d.CollaborationPressure = PressureModerate
	}

	return d
}
