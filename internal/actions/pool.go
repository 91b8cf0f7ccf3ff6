package actions

import "github.com/abhinav-rk/studyloop/internal/activity"

// Decision field names, in the order the selector walks them.
const (
	FieldSessionDesign         = "sessionDesign"
	FieldLearningPace          = "learningPace"
	FieldActivityBias          = "activityBias"
	FieldSupportStyle          = "supportStyle"
	FieldCollaborationPressure = "collaborationPressure"
)

// FieldOrder fixes iteration order across the decision object so the
// 3-action cap always favors session design first.
var FieldOrder = []string{
	FieldSessionDesign,
	FieldLearningPace,
	FieldActivityBias,
	FieldSupportStyle,
	FieldCollaborationPressure,
}

// Pool maps [decisionField][decisionValue] to candidate actions. An
// unmapped value means that field is silently skipped by the selector.
var Pool = map[string]map[string][]Action{
	FieldSessionDesign: {
		"shorter_blocks": {
			{Kind: KindRoadmapTask, ID: "sd-short-sprint", Label: "Run a 20-minute focused sprint",
				Description: "One short session, one topic, no switching.",
				Duration:    20,
				Reason:      "Short sessions match your current attention pattern",
				Intent:      "build focus stamina in small steps",
				Criteria:    SuccessCriteria{MinDuration: 15, MaxDuration: 30}},
			{Kind: KindNudge, ID: "sd-short-break", Label: "Take a 5-minute break between blocks",
				Reason:   "Breaks keep short sessions sharp",
				Intent:   "protect focus between sprints",
				Criteria: SuccessCriteria{MinDuration: 15}},
		},
		"deep_dive_sessions": {
			{Kind: KindRoadmapTask, ID: "sd-deep-dive", Label: "Schedule a 60-minute deep dive",
				Description: "One long session on your hardest topic.",
				Duration:    60,
				Reason:      "You sustain attention well; use it on hard material",
				Intent:      "convert long focus into depth",
				Criteria:    SuccessCriteria{MinDuration: 45}},
			{Kind: KindRoadmapTask, ID: "sd-deep-notes", Label: "Summarize a deep session in notes",
				Duration: 15,
				Reason:   "Long sessions stick better with a written recap",
				Intent:   "consolidate deep work",
				Criteria: SuccessCriteria{RequiredEvents: []activity.Type{activity.TypeNoteEdited}}},
		},
		"standard_blocks": {
			{Kind: KindRoadmapTask, ID: "sd-standard", Label: "Study in two 30-minute blocks",
				Duration: 30,
				Reason:   "Balanced focus suits standard-length blocks",
				Intent:   "keep a steady session rhythm",
				Criteria: SuccessCriteria{MinDuration: 25}},
		},
	},
	FieldLearningPace: {
		"flexible_catchup": {
			{Kind: KindRoadmapTask, ID: "lp-catchup", Label: "Pick one missed day this week and study",
				Duration: 30,
				Reason:   "Your cadence is irregular; one recovered day restarts momentum",
				Intent:   "rebuild a daily habit gently",
				Criteria: SuccessCriteria{MinDuration: 20, MaxSessionGap: 2880}},
			{Kind: KindNudge, ID: "lp-reminder", Label: "Set a recurring study reminder",
				Reason:   "Irregular days respond well to fixed anchors",
				Intent:   "externalize the schedule",
				Criteria: SuccessCriteria{MinDuration: 10}},
		},
		"steady_acceleration": {
			{Kind: KindRoadmapTask, ID: "lp-accelerate", Label: "Add one extra session this week",
				Duration: 30,
				Reason:   "Your cadence is consistent; it can absorb more load",
				Intent:   "raise volume without breaking rhythm",
				Criteria: SuccessCriteria{MinDuration: 25, MinInteractions: 3}},
		},
	},
	FieldActivityBias: {
		"increase_hands_on": {
			{Kind: KindRoadmapTask, ID: "ab-whiteboard", Label: "Work a problem on the whiteboard",
				Duration: 20,
				Reason:   "Most of your time is passive; producing beats consuming",
				Intent:   "shift toward active tools",
				Criteria: SuccessCriteria{RequiredEvents: []activity.Type{activity.TypeWhiteboardUsed}}},
			{Kind: KindRoadmapTask, ID: "ab-quiz", Label: "Take a practice quiz",
				Duration: 15,
				Reason:   "Retrieval practice is the fastest hands-on win",
				Intent:   "test instead of reread",
				Criteria: SuccessCriteria{RequiredEvents: []activity.Type{activity.TypeQuizSubmitted}}},
		},
		"maintain_active_tools": {
			{Kind: KindNudge, ID: "ab-keep-going", Label: "Keep using the whiteboard and quizzes",
				Reason:   "Your hands-on habit is working",
				Intent:   "preserve an effective pattern",
				Criteria: SuccessCriteria{MinInteractions: 2}},
		},
	},
	FieldSupportStyle: {
		"gentle_nudges": {
			{Kind: KindRoadmapTask, ID: "ss-ask-one", Label: "Ask one question when you get stuck",
				Duration: 5,
				Reason:   "You rarely ask for help; one question is a low bar",
				Intent:   "normalize help-seeking",
				Criteria: SuccessCriteria{RequiredEvents: []activity.Type{activity.TypeQuestionAsked}}},
			{Kind: KindNudge, ID: "ss-chatbot", Label: "Try the study assistant on a tough concept",
				Reason:   "The assistant lowers the cost of asking",
				Intent:   "offer help without social pressure",
				Criteria: SuccessCriteria{RequiredEvents: []activity.Type{activity.TypeChatbotOpened}}},
		},
		"collaborative_inquiry": {
			{Kind: KindNudge, ID: "ss-discuss", Label: "Bring a question to your next group session",
				Reason:   "You ask good questions; groups amplify them",
				Intent:   "turn questions into discussion",
				Criteria: SuccessCriteria{RequiredEvents: []activity.Type{activity.TypeQuestionAsked}, RequireMode: activity.ModeGroup}},
		},
	},
	FieldCollaborationPressure: {
		"moderate": {
			{Kind: KindRoadmapTask, ID: "cp-group-session", Label: "Join one group study session",
				Duration: 30,
				Reason:   "You benefit from studying with others",
				Intent:   "keep collaboration in the mix",
				Criteria: SuccessCriteria{MinDuration: 20, RequireMode: activity.ModeGroup}},
		},
		// "none" is intentionally unmapped: independent learners get no
		// collaboration action rather than a contrived solo one.
	},
}
