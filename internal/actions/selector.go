package actions

import "github.com/abhinav-rk/studyloop/internal/learnstate"

const (
	// MaxPerGeneration caps how many actions one roadmap generation yields.
	MaxPerGeneration = 3

	// HistoryCap bounds the rolling history of shown action ids.
	HistoryCap = 20
)

// Select picks up to MaxPerGeneration actions for the given decisions,
// preferring actions whose id is not in history. When every candidate for
// a field has been seen, the first candidate repeats rather than leaving
// the learner with nothing. The returned history has the newly chosen ids
// appended and is trimmed to the most recent HistoryCap entries.
func Select(d learnstate.Decisions, history []string) ([]Action, []string) {
	seen := make(map[string]bool, len(history))
	for _, id := range history {
		seen[id] = true
	}

	values := map[string]string{
		FieldSessionDesign:         string(d.SessionDesign),
		FieldLearningPace:          string(d.LearningPace),
		FieldActivityBias:          string(d.ActivityBias),
		FieldSupportStyle:          string(d.SupportStyle),
		FieldCollaborationPressure: string(d.CollaborationPressure),
	}

	var chosen []Action
	for _, field := range FieldOrder {
		if len(chosen) >= MaxPerGeneration {
			break
		}
		candidates, ok := Pool[field][values[field]]
		if !ok || len(candidates) == 0 {
			continue
		}

		pick := candidates[0]
		for _, c := range candidates {
			if !seen[c.ID] {
				pick = c
				break
			}
		}
		chosen = append(chosen, pick)
		seen[pick.ID] = true
	}

	// Append onto a copy so the caller's slice is never written through.
	updated := make([]string, len(history), len(history)+len(chosen))
	copy(updated, history)
	for _, a := range chosen {
		updated = append(updated, a.ID)
	}
	if len(updated) > HistoryCap {
		updated = updated[len(updated)-HistoryCap:]
	}

	return chosen, updated
}
