package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Wellness modules a user can be routed toward. The order of KnownModules is the
// tie-break order used when ranking.
const (
	ModuleJhana    = "jhana"
	ModuleLearning = "learning"
	ModuleRoutine  = "routine"
)

var KnownModules = []string{ModuleJhana, ModuleLearning, ModuleRoutine}

// AssessmentAnswer is one answered question and the modules its option points toward.
type AssessmentAnswer struct {
	QuestionID int      `json:"question_id"`
	OptionID   string   `json:"option_id"`
	Modules    []string `json:"modules"`
}

// ModuleScores maps a module id to the number of answers that voted for it.
type ModuleScores map[string]int

// RecommendationResult is the outcome of scoring one assessment.
type RecommendationResult struct {
	RecommendedModules []string     `json:"recommended_modules"`
	AIMessage          string       `json:"ai_message"`
	ModuleScores       ModuleScores `json:"module_scores"`
}

// TallyAnswers counts, per module, how many answers reference it. Every known module is
// present even with no votes; unrecognised ids get their own key. A module repeated
// within one answer is counted once.
func TallyAnswers(answers []AssessmentAnswer) ModuleScores {
	scores := make(ModuleScores, len(KnownModules))
	for _, m := range KnownModules {
		scores[m] = 0
	}
	for _, answer := range answers {
		seen := make(map[string]struct{}, len(answer.Modules))
		for _, m := range answer.Modules {
			if _, dup := seen[m]; dup {
				continue
			}
			seen[m] = struct{}{}
			scores[m]++
		}
	}
	return scores
}

// RankModules orders module ids by descending score. Ties keep KnownModules order;
// unknown ids follow all known ids and sort lexicographically among themselves.
func RankModules(scores ModuleScores) []string {
	ranked := make([]string, 0, len(scores))
	for m := range scores {
		ranked = append(ranked, m)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if scores[a] != scores[b] {
			return scores[a] > scores[b]
		}
		pa, pb := modulePriority(a), modulePriority(b)
		if pa != pb {
			return pa < pb
		}
		return a < b
	})
	return ranked
}

func modulePriority(module string) int {
	for i, m := range KnownModules {
		if m == module {
			return i
		}
	}
	return len(KnownModules)
}

// Transcript renders the answers the way they are shown to the text generator.
func Transcript(answers []AssessmentAnswer) string {
	lines := make([]string, 0, len(answers))
	for _, a := range answers {
		lines = append(lines, fmt.Sprintf("Q%d: Selected option '%s'", a.QuestionID, a.OptionID))
	}
	return strings.Join(lines, "\n")
}

const fallbackTemplate = "Based on your responses, we recommend starting with %s, followed by %s and %s. " +
	"You're taking an important step toward personal growth!"

// FallbackMessage is the deterministic message used when no generated text is available.
// It names the first three ranked modules in order. A shorter list is completed from
// KnownModules, skipping ids it already names.
func FallbackMessage(ranked []string) string {
	top := make([]string, 0, 3)
	seen := make(map[string]struct{}, 3)
	add := func(m string) {
		if _, dup := seen[m]; dup || len(top) == 3 {
			return
		}
		seen[m] = struct{}{}
		top = append(top, m)
	}
	for _, m := range ranked {
		add(m)
	}
	for _, m := range KnownModules {
		add(m)
	}
	return fmt.Sprintf(fallbackTemplate, top[0], top[1], top[2])
}

// AssembleRecommendation bundles the pipeline outputs into one result.
func AssembleRecommendation(ranked []string, message string, scores ModuleScores) *RecommendationResult {
	return &RecommendationResult{
		RecommendedModules: ranked,
		AIMessage:          message,
		ModuleScores:       scores,
	}
}
