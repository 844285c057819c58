package usecase

import (
	"regexp"
	"strings"

	"github.com/mariasoturna/AssistenteVirtual/internal/model"
)

var (
	categoryTagRe = regexp.MustCompile(`categoria:([\pL]+)`)
	priorityTagRe = regexp.MustCompile(`prioridade:([\pL]+)`)
)

// classifyAction picks the action for the sentence: first keyword family in
// actionFamilies order wins, defaulting to add.
func classifyAction(text string) model.Action {
	for _, family := range actionFamilies {
		for _, keyword := range family.Keywords {
			if strings.Contains(text, keyword) {
				return family.Action
			}
		}
	}
	return model.ActionAdd
}

// classifyCategory picks the task category. An explicit "categoria:<word>"
// tag overrides the keyword scoring; otherwise the category with the highest
// keyword count wins, ties and all-zero falling back to general. Iteration
// follows model.Categories so equal nonzero scores break toward the first
// category in that fixed order.
func classifyCategory(text string) model.Category {
	if m := categoryTagRe.FindStringSubmatch(text); m != nil && model.ValidCategory(m[1]) {
		return model.Category(m[1])
	}

	best, bestScore := model.CategoryGeneral, 0
	for _, category := range model.Categories {
		score := 0
		for _, keyword := range categoryKeywords[category] {
			if strings.Contains(text, keyword) {
				score++
			}
		}
		if score > bestScore {
			best, bestScore = category, score
		}
	}
	return best
}

// classifyPriority picks the priority. An explicit "prioridade:<word>" tag
// overrides; otherwise the first keyword family matched in model.Priorities
// order wins, defaulting to normal.
func classifyPriority(text string) model.Priority {
	if m := priorityTagRe.FindStringSubmatch(text); m != nil && model.ValidPriority(m[1]) {
		return model.Priority(m[1])
	}

	for _, priority := range model.Priorities {
		for _, keyword := range priorityKeywords[priority] {
			if strings.Contains(text, keyword) {
				return priority
			}
		}
	}
	return model.PriorityNormal
}
