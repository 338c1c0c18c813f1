package ticket

import (
	"strings"

	vo "deskd/internal/domain/ticket/valueobjects"
)

// topic groups the keywords that signal a support topic. Order is a
// ranking: the first topic with a hit wins.
type topic struct {
	tag      string
	keywords []string
}

var topics = []topic{
	{tag: "billing", keywords: []string{"invoice", "refund", "charge", "payment", "billing", "subscription"}},
	{tag: "account", keywords: []string{"password", "login", "log in", "sign in", "locked out", "2fa", "account", "profile"}},
	{tag: "technical", keywords: []string{"error", "crash", "bug", "broken", "exception", "timeout", "fails", "failed"}},
	{tag: "how-to", keywords: []string{"how do i", "how to", "where can i", "documentation", "instructions"}},
}

var urgentKeywords = []string{
	"outage", "urgent", "critical", "emergency", "data loss",
	"security breach", "site is down", "production is down",
}

var highKeywords = []string{"cannot", "can't", "unable", "blocked", "asap"}

// Suggestion is what intake classification proposes for a new ticket.
// Tags carry the detected topic so routing rules with tag conditions can
// match tickets whose creator supplied none.
type Suggestion struct {
	Priority vo.Priority
	Tags     []string
}

// Classify derives a priority and topic tags from the free text of a new
// ticket. It is deterministic keyword matching over the lowercased subject
// and description; when nothing matches it suggests normal priority and no
// tags.
func Classify(subject, description string) Suggestion {
	text := strings.ToLower(subject + " " + description)

	suggestion := Suggestion{Priority: vo.PriorityNormal}
	for _, t := range topics {
		if containsAny(text, t.keywords) {
			suggestion.Tags = []string{t.tag}
			break
		}
	}

	switch {
	case containsAny(text, urgentKeywords):
		suggestion.Priority = vo.PriorityUrgent
	case containsAny(text, highKeywords):
		suggestion.Priority = vo.PriorityHigh
	}

	return suggestion
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
