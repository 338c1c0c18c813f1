package routing

import (
	"sort"
	"strings"

	ticketvo "deskd/internal/domain/ticket/valueobjects"
	"deskd/internal/domain/user"
)

// TicketAttributes is the projection of a ticket that rules match against.
type TicketAttributes struct {
	Priority     ticketvo.Priority
	Tags         []string
	CustomFields map[string]string
}

// Candidate pairs an agent with its current workload for selection.
type Candidate struct {
	Agent         *user.User
	ActiveTickets int
}

// MatchRules evaluates rules against ticket attributes and returns the
// matches sorted by weight, highest first. Inactive rules never match. The
// sort is stable so equal-weight rules keep their input order.
func MatchRules(rules []*Rule, attrs TicketAttributes) []*Rule {
	matched := make([]*Rule, 0, len(rules))
	for _, rule := range rules {
		if !rule.IsActive() {
			continue
		}
		if ruleMatches(rule.Conditions(), attrs) {
			matched = append(matched, rule)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Weight() > matched[j].Weight()
	})

	return matched
}

func ruleMatches(c Conditions, attrs TicketAttributes) bool {
	if c.Priority != nil && *c.Priority != attrs.Priority {
		return false
	}

	if len(c.Tags) > 0 && !hasAnyTag(attrs.Tags, c.Tags) {
		return false
	}

	for key, want := range c.CustomFields {
		got, ok := attrs.CustomFields[key]
		if !ok || got != want {
			return false
		}
	}

	return true
}

// hasAnyTag reports whether any wanted tag appears in the ticket's tags.
// Comparison is case-insensitive.
func hasAnyTag(ticketTags, wantedTags []string) bool {
	for _, wanted := range wantedTags {
		for _, tag := range ticketTags {
			if strings.EqualFold(tag, wanted) {
				return true
			}
		}
	}
	return false
}

// SelectAgent picks the least-loaded eligible candidate. A candidate is
// eligible when its agent is active and has every required skill; an empty
// requirement list makes every active agent eligible. Workload ties go to
// the earliest candidate in the input, so callers should present candidates
// in a deterministic order. Returns nil when no candidate qualifies.
func SelectAgent(candidates []Candidate, requiredSkills []string) *Candidate {
	var best *Candidate
	for i := range candidates {
		candidate := &candidates[i]
		if candidate.Agent == nil || !candidate.Agent.IsActive() {
			continue
		}
		if !candidate.Agent.HasAllSkills(requiredSkills) {
			continue
		}
		if best == nil || candidate.ActiveTickets < best.ActiveTickets {
			best = candidate
		}
	}
	return best
}
