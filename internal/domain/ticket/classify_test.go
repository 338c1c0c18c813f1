package ticket

import (
	"testing"

	"github.com/stretchr/testify/assert"

	vo "deskd/internal/domain/ticket/valueobjects"
)

func TestClassify_TopicTags(t *testing.T) {
	tests := []struct {
		name        string
		subject     string
		description string
		wantTags    []string
	}{
		{
			"billing keywords",
			"Double charge",
			"We were invoiced twice this month.",
			[]string{"billing"},
		},
		{
			"account keywords",
			"Locked out",
			"I forgot my password and need to sign in.",
			[]string{"account"},
		},
		{
			"technical keywords",
			"Export crash",
			"The report export fails with an error every time.",
			[]string{"technical"},
		},
		{
			"how-to keywords",
			"Question",
			"How do I add a teammate to my workspace?",
			[]string{"how-to"},
		},
		{
			"no recognized topic",
			"Feedback",
			"Really enjoying the product so far.",
			nil,
		},
		{
			"first topic in the ranking wins",
			"Refund for broken feature",
			"The refund never arrived and the page is broken.",
			[]string{"billing"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.subject, tt.description)
			assert.Equal(t, tt.wantTags, got.Tags)
		})
	}
}

func TestClassify_PrioritySuggestion(t *testing.T) {
	tests := []struct {
		name        string
		subject     string
		description string
		want        vo.Priority
	}{
		{"urgency keywords", "Outage", "Customers report an outage since 9am.", vo.PriorityUrgent},
		{"blocked user", "Stuck", "I am unable to submit my timesheet.", vo.PriorityHigh},
		{"urgent beats high", "Critical", "We cannot ship, this is critical.", vo.PriorityUrgent},
		{"nothing notable", "Small request", "Please rename my workspace.", vo.PriorityNormal},
		{"case-insensitive", "URGENT: invoice wrong", "See attached.", vo.PriorityUrgent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.subject, tt.description)
			assert.Equal(t, tt.want, got.Priority)
		})
	}
}
