package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyBasicIntents(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		utterance string
		want      Intent
	}{
		{"yes", IntentInterest},
		{"i am interested", IntentInterest},
		{"not interested", IntentNotInterested},
		{"no", IntentNotInterested},
		{"25 days", IntentNoticePeriod},
		{"my notice period is 30 days", IntentNoticePeriod},
		{"monday", IntentAvailability},
		{"i am available on friday", IntentAvailability},
		{"yes that works", IntentConfirm},
		{"no that is not correct", IntentReject},
		{"no questions", IntentNoQuestions},
		{"what is the salary range", IntentSalaryInfo},
		{"where is the office", IntentLocation},
		{"what are the requirements", IntentRequirements},
		{"tell me about the role", IntentRoleDetails},
	}

	for _, tt := range tests {
		t.Run(tt.utterance, func(t *testing.T) {
			got := c.Classify(tt.utterance)
			assert.Equal(t, tt.want, got.Intent, "intent for %q", tt.utterance)
			assert.Greater(t, got.Confidence, 0.0)
		})
	}
}

func TestClassifyEmptyUtterance(t *testing.T) {
	c := NewClassifier()

	got := c.Classify("")
	assert.Equal(t, IntentNone, got.Intent)
	assert.Zero(t, got.Confidence)
	assert.Empty(t, got.Entities)
}

func TestClassifyTieBreakUsesRegistrationOrder(t *testing.T) {
	c := NewClassifier()

	// "12 lakhs" scores identically for current and expected CTC patterns;
	// current_ctc is registered first so it wins for plain Classify.
	got := c.Classify("12 lakhs")
	assert.Equal(t, IntentCurrentCtc, got.Intent)
}

func TestClassifyExpectingResolvesTies(t *testing.T) {
	c := NewClassifier()

	got := c.ClassifyExpecting("18 lakhs", IntentExpectedCtc)
	assert.Equal(t, IntentExpectedCtc, got.Intent)

	// The expected intent only wins ties: it cannot override a strictly
	// better match.
	got = c.ClassifyExpecting("not interested", IntentInterest)
	assert.Equal(t, IntentNotInterested, got.Intent)
}

func TestClassifyEntities(t *testing.T) {
	c := NewClassifier()

	got := c.Classify("i am available on monday")
	assert.Equal(t, IntentAvailability, got.Intent)
	assert.Contains(t, got.Entities, Entity{Kind: EntityDate, Value: "monday"})

	got = c.Classify("around twenty days")
	assert.Contains(t, got.Entities, Entity{Kind: EntityNumber, Value: "twenty"})

	got = c.Classify("25 days")
	assert.Contains(t, got.Entities, Entity{Kind: EntityNumber, Value: "25"})
}

func TestLookupWeekday(t *testing.T) {
	for _, form := range []string{"monday", "next monday", "coming monday"} {
		day, ok := LookupWeekday(form)
		assert.True(t, ok, form)
		assert.Equal(t, "Monday", day.String())
	}

	_, ok := LookupWeekday("yesterday")
	assert.False(t, ok)
}
