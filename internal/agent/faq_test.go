package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/interview-screener/internal/nlp"
)

func TestFAQAnswersKnownIntents(t *testing.T) {
	faq := NewFAQ()

	for _, intent := range []nlp.Intent{
		nlp.IntentRoleDetails,
		nlp.IntentSalaryInfo,
		nlp.IntentRequirements,
		nlp.IntentLocation,
	} {
		assert.True(t, faq.IsKnown(intent), intent.String())
		assert.NotEqual(t, faqDeflection, faq.Answer(intent), intent.String())
	}
}

func TestFAQDeflectsUnknownIntents(t *testing.T) {
	faq := NewFAQ()

	assert.False(t, faq.IsKnown(nlp.IntentInterest))
	assert.Equal(t, faqDeflection, faq.Answer(nlp.IntentInterest))
	assert.Equal(t, faqDeflection, faq.Answer(nlp.IntentNone))
}
