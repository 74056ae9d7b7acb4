package agent

import "github.com/jonathan/interview-screener/internal/nlp"

// faqAnswers holds the canned response for each FAQ intent.
var faqAnswers = map[nlp.Intent]string{
	nlp.IntentRoleDetails: "This is a full-time software developer position. You would be building and " +
		"maintaining backend services as part of a small product team, with code review " +
		"and on-call duties shared across the team.",
	nlp.IntentSalaryInfo: "The compensation band for this role is competitive with the market and is " +
		"finalized based on your experience and interview performance. The recruiter will " +
		"share the exact range before your first interview round.",
	nlp.IntentRequirements: "We are looking for solid programming fundamentals, experience with at least one " +
		"backend language, and comfort working with databases and APIs. Prior production " +
		"experience is preferred but strong fundamentals matter most.",
	nlp.IntentLocation: "The role is based out of our main office with a hybrid arrangement. Partial " +
		"remote work is supported after onboarding, subject to team agreement.",
}

// faqDeflection is spoken when a question does not match any known FAQ.
const faqDeflection = "That is a good question. A human recruiter will reach out to you with the details shortly."

// FAQ answers off-script candidate questions from a static intent lookup.
type FAQ struct{}

// NewFAQ returns the stateless FAQ responder.
func NewFAQ() *FAQ { return &FAQ{} }

// Answer returns the canned paragraph for a known FAQ intent, or a generic
// deflection for anything else.
func (f *FAQ) Answer(intent nlp.Intent) string {
	if answer, ok := faqAnswers[intent]; ok {
		return answer
	}
	return faqDeflection
}

// IsKnown reports whether the intent has a dedicated FAQ answer.
func (f *FAQ) IsKnown(intent nlp.Intent) bool {
	_, ok := faqAnswers[intent]
	return ok
}
