// Package nlp provides the intent classifier and slot extraction used by the
// interview agent. The classifier is trained once from a static corpus and is
// fully deterministic: no network calls, no model downloads.
package nlp

import "time"

// Intent is a closed set of utterance categories recognized by the classifier.
type Intent int

// Known intents, in corpus registration order. The zero value IntentNone means
// no intent scored above zero for an utterance.
const (
	IntentNone Intent = iota
	IntentInterest
	IntentNotInterested
	IntentNoticePeriod
	IntentCurrentCtc
	IntentExpectedCtc
	IntentAvailability
	IntentRoleDetails
	IntentSalaryInfo
	IntentRequirements
	IntentLocation
	IntentConfirm
	IntentReject
	IntentNoQuestions
)

var intentNames = map[Intent]string{
	IntentNone:          "none",
	IntentInterest:      "interest",
	IntentNotInterested: "not_interested",
	IntentNoticePeriod:  "notice_period",
	IntentCurrentCtc:    "current_ctc",
	IntentExpectedCtc:   "expected_ctc",
	IntentAvailability:  "availability",
	IntentRoleDetails:   "role_details",
	IntentSalaryInfo:    "salary_info",
	IntentRequirements:  "requirements",
	IntentLocation:      "location",
	IntentConfirm:       "confirm",
	IntentReject:        "reject",
	IntentNoQuestions:   "no_questions",
}

func (i Intent) String() string {
	if name, ok := intentNames[i]; ok {
		return name
	}
	return "unknown"
}

// EntityKind identifies the type of a recognized entity span.
type EntityKind string

// Entity kinds produced by the classifier.
const (
	EntityNumber EntityKind = "number"
	EntityDate   EntityKind = "date"
)

// Entity is a recognized span inside an utterance.
type Entity struct {
	Kind  EntityKind `json:"kind"`
	Value string     `json:"value"`
}

// ClassificationResult is the outcome of classifying one utterance. It is
// produced once per turn and never mutated.
type ClassificationResult struct {
	Intent     Intent   `json:"intent"`
	Confidence float64  `json:"confidence"`
	Entities   []Entity `json:"entities,omitempty"`
}

// Placeholder tokens used in corpus patterns. A number placeholder matches a
// digit run or a cardinal word; a date placeholder matches a weekday name.
const (
	placeholderNumber = "%number%"
	placeholderDate   = "%date%"
)

// corpusEntry is one (utterance pattern, intent) training row.
type corpusEntry struct {
	pattern string
	intent  Intent
}

// corpus is the full training set, declared as static data and registered in
// order. Registration order is the documented tie-break for equal scores.
var corpus = []corpusEntry{
	{"yes", IntentInterest},
	{"yeah", IntentInterest},
	{"sure", IntentInterest},
	{"of course", IntentInterest},
	{"definitely", IntentInterest},
	{"i am interested", IntentInterest},
	{"sounds good", IntentInterest},
	{"i would like to", IntentInterest},

	{"no", IntentNotInterested},
	{"nope", IntentNotInterested},
	{"not interested", IntentNotInterested},
	{"not at this time", IntentNotInterested},
	{"i will pass", IntentNotInterested},

	{"my notice period is %number% days", IntentNoticePeriod},
	{"%number% days notice", IntentNoticePeriod},
	{"%number% days", IntentNoticePeriod},
	{"it is %number% days", IntentNoticePeriod},
	{"around %number% days", IntentNoticePeriod},
	{"%number% days notice period", IntentNoticePeriod},
	{"notice period of %number% days", IntentNoticePeriod},
	{"my notice period is %number%", IntentNoticePeriod},
	{"i have %number% days notice", IntentNoticePeriod},

	{"my current ctc is %number% lakhs", IntentCurrentCtc},
	{"i make %number% lakhs", IntentCurrentCtc},
	{"currently %number% lakhs", IntentCurrentCtc},
	{"current salary is %number% lakhs", IntentCurrentCtc},
	{"%number% lakhs currently", IntentCurrentCtc},
	{"my current salary is %number% lakhs", IntentCurrentCtc},
	{"i am earning %number% lakhs", IntentCurrentCtc},

	{"my expected ctc is %number% lakhs", IntentExpectedCtc},
	{"i expect %number% lakhs", IntentExpectedCtc},
	{"looking for %number% lakhs", IntentExpectedCtc},
	{"expecting %number% lakhs", IntentExpectedCtc},
	{"%number% lakhs expected", IntentExpectedCtc},
	{"i would like %number% lakhs", IntentExpectedCtc},
	{"my expected salary is %number% lakhs", IntentExpectedCtc},

	{"i am available on %date%", IntentAvailability},
	{"available %date%", IntentAvailability},
	{"can do %date%", IntentAvailability},
	{"%date% works for me", IntentAvailability},
	{"how about %date%", IntentAvailability},
	{"next %date%", IntentAvailability},
	{"%date% is good", IntentAvailability},

	{"what does the role involve", IntentRoleDetails},
	{"tell me about the role", IntentRoleDetails},
	{"what would i be working on", IntentRoleDetails},
	{"can you describe the position", IntentRoleDetails},
	{"what is the job about", IntentRoleDetails},

	{"what is the salary range", IntentSalaryInfo},
	{"how much does it pay", IntentSalaryInfo},
	{"what is the compensation", IntentSalaryInfo},
	{"what salary are you offering", IntentSalaryInfo},

	{"what are the requirements", IntentRequirements},
	{"what skills are needed", IntentRequirements},
	{"what experience do you need", IntentRequirements},
	{"what qualifications are required", IntentRequirements},

	{"where is the office", IntentLocation},
	{"where is the job located", IntentLocation},
	{"is it remote", IntentLocation},
	{"can i work from home", IntentLocation},

	{"yes that works", IntentConfirm},
	{"that works for me", IntentConfirm},
	{"that is correct", IntentConfirm},
	{"sounds right", IntentConfirm},
	{"yes please go ahead", IntentConfirm},
	{"perfect", IntentConfirm},

	{"no that is not correct", IntentReject},
	{"that is not correct", IntentReject},
	{"that is wrong", IntentReject},
	{"no that does not work", IntentReject},
	{"please reschedule", IntentReject},
	{"can we reschedule", IntentReject},

	{"no questions", IntentNoQuestions},
	{"i have no questions", IntentNoQuestions},
	{"nothing else", IntentNoQuestions},
	{"no i am good", IntentNoQuestions},
	{"that is all", IntentNoQuestions},
}

// weekdays maps each weekday name to its canonical value. The "next <day>" and
// "coming <day>" synonyms are handled at the token level: the qualifier words
// are not part of the lexicon, so a bare weekday token resolves either form.
var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// LookupWeekday resolves a weekday name, including "next monday" or
// "coming friday" forms, to its canonical weekday value.
func LookupWeekday(name string) (time.Weekday, bool) {
	for _, tok := range tokenize(name) {
		if day, ok := weekdays[tok]; ok {
			return day, true
		}
	}
	return time.Sunday, false
}
