package agent

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/interview-screener/internal/nlp"
)

// InterviewContext carries the denormalized display names looked up before
// the first prompt.
type InterviewContext struct {
	CandidateName string
	JobTitle      string
}

// ContextLookup resolves candidate and job display names. Implementations
// return a NotFoundError when either record is missing.
type ContextLookup interface {
	Lookup(ctx context.Context, candidateID, jobID uuid.UUID) (*InterviewContext, error)
}

// ResultSink persists one finished interview. The engine calls it
// fire-and-forget: failures are logged and never surface to the candidate.
type ResultSink interface {
	Save(ctx context.Context, result *InterviewResult) error
}

// InterviewResult is the terminal projection of one interview session.
// Created once at completion or early termination, never updated after.
type InterviewResult struct {
	CandidateID      uuid.UUID `json:"candidate_id"`
	JobID            uuid.UUID `json:"job_id"`
	CandidateName    string    `json:"candidate_name,omitempty"`
	JobTitle         string    `json:"job_title,omitempty"`
	Interested       *bool     `json:"interested,omitempty"`
	NoticePeriodDays *int      `json:"notice_period_days,omitempty"`
	CurrentCtcLakhs  *float64  `json:"current_ctc_lakhs,omitempty"`
	ExpectedCtcLakhs *float64  `json:"expected_ctc_lakhs,omitempty"`
	AvailableDate    *string   `json:"available_date,omitempty"`
	Confirmed        *bool     `json:"confirmed,omitempty"`
}

// sessionState enumerates the turn-taking states of one interview.
type sessionState int

const (
	stateGreeting sessionState = iota
	stateInterestCheck
	stateNoticePeriod
	stateCurrentCtc
	stateExpectedCtc
	stateAvailability
	stateConfirmationCheck
	stateQuestionHandling
	stateDone
)

// session is the ephemeral per-invocation state. It is owned exclusively by
// one Conduct call; the engine performs no internal parallelism.
type session struct {
	result         *InterviewResult
	scheduledDay   string // canonical weekday name once availability resolves
	lastTranscript string
	lastClass      nlp.ClassificationResult
}

// persistTimeout bounds the detached result write.
const persistTimeout = 15 * time.Second

// Interviewer is the dialogue engine. It drives the fixed question script
// against one candidate using the shared speech subsystem handle obtained
// from the lifecycle manager.
type Interviewer struct {
	sub    *Subsystem
	lookup ContextLookup
	sink   ResultSink
	faq    *FAQ
	log    *zap.Logger
	now    func() time.Time
}

// InterviewerOption customizes the engine.
type InterviewerOption func(*Interviewer)

// WithClock substitutes the time source used to resolve weekday answers.
func WithClock(now func() time.Time) InterviewerOption {
	return func(iv *Interviewer) { iv.now = now }
}

// NewInterviewer builds a dialogue engine around a ready speech subsystem.
func NewInterviewer(sub *Subsystem, lookup ContextLookup, sink ResultSink, log *zap.Logger, opts ...InterviewerOption) *Interviewer {
	iv := &Interviewer{
		sub:    sub,
		lookup: lookup,
		sink:   sink,
		faq:    NewFAQ(),
		log:    log,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(iv)
	}
	return iv
}

// Conduct runs the full interview for one candidate/job pair and returns the
// structured result. Collaborator failures abort the remaining turns: the
// engine speaks a best-effort apology and propagates the error.
func (iv *Interviewer) Conduct(ctx context.Context, candidateID, jobID uuid.UUID) (*InterviewResult, error) {
	info, err := iv.lookup.Lookup(ctx, candidateID, jobID)
	if err != nil {
		return nil, err
	}

	s := &session{result: &InterviewResult{
		CandidateID:   candidateID,
		JobID:         jobID,
		CandidateName: info.CandidateName,
		JobTitle:      info.JobTitle,
	}}

	iv.log.Info("starting interview",
		zap.String("candidate", info.CandidateName),
		zap.String("job", info.JobTitle))

	state := stateGreeting
	for state != stateDone {
		next, err := iv.step(ctx, s, state)
		if err != nil {
			iv.apologize(ctx)
			return nil, err
		}
		state = next
	}

	iv.persist(s.result)
	return s.result, nil
}

// step executes one state and returns the next. The switch is exhaustive over
// the session states.
func (iv *Interviewer) step(ctx context.Context, s *session, state sessionState) (sessionState, error) {
	switch state {
	case stateGreeting:
		greeting := fmt.Sprintf("Hello %s! This is a screening call about the %s position.",
			s.result.CandidateName, s.result.JobTitle)
		if err := iv.speak(ctx, greeting); err != nil {
			return stateDone, err
		}
		return stateInterestCheck, nil

	case stateInterestCheck:
		prompt := fmt.Sprintf("Are you interested in the %s position?", s.result.JobTitle)
		if err := iv.turn(ctx, s, prompt, nlp.IntentInterest); err != nil {
			return stateDone, err
		}
		if s.lastClass.Intent == nlp.IntentNotInterested {
			s.result.Interested = boolPtr(false)
			if err := iv.speak(ctx, "Thank you for your time. Have a great day!"); err != nil {
				return stateDone, err
			}
			return stateDone, nil
		}
		s.result.Interested = boolPtr(true)
		return stateNoticePeriod, nil

	case stateNoticePeriod:
		if err := iv.turn(ctx, s, "What is your notice period in days?", nlp.IntentNoticePeriod); err != nil {
			return stateDone, err
		}
		if s.lastClass.Intent == nlp.IntentNoticePeriod {
			if v, ok := nlp.ExtractNumber(s.lastTranscript); ok {
				days := int(v)
				s.result.NoticePeriodDays = &days
			}
		}
		return stateCurrentCtc, nil

	case stateCurrentCtc:
		if err := iv.turn(ctx, s, "What is your current CTC in lakhs per annum?", nlp.IntentCurrentCtc); err != nil {
			return stateDone, err
		}
		if s.lastClass.Intent == nlp.IntentCurrentCtc {
			if v, ok := nlp.ExtractNumber(s.lastTranscript); ok {
				s.result.CurrentCtcLakhs = &v
			}
		}
		return stateExpectedCtc, nil

	case stateExpectedCtc:
		if err := iv.turn(ctx, s, "What is your expected CTC in lakhs per annum?", nlp.IntentExpectedCtc); err != nil {
			return stateDone, err
		}
		if s.lastClass.Intent == nlp.IntentExpectedCtc {
			if v, ok := nlp.ExtractNumber(s.lastTranscript); ok {
				s.result.ExpectedCtcLakhs = &v
			}
		}
		return stateAvailability, nil

	case stateAvailability:
		prompt := "When would you be available to start? Please mention a day of the week."
		if err := iv.turn(ctx, s, prompt, nlp.IntentAvailability); err != nil {
			return stateDone, err
		}
		if s.lastClass.Intent == nlp.IntentAvailability {
			for _, entity := range s.lastClass.Entities {
				if entity.Kind != nlp.EntityDate {
					continue
				}
				date, err := nlp.ResolveNextWeekday(entity.Value, iv.now())
				if err != nil {
					iv.log.Warn("could not resolve weekday", zap.String("value", entity.Value), zap.Error(err))
					break
				}
				s.result.AvailableDate = &date
				s.scheduledDay = nlp.CanonicalWeekday(entity.Value)
				break
			}
		}
		return stateConfirmationCheck, nil

	case stateConfirmationCheck:
		prompt := "Does that work for you?"
		if s.scheduledDay != "" {
			prompt = fmt.Sprintf("We've scheduled your interview on next %s. Does that work for you?", s.scheduledDay)
		}
		if err := iv.turn(ctx, s, prompt, nlp.IntentConfirm); err != nil {
			return stateDone, err
		}
		switch s.lastClass.Intent {
		case nlp.IntentReject:
			s.result.Confirmed = boolPtr(false)
			if err := iv.speak(ctx, "No problem, a recruiter will reach out to reschedule. Have a great day!"); err != nil {
				return stateDone, err
			}
			return stateDone, nil
		case nlp.IntentConfirm:
			s.result.Confirmed = boolPtr(true)
		}
		return stateQuestionHandling, nil

	case stateQuestionHandling:
		if err := iv.turn(ctx, s, "Do you have any questions about the role?", nlp.IntentNoQuestions); err != nil {
			return stateDone, err
		}
		var reply string
		switch {
		case s.lastClass.Intent == nlp.IntentNoQuestions:
			reply = "Alright."
		case iv.faq.IsKnown(s.lastClass.Intent):
			reply = iv.faq.Answer(s.lastClass.Intent)
		default:
			reply = faqDeflection
		}
		if err := iv.speak(ctx, reply); err != nil {
			return stateDone, err
		}
		if err := iv.speak(ctx, iv.summary(s.result)); err != nil {
			return stateDone, err
		}
		return stateDone, nil

	case stateDone:
		return stateDone, nil
	}
	return stateDone, fmt.Errorf("unknown session state %d", state)
}

// turn runs one prompt/listen/classify cycle, leaving the transcript and
// classification on the session.
func (iv *Interviewer) turn(ctx context.Context, s *session, prompt string, expected nlp.Intent) error {
	if err := iv.speak(ctx, prompt); err != nil {
		return err
	}

	clip, err := iv.sub.Recorder.Record(ctx)
	if err != nil {
		return &RecognitionError{Stage: "capture", Err: err}
	}
	transcript, err := iv.sub.Transcriber.Transcribe(ctx, clip)
	if err != nil {
		return &RecognitionError{Stage: "transcription", Err: err}
	}

	s.lastTranscript = transcript
	s.lastClass = iv.sub.Classifier.ClassifyExpecting(transcript, expected)

	iv.log.Info("turn complete",
		zap.String("expected", expected.String()),
		zap.String("intent", s.lastClass.Intent.String()),
		zap.Float64("confidence", s.lastClass.Confidence),
		zap.String("transcript", transcript))
	return nil
}

func (iv *Interviewer) speak(ctx context.Context, text string) error {
	if err := iv.sub.Synthesizer.Speak(ctx, text); err != nil {
		return &RecognitionError{Stage: "synthesis", Err: err}
	}
	return nil
}

// apologize makes a best-effort attempt to close the call politely after a
// collaborator failure. Its own errors are ignored.
func (iv *Interviewer) apologize(ctx context.Context) {
	err := iv.sub.Synthesizer.Speak(ctx,
		"I apologize, but there was an error during the interview. Please try again later.")
	if err != nil {
		iv.log.Warn("apology playback failed", zap.Error(err))
	}
}

// summary builds the spoken recap of the collected slots, in fixed order.
func (iv *Interviewer) summary(r *InterviewResult) string {
	var b strings.Builder
	b.WriteString("Thank you for your responses. Let me summarize: ")
	if r.NoticePeriodDays != nil {
		fmt.Fprintf(&b, "Your notice period is %d days. ", *r.NoticePeriodDays)
	}
	if r.CurrentCtcLakhs != nil {
		fmt.Fprintf(&b, "Your current CTC is %s lakhs. ", formatLakhs(*r.CurrentCtcLakhs))
	}
	if r.ExpectedCtcLakhs != nil {
		fmt.Fprintf(&b, "Your expected CTC is %s lakhs. ", formatLakhs(*r.ExpectedCtcLakhs))
	}
	if r.AvailableDate != nil {
		fmt.Fprintf(&b, "You can start on %s. ", *r.AvailableDate)
	}
	b.WriteString("We will get back to you soon. Have a great day!")
	return b.String()
}

// persist writes the result without blocking the caller. A failed write is a
// logged event only; the candidate-facing flow has already finished.
func (iv *Interviewer) persist(result *InterviewResult) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		if err := iv.sink.Save(ctx, result); err != nil {
			iv.log.Error("failed to persist interview result",
				zap.String("candidate_id", result.CandidateID.String()),
				zap.String("job_id", result.JobID.String()),
				zap.Error(err))
		}
	}()
}

func formatLakhs(v float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}

func boolPtr(b bool) *bool { return &b }
