package nlp

import (
	"strings"
	"unicode"
)

// Classifier scores utterances against the static corpus. Training happens
// once in NewClassifier; Classify performs no allocation-heavy work beyond
// tokenizing the utterance.
type Classifier struct {
	entries []trainedEntry
}

type trainedEntry struct {
	tokens []string
	intent Intent
}

// NewClassifier tokenizes every corpus pattern and returns a ready classifier.
func NewClassifier() *Classifier {
	c := &Classifier{entries: make([]trainedEntry, 0, len(corpus))}
	for _, e := range corpus {
		c.entries = append(c.entries, trainedEntry{
			tokens: tokenize(e.pattern),
			intent: e.intent,
		})
	}
	return c
}

// Classify returns the best-matching intent for an utterance along with any
// recognized entities. Ties are broken by corpus registration order: the
// entry registered first wins.
func (c *Classifier) Classify(utterance string) ClassificationResult {
	return c.classify(utterance, IntentNone)
}

// ClassifyExpecting behaves like Classify but, when several intents share the
// top score, prefers the expected intent if it is among them. The dialogue
// engine uses this per turn so that context-free phrases like "12 lakhs",
// which score identically for current and expected CTC, resolve to the
// question that was actually asked.
func (c *Classifier) ClassifyExpecting(utterance string, expected Intent) ClassificationResult {
	return c.classify(utterance, expected)
}

func (c *Classifier) classify(utterance string, expected Intent) ClassificationResult {
	tokens := tokenize(utterance)
	result := ClassificationResult{Intent: IntentNone, Entities: extractEntities(tokens)}
	if len(tokens) == 0 {
		return result
	}

	best := 0.0
	bestIntent := IntentNone
	for _, entry := range c.entries {
		score := scoreEntry(entry.tokens, tokens)
		if score > best {
			best = score
			bestIntent = entry.intent
			continue
		}
		// Equal score: an already-selected intent keeps its registration-order
		// priority unless the expected intent catches up to the same score.
		if score == best && score > 0 && entry.intent == expected && bestIntent != expected {
			bestIntent = entry.intent
		}
	}

	result.Intent = bestIntent
	result.Confidence = best
	return result
}

// scoreEntry computes precision times recall of pattern tokens against the
// utterance tokens. Placeholders match numeric or weekday tokens.
func scoreEntry(pattern, utterance []string) float64 {
	matched := 0
	for _, p := range pattern {
		for _, u := range utterance {
			if tokenMatches(p, u) {
				matched++
				break
			}
		}
	}
	if matched == 0 {
		return 0
	}
	precision := float64(matched) / float64(len(pattern))
	recall := float64(matched) / float64(len(utterance))
	return precision * recall
}

func tokenMatches(pattern, token string) bool {
	switch pattern {
	case placeholderNumber:
		return isNumericToken(token)
	case placeholderDate:
		_, ok := weekdays[token]
		return ok
	default:
		return pattern == token
	}
}

func isNumericToken(token string) bool {
	if token == "" {
		return false
	}
	digits := true
	for _, r := range token {
		if !unicode.IsDigit(r) {
			digits = false
			break
		}
	}
	if digits {
		return true
	}
	_, ok := cardinalWords[token]
	return ok
}

// extractEntities scans tokens for the first numeric span and the first
// weekday name. Entities are reported regardless of the winning intent.
func extractEntities(tokens []string) []Entity {
	var entities []Entity
	foundNumber, foundDate := false, false
	for _, tok := range tokens {
		if !foundNumber && isNumericToken(tok) {
			entities = append(entities, Entity{Kind: EntityNumber, Value: tok})
			foundNumber = true
		}
		if !foundDate {
			if _, ok := weekdays[tok]; ok {
				entities = append(entities, Entity{Kind: EntityDate, Value: tok})
				foundDate = true
			}
		}
	}
	return entities
}

// tokenize lowercases and splits on whitespace, trimming punctuation from each
// token. Placeholder tokens pass through untouched.
func tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if f == placeholderNumber || f == placeholderDate {
			tokens = append(tokens, f)
			continue
		}
		f = strings.TrimFunc(f, func(r rune) bool {
			return unicode.IsPunct(r) && r != '%'
		})
		if f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}
