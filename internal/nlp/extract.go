package nlp

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// cardinalWords maps spoken number words to their values. Covers zero through
// twenty, the tens, and the hundred/thousand multipliers.
var cardinalWords = map[string]float64{
	"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14, "fifteen": 15,
	"sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19, "twenty": 20,
	"thirty": 30, "forty": 40, "fifty": 50, "sixty": 60, "seventy": 70,
	"eighty": 80, "ninety": 90, "hundred": 100, "thousand": 1000,
}

const lakh = 100000

var digitRun = regexp.MustCompile(`\d+`)

// ExtractNumber parses a number out of free-form utterance text.
//
// A contiguous digit run wins outright. Otherwise tokens are scanned left to
// right accumulating cardinal words: hundred/thousand multiply the running
// total, other words add to it, and "lakh"/"lakhs" multiplies by 100,000
// (treating an empty running total as 1). Scanning stops at the first
// unrelated token once a number phrase has begun. Totals of at least one lakh
// are normalized back to lakh units, so "five lakhs" extracts as 5.
func ExtractNumber(text string) (float64, bool) {
	if m := digitRun.FindString(text); m != "" {
		n, err := strconv.ParseFloat(m, 64)
		if err == nil {
			return n, true
		}
	}

	total := 0.0
	found := false
	for _, tok := range tokenize(text) {
		if tok == "lakh" || tok == "lakhs" {
			if total == 0 {
				total = 1
			}
			total *= lakh
			found = true
			continue
		}
		if v, ok := cardinalWords[tok]; ok {
			if v == 100 || v == 1000 {
				total *= v
			} else {
				total += v
			}
			found = true
			continue
		}
		if found {
			break
		}
	}

	if !found {
		return 0, false
	}
	if total >= lakh {
		total /= lakh
	}
	return total, true
}

// ResolveNextWeekday computes the next calendar date falling on the named
// weekday, relative to now. The result is always strictly in the future: if
// now already falls on the target weekday the date one week ahead is used.
// The returned date is formatted as an ISO date string.
func ResolveNextWeekday(name string, now time.Time) (string, error) {
	target, ok := LookupWeekday(name)
	if !ok {
		return "", fmt.Errorf("unknown weekday %q", name)
	}
	days := (int(target) - int(now.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}
	return now.AddDate(0, 0, days).Format("2006-01-02"), nil
}

// CanonicalWeekday returns the lowercase weekday name for a lexicon entry,
// used when echoing the scheduled day back to the candidate.
func CanonicalWeekday(name string) string {
	day, ok := LookupWeekday(name)
	if !ok {
		return name
	}
	return strings.ToLower(day.String())
}
