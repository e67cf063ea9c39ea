// Package grading scores a student's submitted answers against an exam's
// answer key. It is pure: no I/O, no state, deterministic.
package grading

// Unanswered marks a question the student never selected an option for.
// It can never match a key entry.
const Unanswered = -1

// KeyEntry is one question's slice of the answer key.
type KeyEntry struct {
	CorrectOption int
	Points        int
}

// Answer is a student's selection for a single question.
type Answer struct {
	QuestionID     uint
	SelectedOption int
}

// Grade returns the achieved score and the total attainable points.
//
// The total is the sum of points over the whole key, independent of what
// was submitted, so unanswered questions still count toward the
// denominator. Answers for question ids outside the key are ignored.
func Grade(key map[uint]KeyEntry, answers []Answer) (score, totalPossible int) {
	for _, entry := range key {
		totalPossible += entry.Points
	}

	for _, ans := range answers {
		entry, ok := key[ans.QuestionID]
		if !ok {
			continue
		}
		if ans.SelectedOption != Unanswered && ans.SelectedOption == entry.CorrectOption {
			score += entry.Points
		}
	}
	return score, totalPossible
}

// Percentage derives the score percentage, 0 when nothing was attainable.
func Percentage(score, totalPossible int) float64 {
	if totalPossible == 0 {
		return 0
	}
	return float64(score) / float64(totalPossible) * 100
}
