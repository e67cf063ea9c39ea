package grading

import "testing"

func TestGrade(t *testing.T) {
	key := map[uint]KeyEntry{
		1: {CorrectOption: 1, Points: 3},
		2: {CorrectOption: 0, Points: 2},
	}

	tests := []struct {
		name      string
		answers   []Answer
		wantScore int
		wantTotal int
	}{
		{
			name:      "one correct one wrong",
			answers:   []Answer{{QuestionID: 1, SelectedOption: 1}, {QuestionID: 2, SelectedOption: 1}},
			wantScore: 3,
			wantTotal: 5,
		},
		{
			name:      "all correct",
			answers:   []Answer{{QuestionID: 1, SelectedOption: 1}, {QuestionID: 2, SelectedOption: 0}},
			wantScore: 5,
			wantTotal: 5,
		},
		{
			name:      "no answers still counts full total",
			answers:   nil,
			wantScore: 0,
			wantTotal: 5,
		},
		{
			name:      "unanswered sentinel never matches",
			answers:   []Answer{{QuestionID: 1, SelectedOption: Unanswered}, {QuestionID: 2, SelectedOption: Unanswered}},
			wantScore: 0,
			wantTotal: 5,
		},
		{
			name:      "unknown question id ignored",
			answers:   []Answer{{QuestionID: 99, SelectedOption: 1}, {QuestionID: 2, SelectedOption: 0}},
			wantScore: 2,
			wantTotal: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, total := Grade(key, tt.answers)
			if score != tt.wantScore || total != tt.wantTotal {
				t.Fatalf("Grade() = (%d, %d), want (%d, %d)", score, total, tt.wantScore, tt.wantTotal)
			}
		})
	}
}

func TestGradeOrderIndependent(t *testing.T) {
	key := map[uint]KeyEntry{
		1: {CorrectOption: 0, Points: 1},
		2: {CorrectOption: 2, Points: 4},
		3: {CorrectOption: 3, Points: 2},
	}
	forward := []Answer{
		{QuestionID: 1, SelectedOption: 0},
		{QuestionID: 2, SelectedOption: 2},
		{QuestionID: 3, SelectedOption: 1},
	}
	reversed := []Answer{forward[2], forward[1], forward[0]}

	s1, t1 := Grade(key, forward)
	s2, t2 := Grade(key, reversed)
	if s1 != s2 || t1 != t2 {
		t.Fatalf("grading depends on answer order: (%d,%d) vs (%d,%d)", s1, t1, s2, t2)
	}
	if s1 != 5 || t1 != 7 {
		t.Fatalf("Grade() = (%d, %d), want (5, 7)", s1, t1)
	}
}

func TestGradeEmptyKey(t *testing.T) {
	score, total := Grade(map[uint]KeyEntry{}, []Answer{{QuestionID: 1, SelectedOption: 0}})
	if score != 0 || total != 0 {
		t.Fatalf("Grade() = (%d, %d), want (0, 0)", score, total)
	}
	if p := Percentage(score, total); p != 0 {
		t.Fatalf("Percentage(0, 0) = %v, want 0", p)
	}
}

func TestPercentage(t *testing.T) {
	if p := Percentage(3, 5); p != 60 {
		t.Fatalf("Percentage(3, 5) = %v, want 60", p)
	}
}
