package profile

import "testing"

func TestRandomQuestions_GenderFirst(t *testing.T) {
	for i := 0; i < 10; i++ {
		questions := RandomQuestions(6)
		if len(questions) != 6 {
			t.Fatalf("Expected 6 questions, got %d", len(questions))
		}
		if questions[0].ID != "gender" {
			t.Errorf("First question must be gender, got %q", questions[0].ID)
		}
	}
}

func TestRandomQuestions_NoDuplicates(t *testing.T) {
	questions := RandomQuestions(1 + BankSize())

	seen := map[string]bool{}
	for _, q := range questions {
		if seen[q.ID] {
			t.Errorf("Duplicate question %q", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestRandomQuestions_ClampsCount(t *testing.T) {
	if got := RandomQuestions(0); len(got) != 1 {
		t.Errorf("Expected gender only for total 0, got %d", len(got))
	}
	if got := RandomQuestions(100); len(got) != 1+BankSize() {
		t.Errorf("Expected clamp to bank size, got %d", len(got))
	}
}

func TestRandomQuestions_EntriesWellFormed(t *testing.T) {
	for _, q := range RandomQuestions(1 + BankSize()) {
		if q.ID == "" || q.Label == "" {
			t.Errorf("Question missing id or label: %+v", q)
		}
		switch q.Type {
		case TypeRadio, TypeMultiSelect:
			if len(q.Options) == 0 {
				t.Errorf("Question %q needs options", q.ID)
			}
		case TypeText:
			if len(q.Options) != 0 {
				t.Errorf("Text question %q should have no options", q.ID)
			}
		default:
			t.Errorf("Question %q has unknown type %q", q.ID, q.Type)
		}
	}
}
