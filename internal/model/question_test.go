package model

import (
	"testing"
	"time"
)

func TestWasPublishedRecently(t *testing.T) {
	tests := []struct {
		name    string
		pubDate time.Time
		want    bool
	}{
		{
			name:    "future question is not recent",
			pubDate: time.Now().Add(30 * 24 * time.Hour),
			want:    false,
		},
		{
			name:    "published 13 hours ago is recent",
			pubDate: time.Now().Add(-13 * time.Hour),
			want:    true,
		},
		{
			name:    "published 2 days ago is not recent",
			pubDate: time.Now().Add(-48 * time.Hour),
			want:    false,
		},
		{
			name:    "just inside the 24 hour window is recent",
			pubDate: time.Now().Add(-24*time.Hour + time.Minute),
			want:    true,
		},
		{
			name:    "just outside the 24 hour window is not recent",
			pubDate: time.Now().Add(-24*time.Hour - time.Minute),
			want:    false,
		},
		{
			name:    "published a moment ago bounds inclusive",
			pubDate: time.Now().Add(-time.Second),
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Question{QuestionText: "Does it matter?", PubDate: tt.pubDate}
			if got := q.WasPublishedRecently(); got != tt.want {
				t.Errorf("WasPublishedRecently() = %v, want %v (pub_date %v)", got, tt.want, tt.pubDate)
			}
		})
	}
}

func TestIsPublished(t *testing.T) {
	past := Question{PubDate: time.Now().Add(-10 * 24 * time.Hour)}
	if !past.IsPublished() {
		t.Error("question published 10 days ago should be published")
	}

	future := Question{PubDate: time.Now().Add(25 * 24 * time.Hour)}
	if future.IsPublished() {
		t.Error("question dated 25 days in the future should not be published")
	}
}

func TestHasChoices(t *testing.T) {
	q := Question{QuestionText: "Empty?"}
	if q.HasChoices() {
		t.Error("question with no choices should report HasChoices() == false")
	}

	q.Choices = []Choice{{ChoiceText: "Yes"}}
	if !q.HasChoices() {
		t.Error("question with one choice should report HasChoices() == true")
	}
}

func TestChoicesSortedByText(t *testing.T) {
	q := Question{
		Choices: []Choice{
			{ChoiceText: "Charlie"},
			{ChoiceText: "Alpha"},
			{ChoiceText: "Bravo"},
		},
	}

	sorted := q.ChoicesSortedByText()
	want := []string{"Alpha", "Bravo", "Charlie"}
	for i, text := range want {
		if sorted[i].ChoiceText != text {
			t.Errorf("position %d = %q, want %q", i, sorted[i].ChoiceText, text)
		}
	}

	// The original slice is left untouched.
	if q.Choices[0].ChoiceText != "Charlie" {
		t.Error("ChoicesSortedByText modified the receiver's choice slice")
	}
}

func TestChoicesSortedByVotes(t *testing.T) {
	q := Question{
		Choices: []Choice{
			{ChoiceText: "A", Votes: 1},
			{ChoiceText: "B", Votes: 2},
			{ChoiceText: "C", Votes: 1},
		},
	}

	sorted := q.ChoicesSortedByVotes()
	want := []string{"B", "A", "C"}
	for i, text := range want {
		if sorted[i].ChoiceText != text {
			t.Errorf("position %d = %q, want %q", i, sorted[i].ChoiceText, text)
		}
	}
}
