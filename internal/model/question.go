package model

import (
	"sort"
	"time"
)

type Question struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	QuestionText string    `json:"question_text" gorm:"size:200;not null"`
	PubDate      time.Time `json:"pub_date" gorm:"not null;index"`
	Choices      []Choice  `json:"choices,omitempty" gorm:"foreignKey:QuestionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// WasPublishedRecently reports whether the question was published within the
// last 24 hours. Both bounds are inclusive; future publish dates are not recent.
func (q Question) WasPublishedRecently() bool {
	now := time.Now()
	earliest := now.Add(-24 * time.Hour)
	return !q.PubDate.Before(earliest) && !q.PubDate.After(now)
}

// IsPublished reports whether the question's publish date is not in the future.
func (q Question) IsPublished() bool {
	return !q.PubDate.After(time.Now())
}

// HasChoices reports whether the loaded choice set is non-empty.
func (q Question) HasChoices() bool {
	return len(q.Choices) > 0
}

// ChoicesSortedByText returns the loaded choices ordered by choice text ascending.
func (q Question) ChoicesSortedByText() []Choice {
	sorted := make([]Choice, len(q.Choices))
	copy(sorted, q.Choices)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ChoiceText < sorted[j].ChoiceText
	})
	return sorted
}

// ChoicesSortedByVotes returns the loaded choices ordered by vote count
// descending, with choice text ascending as the tie-break.
func (q Question) ChoicesSortedByVotes() []Choice {
	sorted := make([]Choice, len(q.Choices))
	copy(sorted, q.Choices)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Votes != sorted[j].Votes {
			return sorted[i].Votes > sorted[j].Votes
		}
		return sorted[i].ChoiceText < sorted[j].ChoiceText
	})
	return sorted
}
