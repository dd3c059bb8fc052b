package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/lshigami/Quokka/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// A fresh :memory: database is created per connection; keep a single one.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get underlying sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&model.Question{}, &model.Choice{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

// createQuestion inserts a question published the given number of days offset
// from now (negative for the past, positive for the future) with the given
// choice texts.
func createQuestion(t *testing.T, db *gorm.DB, text string, days int, choiceTexts ...string) *model.Question {
	t.Helper()

	q := model.Question{
		QuestionText: text,
		PubDate:      time.Now().Add(time.Duration(days) * 24 * time.Hour),
	}
	for _, ct := range choiceTexts {
		q.Choices = append(q.Choices, model.Choice{ChoiceText: ct})
	}
	if err := db.Create(&q).Error; err != nil {
		t.Fatalf("Failed to create question %q: %v", text, err)
	}
	return &q
}

func TestFindLatestPublished(t *testing.T) {
	t.Run("past question with choices is listed", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewQuestionRepository(db)

		createQuestion(t, db, "Past question?", -10, "Choice A", "Choice B", "Choice C")

		latest, err := repo.FindLatestPublished(5)
		if err != nil {
			t.Fatalf("FindLatestPublished: %v", err)
		}
		if len(latest) != 1 {
			t.Fatalf("Expected 1 question, got %d", len(latest))
		}
		if latest[0].QuestionText != "Past question?" {
			t.Errorf("Unexpected question %q", latest[0].QuestionText)
		}
		if latest[0].ChoiceCount != 3 {
			t.Errorf("Expected choice count 3, got %d", latest[0].ChoiceCount)
		}
	})

	t.Run("future question with choices is not listed", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewQuestionRepository(db)

		createQuestion(t, db, "Future question?", 25, "Choice A", "Choice B", "Choice C")

		latest, err := repo.FindLatestPublished(5)
		if err != nil {
			t.Fatalf("FindLatestPublished: %v", err)
		}
		if len(latest) != 0 {
			t.Fatalf("Expected no questions, got %d", len(latest))
		}
	})

	t.Run("past question without choices is not listed", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewQuestionRepository(db)

		createQuestion(t, db, "Choiceless question?", -10)

		latest, err := repo.FindLatestPublished(5)
		if err != nil {
			t.Fatalf("FindLatestPublished: %v", err)
		}
		if len(latest) != 0 {
			t.Fatalf("Expected no questions, got %d", len(latest))
		}
	})

	t.Run("most recent first", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewQuestionRepository(db)

		createQuestion(t, db, "Older question?", -29, "Choice A")
		createQuestion(t, db, "Newer question?", -5, "Choice A")

		latest, err := repo.FindLatestPublished(5)
		if err != nil {
			t.Fatalf("FindLatestPublished: %v", err)
		}
		if len(latest) != 2 {
			t.Fatalf("Expected 2 questions, got %d", len(latest))
		}
		if latest[0].QuestionText != "Newer question?" || latest[1].QuestionText != "Older question?" {
			t.Errorf("Wrong order: got [%q, %q]", latest[0].QuestionText, latest[1].QuestionText)
		}
	})

	t.Run("capped at the limit", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewQuestionRepository(db)

		for i := 1; i <= 7; i++ {
			createQuestion(t, db, fmt.Sprintf("Question %d?", i), -i, "Choice A")
		}

		latest, err := repo.FindLatestPublished(5)
		if err != nil {
			t.Fatalf("FindLatestPublished: %v", err)
		}
		if len(latest) != 5 {
			t.Fatalf("Expected 5 questions, got %d", len(latest))
		}
		// The two oldest do not make the cut.
		if latest[0].QuestionText != "Question 1?" || latest[4].QuestionText != "Question 5?" {
			t.Errorf("Wrong window: got first %q last %q", latest[0].QuestionText, latest[4].QuestionText)
		}
	})
}

func TestFindByIDWithChoices(t *testing.T) {
	db := setupTestDB(t)
	repo := NewQuestionRepository(db)

	created := createQuestion(t, db, "Ordered?", -1, "Charlie", "Alpha", "Bravo")

	q, err := repo.FindByIDWithChoices(created.ID)
	if err != nil {
		t.Fatalf("FindByIDWithChoices: %v", err)
	}
	want := []string{"Alpha", "Bravo", "Charlie"}
	if len(q.Choices) != len(want) {
		t.Fatalf("Expected %d choices, got %d", len(want), len(q.Choices))
	}
	for i, text := range want {
		if q.Choices[i].ChoiceText != text {
			t.Errorf("position %d = %q, want %q", i, q.Choices[i].ChoiceText, text)
		}
	}
}

func TestFindByIDWithResults(t *testing.T) {
	db := setupTestDB(t)
	repo := NewQuestionRepository(db)

	created := createQuestion(t, db, "Tie break?", -1, "A", "B", "C")
	votes := map[string]uint{"A": 1, "B": 2, "C": 1}
	for _, c := range created.Choices {
		if err := db.Model(&model.Choice{}).Where("id = ?", c.ID).Update("votes", votes[c.ChoiceText]).Error; err != nil {
			t.Fatalf("Failed to seed votes: %v", err)
		}
	}

	q, err := repo.FindByIDWithResults(created.ID)
	if err != nil {
		t.Fatalf("FindByIDWithResults: %v", err)
	}
	want := []string{"B", "A", "C"}
	for i, text := range want {
		if q.Choices[i].ChoiceText != text {
			t.Errorf("position %d = %q, want %q", i, q.Choices[i].ChoiceText, text)
		}
	}
}

func TestIncrementVotes(t *testing.T) {
	db := setupTestDB(t)
	choiceRepo := NewChoiceRepository(db)

	q := createQuestion(t, db, "Favorite letter?", -1, "A", "B")
	other := createQuestion(t, db, "Other question?", -1, "X")

	target := q.Choices[0]

	ok, err := choiceRepo.IncrementVotes(q.ID, target.ID)
	if err != nil {
		t.Fatalf("IncrementVotes: %v", err)
	}
	if !ok {
		t.Fatal("Expected increment to succeed for an owned choice")
	}

	got, err := choiceRepo.FindByID(target.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.Votes != 1 {
		t.Errorf("Expected 1 vote, got %d", got.Votes)
	}

	// Sibling choice untouched.
	sibling, err := choiceRepo.FindByID(q.Choices[1].ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if sibling.Votes != 0 {
		t.Errorf("Sibling choice should have 0 votes, got %d", sibling.Votes)
	}

	// Voting a second time adds exactly one more.
	if _, err := choiceRepo.IncrementVotes(q.ID, target.ID); err != nil {
		t.Fatalf("IncrementVotes: %v", err)
	}
	got, err = choiceRepo.FindByID(target.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.Votes != 2 {
		t.Errorf("Expected 2 votes after two increments, got %d", got.Votes)
	}

	// A choice owned by another question is rejected, not incremented.
	ok, err = choiceRepo.IncrementVotes(q.ID, other.Choices[0].ID)
	if err != nil {
		t.Fatalf("IncrementVotes: %v", err)
	}
	if ok {
		t.Error("Expected increment to fail for a choice of another question")
	}
	foreign, err := choiceRepo.FindByID(other.Choices[0].ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if foreign.Votes != 0 {
		t.Errorf("Foreign choice should have 0 votes, got %d", foreign.Votes)
	}

	// A nonexistent choice is rejected as well.
	ok, err = choiceRepo.IncrementVotes(q.ID, 9999)
	if err != nil {
		t.Fatalf("IncrementVotes: %v", err)
	}
	if ok {
		t.Error("Expected increment to fail for a nonexistent choice")
	}
}

func TestChoiceOrderings(t *testing.T) {
	db := setupTestDB(t)
	choiceRepo := NewChoiceRepository(db)

	q := createQuestion(t, db, "Order?", -1, "A", "B", "C")
	votes := map[string]uint{"A": 1, "B": 2, "C": 1}
	for _, c := range q.Choices {
		if err := db.Model(&model.Choice{}).Where("id = ?", c.ID).Update("votes", votes[c.ChoiceText]).Error; err != nil {
			t.Fatalf("Failed to seed votes: %v", err)
		}
	}

	byText, err := choiceRepo.FindByQuestionID(q.ID)
	if err != nil {
		t.Fatalf("FindByQuestionID: %v", err)
	}
	for i, want := range []string{"A", "B", "C"} {
		if byText[i].ChoiceText != want {
			t.Errorf("by text position %d = %q, want %q", i, byText[i].ChoiceText, want)
		}
	}

	byVotes, err := choiceRepo.FindByQuestionIDByVotes(q.ID)
	if err != nil {
		t.Fatalf("FindByQuestionIDByVotes: %v", err)
	}
	for i, want := range []string{"B", "A", "C"} {
		if byVotes[i].ChoiceText != want {
			t.Errorf("by votes position %d = %q, want %q", i, byVotes[i].ChoiceText, want)
		}
	}
}

func TestDeleteQuestionCascadesToChoices(t *testing.T) {
	db := setupTestDB(t)
	questionRepo := NewQuestionRepository(db)

	q := createQuestion(t, db, "Doomed?", -1, "A", "B")

	if err := questionRepo.Delete(q.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	var count int64
	if err := db.Model(&model.Choice{}).Where("question_id = ?", q.ID).Count(&count).Error; err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected 0 choices after question delete, got %d", count)
	}
}

func TestFindAllWithChoiceCount(t *testing.T) {
	db := setupTestDB(t)
	repo := NewQuestionRepository(db)

	createQuestion(t, db, "Future question?", 25, "Choice A")
	createQuestion(t, db, "Bare question?", -1)

	all, err := repo.FindAllWithChoiceCount()
	if err != nil {
		t.Fatalf("FindAllWithChoiceCount: %v", err)
	}
	// Admin listing includes future-dated and choiceless questions alike.
	if len(all) != 2 {
		t.Fatalf("Expected 2 questions, got %d", len(all))
	}
	counts := map[string]int{}
	for _, qwc := range all {
		counts[qwc.QuestionText] = qwc.ChoiceCount
	}
	if counts["Future question?"] != 1 || counts["Bare question?"] != 0 {
		t.Errorf("Unexpected choice counts: %v", counts)
	}
}
