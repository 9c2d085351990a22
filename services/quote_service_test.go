package services

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/ahanaf-mohosen/DailyMoodCheck/models"
)

type fakeQuoteRepo struct {
	quotes map[models.Mood][]models.Quote
	err    error
}

func (r *fakeQuoteRepo) GetQuotesByMood(ctx context.Context, mood models.Mood) ([]models.Quote, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.quotes[mood], nil
}

func TestPickQuoteReturnsMatchingMood(t *testing.T) {
	repo := &fakeQuoteRepo{quotes: map[models.Mood][]models.Quote{
		models.MoodSad: {
			{ID: "1", Text: "a", MoodTag: models.MoodSad},
			{ID: "2", Text: "b", MoodTag: models.MoodSad},
			{ID: "3", Text: "c", MoodTag: models.MoodSad},
		},
	}}
	s := NewQuoteService(repo, rand.New(rand.NewSource(1)))

	for i := 0; i < 20; i++ {
		quote, err := s.PickQuote(context.Background(), models.MoodSad)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if quote.MoodTag != models.MoodSad {
			t.Fatalf("picked quote tagged %s, want sad", quote.MoodTag)
		}
	}
}

func TestPickQuoteDeterministicWithSeededSource(t *testing.T) {
	quotes := map[models.Mood][]models.Quote{
		models.MoodHappy: {
			{ID: "1", MoodTag: models.MoodHappy},
			{ID: "2", MoodTag: models.MoodHappy},
			{ID: "3", MoodTag: models.MoodHappy},
			{ID: "4", MoodTag: models.MoodHappy},
		},
	}
	s1 := NewQuoteService(&fakeQuoteRepo{quotes: quotes}, rand.New(rand.NewSource(42)))
	s2 := NewQuoteService(&fakeQuoteRepo{quotes: quotes}, rand.New(rand.NewSource(42)))

	for i := 0; i < 10; i++ {
		q1, err1 := s1.PickQuote(context.Background(), models.MoodHappy)
		q2, err2 := s2.PickQuote(context.Background(), models.MoodHappy)
		if err1 != nil || err2 != nil {
			t.Fatalf("expected no error, got %v / %v", err1, err2)
		}
		if q1.ID != q2.ID {
			t.Fatalf("same seed picked different quotes: %s vs %s", q1.ID, q2.ID)
		}
	}
}

func TestPickQuoteEmptySet(t *testing.T) {
	s := NewQuoteService(&fakeQuoteRepo{quotes: map[models.Mood][]models.Quote{}}, rand.New(rand.NewSource(1)))

	_, err := s.PickQuote(context.Background(), models.MoodNeutral)
	if !errors.Is(err, ErrNoQuoteAvailable) {
		t.Fatalf("expected ErrNoQuoteAvailable, got %v", err)
	}
}

func TestPickQuoteRepositoryError(t *testing.T) {
	repoErr := errors.New("db down")
	s := NewQuoteService(&fakeQuoteRepo{err: repoErr}, rand.New(rand.NewSource(1)))

	_, err := s.PickQuote(context.Background(), models.MoodSad)
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected repository error, got %v", err)
	}
}
