package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestTrialsSkipsNilRows(t *testing.T) {
	userID := uuid.New()
	rows := []*FontTrial{
		{UserID: userID, FontID: "lexend", Rating: 5, Difficulty: "easy"},
		nil,
		{UserID: userID, FontID: "arial", Rating: 2, Difficulty: "hard"},
	}
	got := Trials(rows)
	if len(got) != 2 {
		t.Fatalf("Trials len=%d, want 2", len(got))
	}
	if got[0].FontID != "lexend" || got[1].Rating != 2 {
		t.Fatalf("unexpected trials %+v", got)
	}
}

func TestModelsListsEveryTable(t *testing.T) {
	if n := len(Models()); n != 6 {
		t.Fatalf("Models() len=%d, want 6", n)
	}
}
