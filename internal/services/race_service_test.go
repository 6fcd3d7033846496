package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"keliauk/internal/models/db_models"
	"keliauk/pkg/utils"
)

func newRaceFixture(maxParticipants int, participants ...string) (RaceServiceInterface, *db_models.Race) {
	race := &db_models.Race{
		Name:            "Vilniaus maratonas",
		LocationName:    "Vilnius",
		DistanceKm:      42.2,
		Participants:    participants,
		MaxParticipants: maxParticipants,
	}
	race.ID = uuid.New()

	service := NewRaceService(&fakeRaceRepo{races: []*db_models.Race{race}})
	return service, race
}

func TestJoinRace(t *testing.T) {
	ctx := context.Background()
	service, race := newRaceFixture(2)
	runner := uuid.New().String()

	joined, err := service.JoinRace(ctx, race.ID.String(), runner)
	if err != nil {
		t.Fatalf("JoinRace: %v", err)
	}
	if len(joined.Participants) != 1 || joined.Participants[0] != runner {
		t.Errorf("Participants = %v", joined.Participants)
	}
	if joined.IsFull {
		t.Error("IsFull = true with one of two slots taken")
	}

	if _, err := service.JoinRace(ctx, race.ID.String(), runner); !errors.Is(err, utils.ErrAlreadyInRace) {
		t.Errorf("second join err = %v, want ErrAlreadyInRace", err)
	}

	joined, err = service.JoinRace(ctx, race.ID.String(), uuid.New().String())
	if err != nil {
		t.Fatalf("JoinRace: %v", err)
	}
	if !joined.IsFull {
		t.Error("IsFull = false at capacity")
	}

	if _, err := service.JoinRace(ctx, race.ID.String(), uuid.New().String()); !errors.Is(err, utils.ErrRaceFull) {
		t.Errorf("join at capacity err = %v, want ErrRaceFull", err)
	}

	if _, err := service.JoinRace(ctx, uuid.New().String(), runner); !errors.Is(err, utils.ErrRaceNotFound) {
		t.Errorf("unknown race err = %v, want ErrRaceNotFound", err)
	}
}

func TestLeaveRace(t *testing.T) {
	ctx := context.Background()
	runner := uuid.New().String()
	other := uuid.New().String()
	service, race := newRaceFixture(10, runner, other)

	left, err := service.LeaveRace(ctx, race.ID.String(), runner)
	if err != nil {
		t.Fatalf("LeaveRace: %v", err)
	}
	if len(left.Participants) != 1 || left.Participants[0] != other {
		t.Errorf("Participants = %v", left.Participants)
	}

	if _, err := service.LeaveRace(ctx, race.ID.String(), runner); !errors.Is(err, utils.ErrNotInRace) {
		t.Errorf("second leave err = %v, want ErrNotInRace", err)
	}
}

func TestListRaces(t *testing.T) {
	ctx := context.Background()
	service, race := newRaceFixture(5, uuid.New().String())

	races, err := service.ListRaces(ctx)
	if err != nil {
		t.Fatalf("ListRaces: %v", err)
	}
	if len(races) != 1 {
		t.Fatalf("len(races) = %d, want 1", len(races))
	}
	if races[0].ID != race.ID.String() || races[0].Name != "Vilniaus maratonas" {
		t.Errorf("races[0] = %+v", races[0])
	}
}
