package services

import (
	"context"
	"log"

	"keliauk/internal/models/db_models"
	"keliauk/internal/models/response_models"
	"keliauk/internal/repositories"
	"keliauk/pkg/utils"
)

type RaceServiceInterface interface {
	ListRaces(ctx context.Context) ([]response_models.Race, error)
	JoinRace(ctx context.Context, raceID, accountID string) (*response_models.Race, error)
	LeaveRace(ctx context.Context, raceID, accountID string) (*response_models.Race, error)
}

type RaceService struct {
	raceRepo repositories.RaceRepository
}

func NewRaceService(raceRepo repositories.RaceRepository) RaceServiceInterface {
	return &RaceService{
		raceRepo: raceRepo,
	}
}

func (r *RaceService) ListRaces(ctx context.Context) ([]response_models.Race, error) {
	races, err := r.raceRepo.List(ctx)
	if err != nil {
		log.Printf("Error listing races: %v", err)
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.Race, 0, len(races))
	for _, race := range races {
		out = append(out, toRaceResponse(race))
	}
	return out, nil
}

func (r *RaceService) JoinRace(ctx context.Context, raceID, accountID string) (*response_models.Race, error) {
	race, err := r.getRace(ctx, raceID)
	if err != nil {
		return nil, err
	}

	for _, participant := range race.Participants {
		if participant == accountID {
			return nil, utils.ErrAlreadyInRace
		}
	}
	if len(race.Participants) >= race.MaxParticipants {
		return nil, utils.ErrRaceFull
	}

	race.Participants = append(race.Participants, accountID)
	if err := r.raceRepo.UpdateParticipants(ctx, race); err != nil {
		log.Printf("Error updating race participants: %v", err)
		return nil, utils.ErrDatabaseError
	}

	out := toRaceResponse(*race)
	return &out, nil
}

func (r *RaceService) LeaveRace(ctx context.Context, raceID, accountID string) (*response_models.Race, error) {
	race, err := r.getRace(ctx, raceID)
	if err != nil {
		return nil, err
	}

	kept := race.Participants[:0]
	found := false
	for _, participant := range race.Participants {
		if participant == accountID {
			found = true
			continue
		}
		kept = append(kept, participant)
	}
	if !found {
		return nil, utils.ErrNotInRace
	}

	race.Participants = kept
	if err := r.raceRepo.UpdateParticipants(ctx, race); err != nil {
		log.Printf("Error updating race participants: %v", err)
		return nil, utils.ErrDatabaseError
	}

	out := toRaceResponse(*race)
	return &out, nil
}

func (r *RaceService) getRace(ctx context.Context, raceID string) (*db_models.Race, error) {
	race, err := r.raceRepo.GetByID(ctx, raceID)
	if err != nil {
		log.Printf("Error fetching race: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if race == nil {
		return nil, utils.ErrRaceNotFound
	}
	return race, nil
}

func toRaceResponse(race db_models.Race) response_models.Race {
	return response_models.Race{
		ID:              race.ID.String(),
		Name:            race.Name,
		Description:     race.Description,
		Image:           race.Image,
		Date:            utils.FormatRFC3339LT(race.Date),
		LocationName:    race.LocationName,
		Latitude:        race.Latitude,
		Longitude:       race.Longitude,
		DistanceKm:      race.DistanceKm,
		Participants:    race.Participants,
		MaxParticipants: race.MaxParticipants,
		IsFull:          len(race.Participants) >= race.MaxParticipants,
	}
}
