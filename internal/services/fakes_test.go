package services

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"keliauk/internal/models/db_models"
)

// In-memory repository stand-ins for service tests.

type fakeAttractionRepo struct {
	attractions []db_models.Attraction
}

func newTestAttraction(name string, rating float64, category string) db_models.Attraction {
	a := db_models.Attraction{
		Name:     name,
		Rating:   rating,
		Category: category,
	}
	a.ID = uuid.New()
	return a
}

func (f *fakeAttractionRepo) GetByID(_ context.Context, id string) (*db_models.Attraction, error) {
	for _, a := range f.attractions {
		if a.ID.String() == id {
			found := a
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeAttractionRepo) List(_ context.Context, page, pageSize int) ([]db_models.Attraction, error) {
	start := (page - 1) * pageSize
	if start >= len(f.attractions) {
		return nil, nil
	}
	end := start + pageSize
	if end > len(f.attractions) {
		end = len(f.attractions)
	}
	return f.attractions[start:end], nil
}

func (f *fakeAttractionRepo) ListAll(_ context.Context) ([]db_models.Attraction, error) {
	return f.attractions, nil
}

func (f *fakeAttractionRepo) ListByCategory(_ context.Context, category string) ([]db_models.Attraction, error) {
	var out []db_models.Attraction
	for _, a := range f.attractions {
		if a.Category == category {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAttractionRepo) ListByRating(_ context.Context, limit int) ([]db_models.Attraction, error) {
	out := make([]db_models.Attraction, len(f.attractions))
	copy(out, f.attractions)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeAttractionRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.attractions)), nil
}

type fakeRouteRepo struct {
	routes []*db_models.SavedRoute
}

func (f *fakeRouteRepo) Insert(_ context.Context, route *db_models.SavedRoute) error {
	if route.ID == uuid.Nil {
		route.ID = uuid.New()
	}
	f.routes = append(f.routes, route)
	return nil
}

func (f *fakeRouteRepo) ListByAccount(_ context.Context, accountID string) ([]db_models.SavedRoute, error) {
	var out []db_models.SavedRoute
	for _, route := range f.routes {
		if route.AccountID.String() == accountID {
			out = append(out, *route)
		}
	}
	return out, nil
}

func (f *fakeRouteRepo) GetByID(_ context.Context, id string) (*db_models.SavedRoute, error) {
	for _, route := range f.routes {
		if route.ID.String() == id {
			found := *route
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeRouteRepo) Rename(_ context.Context, id string, name string) error {
	for _, route := range f.routes {
		if route.ID.String() == id {
			route.Name = name
		}
	}
	return nil
}

func (f *fakeRouteRepo) Delete(_ context.Context, id string) error {
	kept := f.routes[:0]
	for _, route := range f.routes {
		if route.ID.String() != id {
			kept = append(kept, route)
		}
	}
	f.routes = kept
	return nil
}

type fakeAccountRepo struct {
	accounts []*db_models.Account
}

func (f *fakeAccountRepo) Insert(_ context.Context, account *db_models.Account) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	f.accounts = append(f.accounts, account)
	return nil
}

func (f *fakeAccountRepo) FindByID(_ context.Context, id string) (*db_models.Account, error) {
	for _, account := range f.accounts {
		if account.ID.String() == id {
			found := *account
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) FindByEmail(_ context.Context, email string) (*db_models.Account, error) {
	for _, account := range f.accounts {
		if account.Email == email {
			found := *account
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) Update(_ context.Context, account *db_models.Account) error {
	for i, existing := range f.accounts {
		if existing.ID == account.ID {
			updated := *account
			f.accounts[i] = &updated
			return nil
		}
	}
	return nil
}

type fakeRaceRepo struct {
	races []*db_models.Race
}

func (f *fakeRaceRepo) GetByID(_ context.Context, id string) (*db_models.Race, error) {
	for _, race := range f.races {
		if race.ID.String() == id {
			found := *race
			found.Participants = append([]string(nil), race.Participants...)
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeRaceRepo) List(_ context.Context) ([]db_models.Race, error) {
	out := make([]db_models.Race, 0, len(f.races))
	for _, race := range f.races {
		out = append(out, *race)
	}
	return out, nil
}

func (f *fakeRaceRepo) UpdateParticipants(_ context.Context, race *db_models.Race) error {
	for _, existing := range f.races {
		if existing.ID == race.ID {
			existing.Participants = append([]string(nil), race.Participants...)
		}
	}
	return nil
}
