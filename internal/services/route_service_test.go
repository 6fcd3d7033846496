package services

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/google/uuid"
	"keliauk/internal/models/db_models"
	"keliauk/pkg/utils"
)

func newRouteFixture() (RouteBuilderServiceInterface, *fakeRouteRepo, []db_models.Attraction) {
	attractions := []db_models.Attraction{
		newTestAttraction("Gedimino pilies bokštas", 4.7, "istorija"),
		newTestAttraction("Trakų pilis", 4.8, "istorija"),
		newTestAttraction("Parnidžio kopa", 4.6, "gamta"),
	}
	routeRepo := &fakeRouteRepo{}
	service := NewRouteBuilderService(&fakeAttractionRepo{attractions: attractions}, routeRepo)
	return service, routeRepo, attractions
}

func closeEnough(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestRouteSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	service, _, attractions := newRouteFixture()

	session := service.StartSession()
	if session.State != "idle" {
		t.Fatalf("State = %q, want idle", session.State)
	}
	if session.Totals != nil {
		t.Error("fresh session has totals")
	}

	session, err := service.AddDestination(ctx, session.SessionID, attractions[0].ID.String())
	if err != nil {
		t.Fatalf("AddDestination: %v", err)
	}
	if session.State != "building" {
		t.Errorf("State = %q after first destination, want building", session.State)
	}

	session, err = service.AddDestination(ctx, session.SessionID, attractions[1].ID.String())
	if err != nil {
		t.Fatalf("AddDestination: %v", err)
	}
	if len(session.Destinations) != 2 {
		t.Fatalf("len(Destinations) = %d, want 2", len(session.Destinations))
	}

	session, err = service.Calculate(session.SessionID)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if session.State != "calculated" {
		t.Errorf("State = %q after Calculate, want calculated", session.State)
	}
	if session.Totals == nil {
		t.Fatal("Totals = nil after Calculate")
	}
	// Two legs: 12.5 and 18.5.
	if !closeEnough(session.Totals.DistanceKm, 31.0) {
		t.Errorf("DistanceKm = %v, want 31.0", session.Totals.DistanceKm)
	}
	if !closeEnough(session.Totals.TimeByCarMin, 31.0*1.2) {
		t.Errorf("TimeByCarMin = %v, want %v", session.Totals.TimeByCarMin, 31.0*1.2)
	}
	if !closeEnough(session.Totals.TimeByFootMin, 31.0*12.0) {
		t.Errorf("TimeByFootMin = %v, want %v", session.Totals.TimeByFootMin, 31.0*12.0)
	}
}

func TestRouteCalculationInvalidation(t *testing.T) {
	ctx := context.Background()
	service, _, attractions := newRouteFixture()

	session := service.StartSession()
	sessionID := session.SessionID
	if _, err := service.AddDestination(ctx, sessionID, attractions[0].ID.String()); err != nil {
		t.Fatalf("AddDestination: %v", err)
	}
	if _, err := service.Calculate(sessionID); err != nil {
		t.Fatalf("Calculate: %v", err)
	}

	// Adding after calculation drops back to building and clears totals.
	session, err := service.AddDestination(ctx, sessionID, attractions[1].ID.String())
	if err != nil {
		t.Fatalf("AddDestination: %v", err)
	}
	if session.State != "building" {
		t.Errorf("State = %q after add, want building", session.State)
	}
	if session.Totals != nil {
		t.Error("totals survived an added destination")
	}

	if _, err := service.Calculate(sessionID); err != nil {
		t.Fatalf("Calculate: %v", err)
	}

	// Removing an id that was never selected still invalidates.
	session, err = service.RemoveDestination(sessionID, uuid.New().String())
	if err != nil {
		t.Fatalf("RemoveDestination: %v", err)
	}
	if session.State != "building" {
		t.Errorf("State = %q after no-op removal, want building", session.State)
	}
	if session.Totals != nil {
		t.Error("totals survived a no-op removal")
	}

	// Removing the last destination drops the session to idle.
	session, _ = service.RemoveDestination(sessionID, attractions[0].ID.String())
	session, err = service.RemoveDestination(sessionID, attractions[1].ID.String())
	if err != nil {
		t.Fatalf("RemoveDestination: %v", err)
	}
	if session.State != "idle" {
		t.Errorf("State = %q with no destinations, want idle", session.State)
	}
}

func TestRouteCalculateErrors(t *testing.T) {
	ctx := context.Background()
	service, _, attractions := newRouteFixture()

	if _, err := service.Calculate(uuid.New().String()); !errors.Is(err, utils.ErrRouteSessionNotFound) {
		t.Errorf("Calculate(unknown session) err = %v, want ErrRouteSessionNotFound", err)
	}

	session := service.StartSession()
	if _, err := service.Calculate(session.SessionID); !errors.Is(err, utils.ErrNoDestinations) {
		t.Errorf("Calculate(empty) err = %v, want ErrNoDestinations", err)
	}

	if _, err := service.AddDestination(ctx, session.SessionID, uuid.New().String()); !errors.Is(err, utils.ErrAttractionNotFound) {
		t.Errorf("AddDestination(unknown attraction) err = %v, want ErrAttractionNotFound", err)
	}

	if _, err := service.AddDestination(ctx, session.SessionID, attractions[0].ID.String()); err != nil {
		t.Fatalf("AddDestination: %v", err)
	}
	if _, err := service.AddDestination(ctx, session.SessionID, attractions[0].ID.String()); !errors.Is(err, utils.ErrInvalidInput) {
		t.Errorf("duplicate AddDestination err = %v, want ErrInvalidInput", err)
	}
}

func TestRouteSave(t *testing.T) {
	ctx := context.Background()
	service, routeRepo, attractions := newRouteFixture()
	accountID := uuid.New()

	session := service.StartSession()
	sessionID := session.SessionID
	_, _ = service.AddDestination(ctx, sessionID, attractions[0].ID.String())
	_, _ = service.AddDestination(ctx, sessionID, attractions[2].ID.String())

	// Saving before calculation is rejected.
	if _, err := service.Save(ctx, sessionID, accountID.String(), ""); !errors.Is(err, utils.ErrRouteNotCalculated) {
		t.Fatalf("Save(uncalculated) err = %v, want ErrRouteNotCalculated", err)
	}

	if _, err := service.Calculate(sessionID); err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	saved, err := service.Save(ctx, sessionID, accountID.String(), "")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if saved.Name != "Maršrutas į Gedimino pilies bokštas, Parnidžio kopa" {
		t.Errorf("Name = %q", saved.Name)
	}
	if saved.StartPoint != "Studentu g. 48, Kaunas" {
		t.Errorf("StartPoint = %q", saved.StartPoint)
	}
	if len(saved.Points) != 2 {
		t.Fatalf("len(Points) = %d, want 2", len(saved.Points))
	}
	if saved.Points[0].Attraction.Name != "Gedimino pilies bokštas" {
		t.Errorf("Points[0] = %q, selection order not preserved", saved.Points[0].Attraction.Name)
	}
	if !closeEnough(saved.TotalDistanceKm, 31.0) {
		t.Errorf("TotalDistanceKm = %v, want 31.0", saved.TotalDistanceKm)
	}

	if len(routeRepo.routes) != 1 {
		t.Fatalf("len(repo.routes) = %d, want 1", len(routeRepo.routes))
	}

	// The session is consumed by the save.
	if _, err := service.GetSession(sessionID); !errors.Is(err, utils.ErrRouteSessionNotFound) {
		t.Errorf("GetSession after Save err = %v, want ErrRouteSessionNotFound", err)
	}
}

func TestSavedRouteOwnership(t *testing.T) {
	ctx := context.Background()
	service, _, attractions := newRouteFixture()
	owner := uuid.New().String()
	stranger := uuid.New().String()

	session := service.StartSession()
	_, _ = service.AddDestination(ctx, session.SessionID, attractions[0].ID.String())
	_, _ = service.Calculate(session.SessionID)
	_, err := service.Save(ctx, session.SessionID, owner, "Mano kelionė")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	routes, err := service.ListSavedRoutes(ctx, owner)
	if err != nil {
		t.Fatalf("ListSavedRoutes: %v", err)
	}
	if len(routes) != 1 || routes[0].Name != "Mano kelionė" {
		t.Fatalf("routes = %+v", routes)
	}
	routeID := routes[0].ID

	if err := service.RenameSavedRoute(ctx, stranger, routeID, "Kitas"); !errors.Is(err, utils.ErrRouteNotFound) {
		t.Errorf("Rename by stranger err = %v, want ErrRouteNotFound", err)
	}
	if err := service.DeleteSavedRoute(ctx, stranger, routeID); !errors.Is(err, utils.ErrRouteNotFound) {
		t.Errorf("Delete by stranger err = %v, want ErrRouteNotFound", err)
	}

	if err := service.RenameSavedRoute(ctx, owner, routeID, ""); !errors.Is(err, utils.ErrInvalidInput) {
		t.Errorf("Rename to empty err = %v, want ErrInvalidInput", err)
	}
	if err := service.RenameSavedRoute(ctx, owner, routeID, "Savaitgalio planas"); err != nil {
		t.Fatalf("Rename: %v", err)
	}
	routes, _ = service.ListSavedRoutes(ctx, owner)
	if routes[0].Name != "Savaitgalio planas" {
		t.Errorf("Name after rename = %q", routes[0].Name)
	}

	if err := service.DeleteSavedRoute(ctx, owner, routeID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	routes, _ = service.ListSavedRoutes(ctx, owner)
	if len(routes) != 0 {
		t.Errorf("len(routes) after delete = %d, want 0", len(routes))
	}
}

func TestRouteCancel(t *testing.T) {
	service, _, _ := newRouteFixture()

	session := service.StartSession()
	service.Cancel(session.SessionID)

	if _, err := service.GetSession(session.SessionID); !errors.Is(err, utils.ErrRouteSessionNotFound) {
		t.Errorf("GetSession after Cancel err = %v, want ErrRouteSessionNotFound", err)
	}

	// Cancelling an unknown session is a no-op.
	service.Cancel(uuid.New().String())
}
