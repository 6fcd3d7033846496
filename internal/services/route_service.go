package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"
	"keliauk/internal/models/db_models"
	"keliauk/internal/models/response_models"
	"keliauk/internal/repositories"
	"keliauk/pkg/utils"
)

type RouteState string

const (
	RouteStateIdle       RouteState = "idle"
	RouteStateBuilding   RouteState = "building"
	RouteStateCalculated RouteState = "calculated"
	RouteStateSaved      RouteState = "saved"
)

// defaultStartPoint is the fixed origin every route starts from.
const defaultStartPoint = "Studentu g. 48, Kaunas"

// RouteBuilderService drives the route-creation flow. Each session is an
// independent state machine: idle -> building -> calculated -> saved. Adding
// or removing a destination after calculation drops the session back to
// building and discards the stale totals, so a saved route can never show
// figures that no longer match its destinations.
type RouteBuilderServiceInterface interface {
	StartSession() *response_models.RouteSession
	GetSession(sessionID string) (*response_models.RouteSession, error)
	AddDestination(ctx context.Context, sessionID, attractionID string) (*response_models.RouteSession, error)
	RemoveDestination(sessionID, attractionID string) (*response_models.RouteSession, error)
	Calculate(sessionID string) (*response_models.RouteSession, error)
	Save(ctx context.Context, sessionID, accountID, name string) (*response_models.SavedRoute, error)
	Cancel(sessionID string)

	ListSavedRoutes(ctx context.Context, accountID string) ([]response_models.SavedRoute, error)
	RenameSavedRoute(ctx context.Context, accountID, routeID, name string) error
	DeleteSavedRoute(ctx context.Context, accountID, routeID string) error
}

type routeLeg struct {
	distanceKm    float64
	timeByCarMin  float64
	timeByFootMin float64
}

type routeSession struct {
	id           string
	state        RouteState
	destinations []db_models.Attraction
	legs         []routeLeg // populated only in the calculated state
}

type RouteBuilderService struct {
	mu             sync.Mutex
	sessions       map[string]*routeSession
	attractionRepo repositories.AttractionRepository
	routeRepo      repositories.RouteRepository
}

func NewRouteBuilderService(attractionRepo repositories.AttractionRepository, routeRepo repositories.RouteRepository) RouteBuilderServiceInterface {
	return &RouteBuilderService{
		sessions:       make(map[string]*routeSession),
		attractionRepo: attractionRepo,
		routeRepo:      routeRepo,
	}
}

func (r *RouteBuilderService) StartSession() *response_models.RouteSession {
	r.mu.Lock()
	defer r.mu.Unlock()

	session := &routeSession{
		id:    uuid.New().String(),
		state: RouteStateIdle,
	}
	r.sessions[session.id] = session
	return toSessionResponse(session)
}

func (r *RouteBuilderService) GetSession(sessionID string) (*response_models.RouteSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[sessionID]
	if !ok {
		return nil, utils.ErrRouteSessionNotFound
	}
	return toSessionResponse(session), nil
}

func (r *RouteBuilderService) AddDestination(ctx context.Context, sessionID, attractionID string) (*response_models.RouteSession, error) {
	attraction, err := r.attractionRepo.GetByID(ctx, attractionID)
	if err != nil {
		log.Printf("Error fetching attraction: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if attraction == nil {
		return nil, utils.ErrAttractionNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[sessionID]
	if !ok {
		return nil, utils.ErrRouteSessionNotFound
	}

	for _, selected := range session.destinations {
		if selected.ID.String() == attractionID {
			return nil, utils.ErrInvalidInput
		}
	}

	session.destinations = append(session.destinations, *attraction)
	session.invalidate()
	return toSessionResponse(session), nil
}

func (r *RouteBuilderService) RemoveDestination(sessionID, attractionID string) (*response_models.RouteSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[sessionID]
	if !ok {
		return nil, utils.ErrRouteSessionNotFound
	}

	kept := session.destinations[:0]
	for _, selected := range session.destinations {
		if selected.ID.String() != attractionID {
			kept = append(kept, selected)
		}
	}
	session.destinations = kept

	// Removal always invalidates a calculation, even for an id that was
	// not selected.
	session.invalidate()
	return toSessionResponse(session), nil
}

func (r *RouteBuilderService) Calculate(sessionID string) (*response_models.RouteSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[sessionID]
	if !ok {
		return nil, utils.ErrRouteSessionNotFound
	}
	if len(session.destinations) == 0 {
		return nil, utils.ErrNoDestinations
	}

	// Synthetic estimates, not geodesic distances. The visiting order is
	// the selection order.
	session.legs = make([]routeLeg, len(session.destinations))
	for i := range session.destinations {
		session.legs[i] = syntheticLeg(i)
	}
	session.state = RouteStateCalculated
	return toSessionResponse(session), nil
}

func (r *RouteBuilderService) Save(ctx context.Context, sessionID, accountID, name string) (*response_models.SavedRoute, error) {
	r.mu.Lock()
	session, ok := r.sessions[sessionID]
	if !ok {
		r.mu.Unlock()
		return nil, utils.ErrRouteSessionNotFound
	}
	if session.state != RouteStateCalculated {
		r.mu.Unlock()
		return nil, utils.ErrRouteNotCalculated
	}

	if name == "" {
		names := make([]string, 0, len(session.destinations))
		for _, destination := range session.destinations {
			names = append(names, destination.Name)
		}
		name = fmt.Sprintf("Maršrutas į %s", strings.Join(names, ", "))
	}

	account, err := uuid.Parse(accountID)
	if err != nil {
		r.mu.Unlock()
		return nil, utils.ErrInvalidInput
	}

	route := &db_models.SavedRoute{
		AccountID:  account,
		Name:       name,
		StartPoint: defaultStartPoint,
	}
	for i, destination := range session.destinations {
		leg := session.legs[i]
		route.Points = append(route.Points, db_models.RoutePoint{
			Position:            i,
			AttractionID:        destination.ID,
			DistanceToPrevKm:    ptr(leg.distanceKm),
			TimeByCarToPrevMin:  ptr(leg.timeByCarMin),
			TimeByFootToPrevMin: ptr(leg.timeByFootMin),
		})
		route.TotalDistanceKm += leg.distanceKm
		route.TotalTimeByCarMin += leg.timeByCarMin
		route.TotalTimeByFootMin += leg.timeByFootMin
	}

	session.state = RouteStateSaved
	destinations := session.destinations
	delete(r.sessions, sessionID)
	r.mu.Unlock()

	if err := r.routeRepo.Insert(ctx, route); err != nil {
		log.Printf("Error saving route: %v", err)
		return nil, utils.ErrDatabaseError
	}

	out := toSavedRouteResponse(*route)
	for i := range out.Points {
		out.Points[i].Attraction = toAttractionResponse(destinations[i])
	}
	return &out, nil
}

func (r *RouteBuilderService) Cancel(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sessionID)
}

func (r *RouteBuilderService) ListSavedRoutes(ctx context.Context, accountID string) ([]response_models.SavedRoute, error) {
	routes, err := r.routeRepo.ListByAccount(ctx, accountID)
	if err != nil {
		log.Printf("Error listing routes: %v", err)
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.SavedRoute, 0, len(routes))
	for _, route := range routes {
		resp := toSavedRouteResponse(route)
		for i, point := range route.Points {
			resp.Points[i].Attraction = toAttractionResponse(point.Attraction)
		}
		out = append(out, resp)
	}
	return out, nil
}

func (r *RouteBuilderService) RenameSavedRoute(ctx context.Context, accountID, routeID, name string) error {
	if name == "" {
		return utils.ErrInvalidInput
	}
	if err := r.checkRouteOwner(ctx, accountID, routeID); err != nil {
		return err
	}
	if err := r.routeRepo.Rename(ctx, routeID, name); err != nil {
		log.Printf("Error renaming route: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (r *RouteBuilderService) DeleteSavedRoute(ctx context.Context, accountID, routeID string) error {
	if err := r.checkRouteOwner(ctx, accountID, routeID); err != nil {
		return err
	}
	if err := r.routeRepo.Delete(ctx, routeID); err != nil {
		log.Printf("Error deleting route: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (r *RouteBuilderService) checkRouteOwner(ctx context.Context, accountID, routeID string) error {
	route, err := r.routeRepo.GetByID(ctx, routeID)
	if err != nil {
		log.Printf("Error fetching route: %v", err)
		return utils.ErrDatabaseError
	}
	if route == nil || route.AccountID.String() != accountID {
		return utils.ErrRouteNotFound
	}
	return nil
}

// invalidate drops any stale calculation after the destination set changes.
func (s *routeSession) invalidate() {
	s.legs = nil
	if len(s.destinations) == 0 {
		s.state = RouteStateIdle
	} else {
		s.state = RouteStateBuilding
	}
}

// syntheticLeg fabricates per-leg figures from the visiting position alone.
// The app never had a routing engine; totals just need to be deterministic
// and recomputed whenever the destination set changes.
func syntheticLeg(position int) routeLeg {
	distance := 12.5 + 6.0*float64(position)
	return routeLeg{
		distanceKm:    distance,
		timeByCarMin:  distance * 1.2,
		timeByFootMin: distance * 12.0,
	}
}

func toSessionResponse(session *routeSession) *response_models.RouteSession {
	out := &response_models.RouteSession{
		SessionID:  session.id,
		State:      string(session.state),
		StartPoint: defaultStartPoint,
	}
	out.Destinations = make([]response_models.Attraction, 0, len(session.destinations))
	for _, destination := range session.destinations {
		out.Destinations = append(out.Destinations, toAttractionResponse(destination))
	}

	if session.state == RouteStateCalculated {
		totals := &response_models.RouteTotals{}
		for _, leg := range session.legs {
			totals.DistanceKm += leg.distanceKm
			totals.TimeByCarMin += leg.timeByCarMin
			totals.TimeByFootMin += leg.timeByFootMin
		}
		out.Totals = totals
	}
	return out
}

func toSavedRouteResponse(route db_models.SavedRoute) response_models.SavedRoute {
	out := response_models.SavedRoute{
		ID:                 route.ID.String(),
		Name:               route.Name,
		StartPoint:         route.StartPoint,
		TotalDistanceKm:    route.TotalDistanceKm,
		TotalTimeByCarMin:  route.TotalTimeByCarMin,
		TotalTimeByFootMin: route.TotalTimeByFootMin,
	}
	out.Points = make([]response_models.RoutePoint, len(route.Points))
	for i, point := range route.Points {
		out.Points[i] = response_models.RoutePoint{
			DistanceToPrevKm:    point.DistanceToPrevKm,
			TimeByCarToPrevMin:  point.TimeByCarToPrevMin,
			TimeByFootToPrevMin: point.TimeByFootToPrevMin,
		}
	}
	return out
}

func ptr(v float64) *float64 { return &v }
