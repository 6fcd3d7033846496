package services

import (
	"context"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"keliauk/internal/models/request_models"
	"keliauk/internal/models/response_models"
	"keliauk/internal/repositories"
	"keliauk/pkg/scheduler"
	"keliauk/pkg/utils"
)

type ScanStage string

const (
	ScanStageReady    ScanStage = "ready"
	ScanStageScanning ScanStage = "scanning"
	ScanStageScanned  ScanStage = "scanned"
)

// Enum orders are load-bearing: the prediction formula indexes into them.
var moonPhases = []string{
	"newMoon", "waxingCrescent", "firstQuarter", "waxingGibbous",
	"fullMoon", "waningGibbous", "lastQuarter", "waningCrescent",
}

var horoscopes = []string{
	"aries", "taurus", "gemini", "cancer", "leo", "virgo",
	"libra", "scorpio", "sagittarius", "capricorn", "aquarius", "pisces",
}

var palmScanImages = []string{
	"/static/palm-scan-1.webp",
	"/static/palm-scan-2.webp",
	"/static/palm-scan-3.webp",
	"/static/palm-scan-4.webp",
}

// SuggestIndex is the whole fortune-telling act: a hash-like index over the
// attraction list, not randomness. Identical inputs always pick the same
// attraction.
func SuggestIndex(moonPhaseIndex, horoscopeIndex, birthYear, attractionCount int) int {
	return (moonPhaseIndex + horoscopeIndex + birthYear%100) % attractionCount
}

// FortuneService runs palm-scan sessions: ready -> scanning -> scanned. The
// scan step is a timed simulation; predicting is only allowed once scanned,
// and a prediction resets the session back to ready.
type FortuneServiceInterface interface {
	StartScan() *response_models.ScanSession
	GetScan(sessionID string) (*response_models.ScanSession, error)
	Predict(ctx context.Context, sessionID string, request request_models.FortunePredictRequest) (*response_models.FortunePrediction, error)
	Cancel(sessionID string)
}

type scanSession struct {
	id         string
	stage      ScanStage
	scanResult string
	pending    scheduler.Handle
}

type FortuneService struct {
	mu             sync.Mutex
	sessions       map[string]*scanSession
	attractionRepo repositories.AttractionRepository
	sched          scheduler.Scheduler
	scanDelay      time.Duration
}

func NewFortuneService(attractionRepo repositories.AttractionRepository, sched scheduler.Scheduler, scanDelay time.Duration) FortuneServiceInterface {
	return &FortuneService{
		sessions:       make(map[string]*scanSession),
		attractionRepo: attractionRepo,
		sched:          sched,
		scanDelay:      scanDelay,
	}
}

func (f *FortuneService) StartScan() *response_models.ScanSession {
	f.mu.Lock()
	defer f.mu.Unlock()

	session := &scanSession{
		id:    uuid.New().String(),
		stage: ScanStageScanning,
	}
	f.sessions[session.id] = session

	sessionID := session.id
	session.pending = f.sched.Schedule(f.scanDelay, func() {
		f.completeScan(sessionID)
	})
	return toScanResponse(session)
}

func (f *FortuneService) completeScan(sessionID string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	session, ok := f.sessions[sessionID]
	if !ok || session.stage != ScanStageScanning {
		return
	}
	session.stage = ScanStageScanned
	session.scanResult = palmScanImages[rand.Intn(len(palmScanImages))]
	session.pending = nil
}

func (f *FortuneService) GetScan(sessionID string) (*response_models.ScanSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	session, ok := f.sessions[sessionID]
	if !ok {
		return nil, utils.ErrScanSessionNotFound
	}
	return toScanResponse(session), nil
}

func (f *FortuneService) Predict(ctx context.Context, sessionID string, request request_models.FortunePredictRequest) (*response_models.FortunePrediction, error) {
	moonIndex := indexOf(moonPhases, request.MoonPhase)
	if moonIndex < 0 {
		return nil, utils.ErrUnknownMoonPhase
	}
	horoscopeIndex := indexOf(horoscopes, request.Horoscope)
	if horoscopeIndex < 0 {
		return nil, utils.ErrUnknownHoroscope
	}

	f.mu.Lock()
	session, ok := f.sessions[sessionID]
	if !ok {
		f.mu.Unlock()
		return nil, utils.ErrScanSessionNotFound
	}
	switch session.stage {
	case ScanStageScanning:
		f.mu.Unlock()
		return nil, utils.ErrScanInProgress
	case ScanStageReady:
		f.mu.Unlock()
		return nil, utils.ErrScanNotReady
	}
	// A prediction consumes the scan.
	session.stage = ScanStageReady
	session.scanResult = ""
	f.mu.Unlock()

	attractions, err := f.attractionRepo.ListAll(ctx)
	if err != nil {
		log.Printf("Error listing attractions: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if len(attractions) == 0 {
		return nil, utils.ErrAttractionNotFound
	}

	index := SuggestIndex(moonIndex, horoscopeIndex, request.BirthYear, len(attractions))
	return &response_models.FortunePrediction{
		SuggestedAttraction: toAttractionResponse(attractions[index]),
		MoonPhase:           request.MoonPhase,
		Horoscope:           request.Horoscope,
		BirthYear:           request.BirthYear,
	}, nil
}

// Cancel tears down a session and stops any pending scan callback, so a
// cancelled scan can never complete afterwards.
func (f *FortuneService) Cancel(sessionID string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	session, ok := f.sessions[sessionID]
	if !ok {
		return
	}
	if session.pending != nil {
		session.pending.Cancel()
	}
	delete(f.sessions, sessionID)
}

func toScanResponse(session *scanSession) *response_models.ScanSession {
	return &response_models.ScanSession{
		SessionID:  session.id,
		Stage:      string(session.stage),
		ScanResult: session.scanResult,
	}
}

func indexOf(values []string, value string) int {
	for i, v := range values {
		if v == value {
			return i
		}
	}
	return -1
}
