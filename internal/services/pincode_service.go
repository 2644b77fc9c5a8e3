package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/freightlink/profile-api/internal/config"
	"github.com/freightlink/profile-api/internal/logging"
	"go.uber.org/zap"
)

// PincodeResult is the city/state resolved for a postal pincode
type PincodeResult struct {
	Pincode string `json:"pincode"`
	City    string `json:"city"`
	State   string `json:"state"`
}

// PincodeService resolves postal pincodes to city/state via the upstream
// postal API. Keystroke-driven callers go through LookupDebounced, which
// restarts a fixed delay on every edit and fires the lookup only when the
// user pauses. Debounce state is held per driver: each driver's keystroke
// stream is its own timer, so one driver's edits never cancel another's
// pending lookup.
type PincodeService struct {
	client   *http.Client
	baseURL  string
	debounce time.Duration
	logger   *zap.Logger

	mu         sync.Mutex
	debouncers map[string]*Debouncer
}

// NewPincodeService creates a new pincode lookup service
func NewPincodeService() *PincodeService {
	return &PincodeService{
		client:     &http.Client{Timeout: 10 * time.Second},
		baseURL:    config.AppConfig.PincodeLookupURL,
		debounce:   config.AppConfig.PincodeLookupDebounce,
		debouncers: make(map[string]*Debouncer),
		logger:     logging.Logger,
	}
}

// NewPincodeServiceWithClient creates a pincode service against a specific
// HTTP client and base URL
func NewPincodeServiceWithClient(client *http.Client, baseURL string, debounce time.Duration) *PincodeService {
	return &PincodeService{
		client:     client,
		baseURL:    baseURL,
		debounce:   debounce,
		debouncers: make(map[string]*Debouncer),
		logger:     zap.NewNop(),
	}
}

// debouncerFor returns the debouncer guarding one driver's keystroke stream,
// creating it on first use
func (s *PincodeService) debouncerFor(driverID string) *Debouncer {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.debouncers[driverID]
	if !ok {
		d = NewDebouncer(s.debounce)
		s.debouncers[driverID] = d
	}
	return d
}

// upstream response shape: a one-element array with a status and a list of
// post offices
type pincodeUpstreamResponse []struct {
	Status     string `json:"Status"`
	PostOffice []struct {
		Name     string `json:"Name"`
		District string `json:"District"`
		State    string `json:"State"`
	} `json:"PostOffice"`
}

// Lookup resolves a pincode against the upstream API
func (s *PincodeService) Lookup(ctx context.Context, pincode string) (*PincodeResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/"+pincode, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pincode lookup returned status %d", resp.StatusCode)
	}

	var upstream pincodeUpstreamResponse
	if err := json.NewDecoder(resp.Body).Decode(&upstream); err != nil {
		return nil, err
	}
	if len(upstream) == 0 || upstream[0].Status != "Success" || len(upstream[0].PostOffice) == 0 {
		return nil, fmt.Errorf("no record found for pincode %s", pincode)
	}

	office := upstream[0].PostOffice[0]
	return &PincodeResult{
		Pincode: pincode,
		City:    office.District,
		State:   office.State,
	}, nil
}

// LookupDebounced schedules a lookup after the debounce delay, restarting
// the delay if the same driver triggers again before it elapses. The
// callback receives the result or the error once the lookup actually runs.
func (s *PincodeService) LookupDebounced(driverID, pincode string, callback func(*PincodeResult, error)) {
	s.debouncerFor(driverID).Trigger(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		result, err := s.Lookup(ctx, pincode)
		if err != nil {
			s.logger.Warn("pincode lookup failed",
				zap.String("pincode", pincode),
				zap.Error(err))
		}
		callback(result, err)
	})
}

// CancelPending drops the driver's scheduled lookup, if any
func (s *PincodeService) CancelPending(driverID string) {
	s.mu.Lock()
	d, ok := s.debouncers[driverID]
	s.mu.Unlock()

	if ok {
		d.Cancel()
	}
}
