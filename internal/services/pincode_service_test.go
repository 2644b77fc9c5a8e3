package services

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gopkg.in/h2non/gock.v1"
)

const testPincodeBase = "http://postal.test/pincode"

func newTestPincodeService(t *testing.T, debounce time.Duration) *PincodeService {
	t.Helper()
	client := &http.Client{}
	gock.InterceptClient(client)
	t.Cleanup(gock.Off)
	return NewPincodeServiceWithClient(client, testPincodeBase, debounce)
}

func successBody() []map[string]interface{} {
	return []map[string]interface{}{
		{
			"Status": "Success",
			"PostOffice": []map[string]interface{}{
				{"Name": "Fort", "District": "Mumbai", "State": "Maharashtra"},
			},
		},
	}
}

func TestPincodeLookup_Success(t *testing.T) {
	svc := newTestPincodeService(t, time.Millisecond)

	gock.New("http://postal.test").
		Get("/pincode/400001").
		Reply(200).
		JSON(successBody())

	result, err := svc.Lookup(context.Background(), "400001")
	assert.NoError(t, err)
	assert.Equal(t, "400001", result.Pincode)
	assert.Equal(t, "Mumbai", result.City)
	assert.Equal(t, "Maharashtra", result.State)
}

func TestPincodeLookup_NoRecord(t *testing.T) {
	svc := newTestPincodeService(t, time.Millisecond)

	gock.New("http://postal.test").
		Get("/pincode/000000").
		Reply(200).
		JSON([]map[string]interface{}{{"Status": "Error"}})

	result, err := svc.Lookup(context.Background(), "000000")
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestPincodeLookup_UpstreamFailure(t *testing.T) {
	svc := newTestPincodeService(t, time.Millisecond)

	gock.New("http://postal.test").
		Get("/pincode/400001").
		Reply(503)

	result, err := svc.Lookup(context.Background(), "400001")
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestPincodeLookupDebounced_CollapsesRapidTriggers(t *testing.T) {
	svc := newTestPincodeService(t, 50*time.Millisecond)

	// Only the final keystroke's pincode should ever reach the upstream.
	gock.New("http://postal.test").
		Get("/pincode/400001").
		Reply(200).
		JSON(successBody())

	var calls int32
	done := make(chan *PincodeResult, 1)
	callback := func(result *PincodeResult, err error) {
		atomic.AddInt32(&calls, 1)
		done <- result
	}

	svc.LookupDebounced("d-1", "4", callback)
	svc.LookupDebounced("d-1", "40", callback)
	svc.LookupDebounced("d-1", "400001", callback)

	select {
	case result := <-done:
		assert.NotNil(t, result)
		assert.Equal(t, "Mumbai", result.City)
	case <-time.After(time.Second):
		t.Fatal("debounced lookup never completed")
	}

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestPincodeLookupDebounced_IndependentPerDriver(t *testing.T) {
	svc := newTestPincodeService(t, 30*time.Millisecond)

	gock.New("http://postal.test").
		Get("/pincode/400001").
		Reply(200).
		JSON(successBody())
	gock.New("http://postal.test").
		Get("/pincode/110001").
		Reply(200).
		JSON([]map[string]interface{}{
			{
				"Status": "Success",
				"PostOffice": []map[string]interface{}{
					{"Name": "Connaught Place", "District": "New Delhi", "State": "Delhi"},
				},
			},
		})

	// Two drivers editing inside the same debounce window must each get
	// their own lookup; the second trigger must not cancel the first.
	firstDone := make(chan *PincodeResult, 1)
	secondDone := make(chan *PincodeResult, 1)
	svc.LookupDebounced("d-1", "400001", func(result *PincodeResult, err error) {
		firstDone <- result
	})
	svc.LookupDebounced("d-2", "110001", func(result *PincodeResult, err error) {
		secondDone <- result
	})

	for name, done := range map[string]chan *PincodeResult{"d-1": firstDone, "d-2": secondDone} {
		select {
		case result := <-done:
			assert.NotNil(t, result, "driver %s lookup returned nil", name)
		case <-time.After(time.Second):
			t.Fatalf("driver %s lookup never completed", name)
		}
	}
}

func TestPincodeLookupDebounced_CancelPending(t *testing.T) {
	svc := newTestPincodeService(t, 30*time.Millisecond)

	var cancelled, kept int32
	svc.LookupDebounced("d-1", "400001", func(*PincodeResult, error) {
		atomic.AddInt32(&cancelled, 1)
	})
	svc.LookupDebounced("d-2", "110001", func(*PincodeResult, error) {
		atomic.AddInt32(&kept, 1)
	})
	svc.CancelPending("d-1")

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&cancelled))
	assert.Equal(t, int32(1), atomic.LoadInt32(&kept))
}
