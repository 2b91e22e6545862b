package collector

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

const chartBody = `{
	"chart": {
		"result": [{
			"timestamp": [1700000000, 1700086400, 1700172800],
			"indicators": {
				"quote": [{"close": [100.5, null, 102.0]}],
				"adjclose": [{"adjclose": [99.5, null, 101.0]}]
			}
		}],
		"error": null
	}
}`

func TestYahooFetcher_FetchDailyCloses(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v8/finance/chart/SPY" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("range"); got != "5y" {
			t.Errorf("range = %s, want 5y", got)
		}
		fmt.Fprint(w, chartBody)
	}))
	defer srv.Close()

	f := &YahooFetcher{BaseURL: srv.URL, Client: srv.Client()}
	points, err := f.FetchDailyCloses("SPY", "5y")
	if err != nil {
		t.Fatalf("FetchDailyCloses: %v", err)
	}

	// null bar dropped, adjclose preferred over raw close
	if len(points) != 2 {
		t.Fatalf("got %d points, want 2", len(points))
	}
	if points[0].Close != 99.5 || points[1].Close != 101.0 {
		t.Errorf("closes = %v, %v, want 99.5, 101.0", points[0].Close, points[1].Close)
	}
	if !points[0].Time.Before(points[1].Time) {
		t.Error("points not sorted ascending")
	}
}

func TestYahooFetcher_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"chart": {"result": null, "error": {"code": "Not Found", "description": "No data found, symbol may be delisted"}}}`)
	}))
	defer srv.Close()

	f := &YahooFetcher{BaseURL: srv.URL, Client: srv.Client()}
	if _, err := f.FetchDailyCloses("BOGUS", "1y"); err == nil {
		t.Fatal("expected error for api error response")
	}
}

func TestYahooFetcher_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	f := &YahooFetcher{BaseURL: srv.URL, Client: srv.Client()}
	if _, err := f.FetchDailyCloses("SPY", "1y"); err == nil {
		t.Fatal("expected error for non-200 status")
	}
}
