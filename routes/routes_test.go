package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"painterbook/database/repository/memory"
	"painterbook/handlers"
	"painterbook/middleware"
	"painterbook/models"
	"painterbook/services/availability"
	"painterbook/services/booking"
	"painterbook/services/scheduling"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var testNow = time.Date(2030, 3, 10, 8, 0, 0, 0, time.UTC)

func at(day, hour int) time.Time {
	return time.Date(2030, 3, day, hour, 0, 0, 0, time.UTC)
}

type testServer struct {
	router *gin.Engine
	store  *memory.Store
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memory.NewStore().WithClock(func() time.Time { return testNow })
	engine := &scheduling.DefaultMatchingEngine{
		Availability: store.Availability(),
		Bookings:     store.Bookings(),
		Logger:       zap.NewNop(),
		Clock:        func() time.Time { return testNow },
	}
	bookingSvc := &booking.DefaultBookingService{
		Engine:   engine,
		Bookings: store.Bookings(),
		Logger:   zap.NewNop(),
	}
	availabilitySvc := availability.NewAvailabilityService(store.Availability(), zap.NewNop())

	r := gin.New()
	RegisterRoutes(r, handlers.NewHandlerBundle(availabilitySvc, bookingSvc, engine, nil))
	return &testServer{router: r, store: store}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) seed(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	if err := s.store.Availability().Create(ctx, &models.Availability{
		PainterID:  "painter-1",
		TimeWindow: models.TimeWindow{Start: at(11, 9), End: at(11, 18)},
	}); err != nil {
		t.Fatal(err)
	}
	if err := s.store.Bookings().Create(ctx, &models.Booking{
		PainterID:  "painter-1",
		CustomerID: "customer-9",
		TimeWindow: models.TimeWindow{Start: at(11, 14), End: at(11, 15)},
	}); err != nil {
		t.Fatal(err)
	}
}

func decode(t *testing.T, w *httptest.ResponseRecorder, into interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), into); err != nil {
		t.Fatalf("decode %s: %v", w.Body.String(), err)
	}
}

func windowBody(from, to time.Time) map[string]string {
	return map[string]string{"startTime": from.Format(time.RFC3339), "endTime": to.Format(time.RFC3339)}
}

func TestAvailabilityEndpoints(t *testing.T) {
	s := newTestServer(t)
	painter1 := map[string]string{middleware.PainterIDHeader: "painter-1"}

	w := s.do(t, http.MethodPost, "/availability", windowBody(at(11, 9), at(11, 18)), painter1)
	if w.Code != http.StatusOK {
		t.Fatalf("create: %d %s", w.Code, w.Body)
	}
	var created models.AvailabilityResponse
	decode(t, w, &created)
	if created.ID == "" || created.PainterID != "painter-1" || created.StartTime != "2030-03-11T09:00:00Z" {
		t.Fatalf("unexpected availability %+v", created)
	}

	body := windowBody(at(12, 9), at(12, 12))
	body["painterId"] = "painter-2"
	if w := s.do(t, http.MethodPost, "/availability", body, nil); w.Code != http.StatusOK {
		t.Fatalf("create with body painter: %d %s", w.Code, w.Body)
	}

	tests := []struct {
		name     string
		body     interface{}
		headers  map[string]string
		wantCode int
	}{
		{"inverted window", windowBody(at(11, 18), at(11, 9)), painter1, http.StatusBadRequest},
		{"missing fields", map[string]string{"startTime": at(11, 9).Format(time.RFC3339)}, painter1, http.StatusBadRequest},
		{"missing painter", windowBody(at(11, 9), at(11, 10)), nil, http.StatusBadRequest},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if w := s.do(t, http.MethodPost, "/availability", tc.body, tc.headers); w.Code != tc.wantCode {
				t.Fatalf("status = %d, want %d (%s)", w.Code, tc.wantCode, w.Body)
			}
		})
	}

	w = s.do(t, http.MethodGet, "/availability/me?painterId=painter-1", nil, nil)
	var list []models.AvailabilityResponse
	decode(t, w, &list)
	if w.Code != http.StatusOK || len(list) != 1 || list[0].PainterID != "painter-1" {
		t.Fatalf("unexpected list %d %s", w.Code, w.Body)
	}
}

func TestBookingRequestFlow(t *testing.T) {
	s := newTestServer(t)
	s.seed(t)
	customer := map[string]string{middleware.CustomerIDHeader: "customer-1"}

	w := s.do(t, http.MethodPost, "/bookings/booking-request", windowBody(at(11, 10), at(11, 11)), customer)
	if w.Code != http.StatusOK {
		t.Fatalf("booking: %d %s", w.Code, w.Body)
	}
	var confirmed models.BookingResponse
	decode(t, w, &confirmed)
	if confirmed.Painter.ID != "painter-1" || confirmed.Painter.Name != "Painter 1" || confirmed.Status != "confirmed" {
		t.Fatalf("unexpected booking %+v", confirmed)
	}

	w = s.do(t, http.MethodPost, "/bookings/booking-request", windowBody(at(11, 14), at(11, 15)), customer)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d %s", w.Code, w.Body)
	}
	var conflict models.BookingErrorResponse
	decode(t, w, &conflict)
	if conflict.Error != "No painters are available for the requested time slot." {
		t.Fatalf("unexpected error %q", conflict.Error)
	}
	wantStarts := []string{"2030-03-11T13:00:00Z", "2030-03-11T12:00:00Z", "2030-03-11T16:00:00Z"}
	if len(conflict.Suggestions) != len(wantStarts) {
		t.Fatalf("got %d suggestions: %s", len(conflict.Suggestions), w.Body)
	}
	for i, want := range wantStarts {
		if conflict.Suggestions[i].StartTime != want || conflict.Suggestions[i].Message != "Available same day" {
			t.Errorf("suggestion %d = %+v", i, conflict.Suggestions[i])
		}
	}

	half := 30 * time.Minute
	w = s.do(t, http.MethodPost, "/bookings/booking-request", windowBody(at(11, 10).Add(half), at(11, 11).Add(half)), customer)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for own overlap, got %d %s", w.Code, w.Body)
	}

	if w := s.do(t, http.MethodPost, "/bookings/booking-request", windowBody(at(11, 16), at(11, 17)), nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without customer, got %d", w.Code)
	}
	if w := s.do(t, http.MethodPost, "/bookings/booking-request", windowBody(at(11, 17), at(11, 16)), customer); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for inverted window, got %d", w.Code)
	}

	// Legacy path behaves the same.
	if w := s.do(t, http.MethodPost, "/booking-request", windowBody(at(11, 16), at(11, 17)), customer); w.Code != http.StatusOK {
		t.Fatalf("legacy booking: %d %s", w.Code, w.Body)
	}

	w = s.do(t, http.MethodGet, "/bookings/me", nil, customer)
	var mine []models.BookingResponse
	decode(t, w, &mine)
	if len(mine) != 2 || mine[0].StartTime != "2030-03-11T10:00:00Z" || mine[1].StartTime != "2030-03-11T16:00:00Z" {
		t.Fatalf("unexpected customer bookings %s", w.Body)
	}

	w = s.do(t, http.MethodGet, "/bookings/painter?painterId=painter-1", nil, nil)
	var painter []models.PainterBookingResponse
	decode(t, w, &painter)
	if len(painter) != 3 || painter[1].CustomerID != "customer-9" {
		t.Fatalf("unexpected painter bookings %s", w.Body)
	}
	if w := s.do(t, http.MethodGet, "/bookings/painter", nil, nil); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without painter, got %d", w.Code)
	}
}

func TestSchedulingEndpoints(t *testing.T) {
	s := newTestServer(t)
	s.seed(t)

	conflictTests := []struct {
		from, to int
		want     bool
	}{
		{13, 14, false},
		{14, 15, true},
		{15, 16, true},
		{16, 17, false},
	}
	for _, tc := range conflictTests {
		path := "/api/scheduling/conflict?painterId=painter-1&startTime=" + at(11, tc.from).Format(time.RFC3339) +
			"&endTime=" + at(11, tc.to).Format(time.RFC3339)
		w := s.do(t, http.MethodGet, path, nil, nil)
		var resp struct {
			HasConflict bool `json:"hasConflict"`
		}
		decode(t, w, &resp)
		if w.Code != http.StatusOK || resp.HasConflict != tc.want {
			t.Errorf("%d-%d: status %d conflict %v, want %v", tc.from, tc.to, w.Code, resp.HasConflict, tc.want)
		}
	}

	path := "/api/scheduling/suggestions?limit=2&startTime=" + at(11, 14).Format(time.RFC3339) + "&endTime=" + at(11, 15).Format(time.RFC3339)
	w := s.do(t, http.MethodGet, path, nil, nil)
	var suggestions []models.SuggestionResponse
	decode(t, w, &suggestions)
	if len(suggestions) != 2 || suggestions[0].StartTime != "2030-03-11T13:00:00Z" || suggestions[0].OffsetMinutes != 60 {
		t.Fatalf("unexpected suggestions %s", w.Body)
	}

	if w := s.do(t, http.MethodGet, "/api/scheduling/suggestions?startTime=yesterday", nil, nil); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad query, got %d", w.Code)
	}
}

func TestHealthAndNotFound(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/health", nil, nil)
	var health map[string]interface{}
	decode(t, w, &health)
	if w.Code != http.StatusOK || health["status"] != "OK" || health["version"] != Version {
		t.Fatalf("unexpected health %d %s", w.Code, w.Body)
	}

	w = s.do(t, http.MethodGet, "/nope?x=1", nil, nil)
	var notFound map[string]string
	decode(t, w, &notFound)
	if w.Code != http.StatusNotFound || notFound["error"] != "Endpoint not found" || notFound["path"] != "/nope?x=1" {
		t.Fatalf("unexpected 404 %d %s", w.Code, w.Body)
	}
}
