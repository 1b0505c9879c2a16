package app

import (
	"net/http"
	"strconv"
	"time"
)

// Server bundles the resolved location, the clock and the event source the
// handlers read from. Tests inject a frozen clock through Now.
type Server struct {
	Loc    *time.Location
	Now    func() time.Time
	Source EventSource
}

// NewServer wires a server around the static catalog and the real clock.
func NewServer(loc *time.Location) *Server {
	return &Server{
		Loc:    loc,
		Now:    time.Now,
		Source: StaticCatalog{},
	}
}

// Routes builds the handler tree with the middleware chain applied.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/today", s.HandleToday)
	mux.HandleFunc("/health", s.HandleHealth)
	mux.HandleFunc("/api/events", s.HandleYearEvents)
	mux.HandleFunc("/api/download", s.HandleDownload)
	mux.HandleFunc("/api/subscribe", s.HandleSubscribe)
	return Chain(mux, RequestID, RequestLogger)
}

// HandleToday answers what is special about the current date
func (s *Server) HandleToday(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	WriteJSON(w, BuildToday(s.Now(), s.Loc, s.Source))
}

// HandleHealth reports liveness with the current instant
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	WriteJSON(w, map[string]string{
		"status":    StatusHealthy,
		"timestamp": s.Now().UTC().Format(time.RFC3339),
	})
}

// HandleYearEvents returns the event calendar for a year
// Query param: year (optional, defaults to current year)
func (s *Server) HandleYearEvents(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	year, ok := s.yearParam(w, r)
	if !ok {
		return
	}
	WriteJSON(w, BuildYearCalendar(year, s.Loc, s.Source))
}

// HandleDownload handles export downloads in ICS, CSV or JSON format
// Query params: year (optional), format (ics|csv|json)
func (s *Server) HandleDownload(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	year, ok := s.yearParam(w, r)
	if !ok {
		return
	}
	cal := BuildYearCalendar(year, s.Loc, s.Source)

	switch r.URL.Query().Get("format") {
	case "ics":
		GenerateICS(w, cal)
	case "csv":
		GenerateCSV(w, cal)
	case "json":
		GenerateJSON(w, cal)
	default:
		http.Error(w, ErrInvalidFormat, http.StatusBadRequest)
	}
}

// HandleSubscribe serves the ICS subscription feed. The feed spans last
// year through next year so subscribed calendars stay populated across the
// new-year boundary.
func (s *Server) HandleSubscribe(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	currentYear := s.Now().In(s.Loc).Year()

	var days []YearDay
	for year := currentYear - 1; year <= currentYear+1; year++ {
		days = append(days, EventsForYear(year, s.Source)...)
	}

	GenerateSubscriptionICS(w, s.Loc.String(), days)
}

// yearParam reads the year query parameter, defaulting to the current year
// in the configured zone. Writes the error response itself on bad input.
func (s *Server) yearParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	yearStr := r.URL.Query().Get("year")
	if yearStr == "" {
		return s.Now().In(s.Loc).Year(), true
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 1 || year > 9999 {
		http.Error(w, ErrInvalidYear, http.StatusBadRequest)
		return 0, false
	}
	return year, true
}
