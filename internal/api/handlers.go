package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"movie_feed/internal/feed"
	"movie_feed/internal/rss"
	"movie_feed/internal/source/tmdb"
)

func (s *Server) handleOK(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleCombinedCredits(w http.ResponseWriter, r *http.Request) {
	personID, err := strconv.ParseInt(mux.Vars(r)["person_id"], 10, 64)
	if err != nil || personID <= 0 {
		http.Error(w, fmt.Sprintf("invalid person id %q", mux.Vars(r)["person_id"]), http.StatusBadRequest)
		return
	}

	req, err := feed.ParseQuery(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f, err := s.feeds.Feed(r.Context(), personID, req)
	if err != nil {
		s.writeUpstreamError(w, r, err)
		return
	}

	body, err := rss.Marshal(f)
	if err != nil {
		s.logger.Error("failed to render feed",
			"request_id", RequestID(r.Context()),
			"person_id", personID,
			"error", err,
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", rss.ContentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// writeUpstreamError passes documented TMDB errors through with their status
// and maps every other failure to 500.
func (s *Server) writeUpstreamError(w http.ResponseWriter, r *http.Request, err error) {
	var apiErr *tmdb.APIError
	if errors.As(err, &apiErr) {
		http.Error(w, "error received from tmdb: "+apiErr.Message, apiErr.Status)
		return
	}

	s.logger.Warn("failed to build feed",
		"request_id", RequestID(r.Context()),
		"error", err,
	)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
