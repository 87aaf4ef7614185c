package fetch

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gaurav-prasanna/sheetfolio/core"
	"github.com/gaurav-prasanna/sheetfolio/core/decode"
	"github.com/google/uuid"
)

// inflight records the newest request issued for one source key.
type inflight struct {
	cancel     context.CancelFunc
	generation uint64
}

// Sources fetches spreadsheet exports with one live request per source key.
// Issuing a request cancels the previous one for the same key, and a
// response is accepted only while its generation is still the newest.
type Sources struct {
	fetcher core.Fetcher
	now     func() time.Time

	mu       sync.Mutex
	inflight map[core.SourceKey]inflight
	next     uint64
}

// NewSources wraps fetcher with per-key staleness tracking.
func NewSources(fetcher core.Fetcher) *Sources {
	return &Sources{
		fetcher:  fetcher,
		now:      time.Now,
		inflight: make(map[core.SourceKey]inflight),
	}
}

// FetchSource fetches and decodes the export at rawURL for key.
// It returns core.ErrStaleResponse when a newer call for key was issued
// before this one resolved, and *core.NetworkError on transport or status
// failures.
func (s *Sources) FetchSource(ctx context.Context, rawURL string, key core.SourceKey) ([]core.Row, error) {
	reqCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	gen := s.begin(key, cancel)

	result, err := s.fetcher.Fetch(reqCtx, s.withCacheBuster(rawURL))
	if !s.isCurrent(key, gen) {
		return nil, core.ErrStaleResponse
	}
	if err != nil {
		return nil, err
	}
	return decode.Decode(string(result.Body)), nil
}

// begin cancels the previous request for key and records a new generation.
func (s *Sources) begin(key core.SourceKey, cancel context.CancelFunc) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.inflight[key]; ok && prev.cancel != nil {
		prev.cancel()
	}
	s.next++
	s.inflight[key] = inflight{cancel: cancel, generation: s.next}
	return s.next
}

func (s *Sources) isCurrent(key core.SourceKey, gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inflight[key].generation == gen
}

// withCacheBuster appends a timestamp and a random token so intermediaries
// never answer from cache.
func (s *Sources) withCacheBuster(rawURL string) string {
	t := strconv.FormatInt(s.now().UnixMilli(), 10)
	r := strings.ReplaceAll(uuid.NewString(), "-", "")

	u, err := url.Parse(rawURL)
	if err != nil {
		sep := "?"
		if strings.Contains(rawURL, "?") {
			sep = "&"
		}
		return rawURL + sep + "t=" + t + "&r=" + r
	}
	q := u.Query()
	q.Set("t", t)
	q.Set("r", r)
	u.RawQuery = q.Encode()
	return u.String()
}
