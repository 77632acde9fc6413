// Package iofetch downloads articulation agreements from the
// ASSIST.org API into the local corpus directory.
//
// ASSIST rate-limits aggressively (roughly 50 requests every 5
// minutes), so requests run sequentially and a 429 response pauses
// the whole run. Missing agreements are normal: not every community
// college has an agreement with every university.
package iofetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/akash-pandit/CACourses/pkg/assist"
	"github.com/akash-pandit/CACourses/pkg/config"
	"github.com/akash-pandit/CACourses/pkg/etl"
	"github.com/akash-pandit/CACourses/pkg/institutions"
	"github.com/gnames/gn"
)

// rateLimitPause is how long to wait after a 429 before retrying.
const rateLimitPause = 5*time.Minute + time.Second

// queryTypes maps document kinds to the API's query type segment.
var queryTypes = map[assist.Kind]string{
	assist.KindPrefixes: "AllPrefixes",
	assist.KindMajors:   "AllMajors",
}

type iofetch struct {
	cfg    *config.Config
	inst   institutions.Institutions
	client *http.Client

	// pause is swapped out in tests.
	pause func(ctx context.Context, d time.Duration) error
}

// New creates a Fetcher that saves agreements under the configured
// data directory, one subdirectory per receiving institution.
func New(cfg *config.Config, inst institutions.Institutions) etl.Fetcher {
	return &iofetch{
		cfg:    cfg,
		inst:   inst,
		client: &http.Client{Timeout: 30 * time.Second},
		pause:  sleepCtx,
	}
}

// job is one pending download.
type job struct {
	cc, uni int
	kind    assist.Kind
}

func (f *iofetch) Fetch(ctx context.Context) error {
	reg, err := f.inst.Load()
	if err != nil {
		return err
	}

	dataDir := f.cfg.ResolvedDataDir()
	jobs := f.pendingJobs(reg, dataDir)
	if len(jobs) == 0 {
		gn.Info("All agreements are already downloaded")
		return nil
	}

	gn.Info(
		"Fetching %d agreements for %d colleges and %d universities",
		len(jobs), len(reg.CommunityColleges), len(reg.Universities),
	)

	var saved, missing int
	for _, j := range jobs {
		if err := ctx.Err(); err != nil {
			return err
		}

		ok, err := f.fetchOne(ctx, dataDir, j)
		if err != nil {
			return err
		}
		if ok {
			saved++
		} else {
			missing++
		}
	}

	gn.Info("Saved %d agreements, %d pairs have none", saved, missing)
	return nil
}

// pendingJobs enumerates every (college, university, kind) triple
// whose agreement file is not on disk yet.
func (f *iofetch) pendingJobs(
	reg *institutions.Registry,
	dataDir string,
) []job {
	var res []job
	for _, uni := range reg.Universities {
		for _, cc := range reg.CommunityColleges {
			for _, kind := range assist.Kinds() {
				fp := filepath.Join(
					dataDir,
					fmt.Sprintf("%d", uni.ID),
					assist.PairFileName(cc.ID, uni.ID, kind),
				)
				if _, err := os.Stat(fp); err == nil {
					continue
				}
				res = append(res, job{cc: cc.ID, uni: uni.ID, kind: kind})
			}
		}
	}
	return res
}

// agreementResponse is the envelope the API wraps agreements in. The
// articulations payload arrives as a JSON string, not as nested JSON.
type agreementResponse struct {
	Result struct {
		Articulations string `json:"articulations"`
	} `json:"result"`
}

// fetchOne downloads a single agreement. It returns true when a file
// was written, false when the pair has no agreement.
func (f *iofetch) fetchOne(
	ctx context.Context,
	dataDir string,
	j job,
) (bool, error) {
	url := fmt.Sprintf(
		"%s?Key=%d/%d/to/%d/%s",
		f.cfg.Fetch.BaseURL, f.cfg.Fetch.YearKey,
		j.cc, j.uni, queryTypes[j.kind],
	)

	body, status, err := f.get(ctx, url)
	if err != nil {
		return false, err
	}

	if status != http.StatusOK {
		// 400 means no agreement exists for the pair.
		slog.Info("No agreement",
			"cc", j.cc, "uni", j.uni, "kind", j.kind, "status", status)
		return false, nil
	}

	var envelope agreementResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return false, badResponseError(url, err)
	}

	raw := []byte(envelope.Result.Articulations)
	if !hasArticulations(raw) {
		slog.Info("Empty agreement", "cc", j.cc, "uni", j.uni, "kind", j.kind)
		return false, nil
	}

	fp := filepath.Join(
		dataDir,
		fmt.Sprintf("%d", j.uni),
		assist.PairFileName(j.cc, j.uni, j.kind),
	)
	if err := writeAgreement(fp, raw); err != nil {
		return false, err
	}

	slog.Info("Saved agreement", "cc", j.cc, "uni", j.uni, "kind", j.kind)
	return true, nil
}

// get performs one HTTP request, waiting out rate-limit responses.
func (f *iofetch) get(ctx context.Context, url string) ([]byte, int, error) {
	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, 0, requestError(url, err)
		}

		resp, err := f.client.Do(req)
		if err != nil {
			return nil, 0, requestError(url, err)
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, 0, requestError(url, err)
		}

		if resp.StatusCode != http.StatusTooManyRequests {
			return body, resp.StatusCode, nil
		}

		slog.Warn("Rate limited, pausing", "pause", rateLimitPause)
		if err := f.pause(ctx, rateLimitPause); err != nil {
			return nil, 0, err
		}
	}
}

// hasArticulations reports whether the unwrapped payload holds any
// rows. The API returns "[]" or an empty string when a pair has an
// agreement shell but no articulations.
func hasArticulations(raw []byte) bool {
	var rows []any
	if err := json.Unmarshal(raw, &rows); err != nil {
		return false
	}
	return len(rows) > 0
}

func writeAgreement(fp string, raw []byte) error {
	if err := os.MkdirAll(filepath.Dir(fp), 0755); err != nil {
		return writeError(fp, err)
	}
	if err := os.WriteFile(fp, raw, 0644); err != nil {
		return writeError(fp, err)
	}
	return nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
