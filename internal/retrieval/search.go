// Package retrieval fans out the per-request knowledge queries against the
// vector search collaborator and merges their results into one fragment batch.
package retrieval

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/maya/adcopy-agent/internal/types"
)

// Search defaults applied to every fan-out query
const (
	DefaultLimit         = 10
	DefaultMinSimilarity = 0.3
)

// Fixed query texts, one per knowledge area the profile synthesizer consumes.
// The local area query is parameterized on the campaign location.
const (
	queryBrandVoice     = "brand voice tone personality messaging style guidelines"
	queryDemographics   = "target audience demographics resident lifestyle income age"
	queryPropertyFields = "property amenities features floor plans community highlights"
	queryLocalAreaFmt   = "neighborhood local area attractions near %s"
)

// Searcher is the vector search collaborator. Implementations are scoped to a
// single client's knowledge base.
type Searcher interface {
	Search(ctx context.Context, query string, limit int, minSimilarity float64) ([]types.Fragment, error)
}

// SearchError represents a failed retrieval query. Any single query failure
// fails the whole batch; there is no partial-result tolerance here.
type SearchError struct {
	Query string
	Cause error
}

func (e *SearchError) Error() string {
	return fmt.Sprintf("retrieval query %q failed: %v", e.Query, e.Cause)
}

func (e *SearchError) Unwrap() error {
	return e.Cause
}

// Queries returns the four fan-out query texts for a campaign request
func Queries(req *types.CampaignRequest) []string {
	return []string{
		queryBrandVoice,
		queryDemographics,
		queryPropertyFields,
		fmt.Sprintf(queryLocalAreaFmt, req.Location),
	}
}

// Retrieve issues the four queries concurrently and merges the results.
// Classification must not start until every query has returned, so the
// errgroup wait is a hard barrier.
func Retrieve(ctx context.Context, searcher Searcher, req *types.CampaignRequest) ([]types.Fragment, error) {
	queries := Queries(req)
	results := make([][]types.Fragment, len(queries))
	var mu sync.Mutex

	g, gCtx := errgroup.WithContext(ctx)
	for i, query := range queries {
		g.Go(func() error {
			frags, err := searcher.Search(gCtx, query, DefaultLimit, DefaultMinSimilarity)
			if err != nil {
				return &SearchError{Query: query, Cause: err}
			}
			mu.Lock()
			results[i] = frags
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return Merge(results), nil
}

// Merge flattens per-query results into one batch, deduplicating by exact
// content equality. The first occurrence wins; later duplicates only raise
// the kept fragment's similarity if theirs is higher. Position reflects the
// merged order and is what the stable classification sort falls back to.
func Merge(results [][]types.Fragment) []types.Fragment {
	seen := make(map[string]int)
	merged := make([]types.Fragment, 0)

	for _, batch := range results {
		for _, frag := range batch {
			if idx, dup := seen[frag.Content]; dup {
				if frag.Similarity > merged[idx].Similarity {
					merged[idx].Similarity = frag.Similarity
				}
				continue
			}
			frag.Position = len(merged)
			seen[frag.Content] = len(merged)
			merged = append(merged, frag)
		}
	}

	return merged
}
