// Package search ranks indexed documents against free-text queries using
// classic TF-IDF.
package search

import (
	"cmp"
	"log/slog"
	"math"
	"slices"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"localsearch/internal/index"
	"localsearch/internal/tokenizer"
)

// cacheSize bounds the LRU cache of query results.
const cacheSize = 128

// Engine scores documents in one immutable Index snapshot. A reindex builds
// a new Engine over the new Index instead of mutating this one, so cached
// results never go stale.
type Engine struct {
	ix     *index.Index
	totals map[string]int // per-document total term count
	cache  *lru.Cache[string, []string]
}

// New creates an Engine over ix. The per-document term totals are
// precomputed once; they are the tf denominators for every query.
func New(ix *index.Index) *Engine {
	totals := make(map[string]int, ix.Len())
	for path, doc := range ix.Documents {
		totals[path] = tokenizer.TotalCount(doc.Terms)
	}

	// Cache creation only fails for a non-positive size.
	cache, _ := lru.New[string, []string](cacheSize)

	return &Engine{
		ix:     ix,
		totals: totals,
		cache:  cache,
	}
}

// Index returns the snapshot this engine scores against.
func (e *Engine) Index() *index.Index {
	return e.ix
}

// Query scores every indexed document against the raw whitespace-split query
// terms and returns document paths ranked by descending relevance. Documents
// scoring exactly 0 are excluded, so an empty term list yields an empty
// result. Scores are not exposed.
//
// The returned slice is the caller's to keep; the cached ranking is never
// handed out directly.
func (e *Engine) Query(terms []string) []string {
	key := strings.Join(terms, "\x00")
	if hit, ok := e.cache.Get(key); ok {
		return slices.Clone(hit)
	}

	start := time.Now()
	results := e.rank(terms)
	e.cache.Add(key, results)

	slog.Debug("query scored",
		slog.Int("terms", len(terms)),
		slog.Int("results", len(results)),
		slog.Duration("elapsed", time.Since(start)))
	return slices.Clone(results)
}

type scoredDoc struct {
	path  string
	score float64
}

// rank computes score(d) = Σ tf(t,d) · idf(t) over all query terms.
func (e *Engine) rank(terms []string) []string {
	n := e.ix.Len()
	if n == 0 || len(terms) == 0 {
		return nil
	}

	// Normalize terms with the same stemming rule used at index time, and
	// compute each stemmed term's document frequency once per query.
	stemmed := make([]string, len(terms))
	idf := make(map[string]float64, len(terms))
	for i, t := range terms {
		st := tokenizer.Stem(t)
		stemmed[i] = st
		if _, done := idf[st]; done {
			continue
		}
		df := 0
		for _, doc := range e.ix.Documents {
			if _, ok := doc.Terms[st]; ok {
				df++
			}
		}
		if df > 0 {
			// df >= 1 whenever the term reaches scoring, so idf is finite.
			idf[st] = math.Log2(float64(n) / float64(df))
		}
	}

	scored := make([]scoredDoc, 0, n)
	for path, doc := range e.ix.Documents {
		total := e.totals[path]
		if total == 0 {
			continue
		}
		score := 0.0
		for _, st := range stemmed {
			count, ok := doc.Terms[st]
			if !ok {
				continue
			}
			tf := float64(count) / float64(total)
			score += tf * idf[st]
		}
		if score != 0 {
			scored = append(scored, scoredDoc{path: path, score: score})
		}
	}

	// cmp.Compare is a total order over float64, so incomparable values
	// cannot panic the sort.
	slices.SortFunc(scored, func(a, b scoredDoc) int {
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}
		return cmp.Compare(a.path, b.path)
	})

	paths := make([]string, len(scored))
	for i, d := range scored {
		paths[i] = d.path
	}
	return paths
}
