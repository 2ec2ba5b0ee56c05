package fuzzy

import (
	"sort"

	"golang.org/x/sync/errgroup"

	"taxogen/internal/taxonomy"
)

// Match is one accepted approximate pairing.
type Match struct {
	Code       string  `json:"code"`
	Similarity float64 `json:"similarity"`
}

// Result is the approximate bidirectional mapping document. The forward
// side is capped at TopN per code; the reverse side is the inversion of
// the retained forward matches and carries no cap. The mapping is not
// symmetric and is not made so.
type Result struct {
	Forward map[string][]Match `json:"forward"`
	Reverse map[string][]Match `json:"reverse"`
}

// Options controls a fuzzy build. Zero values take the engine defaults:
// threshold 0.3, top 3, a single shard, no level restriction.
type Options struct {
	LeftLevel  int // restrict the left lookup to this level (0 = all)
	RightLevel int // restrict the right lookup to this level (0 = all)
	Threshold  float64
	TopN       int
	Shards     int
	StopWords  map[string]bool
}

const (
	defaultThreshold = 0.3
	defaultTopN      = 3
)

type entry struct {
	code   string
	tokens map[string]bool
}

// BuildMatches computes the ranked approximate mapping between two lookups
// by full cross product at the chosen levels. Left-side codes are sharded
// across workers, each writing only its own result slots; the output is
// identical to a serial pass. Ties in similarity keep code order, which is
// the deterministic iteration order of both sides.
func BuildMatches(left, right taxonomy.Lookup, opts Options) (*Result, error) {
	if opts.Threshold <= 0 {
		opts.Threshold = defaultThreshold
	}
	if opts.TopN <= 0 {
		opts.TopN = defaultTopN
	}
	if opts.Shards <= 0 {
		opts.Shards = 1
	}

	leftEntries := tokenized(left, opts.LeftLevel, opts.StopWords)
	rightEntries := tokenized(right, opts.RightLevel, opts.StopWords)

	retained := make([][]Match, len(leftEntries))
	var g errgroup.Group
	g.SetLimit(opts.Shards)
	for shard := 0; shard < opts.Shards; shard++ {
		shard := shard
		g.Go(func() error {
			for i := shard; i < len(leftEntries); i += opts.Shards {
				retained[i] = topMatches(leftEntries[i], rightEntries, opts)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &Result{
		Forward: make(map[string][]Match),
		Reverse: make(map[string][]Match),
	}
	for i, e := range leftEntries {
		if len(retained[i]) == 0 {
			continue
		}
		res.Forward[e.code] = retained[i]
		for _, m := range retained[i] {
			res.Reverse[m.Code] = append(res.Reverse[m.Code], Match{
				Code:       e.code,
				Similarity: m.Similarity,
			})
		}
	}
	for _, bucket := range res.Reverse {
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].Similarity > bucket[j].Similarity
		})
	}
	return res, nil
}

// topMatches scores one left entry against the whole right side and keeps
// at most TopN matches at or above the threshold, best first.
func topMatches(l entry, right []entry, opts Options) []Match {
	var matches []Match
	for _, r := range right {
		sim := Similarity(l.tokens, r.tokens)
		if sim >= opts.Threshold {
			matches = append(matches, Match{Code: r.code, Similarity: sim})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})
	if len(matches) > opts.TopN {
		matches = matches[:opts.TopN]
	}
	return matches
}

// tokenized extracts the level-restricted entries of a lookup in sorted
// code order with their descriptions pre-tokenized.
func tokenized(lk taxonomy.Lookup, level int, stop map[string]bool) []entry {
	codes := make([]string, 0, len(lk))
	for code, e := range lk {
		if level != 0 && e.Level != level {
			continue
		}
		codes = append(codes, code)
	}
	sort.Strings(codes)
	out := make([]entry, len(codes))
	for i, code := range codes {
		out[i] = entry{code: code, tokens: Tokenize(lk[code].Description, stop)}
	}
	return out
}
