package feedback

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
)

// recentWindow is how many entries the stats snapshot carries.
const recentWindow = 10

// Suggestion thresholds.
const (
	minFeedbackForInsights = 10
	overallRatingFloor     = 3.5
	domainRatingFloor      = 3.0
)

// Stats is an aggregate snapshot over all stored feedback.
type Stats struct {
	Total              int            `json:"total_feedback"`
	AverageRating      float64        `json:"average_rating"`
	DomainDistribution map[string]int `json:"domain_distribution"`
	Recent             []Entry        `json:"recent_feedback"`
}

// Performance is the per-domain rating aggregate.
type Performance struct {
	Total         int     `json:"total_feedback"`
	Rated         int     `json:"rated"`
	AverageRating float64 `json:"average_rating"`
}

// ComputeStats aggregates entries into a Stats snapshot.  Unrated entries
// (rating zero) count toward totals and distribution but not the average;
// the average is rounded to two decimals.
func ComputeStats(entries []Entry) Stats {
	stats := Stats{
		DomainDistribution: make(map[string]int),
		Recent:             []Entry{},
	}
	stats.Total = len(entries)

	var ratingSum, rated int
	for _, e := range entries {
		stats.DomainDistribution[string(e.Domain)]++
		if e.Rating > 0 {
			ratingSum += e.Rating
			rated++
		}
	}
	if rated > 0 {
		stats.AverageRating = round2(float64(ratingSum) / float64(rated))
	}

	recent := make([]Entry, len(entries))
	copy(recent, entries)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > recentWindow {
		recent = recent[:recentWindow]
	}
	stats.Recent = recent

	return stats
}

// ComputePerformance aggregates entries into per-domain rating averages.
func ComputePerformance(entries []Entry) map[string]Performance {
	perf := make(map[string]Performance)
	sums := make(map[string]int)

	for _, e := range entries {
		domain := string(e.Domain)
		p := perf[domain]
		p.Total++
		if e.Rating > 0 {
			p.Rated++
			sums[domain] += e.Rating
		}
		perf[domain] = p
	}

	for domain, p := range perf {
		if p.Rated > 0 {
			p.AverageRating = round2(float64(sums[domain]) / float64(p.Rated))
			perf[domain] = p
		}
	}
	return perf
}

// Suggestions derives improvement hints from the aggregates.  With fewer
// than ten entries only the "need more feedback" hint is produced.  Domain
// hints are emitted in sorted domain order so the output is deterministic.
func Suggestions(entries []Entry) []string {
	stats := ComputeStats(entries)

	if stats.Total < minFeedbackForInsights {
		return []string{"Need more user feedback to generate meaningful insights"}
	}

	var out []string
	if stats.AverageRating < overallRatingFloor {
		out = append(out, "Consider improving answer quality and relevance")
	}

	perf := ComputePerformance(entries)
	domains := make([]string, 0, len(perf))
	for domain := range perf {
		domains = append(domains, domain)
	}
	sort.Strings(domains)
	for _, domain := range domains {
		p := perf[domain]
		if p.AverageRating < domainRatingFloor {
			out = append(out, fmt.Sprintf("Improve %s responses - current rating: %v", domain, p.AverageRating))
		}
	}
	return out
}

// Report renders a plain-text summary of the aggregates for export.
func Report(entries []Entry, generatedAt time.Time) string {
	if len(entries) == 0 {
		return "No feedback data available"
	}

	stats := ComputeStats(entries)
	perf := ComputePerformance(entries)

	var b strings.Builder
	b.WriteString("Feedback Analysis Report\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", generatedAt.Format("2006-01-02 15:04:05"))
	b.WriteString("Summary:\n")
	fmt.Fprintf(&b, "- Total Feedback: %d\n", stats.Total)
	fmt.Fprintf(&b, "- Average Rating: %v/5\n\n", stats.AverageRating)
	b.WriteString("Domain Performance:\n")

	domains := make([]string, 0, len(perf))
	for domain := range perf {
		domains = append(domains, domain)
	}
	sort.Strings(domains)
	for _, domain := range domains {
		p := perf[domain]
		fmt.Fprintf(&b, "- %s: %v/5 (%d responses)\n", domain, p.AverageRating, p.Total)
	}
	return b.String()
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
