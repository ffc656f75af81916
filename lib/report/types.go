package report

import (
	"landrecords/lib/records"
	"landrecords/lib/textutil"
	"sort"

	"github.com/antzucaro/matchr"
)

type TypeCount struct {
	Type  string
	Count int
}

// DocumentTypes counts the documents of each type, types that only differ in
// case or spacing are counted together under their first spelling. The result
// is ordered by descending count, then by name.
func DocumentTypes(props []records.Property) []TypeCount {
	index := map[string]int{}
	var counts []TypeCount
	for _, prop := range props {
		for _, doc := range prop.Docs {
			key := textutil.Fold(doc.Type())
			i, ok := index[key]
			if !ok {
				i = len(counts)
				index[key] = i
				counts = append(counts, TypeCount{Type: textutil.Collapse(doc.Type())})
			}
			counts[i].Count++
		}
	}
	sort.SliceStable(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Type < counts[j].Type
	})
	return counts
}

type Suggestion struct {
	Filter  string
	Closest string
	Score   float64
}

// minimum Jaro-Winkler similarity for a known type to be suggested
const suggestThreshold = 0.8

// SuggestTypes looks at every allowed type that matches none of the known
// types and proposes the most similar known type, if any is close enough.
// Allowed types with no close match are returned with an empty Closest.
func SuggestTypes(allowed []string, known []TypeCount) []Suggestion {
	knownSet := map[string]struct{}{}
	for _, k := range known {
		knownSet[textutil.Fold(k.Type)] = struct{}{}
	}

	var suggestions []Suggestion
	for _, filter := range allowed {
		folded := textutil.Fold(filter)
		if _, ok := knownSet[folded]; ok {
			continue
		}

		best := Suggestion{Filter: filter}
		for _, k := range known {
			score := matchr.JaroWinkler(folded, textutil.Fold(k.Type), false)
			if score > best.Score {
				best.Score = score
				best.Closest = k.Type
			}
		}
		if best.Score < suggestThreshold {
			best.Closest = ""
		}
		suggestions = append(suggestions, best)
	}
	return suggestions
}
