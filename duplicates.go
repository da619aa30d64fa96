package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

type DuplicateGroup struct {
	Key   string
	Paths []string
}

// Duplicates lists duplicate groups in the order they were found. Exact
// copies are keyed by content hash, near copies by "similar_<name1>_<name2>".
type Duplicates []DuplicateGroup

// findDuplicates compares every pair of documents once. Identical hashes form
// an exact group; otherwise a token-set similarity above threshold forms a
// near-duplicate group.
func findDuplicates(docs []*Document, threshold float64) Duplicates {
	var order []string
	groups := make(map[string]map[string]struct{})
	add := func(key string, paths ...string) {
		if groups[key] == nil {
			groups[key] = make(map[string]struct{})
			order = append(order, key)
		}
		for _, p := range paths {
			groups[key][p] = struct{}{}
		}
	}

	tokens := make([]map[string]struct{}, len(docs))
	for i, d := range docs {
		tokens[i] = tokenSet(d.Content)
	}

	for i, d1 := range docs {
		for j := i + 1; j < len(docs); j++ {
			d2 := docs[j]
			if d1.Hash == d2.Hash {
				add(d1.Hash, d1.Path, d2.Path)
				continue
			}

			if jaccard(tokens[i], tokens[j]) > threshold {
				add(fmt.Sprintf("similar_%s_%s", d1.Name, d2.Name), d1.Path, d2.Path)
			}
		}
	}

	res := make(Duplicates, 0, len(order))
	for _, key := range order {
		paths := make([]string, 0, len(groups[key]))
		for p := range groups[key] {
			paths = append(paths, p)
		}
		slices.Sort(paths)
		res = append(res, DuplicateGroup{Key: key, Paths: paths})
	}

	return res
}

func tokenSet(text string) map[string]struct{} {
	fields := strings.Fields(text)
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}

	return set
}

// jaccard is the Jaccard index of two token sets. Two empty sets have
// similarity 0.
func jaccard(a, b map[string]struct{}) float64 {
	inter := 0
	for t := range a {
		if _, ok := b[t]; ok {
			inter++
		}
	}

	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}

	return float64(inter) / float64(union)
}

// Group returns the paths of the group with the given key.
func (d Duplicates) Group(key string) ([]string, bool) {
	for _, g := range d {
		if g.Key == key {
			return g.Paths, true
		}
	}

	return nil, false
}

// MarshalJSON encodes the groups as a JSON object keeping discovery order.
func (d Duplicates) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, g := range d {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(g.Key)
		if err != nil {
			return nil, err
		}
		paths, err := json.Marshal(g.Paths)
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(paths)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}
