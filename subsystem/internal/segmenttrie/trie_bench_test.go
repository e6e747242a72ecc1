/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package segmenttrie

import (
	"math/rand"
	"strings"
	"testing"
)

// genValidSegment returns a valid segment: [A-Z0-9]+, mostly letters.
func genValidSegment(rng *rand.Rand, min, max int) string {
	n := min + rng.Intn(max-min+1)
	var b strings.Builder
	for i := 0; i < n; i++ {
		if rng.Intn(5) == 0 {
			b.WriteByte(byte('0' + rng.Intn(10)))
			continue
		}
		b.WriteByte(byte('A' + rng.Intn(26)))
	}
	return b.String()
}

// makePrefix builds an underscore-separated prefix with optional
// single-segment wildcards every k segments (if k>0).
func makePrefix(rng *rand.Rand, depth int, wildcardEveryK int) string {
	segs := make([]string, depth)
	for i := 0; i < depth; i++ {
		if wildcardEveryK > 0 && (i+1)%wildcardEveryK == 0 {
			segs[i] = Wildcard
			continue
		}
		segs[i] = genValidSegment(rng, 3, 8)
	}
	return strings.Join(segs, string(Sep))
}

// buildTrie inserts N prefixes of fixed depth into the trie and returns
// names that extend each prefix by two segments, so they hit via LPM.
func buildTrie(b *testing.B, N, depth, wildcardEveryK int) (*Trie[int], []string) {
	rng := rand.New(rand.NewSource(1)) // deterministic
	tr := New[int]()
	names := make([]string, 0, N)

	for i := 0; i < N; i++ {
		p := makePrefix(rng, depth, wildcardEveryK)
		if err := tr.Insert(p, 100+i); err != nil {
			b.Fatalf("insert failed for %q: %v", p, err)
		}
		parts := strings.Split(p, string(Sep))
		for j := range parts {
			if parts[j] == Wildcard {
				parts[j] = genValidSegment(rng, 3, 8)
			}
		}
		parts = append(parts, genValidSegment(rng, 3, 8), genValidSegment(rng, 3, 8))
		names = append(names, strings.Join(parts, string(Sep)))
	}
	return tr, names
}

func BenchmarkTrieInsert_N64_Depth3_NoWildcard(b *testing.B)   { benchInsert(b, 64, 3, 0) }
func BenchmarkTrieInsert_N1024_Depth3_NoWildcard(b *testing.B) { benchInsert(b, 1024, 3, 0) }
func BenchmarkTrieInsert_N1024_Depth3_Wildcard1(b *testing.B)  { benchInsert(b, 1024, 3, 1) }

func benchInsert(b *testing.B, N, depth, wildcardEveryK int) {
	rng := rand.New(rand.NewSource(7))
	prefixes := make([]string, 0, N)
	for len(prefixes) < N {
		p := makePrefix(rng, depth, wildcardEveryK)
		if strings.Trim(p, Wildcard+string(Sep)) == "" {
			continue
		}
		prefixes = append(prefixes, p)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr := New[int]()
		for j := 0; j < N; j++ {
			if err := tr.Insert(prefixes[j], j); err != nil {
				b.Fatalf("insert failed: %v", err)
			}
		}
	}
}

func BenchmarkTrieMatch_N64_Depth1(b *testing.B)           { benchMatch(b, 64, 1, 0) }
func BenchmarkTrieMatch_N1024_Depth3_NoWildcard(b *testing.B) { benchMatch(b, 1024, 3, 0) }
func BenchmarkTrieMatch_N1024_Depth3_Wildcard3(b *testing.B)  { benchMatch(b, 1024, 3, 3) }

func benchMatch(b *testing.B, N, depth, wildcardEveryK int) {
	tr, names := buildTrie(b, N, depth, wildcardEveryK)

	// add a few negative queries (no match)
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < N/8+1; i++ {
		names = append(names, makePrefix(rng, depth, 0)+string(Sep)+genValidSegment(rng, 3, 8))
	}

	b.ReportAllocs()
	b.ResetTimer()
	var sum int // prevent DCE
	for i := 0; i < b.N; i++ {
		if v, ok := tr.Match(names[i%len(names)]); ok {
			sum += v
		}
	}
	if sum == 42 {
		b.Log("keep")
	}
}

func BenchmarkTrieMatchParallel_N1024_Depth3(b *testing.B) {
	tr, names := buildTrie(b, 1024, 3, 0)
	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		rng := rand.New(rand.NewSource(int64(rand.Int())))
		for pb.Next() {
			_, _ = tr.Match(names[rng.Intn(len(names))])
		}
	})
}
