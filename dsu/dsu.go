package dsu

// DSU is a union-find structure over the dense index space 0..n-1.
// Construct with New; the zero value is an empty, useless partition.
type DSU struct {
	parent []int
	rank   []int
}

// New creates a DSU of n singleton sets, one per index.
// Complexity: O(n).
func New(n int) *DSU {
	d := &DSU{
		parent: make([]int, n),
		rank:   make([]int, n),
	}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// Len returns the size of the index space.
func (d *DSU) Len() int { return len(d.parent) }

// Find returns the representative of v's set, rewriting every visited
// node to point directly at the discovered root (full path
// compression). Representatives are stable except for these rewrites.
// Complexity: O(α(n)) amortized.
func (d *DSU) Find(v int) int {
	root := v
	for d.parent[root] != root {
		root = d.parent[root]
	}
	// Second pass: point the whole walked chain at the root.
	for d.parent[v] != root {
		d.parent[v], v = root, d.parent[v]
	}

	return root
}

// Union merges the sets containing a and b. Returns false when both
// already share a representative (the "already connected" signal used
// to reject cycle-forming edges), true when a merge occurred. Merges
// attach the lower-rank root under the higher-rank root, bumping rank
// on a tie.
// Complexity: O(α(n)) amortized.
func (d *DSU) Union(a, b int) bool {
	ra, rb := d.Find(a), d.Find(b)
	if ra == rb {
		return false
	}

	if d.rank[ra] < d.rank[rb] {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	if d.rank[ra] == d.rank[rb] {
		d.rank[ra]++
	}

	return true
}

// Connected reports whether a and b share a representative.
// Complexity: O(α(n)) amortized.
func (d *DSU) Connected(a, b int) bool { return d.Find(a) == d.Find(b) }
