package model

import (
	"fmt"
	"slices"
)

// AlgorithmID identifies one of the mining algorithms in the reference.
type AlgorithmID string

const (
	Apriori    AlgorithmID = "apriori"
	FPTree     AlgorithmID = "fptree"
	Eclat      AlgorithmID = "eclat"
	Charm      AlgorithmID = "charm"
	GenMax     AlgorithmID = "genmax"
	GSP        AlgorithmID = "gsp"
	PrefixSpan AlgorithmID = "prefixspan"
)

// NoAlgorithm is the zero AlgorithmID, used for "nothing selected".
const NoAlgorithm AlgorithmID = ""

var algorithmOrder = []AlgorithmID{Apriori, FPTree, Eclat, Charm, GenMax, GSP, PrefixSpan}

// AlgorithmIDs returns every algorithm identifier in declaration order.
func AlgorithmIDs() []AlgorithmID {
	return slices.Clone(algorithmOrder)
}

// Valid reports whether id names a known algorithm.
func (id AlgorithmID) Valid() bool {
	_, ok := algorithms[id]
	return ok
}

// ParseAlgorithmID validates s against the known identifiers.
func ParseAlgorithmID(s string) (AlgorithmID, error) {
	id := AlgorithmID(s)
	if !id.Valid() {
		return NoAlgorithm, fmt.Errorf("unknown algorithm %q", s)
	}
	return id, nil
}

// Exercise is a worked practice problem attached to an algorithm.
type Exercise struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Solution    string `json:"solution"`
}

// AlgorithmEntry is the reference card for one algorithm. Only Name, Type and
// Purpose are always set; the rest depends on what the course material covers
// for that algorithm. Empty strings and nil slices mean "absent".
type AlgorithmEntry struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Purpose string `json:"purpose"`

	KeyPoints      []string `json:"keyPoints,omitempty"`
	Steps          []string `json:"steps,omitempty"`
	Optimization   []string `json:"optimization,omitempty"`
	Properties     []string `json:"properties,omitempty"`
	CommonMistakes []string `json:"commonMistakes,omitempty"`
	StudyChecklist []string `json:"studyChecklist,omitempty"`

	Example   string     `json:"example,omitempty"`
	Exercises []Exercise `json:"exercises,omitempty"`

	Complexity      string `json:"complexity,omitempty"`
	Structure       string `json:"structure,omitempty"`
	Advantage       string `json:"advantage,omitempty"`
	Formula         string `json:"formula,omitempty"`
	ClosureOperator string `json:"closureOperator,omitempty"`
	Ordering        string `json:"ordering,omitempty"`
	Definition      string `json:"definition,omitempty"`
	Relationship    string `json:"relationship,omitempty"`
	Support         string `json:"support,omitempty"`
}

// Facts returns the algorithm-specific free-text fields that are present,
// labelled, in a fixed order.
func (a AlgorithmEntry) Facts() []Fact {
	candidates := []Fact{
		{"Complexity", a.Complexity},
		{"Structure", a.Structure},
		{"Formula", a.Formula},
		{"Closure Operator", a.ClosureOperator},
		{"Ordering", a.Ordering},
		{"Definition", a.Definition},
		{"Relationship", a.Relationship},
		{"Support", a.Support},
	}
	var out []Fact
	for _, f := range candidates {
		if f.Text != "" {
			out = append(out, f)
		}
	}
	return out
}

// Fact is a labelled piece of free text.
type Fact struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

func (a AlgorithmEntry) clone() AlgorithmEntry {
	a.KeyPoints = slices.Clone(a.KeyPoints)
	a.Steps = slices.Clone(a.Steps)
	a.Optimization = slices.Clone(a.Optimization)
	a.Properties = slices.Clone(a.Properties)
	a.CommonMistakes = slices.Clone(a.CommonMistakes)
	a.StudyChecklist = slices.Clone(a.StudyChecklist)
	a.Exercises = slices.Clone(a.Exercises)
	return a
}

// Algorithm returns a copy of the entry for id.
func Algorithm(id AlgorithmID) (AlgorithmEntry, bool) {
	a, ok := algorithms[id]
	if !ok {
		return AlgorithmEntry{}, false
	}
	return a.clone(), true
}

var algorithms = map[AlgorithmID]AlgorithmEntry{
	Apriori: {
		Name:    "Apriori",
		Type:    "Breadth-First Search (BFS)",
		Purpose: "Extract frequent itemsets using candidate generation",
		KeyPoints: []string{
			"Uses level-wise search (breadth-first)",
			"Generates candidates then prunes non-frequent ones",
			"Based on anti-monotone property: if itemset is infrequent, all supersets are infrequent",
			"Multiple database scans (one per level)",
			"Uses lexicographic ordering to avoid redundancy",
		},
		Steps: []string{
			"Scan DB to count 1-itemsets → generate F₁",
			"Generate candidates Cₖ from Fₖ₋₁",
			"Prune candidates that don't have all subsets frequent",
			"Scan DB to count support of Cₖ",
			"Keep only frequent itemsets → Fₖ",
			"Repeat until no more candidates",
		},
		Optimization: []string{
			"Hash tree: makes support counting more efficient",
			"Reduces comparisons between transactions and candidates",
			"Lexicographic order: unique itemset representation (avoid redundancy)",
		},
		Complexity: "M × N operations per level (M candidates, N transactions) with brute force",
		Example:    "C₁={A:3, B:2, C:4} → F₁={A:3, C:4} (min_sup=3) → C₂={AC} → F₂={AC:2}",
		Exercises: []Exercise{
			{
				Title:       "Find Frequent Itemsets",
				Description: "Database: {A,B,C}, {A,C}, {A,B,C,D}, {B,C}, {A,B,C}. min_sup=60%",
				Solution: "STEP 1: Count transactions = 5, min_sup_count = 5×0.6 = 3\n\n" +
					"STEP 2: Scan database for items:\n" +
					"• A appears in: T1,T3,T4,T5 = 4 times (≥3) ✓\n" +
					"• B appears in: T1,T3,T5 = 3 times (≥3) ✓\n" +
					"• C appears in: T1,T2,T3,T4,T5 = 5 times (≥3) ✓\n" +
					"• D appears in: T3 = 1 time (<3) ✗\n" +
					"Result: F₁={A:4, B:3, C:5}\n\n" +
					"STEP 3: Generate C₂ candidates: {AB}, {AC}, {BC}\n\n" +
					"STEP 4: Scan database for pairs:\n" +
					"• AB: T1,T3,T5 = 3 times (≥3) ✓\n" +
					"• AC: T1,T3,T4,T5 = 4 times (≥3) ✓\n" +
					"• BC: T1,T3,T4,T5 = 4 times (≥3) ✓\n" +
					"Result: F₂={AB:3, AC:4, BC:4}\n\n" +
					"STEP 5: Generate C₃: {ABC}\n\n" +
					"STEP 6: Scan database:\n" +
					"• ABC: T1,T3,T5 = 3 times (≥3) ✓\n" +
					"Result: F₃={ABC:3}\n\n" +
					"FINAL FREQUENT ITEMSETS: {A}, {B}, {C}, {AB}, {AC}, {BC}, {ABC}",
			},
			{
				Title:       "Candidate Pruning",
				Description: "Given F₂={AB, AC, BC}, generate C₃ and prune using Apriori property",
				Solution: "STEP 1: Generate C₃ candidates by joining F₂:\n" +
					"Join AB + AC → ABC (share AB)\n" +
					"Join AB + BC → ABC (share B)\n" +
					"Join AC + BC → ABC (share C)\n" +
					"Result: C₃={ABC}\n\n" +
					"STEP 2: Apply Apriori Pruning Property:\n" +
					"For ABC to be frequent, ALL 2-item subsets must be in F₂:\n" +
					"• Check subset {AB}: YES, in F₂ ✓\n" +
					"• Check subset {AC}: YES, in F₂ ✓\n" +
					"• Check subset {BC}: YES, in F₂ ✓\n\n" +
					"STEP 3: Decision:\n" +
					"All subsets are frequent → KEEP ABC in C₃\n" +
					"ABC is a valid candidate for scanning\n\n" +
					"STEP 4: If any subset was missing from F₂:\n" +
					"Example: If BC was NOT in F₂, then ABC would be pruned (not scanned)",
			},
			{
				Title:       "Algorithm Complexity",
				Description: "Database with 1000 items, 100,000 transactions. Estimate Apriori passes needed.",
				Solution: "GIVEN:\n" +
					"• n = 1000 items\n" +
					"• m = 100,000 transactions\n\n" +
					"STEP 1: Count rare items (support < 1%):\n" +
					"Assuming 30% of items are frequent\n" +
					"F₁ candidates ≈ 300 items\n\n" +
					"STEP 2: Generate F₂ candidates:\n" +
					"|C₂| = 300 × 299 / 2 ≈ 45,000 candidates\n" +
					"After pruning, |F₂| ≈ 150 itemsets (avg)\n\n" +
					"STEP 3: Generate F₃ candidates:\n" +
					"|C₃| = combinations of F₂ ≈ 11,000 candidates\n" +
					"After pruning, |F₃| ≈ 50 itemsets\n\n" +
					"STEP 4: Continue until no more frequent itemsets\n" +
					"Estimated levels k ≈ 5-6\n\n" +
					"STEP 5: Total database scans = k = 5-6 passes\n" +
					"Total cost ≈ 5 × 100,000 = 500,000 transaction scans\n\n" +
					"CONCLUSION: For this data, FP-Growth would be significantly faster (only 2 scans)",
			},
		},
		CommonMistakes: []string{
			"Forgetting to prune candidates - all k-1 subsets must be frequent",
			"Incorrect support counting - must scan entire database",
			"Generating too many candidates - use anti-monotone property",
			"Not checking min_support threshold correctly",
			"Confusing itemsets at different levels",
		},
		StudyChecklist: []string{
			"Understand anti-monotone property and its importance",
			"Know the 6 steps of Apriori algorithm",
			"Can trace through with real example",
			"Understand candidate generation and pruning",
			"Know complexity: O(M×N×k) where k=number of levels",
			"Can compare with FP-Growth efficiency",
		},
	},

	FPTree: {
		Name:    "FP-Growth (FP-Tree)",
		Type:    "Pattern Growth / Tree-based",
		Purpose: "Extract frequent itemsets without candidate generation",
		KeyPoints: []string{
			"Compresses database into FP-tree structure",
			"No candidate generation needed",
			"Only 2 database scans required",
			"Uses divide-and-conquer approach",
			"More efficient than Apriori for large databases",
		},
		Steps: []string{
			"First scan: count item frequencies",
			"Second scan: build FP-tree (items sorted by frequency)",
			"For each item (bottom-up in frequency): extract conditional pattern base",
			"Build conditional FP-tree",
			"Recursively mine conditional FP-trees",
		},
		Structure: "Root → branches with item:count nodes → header table links same items",
		Advantage: "Minimizes database access, compresses transactions",
		Example:   "Transaction {A,B,D,E} with order [B:4, A:3, D:2] → path B:1→A:1→D:1",
		Exercises: []Exercise{
			{
				Title:       "Build FP-Tree",
				Description: "Transactions: {A,B}, {A,C}, {A,B,C}, {A,B,D}, {C,D}. min_sup=2",
				Solution: "STEP 1: First scan - count item frequencies:\n" +
					"• A: appears in T1,T2,T3,T4 = 4 times\n" +
					"• B: appears in T1,T3 = 2 times\n" +
					"• C: appears in T2,T3,T5 = 3 times\n" +
					"• D: appears in T4,T5 = 2 times\n" +
					"All items ≥ min_sup(2), so all frequent\n\n" +
					"STEP 2: Sort by frequency (descending): A(4), C(3), B(2), D(2)\n\n" +
					"STEP 3: Second scan - build FP-tree:\n" +
					"T1:{A,B} → Root→A:1→B:1\n" +
					"T2:{A,C} → Root→A:2→C:1\n" +
					"T3:{A,B,C} → Root→A:3→B:2→C:1 OR Root→A:3→C:2\n" +
					"T4:{A,B,D} → Root→A:4→B:3→D:1\n" +
					"T5:{C,D} → Root→C:3→D:1\n\n" +
					"STEP 4: Final structure:\n" +
					"Root\n" +
					"├─ A:4\n" +
					"│  ├─ C:2\n" +
					"│  │  └─ B:1\n" +
					"│  └─ B:2\n" +
					"│     └─ D:1\n" +
					"└─ C:1\n" +
					"   └─ D:1",
			},
			{
				Title:       "Extract Conditional Pattern Base",
				Description: "From the FP-tree above, mine patterns for item D (min_sup=2)",
				Solution: "STEP 1: Start with item D (leaf item by frequency)\n\n" +
					"STEP 2: Find all paths ending with D:\n" +
					"• Path 1: Root→A:4→B:2→D:1 → prefix {A:1,B:1}\n" +
					"• Path 2: Root→C:1→D:1 → prefix {C:1}\n\n" +
					"STEP 3: Construct conditional pattern base for D:\n" +
					"CPB(D) = {(A,B):1, (C):1}\n" +
					"This means: D co-occurs with {A,B} in 1 transaction, with {C} in 1 transaction\n\n" +
					"STEP 4: Count frequencies in CPB:\n" +
					"• A: 1 time (< min_sup of 2)\n" +
					"• B: 1 time (< min_sup of 2)\n" +
					"• C: 1 time (< min_sup of 2)\n\n" +
					"STEP 5: Result:\n" +
					"No frequent patterns from CPB(D)\n" +
					"Only single itemset D is frequent\n\n" +
					"FINAL: Frequent patterns with D: {D}",
			},
		},
	},

	Eclat: {
		Name:    "Eclat",
		Type:    "Depth-First Search (DFS) / Vertical Data Format",
		Purpose: "Extract frequent itemsets using transaction ID sets (tidsets)",
		KeyPoints: []string{
			"Uses vertical database format (item → tidset)",
			"Depth-first search approach",
			"Support counting by tidset intersection",
			"No database scans after initial conversion",
			"More efficient memory usage than Apriori",
		},
		Steps: []string{
			"Convert horizontal DB to vertical format: item → {tid₁, tid₂, ...}",
			"For each itemset X: compute support by |tidset(X)|",
			"Generate new candidates by tidset intersection",
			"Use DFS to explore itemset lattice",
		},
		Advantage: "Fast support counting (just tidset size), no repeated DB scans",
		Formula:   "t(XᵢXⱼ) = t(Xᵢ) ∩ t(Xⱼ), support = |t(XᵢXⱼ)|",
		Exercises: []Exercise{
			{
				Title:       "Vertical Format Conversion",
				Description: "Horizontal: T1:{A,B,C}, T2:{A,C}, T3:{B,C}. Convert to vertical",
				Solution: "STEP 1: Create empty mapping for each item\n\n" +
					"STEP 2: Scan each transaction:\n" +
					"T1:{A,B,C} → A:{1}, B:{1}, C:{1}\n" +
					"T2:{A,C} → A:{1,2}, B:{1}, C:{1,2}\n" +
					"T3:{B,C} → A:{1,2}, B:{1,3}, C:{1,2,3}\n\n" +
					"STEP 3: Final Vertical Format (Item → Tidset):\n" +
					"• A: {1,2} (appears in T1,T2)\n" +
					"• B: {1,3} (appears in T1,T3)\n" +
					"• C: {1,2,3} (appears in T1,T2,T3)\n\n" +
					"Support values:\n" +
					"• A: 2/3 = 66.7%\n" +
					"• B: 2/3 = 66.7%\n" +
					"• C: 3/3 = 100%",
			},
			{
				Title:       "Compute Tidset Intersections",
				Description: "Find support of itemset {A,B} using tidsets from above",
				Solution: "STEP 1: Recall tidsets:\n" +
					"• t(A) = {1,2}\n" +
					"• t(B) = {1,3}\n\n" +
					"STEP 2: Compute intersection:\n" +
					"t(A,B) = t(A) ∩ t(B)\n" +
					"t(A,B) = {1,2} ∩ {1,3}\n" +
					"t(A,B) = {1}\n\n" +
					"STEP 3: Calculate support:\n" +
					"support({A,B}) = |t(A,B)| / total_transactions\n" +
					"support({A,B}) = 1/3 = 33.3%\n\n" +
					"STEP 4: Interpretation:\n" +
					"{A,B} appears together ONLY in transaction T1\n" +
					"This is the power of vertical format - no DB scan needed!\n\n" +
					"STEP 5: If min_sup = 50%:\n" +
					"33.3% < 50% → {A,B} is NOT frequent, PRUNE it",
			},
		},
	},

	Charm: {
		Name:    "CHARM",
		Type:    "Closed Itemset Mining",
		Purpose: "Extract closed frequent itemsets (no superset with same support)",
		KeyPoints: []string{
			"Extracts only closed itemsets (more compact)",
			"Uses tidset vertical format like Eclat",
			"Orders itemsets by increasing support (optimization)",
			"An itemset X is closed if c(X) = X (closure operator)",
			"4 properties based on tidset relationships",
		},
		Properties: []string{
			"If t(Xᵢ) = t(Xⱼ): replace Xᵢ and Xⱼ by XᵢXⱼ",
			"If t(Xᵢ) ⊂ t(Xⱼ): replace Xᵢ by XᵢXⱼ",
			"If t(Xᵢ) ⊃ t(Xⱼ): replace Xⱼ by XᵢXⱼ",
			"If t(Xᵢ) ≠ t(Xⱼ): add both XᵢXⱼ to candidates",
		},
		ClosureOperator: "c(X) = i(t(X)) where i = items in all transactions, t = tidset",
		Ordering:        "Increasing support avoids testing both t(Xᵢ) ⊂ t(Xⱼ) and t(Xⱼ) ⊂ t(Xᵢ)",
		Exercises: []Exercise{
			{
				Title:       "Identify Closed Itemsets",
				Description: "Transactions: T1:{A,B,C}, T2:{A,B,C}, T3:{A,B}, T4:{A,D}. min_sup=50%. Find closed itemsets.",
				Solution: "STEP 1: Find all frequent itemsets (min_sup = 2 transactions):\n" +
					"F₁: {A}:4, {B}:3, {C}:2, {D}:1 ✗\n" +
					"F₂: {A,B}:3, {A,C}:2, {B,C}:2, {A,D}:1 ✗\n" +
					"F₃: {A,B,C}:2\n\n" +
					"STEP 2: Check if each frequent itemset is closed:\n\n" +
					"{A}: closure c({A}) = items in all transactions where A appears\n" +
					"A appears in T1,T2,T3,T4. Common items: {A} only\n" +
					"c({A}) = {A} → CLOSED ✓\n\n" +
					"{B}: B appears in T1,T2,T3. Common items: {A,B}\n" +
					"c({B}) = {A,B} ≠ {B} → NOT CLOSED ✗\n\n" +
					"{C}: C appears in T1,T2. Common items: {A,B,C}\n" +
					"c({C}) = {A,B,C} ≠ {C} → NOT CLOSED ✗\n\n" +
					"{A,B}: AB appears in T1,T2,T3. Common items: {A,B}\n" +
					"c({A,B}) = {A,B} → CLOSED ✓\n\n" +
					"{A,C}: AC appears in T1,T2. Common items: {A,B,C}\n" +
					"c({A,C}) = {A,B,C} ≠ {A,C} → NOT CLOSED ✗\n\n" +
					"{B,C}: BC appears in T1,T2. Common items: {A,B,C}\n" +
					"c({B,C}) = {A,B,C} ≠ {B,C} → NOT CLOSED ✗\n\n" +
					"{A,B,C}: ABC appears in T1,T2. Common items: {A,B,C}\n" +
					"c({A,B,C}) = {A,B,C} → CLOSED ✓\n\n" +
					"STEP 3: CLOSED ITEMSETS = {{A}, {A,B}, {A,B,C}}\n" +
					"Note: These 3 itemsets represent ALL frequent itemsets perfectly!",
			},
			{
				Title:       "CHARM Property Application",
				Description: "Compare tidsets t(A)={1,2,3,4}, t(B)={1,2,3}, t(AB)=? Which property applies?",
				Solution: "STEP 1: Recall CHARM properties:\n" +
					"P1: If t(Xᵢ) = t(Xⱼ) → replace both with XᵢXⱼ\n" +
					"P2: If t(Xᵢ) ⊂ t(Xⱼ) → replace Xᵢ with XᵢXⱼ\n" +
					"P3: If t(Xᵢ) ⊃ t(Xⱼ) → replace Xⱼ with XᵢXⱼ\n" +
					"P4: If t(Xᵢ) ≠ t(Xⱼ) (incomparable) → test both\n\n" +
					"STEP 2: Compare tidsets:\n" +
					"t(A) = {1,2,3,4} (size 4)\n" +
					"t(B) = {1,2,3} (size 3)\n" +
					"t(A) ≠ t(B)\n" +
					"t(A) ⊃ t(B) (A's tidset is SUPERSET of B's)\n\n" +
					"STEP 3: Which property?\n" +
					"t(A) ⊃ t(B) → Property P3 applies!\n" +
					"P3 says: Replace B with AB\n" +
					"Meaning: Whenever we see {B}:3, we can combine with {A} to get {A,B}\n\n" +
					"STEP 4: Optimization benefit:\n" +
					"We don't need to explore B separately\n" +
					"We explore AB directly instead\n" +
					"This reduces the search space!\n\n" +
					"STEP 5: Compute t(A,B):\n" +
					"t(A,B) = t(A) ∩ t(B) = {1,2,3,4} ∩ {1,2,3} = {1,2,3}\n" +
					"Note: t(A,B) = t(B), so {A,B} has same support as {B}",
			},
		},
	},

	GenMax: {
		Name:    "GenMax",
		Type:    "Maximal Itemset Mining",
		Purpose: "Extract maximal frequent itemsets (no frequent superset)",
		KeyPoints: []string{
			"Maximal itemset: frequent itemset with no frequent superset",
			"More compact than all frequent itemsets",
			"Uses backtracking search",
			"Maintains list of maximal itemsets found",
			"Progressive intersection technique",
		},
		Definition:   "X is maximal if X is frequent and ∀Y ⊃ X, Y is not frequent",
		Advantage:    "Smallest representation of all frequent itemsets (but loses support info)",
		Relationship: "Closed ⊇ Maximal (all maximal are closed, not all closed are maximal)",
	},

	GSP: {
		Name:    "GSP (Generalized Sequential Patterns)",
		Type:    "Sequential Pattern Mining",
		Purpose: "Extract frequent sequences from sequential databases",
		KeyPoints: []string{
			"Similar to Apriori but for sequences",
			"A sequence is ordered list of itemsets: <(AB)(C)(D)>",
			"Subsequence: maintain order, can skip elements",
			"Candidate generation and pruning like Apriori",
			"Multiple passes over database",
		},
		Steps: []string{
			"Find frequent 1-sequences → L₁",
			"Generate candidate k-sequences from Lₖ₋₁",
			"Prune candidates (all k-1 subsequences must be frequent)",
			"Count support by checking which sequences contain candidate",
			"Repeat until no candidates",
		},
		Example: "S=<CAGAAGT> contains subsequence <AAG> (support++)",
		Support: "Number of sequences that contain the pattern as subsequence",
	},

	PrefixSpan: {
		Name:    "PrefixSpan",
		Type:    "Sequential Pattern Mining / Pattern Growth",
		Purpose: "Mine sequential patterns using prefix-projected databases without candidate generation",
		KeyPoints: []string{
			"Pattern growth approach (like FP-Growth for sequences)",
			"No candidate generation needed",
			"Uses prefix projection to build projected databases",
			"More efficient than GSP for large datasets",
			"Divide-and-conquer strategy",
		},
		Steps: []string{
			"Find frequent 1-sequences (length-1 prefixes)",
			"For each prefix: build projected database",
			"Recursively mine projected databases",
			"Grow patterns by appending items",
		},
		Advantage: "No candidate generation, reduced search space",
		Example:   "Sequences: <A B C>, <A C D>, <B C>. Find sequences: <A>, <B>, <C> (1-seqs), then <AC>, <BC> (2-seqs)",
		Exercises: []Exercise{
			{
				Title:       "Build Projected Database",
				Description: "Sequences: <A B>, <A C>, <B C>, <A B C>. Build projected database for prefix <A>",
				Solution:    "Projected DB for <A>: <B>, <C>, <B C>. These are suffixes after <A>",
			},
			{
				Title:       "Find Sequential Patterns",
				Description: "From above, find all frequent patterns with min_sup=2",
				Solution:    "<A>:4, <B>:3, <C>:4, <A,B>:2, <A,C>:2, <B,C>:2",
			},
		},
		CommonMistakes: []string{
			"Forgetting that order matters in sequences (unlike itemsets)",
			"Confusing itemsets {A,B} with sequences <A B> (different support)",
			"Not building projected databases correctly - must maintain order",
			"Missing candidate patterns in recursive mining",
		},
		StudyChecklist: []string{
			"Understand prefix projection concept",
			"Know how to build projected databases",
			"Can trace through algorithm with example",
			"Understand why no candidate generation needed",
			"Can compare with GSP efficiency",
		},
	},
}
