package model

import "slices"

// Flashcard is a question/answer pair.
type Flashcard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Formula is a named formula with a note on when to use it.
type Formula struct {
	Name    string `json:"name"`
	Formula string `json:"formula"`
	Use     string `json:"use"`
}

// Term is a glossary-style term and its short definition.
type Term struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

// OverviewPanel is the static content of the overview section.
type OverviewPanel struct {
	Heading          string   `json:"heading"`
	Summary          string   `json:"summary"`
	ItemsetMining    []string `json:"itemsetMining"`
	SequentialMining []string `json:"sequentialMining"`
	KeyConcepts      []Term   `json:"keyConcepts"`
}

const (
	GuideTitle    = "Data Mining Study Guide"
	GuideSubtitle = "Master 2 MID - Complete Algorithm Reference"
)

var flashcards = []Flashcard{
	{
		Question: "What is the anti-monotone property?",
		Answer:   "If an itemset is infrequent, all its supersets are also infrequent. This allows pruning in Apriori.",
	},
	{
		Question: "Apriori vs FP-Growth: key difference?",
		Answer:   "Apriori generates candidates (multiple DB scans), FP-Growth uses tree structure (2 scans only)",
	},
	{
		Question: "What is a closed itemset?",
		Answer:   "An itemset X where c(X) = X, meaning no superset has the same support",
	},
	{
		Question: "What is a maximal itemset?",
		Answer:   "A frequent itemset with no frequent superset. All maximal itemsets are closed.",
	},
	{
		Question: "Horizontal vs Vertical data format?",
		Answer:   "Horizontal: TID → items. Vertical: Item → TIDset. Eclat/CHARM use vertical.",
	},
	{
		Question: "Why order itemsets by increasing support in CHARM?",
		Answer:   "To avoid testing both t(Xᵢ) ⊂ t(Xⱼ) AND t(Xⱼ) ⊂ t(Xᵢ) - property 2 only needs one direction",
	},
	{
		Question: "How many itemsets from k items?",
		Answer:   "2^k total (including empty set), 2^k - 1 excluding empty set",
	},
	{
		Question: "GSP vs PrefixSpan?",
		Answer:   "GSP: candidate generation (like Apriori). PrefixSpan: pattern growth, no candidates",
	},
	{
		Question: "What is a sequence vs itemset?",
		Answer:   "Sequence: ordered <(AB)(C)(D)>, Itemset: unordered {A,B,C}",
	},
	{
		Question: "Hash tree in Apriori: purpose?",
		Answer:   "Makes support counting more efficient, reduces comparisons between transactions and candidates",
	},
	{
		Question: "Confidence formula?",
		Answer:   "conf(X→Y) = support(X∪Y) / support(X) = P(Y|X)",
	},
	{
		Question: "When is a rule misleading?",
		Answer:   "When conf(X→Y) = P(Y), meaning X and Y are independent (or conf < P(Y), negative correlation)",
	},
	{
		Question: "Derivable itemset?",
		Answer:   "An itemset whose support can be exactly calculated from its subsets using bounds (LB = UB)",
	},
	{
		Question: "BFS vs DFS in frequent mining?",
		Answer:   "BFS: Apriori, GSP (level-wise). DFS: Eclat, FP-Growth (depth-first)",
	},
	{
		Question: "Lexicographic ordering advantage?",
		Answer:   "Unique itemset representation, avoids redundant candidate generation (AB = BA)",
	},
}

var formulas = []Formula{
	{
		Name:    "Support",
		Formula: "support(X) = |transactions containing X| / |total transactions|",
		Use:     "Measure frequency of itemset",
	},
	{
		Name:    "Confidence",
		Formula: "conf(X→Y) = support(X∪Y) / support(X)",
		Use:     "Strength of association rule",
	},
	{
		Name:    "Lift",
		Formula: "lift(X→Y) = support(X∪Y) / (support(X) × support(Y))",
		Use:     "Detect independence: lift=1 means independent, >1 positive correlation, <1 negative",
	},
	{
		Name:    "Closure Operator",
		Formula: "c(X) = i(t(X)) where t(X)=tidset of X, i(T)=items common to all transactions in T",
		Use:     "Test if itemset is closed: X is closed iff c(X) = X",
	},
	{
		Name:    "Lower Bound (derivable)",
		Formula: "sup(X) ≥ Σ(-1)^|W| × sup(W) for all W ⊆ X, |X\\Y| even",
		Use:     "Minimum possible support",
	},
	{
		Name:    "Upper Bound (derivable)",
		Formula: "sup(X) ≤ Σ(-1)^|W| × sup(W) for all W ⊆ X, |X\\Y| odd",
		Use:     "Maximum possible support",
	},
	{
		Name:    "Number of k-itemsets",
		Formula: "C(n,k) = n! / (k! × (n-k)!)",
		Use:     "Count maximum possible k-itemsets from n items",
	},
	{
		Name:    "Rules from k-itemset",
		Formula: "2^k - 2 rules",
		Use:     "Each k-itemset (k>1) can generate this many association rules",
	},
}

var examTips = []string{
	"Always check if an itemset is closed: c(X) = X?",
	"Maximal itemsets: no frequent superset exists",
	"For CHARM: order by increasing support (avoid double checking)",
	"Apriori pruning: if any subset is not frequent, prune the candidate",
	"For sequences: check if pattern maintains ORDER (can skip elements)",
	"Confidence alone can be misleading - check if conf(X→Y) > P(Y)",
	"FP-tree: 2 scans only (1st: count frequencies, 2nd: build tree)",
	"Derivable: when lower bound = upper bound, support is exactly known",
	"Vertical format (Eclat/CHARM): Item → {TID list}",
	"When calculating contingency tables, check independence: P(Y|X) = P(Y)?",
	"GSP generates candidates, PrefixSpan uses pattern growth",
	"Hash tree reduces M×N to N operations in Apriori",
	"Lexicographic order: ensures unique itemset representation",
}

var examQuestionTypes = []string{
	"Extract frequent itemsets (Apriori, FP-Growth)",
	"Extract closed/maximal itemsets (CHARM, GenMax)",
	"Sequential pattern mining (GSP steps)",
	"Calculate confidence, support, lift",
	"Contingency tables and independence testing",
	"Derivable itemsets (bounds calculation)",
	"FP-tree construction and conditional FP-trees",
	"Test if itemset is closed using c(X) = X",
}

var studyTips = []string{
	"Read the question carefully first",
	"Try to answer from memory before flipping",
	"Understand concepts, don't just memorize",
	"Revisit difficult cards regularly",
}

var overview = OverviewPanel{
	Heading: "Frequent Pattern Mining",
	Summary: "Finding patterns (itemsets) that appear frequently in transactional databases",
	ItemsetMining: []string{
		"Apriori (BFS, candidate generation)",
		"FP-Growth (pattern growth, tree-based)",
		"Eclat (DFS, vertical format)",
		"CHARM (closed itemsets)",
		"GenMax (maximal itemsets)",
	},
	SequentialMining: []string{
		"GSP (Apriori-like for sequences)",
		"PrefixSpan (pattern growth)",
		"Sequences maintain ORDER",
		"Example: <(AB)(C)(D)>",
	},
	KeyConcepts: []Term{
		{"Support", "Frequency of pattern"},
		{"Confidence", "Rule strength"},
		{"Closed", "No superset with same support"},
		{"Maximal", "No frequent superset"},
		{"Derivable", "Support calculable from subsets"},
		{"Anti-monotone", "Subset property for pruning"},
	},
}

// Flashcards returns the flashcard deck in study order.
func Flashcards() []Flashcard { return slices.Clone(flashcards) }

// FlashcardCount is the size of the deck.
func FlashcardCount() int { return len(flashcards) }

// FlashcardAt returns card i. It panics if i is out of range, like a slice index.
func FlashcardAt(i int) Flashcard { return flashcards[i] }

func Formulas() []Formula { return slices.Clone(formulas) }

func ExamTips() []string { return slices.Clone(examTips) }

// ExamQuestionTypes lists the categories of question that come up in exams.
func ExamQuestionTypes() []string { return slices.Clone(examQuestionTypes) }

// StudyTips are shown under the flashcard deck.
func StudyTips() []string { return slices.Clone(studyTips) }

// Overview returns the overview panel.
func Overview() OverviewPanel {
	o := overview
	o.ItemsetMining = slices.Clone(o.ItemsetMining)
	o.SequentialMining = slices.Clone(o.SequentialMining)
	o.KeyConcepts = slices.Clone(o.KeyConcepts)
	return o
}

// Catalog is every content table in one value, for export.
type Catalog struct {
	Title             string         `json:"title"`
	Subtitle          string         `json:"subtitle"`
	Version           string         `json:"version"`
	Overview          OverviewPanel  `json:"overview"`
	Algorithms        []CatalogEntry `json:"algorithms"`
	Flashcards        []Flashcard    `json:"flashcards"`
	Formulas          []Formula      `json:"formulas"`
	ExamTips          []string       `json:"examTips"`
	ExamQuestionTypes []string       `json:"examQuestionTypes"`
	StudyTips         []string       `json:"studyTips"`
}

// CatalogEntry is an algorithm with its identifier.
type CatalogEntry struct {
	ID AlgorithmID `json:"id"`
	AlgorithmEntry
}

// AllContent collects the content tables into a Catalog.
func AllContent() Catalog {
	c := Catalog{
		Title:             GuideTitle,
		Subtitle:          GuideSubtitle,
		Version:           Version,
		Overview:          Overview(),
		Flashcards:        Flashcards(),
		Formulas:          Formulas(),
		ExamTips:          ExamTips(),
		ExamQuestionTypes: ExamQuestionTypes(),
		StudyTips:         StudyTips(),
	}
	for _, id := range AlgorithmIDs() {
		a, _ := Algorithm(id)
		c.Algorithms = append(c.Algorithms, CatalogEntry{ID: id, AlgorithmEntry: a})
	}
	return c
}
