package domain

import "fmt"

// Category is one of the four fixed stock categories of a design.
type Category string

const (
	CategoryMen   Category = "men"
	CategoryWomen Category = "women"
	CategoryBoys  Category = "boys"
	CategoryGirls Category = "girls"
)

// Categories lists the four stock categories in display order.
func Categories() []Category {
	return []Category{CategoryMen, CategoryWomen, CategoryBoys, CategoryGirls}
}

var adultSizes = []string{"M", "L", "XL", "XXL", "3XL"}

var kidsSizes = []string{"0-1", "1-2", "2-3", "3-4", "4-5", "5-6", "6-7", "7-8", "9-10", "11-12", "13-14"}

// AdultSizes returns the fixed adult size vocabulary (men, women).
func AdultSizes() []string { return adultSizes }

// KidsSizes returns the fixed age-band vocabulary (boys, girls).
func KidsSizes() []string { return kidsSizes }

// SizesFor returns the size vocabulary of a category.
func SizesFor(cat Category) []string {
	switch cat {
	case CategoryMen, CategoryWomen:
		return adultSizes
	case CategoryBoys, CategoryGirls:
		return kidsSizes
	}
	panic(fmt.Sprintf("domain: unknown category %q", cat))
}

// ValidCategory reports whether cat is one of the four closed categories.
func ValidCategory(cat Category) bool {
	switch cat {
	case CategoryMen, CategoryWomen, CategoryBoys, CategoryGirls:
		return true
	}
	return false
}

// ValidSize reports whether (cat, size) belongs to the closed vocabulary.
// Callers at the API boundary use this to reject bad input before it can
// reach the matrix, where an unknown category or size is a programming
// error. Unlike the matrix accessors it never panics: category and size
// both arrive from clients here.
func ValidSize(cat Category, size string) bool {
	if !ValidCategory(cat) {
		return false
	}
	for _, s := range SizesFor(cat) {
		if s == size {
			return true
		}
	}
	return false
}

// AdultStock holds per-size counts for an adult category.
type AdultStock struct {
	M    int `json:"M"`
	L    int `json:"L"`
	XL   int `json:"XL"`
	XXL  int `json:"XXL"`
	XXXL int `json:"3XL"`
}

func (s *AdultStock) cell(size string) *int {
	switch size {
	case "M":
		return &s.M
	case "L":
		return &s.L
	case "XL":
		return &s.XL
	case "XXL":
		return &s.XXL
	case "3XL":
		return &s.XXXL
	}
	panic(fmt.Sprintf("domain: unknown adult size %q", size))
}

// KidsStock holds per-age-band counts for a kids category.
type KidsStock struct {
	Age0to1   int `json:"0-1"`
	Age1to2   int `json:"1-2"`
	Age2to3   int `json:"2-3"`
	Age3to4   int `json:"3-4"`
	Age4to5   int `json:"4-5"`
	Age5to6   int `json:"5-6"`
	Age6to7   int `json:"6-7"`
	Age7to8   int `json:"7-8"`
	Age9to10  int `json:"9-10"`
	Age11to12 int `json:"11-12"`
	Age13to14 int `json:"13-14"`
}

func (s *KidsStock) cell(size string) *int {
	switch size {
	case "0-1":
		return &s.Age0to1
	case "1-2":
		return &s.Age1to2
	case "2-3":
		return &s.Age2to3
	case "3-4":
		return &s.Age3to4
	case "4-5":
		return &s.Age4to5
	case "5-6":
		return &s.Age5to6
	case "6-7":
		return &s.Age6to7
	case "7-8":
		return &s.Age7to8
	case "9-10":
		return &s.Age9to10
	case "11-12":
		return &s.Age11to12
	case "13-14":
		return &s.Age13to14
	}
	panic(fmt.Sprintf("domain: unknown kids size %q", size))
}

// StockMatrix is the per-design inventory grid: four categories, each with a
// closed size list. Counts never go negative; writes clamp at zero.
type StockMatrix struct {
	Men   AdultStock `json:"men"`
	Women AdultStock `json:"women"`
	Boys  KidsStock  `json:"boys"`
	Girls KidsStock  `json:"girls"`
}

func (m *StockMatrix) cell(cat Category, size string) *int {
	switch cat {
	case CategoryMen:
		return m.Men.cell(size)
	case CategoryWomen:
		return m.Women.cell(size)
	case CategoryBoys:
		return m.Boys.cell(size)
	case CategoryGirls:
		return m.Girls.cell(size)
	}
	panic(fmt.Sprintf("domain: unknown category %q", cat))
}

// Get returns the current count for (cat, size).
func (m *StockMatrix) Get(cat Category, size string) int {
	return *m.cell(cat, size)
}

// Set writes a count, clamped to zero.
func (m *StockMatrix) Set(cat Category, size string, n int) {
	if n < 0 {
		n = 0
	}
	*m.cell(cat, size) = n
}

// Add applies a delta, clamped so the cell never goes negative.
func (m *StockMatrix) Add(cat Category, size string, delta int) {
	m.Set(cat, size, m.Get(cat, size)+delta)
}

// Clamp rounds every negative cell up to zero. Matrices decoded from
// external input go through here before they are persisted, keeping the
// counts-never-negative invariant at rest.
func (m *StockMatrix) Clamp() {
	for _, cat := range Categories() {
		for _, size := range SizesFor(cat) {
			m.Set(cat, size, m.Get(cat, size))
		}
	}
}

// HasAnyStock reports whether any size in cat has a positive count.
func (m *StockMatrix) HasAnyStock(cat Category) bool {
	for _, size := range SizesFor(cat) {
		if m.Get(cat, size) > 0 {
			return true
		}
	}
	return false
}

// TotalUnits sums every cell across all four categories.
func (m *StockMatrix) TotalUnits() int {
	total := 0
	for _, cat := range Categories() {
		for _, size := range SizesFor(cat) {
			total += m.Get(cat, size)
		}
	}
	return total
}
