package domain

// MaxCompare bounds the comparison selection.
const MaxCompare = 3

// AddOutcome reports the result of adding a product to a comparison set.
type AddOutcome int

const (
	Added AddOutcome = iota
	AlreadyPresent
	CapacityExceeded
)

// ComparisonSet is the ordered client-side selection of products queued for
// side-by-side comparison. Size never exceeds MaxCompare.
type ComparisonSet []int

// Add appends a product id. A duplicate or an addition past MaxCompare
// leaves the set unchanged and reports why.
func (s ComparisonSet) Add(productID int) (ComparisonSet, AddOutcome) {
	if s.Contains(productID) {
		return s, AlreadyPresent
	}
	if len(s) >= MaxCompare {
		return s, CapacityExceeded
	}
	out := make(ComparisonSet, len(s), len(s)+1)
	copy(out, s)
	return append(out, productID), Added
}

// Remove drops a product id. Removing an absent id is a no-op.
func (s ComparisonSet) Remove(productID int) ComparisonSet {
	out := make(ComparisonSet, 0, len(s))
	for _, id := range s {
		if id != productID {
			out = append(out, id)
		}
	}
	return out
}

func (s ComparisonSet) Contains(productID int) bool {
	for _, id := range s {
		if id == productID {
			return true
		}
	}
	return false
}

// CompareState is the page-facing state of the comparison workflow.
type CompareState int

const (
	Selecting CompareState = iota
	Comparing
)

// Workflow drives the pick-then-compare flow: products are selected while in
// Selecting, the compare action becomes available at two valid picks, and
// clear or back returns from Comparing to Selecting.
type Workflow struct {
	Selection ComparisonSet
	state     CompareState
}

func (w *Workflow) State() CompareState { return w.state }

func (w *Workflow) CanCompare() bool { return len(w.Selection) >= 2 }

// BeginCompare moves to Comparing once enough products are picked.
func (w *Workflow) BeginCompare() bool {
	if !w.CanCompare() {
		return false
	}
	w.state = Comparing
	return true
}

// Back returns to selection keeping the current picks.
func (w *Workflow) Back() { w.state = Selecting }

// Clear resets the selection and returns to Selecting.
func (w *Workflow) Clear() {
	w.Selection = nil
	w.state = Selecting
}
