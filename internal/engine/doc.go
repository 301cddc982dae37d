// Package engine derives list and calendar view state from a raw task
// collection.
//
// Every function in this package is pure: it takes an in-memory slice of
// tasks plus the UI filter state (status filter, selected day, month) and
// returns derived data without mutating its inputs, reading a clock, or
// touching any external service. The functions are safe to call repeatedly
// and from any goroutine.
//
// The engine provides:
//   - Filtering tasks by completion status and calendar day (Filter)
//   - Aggregate counts (ComputeStats)
//   - Binning tasks into a weekday-aligned month grid (BinByDay, Grid)
//   - Two due-date urgency classifications (DescribeDue, Priority)
//
// Day equality is always decided by SameDay so that list filtering and
// calendar highlighting can never disagree about which day a task falls on.
//
// DescribeDue and Priority intentionally answer the same "how urgent is this
// task" question with different thresholds; they reproduce two call sites
// that drifted apart and are kept as separately named policies rather than
// unified (see DESIGN.md).
package engine
