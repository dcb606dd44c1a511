package domain

// Status represents one state in the fixed shipment lifecycle.
type Status string

const (
	// StatusOrderPlaced indicates the order has been placed.
	StatusOrderPlaced Status = "ORDER_PLACED"
	// StatusProcessing indicates the order is being processed.
	StatusProcessing Status = "PROCESSING"
	// StatusPacked indicates the shipment has been packed.
	StatusPacked Status = "PACKED"
	// StatusShipped indicates the shipment has left the warehouse.
	StatusShipped Status = "SHIPPED"
	// StatusInTransit indicates the shipment is moving between facilities.
	StatusInTransit Status = "IN_TRANSIT"
	// StatusOutForDelivery indicates the shipment is out for final delivery.
	StatusOutForDelivery Status = "OUT_FOR_DELIVERY"
	// StatusDelivered indicates the shipment has been delivered.
	StatusDelivered Status = "DELIVERED"
	// StatusFailedDelivery indicates a delivery attempt failed.
	StatusFailedDelivery Status = "FAILED_DELIVERY"
	// StatusReturned indicates the shipment was returned to sender.
	StatusReturned Status = "RETURNED"
)

// Statuses is the ordered lifecycle vocabulary. The slice index of a
// status is its progress rank.
var Statuses = []Status{
	StatusOrderPlaced,
	StatusProcessing,
	StatusPacked,
	StatusShipped,
	StatusInTransit,
	StatusOutForDelivery,
	StatusDelivered,
	StatusFailedDelivery,
	StatusReturned,
}

// BarSegments is the number of slots in the segmented progress bar.
// Only the first seven lifecycle states get a dedicated segment;
// FAILED_DELIVERY and RETURNED do not.
const BarSegments = 7

// Rank returns the index of s in the lifecycle vocabulary, or -1 if s
// is not a known status.
func Rank(s Status) int {
	for i, v := range Statuses {
		if v == s {
			return i
		}
	}
	return -1
}

// IsValid reports whether s belongs to the lifecycle vocabulary.
func IsValid(s Status) bool {
	return Rank(s) >= 0
}

// NextStatus returns the status that follows s in the lifecycle,
// saturating at the last entry. An unknown status maps to the first
// entry.
func NextStatus(s Status) Status {
	r := Rank(s)
	if r < 0 {
		return Statuses[0]
	}
	if r+1 >= len(Statuses) {
		return Statuses[len(Statuses)-1]
	}
	return Statuses[r+1]
}

// ProgressRatio returns rank(s)/(N-1) clamped to [0, 1]. An unknown
// status yields 0.
func ProgressRatio(s Status) float64 {
	r := Rank(s)
	if r < 0 {
		return 0
	}
	return float64(r) / float64(len(Statuses)-1)
}

// SegmentsFilled returns how many of the bar's segments render as
// filled for s, clamped to [0, BarSegments].
func SegmentsFilled(s Status) int {
	filled := Rank(s) + 1
	if filled < 0 {
		filled = 0
	}
	if filled > BarSegments {
		filled = BarSegments
	}
	return filled
}

// ProgressKind classifies how a status relates to forward delivery
// progress.
type ProgressKind string

const (
	// ProgressInProgress marks a status on the forward delivery path.
	ProgressInProgress ProgressKind = "in_progress"
	// ProgressTerminalFailure marks a failed delivery attempt.
	ProgressTerminalFailure ProgressKind = "terminal_failure"
	// ProgressTerminalReturned marks a shipment returned to sender.
	ProgressTerminalReturned ProgressKind = "terminal_returned"
)

// Progress separates ordinal delivery progress from terminal-exception
// states, which sit after DELIVERED in the vocabulary but do not
// represent forward progress.
type Progress struct {
	// Kind classifies the status.
	Kind ProgressKind `json:"kind"`
	// Rank is the ordinal position on the forward path. Zero for
	// terminal-exception states.
	Rank int `json:"rank"`
}

// Classify returns the Progress projection of s.
func Classify(s Status) Progress {
	switch s {
	case StatusFailedDelivery:
		return Progress{Kind: ProgressTerminalFailure}
	case StatusReturned:
		return Progress{Kind: ProgressTerminalReturned}
	default:
		r := Rank(s)
		if r < 0 {
			r = 0
		}
		return Progress{Kind: ProgressInProgress, Rank: r}
	}
}
