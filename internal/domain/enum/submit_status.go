package enum

// SubmitStatus is the status string sent with an order submission.
//
//	NEW     - first save of an order built from an empty cart
//	UPDATED - save of a resumed held order
//	KOT     - kitchen order ticket: persists the items without closing
//	          the order, leaving it resumable
type SubmitStatus string

const (
	SubmitStatusNew     SubmitStatus = "NEW"
	SubmitStatusUpdated SubmitStatus = "UPDATED"
	SubmitStatusKOT     SubmitStatus = "KOT"
)
