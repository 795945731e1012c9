package models

// Status is one of the five fixed pipeline stages an application can be
// marked with. The order of Statuses is the pipeline order; it drives sort
// and selection affordances only — any status may be set to any other, there
// is no enforced transition rule.
type Status string

const (
	StatusApplied            Status = "applied"
	StatusInterviewScheduled Status = "interview_scheduled"
	StatusInterviewCompleted Status = "interview_completed"
	StatusOfferReceived      Status = "offer_received"
	StatusRejected           Status = "rejected"
)

// Statuses lists all valid status values in pipeline order.
var Statuses = []Status{
	StatusApplied,
	StatusInterviewScheduled,
	StatusInterviewCompleted,
	StatusOfferReceived,
	StatusRejected,
}

var statusLabels = map[Status]string{
	StatusApplied:            "Applied",
	StatusInterviewScheduled: "Interview Scheduled",
	StatusInterviewCompleted: "Interview Completed",
	StatusOfferReceived:      "Offer Received",
	StatusRejected:           "Rejected",
}

// Color tag per status, consumed by the UI as a badge class suffix
// (e.g. "gray" -> .badge--gray).
var statusColors = map[Status]string{
	StatusApplied:            "gray",
	StatusInterviewScheduled: "blue",
	StatusInterviewCompleted: "purple",
	StatusOfferReceived:      "green",
	StatusRejected:           "red",
}

func (s Status) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

func (s Status) Label() string { return statusLabels[s] }

func (s Status) Color() string { return statusColors[s] }

// WorkType is the work arrangement for a position. Nullable on applications.
type WorkType string

const (
	WorkTypeRemote WorkType = "remote"
	WorkTypeHybrid WorkType = "hybrid"
	WorkTypeOnSite WorkType = "on_site"
)

// WorkTypes lists all valid work type values.
var WorkTypes = []WorkType{WorkTypeRemote, WorkTypeHybrid, WorkTypeOnSite}

var workTypeLabels = map[WorkType]string{
	WorkTypeRemote: "Remote",
	WorkTypeHybrid: "Hybrid",
	WorkTypeOnSite: "On Site",
}

func (w WorkType) Valid() bool {
	_, ok := workTypeLabels[w]
	return ok
}

func (w WorkType) Label() string { return workTypeLabels[w] }
