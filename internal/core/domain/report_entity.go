package domain

type Outcome string

const (
	OutcomeWorkingFromHome Outcome = "working_from_home"
	OutcomeOfficeNotFound  Outcome = "office_not_found"
	OutcomeDeskNotFound    Outcome = "desk_not_found"
	OutcomeAssigned        Outcome = "assigned"
)

// Delivery records what the notifier managed to post.
type Delivery string

const (
	DeliveryNone  Delivery = "none"
	DeliveryText  Delivery = "text"
	DeliveryImage Delivery = "image"
)

type Report struct {
	RunID    string   `json:"run_id"`
	Date     string   `json:"date"`
	Outcome  Outcome  `json:"outcome"`
	Message  string   `json:"message"`
	OfficeID ID       `json:"office_id,omitempty"`
	DeskID   ID       `json:"desk_id,omitempty"`
	Room     string   `json:"room,omitempty"`
	Image    string   `json:"image,omitempty"`
	Delivery Delivery `json:"delivery"`
}

func NewReport(runID, date string) *Report {
	return &Report{
		RunID:    runID,
		Date:     date,
		Delivery: DeliveryNone,
	}
}
