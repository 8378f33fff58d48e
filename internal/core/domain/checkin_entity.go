package domain

type CheckInUser struct {
	ID        ID     `json:"id"`
	UUID      string `json:"uuid"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Avatar    string `json:"avatar"`
}

type CheckInOffice struct {
	ID    ID     `json:"id"`
	Name  string `json:"name"`
	Label string `json:"label"`
	Emoji string `json:"emoji"`
}

// CheckInStatus is a single day's check-in record ("track poll").
type CheckInStatus struct {
	ID                 ID            `json:"id"`
	OrganizationID     ID            `json:"organizationId"`
	ResultOfficeID     ID            `json:"resultOfficeId"`
	ResultOfficeDeskID ID            `json:"resultOfficeDeskId"`
	PollDate           string        `json:"pollDate"`
	UserID             ID            `json:"userId"`
	User               CheckInUser   `json:"user"`
	ResultOffice       CheckInOffice `json:"resultOffice"`
}
