package domain

type Desk struct {
	ID               ID     `json:"id"`
	Name             string `json:"name"`
	OfficeID         ID     `json:"officeId"`
	X                int    `json:"x"`
	Y                int    `json:"y"`
	Disabled         bool   `json:"disabled"`
	ReservedByUserID ID     `json:"reservedByUserId"`
}

func (d Desk) Coordinate() Coordinate {
	return Coordinate{X: d.X, Y: d.Y}
}

type Office struct {
	ID             ID     `json:"id"`
	OrganizationID ID     `json:"organizationId"`
	Name           string `json:"name"`
	Label          string `json:"label"`
	Emoji          string `json:"emoji"`
	Desks          []Desk `json:"desks"`
}

func (o *Office) FindDesk(id ID) (*Desk, bool) {
	for i := range o.Desks {
		if o.Desks[i].ID == id {
			return &o.Desks[i], true
		}
	}
	return nil, false
}

func FindOffice(offices []Office, id ID) (*Office, bool) {
	for i := range offices {
		if offices[i].ID == id {
			return &offices[i], true
		}
	}
	return nil, false
}
