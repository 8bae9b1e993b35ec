package domain

// ImportantDate is one milestone on the conference timeline.
type ImportantDate struct {
	Event     string `json:"event"`
	Date      string `json:"date"`
	Detail    string `json:"detail"`
	Highlight bool   `json:"highlight"`
}

// Speaker is a keynote speaker profile.
type Speaker struct {
	Name        string `json:"name"`
	Designation string `json:"designation"`
	Institution string `json:"institution"`
	Expertise   string `json:"expertise"`
}

// CommitteeMember is one entry in a committee listing. Designation is set
// for organizing roles, Institution for technical/advisory members.
type CommitteeMember struct {
	Name        string `json:"name"`
	Designation string `json:"designation,omitempty"`
	Institution string `json:"institution,omitempty"`
}

// Committees groups the conference committee listings.
type Committees struct {
	ChiefPatrons []CommitteeMember `json:"chiefPatrons"`
	Organizing   []CommitteeMember `json:"organizing"`
	Technical    []CommitteeMember `json:"technical"`
	Advisory     []CommitteeMember `json:"advisory"`
}

// FeeCategory is one row of the registration fee table.
type FeeCategory struct {
	Category  string `json:"category"`
	EarlyBird string `json:"earlyBird"`
	Regular   string `json:"regular"`
}

// ScheduleItem is one slot in a conference day.
type ScheduleItem struct {
	Time    string `json:"time"`
	Event   string `json:"event"`
	Speaker string `json:"speaker,omitempty"`
	Type    string `json:"type"`
}

// ScheduleDay is one day of the conference program.
type ScheduleDay struct {
	Day   string         `json:"day"`
	Date  string         `json:"date"`
	Items []ScheduleItem `json:"items"`
}

// Venue holds the venue and travel information page data.
type Venue struct {
	Name      string   `json:"name"`
	Address   string   `json:"address"`
	City      string   `json:"city"`
	Airport   string   `json:"airport"`
	Rail      string   `json:"rail"`
	Hotels    []string `json:"hotels"`
	MapsQuery string   `json:"mapsQuery"`
}

// About holds the about-page copy.
type About struct {
	Name    string   `json:"name"`
	Edition string   `json:"edition"`
	Tagline string   `json:"tagline"`
	Summary string   `json:"summary"`
	Themes  []string `json:"themes"`
}

// ContentProvider serves the informational page data. Implementations are
// read-only; content ships with the binary.
type ContentProvider interface {
	About() About
	Dates() []ImportantDate
	Speakers() []Speaker
	Committees() Committees
	Fees() []FeeCategory
	Schedule() []ScheduleDay
	Venue() Venue
	Topics() []string
}
