package content

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"icisdportal/internal/domain"
)

//go:embed data/program.json
var programJSON []byte

// program is the embedded conference program document.
type program struct {
	About      domain.About           `json:"about"`
	Dates      []domain.ImportantDate `json:"dates"`
	Speakers   []domain.Speaker       `json:"speakers"`
	Committees domain.Committees      `json:"committees"`
	Fees       []domain.FeeCategory   `json:"fees"`
	Schedule   []domain.ScheduleDay   `json:"schedule"`
	Venue      domain.Venue           `json:"venue"`
	Topics     []string               `json:"topics"`
}

type provider struct {
	p program
}

// NewProvider parses the embedded program document and returns a
// ContentProvider serving it. The document ships with the binary, so a
// parse failure is a build defect, not a runtime condition.
func NewProvider() (domain.ContentProvider, error) {
	var p program
	if err := json.Unmarshal(programJSON, &p); err != nil {
		return nil, fmt.Errorf("parsing embedded program data: %w", err)
	}
	return &provider{p: p}, nil
}

func (c *provider) About() domain.About              { return c.p.About }
func (c *provider) Dates() []domain.ImportantDate    { return c.p.Dates }
func (c *provider) Speakers() []domain.Speaker       { return c.p.Speakers }
func (c *provider) Committees() domain.Committees    { return c.p.Committees }
func (c *provider) Fees() []domain.FeeCategory       { return c.p.Fees }
func (c *provider) Schedule() []domain.ScheduleDay   { return c.p.Schedule }
func (c *provider) Venue() domain.Venue              { return c.p.Venue }
func (c *provider) Topics() []string                 { return c.p.Topics }
