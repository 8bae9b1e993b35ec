package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	c, err := NewProvider()
	require.NoError(t, err)

	assert.Equal(t, "ICISD'26", c.About().Edition)
	assert.NotEmpty(t, c.About().Summary)

	dates := c.Dates()
	require.NotEmpty(t, dates)
	// The conference dates entry is the highlighted one.
	var highlighted int
	for _, d := range dates {
		if d.Highlight {
			highlighted++
			assert.Equal(t, "Conference Dates", d.Event)
		}
	}
	assert.Equal(t, 1, highlighted)

	assert.Len(t, c.Speakers(), 6)
	for _, s := range c.Speakers() {
		assert.NotEmpty(t, s.Name)
		assert.NotEmpty(t, s.Institution)
	}

	committees := c.Committees()
	assert.NotEmpty(t, committees.ChiefPatrons)
	assert.NotEmpty(t, committees.Organizing)
	assert.NotEmpty(t, committees.Technical)
	assert.NotEmpty(t, committees.Advisory)

	assert.Len(t, c.Fees(), 5)

	schedule := c.Schedule()
	require.Len(t, schedule, 2)
	for _, day := range schedule {
		assert.NotEmpty(t, day.Date)
		assert.NotEmpty(t, day.Items)
	}

	assert.NotEmpty(t, c.Venue().Name)
	assert.NotEmpty(t, c.Venue().Hotels)

	topics := c.Topics()
	assert.Contains(t, topics, "Machine Learning")
	assert.Contains(t, topics, "Cybersecurity")
}
