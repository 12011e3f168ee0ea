package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		raw    string
		want   Status
		wantOK bool
	}{
		{raw: "Backlog", want: StatusBacklog, wantOK: true},
		{raw: "todo", want: StatusTodo, wantOK: true},
		{raw: "In progress", want: StatusInProgress, wantOK: true},
		{raw: "DONE", want: StatusDone, wantOK: true},
		{raw: " todo ", wantOK: false},
		{raw: "Canceled", want: StatusCanceled, wantOK: true},
		{raw: "Cancelled", wantOK: false},
		{raw: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := NormalizeStatus(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseGroupingAndOrdering(t *testing.T) {
	g, err := ParseGrouping("User")
	require.NoError(t, err)
	assert.Equal(t, GroupByUser, g)

	_, err = ParseGrouping("team")
	require.Error(t, err)
	assert.True(t, HasCode(err, ErrorCodeInvalidArgument))

	o, err := ParseOrdering(" title ")
	require.NoError(t, err)
	assert.Equal(t, OrderByTitle, o)

	_, err = ParseOrdering("created_at")
	assert.True(t, HasCode(err, ErrorCodeInvalidArgument))
}

func TestPriorityLabels(t *testing.T) {
	labels := make([]string, 0, len(Priorities))
	for _, p := range Priorities {
		labels = append(labels, p.Label())
	}
	assert.Equal(t, []string{"Urgent", "High", "Medium", "Low", "No Priority"}, labels)
	assert.False(t, Priority(5).Valid())
	assert.False(t, Priority(-1).Valid())
}

func TestTicket_PriorityOrZero(t *testing.T) {
	three := 3
	assert.Equal(t, 3, Ticket{Priority: &three}.PriorityOrZero())
	assert.Equal(t, 0, Ticket{}.PriorityOrZero())
}
