package nomadjson

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jobList = `[
  {
    "ID": "web",
    "Name": "web",
    "Type": "service",
    "Periodic": false,
    "ParameterizedJob": false,
    "JobSummary": {
      "JobID": "web",
      "Summary": {
        "frontend": {"Queued": 1, "Starting": 2, "Running": 3, "Complete": 4, "Failed": 5, "Lost": 6},
        "cache": {"Queued": 1, "Running": 1}
      },
      "Children": {"Pending": 0, "Running": 0, "Dead": 0}
    }
  },
  {
    "ID": "nightly",
    "Name": "nightly",
    "Type": "batch",
    "Periodic": true,
    "JobSummary": {
      "JobID": "nightly",
      "Summary": {},
      "Children": {"Pending": 2, "Running": 1, "Dead": 17}
    }
  },
  {
    "ID": "nightly/periodic-1700000000",
    "ParentID": "nightly",
    "Name": "nightly/periodic-1700000000",
    "Type": "batch"
  }
]`

func TestDecodeWorkloadsList(t *testing.T) {
	ws, err := DecodeWorkloads(strings.NewReader(jobList))
	require.NoError(t, err)
	require.Len(t, ws, 3)

	web := ws[0]
	assert.False(t, web.HasChildren)
	assert.Equal(t, 2, web.QueuedAllocs)
	assert.Equal(t, 2, web.StartingAllocs)
	assert.Equal(t, 4, web.RunningAllocs)
	assert.Equal(t, 4, web.CompleteAllocs)
	assert.Equal(t, 5, web.FailedAllocs)
	assert.Equal(t, 6, web.LostAllocs)

	nightly := ws[1]
	assert.True(t, nightly.HasChildren)
	assert.True(t, nightly.Periodic)
	assert.Equal(t, 2, nightly.PendingChildren)
	assert.Equal(t, 1, nightly.RunningChildren)
	assert.Equal(t, 17, nightly.DeadChildren)

	child := ws[2]
	assert.False(t, child.HasChildren)
	assert.Equal(t, "nightly", child.ParentID)
	assert.Zero(t, child.QueuedAllocs)
}

func TestDecodeSingleFullJob(t *testing.T) {
	payload := `{
	  "ID": "dispatcher",
	  "Type": "batch",
	  "Periodic": null,
	  "ParameterizedJob": {"Payload": "optional", "MetaRequired": ["id"]}
	}`
	ws, err := DecodeWorkloads(strings.NewReader(payload))
	require.NoError(t, err)
	require.Len(t, ws, 1)
	assert.True(t, ws[0].Parameterized)
	assert.True(t, ws[0].HasChildren)
	assert.Equal(t, "dispatcher", ws[0].DisplayName())
}

func TestDispatchedChildHasNoChildren(t *testing.T) {
	j := Job{ID: "d/dispatch-1", ParentID: "d", ParameterizedJob: []byte("true"), Dispatched: true}
	assert.False(t, j.HasChildren())
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode(strings.NewReader("   \n"))
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = Decode(strings.NewReader("[{"))
	assert.ErrorContains(t, err, "decode job list")

	_, err = Decode(strings.NewReader("{nope"))
	assert.ErrorContains(t, err, "decode job")
}
