package record

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactory_NewPost(t *testing.T) {
	f := NewFactory(NewIDGenerator(fixedNow), fixedNow, false)

	tests := []struct {
		name     string
		fields   PostFields
		media    string
		wantType string
	}{
		{name: "default type", fields: PostFields{Title: "a", Content: "b"}, wantType: "General"},
		{name: "explicit type", fields: PostFields{Title: "a", Content: "b", Type: "Event"}, wantType: "Event"},
		{name: "with media", fields: PostFields{Title: "a"}, media: "/uploads/1.png", wantType: "General"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := f.NewPost(tt.fields, tt.media)
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, p.Type)
			assert.Equal(t, tt.media, p.Media)
			assert.Equal(t, "Wed Oct 15 2025", p.Date)
			assert.NotZero(t, p.ID)
		})
	}
}

func TestFactory_StrictMode(t *testing.T) {
	f := NewFactory(NewIDGenerator(fixedNow), fixedNow, true)
	assert.True(t, f.Strict())

	_, err := f.NewPost(PostFields{Title: "  ", Content: "x"}, "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.NewJob(JobFields{Title: "x"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	job, err := f.NewJob(JobFields{Title: "x", Link: "https://jobs.example.com/1", Company: "ACME"})
	require.NoError(t, err)
	assert.Equal(t, "ACME", job.Company)
}

func TestIDGenerator_SameMillisecond(t *testing.T) {
	frozen := func() time.Time { return time.UnixMilli(1700000000000) }
	g := NewIDGenerator(frozen)

	first := g.Next()
	second := g.Next()
	third := g.Next()

	assert.Equal(t, int64(1700000000000), first)
	assert.Equal(t, first+1, second)
	assert.Equal(t, second+1, third)
}

func TestIDGenerator_FollowsClock(t *testing.T) {
	now := time.UnixMilli(1000)
	g := NewIDGenerator(func() time.Time { return now })

	assert.Equal(t, int64(1000), g.Next())
	now = now.Add(time.Second)
	assert.Equal(t, int64(2000), g.Next())
}

func TestNewEvent(t *testing.T) {
	ev := NewEvent(RecTypeJob, ActionDeleted, 7, fixedNow())
	assert.Equal(t, "job.deleted", ev.Type)
	assert.Equal(t, RecTypeJob, ev.Record)
	assert.NoError(t, ev.Record.Validate())
	assert.Error(t, RecType("card").Validate())
}
