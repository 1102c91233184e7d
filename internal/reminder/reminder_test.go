package reminder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InvalidSpec(t *testing.T) {
	_, err := New("not a cron line", time.UTC, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a cron line")
}

func TestFire_Delivers(t *testing.T) {
	s, err := New(DefaultSchedule, time.UTC, nil)
	require.NoError(t, err)

	s.Fire()

	select {
	case r := <-s.C():
		assert.Equal(t, DefaultMessage, r.Message)
		assert.False(t, r.At.IsZero())
	default:
		t.Fatal("expected a reminder")
	}
}

func TestFire_GateClosed(t *testing.T) {
	enabled := false
	s, err := New(DefaultSchedule, time.UTC, func() bool { return enabled }, WithMessage("hi"))
	require.NoError(t, err)

	s.Fire()
	assert.Empty(t, s.C())

	enabled = true
	s.Fire()
	r := <-s.C()
	assert.Equal(t, "hi", r.Message)
}

func TestFire_DropsWhenFull(t *testing.T) {
	s, err := New(DefaultSchedule, time.UTC, nil, WithBuffer(1))
	require.NoError(t, err)

	s.Fire()
	s.Fire()
	s.Fire()

	assert.Len(t, s.C(), 1)
	assert.Equal(t, 2, s.Dropped())
}

func TestNext_UsesLocation(t *testing.T) {
	loc := time.FixedZone("WAT", 3600)
	s, err := New("30 7 * * *", loc, nil)
	require.NoError(t, err)

	next := s.Next().In(loc)

	assert.Equal(t, 7, next.Hour())
	assert.Equal(t, 30, next.Minute())
	assert.True(t, next.After(time.Now()))
}

func TestStartStop(t *testing.T) {
	s, err := New("@every 10ms", time.UTC, nil)
	require.NoError(t, err)

	s.Start()
	s.Start()
	defer s.Stop()

	select {
	case <-s.C():
	case <-time.After(2 * time.Second):
		t.Fatal("scheduled reminder never fired")
	}
}
