package app

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
)

func TestApp_TodayUsesLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*3600)
	a := New(nil, nil, nil, nil, tokyo)
	a.now = func() time.Time { return time.Date(2026, 10, 19, 20, 0, 0, 0, time.UTC) }

	assert.Equal(t, civil.Date{Year: 2026, Month: 10, Day: 20}, a.Today())

	utc := New(nil, nil, nil, nil, nil)
	utc.now = a.now
	assert.Equal(t, civil.Date{Year: 2026, Month: 10, Day: 19}, utc.Today())
}
