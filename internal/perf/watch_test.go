package perf_test

import (
	"time"

	"github.com/dalibo/permutate/internal/perf"
)

func (suite *Suite) TestStopwatch() {
	r := suite.Require()

	t := perf.StopWatch{}
	t.TimeIt(func() {
		time.Sleep(time.Microsecond)
	})
	r.Less(0*time.Nanosecond, t.Total)
	r.Equal(1, t.Count)
	backup := t.Total

	t.TimeIt(func() {
		time.Sleep(time.Microsecond)
	})
	r.Less(backup, t.Total)
	r.Equal(2, t.Count)
}

func (suite *Suite) TestRate() {
	r := suite.Require()

	t := perf.StopWatch{}
	r.Equal(0., t.Rate(10))
	t.Total = 2 * time.Second
	r.Equal(5., t.Rate(10))
}
