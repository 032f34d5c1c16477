package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spektr-org/divestat/dive"
)

func TestApplyFilter(t *testing.T) {
	a := mkDive("2020-02-01", "Alice", "", 8000, dive.OC)
	b := mkDive("2020-06-03", "Bob", "Carol", 23000, dive.CCR)
	c := mkDive("2021-07-04", "", "alice", 27000, dive.Mode(17))
	d := mkDive("2022-01-01", "Dave", "", 5000, dive.Freedive)
	log := dives(a, b, c, d)

	cases := map[string]struct {
		filter Filter
		want   []dive.Dive
	}{
		"empty":           {Filter{}, log},
		"mode":            {Filter{Modes: []dive.Mode{dive.CCR, dive.Freedive}}, dives(b, d)},
		"invalid is OC":   {Filter{Modes: []dive.Mode{dive.OC}}, dives(a, c)},
		"buddy or guide":  {Filter{Buddies: []string{"ALICE"}}, dives(a, c)},
		"guide only":      {Filter{Buddies: []string{" carol "}}, dives(b)},
		"since inclusive": {Filter{Since: time.Date(2021, 7, 4, 0, 0, 0, 0, time.UTC)}, dives(c, d)},
		"until exclusive": {Filter{Until: time.Date(2021, 7, 4, 0, 0, 0, 0, time.UTC)}, dives(a, b)},
		"and-combined":    {Filter{Modes: []dive.Mode{dive.OC}, Buddies: []string{"alice"}, Since: time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)}, dives(c)},
		"nothing matches": {Filter{Buddies: []string{"Eve"}}, []dive.Dive{}},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, ApplyFilter(log, tc.filter))
		})
	}
}

func TestApplyFilterKeepsInput(t *testing.T) {
	log := dives(mkDive("2020-02-01", "Alice", "", 8000, dive.OC), mkDive("2020-02-02", "Bob", "", 8000, dive.OC))
	got := ApplyFilter(log, Filter{Buddies: []string{"Bob"}})
	require.Len(t, got, 1)
	assert.Len(t, log, 2)
	assert.Same(t, log[1], got[0])
}

func TestExecuteFiltered(t *testing.T) {
	reg, hook := testRegistry(t)
	log := dives(
		mkDive("2020-02-01", "Alice", "", 8000, dive.OC),
		mkDive("2020-02-03", "Bob", "", 23000, dive.CCR),
		mkDive("2021-07-04", "Alice", "", 27000, dive.OC),
	)

	res, err := reg.Execute(Query{Type: 0, Binner: 0, Counts: true, Filter: Filter{Buddies: []string{"alice"}}}, log, nil)
	require.NoError(t, err)
	assert.Equal(t, []Row{{Label: "2020", Count: 1}, {Label: "2021", Count: 1}}, res.Rows)
	assert.Equal(t, 2, res.Total)
	assert.Equal(t, 3, hook.LastEntry().Data["dives"])
	assert.Equal(t, 2, hook.LastEntry().Data["selected"])
}
