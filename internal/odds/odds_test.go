package odds

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boardgameodds/fief/internal/models"
	"github.com/boardgameodds/fief/internal/simulator"
)

func newSim(trials int) *simulator.Simulator {
	return simulator.NewSimulator(simulator.Config{Trials: trials, Workers: 2, Seed: 17}, zerolog.Nop())
}

func TestAttackerGrid(t *testing.T) {
	grid := AttackerGrid()
	require.Len(t, grid, 2*(models.MaxKnights+1)*(models.MaxMenAtArms+1))

	assert.Equal(t, models.NewArmy(13, 8, models.NoStructure, models.LordOrTitledLady), grid[0])
	assert.Equal(t, models.NewArmy(0, 0, models.NoStructure, models.NoneOrLady), grid[len(grid)-1])
	for _, a := range grid {
		assert.Equal(t, models.NoStructure, a.Structure)
		assert.NoError(t, a.Validate())
	}
}

func TestSweepEmptyAttacker(t *testing.T) {
	empty := models.NewArmy(0, 0, models.NoStructure, models.NoneOrLady)

	rows, err := Sweep(context.Background(), newSim(50), SweepConfig{Attackers: []models.Army{empty}})
	require.NoError(t, err)

	// Only leaderless empty defenders are no stronger than an empty attacker
	require.Len(t, rows, 3)
	wantStructures := []models.Structure{models.FortifiedCity, models.Stronghold, models.NoStructure}
	for i, row := range rows {
		assert.Equal(t, empty, row.A)
		assert.Equal(t, models.NewArmy(0, 0, wantStructures[i], models.NoneOrLady), row.B)
		assert.Equal(t, 1.0, row.Result.TieRate)
	}
}

func TestSweepSkipsStrongerDefenders(t *testing.T) {
	attacker := models.NewArmy(3, 0, models.NoStructure, models.NoneOrLady)

	var streamed []Row
	rows, err := Sweep(context.Background(), newSim(300), SweepConfig{
		Attackers: []models.Army{attacker},
		OnRow:     func(r Row) { streamed = append(streamed, r) },
	})
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	assert.Equal(t, rows, streamed)

	for _, row := range rows {
		assert.LessOrEqual(t, row.B.StrengthPoints(), attacker.StrengthPoints(), "defender %+v", row.B)
		assert.InDelta(t, 1.0, row.Result.Sum(), 1e-9)
	}
}

func TestSweepCutoffEndsSeries(t *testing.T) {
	attacker := models.NewArmy(6, 1, models.NoStructure, models.NoneOrLady)
	cutoff := 0.6

	rows, err := Sweep(context.Background(), newSim(300), SweepConfig{
		Attackers: []models.Army{attacker},
		Cutoff:    cutoff,
	})
	require.NoError(t, err)

	type series struct {
		leader    models.Leader
		structure models.Structure
		knights   int
	}
	// Within a series only the final row may reach the cutoff
	for i := 0; i+1 < len(rows); i++ {
		cur, next := rows[i].B, rows[i+1].B
		if (series{cur.Leader, cur.Structure, cur.Knights}) != (series{next.Leader, next.Structure, next.Knights}) {
			continue
		}
		assert.Less(t, rows[i].Result.WinRateA, cutoff, "row %d continued past the cutoff", i)
		assert.Greater(t, cur.MenAtArms, next.MenAtArms)
	}
}

func TestSweepRejectsInvalidAttacker(t *testing.T) {
	bad := models.NewArmy(models.MaxMenAtArms+1, 0, models.NoStructure, models.NoneOrLady)

	_, err := Sweep(context.Background(), newSim(10), SweepConfig{Attackers: []models.Army{bad}})
	assert.ErrorIs(t, err, models.ErrInvalidConfiguration)
}

func TestSweepCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Sweep(ctx, newSim(100), SweepConfig{Attackers: []models.Army{models.DefaultAttacker()}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWriteCSV(t *testing.T) {
	rows := []Row{
		{
			A: models.NewArmy(5, 3, models.NoStructure, models.LordOrTitledLady),
			B: models.NewArmy(4, 2, models.Stronghold, models.NoneOrLady),
			Result: simulator.NewResult(simulator.Tally{WinsA: 3, Ties: 0, WinsB: 1}),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, rows))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, Header, records[0])
	assert.Equal(t, []string{
		"5", "3", "lord_or_titled_lady", "none",
		"4", "2", "none_or_lady", "stronghold",
		"0.75", "0.25", "0",
	}, records[1])
}

func TestWriteCSVHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, strings.Join(Header, ",")+"\n", buf.String())
}
