package usecase

import (
	"context"
	"testing"
	"time"

	"survey_tracker/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedSampleQuotes(t *testing.T) {
	ctx := context.Background()
	tr := newTracker()
	today := day(2024, time.March, 14)

	require.NoError(t, SeedSampleQuotes(ctx, tr.quotes, today))

	quotes, err := tr.quotes.ListQuotes(ctx)
	require.NoError(t, err)
	require.Len(t, quotes, 2)
	assert.Equal(t, "Survey Co Ltd", quotes[0].Organization)
	assert.Equal(t, "Map Masters", quotes[1].Organization)
	assert.Equal(t, 2500.0, quotes[0].Total())
	assert.Equal(t, day(2024, time.March, 28), quotes[1].TurnaroundDate)
	for _, q := range quotes {
		assert.Equal(t, entities.InstructionPending, q.Instruction)
	}

	projects, err := tr.projects.ListProjects(ctx)
	require.NoError(t, err)
	assert.Empty(t, projects)
}
