package editor

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-builder/internal/types"
)

// perEntryImprover returns bullets derived from the entry ID so each entry's
// result is distinguishable.
type perEntryImprover struct{}

func (perEntryImprover) Summary(_ context.Context, _ *types.ResumeRecord) (string, error) {
	return "summary", nil
}

func (perEntryImprover) ExperienceBullets(_ context.Context, _ *types.ResumeRecord, id uuid.UUID) ([]string, error) {
	return []string{"exp " + id.String()}, nil
}

func (perEntryImprover) ProjectBullets(_ context.Context, _ *types.ResumeRecord, id uuid.UUID) ([]string, error) {
	return []string{"proj " + id.String()}, nil
}

func TestImprove_ConcurrentEntriesAreIndependent(t *testing.T) {
	ed := New(perEntryImprover{})

	ids := []uuid.UUID{ed.Record().Experience[0].ID}
	for i := 0; i < 7; i++ {
		ids = append(ids, ed.AddExperience())
	}
	for i, id := range ids {
		require.NoError(t, ed.UpdateExperience(id, func(exp *types.ExperienceEntry) {
			exp.Title = fmt.Sprintf("Role %d", i)
			exp.Description = types.BulletList{"draft"}
		}))
	}
	ed.SetSummary("draft")

	var g errgroup.Group
	for _, id := range ids {
		id := id
		g.Go(func() error { return ed.ImproveExperience(context.Background(), id) })
	}
	g.Go(func() error { return ed.ImproveSummary(context.Background()) })
	require.NoError(t, g.Wait())

	rec := ed.Record()
	assert.Equal(t, "summary", rec.Summary)
	for _, exp := range rec.Experience {
		require.Len(t, exp.Description, 1)
		assert.Equal(t, "exp "+exp.ID.String(), exp.Description[0])
	}

	for _, id := range ids {
		assert.False(t, ed.Busy(id))
	}
	assert.False(t, ed.Busy(uuid.Nil))
}
