package editor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/types"
)

func TestNew_StartsWithPlaceholderEntries(t *testing.T) {
	ed := New(nil)
	rec := ed.Record()

	assert.Len(t, rec.Experience, 1)
	assert.Len(t, rec.Education, 1)
	assert.Len(t, rec.Projects, 1)
	assert.Len(t, rec.Certifications, 1)
	assert.Empty(t, rec.Skills)
	assert.Empty(t, rec.Achievements)
	assert.Empty(t, rec.ExtraCurricular)

	assert.NotEqual(t, uuid.Nil, rec.Experience[0].ID)
}

func TestFromRecord_TopsUpEmptySections(t *testing.T) {
	stored := types.ResumeRecord{
		Title: "mine",
		Experience: []types.ExperienceEntry{
			{ID: uuid.New(), Title: "Engineer", Company: "Acme"},
		},
	}
	ed := FromRecord(stored, nil)
	rec := ed.Record()

	assert.Len(t, rec.Experience, 1)
	assert.Equal(t, "Engineer", rec.Experience[0].Title)
	assert.Len(t, rec.Education, 1)
	assert.Len(t, rec.Projects, 1)
}

func TestNormalized_FiltersPlaceholders(t *testing.T) {
	ed := New(nil)
	ed.SetTitle("Backend Resume")

	rec := ed.Normalized()
	assert.Empty(t, rec.Experience)
	assert.Empty(t, rec.Education)
	assert.Empty(t, rec.Projects)
	assert.Empty(t, rec.Certifications)
	assert.Equal(t, "Backend Resume", rec.Title)
}

func TestRemove_LastEntryRejected(t *testing.T) {
	ed := New(nil)
	rec := ed.Record()

	assert.ErrorIs(t, ed.RemoveExperience(rec.Experience[0].ID), ErrLastEntry)
	assert.ErrorIs(t, ed.RemoveEducation(rec.Education[0].ID), ErrLastEntry)
	assert.ErrorIs(t, ed.RemoveProject(rec.Projects[0].ID), ErrLastEntry)
	assert.ErrorIs(t, ed.RemoveCertification(rec.Certifications[0].ID), ErrLastEntry)

	assert.Len(t, ed.Record().Experience, 1)
}

func TestRemove_AboveFloor(t *testing.T) {
	ed := New(nil)
	added := ed.AddExperience()

	require.NoError(t, ed.RemoveExperience(added))
	assert.Len(t, ed.Record().Experience, 1)

	assert.ErrorIs(t, ed.RemoveExperience(uuid.New()), ErrLastEntry)
}

func TestRemove_UnknownID(t *testing.T) {
	ed := New(nil)
	ed.AddExperience()
	assert.ErrorIs(t, ed.RemoveExperience(uuid.New()), ErrEntryNotFound)
}

func TestStringListSections_CanReachZero(t *testing.T) {
	ed := New(nil)
	ed.AddSkill("Go")
	ed.AddAchievement("won a thing")
	ed.AddExtraCurricular("chess club")

	require.NoError(t, ed.RemoveSkill(0))
	require.NoError(t, ed.RemoveAchievement(0))
	require.NoError(t, ed.RemoveExtraCurricular(0))

	rec := ed.Record()
	assert.Empty(t, rec.Skills)
	assert.Empty(t, rec.Achievements)
	assert.Empty(t, rec.ExtraCurricular)
}

func TestAddSkill_DedupAndBlank(t *testing.T) {
	ed := New(nil)
	ed.AddSkill("Go")
	ed.AddSkill("go")
	ed.AddSkill("  ")
	ed.AddSkill("PostgreSQL")

	assert.Equal(t, []string{"Go", "PostgreSQL"}, ed.Record().Skills)
}

func TestUpdateExperience_ByID(t *testing.T) {
	ed := New(nil)
	id := ed.Record().Experience[0].ID

	err := ed.UpdateExperience(id, func(exp *types.ExperienceEntry) {
		exp.Title = "Engineer"
		exp.Company = "Acme"
		exp.Current = true
	})
	require.NoError(t, err)

	rec := ed.Record()
	assert.Equal(t, "Engineer", rec.Experience[0].Title)
	assert.True(t, rec.Experience[0].Current)

	assert.ErrorIs(t, ed.UpdateExperience(uuid.New(), func(*types.ExperienceEntry) {}), ErrEntryNotFound)
}

func TestBulletOps(t *testing.T) {
	ed := New(nil)
	id := ed.Record().Projects[0].ID

	require.NoError(t, ed.AddProjectBullet(id))
	require.NoError(t, ed.AddProjectBullet(id))
	require.NoError(t, ed.SetProjectBullet(id, 0, "first"))
	require.NoError(t, ed.SetProjectBullet(id, 1, "second"))
	require.NoError(t, ed.RemoveProjectBullet(id, 0))

	rec := ed.Record()
	assert.Equal(t, types.BulletList{"second"}, rec.Projects[0].Description)

	assert.ErrorIs(t, ed.SetProjectBullet(id, 5, "x"), ErrEntryNotFound)
	assert.ErrorIs(t, ed.RemoveProjectBullet(id, -1), ErrEntryNotFound)
	assert.ErrorIs(t, ed.AddProjectBullet(uuid.New()), ErrEntryNotFound)
}

func TestRecord_ReturnsDeepCopy(t *testing.T) {
	ed := New(nil)
	id := ed.Record().Experience[0].ID
	require.NoError(t, ed.AddExperienceBullet(id))
	require.NoError(t, ed.SetExperienceBullet(id, 0, "original"))

	rec := ed.Record()
	rec.Experience[0].Description[0] = "mutated copy"
	rec.Title = "mutated copy"

	fresh := ed.Record()
	assert.Equal(t, "original", fresh.Experience[0].Description[0])
	assert.Empty(t, fresh.Title)
}

// fakeImprover coordinates in-flight improve calls for concurrency tests.
type fakeImprover struct {
	summaryText string
	bullets     []string
	err         error

	started chan uuid.UUID
	release chan struct{}
}

func (f *fakeImprover) wait() {
	if f.release != nil {
		<-f.release
	}
}

func (f *fakeImprover) Summary(_ context.Context, _ *types.ResumeRecord) (string, error) {
	if f.started != nil {
		f.started <- uuid.Nil
	}
	f.wait()
	return f.summaryText, f.err
}

func (f *fakeImprover) ExperienceBullets(_ context.Context, _ *types.ResumeRecord, id uuid.UUID) ([]string, error) {
	if f.started != nil {
		f.started <- id
	}
	f.wait()
	return f.bullets, f.err
}

func (f *fakeImprover) ProjectBullets(_ context.Context, _ *types.ResumeRecord, id uuid.UUID) ([]string, error) {
	if f.started != nil {
		f.started <- id
	}
	f.wait()
	return f.bullets, f.err
}

func TestImproveProject_ReplacesBullets(t *testing.T) {
	imp := &fakeImprover{bullets: []string{"Built Y", "Improved Z", "Shipped W"}}
	ed := New(imp)
	id := ed.Record().Projects[0].ID
	require.NoError(t, ed.UpdateProject(id, func(p *types.ProjectEntry) {
		p.Name = "Side Project"
		p.Description = types.BulletList{"did stuff"}
	}))

	require.NoError(t, ed.ImproveProject(context.Background(), id))
	assert.Equal(t, types.BulletList{"Built Y", "Improved Z", "Shipped W"}, ed.Record().Projects[0].Description)
}

func TestImprove_FailureLeavesContentUntouched(t *testing.T) {
	imp := &fakeImprover{err: errors.New("model unavailable")}
	ed := New(imp)
	ed.SetSummary("original summary")

	err := ed.ImproveSummary(context.Background())
	require.Error(t, err)
	assert.Equal(t, "original summary", ed.Record().Summary)
	assert.False(t, ed.Busy(uuid.Nil))
}

func TestImprove_RetriggerWhilePendingIsNoOp(t *testing.T) {
	imp := &fakeImprover{
		summaryText: "better",
		started:     make(chan uuid.UUID, 2),
		release:     make(chan struct{}),
	}
	ed := New(imp)
	ed.SetSummary("draft")

	first := make(chan error, 1)
	go func() { first <- ed.ImproveSummary(context.Background()) }()
	<-imp.started
	assert.True(t, ed.Busy(uuid.Nil))

	// second trigger while pending returns immediately without a model call
	require.NoError(t, ed.ImproveSummary(context.Background()))
	select {
	case <-imp.started:
		t.Fatal("re-trigger reached the improver")
	case <-time.After(20 * time.Millisecond):
	}

	close(imp.release)
	require.NoError(t, <-first)
	assert.Equal(t, "better", ed.Record().Summary)
	assert.False(t, ed.Busy(uuid.Nil))
}

func TestImprove_ClosedEditorDiscardsResult(t *testing.T) {
	imp := &fakeImprover{
		summaryText: "better",
		started:     make(chan uuid.UUID, 1),
		release:     make(chan struct{}),
	}
	ed := New(imp)
	ed.SetSummary("draft")

	done := make(chan error, 1)
	go func() { done <- ed.ImproveSummary(context.Background()) }()
	<-imp.started
	ed.Close()
	close(imp.release)

	assert.ErrorIs(t, <-done, ErrClosed)
	assert.Equal(t, "draft", ed.Record().Summary)

	assert.ErrorIs(t, ed.ImproveSummary(context.Background()), ErrClosed)
}

func TestImprove_EntryRemovedWhileInFlight(t *testing.T) {
	imp := &fakeImprover{
		bullets: []string{"rewritten"},
		started: make(chan uuid.UUID, 1),
		release: make(chan struct{}),
	}
	ed := New(imp)
	id := ed.Record().Experience[0].ID
	require.NoError(t, ed.UpdateExperience(id, func(exp *types.ExperienceEntry) {
		exp.Description = types.BulletList{"old"}
	}))
	ed.AddExperience()

	done := make(chan error, 1)
	go func() { done <- ed.ImproveExperience(context.Background(), id) }()
	<-imp.started
	require.NoError(t, ed.RemoveExperience(id))
	close(imp.release)

	assert.ErrorIs(t, <-done, ErrEntryNotFound)
}

func TestPhotoOperations(t *testing.T) {
	ed := New(nil)

	ed.SetPhoto("data:image/png;base64,abc")
	rec := ed.Record()
	assert.Equal(t, "data:image/png;base64,abc", rec.PersonalInfo.PhotoURL)
	assert.True(t, rec.PersonalInfo.ShowPhoto)

	// Hiding keeps the stored photo
	ed.SetShowPhoto(false)
	rec = ed.Record()
	assert.False(t, rec.PersonalInfo.ShowPhoto)
	assert.NotEmpty(t, rec.PersonalInfo.PhotoURL)

	ed.RemovePhoto()
	rec = ed.Record()
	assert.Empty(t, rec.PersonalInfo.PhotoURL)
	assert.False(t, rec.PersonalInfo.ShowPhoto)
}
