package seed_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"ontrack/internal/adapter/seed"
	"ontrack/internal/app/service"
	"ontrack/internal/core/domain"

	"github.com/stretchr/testify/require"
)

func TestDefault_AppliesDemoData(t *testing.T) {
	ds, err := seed.Default()
	require.NoError(t, err)

	svc := service.NewOnTrackService()
	require.NoError(t, ds.Apply(svc))

	units := svc.ListUnits()
	require.Len(t, units, 2)
	require.Equal(t, "SIT707", units[0].ID)
	require.Equal(t, "SIT737", units[1].ID)

	task, ok := svc.TaskByID("T1")
	require.True(t, ok)
	require.Equal(t, domain.StatusReadyForFeedback, task.Status)
	task, _ = svc.TaskByID("T2")
	require.Equal(t, domain.StatusWorkingOnIt, task.Status)
	task, _ = svc.TaskByID("T3")
	require.Equal(t, domain.StatusNotStarted, task.Status)
	task, _ = svc.TaskByID("T5")
	require.Equal(t, domain.StatusNeedHelp, task.Status)

	messages, err := svc.ChatMessagesForTask("T1")
	require.NoError(t, err)
	require.Len(t, messages, 4)
	for i, id := range []string{"M1", "M2", "M3", "M4"} {
		require.Equal(t, id, messages[i].ID)
	}
	require.True(t, time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC).Equal(messages[0].Timestamp))

	grade, ok, err := svc.UnitTargetGrade("SIT707")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "HD", grade)

	submitted, err := svc.SubmitUnitPortfolio("SIT707")
	require.NoError(t, err)
	require.False(t, submitted)
}

func TestParse_RejectsUnknownKeys(t *testing.T) {
	_, err := seed.Parse([]byte(`
[[units]]
id = "U1"
nmae = "typo"
`))
	require.Error(t, err)
}

func TestApply_DanglingTaskReference(t *testing.T) {
	ds, err := seed.Parse([]byte(`
[[units]]
id = "U1"
name = "Unit"

[[tasks]]
id = "T1"
unit = "U2"
name = "Task"
`))
	require.NoError(t, err)

	err = ds.Apply(service.NewOnTrackService())
	require.ErrorIs(t, err, domain.ErrReferentialIntegrity)
	require.Contains(t, err.Error(), `"T1"`)
}

func TestApply_InvalidStatus(t *testing.T) {
	ds, err := seed.Parse([]byte(`
[[units]]
id = "U1"
name = "Unit"

[[tasks]]
id = "T1"
unit = "U1"
name = "Task"
status = "DONE"
`))
	require.NoError(t, err)

	require.ErrorIs(t, ds.Apply(service.NewOnTrackService()), domain.ErrInvalidArgument)
}

// lossyService drops every status and grade update.
type lossyService struct {
	*service.OnTrackService
}

func (lossyService) SetTaskStatus(string, domain.Status) (bool, error) { return false, nil }

func (lossyService) SetUnitTargetGrade(string, string) (bool, error) { return false, nil }

func TestApply_UnappliedStatusOrGradeFails(t *testing.T) {
	ds, err := seed.Parse([]byte(`
[[units]]
id = "U1"
name = "Unit"
target_grade = "HD"

[[tasks]]
id = "T1"
unit = "U1"
name = "Task"
status = "NEED_HELP"
`))
	require.NoError(t, err)

	err = ds.Apply(lossyService{service.NewOnTrackService()})
	require.ErrorIs(t, err, domain.ErrReferentialIntegrity)
	require.Contains(t, err.Error(), `seed task "T1"`)

	ds.Tasks[0].Status = ""
	err = ds.Apply(lossyService{service.NewOnTrackService()})
	require.ErrorIs(t, err, domain.ErrReferentialIntegrity)
	require.Contains(t, err.Error(), `seed unit "U1"`)
}

func TestApply_MessageWithoutTimestamp(t *testing.T) {
	ds, err := seed.Parse([]byte(`
[[units]]
id = "U1"
name = "Unit"

[[tasks]]
id = "T1"
unit = "U1"
name = "Task"

[[messages]]
id = "M1"
task = "T1"
sender = "Tutor"
content = "Welcome"
`))
	require.NoError(t, err)

	svc := service.NewOnTrackService()
	require.NoError(t, ds.Apply(svc))

	messages, err := svc.ChatMessagesForTask("T1")
	require.NoError(t, err)
	require.Len(t, messages, 1)
	require.False(t, messages[0].Timestamp.IsZero())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[[units]]
id = "U1"
name = "Unit"
`), 0o600))

	ds, err := seed.Load(path)
	require.NoError(t, err)
	require.Len(t, ds.Units, 1)

	_, err = seed.Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}
