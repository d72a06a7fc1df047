package cli_test

import (
	"bytes"
	"strings"
	"testing"

	"ontrack/internal/adapter/cli"
	"ontrack/internal/core/domain"
	"ontrack/pkg/apierrors"
	"ontrack/pkg/translator"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, h *cli.Handler, args ...string) error {
	t.Helper()
	root := cli.NewRootCmd(h, strings.NewReader("7\n"))
	root.SetArgs(append([]string{}, args...))
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	return root.Execute()
}

func TestRootCmd_Units(t *testing.T) {
	var out bytes.Buffer
	h := cli.NewHandler(seededService(t), &out, translator.LanguageEn)

	require.NoError(t, execute(t, h, "units"))
	require.Contains(t, out.String(), "SIT707")
	require.Contains(t, out.String(), "Cloud Computing")
}

func TestRootCmd_Tasks(t *testing.T) {
	var out bytes.Buffer
	h := cli.NewHandler(seededService(t), &out, translator.LanguageEn)

	require.NoError(t, execute(t, h, "tasks", "--unit", "SIT737", "--grade", "hd"))
	require.Contains(t, out.String(), "T6")
	require.NotContains(t, out.String(), "T5")
}

func TestRootCmd_Tasks_RequiresFlags(t *testing.T) {
	var out bytes.Buffer
	h := cli.NewHandler(seededService(t), &out, translator.LanguageEn)

	require.Error(t, execute(t, h, "tasks", "--unit", "SIT737"))
}

func TestRootCmd_StatusAndSubmit(t *testing.T) {
	svc := seededService(t)
	var out bytes.Buffer
	h := cli.NewHandler(svc, &out, translator.LanguageEn)

	require.NoError(t, execute(t, h, "status", "T5", "ready_for_feedback"))
	require.NoError(t, execute(t, h, "status", "T6", "READY_FOR_FEEDBACK"))
	require.NoError(t, execute(t, h, "submit", "SIT737"))
	require.Contains(t, out.String(), "Portfolio for unit SIT737 submitted successfully.")

	task, _ := svc.TaskByID("T5")
	require.Equal(t, domain.StatusReadyForFeedback, task.Status)
}

func TestRootCmd_Status_UnknownLiteral(t *testing.T) {
	var out bytes.Buffer
	h := cli.NewHandler(seededService(t), &out, translator.LanguageEn)

	err := execute(t, h, "status", "T1", "done")
	var apiErr apierrors.JsonErr
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, apierrors.CodeInvalidArgument, apiErr.ErrDetails.Code)
}

func TestRootCmd_PostAndMessages(t *testing.T) {
	svc := seededService(t)
	var out bytes.Buffer
	h := cli.NewHandler(svc, &out, translator.LanguageEn)

	require.NoError(t, execute(t, h, "post", "T6", "--sender", "Tutor", "--content", "Start with a Dockerfile"))
	require.Contains(t, out.String(), "Start with a Dockerfile")

	messages, err := svc.ChatMessagesForTask("T6")
	require.NoError(t, err)
	require.Len(t, messages, 1)

	err = execute(t, h, "post", "T99", "--content", "hello")
	var apiErr apierrors.JsonErr
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, apierrors.CodeNotFound, apiErr.ErrDetails.Code)
}

func TestRootCmd_GradeInFrench(t *testing.T) {
	var out bytes.Buffer
	h := cli.NewHandler(seededService(t), &out, translator.LanguageEn)

	require.NoError(t, execute(t, h, "--lang", "fr", "grade", "SIT707", "P"))
	require.Contains(t, out.String(), "Note visée de l'unité SIT707 : P.")
}

func TestRootCmd_DefaultsToMenu(t *testing.T) {
	var out bytes.Buffer
	h := cli.NewHandler(seededService(t), &out, translator.LanguageEn)

	require.NoError(t, execute(t, h))
	require.Contains(t, out.String(), "Goodbye!")
}
