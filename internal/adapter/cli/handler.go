package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"ontrack/internal/adapter/cli/render"
	"ontrack/internal/core/domain"
	"ontrack/internal/core/ports"
	"ontrack/pkg/apierrors"
	"ontrack/pkg/translator"
)

// Handler turns user commands into OnTrackService calls and prints the
// results. Domain errors come back as translated apierrors.JsonErr values.
type Handler struct {
	svc  ports.OnTrackService
	out  io.Writer
	lang string
}

func NewHandler(svc ports.OnTrackService, out io.Writer, lang string) *Handler {
	h := &Handler{svc: svc, out: out, lang: translator.LanguageEn}
	h.SetLanguage(lang)
	return h
}

// SetLanguage switches the output language. An empty lang keeps the current
// one and an unsupported lang falls back to English.
func (h *Handler) SetLanguage(lang string) {
	if lang == "" {
		return
	}
	if !translator.IsSupported(lang) {
		zap.L().Warn("unsupported language, using English", zap.String("lang", lang))
		lang = translator.LanguageEn
	}
	h.lang = lang
}

func (h *Handler) ListUnits() error {
	units := h.svc.ListUnits()
	if len(units) == 0 {
		h.say("noUnits", nil)
		return nil
	}

	grades := make(map[string]string, len(units))
	for _, unit := range units {
		grade, ok, err := h.svc.UnitTargetGrade(unit.ID)
		if err != nil {
			return h.fail(err)
		}
		if ok {
			grades[unit.ID] = grade
		}
	}
	render.Units(h.out, h.lang, units, grades)
	return nil
}

func (h *Handler) TasksByGrade(unitID, grade string) error {
	tasks, err := h.svc.TasksByUnitAndTargetGrade(unitID, grade)
	if err != nil {
		return h.fail(err)
	}
	if len(tasks) == 0 {
		h.say("noTasks", map[string]any{"UnitID": unitID, "Grade": grade})
		return nil
	}
	render.Tasks(h.out, h.lang, tasks)
	return nil
}

func (h *Handler) Messages(taskID string) error {
	messages, err := h.svc.ChatMessagesForTask(taskID)
	if err != nil {
		return h.fail(err)
	}
	if len(messages) == 0 {
		h.say("noMessages", map[string]any{"TaskID": taskID})
		return nil
	}
	render.Messages(h.out, h.lang, messages)
	return nil
}

// PostMessage appends a message with a generated id and prints the thread.
func (h *Handler) PostMessage(taskID, sender, content string) error {
	message, err := domain.NewChatMessage(uuid.NewString(), taskID, sender, content)
	if err != nil {
		return h.fail(err)
	}
	if err := h.svc.RegisterChatMessage(message); err != nil {
		return h.fail(err)
	}
	h.say("messagePosted", map[string]any{"MessageID": message.ID, "TaskID": taskID})
	return h.Messages(taskID)
}

func (h *Handler) ChooseGrade(unitID, grade string) error {
	set, err := h.svc.SetUnitTargetGrade(unitID, grade)
	if err != nil {
		return h.fail(err)
	}
	data := map[string]any{"UnitID": unitID, "Grade": grade}
	if !set {
		h.say("gradeNotSet", data)
		return nil
	}
	h.say("gradeSet", data)
	return nil
}

func (h *Handler) ChangeStatus(taskID string, status domain.Status) error {
	changed, err := h.svc.SetTaskStatus(taskID, status)
	if err != nil {
		return h.fail(err)
	}
	data := map[string]any{"TaskID": taskID, "Status": render.Status(status)}
	if !changed {
		h.say("statusNotChanged", data)
		return nil
	}
	h.say("statusChanged", data)
	return nil
}

func (h *Handler) SubmitPortfolio(unitID string) error {
	submitted, err := h.svc.SubmitUnitPortfolio(unitID)
	if err != nil {
		return h.fail(err)
	}
	if submitted {
		h.say("portfolioSubmitted", map[string]any{"UnitID": unitID})
		return nil
	}
	if _, ok := h.svc.UnitByID(unitID); !ok {
		h.say("unitNotFound", nil)
		return nil
	}
	h.say("portfolioNotReady", map[string]any{"UnitID": unitID})
	return nil
}

func (h *Handler) say(messageID string, data map[string]any) {
	fmt.Fprintln(h.out, translator.Localize(h.lang, messageID, data))
}

func (h *Handler) prompt(messageID string, data map[string]any) {
	fmt.Fprint(h.out, translator.Localize(h.lang, messageID, data))
}

func (h *Handler) printError(err error) {
	fmt.Fprintln(h.out, color.RedString(err.Error()))
}

func (h *Handler) fail(err error) error {
	zap.L().Debug("command rejected", zap.Error(err))
	return apierrors.FromDomainError(err, h.lang)
}
