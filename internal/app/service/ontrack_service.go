package service

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"ontrack/internal/core/domain"
	"ontrack/internal/core/ports"
)

// OnTrackService keeps every collection in memory behind one lock. Values
// handed to callers are copies, so nothing a caller does to them reaches the
// indexes.
type OnTrackService struct {
	mu sync.RWMutex

	units        map[string]domain.Unit
	tasks        map[string]domain.Task
	messages     map[string][]domain.ChatMessage // by task id, oldest first
	messageIDs   map[string]struct{}
	targetGrades map[string]string
}

func NewOnTrackService() *OnTrackService {
	return &OnTrackService{
		units:        make(map[string]domain.Unit),
		tasks:        make(map[string]domain.Task),
		messages:     make(map[string][]domain.ChatMessage),
		messageIDs:   make(map[string]struct{}),
		targetGrades: make(map[string]string),
	}
}

var _ ports.OnTrackService = (*OnTrackService)(nil)

// RegisterUnit inserts the unit, replacing any unit with the same ID.
func (s *OnTrackService) RegisterUnit(unit *domain.Unit) error {
	if unit == nil {
		return fmt.Errorf("%w: unit cannot be nil", domain.ErrInvalidArgument)
	}
	if err := unit.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.units[unit.ID] = *unit
	zap.L().Debug("unit registered", zap.String("unit_id", unit.ID))
	return nil
}

// RegisterTask stores a copy of task in StatusNotStarted. The owning unit
// must already be registered.
func (s *OnTrackService) RegisterTask(task *domain.Task) error {
	if task == nil {
		return fmt.Errorf("%w: task cannot be nil", domain.ErrInvalidArgument)
	}
	if err := task.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.units[task.UnitID]; !ok {
		zap.L().Warn("task rejected: unknown unit", zap.String("task_id", task.ID), zap.String("unit_id", task.UnitID))
		return fmt.Errorf("%w: task %s belongs to unknown unit %s", domain.ErrReferentialIntegrity, task.ID, task.UnitID)
	}

	stored := *task
	stored.Status = domain.StatusNotStarted
	s.tasks[stored.ID] = stored
	zap.L().Debug("task registered", zap.String("task_id", stored.ID), zap.String("unit_id", stored.UnitID))
	return nil
}

// RegisterChatMessage appends message to its task's thread. Message IDs are
// unique across all threads.
func (s *OnTrackService) RegisterChatMessage(message *domain.ChatMessage) error {
	if message == nil {
		return fmt.Errorf("%w: chat message cannot be nil", domain.ErrInvalidArgument)
	}
	if err := message.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[message.TaskID]; !ok {
		zap.L().Warn("chat message rejected: unknown task", zap.String("message_id", message.ID), zap.String("task_id", message.TaskID))
		return fmt.Errorf("%w: chat message %s refers to unknown task %s", domain.ErrReferentialIntegrity, message.ID, message.TaskID)
	}
	if _, dup := s.messageIDs[message.ID]; dup {
		return fmt.Errorf("%w: chat message %s already registered", domain.ErrInvalidArgument, message.ID)
	}

	s.messages[message.TaskID] = append(s.messages[message.TaskID], *message)
	s.messageIDs[message.ID] = struct{}{}
	zap.L().Debug("chat message registered", zap.String("message_id", message.ID), zap.String("task_id", message.TaskID))
	return nil
}

// ListUnits returns every unit ordered by ID.
func (s *OnTrackService) ListUnits() []domain.Unit {
	s.mu.RLock()
	defer s.mu.RUnlock()

	units := lo.Values(s.units)
	slices.SortFunc(units, func(a, b domain.Unit) int {
		return strings.Compare(a.ID, b.ID)
	})
	return units
}

func (s *OnTrackService) UnitByID(unitID string) (domain.Unit, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	unit, ok := s.units[unitID]
	return unit, ok
}

func (s *OnTrackService) TaskByID(taskID string) (domain.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, ok := s.tasks[taskID]
	return task, ok
}

// TasksByUnitAndTargetGrade returns the unit's tasks whose target grade
// matches targetGrade ignoring case, ordered by task ID. An unknown unit
// yields an empty result.
func (s *OnTrackService) TasksByUnitAndTargetGrade(unitID, targetGrade string) ([]domain.Task, error) {
	if err := requireArg("unit id", unitID); err != nil {
		return nil, err
	}
	if err := requireArg("target grade", targetGrade); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.units[unitID]; !ok {
		return []domain.Task{}, nil
	}

	tasks := lo.Filter(lo.Values(s.tasks), func(task domain.Task, _ int) bool {
		return task.UnitID == unitID && task.HasTargetGrade(targetGrade)
	})
	sortTasks(tasks)
	return tasks, nil
}

// ChatMessagesForTask returns the task's thread, oldest first. Unknown tasks
// and tasks without messages yield an empty result.
func (s *OnTrackService) ChatMessagesForTask(taskID string) ([]domain.ChatMessage, error) {
	if err := requireArg("task id", taskID); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	thread := s.messages[taskID]
	out := make([]domain.ChatMessage, len(thread))
	copy(out, thread)
	return out, nil
}

// SetUnitTargetGrade records grade as typed. It reports false when the unit
// is not registered.
func (s *OnTrackService) SetUnitTargetGrade(unitID, grade string) (bool, error) {
	if err := requireArg("unit id", unitID); err != nil {
		return false, err
	}
	if err := requireArg("target grade", grade); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.units[unitID]; !ok {
		return false, nil
	}
	s.targetGrades[unitID] = grade
	zap.L().Debug("unit target grade set", zap.String("unit_id", unitID), zap.String("grade", grade))
	return true, nil
}

// UnitTargetGrade reports the grade chosen for the unit. The second result
// is false both for unknown units and for units without a grade.
func (s *OnTrackService) UnitTargetGrade(unitID string) (string, bool, error) {
	if err := requireArg("unit id", unitID); err != nil {
		return "", false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	grade, ok := s.targetGrades[unitID]
	return grade, ok, nil
}

// SetTaskStatus moves the task to status. No transition is forbidden.
func (s *OnTrackService) SetTaskStatus(taskID string, status domain.Status) (bool, error) {
	if err := requireArg("task id", taskID); err != nil {
		return false, err
	}
	if !status.Valid() {
		return false, fmt.Errorf("%w: invalid status %q", domain.ErrInvalidArgument, status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[taskID]
	if !ok {
		return false, nil
	}
	previous := task.Status
	task.Status = status
	s.tasks[taskID] = task
	zap.L().Debug("task status changed",
		zap.String("task_id", taskID),
		zap.Stringer("from", previous),
		zap.Stringer("to", status),
	)
	return true, nil
}

// SubmitUnitPortfolio reports whether the unit has at least one task and
// every one of them is ready for feedback. Nothing is changed.
func (s *OnTrackService) SubmitUnitPortfolio(unitID string) (bool, error) {
	if err := requireArg("unit id", unitID); err != nil {
		return false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.units[unitID]; !ok {
		return false, nil
	}

	owned := lo.Filter(lo.Values(s.tasks), func(task domain.Task, _ int) bool {
		return task.UnitID == unitID
	})
	if len(owned) == 0 {
		return false, nil
	}

	ready := lo.EveryBy(owned, func(task domain.Task) bool {
		return task.Status == domain.StatusReadyForFeedback
	})
	zap.L().Debug("portfolio checked", zap.String("unit_id", unitID), zap.Int("tasks", len(owned)), zap.Bool("ready", ready))
	return ready, nil
}

func requireArg(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s cannot be empty", domain.ErrInvalidArgument, name)
	}
	return nil
}

func sortTasks(tasks []domain.Task) {
	slices.SortFunc(tasks, func(a, b domain.Task) int {
		return strings.Compare(a.ID, b.ID)
	})
}
