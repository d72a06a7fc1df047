package cli_test

import (
	"ontrack/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

type onTrackServiceMock struct {
	mock.Mock
}

func (m *onTrackServiceMock) RegisterUnit(unit *domain.Unit) error {
	return m.Called(unit).Error(0)
}

func (m *onTrackServiceMock) RegisterTask(task *domain.Task) error {
	return m.Called(task).Error(0)
}

func (m *onTrackServiceMock) RegisterChatMessage(message *domain.ChatMessage) error {
	return m.Called(message).Error(0)
}

func (m *onTrackServiceMock) ListUnits() []domain.Unit {
	args := m.Called()

	var units []domain.Unit
	if value := args.Get(0); value != nil {
		units = value.([]domain.Unit)
	}
	return units
}

func (m *onTrackServiceMock) UnitByID(unitID string) (domain.Unit, bool) {
	args := m.Called(unitID)
	return args.Get(0).(domain.Unit), args.Bool(1)
}

func (m *onTrackServiceMock) TaskByID(taskID string) (domain.Task, bool) {
	args := m.Called(taskID)
	return args.Get(0).(domain.Task), args.Bool(1)
}

func (m *onTrackServiceMock) TasksByUnitAndTargetGrade(unitID, targetGrade string) ([]domain.Task, error) {
	args := m.Called(unitID, targetGrade)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *onTrackServiceMock) ChatMessagesForTask(taskID string) ([]domain.ChatMessage, error) {
	args := m.Called(taskID)

	var messages []domain.ChatMessage
	if value := args.Get(0); value != nil {
		messages = value.([]domain.ChatMessage)
	}
	return messages, args.Error(1)
}

func (m *onTrackServiceMock) SetUnitTargetGrade(unitID, grade string) (bool, error) {
	args := m.Called(unitID, grade)
	return args.Bool(0), args.Error(1)
}

func (m *onTrackServiceMock) UnitTargetGrade(unitID string) (string, bool, error) {
	args := m.Called(unitID)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *onTrackServiceMock) SetTaskStatus(taskID string, status domain.Status) (bool, error) {
	args := m.Called(taskID, status)
	return args.Bool(0), args.Error(1)
}

func (m *onTrackServiceMock) SubmitUnitPortfolio(unitID string) (bool, error) {
	args := m.Called(unitID)
	return args.Bool(0), args.Error(1)
}
