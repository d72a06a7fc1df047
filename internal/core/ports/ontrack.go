package ports

import (
	"ontrack/internal/core/domain"
)

// OnTrackService is the query and command surface consumed by presentation
// adapters. Lookups of missing entities are ordinary results; only blank
// arguments and dangling references at registration time are errors.
type OnTrackService interface {
	RegisterUnit(unit *domain.Unit) error
	RegisterTask(task *domain.Task) error
	RegisterChatMessage(message *domain.ChatMessage) error

	ListUnits() []domain.Unit
	UnitByID(unitID string) (domain.Unit, bool)
	TaskByID(taskID string) (domain.Task, bool)
	TasksByUnitAndTargetGrade(unitID, targetGrade string) ([]domain.Task, error)
	ChatMessagesForTask(taskID string) ([]domain.ChatMessage, error)

	SetUnitTargetGrade(unitID, grade string) (bool, error)
	UnitTargetGrade(unitID string) (string, bool, error)
	SetTaskStatus(taskID string, status domain.Status) (bool, error)
	SubmitUnitPortfolio(unitID string) (bool, error)
}
