package seed

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"

	"ontrack/internal/core/domain"
	"ontrack/internal/core/ports"
)

//go:embed demo.toml
var demo []byte

type Dataset struct {
	Units    []UnitEntry    `toml:"units"`
	Tasks    []TaskEntry    `toml:"tasks"`
	Messages []MessageEntry `toml:"messages"`
}

type UnitEntry struct {
	ID          string `toml:"id"`
	Name        string `toml:"name"`
	TargetGrade string `toml:"target_grade"`
}

type TaskEntry struct {
	ID          string `toml:"id"`
	Unit        string `toml:"unit"`
	Name        string `toml:"name"`
	Description string `toml:"description"`
	TargetGrade string `toml:"target_grade"`
	Status      string `toml:"status"`
}

type MessageEntry struct {
	ID      string `toml:"id"`
	Task    string `toml:"task"`
	Sender  string `toml:"sender"`
	Content string `toml:"content"`
	// Timestamp defaults to the load time when omitted.
	Timestamp *time.Time `toml:"timestamp"`
}

// Default returns the dataset compiled into the binary.
func Default() (*Dataset, error) {
	return Parse(demo)
}

func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a TOML dataset. Unknown keys are rejected so typos do not
// silently drop data.
func Parse(data []byte) (*Dataset, error) {
	var ds Dataset
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&ds); err != nil {
		return nil, fmt.Errorf("decode seed data: %w", err)
	}
	return &ds, nil
}

// Apply registers the dataset through svc: units, tasks and messages first,
// then task statuses and unit target grades. It stops at the first failure.
func (d *Dataset) Apply(svc ports.OnTrackService) error {
	for _, entry := range d.Units {
		unit, err := domain.NewUnit(entry.ID, entry.Name)
		if err != nil {
			return fmt.Errorf("seed unit %q: %w", entry.ID, err)
		}
		if err := svc.RegisterUnit(unit); err != nil {
			return fmt.Errorf("seed unit %q: %w", entry.ID, err)
		}
	}

	for _, entry := range d.Tasks {
		task, err := domain.NewTask(entry.ID, entry.Name, entry.Description, entry.Unit, entry.TargetGrade)
		if err != nil {
			return fmt.Errorf("seed task %q: %w", entry.ID, err)
		}
		if err := svc.RegisterTask(task); err != nil {
			return fmt.Errorf("seed task %q: %w", entry.ID, err)
		}
	}

	for _, entry := range d.Messages {
		message, err := entry.toDomain()
		if err != nil {
			return fmt.Errorf("seed message %q: %w", entry.ID, err)
		}
		if err := svc.RegisterChatMessage(message); err != nil {
			return fmt.Errorf("seed message %q: %w", entry.ID, err)
		}
	}

	for _, entry := range d.Tasks {
		if entry.Status == "" {
			continue
		}
		status, err := domain.ParseStatus(entry.Status)
		if err != nil {
			return fmt.Errorf("seed task %q: %w", entry.ID, err)
		}
		changed, err := svc.SetTaskStatus(entry.ID, status)
		if err != nil {
			return fmt.Errorf("seed task %q: %w", entry.ID, err)
		}
		if !changed {
			return fmt.Errorf("seed task %q: %w: status not applied", entry.ID, domain.ErrReferentialIntegrity)
		}
	}

	for _, entry := range d.Units {
		if entry.TargetGrade == "" {
			continue
		}
		set, err := svc.SetUnitTargetGrade(entry.ID, entry.TargetGrade)
		if err != nil {
			return fmt.Errorf("seed unit %q: %w", entry.ID, err)
		}
		if !set {
			return fmt.Errorf("seed unit %q: %w: target grade not applied", entry.ID, domain.ErrReferentialIntegrity)
		}
	}

	zap.L().Info("seed data applied",
		zap.Int("units", len(d.Units)),
		zap.Int("tasks", len(d.Tasks)),
		zap.Int("messages", len(d.Messages)),
	)
	return nil
}

func (e MessageEntry) toDomain() (*domain.ChatMessage, error) {
	if e.Timestamp == nil {
		return domain.NewChatMessage(e.ID, e.Task, e.Sender, e.Content)
	}
	return domain.NewChatMessageAt(e.ID, e.Task, e.Sender, e.Content, *e.Timestamp)
}
