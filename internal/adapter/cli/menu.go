package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"ontrack/internal/adapter/cli/render"
	"ontrack/internal/core/domain"
)

const (
	choiceListUnits = iota + 1
	choiceTasksByGrade
	choiceChatMessages
	choiceChooseGrade
	choiceChangeStatus
	choiceSubmitPortfolio
	choiceExit
)

var menuEntries = []string{
	"menuListUnits",
	"menuTasksByGrade",
	"menuChatMessages",
	"menuChooseGrade",
	"menuChangeStatus",
	"menuSubmitPortfolio",
	"menuExit",
}

type menu struct {
	*Handler
	in *bufio.Scanner
}

// RunMenu runs the numbered interactive menu until the user exits or in is
// exhausted. Failed actions are reported and the menu continues.
func (h *Handler) RunMenu(in io.Reader) error {
	m := &menu{Handler: h, in: bufio.NewScanner(in)}
	for {
		m.printMenu()
		line, ok := m.readLine()
		if !ok {
			return m.in.Err()
		}

		var err error
		switch choice, _ := strconv.Atoi(line); choice {
		case choiceListUnits:
			err = m.ListUnits()
		case choiceTasksByGrade:
			err = m.tasksByGrade()
		case choiceChatMessages:
			err = m.chatMessages()
		case choiceChooseGrade:
			err = m.chooseGrade()
		case choiceChangeStatus:
			err = m.changeStatus()
		case choiceSubmitPortfolio:
			err = m.submitPortfolio()
		case choiceExit:
			m.say("goodbye", nil)
			return nil
		default:
			m.say("invalidChoice", nil)
		}
		if err != nil {
			m.printError(err)
		}
	}
}

func (m *menu) printMenu() {
	fmt.Fprintln(m.out)
	m.say("menuTitle", nil)
	for i, entry := range menuEntries {
		fmt.Fprintf(m.out, "%d. ", i+1)
		m.say(entry, nil)
	}
	m.prompt("promptChoice", nil)
}

func (m *menu) readLine() (string, bool) {
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

// selectUnit prints a numbered list of the units and reads a 1-based
// choice. ok is false when nothing usable was selected.
func (m *menu) selectUnit() (domain.Unit, bool) {
	units := m.svc.ListUnits()
	if len(units) == 0 {
		m.say("noUnits", nil)
		return domain.Unit{}, false
	}
	for i, unit := range units {
		fmt.Fprintf(m.out, "%d. %s: %s\n", i+1, unit.ID, unit.Name)
	}

	m.prompt("promptUnit", map[string]any{"Count": len(units)})
	index, ok := m.readIndex(len(units))
	if !ok {
		return domain.Unit{}, false
	}
	return units[index], true
}

func (m *menu) readIndex(count int) (int, bool) {
	line, ok := m.readLine()
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(line)
	if err != nil || n < 1 || n > count {
		m.say("invalidSelection", nil)
		return 0, false
	}
	return n - 1, true
}

func (m *menu) readGrade() (string, bool) {
	m.prompt("promptGrade", nil)
	return m.readLine()
}

func (m *menu) tasksByGrade() error {
	unit, ok := m.selectUnit()
	if !ok {
		return nil
	}
	grade, ok := m.readGrade()
	if !ok {
		return nil
	}
	return m.TasksByGrade(unit.ID, grade)
}

func (m *menu) chatMessages() error {
	m.prompt("promptTaskID", nil)
	taskID, ok := m.readLine()
	if !ok {
		return nil
	}
	return m.Messages(taskID)
}

func (m *menu) chooseGrade() error {
	unit, ok := m.selectUnit()
	if !ok {
		return nil
	}
	grade, ok := m.readGrade()
	if !ok {
		return nil
	}
	return m.ChooseGrade(unit.ID, grade)
}

func (m *menu) changeStatus() error {
	m.prompt("promptTaskID", nil)
	taskID, ok := m.readLine()
	if !ok {
		return nil
	}
	task, found := m.svc.TaskByID(taskID)
	if !found {
		m.say("taskNotFound", nil)
		return nil
	}
	m.say("currentStatus", map[string]any{"TaskID": task.ID, "Status": render.Status(task.Status)})

	statuses := domain.Statuses()
	for i, status := range statuses {
		fmt.Fprintf(m.out, "%d. %s\n", i+1, render.Status(status))
	}
	m.prompt("promptStatus", nil)
	index, ok := m.readIndex(len(statuses))
	if !ok {
		return nil
	}
	return m.ChangeStatus(task.ID, statuses[index])
}

func (m *menu) submitPortfolio() error {
	unit, ok := m.selectUnit()
	if !ok {
		return nil
	}
	return m.SubmitPortfolio(unit.ID)
}
