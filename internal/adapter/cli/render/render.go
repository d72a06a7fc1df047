package render

import (
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"ontrack/internal/core/domain"
	"ontrack/pkg/translator"
)

const timeLayout = "2006-01-02 15:04"

var statusColors = map[domain.Status]*color.Color{
	domain.StatusNotStarted:       color.New(color.FgWhite),
	domain.StatusWorkingOnIt:      color.New(color.FgYellow),
	domain.StatusNeedHelp:         color.New(color.FgRed, color.Bold),
	domain.StatusReadyForFeedback: color.New(color.FgGreen),
}

// Status renders a status literal, coloured when the terminal allows it.
func Status(status domain.Status) string {
	if c, ok := statusColors[status]; ok {
		return c.Sprint(status.String())
	}
	return status.String()
}

// Units writes one row per unit. grades holds the chosen target grade per
// unit id; units without one show the "not set" label.
func Units(w io.Writer, lang string, units []domain.Unit, grades map[string]string) {
	table := newTable(w, lang, "headerID", "headerName", "headerTargetGrade")
	for _, unit := range units {
		grade, ok := grades[unit.ID]
		if !ok {
			grade = translator.Localize(lang, "gradeNotChosen", nil)
		}
		table.Append([]string{unit.ID, unit.Name, grade})
	}
	table.Render()
}

func Tasks(w io.Writer, lang string, tasks []domain.Task) {
	table := newTable(w, lang, "headerID", "headerName", "headerTargetGrade", "headerStatus", "headerDescription")
	for _, task := range tasks {
		table.Append([]string{task.ID, task.Name, task.TargetGrade, Status(task.Status), task.Description})
	}
	table.Render()
}

func Messages(w io.Writer, lang string, messages []domain.ChatMessage) {
	table := newTable(w, lang, "headerTime", "headerSender", "headerContent")
	for _, message := range messages {
		table.Append([]string{
			message.Timestamp.In(time.Local).Format(timeLayout),
			message.Sender,
			message.Content,
		})
	}
	table.Render()
}

func newTable(w io.Writer, lang string, headerIDs ...string) *tablewriter.Table {
	headers := make([]string, 0, len(headerIDs))
	for _, id := range headerIDs {
		headers = append(headers, translator.Localize(lang, id, nil))
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(headers)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}
