package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ComponentRow is one line of the component list
type ComponentRow struct {
	Name     string
	Tag      string
	Classes  []string
	Private  []string
	Selected bool
}

// Chip is one common selector
type Chip struct {
	FullName  string
	Label     string // explicit label, empty when unset
	Active    bool
	Protected bool
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width          int
	Height         int
	Components     []ComponentRow
	Cursor         int
	Chips          []Chip
	ChipCursor     int
	SelectedCount  int
	State          string
	ComponentFirst bool
	Targets        []string
	StatusMessage  string
	StatusIsError  bool
	InputPrompt    string
	TextInput      string
	DeleteTarget   string
	ShowHelp       bool
	HelpContent    string
	ShortHelp      string
	Ready          bool
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Styles exposes the styles for other renderers
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitle(state))
	content.WriteString("\n")

	if state.DeleteTarget != "" {
		content.WriteString(r.styles.Confirm.Render(fmt.Sprintf("Delete selector '%s' everywhere? (y/n): ", state.DeleteTarget)))
		content.WriteString("\n\n")
	} else if state.InputPrompt != "" {
		content.WriteString(state.InputPrompt)
		content.WriteString(state.TextInput)
		content.WriteString("\n\n")
	}

	content.WriteString(r.styles.Section.Render("Components"))
	content.WriteString("\n")
	if len(state.Components) == 0 {
		content.WriteString(r.styles.Dim.Render("No components. Load a document with --doc."))
		content.WriteString("\n")
	}
	for i, row := range state.Components {
		content.WriteString(r.renderComponent(row, i == state.Cursor))
		content.WriteString("\n")
	}
	content.WriteString("\n")

	content.WriteString(r.styles.Section.Render(fmt.Sprintf("Common selectors (%d selected)", state.SelectedCount)))
	content.WriteString("\n")
	content.WriteString(r.renderChips(state))
	content.WriteString("\n")

	if len(state.Targets) > 0 {
		content.WriteString(r.styles.Dim.Render("Targets: " + strings.Join(state.Targets, "  ")))
		content.WriteString("\n")
	}

	if state.StatusMessage != "" {
		style := r.styles.StatusSuccess
		if state.StatusIsError {
			style = r.styles.StatusError
		}
		content.WriteString(r.styles.Status.Render(style.Render(state.StatusMessage)))
		content.WriteString("\n")
	}

	if state.ShowHelp {
		content.WriteString("\n")
		content.WriteString(r.styles.HelpBox.Render(state.HelpContent))
		content.WriteString("\n")
	} else if state.ShortHelp != "" {
		content.WriteString("\n")
		content.WriteString(state.ShortHelp)
	}

	if state.Ready {
		content.WriteString("\n__READY__")
	}

	return r.styles.Main.Render(content.String())
}

func (r *Renderer) renderTitle(state ViewState) string {
	logo := r.styles.Title.Render("selectorhub")

	mode := "rules first"
	if state.ComponentFirst {
		mode = "components first"
	}
	stateName := state.State
	if stateName == "" {
		stateName = "-"
	}
	right := r.styles.Dim.Render(fmt.Sprintf("state: %s | %s", r.styles.State.Render(stateName), mode))

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	padding := termWidth - 4 - lipgloss.Width(logo) - lipgloss.Width(right)
	if padding < 2 {
		padding = 2
	}
	return logo + strings.Repeat(" ", padding) + right
}

func (r *Renderer) renderComponent(row ComponentRow, isCursor bool) string {
	marker := "[ ]"
	if row.Selected {
		marker = "[x]"
	}
	line := fmt.Sprintf("%s %s <%s>", marker, row.Name, row.Tag)
	if len(row.Classes) > 0 {
		line += " " + strings.Join(row.Classes, "")
	}
	if len(row.Private) > 0 {
		line += " " + r.styles.Private.Render(strings.Join(row.Private, ""))
	}

	if isCursor {
		return r.styles.Highlight.Render("> ") + r.styles.SelectionBg.Render(line)
	}
	return "  " + line
}

func (r *Renderer) renderChips(state ViewState) string {
	if state.SelectedCount == 0 {
		return r.styles.Dim.Render("Select components to edit their selectors.")
	}
	if len(state.Chips) == 0 {
		return r.styles.Dim.Render("No common selectors. Press + to add one.")
	}

	parts := make([]string, 0, len(state.Chips))
	for i, chip := range state.Chips {
		text := chip.FullName
		if chip.Label != "" {
			text = fmt.Sprintf("%s (%s)", chip.Label, chip.FullName)
		}
		if chip.Protected {
			text += " *"
		}

		style := r.styles.Chip
		switch {
		case i == state.ChipCursor:
			style = r.styles.ChipCursor
		case !chip.Active:
			style = r.styles.ChipInactive
		case chip.Protected:
			style = r.styles.ChipProtected
		}
		parts = append(parts, style.Render(text))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
