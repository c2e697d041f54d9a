package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"selectorhub/internal/ui/input/types"
)

type NormalMode struct{}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyEsc:
		if ctx.HasSelection() {
			return []types.Action{types.DeselectAllAction{}}, true
		}
		return nil, false

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeyLeft:
		return []types.Action{types.MoveChipAction{Delta: -1}}, true

	case tea.KeyRight:
		return []types.Action{types.MoveChipAction{Delta: 1}}, true

	case tea.KeySpace:
		return []types.Action{types.ToggleSelectAction{}}, true
	}

	switch msg.String() {
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case "h":
		return []types.Action{types.MoveChipAction{Delta: -1}}, true
	case "l":
		return []types.Action{types.MoveChipAction{Delta: 1}}, true
	case "a":
		return []types.Action{types.SelectAllAction{}}, true
	case "A":
		return []types.Action{types.DeselectAllAction{}}, true

	case "+":
		if !ctx.HasSelection() {
			return nil, false
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeAddClass}}, true

	case "e":
		if ctx.CurrentChip() == "" {
			return nil, false
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeEditLabel, Data: ctx.CurrentChipLabel()}}, true

	case "x":
		if ctx.CurrentChip() == "" {
			return nil, false
		}
		return []types.Action{types.RemoveChipAction{}}, true

	case "D":
		if ctx.CurrentChip() == "" {
			return nil, false
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeDeleteConfirm, Data: ctx.CurrentChip()}}, true

	case "t":
		return []types.Action{types.ToggleActiveAction{}}, true
	case "p":
		return []types.Action{types.ToggleProtectedAction{}}, true
	case "s":
		return []types.Action{types.CycleStateAction{}}, true
	case "c":
		return []types.Action{types.ToggleComponentFirstAction{}}, true
	case "v":
		return []types.Action{types.TogglePrivateAction{}}, true
	case "w":
		return []types.Action{types.SaveAction{}}, true
	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true
	case "q":
		return []types.Action{types.QuitAction{}}, true
	}

	return nil, false
}
