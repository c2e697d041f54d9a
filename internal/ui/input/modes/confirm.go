package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"selectorhub/internal/ui/input/types"
)

// ConfirmMode asks before a selector is deleted from the registry
type ConfirmMode struct {
	target string
}

func NewConfirmMode() *ConfirmMode {
	return &ConfirmMode{}
}

func (m *ConfirmMode) Name() string {
	return "confirm"
}

func (m *ConfirmMode) Enter(ctx types.Context) []types.Action {
	m.target = ctx.CurrentChip()
	return nil
}

func (m *ConfirmMode) Exit(ctx types.Context) []types.Action {
	m.target = ""
	return nil
}

func (m *ConfirmMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "y", "Y":
		return []types.Action{
			types.DeleteSelectorAction{Selector: m.target},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case "n", "N", "esc", "q":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	}
	return nil, true
}
