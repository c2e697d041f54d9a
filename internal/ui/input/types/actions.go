package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Selection actions
type ToggleSelectAction struct{}

func (a ToggleSelectAction) Type() string { return "toggle_select" }

type SelectAllAction struct{}

func (a SelectAllAction) Type() string { return "select_all" }

type DeselectAllAction struct{}

func (a DeselectAllAction) Type() string { return "deselect_all" }

// Chip actions operate on the common selector under the chip cursor
type MoveChipAction struct {
	Delta int
}

func (a MoveChipAction) Type() string { return "move_chip" }

type RemoveChipAction struct{}

func (a RemoveChipAction) Type() string { return "remove_chip" }

type ToggleActiveAction struct{}

func (a ToggleActiveAction) Type() string { return "toggle_active" }

type ToggleProtectedAction struct{}

func (a ToggleProtectedAction) Type() string { return "toggle_protected" }

type DeleteSelectorAction struct {
	Selector string
}

func (a DeleteSelectorAction) Type() string { return "delete_selector" }

// Selection state actions
type CycleStateAction struct{}

func (a CycleStateAction) Type() string { return "cycle_state" }

type ToggleComponentFirstAction struct{}

func (a ToggleComponentFirstAction) Type() string { return "toggle_component_first" }

type TogglePrivateAction struct{}

func (a TogglePrivateAction) Type() string { return "toggle_private" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data string // initial text for text modes
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Other actions
type SaveAction struct{}

func (a SaveAction) Type() string { return "save" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool
}

func (a QuitAction) Type() string { return "quit" }
