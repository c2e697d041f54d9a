package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"selectorhub/internal/ui/input/types"
)

// AddClassMode reads a selector identifier to add to the selection
type AddClassMode struct {
	TextInputMode
}

func NewAddClassMode(ti *textinput.Model) *AddClassMode {
	return &AddClassMode{
		TextInputMode: NewTextInputMode(types.ModeAddClass, "add", "Add selector (.class or #id): ", ti),
	}
}

// EditLabelMode reads a new label for the chip under the cursor
type EditLabelMode struct {
	TextInputMode
}

func NewEditLabelMode(ti *textinput.Model) *EditLabelMode {
	return &EditLabelMode{
		TextInputMode: NewTextInputMode(types.ModeEditLabel, "label", "Label: ", ti),
	}
}
