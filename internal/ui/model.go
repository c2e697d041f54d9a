package ui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"selectorhub/internal/config"
	"selectorhub/internal/domain"
	"selectorhub/internal/editor"
	"selectorhub/internal/eventbus"
	"selectorhub/internal/manager"
	"selectorhub/internal/schedule"
	"selectorhub/internal/ui/input"
	inputtypes "selectorhub/internal/ui/input/types"
	"selectorhub/internal/ui/views"
)

// E2EEnv marks runs driven by the end-to-end suite
const E2EEnv = "SELECTORHUB_E2E_TEST"

// Options carries the collaborators of the playground
type Options struct {
	Editor    *editor.Editor
	Manager   *manager.Manager
	Loop      *schedule.Loop
	Documents config.DocumentService
	DocPath   string
	Config    *config.Config
	Logger    *zap.Logger
}

// Model is the selector playground: a component list on top, the selectors
// shared by the selection below.
type Model struct {
	ed        *editor.Editor
	mgr       *manager.Manager
	loop      *schedule.Loop
	docs      config.DocumentService
	docPath   string
	log       *zap.Logger
	e2e       bool
	dirty     bool
	retarget  bool
	inPager   bool
	subscribe []func()

	width  int
	height int
	help   help.Model
	keys   keyMap

	cursor        int
	chip          int
	showHelp      bool
	showPrivate   bool
	statusMessage string
	statusIsError bool
	payload       *manager.CustomPayload
	targets       []string

	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	inputHandler *input.Handler

	// Program reference for terminal management
	program *tea.Program
}

var (
	_ inputtypes.Context = (*Model)(nil)
	_ manager.Renderer   = (*Model)(nil)
)

// NewModel creates a new UI model and attaches it to the manager
func NewModel(opts Options) *Model {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	keys := newKeyMap()
	m := &Model{
		ed:           opts.Editor,
		mgr:          opts.Manager,
		loop:         opts.Loop,
		docs:         opts.Documents,
		docPath:      opts.DocPath,
		log:          log,
		e2e:          os.Getenv(E2EEnv) == "1",
		help:         help.New(),
		keys:         keys,
		renderer:     views.NewRenderer(),
		helpRenderer: NewHelpRenderer(keys),
		inputHandler: input.New(),
	}
	if opts.Config != nil {
		m.showPrivate = opts.Config.UI.ShowPrivate
	}

	m.subscribe = append(m.subscribe,
		m.mgr.On(domain.EventSelectorCustom, func(e eventbus.DomainEvent) {
			ev, ok := e.(domain.CustomEvent)
			if !ok {
				return
			}
			if p, ok := ev.Payload.(manager.CustomPayload); ok {
				m.payload = &p
				m.clampChip()
			}
		}),
		m.mgr.On(domain.EventSelector, func(e eventbus.DomainEvent) {
			ev, ok := e.(domain.TaggedEvent)
			if !ok {
				return
			}
			switch ev.Tag {
			case domain.EventSelectorAdd, domain.EventSelectorRemove, domain.EventSelectorUpdate:
				m.dirty = true
			}
		}),
		m.ed.On(domain.EventComponentClasses, func(eventbus.DomainEvent) {
			m.dirty = true
		}),
	)
	m.mgr.AttachRenderer(m)
	m.retarget = true
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	m.syncTargets()
	m.loop.Tick()
	return nil
}

// Update handles messages and then runs the work deferred while handling
// them, so selector:custom lands before the next View.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := m.update(msg)
	if m.retarget {
		m.syncTargets()
	}
	m.loop.Tick()
	return model, cmd
}

func (m *Model) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			switch msg.String() {
			case "esc", "?", "q":
				m.showHelp = false
				return m, nil
			}
		}

		actions, cmd := m.inputHandler.HandleKey(msg, m)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	default:
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			return m, cmd
		}
		return m.handleNonKeyboardMsg(msg)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 && !m.e2e {
		return "Loading..."
	}
	if m.inPager {
		return ""
	}
	return m.renderer.Render(m.buildViewState())
}

func (m *Model) buildViewState() views.ViewState {
	state := views.ViewState{
		Width:          m.width,
		Height:         m.height,
		Cursor:         m.cursor,
		ChipCursor:     m.chip,
		SelectedCount:  m.ed.Selection().Count(),
		State:          m.mgr.State(),
		ComponentFirst: m.mgr.ComponentFirst(),
		Targets:        m.targets,
		StatusMessage:  m.statusMessage,
		StatusIsError:  m.statusIsError,
		InputPrompt:    m.inputHandler.Prompt(),
		ShowHelp:       m.showHelp,
		Ready:          m.e2e,
	}

	for _, c := range m.ed.Components() {
		row := views.ComponentRow{
			Name:     c.Name,
			Tag:      c.Tag,
			Selected: m.ed.Selection().IsSelected(c.ID),
		}
		for _, sel := range c.Selectors().Items() {
			switch {
			case !sel.Private:
				row.Classes = append(row.Classes, sel.FullName())
			case m.showPrivate:
				row.Private = append(row.Private, sel.FullName())
			}
		}
		state.Components = append(state.Components, row)
	}

	for _, sel := range m.common() {
		state.Chips = append(state.Chips, views.Chip{
			FullName:  sel.FullName(),
			Label:     sel.Label,
			Active:    sel.Active,
			Protected: sel.Protected,
		})
	}

	if ti := m.inputHandler.TextInput(); ti != nil {
		state.TextInput = ti.View()
	}
	if m.inputHandler.CurrentMode() == inputtypes.ModeDeleteConfirm {
		state.DeleteTarget = m.CurrentChip()
	}
	if m.showHelp {
		state.HelpContent = m.helpRenderer.RenderHelpContent()
	} else {
		state.ShortHelp = m.help.View(m.keys)
	}
	return state
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	m.log.Debug("processAction", zap.String("action", action.Type()))
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		last := len(m.ed.Components()) - 1
		switch a.Direction {
		case "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down":
			if m.cursor < last {
				m.cursor++
			}
		case "home":
			m.cursor = 0
		case "end":
			m.cursor = max(last, 0)
		}

	case inputtypes.ToggleSelectAction:
		if c := m.currentComponent(); c != nil {
			m.ed.Selection().Toggle(c.ID)
			m.retarget = true
		}

	case inputtypes.SelectAllAction:
		var ids []string
		for _, c := range m.ed.Components() {
			ids = append(ids, c.ID)
		}
		m.ed.Selection().Select(ids...)
		m.retarget = true

	case inputtypes.DeselectAllAction:
		m.ed.Selection().Clear()
		m.retarget = true

	case inputtypes.MoveChipAction:
		m.chip += a.Delta
		m.clampChip()

	case inputtypes.RemoveChipAction:
		sel := m.currentSelector()
		if sel == nil {
			return nil
		}
		report := m.removeSelected(sel)
		if report.Protected {
			return m.setStatus(fmt.Sprintf("%s is protected", sel.FullName()), true)
		}
		m.retarget = true
		return m.setStatus(fmt.Sprintf("Removed %s from %d component(s)", sel.FullName(), report.Affected), false)

	case inputtypes.ToggleActiveAction:
		if sel := m.currentSelector(); sel != nil {
			active := !sel.Active
			m.mgr.Registry().Update(sel, domain.Patch{Active: &active})
			m.retarget = true
		}

	case inputtypes.ToggleProtectedAction:
		if sel := m.currentSelector(); sel != nil {
			protected := !sel.Protected
			m.mgr.Registry().Update(sel, domain.Patch{Protected: &protected})
		}

	case inputtypes.DeleteSelectorAction:
		return m.deleteSelector(a.Selector)

	case inputtypes.CycleStateAction:
		m.mgr.SetState(m.nextState())
		m.retarget = true

	case inputtypes.ToggleComponentFirstAction:
		m.mgr.SetComponentFirst(!m.mgr.ComponentFirst())
		m.retarget = true

	case inputtypes.TogglePrivateAction:
		m.showPrivate = !m.showPrivate

	case inputtypes.SubmitTextAction:
		switch a.Mode {
		case inputtypes.ModeAddClass:
			return m.addSelectors(a.Text)
		case inputtypes.ModeEditLabel:
			if sel := m.currentSelector(); sel != nil {
				label := strings.TrimSpace(a.Text)
				m.mgr.Registry().Update(sel, domain.Patch{Label: &label})
			}
		}

	case inputtypes.CancelTextAction:
		m.statusMessage = ""

	case inputtypes.SaveAction:
		return m.save()

	case inputtypes.ToggleHelpAction:
		if m.program != nil {
			return m.fetchHelpPager(m.helpRenderer.RenderHelpContent())
		}
		m.showHelp = !m.showHelp

	case inputtypes.QuitAction:
		if m.dirty && !a.Force {
			m.dirty = false
			return m.setStatus("Unsaved changes: press w to save or q again to quit", true)
		}
		return tea.Quit
	}
	return nil
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case helpPagerMsg:
		if msg.err != nil {
			m.log.Warn("Help pager failed, falling back to popup", zap.Error(msg.err))
			m.showHelp = true
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPager = true
		return m, nil

	case resumeRenderingMsg:
		m.inPager = false
		return m, nil

	case clearStatusMsg:
		m.statusMessage = ""
		m.statusIsError = false
		return m, nil
	}
	return m, nil
}

// TargetsChanged implements manager.Renderer
func (m *Model) TargetsChanged(targets []manager.ResolvedTarget) {
	m.targets = m.targets[:0]
	for _, t := range targets {
		m.targets = append(m.targets, t.String())
	}
}

// Dispose implements manager.Renderer
func (m *Model) Dispose() {
	for _, off := range m.subscribe {
		off()
	}
	m.subscribe = nil
	m.targets = nil
	m.payload = nil
}

// CurrentIndex implements inputtypes.Context
func (m *Model) CurrentIndex() int {
	return m.cursor
}

// TotalItems implements inputtypes.Context
func (m *Model) TotalItems() int {
	return len(m.ed.Components())
}

// HasSelection implements inputtypes.Context
func (m *Model) HasSelection() bool {
	return m.ed.Selection().Count() > 0
}

// SelectedCount implements inputtypes.Context
func (m *Model) SelectedCount() int {
	return m.ed.Selection().Count()
}

// CurrentChip implements inputtypes.Context
func (m *Model) CurrentChip() string {
	if sel := m.currentSelector(); sel != nil {
		return sel.FullName()
	}
	return ""
}

// CurrentChipLabel implements inputtypes.Context
func (m *Model) CurrentChipLabel() string {
	if sel := m.currentSelector(); sel != nil {
		return sel.Label
	}
	return ""
}

// ChipCount implements inputtypes.Context
func (m *Model) ChipCount() int {
	return len(m.common())
}

// common prefers the last selector:custom payload and falls back to a direct
// computation before the first one arrives
func (m *Model) common() []*domain.Selector {
	if m.payload != nil {
		return m.payload.Common
	}
	return m.mgr.Common()
}

func (m *Model) currentSelector() *domain.Selector {
	common := m.common()
	if m.chip < 0 || m.chip >= len(common) {
		return nil
	}
	return common[m.chip]
}

func (m *Model) currentComponent() *editor.Component {
	components := m.ed.Components()
	if m.cursor < 0 || m.cursor >= len(components) {
		return nil
	}
	return components[m.cursor]
}

func (m *Model) clampChip() {
	n := len(m.common())
	if m.chip >= n {
		m.chip = n - 1
	}
	if m.chip < 0 {
		m.chip = 0
	}
}

func (m *Model) syncTargets() {
	m.retarget = false
	m.mgr.Select(m.ed.StyleTargets(m.mgr.ComponentFirst()), manager.SelectOptions{State: m.ed.State()})
}

// nextState walks "" -> each configured state -> ""
func (m *Model) nextState() string {
	states := m.mgr.States()
	current := m.mgr.State()
	if current == "" {
		if len(states) == 0 {
			return ""
		}
		return states[0].Name
	}
	for i, s := range states {
		if s.Name == current && i+1 < len(states) {
			return states[i+1].Name
		}
	}
	return ""
}

func (m *Model) addSelectors(text string) tea.Cmd {
	add := m.mgr.AddSelected
	if m.payload != nil && m.payload.Add != nil {
		add = m.payload.Add
	}
	var added []string
	for _, name := range strings.Fields(text) {
		if sel := add(domain.Props{Name: name}); sel != nil {
			added = append(added, sel.FullName())
		}
	}
	if len(added) == 0 {
		return nil
	}
	m.retarget = true
	return m.setStatus("Added "+strings.Join(added, " "), false)
}

func (m *Model) removeSelected(sel *domain.Selector) manager.RemoveReport {
	if m.payload != nil && m.payload.Remove != nil {
		return m.payload.Remove(sel)
	}
	return m.mgr.RemoveSelected(sel)
}

// deleteSelector strips the selector from every component and drops it from
// the registry
func (m *Model) deleteSelector(name string) tea.Cmd {
	sel := m.mgr.Get(name, 0)
	if sel == nil {
		return m.setStatus(fmt.Sprintf("Unknown selector %s", name), true)
	}
	if sel.Protected {
		return m.setStatus(fmt.Sprintf("%s is protected", sel.FullName()), true)
	}
	affected := 0
	for _, c := range m.ed.Components() {
		affected += c.Selectors().Remove(sel)
	}
	m.mgr.Remove(sel)
	m.retarget = true
	m.log.Info("Selector deleted", zap.String("selector", name), zap.Int("components", affected))
	return m.setStatus(fmt.Sprintf("Deleted %s from %d component(s)", name, affected), false)
}

func (m *Model) save() tea.Cmd {
	if m.docs == nil || m.docPath == "" {
		return m.setStatus("No document to save to", true)
	}
	if err := m.docs.Save(m.ed.Snapshot(m.mgr.Registry()), m.docPath); err != nil {
		m.log.Error("Failed to save document", zap.String("path", m.docPath), zap.Error(err))
		return m.setStatus(fmt.Sprintf("Save failed: %v", err), true)
	}
	m.dirty = false
	return m.setStatus("Saved "+m.docPath, false)
}

func (m *Model) setStatus(message string, isError bool) tea.Cmd {
	m.statusMessage = message
	m.statusIsError = isError
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})
		err := NewHelpOps(m.program).ShowHelpInPager(helpContent)
		m.program.Send(resumeRenderingMsg{})
		return helpPagerMsg{err: err}
	}
}
