package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	sdui "github.com/jbriggs-source/PestGenie-sub002"
	"github.com/jbriggs-source/PestGenie-sub002/termview"
)

type (
	reloadMsg reloadEvent
	sweepMsg  time.Time
)

var (
	focusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#2b6cb0")).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#2f855a"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#718096"))
)

type keyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Enter  key.Binding
	Adjust key.Binding
	Scroll key.Binding
	Rotate key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next control"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous control"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "activate/edit"),
		),
		Adjust: key.NewBinding(
			key.WithKeys("left", "right"),
			key.WithHelp("←/→", "adjust"),
		),
		Scroll: key.NewBinding(
			key.WithKeys("up", "down", "pgup", "pgdown"),
			key.WithHelp("↑/↓", "scroll"),
		),
		Rotate: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "rotate route"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Enter, k.Adjust, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Enter, k.Adjust},
		{k.Scroll, k.Rotate, k.Help, k.Quit},
	}
}

var _ help.KeyMap = keyMap{}

// demoModel is the interactive preview session: the rendered screen in a
// scrollable viewport, a focus ring over its controls, and a one-line
// editor for text inputs. Rendering is re-done whole on every mutation;
// the engine's cache keeps that cheap.
type demoModel struct {
	engine *sdui.Engine
	term   *termview.Platform
	screen *sdui.Screen
	ctx    sdui.Context
	log    *zap.Logger

	reloads <-chan reloadEvent
	sweep   time.Duration

	body     string
	controls []termview.Control
	focus    int

	vp      viewport.Model
	editing bool
	input   textinput.Model
	keys    keyMap
	help    help.Model

	width  int
	height int
	status string
}

func newDemoModel(engine *sdui.Engine, term *termview.Platform, screen *sdui.Screen, ctx sdui.Context, log *zap.Logger, reloads <-chan reloadEvent, sweep time.Duration) *demoModel {
	m := &demoModel{
		engine:  engine,
		term:    term,
		screen:  screen,
		ctx:     ctx,
		log:     log,
		reloads: reloads,
		sweep:   sweep,
		vp:      viewport.New(80, 24),
		keys:    defaultKeyMap(),
		help:    help.New(),
	}

	// Record mutations invalidate the mutated row's cached subtrees; the
	// re-render after each action picks the change up.
	m.ctx.Records.Subscribe(func(c sdui.RecordChange) {
		if c.Type == sdui.ChangeUpdate && c.Record != nil {
			m.engine.Cache().InvalidateRecord(c.Record.RecordID())
		}
	})

	m.ctx.Actions.
		Register("completeStop", m.completeStop).
		Register("openMap", m.openMap).
		Register("captureSignature", m.captureSignature)
	m.ctx.Actions.Reorder = func(from, to int) {
		m.ctx.Records.Move(from, to)
	}

	m.rerender()
	return m
}

func (m *demoModel) Init() tea.Cmd {
	var cmds []tea.Cmd
	if cmd := waitForReload(m.reloads); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if m.sweep > 0 {
		cmds = append(cmds, sweepTick(m.sweep))
	}
	return tea.Batch(cmds...)
}

func (m *demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.term.WithWidth(msg.Width)
		m.layout()
		m.rerender()
		return m, nil

	case reloadMsg:
		ev := reloadEvent(msg)
		switch {
		case ev.err != nil:
			m.status = "Schema error, keeping previous screen: " + ev.err.Error()
		case ev.screen != nil:
			m.screen = ev.screen
			m.status = fmt.Sprintf("Schema reloaded, version %d", ev.screen.Version)
			m.rerender()
		}
		m.layout()
		return m, waitForReload(m.reloads)

	case sweepMsg:
		if n := m.engine.Cache().ExpireOlderThan(m.sweep); n > 0 {
			m.log.Debug("cache sweep", zap.Int("expired", n))
		}
		return m, sweepTick(m.sweep)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m *demoModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		switch msg.Type {
		case tea.KeyEnter:
			// A reload can swap the control ring mid-edit; commit only when
			// the focused control still takes text.
			if m.focus < len(m.controls) && m.controls[m.focus].Text.Set != nil {
				m.controls[m.focus].Text.Set(m.input.Value())
			}
			m.editing = false
			m.layout()
			m.rerender()
			return m, nil
		case tea.KeyEsc:
			m.editing = false
			m.layout()
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil

	case key.Matches(msg, m.keys.Next):
		m.moveFocus(1)
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		m.moveFocus(-1)
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		return m.activate()

	case key.Matches(msg, m.keys.Adjust):
		if msg.String() == "left" {
			m.adjust(-1)
		} else {
			m.adjust(1)
		}
		return m, nil

	case key.Matches(msg, m.keys.Rotate):
		if n := m.ctx.Records.Len(); n > 1 {
			m.ctx.Records.Move(0, n-1)
			m.status = "Route rotated"
			m.layout()
			m.rerender()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

// activate fires the focused control. Button-like kinds and toggles handle
// themselves; text kinds open the inline editor instead.
func (m *demoModel) activate() (tea.Model, tea.Cmd) {
	if len(m.controls) == 0 {
		return m, nil
	}
	c := m.controls[m.focus]
	if c.Activate() {
		m.rerender()
		return m, nil
	}
	switch c.Kind {
	case termview.ControlTextField, termview.ControlTextArea:
		m.editing = true
		m.input = textinput.New()
		m.input.Placeholder = c.Label
		m.input.CharLimit = 400
		m.input.Width = min(m.width-4, 60)
		m.input.SetValue(c.Text.Get())
		m.input.Focus()
		m.layout()
		return m, textinput.Blink
	}
	return m, nil
}

func (m *demoModel) adjust(steps int) {
	if len(m.controls) == 0 {
		return
	}
	if m.controls[m.focus].Adjust(steps) {
		m.rerender()
	}
}

func (m *demoModel) moveFocus(d int) {
	n := len(m.controls)
	if n == 0 {
		return
	}
	m.focus = (m.focus + d + n) % n
}

// rerender rebuilds the whole screen and refreshes the control ring. Focus
// position survives reloads as long as the control count allows it.
func (m *demoModel) rerender() {
	v := m.engine.RenderScreen(m.screen, m.ctx)
	m.body = termview.Render(v)
	m.controls = termview.ControlsOf(v)
	if m.focus >= len(m.controls) {
		m.focus = 0
	}
	m.vp.SetContent(m.body)
}

func (m *demoModel) layout() {
	chrome := 4
	if m.editing {
		chrome++
	}
	if m.status != "" {
		chrome++
	}
	m.vp.Width = m.width
	m.vp.Height = max(m.height-chrome, 3)
}

func (m *demoModel) View() string {
	var b strings.Builder
	b.WriteString(m.vp.View())
	b.WriteString("\n")
	b.WriteString(m.focusLine())
	b.WriteString("\n")
	if m.editing {
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(footerStyle.Render(m.engine.Cache().Stats().String()))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *demoModel) focusLine() string {
	if len(m.controls) == 0 {
		return focusStyle.Render("no interactive controls")
	}
	c := m.controls[m.focus]
	label := c.Label
	if label == "" {
		label = c.Kind.String()
	}
	return focusStyle.Render(fmt.Sprintf("▸ %d/%d %s · %s",
		m.focus+1, len(m.controls), label, controlState(c)))
}

// controlState summarizes the focused control's live value for the focus
// line.
func controlState(c termview.Control) string {
	switch c.Kind {
	case termview.ControlToggle:
		if c.Bool.Get() {
			return "on"
		}
		return "off"
	case termview.ControlSlider:
		return strconv.FormatFloat(c.Float.Get(), 'f', -1, 64)
	case termview.ControlStepper:
		return strconv.Itoa(c.Int.Get())
	case termview.ControlPicker, termview.ControlSegmented:
		if i := c.Selection.Get(); i >= 0 && i < len(c.Options) {
			return c.Options[i]
		}
		return "none"
	case termview.ControlDate:
		t := c.Date.Get()
		if t.IsZero() {
			return "unset"
		}
		return t.Format("Jan 2, 2006")
	case termview.ControlTextField, termview.ControlTextArea:
		if v := c.Text.Get(); v != "" {
			return v
		}
		return "empty"
	}
	return "enter to activate"
}

// Demo actions. The record argument is the row the control belonged to, nil
// for screen-scope controls.

func (m *demoModel) completeStop(r sdui.Record) {
	target := r
	if target == nil {
		for _, rec := range m.ctx.Records.Records() {
			if !rec.(*job).done {
				target = rec
				break
			}
		}
	}
	if target == nil {
		m.status = "All stops are complete"
		return
	}
	i := m.ctx.Records.IndexOf(target.RecordID())
	if i < 0 {
		return
	}
	m.ctx.Records.Update(i, func(rec sdui.Record) {
		j := rec.(*job)
		j.status = "completed"
		j.done = true
		j.progress = 1
	})
	m.status = "Completed " + target.(*job).customer
}

func (m *demoModel) openMap(r sdui.Record) {
	if r == nil && m.ctx.Records.Len() > 0 {
		r = m.ctx.Records.At(0)
	}
	if j, ok := r.(*job); ok {
		m.status = "Map: " + j.address
	}
}

func (m *demoModel) captureSignature(r sdui.Record) {
	who := "customer"
	if j, ok := r.(*job); ok {
		who = j.customer
	}
	m.status = "Signature captured for " + who
}

func waitForReload(ch <-chan reloadEvent) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return reloadMsg(ev)
	}
}

func sweepTick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return sweepMsg(t) })
}

// demoLogger writes to a file so log lines cannot tear the alt-screen
// display. Without --verbose the demo logs nothing.
func demoLogger() (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	cfg.OutputPaths = []string{"pestgenie-preview.log"}
	cfg.ErrorOutputPaths = []string{"pestgenie-preview.log"}
	return cfg.Build()
}

func runDemo(cmd *cobra.Command, args []string) error {
	log, err := demoLogger()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	cfg, err := LoadConfig(configPath)
	if err != nil {
		return err
	}
	screen, path, err := loadScreen(cfg, args)
	if err != nil {
		return err
	}
	ctx, err := fixtureContext(cfg)
	if err != nil {
		return err
	}

	term := termview.New()
	engine := sdui.New(term).WithLogger(log).WithCache(cfg.Cache.Capacity)

	gctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	g, gctx := errgroup.WithContext(gctx)

	var reloads <-chan reloadEvent
	if path != "" {
		watcher, err := newSchemaWatcher(path, log)
		if err != nil {
			return err
		}
		reloads = watcher.Events()
		g.Go(func() error { return watcher.Run(gctx) })
	}

	m := newDemoModel(engine, term, screen, ctx, log, reloads, cfg.SweepInterval())
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(gctx),
	)

	g.Go(func() error {
		defer cancel()
		_, err := p.Run()
		return err
	})

	return g.Wait()
}
