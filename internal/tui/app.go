// Package tui is the interactive terminal front end over the reconciler.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tasktrack/internal/model"
	"tasktrack/internal/view"
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeEdit
)

// App is the bubbletea model. It delegates all task state to the
// reconciler and only keeps presentation state of its own: the cursor,
// the input field and the status line.
type App struct {
	rec    *view.Reconciler
	input  textinput.Model
	mode   mode
	cursor int
	status string

	width  int
	height int
}

// Run starts the TUI over the given backend and blocks until quit.
func Run(svc view.Service) error {
	_, err := tea.NewProgram(NewApp(svc), tea.WithAltScreen()).Run()
	return err
}

// NewApp builds the model and loads the first page.
func NewApp(svc view.Service) *App {
	input := textinput.New()
	input.Placeholder = "Task title"
	input.CharLimit = 200

	a := &App{rec: view.New(svc), input: input}
	if err := a.call(a.rec.Refresh); err != nil {
		a.status = err.Error()
	}
	return a
}

// call runs one reconciler action with a bounded context. Network calls
// block the update loop; the reconciler is single-threaded by design.
func (a *App) call(f func(context.Context) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return f(ctx)
}

func (a *App) Init() tea.Cmd { return nil }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		switch a.mode {
		case modeAdd, modeEdit:
			return a.updateInput(msg)
		default:
			return a.updateList(msg)
		}
	}
	return a, nil
}

func (a *App) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a.status = ""
	tasks := a.rec.Tasks()

	switch msg.String() {
	case "ctrl+c", "q":
		return a, tea.Quit

	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(tasks)-1 {
			a.cursor++
		}

	case "a":
		a.mode = modeAdd
		a.input.Reset()
		a.input.Focus()
		return a, textinput.Blink

	case "e":
		if a.cursor < len(tasks) && a.rec.StartEdit(tasks[a.cursor].ID) {
			a.mode = modeEdit
			a.input.SetValue(a.rec.Draft())
			a.input.CursorEnd()
			a.input.Focus()
			return a, textinput.Blink
		}

	case " ", "enter", "t":
		if a.cursor < len(tasks) {
			a.report(a.call(func(ctx context.Context) error {
				return a.rec.Toggle(ctx, tasks[a.cursor].ID)
			}))
		}

	case "d", "x":
		if a.cursor < len(tasks) {
			a.report(a.call(func(ctx context.Context) error {
				return a.rec.Delete(ctx, tasks[a.cursor].ID)
			}))
			a.clampCursor()
		}

	case "right", "n":
		a.report(a.call(a.rec.NextPage))
		a.clampCursor()
	case "left", "p":
		a.report(a.call(a.rec.PrevPage))
		a.clampCursor()

	case "f":
		next := nextFilter(a.rec.Filter())
		a.report(a.call(func(ctx context.Context) error {
			return a.rec.SetFilter(ctx, next)
		}))
		a.clampCursor()

	case "s":
		sort := model.SortLatest
		if a.rec.Sort() == model.SortLatest {
			sort = model.SortOldest
		}
		a.report(a.call(func(ctx context.Context) error {
			return a.rec.SetSort(ctx, sort)
		}))
		a.clampCursor()

	case "r":
		a.report(a.call(a.rec.Refresh))
		a.clampCursor()
	}
	return a, nil
}

func (a *App) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if a.mode == modeEdit {
			a.rec.CancelEdit()
		}
		a.mode = modeList
		a.input.Blur()
		return a, nil

	case "enter":
		switch a.mode {
		case modeAdd:
			err := a.call(func(ctx context.Context) error {
				return a.rec.Add(ctx, a.input.Value())
			})
			if err != nil {
				// Keep the typed title so it can be corrected.
				a.status = err.Error()
				return a, nil
			}
			a.input.Reset()
			a.mode = modeList
			a.cursor = 0
		case modeEdit:
			a.rec.SetDraft(a.input.Value())
			err := a.call(a.rec.ConfirmEdit)
			if err != nil {
				a.status = err.Error()
				return a, nil
			}
			a.mode = modeList
		}
		a.input.Blur()
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) report(err error) {
	if err != nil {
		a.status = err.Error()
	}
}

func (a *App) clampCursor() {
	if n := len(a.rec.Tasks()); a.cursor >= n {
		a.cursor = n - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

// nextFilter cycles all -> active -> completed -> all.
func nextFilter(cur *bool) *bool {
	f := false
	t := true
	switch {
	case cur == nil:
		return &f
	case !*cur:
		return &t
	default:
		return nil
	}
}
