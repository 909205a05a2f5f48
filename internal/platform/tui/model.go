package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/remote"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Options configures a game model.
type Options struct {
	Config config.Config
	// Runtime carries the initial terminal size and the seed (0 = time based).
	Runtime core.RuntimeConfig
	Logger  *log.Logger
	// RemoteAddr, when set, starts the remote input bridge on that address.
	RemoteAddr string
}

// Model is the Bubble Tea model for one game session.
// Game state lives behind pointers owned by the controller's collaborators,
// so value copies made by Bubble Tea share it.
type Model struct {
	ctrl       *snake.Controller
	router     snake.Router
	canvas     *core.Canvas
	timer      *Timer
	view       *Presenter
	difficulty *DifficultySelector

	keys    KeyMap
	help    help.Model
	palette Palette
	styles  styles
	log     *log.Logger

	remoteAddr string
	width      int
	height     int
	boardErr   error

	// Swipe in progress, in terminal cells.
	swiping        bool
	swipeX, swipeY int

	quitting bool
}

// NewModel creates a model. When the runtime config carries a terminal size
// the board is laid out immediately; otherwise the first WindowSizeMsg does it.
func NewModel(opts Options) Model {
	cfg := opts.Config
	rt := opts.Runtime
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.TileSize == 0 {
		rt.TileSize = cfg.TileSize
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	canvas := core.NewCanvas(0, 0)
	timer := &Timer{}
	difficulty := NewDifficultySelector(cfg)
	view := NewPresenter(difficulty)

	ctrl := snake.NewController(snake.Options{
		TileSize:   rt.TileSize,
		Seed:       rt.Seed,
		Timer:      timer,
		Presenter:  view,
		Difficulty: difficulty,
		Surface:    canvas,
		Logger:     logger,
	})

	m := Model{
		ctrl:       ctrl,
		router:     snake.NewRouter(ctrl),
		canvas:     canvas,
		timer:      timer,
		view:       view,
		difficulty: difficulty,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		palette:    NewPalette(cfg.Palette),
		styles:     newStyles(cfg.Palette),
		log:        logger,
		remoteAddr: opts.RemoteAddr,
	}
	if rt.ScreenW > 0 && rt.ScreenH > 0 {
		m = m.resize(rt.ScreenW, rt.ScreenH)
	}
	return m
}

// Init implements tea.Model. The board waits for the first resize and the
// player's start, so there is nothing to schedule yet.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		m, cmd = m.handleKey(msg)

	case tea.MouseMsg:
		m = m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m = m.resize(msg.Width, msg.Height)

	case TickMsg:
		if m.timer.Accept(msg) {
			m.ctrl.Tick()
		}

	case remote.SwipeEvent:
		m.router.Swipe(msg.DX, msg.DY)

	case remote.ButtonEvent:
		m.router.Button(msg.Direction)

	case remote.ConfirmEvent:
		m.router.Action(core.ActionConfirm)
	}

	// Drain the timer after every update: Start, Stop and Accept all
	// change what should be scheduled next.
	return m, tea.Batch(cmd, m.timer.Cmd())
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.timer.Stop()
		return m, tea.Quit
	case core.ActionHelp:
		m = m.toggleHelp()
	case core.ActionNextDifficulty, core.ActionPrevDifficulty:
		m.changeDifficulty(action)
	case core.ActionNone:
	default:
		m.router.Action(action)
	}
	return m, nil
}

// toggleHelp switches between short and full help. The board shrinks or
// grows to keep the view inside the terminal, which resets the board, so the
// toggle is refused while a run is in progress.
func (m Model) toggleHelp() Model {
	if m.ctrl.Phase() == snake.PhaseRunning {
		m.log.Debug("help toggle refused while running")
		return m
	}
	m.help.ShowAll = !m.help.ShowAll
	if m.width == 0 || m.height == 0 {
		return m // laid out on the first WindowSizeMsg
	}
	return m.resize(m.width, m.height)
}

func (m Model) changeDifficulty(action core.Action) {
	var err error
	if action == core.ActionNextDifficulty {
		err = m.difficulty.Next()
	} else {
		err = m.difficulty.Prev()
	}
	if err != nil {
		m.log.Debug("difficulty change refused", "error", err)
		return
	}
	m.log.Debug("difficulty selected", "difficulty", m.difficulty.Current())
}

// handleMouse turns clicks into button presses and drags on the board into swipes.
func (m Model) handleMouse(msg tea.MouseMsg) Model {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m
		}
		if b, ok := m.buttonAt(msg.X, msg.Y); ok {
			m.swiping = false
			m.press(b)
			return m
		}
		if m.boardRect().Contains(msg.X, msg.Y) {
			m.swiping = true
			m.swipeX, m.swipeY = msg.X, msg.Y
		}

	case tea.MouseActionRelease:
		if !m.swiping {
			return m
		}
		m.swiping = false
		// A cell is two canvas pixels tall.
		dx := msg.X - m.swipeX
		dy := (msg.Y - m.swipeY) * 2
		m.router.Swipe(dx, dy)
	}
	return m
}

func (m Model) press(b button) {
	switch b.kind {
	case buttonDirection:
		m.router.Button(b.dir)
	case buttonStart:
		m.router.Action(core.ActionConfirm)
	}
}

// resize recomputes the board for a new terminal size. Any run in progress
// is discarded.
func (m Model) resize(width, height int) Model {
	m.width = width
	m.height = height
	m.swiping = false
	m.help.Width = width

	m.boardErr = m.ctrl.Resize(BoardPixels(width, height, m.chromeRows()))
	return m
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{m.headerView(), m.boardView(), m.buttonsView(), m.help.View(m.keys)}
	return strings.Join(sections, "\n")
}

func (m Model) headerView() string {
	diff := m.difficulty.Current().Name
	diffStyle := m.styles.value
	if m.difficulty.Locked() {
		diffStyle = m.styles.locked
	}

	parts := []string{
		m.styles.title.Render("SNAKE"),
		m.styles.label.Render("Score ") + m.styles.value.Render(fmt.Sprint(m.view.Score())),
		m.styles.label.Render("Difficulty ") + diffStyle.Render(diff),
	}
	if m.remoteAddr != "" {
		parts = append(parts, m.styles.label.Render("Remote ")+m.styles.value.Render(m.remoteAddr))
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, strings.Join(parts, "   "))
}

func (m Model) boardView() string {
	rows := max(m.height-m.chromeRows(), 0)
	rect := m.boardRect()
	if m.boardErr != nil || rect.Empty() {
		notice := m.styles.notice.Render("Window too small, resize to play")
		return lipgloss.Place(m.width, rows, lipgloss.Center, lipgloss.Center, notice)
	}

	var board string
	if box := m.overlayView(); box != "" {
		board = overlayCanvas(m.canvas, m.palette, box)
	} else {
		board = RenderCanvas(m.canvas, m.palette)
	}
	return lipgloss.NewStyle().PaddingLeft(rect.X).Render(board)
}

func (m Model) overlayView() string {
	switch m.view.Overlay() {
	case snake.OverlayStart:
		return m.styles.box.Render(strings.Join([]string{
			m.styles.title.Render("SNAKE"),
			"",
			"Press Enter to start",
			"Arrows, WASD or swipe to steer",
		}, "\n"))
	case snake.OverlayGameOver:
		return m.styles.box.Render(strings.Join([]string{
			m.styles.gameOver.Render("GAME OVER"),
			"",
			fmt.Sprintf("Score: %d", m.view.Score()),
			"Press Enter to restart",
		}, "\n"))
	}
	return ""
}

func (m Model) buttonsView() string {
	var sb strings.Builder
	x := 0
	for _, b := range m.buttonBar() {
		if pad := b.rect.X - x; pad > 0 {
			sb.WriteString(strings.Repeat(" ", pad))
		}
		style := m.styles.button
		if b.kind == buttonStart {
			style = m.styles.start
		}
		sb.WriteString(style.Render(b.label))
		x = b.rect.Right()
	}
	return sb.String()
}

// Controller exposes the session controller, mainly for tests and debugging.
func (m Model) Controller() *snake.Controller {
	return m.ctrl
}

// Run starts the Bubble Tea program for a local game. With a remote address
// configured, the remote input bridge feeds the same program.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks on buttons and swipes on the board
	)

	if opts.RemoteAddr != "" {
		bridge := remote.NewServer(remote.ServerConfig{Address: opts.RemoteAddr}, func(ev any) { p.Send(ev) }, model.log)
		if err := bridge.Listen(); err != nil {
			return fmt.Errorf("remote bridge: %w", err)
		}
		go func() {
			if err := bridge.Serve(); err != nil {
				model.log.Error("remote bridge stopped", "error", err)
			}
		}()
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			//nolint:errcheck // Best-effort shutdown on exit
			bridge.Shutdown(ctx)
		}()
	}

	_, err := p.Run()
	return err
}
