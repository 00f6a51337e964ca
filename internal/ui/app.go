// Package ui is the bubbletea shell around the feed engine. The update
// loop serializes every tracker call, which is what makes the engine's
// single-threaded model safe.
package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/camdenreyes/loci/internal/feed"
	"github.com/camdenreyes/loci/internal/logging"
	"github.com/camdenreyes/loci/internal/share"
)

// LoadFunc starts a feed load tagged with gen and resolves to a
// FeedLoadedMsg carrying the same gen.
type LoadFunc func(gen uint64) tea.Cmd

// AppConfig wires the app's collaborators.
type AppConfig struct {
	Tracker *feed.Tracker
	Load    LoadFunc
	Sharer  share.Sharer

	// Visibility contract knobs; zero values select 0.8 / 100ms.
	CoverageThreshold float64
	MinDwell          time.Duration

	Now    func() time.Time
	Styles *Styles
}

// App is the root model: one full-screen card at a time, j/k to move
// through the feed, space to like, s to share.
type App struct {
	cfg     AppConfig
	tracker *feed.Tracker
	deb     *Debouncer
	card    Card
	burst   likeBurst
	trans   transition
	spin    spinner.Model

	cursor int
	width  int
	height int
	status string
}

// NewApp creates the root model.
func NewApp(cfg AppConfig) App {
	if cfg.CoverageThreshold <= 0 {
		cfg.CoverageThreshold = 0.8
	}
	if cfg.MinDwell <= 0 {
		cfg.MinDwell = 100 * time.Millisecond
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	styles := DefaultStyles()
	if cfg.Styles != nil {
		styles = *cfg.Styles
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Loading

	return App{
		cfg:     cfg,
		tracker: cfg.Tracker,
		deb:     NewDebouncer(cfg.CoverageThreshold, cfg.MinDwell, cfg.Now),
		card:    Card{Styles: styles},
		burst:   newLikeBurst(),
		trans:   newTransition(),
		spin:    sp,
	}
}

// Init kicks off the first load.
func (a App) Init() tea.Cmd {
	return tea.Batch(a.spin.Tick, a.startLoad())
}

func (a App) startLoad() tea.Cmd {
	gen := a.tracker.BeginLoad()
	return a.cfg.Load(gen)
}

// Update handles keys, animation frames, and load results.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case spinner.TickMsg:
		if !a.tracker.Loading() {
			return a, nil
		}
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		return a, cmd

	case FeedLoadedMsg:
		if !a.tracker.CompleteLoad(msg.Gen, msg.Items, msg.Err) {
			return a, nil // superseded by a newer load
		}
		a.cursor = 0
		a.status = ""
		// The first card is showing without a transition, so it is
		// dominant immediately and must not generate an event.
		a.deb.Reset(0)
		a.trans = newTransition()
		if msg.Err != nil {
			logging.Error("feed load failed", "err", msg.Err)
		} else {
			logging.Info("feed loaded", "items", len(msg.Items))
		}
		return a, nil

	case SharedMsg:
		// Share failures never surface as errors, just a status note.
		if msg.Err != nil {
			logging.Warn("share failed", "err", msg.Err)
			a.status = "share failed"
		} else {
			a.status = "link shared"
		}
		return a, nil

	case frameMsg:
		return a.stepFrame()

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

// stepFrame advances the animations and feeds the dominance debouncer.
func (a App) stepFrame() (tea.Model, tea.Cmd) {
	moving := a.trans.Step()
	bursting := a.burst.Step()

	if idx, ok := a.deb.Observe(a.cursor, a.trans.Coverage()); ok {
		a.tracker.OnDominantItemChanged(idx)
	}

	// Keep ticking while something animates or a promotion is pending.
	if moving || bursting || a.deb.Dominant() != a.cursor {
		return a, frameTick()
	}
	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit

	case "r":
		a.status = ""
		return a, tea.Batch(a.spin.Tick, a.startLoad())

	case "j", "down":
		return a.moveCursor(1)

	case "k", "up":
		return a.moveCursor(-1)

	case " ":
		liked, ok := a.tracker.ToggleLike(a.cursor)
		if !ok {
			return a, nil
		}
		if liked {
			a.burst.Trigger()
			return a, frameTick()
		}
		return a, nil

	case "s":
		item, ok := a.tracker.ItemAt(a.cursor)
		if !ok {
			return a, nil
		}
		return a, a.shareCmd(item)
	}

	return a, nil
}

// moveCursor slides to an adjacent card. The new card starts at zero
// coverage; only once it has settled over the viewport long enough does
// the debouncer tell the tracker. Scrolling straight past a card keeps
// restarting the slide, so the cards in between never become dominant.
func (a App) moveCursor(delta int) (tea.Model, tea.Cmd) {
	next := a.cursor + delta
	if next < 0 || next >= a.tracker.Len() {
		return a, nil
	}
	a.cursor = next
	a.status = ""
	a.trans.Restart()
	return a, frameTick()
}

func (a App) shareCmd(item feed.Item) tea.Cmd {
	sharer := a.cfg.Sharer
	return func() tea.Msg {
		if sharer == nil {
			return SharedMsg{}
		}
		return SharedMsg{Err: sharer.Share(share.Build(item))}
	}
}

// View renders loading, error, empty, or the current card.
func (a App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Initialising..."
	}

	styles := a.card.Styles

	if a.tracker.Loading() && a.tracker.Len() == 0 {
		return fmt.Sprintf("\n %s finding spots near you...", a.spin.View())
	}

	if err := a.tracker.Err(); err != nil {
		body := lipgloss.JoinVertical(lipgloss.Left,
			styles.ErrTitle.Render("Couldn't load the feed"),
			"",
			styles.ErrBody.Render(err.Error()),
			"",
			styles.HelpBar.Render("r retry · q quit"),
		)
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, body)
	}

	if a.tracker.Len() == 0 {
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
			styles.ErrBody.Render("No spots nearby.")+"\n"+styles.HelpBar.Render("r reload · q quit"))
	}

	item, _ := a.tracker.ItemAt(a.cursor)
	cardView := a.card.View(item, a.tracker.Liked(a.cursor), a.burst.Scale(), a.width, a.height-4)

	position := styles.Position.Render(fmt.Sprintf("%d/%d", a.cursor+1, a.tracker.Len()))
	help := "j/k swipe · space like · s share · r reload · q quit"
	if a.status != "" {
		help = a.status + " · " + help
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		cardView,
		lipgloss.JoinHorizontal(lipgloss.Top, position, styles.HelpBar.Render("  "+help)),
	)
}
