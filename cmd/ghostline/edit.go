package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/iw2rmb/ghostline/config"
	"github.com/iw2rmb/ghostline/editor"
	"github.com/iw2rmb/ghostline/internal/device"
	"github.com/iw2rmb/ghostline/internal/logging"
)

// errCancelled is returned when the user leaves the editor with Esc.
var errCancelled = errors.New("edit cancelled")

type editOptions struct {
	text        string
	placeholder string
	prompt      string
	apiURL      string
	style       string
	disableAI   bool
	debounce    time.Duration
	height      int
}

func newEditCmd(root *rootOptions) *cobra.Command {
	opts := &editOptions{}
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit text with inline AI suggestions",
		Long: `Open an editor that suggests continuations as ghost text.

Tab accepts a suggestion (Space on touch terminals), any other key dismisses
it. Ctrl+S prints the text to stdout and exits; Esc exits without output.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEdit(cmd, root, opts)
		},
	}

	opts.bindFlags(cmd)
	return cmd
}

func (o *editOptions) bindFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&o.text, "text", "", "initial text")
	f.StringVar(&o.placeholder, "placeholder", "", "text shown while empty")
	f.StringVar(&o.prompt, "prompt", "", "style prompt sent with every completion")
	f.StringVar(&o.apiURL, "api-url", "", "completion endpoint")
	f.StringVar(&o.style, "style", "", "JSON style object")
	f.BoolVar(&o.disableAI, "disable-ai", false, "turn suggestions off")
	f.DurationVar(&o.debounce, "debounce", 0, "idle time before a completion is requested")
	f.IntVar(&o.height, "height", 10, "editor height in rows")
}

func (o *editOptions) apply(cmd *cobra.Command, cfg *config.Editor) {
	flags := cmd.Flags()
	if flags.Changed("placeholder") {
		cfg.Placeholder = o.placeholder
	}
	if flags.Changed("prompt") {
		cfg.Prompt = o.prompt
	}
	if flags.Changed("api-url") {
		cfg.APIURL = o.apiURL
	}
	if flags.Changed("style") {
		cfg.Style = o.style
	}
	if flags.Changed("disable-ai") {
		cfg.DisableAI = o.disableAI
	}
	if flags.Changed("debounce") {
		cfg.Debounce = o.debounce
	}
}

func runEdit(cmd *cobra.Command, root *rootOptions, opts *editOptions) error {
	cfg, err := root.load(cmd)
	if err != nil {
		return err
	}
	opts.apply(cmd, &cfg.Editor)

	// The terminal belongs to the UI; logs go to a file or nowhere.
	logger, err := logging.New(loggingOptions(cfg.Log, true))
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	m := newEditModel(editorConfig(cfg.Editor, opts, logger), opts.height)
	p := tea.NewProgram(m,
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.ErrOrStderr()),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run editor: %w", err)
	}
	res := final.(editModel)
	if res.cancelled {
		return errCancelled
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), res.editor.Value())
	return err
}

func editorConfig(c config.Editor, opts *editOptions, logger *zap.Logger) editor.Config {
	cfg := editor.Config{
		Text:        opts.text,
		Placeholder: c.Placeholder,
		Prompt:      c.Prompt,
		APIURL:      c.APIURL,
		DisableAI:   c.DisableAI,
		Autofocus:   true,
		Device:      device.Detect(os.Getenv),
		Debounce:    c.Debounce,
		Logger:      logger,
	}
	if strings.TrimSpace(c.Style) != "" {
		st := editor.ParseStyleConfig(c.Style)
		cfg.Style = &st
	}
	return cfg
}

type editKeys struct {
	submit key.Binding
	cancel key.Binding
}

// editModel hosts one editor.Model with a help line under it.
type editModel struct {
	editor    editor.Model
	keys      editKeys
	height    int
	cancelled bool
}

func newEditModel(cfg editor.Config, height int) editModel {
	if height < 1 {
		height = 1
	}
	return editModel{
		editor: editor.New(cfg),
		keys: editKeys{
			submit: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "done")),
			cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		},
		height: height,
	}
}

func (m editModel) Init() tea.Cmd { return m.editor.Init() }

func (m editModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h := min(m.height, max(msg.Height-1, 1))
		m.editor = m.editor.SetSize(msg.Width, h)
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.submit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.cancel):
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

var helpStyle = lipgloss.NewStyle().Faint(true)

func (m editModel) View() string {
	accept := m.editor.Controller().AcceptKey().Help()
	help := fmt.Sprintf("%s accept • %s %s • %s %s",
		accept.Key,
		m.keys.submit.Help().Key, m.keys.submit.Help().Desc,
		m.keys.cancel.Help().Key, m.keys.cancel.Help().Desc,
	)
	return m.editor.View() + "\n" + helpStyle.Render(help)
}
