// Command emblem edits an indentation-structured template in the terminal
// with the structural editing commands bound to keys.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/emblem"
	"github.com/iw2rmb/emblem/editor"
	"github.com/iw2rmb/emblem/mode"
)

const sample = `/ Structural editing demo
div.container
  h1 Welcome
  - if user.present? do |u|
    p
      | Hello,
      = u.name
  - else
    a href="/login" Sign in
  markdown:
    # Notes
footer
  p.small Ctrl+S saves, Ctrl+Q quits.`

// reloadMsg carries a configuration reload from the watcher goroutine.
type reloadMsg struct {
	cfg mode.Config
	err error
}

type model struct {
	path   string
	mode   *mode.Mode
	editor editor.Model
	notice string
}

func newModel(path, text string, md *mode.Mode) model {
	cfg := editor.Config{
		Text:         text,
		ShowLineNums: true,
		ShowStatus:   true,
		Style:        editor.DefaultStyle(),
		Clipboard:    &memClipboard{},
		Highlighter:  md.Highlighter(),
		Commands:     md,
		Bindings:     mode.DefaultBindings(),
	}
	return model{path: path, mode: md, editor: editor.New(cfg)}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.editor = m.editor.SetSize(msg.Width, max(msg.Height-1, 0))
		return m, nil
	case tea.KeyMsg:
		m.notice = ""
		switch msg.String() {
		case "ctrl+q":
			return m, tea.Quit
		case "ctrl+s":
			m.notice = m.save()
			return m, nil
		}
	case reloadMsg:
		m.notice = m.reload(msg)
		return m, nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string {
	name := m.path
	if name == "" {
		name = "[sample]"
	}
	header := emblem.Banner() + "  " + name
	if m.notice != "" {
		header += "  " + m.notice
	}
	return header + "\n" + m.editor.View()
}

func (m model) save() string {
	if m.path == "" {
		return "nothing to save: no file given"
	}
	if err := os.WriteFile(m.path, []byte(m.editor.Buffer().Text()), 0o644); err != nil {
		log.Printf("save %s: %v", m.path, err)
		return "save failed: " + err.Error()
	}
	return "saved"
}

func (m *model) reload(msg reloadMsg) string {
	if msg.err != nil {
		log.Printf("config reload: %v", msg.err)
		return "config error: " + msg.err.Error()
	}
	md, err := mode.New(msg.cfg)
	if err != nil {
		log.Printf("config reload: %v", err)
		return "config error: " + err.Error()
	}
	m.mode.Close()
	m.mode = md
	m.editor = m.editor.SetCommands(md, mode.DefaultBindings()).SetHighlighter(md.Highlighter())
	return "config reloaded"
}

type memClipboard struct {
	text string
}

func (c *memClipboard) ReadText() (string, error) { return c.text, nil }

func (c *memClipboard) WriteText(s string) error {
	c.text = s
	return nil
}

func main() {
	os.Exit(run())
}

func run() int {
	showVersion := flag.Bool("version", false, "print version and exit")
	configPath := flag.String("config", "", "path to "+mode.ConfigFileName+" (default: next to the file)")
	flag.Parse()

	if *showVersion {
		fmt.Println(emblem.Banner())
		return 0
	}

	logFile, err := setupLogging(os.Getenv("EMBLEM_DEBUG") != "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if logFile != nil {
		defer logFile.Close()
	}

	path := flag.Arg(0)
	text, err := readDocument(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	cfgFile := *configPath
	if cfgFile == "" {
		dir := "."
		if path != "" {
			dir = filepath.Dir(path)
		}
		cfgFile = mode.FindConfig(dir)
	}
	cfg, err := mode.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	md, err := mode.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if path != "" && !md.MatchesFile(path) {
		log.Printf("%s does not have an emblem extension", path)
	}

	p := tea.NewProgram(newModel(path, text, md), tea.WithAltScreen(), tea.WithMouseCellMotion())

	stop, err := mode.Watch(cfgFile, func(cfg mode.Config, err error) {
		p.Send(reloadMsg{cfg: cfg, err: err})
	})
	if err != nil {
		log.Printf("config watch disabled: %v", err)
	} else {
		defer stop()
	}

	final, err := p.Run()
	if fm, ok := final.(model); ok {
		fm.mode.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// setupLogging routes the log package to emblem-debug.log when debug is set
// and discards it otherwise, so nothing is written over the alt screen.
func setupLogging(debug bool) (io.Closer, error) {
	if !debug {
		log.SetOutput(io.Discard)
		return nil, nil
	}
	f, err := tea.LogToFile("emblem-debug.log", "emblem")
	if err != nil {
		return nil, err
	}
	return f, nil
}

// readDocument returns the file text with CRLF line endings normalized, the
// sample for an empty path, or an empty document for a file that does not
// exist yet.
func readDocument(path string) (string, error) {
	if path == "" {
		return sample, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return strings.ReplaceAll(string(data), "\r\n", "\n"), nil
}
