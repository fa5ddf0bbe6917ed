// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/tfctl/dirgen/internal/config"
	"github.com/tfctl/dirgen/internal/log"
)

// LineReader shows prompt and returns the next line of input. It returns
// io.EOF when input is exhausted or the user aborts.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// NewLineReader returns a TTYReader when in is a terminal and a ScanReader
// otherwise (pipes, redirected files).
func NewLineReader(in *os.File, out io.Writer, color bool) LineReader {
	if term.IsTerminal(int(in.Fd())) {
		log.Debugf("using tty prompt")
		return NewTTYReader(in, out, color)
	}
	log.Debugf("using line scanner prompt")
	return NewScanReader(in, out)
}

// ScanReader prints each prompt on its own line and reads plain lines.
type ScanReader struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewScanReader(in io.Reader, out io.Writer) *ScanReader {
	return &ScanReader{scanner: bufio.NewScanner(in), out: out}
}

// ReadLine implements LineReader.
func (r *ScanReader) ReadLine(prompt string) (string, error) {
	fmt.Fprintln(r.out, prompt)
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimRight(r.scanner.Text(), "\r"), nil
}

const defaultHistoryMax = 1000

// TTYReader reads each line through a small Bubble Tea program with up/down
// history navigation. History persists across runs.
type TTYReader struct {
	in          io.Reader
	out         io.Writer
	promptStyle lipgloss.Style
	history     []string
	historyFile string
	historyMax  int
}

func NewTTYReader(in io.Reader, out io.Writer, color bool) *TTYReader {
	style := lipgloss.NewStyle()
	if color {
		style = style.Foreground(lipgloss.Color("#623CE4"))
	}

	file := historyFile()
	maxHistory, err := config.GetInt("history.max", defaultHistoryMax)
	if err != nil {
		maxHistory = defaultHistoryMax
	}
	return &TTYReader{
		in:          in,
		out:         out,
		promptStyle: style,
		history:     loadHistory(file),
		historyFile: file,
		historyMax:  maxHistory,
	}
}

// ReadLine implements LineReader.
func (r *TTYReader) ReadLine(prompt string) (string, error) {
	p := tea.NewProgram(newPromptModel(prompt, r.promptStyle, r.history),
		tea.WithInput(r.in), tea.WithOutput(r.out))
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	m := final.(promptModel)
	if m.aborted {
		return "", io.EOF
	}

	entry := m.input.Value()
	if strings.TrimSpace(entry) != "" && (len(r.history) == 0 || r.history[len(r.history)-1] != entry) {
		r.history = append(r.history, entry)
		saveHistory(r.historyFile, r.history, r.historyMax)
	}
	return entry, nil
}

// promptModel is the Bubble Tea model for a single prompted line.
type promptModel struct {
	prompt    string
	style     lipgloss.Style
	input     textinput.Model
	history   []string
	histIndex int
	done      bool
	aborted   bool
}

func newPromptModel(prompt string, style lipgloss.Style, history []string) promptModel {
	ti := textinput.New()
	ti.Placeholder = ""
	ti.Focus()
	ti.CharLimit = 4096
	ti.Width = 999
	ti.Prompt = style.Render("> ")
	ti.Cursor.SetMode(cursor.CursorBlink)

	return promptModel{
		prompt:    prompt,
		style:     style,
		input:     ti,
		history:   history,
		histIndex: -1,
	}
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			m.done = true
			return m, tea.Quit

		case "ctrl+c", "ctrl+d", "esc":
			m.aborted = true
			return m, tea.Quit

		case "up":
			if len(m.history) == 0 {
				return m, nil
			}
			if m.histIndex == -1 {
				m.histIndex = len(m.history) - 1
			} else if m.histIndex > 0 {
				m.histIndex--
			}
			m.input.SetValue(m.history[m.histIndex])
			m.input.CursorEnd()
			return m, nil

		case "down":
			if len(m.history) == 0 {
				return m, nil
			}
			if m.histIndex >= 0 && m.histIndex < len(m.history)-1 {
				m.histIndex++
				m.input.SetValue(m.history[m.histIndex])
				m.input.CursorEnd()
			} else {
				m.histIndex = -1
				m.input.SetValue("")
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	if m.done || m.aborted {
		// Leave the answered prompt on screen.
		return m.style.Render(m.prompt) + "\n" + m.input.Value() + "\n"
	}
	return m.style.Render(m.prompt) + "\n" + m.input.View()
}

// historyFile returns history.file from config, or ~/.dirgen_history.
func historyFile() string {
	if f, err := config.GetString("history.file"); err == nil && f != "" {
		return f
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".dirgen_history"
	}
	return filepath.Join(homeDir, ".dirgen_history")
}

func loadHistory(filename string) []string {
	var history []string

	file, err := os.Open(filename)
	if err != nil {
		return history
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			history = append(history, line)
		}
	}

	return history
}

// saveHistory keeps the last maxHistory entries. Failures only get logged.
func saveHistory(filename string, history []string, maxHistory int) {
	start := 0
	if maxHistory > 0 && len(history) > maxHistory {
		start = len(history) - maxHistory
	}

	file, err := os.Create(filename)
	if err != nil {
		log.Debugf("history save err: err=%v", err)
		return
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	for i := start; i < len(history); i++ {
		fmt.Fprintln(writer, history[i])
	}
	if err := writer.Flush(); err != nil {
		log.Debugf("history flush err: err=%v", err)
	}
}
