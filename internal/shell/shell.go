// Package shell runs the interactive chart menu.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"csv-charts/internal/features/charts"
	"csv-charts/internal/infra/fs"
	logging "csv-charts/internal/infra/log"
)

// ErrQuit is returned by every prompt once the user asks to quit or input
// runs out. Run turns it into a clean nil return.
var ErrQuit = errors.New("quit requested")

// Renderer draws one chart request.
type Renderer interface {
	Render(req charts.Request) error
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	hintStyle   = lipgloss.NewStyle().Faint(true)
)

var menuEntries = map[charts.Kind]string{
	charts.Bar:      "Bar Chart (Expected Columns: 'Category', 'Value')",
	charts.Scatter:  "Scatter Plot (Expected Columns for two CSVs: 'X1', 'Y1' and 'X2', 'Y2')",
	charts.Pie:      "Pie Chart (Expected Columns: 'Category', 'Percentage')",
	charts.LineArea: "Line and Area Chart (Expected Columns: 'X', 'Y')",
	charts.Radar:    "Radar Chart (Expected Columns: 'Label', 'Value')",
}

type Shell struct {
	in       *bufio.Scanner
	out      io.Writer
	errOut   io.Writer
	fs       afero.Fs
	renderer Renderer
}

// New builds a shell reading answers from in. File existence checks go
// through fsys so they see the same files the renderer writes.
func New(in io.Reader, out, errOut io.Writer, fsys afero.Fs, renderer Renderer) *Shell {
	return &Shell{
		in:       bufio.NewScanner(in),
		out:      out,
		errOut:   errOut,
		fs:       fsys,
		renderer: renderer,
	}
}

// Run loops over the menu until the user quits. Chart errors are reported
// and the loop continues.
func (s *Shell) Run() error {
	for {
		err := s.runOnce()
		if errors.Is(err, ErrQuit) {
			fmt.Fprintln(s.out, "Exiting program.")
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (s *Shell) runOnce() error {
	s.printMenu()

	kind, err := s.chooseKind()
	if err != nil {
		return err
	}

	req := charts.Request{Kind: kind}
	for _, prompt := range inputPrompts(kind) {
		name, err := s.inputFile(prompt, ".csv")
		if err != nil {
			return err
		}
		req.Inputs = append(req.Inputs, name)
	}
	if req.Output, err = s.outputFile("Enter the desired name for the PNG output file (e.g., 'output.png'):", ".png"); err != nil {
		return err
	}
	if req.Title, err = s.prompt("Enter the title for the chart:"); err != nil {
		return err
	}

	if err := s.renderer.Render(req); err != nil {
		logging.LogError("Chart request failed", zap.String("kind", kind.String()), zap.Error(err))
		fmt.Fprintf(s.errOut, "Error drawing the %s: %v\n", kind, err)
		return nil
	}
	fmt.Fprintf(s.out, "%s generated successfully: %s\n", capitalize(kind.String()), req.Output)
	return nil
}

func (s *Shell) printMenu() {
	fmt.Fprintln(s.out, headerStyle.Render("Choose the type of chart you want to generate:"))
	for _, k := range charts.Kinds {
		fmt.Fprintf(s.out, "%d. %s\n", int(k), menuEntries[k])
	}
	fmt.Fprintln(s.out, hintStyle.Render("'q' or 'quit' to quit program."))
}

func (s *Shell) chooseKind() (charts.Kind, error) {
	answer, err := s.prompt("Enter your choice (1-5, q to quit):")
	for err == nil {
		for _, k := range charts.Kinds {
			if answer == fmt.Sprint(int(k)) {
				return k, nil
			}
		}
		fmt.Fprintln(s.out, "Invalid choice! Please enter a number between 1 and 5.")
		answer, err = s.prompt("Enter your choice (1-5):")
	}
	return 0, err
}

// prompt prints text and returns the next trimmed line, or ErrQuit.
func (s *Shell) prompt(text string) (string, error) {
	fmt.Fprintln(s.out, text)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", ErrQuit
	}
	answer := strings.TrimSpace(s.in.Text())
	if strings.EqualFold(answer, "q") || strings.EqualFold(answer, "quit") {
		return "", ErrQuit
	}
	return answer, nil
}

func (s *Shell) inputFile(text, ext string) (string, error) {
	for {
		name, err := s.prompt(text)
		if err != nil {
			return "", err
		}
		if msg := checkName(name, ext); msg != "" {
			fmt.Fprintln(s.out, msg)
			continue
		}
		return name, nil
	}
}

// outputFile is inputFile that also refuses names already on disk.
func (s *Shell) outputFile(text, ext string) (string, error) {
	for {
		name, err := s.prompt(text)
		if err != nil {
			return "", err
		}
		if fs.Exists(s.fs, name) {
			fmt.Fprintf(s.out, "The file '%s' already exists. Please provide a different name.\n", name)
			continue
		}
		if msg := checkName(name, ext); msg != "" {
			fmt.Fprintln(s.out, msg)
			continue
		}
		return name, nil
	}
}

func checkName(name, ext string) string {
	lower := strings.ToLower(name)
	switch {
	case lower == "repeat":
		return "Filename 'Repeat' is not allowed! Please provide a different name."
	case !strings.HasSuffix(lower, ext):
		return fmt.Sprintf("Invalid filename. Please ensure the filename ends with %s", ext)
	}
	return ""
}

var ordinals = []string{"first", "second", "third"}

// inputPrompts returns one prompt per CSV file the chart reads.
func inputPrompts(kind charts.Kind) []string {
	n := kind.Inputs()
	switch {
	case n == 1 && kind == charts.Radar:
		return []string{"Enter the name of the CSV file for radar chart (e.g., 'radar_data.csv'):"}
	case n == 1:
		return []string{"Enter the name of the CSV file (e.g., 'data.csv'):"}
	}
	prompts := make([]string, 0, n)
	for i := 0; i < n && i < len(ordinals); i++ {
		prompts = append(prompts, fmt.Sprintf(
			"Enter the name of the %s CSV file for %s (e.g., 'data%d.csv'):", ordinals[i], kind, i+1))
	}
	return prompts
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
