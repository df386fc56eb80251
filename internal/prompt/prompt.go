package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
)

// Console reads user input line by line and writes styled output.
// It wraps arbitrary reader/writer pairs so sessions are scriptable in tests.
type Console struct {
	scanner *bufio.Scanner
	out     io.Writer
	styles  Styles
}

// New creates a console over the given input and output
func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		scanner: bufio.NewScanner(in),
		out:     out,
		styles:  DefaultStyles(),
	}
}

// Ask prints a prompt and returns the next input line, trimmed.
// io.EOF is returned when input is exhausted.
func (c *Console) Ask(label string) (string, error) {
	fmt.Fprint(c.out, c.styles.Prompt.Render(label)+" ")
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.scanner.Text()), nil
}

// AskInt asks until the user enters a valid integer
func (c *Console) AskInt(label string) (int, error) {
	for {
		answer, err := c.Ask(label)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(answer)
		if err != nil {
			c.Errorf("Invalid choice, try again.")
			continue
		}
		return n, nil
	}
}

// Banner prints a framed section header
func (c *Console) Banner(text string) {
	rule := strings.Repeat("-", 50)
	fmt.Fprintln(c.out, rule)
	fmt.Fprintln(c.out, c.styles.Banner.Render(text))
	fmt.Fprintln(c.out, rule)
}

// Infof prints an informational line
func (c *Console) Infof(format string, args ...any) {
	fmt.Fprintln(c.out, c.styles.Info.Render(fmt.Sprintf(format, args...)))
}

// Successf prints a success line
func (c *Console) Successf(format string, args ...any) {
	fmt.Fprintln(c.out, c.styles.Success.Render(fmt.Sprintf(format, args...)))
}

// Warnf prints a warning line
func (c *Console) Warnf(format string, args ...any) {
	fmt.Fprintln(c.out, c.styles.Warn.Render(fmt.Sprintf(format, args...)))
}

// Errorf prints an error line
func (c *Console) Errorf(format string, args ...any) {
	fmt.Fprintln(c.out, c.styles.Error.Render(fmt.Sprintf(format, args...)))
}

// Table prints headers and rows as an aligned table
func (c *Console) Table(headers []string, rows [][]string) {
	w := tabwriter.NewWriter(c.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(headers, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()
}
