package Words

import (
	"bufio"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/pkg/errors"
)

const (
	FormatText  = "text"
	FormatTable = "table"
)

var ErrUnknownFormat = errors.New("unknown report format")

// CheckFormat returns ErrUnknownFormat unless Write accepts format.
func CheckFormat(format string) error {
	switch format {
	case FormatText, FormatTable, "":
		return nil
	}
	return errors.Wrapf(ErrUnknownFormat, "%q", format)
}

// Write the report of c to w in the given format. The empty format is FormatText.
func (c *Counter) Write(w io.Writer, format string) error {
	if err := CheckFormat(format); err != nil {
		return err
	}
	if format == FormatTable {
		return c.WriteTable(w)
	}
	return c.WriteReport(w)
}

// WriteReport writes one tab indented line per word with its count, followed by
// a separator and the number of different words. The last line has no newline.
func (c *Counter) WriteReport(w io.Writer) error {
	bw := bufio.NewWriter(w)
	c.Range(func(word string, count uint) bool {
		fmt.Fprintf(bw, "\t%d\t\t\t\t%s\n", count, word)
		return true
	})
	fmt.Fprint(bw, "\t--------------------------\n")
	fmt.Fprintf(bw, "\t%d\t\t\tTotal number of different words", c.Distinct())
	return errors.Wrap(bw.Flush(), "write report")
}

// WriteTable writes the same data as WriteReport as a table.
func (c *Counter) WriteTable(w io.Writer) error {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignFooter: text.AlignRight},
	})
	t.AppendHeader(table.Row{"count", "word"})
	c.Range(func(word string, count uint) bool {
		t.AppendRow(table.Row{count, word})
		return true
	})
	t.AppendFooter(table.Row{c.Distinct(), "different words"})
	_, err := io.WriteString(w, t.Render()+"\n")
	return errors.Wrap(err, "write table")
}
