// Package Words counts the words of text with a Sets.Bag and renders the counts as reports.
package Words

import (
	"bufio"
	"io"
	"math"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/g-m-twostay/wordtally/Sets"
	"github.com/g-m-twostay/wordtally/Trees"
)

var log = logrus.WithField("component", "words")

// Clean lowercases token and drops every character other than the ASCII
// letters, hyphen and apostrophe. The result may be empty.
func Clean(token string) string {
	return strings.Map(func(r rune) rune {
		if 'A' <= r && r <= 'Z' {
			r += 'a' - 'A'
		}
		if 'a' <= r && r <= 'z' || r == '-' || r == '\'' {
			return r
		}
		return -1
	}, token)
}

// Counter feeds cleaned words into a Bag.
type Counter struct {
	bag   Sets.Bag[string, uint]
	total uint
}

func NewCounter(bag Sets.Bag[string, uint]) *Counter {
	return &Counter{bag: bag}
}

// NewTreeCounter returns a Counter backed by a counting red-black tree, so
// reports list the words in ascending order.
func NewTreeCounter() *Counter {
	return NewCounter(Trees.New[string, uint](0))
}

// Add cleans word and counts it. Returns false if nothing was left to count.
func (c *Counter) Add(word string) bool {
	if word = Clean(word); word == "" {
		return false
	}
	c.bag.Insert(word)
	c.total++
	return true
}

type countingReader struct {
	r io.Reader
	n int64
}

func (cr *countingReader) Read(p []byte) (int, error) {
	n, err := cr.r.Read(p)
	cr.n += int64(n)
	return n, err
}

// ReadFrom adds every whitespace delimited token read from r until EOF and
// returns the number of bytes read. Tokens have no length limit.
func (c *Counter) ReadFrom(r io.Reader) (int64, error) {
	cr := &countingReader{r: r}
	sc := bufio.NewScanner(cr)
	sc.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), math.MaxInt)
	sc.Split(bufio.ScanWords)
	n, skipped := 0, 0
	for sc.Scan() {
		if c.Add(sc.Text()) {
			n++
		} else {
			skipped++
		}
	}
	log.Debugf("counted %d words, skipped %d tokens", n, skipped)
	if err := sc.Err(); err != nil {
		return cr.n, errors.Wrap(err, "scan words")
	}
	return cr.n, nil
}

// Distinct is the number of different words counted.
func (c *Counter) Distinct() uint {
	return c.bag.Size()
}

// Total is the number of words counted, duplicates included.
func (c *Counter) Total() uint {
	return c.total
}

// Range over the words and their counts in the order of the underlying Bag.
func (c *Counter) Range(f func(word string, count uint) bool) {
	c.bag.Range(f)
}
