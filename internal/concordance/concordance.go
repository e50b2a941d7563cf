package concordance

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/homier/probemap"
)

// ErrSourceNotFound is matched by errors returned for missing input files,
// alongside fs.ErrNotExist.
var ErrSourceNotFound = errors.New("source not found")

type Concordance struct {
	cfg config

	stopWords *probemap.ProbingSet
	entries   *probemap.ProbingMap[[]int]
}

func New(opts ...Option) *Concordance {
	c := &Concordance{cfg: newConfig(opts...)}
	c.stopWords = c.newSet()
	c.entries = c.newMap()

	return c
}

func (c *Concordance) newSet() *probemap.ProbingSet {
	return probemap.NewSet(c.cfg.capacity, probemap.WithHashFunc[struct{}](c.cfg.hashFunc))
}

func (c *Concordance) newMap() *probemap.ProbingMap[[]int] {
	return probemap.New(c.cfg.capacity, probemap.WithHashFunc[[]int](c.cfg.hashFunc))
}

// LoadStopWords replaces the stop words with the whitespace separated words of the named file.
func (c *Concordance) LoadStopWords(filename string) error {
	return c.loadFile(filename, "stop words", c.ReadStopWords)
}

// LoadText replaces the index with the words of the named file.
func (c *Concordance) LoadText(filename string) error {
	return c.loadFile(filename, "text", c.ReadText)
}

func (c *Concordance) loadFile(filename, kind string, read func(io.Reader) error) error {
	f, err := os.Open(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s %q: %w: %w", kind, filename, ErrSourceNotFound, err)
		}

		return fmt.Errorf("%s %q: %w", kind, filename, err)
	}
	defer f.Close()

	c.cfg.log.Debugf("Reading %s from %s", kind, filename)

	if err := read(f); err != nil {
		return fmt.Errorf("%s %q: %w", kind, filename, err)
	}

	return nil
}

// ReadStopWords replaces the stop words with the whitespace separated words of r.
// Stop words are taken verbatim, without normalization.
func (c *Concordance) ReadStopWords(r io.Reader) error {
	set := c.newSet()

	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	for scanner.Scan() {
		set.Add(scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read stop words: %w", err)
	}

	c.stopWords = set
	c.cfg.log.WithFields(logrus.Fields{
		"words":    set.Len(),
		"capacity": set.Capacity(),
	}).Info("Loaded stop words")

	return nil
}

// ReadText replaces the index with the words of r. Lines are numbered from 1.
// Stop words and numbers are skipped.
func (c *Concordance) ReadText(r io.Reader) error {
	entries := c.newMap()
	reader := bufio.NewReader(r)

	for lineNum := 1; ; lineNum++ {
		line, err := reader.ReadString('\n')
		if len(line) > 0 {
			c.indexLine(entries, line, lineNum)
		}

		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return fmt.Errorf("failed to read line %d: %w", lineNum, err)
		}
	}

	c.entries = entries
	c.cfg.log.WithFields(logrus.Fields{
		"words":    entries.Len(),
		"capacity": entries.Capacity(),
	}).Info("Indexed text")

	return nil
}

func (c *Concordance) indexLine(entries *probemap.ProbingMap[[]int], line string, lineNum int) {
	for _, word := range strings.Fields(NormalizeLine(line)) {
		if c.stopWords.Has(word) || isNumber(word) {
			continue
		}

		lines, ok := entries.Get(word)
		if !ok {
			entries.Insert(word, []int{lineNum})
			continue
		}

		// Lines arrive in order, so a repeat on the same line is always last.
		if lines[len(lines)-1] != lineNum {
			entries.Insert(word, append(lines, lineNum))
		}
	}
}

// IsStopWord reports whether word was loaded as a stop word.
func (c *Concordance) IsStopWord(word string) bool {
	return c.stopWords.Has(word)
}

// Lookup returns the lines word appears on. The slice must not be modified.
func (c *Concordance) Lookup(word string) ([]int, bool) {
	return c.entries.Get(word)
}

// Words returns every indexed word in alphabetical order.
func (c *Concordance) Words() []string {
	words := c.entries.Keys()
	slices.Sort(words)

	return words
}

func (c *Concordance) StopWordStats() probemap.Stats {
	return c.stopWords.Stats()
}

func (c *Concordance) EntryStats() probemap.Stats {
	return c.entries.Stats()
}

// WriteTo writes the report to w. Entries are separated by a newline;
// the last one isn't followed by one.
func (c *Concordance) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)

	var (
		buf []byte
		n   int64
	)

	for i, word := range c.Words() {
		lines, _ := c.entries.Get(word)

		buf = buf[:0]
		if i > 0 {
			buf = append(buf, '\n')
		}

		buf = append(buf, word...)
		buf = append(buf, ':')

		for _, n := range lines {
			buf = append(buf, ' ')
			buf = strconv.AppendInt(buf, int64(n), 10)
		}

		written, err := bw.Write(buf)
		n += int64(written)

		if err != nil {
			return n, err
		}
	}

	return n, bw.Flush()
}

// WriteFile writes the report to the named file, creating or truncating it.
func (c *Concordance) WriteFile(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}

	if _, err := c.WriteTo(f); err != nil {
		f.Close()

		return fmt.Errorf("failed to write report %q: %w", filename, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close report %q: %w", filename, err)
	}

	c.cfg.log.Infof("Wrote %d entries to %s", c.entries.Len(), filename)

	return nil
}
