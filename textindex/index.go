package textindex

import (
	"bufio"
	"io"
	"iter"
	"strings"
	"unicode"

	"github.com/npillmayer/ordmap"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax29"
	"golang.org/x/net/html"
)

// Occurrences records where a word appears in the indexed text.
type Occurrences struct {
	// Count is the number of appearances.
	Count int
	// Positions are the byte offsets of each appearance, ascending.
	Positions []int
}

// Index is a word index over one text, sorted lexicographically by word.
//
// Words are lower-cased; tokens without letters or digits (punctuation,
// whitespace runs) are not indexed.
type Index struct {
	words *ordmap.Map[string, Occurrences]
	total int
}

// FromText builds an index over a plain-text string.
func FromText(text string) (*Index, error) {
	words, err := ordmap.NewOrdered[string, Occurrences](ordmap.DefaultOrder)
	if err != nil {
		return nil, err
	}
	ix := &Index{words: words}
	onWords := uax29.NewWordBreaker(1)
	segmenter := segment.NewSegmenter(onWords)
	segmenter.Init(bufio.NewReader(strings.NewReader(text)))
	pos := 0
	for segmenter.Next() {
		token := segmenter.Bytes()
		if isWord(token) {
			ix.add(strings.ToLower(string(token)), pos)
		}
		pos += len(token)
	}
	tracer().Debugf("indexed %d words, %d distinct", ix.total, ix.words.Len())
	return ix, nil
}

// FromHTML builds an index over the textual content of an HTML fragment.
// It does no interpretation of layout and styling, but extracts the pure
// text, in document order.
func FromHTML(input io.Reader) (*Index, error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, err
	}
	var sb strings.Builder
	for _, n := range nodes {
		collectText(n, &sb)
	}
	return FromText(sb.String())
}

func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}

// Lookup returns the occurrences of word (lower-cased before lookup).
func (ix *Index) Lookup(word string) (Occurrences, bool) {
	return ix.words.Get(strings.ToLower(word))
}

// Words returns all indexed words in lexicographic order.
func (ix *Index) Words() []string {
	return ix.words.Keys()
}

// Between returns a lazy sequence of the indexed words in [lo, hi],
// lexicographically ascending, with their occurrences.
func (ix *Index) Between(lo, hi string) iter.Seq2[string, Occurrences] {
	return ix.words.Range(strings.ToLower(lo), strings.ToLower(hi))
}

// Total returns the total number of word appearances.
func (ix *Index) Total() int {
	return ix.total
}

// Distinct returns the number of distinct indexed words.
func (ix *Index) Distinct() int {
	return ix.words.Len()
}

func (ix *Index) add(word string, pos int) {
	occ, _ := ix.words.Get(word)
	occ.Count++
	occ.Positions = append(occ.Positions, pos)
	ix.words.Set(word, occ)
	ix.total++
}

// isWord reports whether a segment token is an indexable word, i.e.
// contains at least one letter or digit.
func isWord(token []byte) bool {
	for _, r := range string(token) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
