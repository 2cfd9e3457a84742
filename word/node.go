package word

// Node is one parsed program element in source order: either a Word or
// a Comment.
type Node interface {
	node()
}

// Comment is the text of one comment line, trailing whitespace removed
// and leading indentation preserved.
type Comment string

func (Comment) node() {}

func (Word) node() {}

// Nodes is an ordered program: words interleaved with comments.
type Nodes []Node

// Words extracts the instruction words of the program, in order,
// dropping comments.
func (ns Nodes) Words() (words Words) {
	for _, node := range ns {
		if wd, ok := node.(Word); ok {
			words = append(words, wd)
		}
	}

	return
}

// Words is an ordered sequence of instruction words.
type Words []Word

// Nodes widens the words into a program with no comments.
func (ws Words) Nodes() (nodes Nodes) {
	for _, wd := range ws {
		nodes = append(nodes, wd)
	}

	return
}
