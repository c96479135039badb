package chess

// Move is a single move request as read from a script: a source and
// destination label pair together with where it was found.
type Move struct {
	// The move text as written (e.g., "a2a7", "a2-a7").
	Text string

	// Source and destination labels. They are kept as text so that a
	// malformed label reaches the engine and is rejected there.
	From string
	To   string

	// Position of the move in its source.
	Line   uint
	Column uint

	// Comments following this move.
	Comments []*Comment
}

// Comment represents a script comment.
type Comment struct {
	Text string
}

// NewMove creates a move between two labels.
func NewMove(from, to string) *Move {
	return &Move{Text: from + to, From: from, To: to}
}

// String returns the move in long form, e.g. "a2-a7".
func (m *Move) String() string {
	return m.From + "-" + m.To
}

// HasComments returns true if this move has any comments.
func (m *Move) HasComments() bool {
	return len(m.Comments) > 0
}

// AppendComment adds a comment to this move.
func (m *Move) AppendComment(text string) {
	m.Comments = append(m.Comments, &Comment{Text: text})
}
