package advisor

// Advice is directional budgeting guidance: no category amounts, only which
// categories to push in which direction and a short closing note.
type Advice struct {
	Directions []string
	Note       string
}
