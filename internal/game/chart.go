package game

// Chart is the full note set of one session, ordered by spawn index.
type Chart struct {
	Notes       []*Note
	NoteCount   int
	TaggedCount int
}

func NewChart(notes []*Note) *Chart {
	c := &Chart{Notes: notes, NoteCount: len(notes)}
	for _, n := range notes {
		if n.Tagged() {
			c.TaggedCount++
		}
	}
	return c
}

// Tagged returns the tagged notes in spawn order.
func (c *Chart) Tagged() []*Note {
	tagged := make([]*Note, 0, c.TaggedCount)
	for _, n := range c.Notes {
		if n.Tagged() {
			tagged = append(tagged, n)
		}
	}
	return tagged
}
