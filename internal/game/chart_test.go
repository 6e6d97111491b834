package game

import "testing"

func TestNewChartCountsTags(t *testing.T) {
	c := NewChart([]*Note{{Index: 0}, {Index: 1, Tag: "a"}, {Index: 2}, {Index: 3, Tag: "b"}})
	if c.NoteCount != 4 || c.TaggedCount != 2 {
		t.Fatalf("unexpected counts %v/%v", c.NoteCount, c.TaggedCount)
	}
	tagged := c.Tagged()
	if len(tagged) != 2 || tagged[0].Index != 1 || tagged[1].Index != 3 {
		t.Fatalf("unexpected tagged notes %v", tagged)
	}
}

func TestNoteLive(t *testing.T) {
	n := Note{}
	if !n.Live() {
		t.Fail()
	}
	n.Hit = true
	if n.Live() {
		t.Fail()
	}
}
