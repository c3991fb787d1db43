package export

import (
	"io"

	"github.com/mesh-intelligence/ansicards/pkg/types"
)

// WriteTable writes a table snapshot as indented JSON, bottom placement
// first. Placements with a nil card are skipped.
func WriteTable(w io.Writer, placements []types.Placement) error {
	rec := tableJSON{Placements: []placementJSON{}}
	for _, p := range placements {
		if p.Card == nil {
			continue
		}
		pj := placementJSON{
			Z:        len(rec.Placements),
			NumberID: p.Card.ID(),
			Number:   p.Card.Name(),
			Label:    p.Card.Label(),
			X:        p.Pos.X,
			Y:        p.Pos.Y,
			Visible:  p.Visible,
		}
		if s := p.Card.Suit(); s != nil {
			pj.Suit = s.Name()
		}
		rec.Placements = append(rec.Placements, pj)
	}
	rec.Count = len(rec.Placements)
	return encode(w, rec)
}
