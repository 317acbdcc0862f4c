package datasets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewListsEveryDataset(t *testing.T) {
	s := New()
	view := s.View(120, 40)
	for _, d := range s.datasets {
		assert.Contains(t, view, d.Name)
	}
	assert.Contains(t, view, "6,300")
}
