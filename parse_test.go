package aoc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLines(t *testing.T) {
	require.Equal(t, []string{"ab", "cd"}, Lines("ab\r\ncd\n\n"))
	require.Nil(t, Lines(" \n"))
}

func TestParseGridErrors(t *testing.T) {
	walls := Legend(map[rune]bool{'#': true, '.': false})
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", ErrEmptyGrid},
		{"blank", "\n\n", ErrEmptyGrid},
		{"ragged", "##\n#\n", ErrNonRectangular},
		{"unknown", "#.\n.x\n", ErrUnknownCell},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseGrid(tt.input, walls)
			require.ErrorIs(t, err, tt.want)
		})
	}

	_, err := ParseGrid("12\n3a", DigitCell)
	require.ErrorIs(t, err, ErrUnknownCell)
	require.ErrorContains(t, err, "line 2 col 2")
}

func TestParseGridIdempotent(t *testing.T) {
	const in = "#.S\n..#\nE.."
	g, err := ParseGrid(in, RuneCell)
	require.NoError(t, err)
	out := g.Format(func(r rune) rune { return r })
	require.Equal(t, in+"\n", out)

	g2, err := ParseGrid(out, RuneCell)
	require.NoError(t, err)
	require.Equal(t, g, g2)
}

func TestParseGridMarkers(t *testing.T) {
	var start Pt
	g, err := ParseGrid("..\n.S", func(p Pt, r rune) (bool, error) {
		if r == 'S' {
			start = p
		}
		return r == '#', nil
	})
	require.NoError(t, err)
	require.Equal(t, Pt{1, 1}, start)
	require.Equal(t, Pt{2, 2}, g.Size())
}

func TestFindOne(t *testing.T) {
	g, err := ParseGrid("S.E\n...", RuneCell)
	require.NoError(t, err)

	p, err := FindOne(g, 'E')
	require.NoError(t, err)
	require.Equal(t, Pt{2, 0}, p)

	_, err = FindOne(g, 'X')
	require.ErrorIs(t, err, ErrMarker)

	_, err = FindOne(g, '.')
	require.ErrorIs(t, err, ErrMarker)
}

func TestDigitCell(t *testing.T) {
	g, err := ParseGrid("09\n45", DigitCell)
	require.NoError(t, err)
	require.Equal(t, Grid[int]{{0, 9}, {4, 5}}, g)
}
