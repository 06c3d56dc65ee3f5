// Package render draws boards for a terminal.
package render

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
)

const fileLabels = "A B C D E F G H"

// glyphs maps each kind to its white and black chess symbols.
var glyphs = map[chess.Kind][2]string{
	chess.King:   {"♔", "♚"},
	chess.Queen:  {"♕", "♛"},
	chess.Rook:   {"♖", "♜"},
	chess.Bishop: {"♗", "♝"},
	chess.Knight: {"♘", "♞"},
	chess.Pawn:   {"♙", "♟"},
}

// Renderer writes boards to a writer using a display configuration.
type Renderer struct {
	w     io.Writer
	cfg   *config.DisplayConfig
	white *color.Color
	black *color.Color
	label *color.Color
}

// New creates a Renderer. Colouring follows cfg.Colour regardless of
// whether w is a terminal.
func New(w io.Writer, cfg *config.DisplayConfig) *Renderer {
	r := &Renderer{
		w:     w,
		cfg:   cfg,
		white: color.New(color.FgHiWhite, color.Bold),
		black: color.New(color.FgRed, color.Bold),
		label: color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{r.white, r.black, r.label} {
		if cfg.Colour {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// Glyph returns the uncoloured symbol for p.
func (r *Renderer) Glyph(p chess.Piece) string {
	if r.cfg.Unicode {
		if g, ok := glyphs[p.Kind]; ok {
			if p.Colour == chess.White {
				return g[0]
			}
			return g[1]
		}
	}
	return string(p.Letter())
}

// Board draws the board with rank 8 at the top.
func (r *Renderer) Board(board *chess.Board) error {
	bw := bufio.NewWriter(r.w)

	if r.cfg.Coordinates {
		r.files(bw)
		r.border(bw)
	}
	for row := 0; row < chess.BoardSize; row++ {
		rank := strconv.Itoa(chess.BoardSize - row)
		if r.cfg.Coordinates {
			bw.WriteString(r.label.Sprint(rank))
			bw.WriteString("|")
		}
		for col := 0; col < chess.BoardSize; col++ {
			bw.WriteString(r.square(board, chess.Sq(row, col)))
			bw.WriteByte(' ')
		}
		if r.cfg.Coordinates {
			bw.WriteString("|")
			bw.WriteString(r.label.Sprint(rank))
		}
		bw.WriteByte('\n')
	}
	if r.cfg.Coordinates {
		r.border(bw)
		r.files(bw)
	}

	return bw.Flush()
}

// String returns the drawing of board as a string.
func (r *Renderer) String(board *chess.Board) string {
	var sb strings.Builder
	saved := r.w
	r.w = &sb
	_ = r.Board(board)
	r.w = saved
	return sb.String()
}

func (r *Renderer) square(board *chess.Board, sq chess.Square) string {
	p, ok := board.Occupant(sq)
	if !ok {
		return r.cfg.Empty
	}
	if p.Colour == chess.White {
		return r.white.Sprint(r.Glyph(p))
	}
	return r.black.Sprint(r.Glyph(p))
}

func (r *Renderer) files(bw *bufio.Writer) {
	bw.WriteString("  ")
	bw.WriteString(r.label.Sprint(fileLabels))
	bw.WriteByte('\n')
}

func (r *Renderer) border(bw *bufio.Writer) {
	bw.WriteString("  ")
	bw.WriteString(strings.Repeat("-", 2*chess.BoardSize))
	bw.WriteByte('\n')
}
