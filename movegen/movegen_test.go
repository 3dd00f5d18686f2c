package movegen

import (
	"testing"

	"golang.org/x/exp/slices"
)

func mustFEN(t testing.TB, fen string) (Board, Color) {
	t.Helper()
	b, turn, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return b, turn
}

func squares(t testing.TB, names ...string) []Square {
	t.Helper()
	out := make([]Square, 0, len(names))
	for _, n := range names {
		sq, err := ParseSquare(n)
		if err != nil {
			t.Fatalf("ParseSquare(%q): %v", n, err)
		}
		out = append(out, sq)
	}
	return out
}

func sameSquares(got, want []Square) bool {
	got = slices.Clone(got)
	want = slices.Clone(want)
	slices.Sort(got)
	slices.Sort(want)
	return slices.Equal(got, want)
}

func TestGenerateInitialPosition(t *testing.T) {
	b := NewBoard()
	for _, c := range []Color{White, Black} {
		moves, check := Generate(b, c)
		if check {
			t.Errorf("%s: unexpected check flag", c)
		}
		if got := moves.Count(); got != 20 {
			t.Errorf("%s: %d moves, want 20", c, got)
		}
		if got := len(moves); got != 16 {
			t.Errorf("%s: %d origin squares, want 16", c, got)
		}
	}

	moves, _ := Generate(b, White)
	if got, want := moves[MustSquare("b1")], squares(t, "a3", "c3"); !sameSquares(got, want) {
		t.Errorf("b1 knight: %v, want %v", got, want)
	}
	if got, want := moves[MustSquare("e2")], squares(t, "e3", "e4"); !sameSquares(got, want) {
		t.Errorf("e2 pawn: %v, want %v", got, want)
	}
	for _, name := range []string{"a1", "c1", "d1", "e1"} {
		dests, ok := moves[MustSquare(name)]
		if !ok || len(dests) != 0 {
			t.Errorf("%s: %v (present %v), want an empty entry", name, dests, ok)
		}
	}
}

func TestPieceMoves(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		from  string
		want  []string
		check bool
	}{
		{
			name: "rook enclosed by own pieces",
			fen:  "4k3/8/8/3P4/2PRP3/3P4/8/4K3 w - - 0 1",
			from: "d4",
			want: nil,
		},
		{
			name: "rook on open board",
			fen:  "4k3/8/8/8/8/8/8/R5K1 w - - 0 1",
			from: "a1",
			want: []string{"a2", "a3", "a4", "a5", "a6", "a7", "a8", "b1", "c1", "d1", "e1", "f1"},
		},
		{
			name:  "rook gives check along the file",
			fen:   "4k3/8/8/8/8/8/8/4R1K1 w - - 0 1",
			from:  "e1",
			want:  []string{"e2", "e3", "e4", "e5", "e6", "e7", "e8", "a1", "b1", "c1", "d1", "f1"},
			check: true,
		},
		{
			name: "bishop stops at own piece, captures opponent",
			fen:  "4k3/8/8/5p2/8/3B4/8/1P2K3 w - - 0 1",
			from: "d3",
			want: []string{"e4", "f5", "c2", "e2", "f1", "c4", "b5", "a6"},
		},
		{
			name: "queen in the corner",
			fen:  "4k3/8/8/8/8/8/1P6/QP2K3 w - - 0 1",
			from: "a1",
			want: []string{"a2", "a3", "a4", "a5", "a6", "a7", "a8"},
		},
		{
			name: "knight in the corner",
			fen:  "4k3/8/8/8/8/8/8/N3K3 w - - 0 1",
			from: "a1",
			want: []string{"b3", "c2"},
		},
		{
			name: "knight in the center",
			fen:  "4k3/8/8/8/3N4/8/8/4K3 w - - 0 1",
			from: "d4",
			want: []string{"c6", "e6", "f5", "f3", "c2", "e2", "b5", "b3"},
		},
		{
			name:  "knight gives check",
			fen:   "4k3/8/3N4/8/8/8/8/6K1 w - - 0 1",
			from:  "d6",
			want:  []string{"c8", "e8", "b7", "f7", "b5", "f5", "c4", "e4"},
			check: true,
		},
		{
			name: "king steps into attacked squares",
			fen:  "4k3/8/8/8/8/8/r7/4K3 w - - 0 1",
			from: "e1",
			want: []string{"d1", "f1", "d2", "e2", "f2"},
		},
		{
			name: "unmoved pawn",
			fen:  "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1",
			from: "e2",
			want: []string{"e3", "e4"},
		},
		{
			name: "moved pawn",
			fen:  "4k3/8/8/8/8/4P3/8/4K3 w - - 0 1",
			from: "e3",
			want: []string{"e4"},
		},
		{
			name: "double step blocked on the first square",
			fen:  "4k3/8/8/8/8/4n3/4P3/4K3 w - - 0 1",
			from: "e2",
			want: nil,
		},
		{
			name: "double step blocked on the second square",
			fen:  "4k3/8/8/8/4n3/8/4P3/4K3 w - - 0 1",
			from: "e2",
			want: []string{"e3"},
		},
		{
			name: "white pawn capture does not wrap from the a-file",
			fen:  "4k3/8/8/8/7p/1p6/P7/4K3 w - - 0 1",
			from: "a2",
			want: []string{"a3", "a4", "b3"},
		},
		{
			name: "black pawn capture does not wrap from the h-file",
			fen:  "4k3/7p/6P1/N7/8/8/8/4K3 b - - 0 1",
			from: "h7",
			want: []string{"h6", "h5", "g6"},
		},
		{
			name:  "pawn gives check",
			fen:   "4k3/3P4/8/8/8/8/8/6K1 w - - 0 1",
			from:  "d7",
			want:  []string{"d8", "e8"},
			check: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, turn := mustFEN(t, tt.fen)
			from := MustSquare(tt.from)
			p, ok := b.At(from)
			if !ok {
				t.Fatalf("no piece on %s", tt.from)
			}
			got, check := PieceMoves(b, from, p, Unrestricted)
			if want := squares(t, tt.want...); !sameSquares(got, want) {
				t.Errorf("destinations %v, want %v", got, want)
			}
			if check != tt.check {
				t.Errorf("check flag %v, want %v", check, tt.check)
			}

			moves, genCheck := Generate(b, turn)
			if !sameSquares(moves[from], got) {
				t.Errorf("Generate disagrees with PieceMoves: %v vs %v", moves[from], got)
			}
			if tt.check && !genCheck {
				t.Errorf("Generate lost the check flag")
			}
		})
	}
}

func TestPinnedPieces(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		from string
		want []string
	}{
		{
			name: "bishop pinned on a diagonal slides along it",
			fen:  "4k3/8/8/q7/8/8/3B4/4K3 w - - 0 1",
			from: "d2",
			want: []string{"c3", "b4", "a5"},
		},
		{
			name: "bishop pinned on a file by a rook cannot move",
			fen:  "k3r3/8/8/8/8/8/4B3/4K3 w - - 0 1",
			from: "e2",
			want: nil,
		},
		{
			name: "rook pinned on a file keeps the file",
			fen:  "k3r3/8/8/8/8/8/4R3/4K3 w - - 0 1",
			from: "e2",
			want: []string{"e3", "e4", "e5", "e6", "e7", "e8"},
		},
		{
			name: "knight pinned on a file cannot move",
			fen:  "4k3/4r3/8/8/8/8/4N3/4K3 w - - 0 1",
			from: "e2",
			want: nil,
		},
		{
			name: "pawn pinned on a file pushes but never captures",
			fen:  "4k3/4r3/8/8/8/3n1n2/4P3/4K3 w - - 0 1",
			from: "e2",
			want: []string{"e3", "e4"},
		},
		{
			name: "pawn pinned on a diagonal may only take the pinner",
			fen:  "4k3/8/8/8/8/2b5/3P4/4K3 w - - 0 1",
			from: "d2",
			want: []string{"c3"},
		},
		{
			name: "black pawn pinned on a file still advances",
			fen:  "4k3/4p3/8/8/8/8/8/4RK2 b - - 0 1",
			from: "e7",
			want: []string{"e6", "e5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, turn := mustFEN(t, tt.fen)
			moves, _ := Generate(b, turn)
			from := MustSquare(tt.from)
			got, ok := moves[from]
			if !ok {
				t.Fatalf("no entry for %s", tt.from)
			}
			if want := squares(t, tt.want...); !sameSquares(got, want) {
				t.Errorf("destinations %v, want %v", got, want)
			}
		})
	}
}

func TestInCheck(t *testing.T) {
	b, _ := mustFEN(t, "4k3/8/8/8/8/8/8/4R1K1 w - - 0 1")
	if !InCheck(b, Black) {
		t.Errorf("black king on the rook's file should be in check")
	}
	if InCheck(b, White) {
		t.Errorf("white is not attacked")
	}
	if InCheck(NewBoard(), White) || InCheck(NewBoard(), Black) {
		t.Errorf("no check in the initial position")
	}
}

func TestApplyMarksPawnsAndCaptures(t *testing.T) {
	b, _ := mustFEN(t, "4k3/8/8/8/3p4/8/4P3/4K3 w - - 0 1")
	moved, captured := b.Apply(Move{From: MustSquare("e2"), To: MustSquare("e4")})
	if moved.Kind != Pawn || !moved.Moved {
		t.Errorf("moved piece %+v, want a pawn marked as moved", moved)
	}
	if !captured.Empty() {
		t.Errorf("captured %+v on an empty square", captured)
	}
	if _, ok := b.At(MustSquare("e2")); ok {
		t.Errorf("origin square still occupied")
	}

	_, captured = b.Apply(Move{From: MustSquare("d4"), To: MustSquare("e3")})
	if captured.Kind != NoKind {
		t.Errorf("d4xe3 captured %+v", captured)
	}
	moved, captured = b.Apply(Move{From: MustSquare("e1"), To: MustSquare("e3")})
	if moved.Kind != King || captured.Kind != Pawn || captured.Color != Black {
		t.Errorf("Kxe3: moved %+v captured %+v", moved, captured)
	}
	if b.Count(Black) != 1 || b.Count(White) != 2 {
		t.Errorf("piece counts white=%d black=%d", b.Count(White), b.Count(Black))
	}
}

func TestPromotes(t *testing.T) {
	tests := []struct {
		p    Piece
		sq   string
		want bool
	}{
		{Piece{Kind: Pawn, Color: White}, "b8", true},
		{Piece{Kind: Pawn, Color: White}, "b1", false},
		{Piece{Kind: Pawn, Color: Black}, "h1", true},
		{Piece{Kind: Pawn, Color: Black}, "h8", false},
		{Piece{Kind: Rook, Color: White}, "a8", false},
	}
	for _, tt := range tests {
		if got := Promotes(tt.p, MustSquare(tt.sq)); got != tt.want {
			t.Errorf("Promotes(%v, %s) = %v, want %v", tt.p, tt.sq, got, tt.want)
		}
	}
}

func TestMovesList(t *testing.T) {
	moves, _ := Generate(NewBoard(), White)
	list := moves.List()
	if len(list) != 20 {
		t.Fatalf("List has %d moves", len(list))
	}
	if list[0].String() != "a2a4" || list[len(list)-1].String() != "g1h3" {
		t.Errorf("ordering: first %s last %s", list[0], list[len(list)-1])
	}
	if !moves.Contains(MustSquare("g1"), MustSquare("f3")) || moves.Contains(MustSquare("g1"), MustSquare("g3")) {
		t.Errorf("Contains is wrong for g1")
	}
	sqs := moves.Squares()
	if !slices.IsSorted(sqs) || len(sqs) != 16 {
		t.Errorf("Squares() = %v", sqs)
	}
}

func BenchmarkGenerateInitial(b *testing.B) {
	board := NewBoard()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Generate(board, White)
	}
}
