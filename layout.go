package canvasui

// BlockType defines the flow direction of a layout block.
type BlockType uint8

const (
	Row    BlockType = iota // Children flow left to right
	Column                  // Children flow top to bottom
)

func (t BlockType) String() string {
	if t == Column {
		return "column"
	}
	return "row"
}

// Block is one open layout region.
type Block struct {
	Canvas  Canvas
	Rect    Rect  // Requested rect; negative W or H means auto-size that axis
	Fill    Rect  // Accumulated size of everything placed so far
	Anchor  Point // Where the next child goes
	Padding int   // Gap added after every child along the flow axis
	Type    BlockType
}

// Flow places a child of the given size: the anchor advances along the flow
// axis by size+padding, the fill grows by the same amount, and the cross-axis
// fill keeps the running maximum.
func (b *Block) Flow(size Size) {
	switch b.Type {
	case Row:
		b.Anchor.X += size.W + b.Padding
		b.Fill.W += size.W + b.Padding
		b.Fill.H = max(b.Fill.H, size.H)
	case Column:
		b.Anchor.Y += size.H + b.Padding
		b.Fill.H += size.H + b.Padding
		b.Fill.W = max(b.Fill.W, size.W)
	}
}

// Resolved returns the block's final size: each requested dimension when it
// is not negative, else the accumulated fill.
func (b *Block) Resolved() Size {
	size := Size{W: b.Rect.W, H: b.Rect.H}
	if size.W < 0 {
		size.W = b.Fill.W
	}
	if size.H < 0 {
		size.H = b.Fill.H
	}
	return size
}

func newBlock(t BlockType, c Canvas, x, y, w, h, padding int) Block {
	return Block{
		Canvas:  c,
		Rect:    Rect{X: x, Y: y, W: w, H: h},
		Fill:    Rect{X: x, Y: y},
		Anchor:  Point{X: x, Y: y},
		Padding: padding,
		Type:    t,
	}
}

// blockStack holds the open blocks. It grows on demand; maxDepth > 0 caps it.
type blockStack struct {
	blocks   []Block
	maxDepth int
}

func (s *blockStack) Len() int { return len(s.blocks) }

func (s *blockStack) push(b Block) error {
	if s.maxDepth > 0 && len(s.blocks) >= s.maxDepth {
		return ErrStackOverflow
	}
	s.blocks = append(s.blocks, b)
	return nil
}

// top returns the innermost open block, or nil.
func (s *blockStack) top() *Block {
	if len(s.blocks) == 0 {
		return nil
	}
	return &s.blocks[len(s.blocks)-1]
}

// pop removes the innermost block if it has type t.
func (s *blockStack) pop(t BlockType) (Block, error) {
	b := s.top()
	if b == nil {
		return Block{}, ErrEmptyStack
	}
	if b.Type != t {
		return Block{}, ErrMismatchedEnd
	}
	popped := *b
	s.blocks[len(s.blocks)-1] = Block{}
	s.blocks = s.blocks[:len(s.blocks)-1]
	return popped, nil
}

func (s *blockStack) reset() {
	clear(s.blocks)
	s.blocks = s.blocks[:0]
}

// BeginRow opens a row at an explicit position on c. Pass negative w or h to
// size the row from its content. Close it with EndRow.
func (rt *Runtime) BeginRow(c Canvas, x, y, w, h, padding int) error {
	return rt.begin("BeginRow", newBlock(Row, c, x, y, w, h, padding))
}

// BeginColumn opens a column at an explicit position on c. Close it with
// EndColumn.
func (rt *Runtime) BeginColumn(c Canvas, x, y, w, h, padding int) error {
	return rt.begin("BeginColumn", newBlock(Column, c, x, y, w, h, padding))
}

// BeginRowFlow opens a row at the anchor of the current block.
func (rt *Runtime) BeginRowFlow(w, h, padding int) error {
	return rt.beginFlow("BeginRowFlow", Row, w, h, padding)
}

// BeginColumnFlow opens a column at the anchor of the current block.
func (rt *Runtime) BeginColumnFlow(w, h, padding int) error {
	return rt.beginFlow("BeginColumnFlow", Column, w, h, padding)
}

func (rt *Runtime) beginFlow(op string, t BlockType, w, h, padding int) error {
	parent := rt.stack.top()
	if parent == nil {
		return rt.fail(usageError(op, ErrEmptyStack, ""))
	}
	return rt.begin(op, newBlock(t, parent.Canvas, parent.Anchor.X, parent.Anchor.Y, w, h, padding))
}

func (rt *Runtime) begin(op string, b Block) error {
	if err := rt.stack.push(b); err != nil {
		return rt.fail(usageError(op, err, ""))
	}
	return nil
}

// EndRow closes the innermost block, which must be a row, and flows its
// resolved size into the parent block.
func (rt *Runtime) EndRow() error {
	return rt.end("EndRow", Row)
}

// EndColumn closes the innermost block, which must be a column.
func (rt *Runtime) EndColumn() error {
	return rt.end("EndColumn", Column)
}

func (rt *Runtime) end(op string, t BlockType) error {
	b, err := rt.stack.pop(t)
	if err != nil {
		detail := ""
		if top := rt.stack.top(); top != nil {
			detail = "open block is a " + top.Type.String()
		}
		return rt.fail(usageError(op, err, detail))
	}
	if parent := rt.stack.top(); parent != nil {
		parent.Flow(b.Resolved())
	}
	return nil
}

// Space flows an empty n×n footprint into the current block.
func (rt *Runtime) Space(n int) error {
	b := rt.stack.top()
	if b == nil {
		return rt.fail(usageError("Space", ErrEmptyStack, ""))
	}
	b.Flow(Size{W: n, H: n})
	return nil
}

// Depth returns the number of open blocks.
func (rt *Runtime) Depth() int {
	return rt.stack.Len()
}

// Top returns a copy of the innermost open block.
func (rt *Runtime) Top() (Block, bool) {
	b := rt.stack.top()
	if b == nil {
		return Block{}, false
	}
	return *b, true
}

// flowBlock returns the block a flowing widget draws into, recording
// ErrEmptyStack when there is none.
func (rt *Runtime) flowBlock(op string) *Block {
	b := rt.stack.top()
	if b == nil {
		rt.record(usageError(op, ErrEmptyStack, ""))
	}
	return b
}

// screenBlock points the implicit root block at c and returns it. Widgets in
// explicit-position form draw through it.
func (rt *Runtime) screenBlock(c Canvas) *Block {
	rt.screen.Canvas = c
	return &rt.screen
}
