package domain

// CommandOp names an operation the host invokes on the view
type CommandOp string

const (
	OpUpdate CommandOp = "update"
	OpAppend CommandOp = "append"
	OpFocus  CommandOp = "focus"
	OpSetPos CommandOp = "setpos"
	OpSubPos CommandOp = "subpos"
)

// Command is the interface for all host-issued render commands
type Command interface {
	Op() CommandOp
}

// UpdateCommand replaces the whole result list
type UpdateCommand struct {
	HTML string
}

func (c UpdateCommand) Op() CommandOp { return OpUpdate }

// AppendCommand adds a page of results. Pos is nil when selection must not move.
type AppendCommand struct {
	Pos    *int
	HTML   string
	Smooth bool
}

func (c AppendCommand) Op() CommandOp { return OpAppend }

// FocusCommand moves input focus back to the search field
type FocusCommand struct{}

func (c FocusCommand) Op() CommandOp { return OpFocus }

// SetPosCommand highlights a result
type SetPosCommand struct {
	Pos    int
	Smooth bool
}

func (c SetPosCommand) Op() CommandOp { return OpSetPos }

// SubPosCommand opens a result's actions and highlights one of them
type SubPosCommand struct {
	Pos int
	Sub int
}

func (c SubPosCommand) Op() CommandOp { return OpSubPos }
