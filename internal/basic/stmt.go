package basic

type Stmt interface {
	Accept(visitor StmtVisitor) (interface{}, error)
}
type StmtVisitor interface {
	VisitRemStmt(stmt *RemStmt) (interface{}, error)
	VisitLetStmt(stmt *LetStmt) (interface{}, error)
	VisitPrintStmt(stmt *PrintStmt) (interface{}, error)
	VisitInputStmt(stmt *InputStmt) (interface{}, error)
	VisitEndStmt(stmt *EndStmt) (interface{}, error)
	VisitGotoStmt(stmt *GotoStmt) (interface{}, error)
	VisitIfStmt(stmt *IfStmt) (interface{}, error)
}

type RemStmt struct{}

func NewRemStmt() *RemStmt {
	return &RemStmt{}
}
func (stmt *RemStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitRemStmt(stmt)
}

type LetStmt struct {
	Name string
	Expr Expr
}

func NewLetStmt(Name string, Expr Expr) *LetStmt {
	return &LetStmt{Name, Expr}
}
func (stmt *LetStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitLetStmt(stmt)
}

type PrintStmt struct {
	Expr Expr
}

func NewPrintStmt(Expr Expr) *PrintStmt {
	return &PrintStmt{Expr}
}
func (stmt *PrintStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitPrintStmt(stmt)
}

type InputStmt struct {
	Name string
}

func NewInputStmt(Name string) *InputStmt {
	return &InputStmt{Name}
}
func (stmt *InputStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitInputStmt(stmt)
}

type EndStmt struct{}

func NewEndStmt() *EndStmt {
	return &EndStmt{}
}
func (stmt *EndStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitEndStmt(stmt)
}

type GotoStmt struct {
	Target int
}

func NewGotoStmt(Target int) *GotoStmt {
	return &GotoStmt{Target}
}
func (stmt *GotoStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitGotoStmt(stmt)
}

// IfStmt jumps to Target when "Lhs Op Rhs" holds, with Op one of = < >.
type IfStmt struct {
	Lhs    Expr
	Op     string
	Rhs    Expr
	Target int
}

func NewIfStmt(Lhs Expr, Op string, Rhs Expr, Target int) *IfStmt {
	return &IfStmt{Lhs, Op, Rhs, Target}
}
func (stmt *IfStmt) Accept(visitor StmtVisitor) (interface{}, error) {
	return visitor.VisitIfStmt(stmt)
}

type controlKind int

const (
	controlNext controlKind = iota
	controlJump
	controlHalt
)

// Control tells the run loop where to continue after a statement: the next
// line in order, a jump target, or nowhere.
type Control struct {
	kind   controlKind
	target int
}

var (
	fallThrough = Control{kind: controlNext}
	halt        = Control{kind: controlHalt}
)

func jumpTo(line int) Control {
	return Control{kind: controlJump, target: line}
}
