package basic

type Expr interface {
	Accept(visitor ExprVisitor) (interface{}, error)
}
type ExprVisitor interface {
	VisitConstantExpr(expr *ConstantExpr) (interface{}, error)
	VisitIdentifierExpr(expr *IdentifierExpr) (interface{}, error)
	VisitCompoundExpr(expr *CompoundExpr) (interface{}, error)
}

type ConstantExpr struct {
	Value int64
}

func NewConstantExpr(Value int64) *ConstantExpr {
	return &ConstantExpr{Value}
}
func (expr *ConstantExpr) Accept(visitor ExprVisitor) (interface{}, error) {
	return visitor.VisitConstantExpr(expr)
}

type IdentifierExpr struct {
	Name string
}

func NewIdentifierExpr(Name string) *IdentifierExpr {
	return &IdentifierExpr{Name}
}
func (expr *IdentifierExpr) Accept(visitor ExprVisitor) (interface{}, error) {
	return visitor.VisitIdentifierExpr(expr)
}

// CompoundExpr applies one of the operators + - * / = to its operands. It
// exclusively owns both of them.
type CompoundExpr struct {
	Op  string
	Lhs Expr
	Rhs Expr
}

func NewCompoundExpr(Op string, Lhs Expr, Rhs Expr) *CompoundExpr {
	return &CompoundExpr{Op, Lhs, Rhs}
}
func (expr *CompoundExpr) Accept(visitor ExprVisitor) (interface{}, error) {
	return visitor.VisitCompoundExpr(expr)
}
