package errors

import "github.com/pyast-go/pyparse/token"

// The types below give each diagnostic kind named by its own Go
// type instead of a bare formatted string, so a consumer can type-switch on
// them the way cue/errors structures its reported error kinds.

// ExpectedToken reports that `found` appeared where `expected` was required.
type ExpectedToken struct {
	Range    token.Range
	Found    string
	Expected string
	Message
}

func newAt(r token.Range, format string, args ...interface{}) Message {
	return NewMessagef(format, args...)
}

// NewExpectedToken builds an ExpectedToken diagnostic.
func NewExpectedToken(r token.Range, found, expected string) *ExpectedToken {
	return &ExpectedToken{
		Range: r, Found: found, Expected: expected,
		Message: newAt(r, "expected %s, found %s", expected, found),
	}
}

func (e *ExpectedToken) Position() token.Range { return e.Range }

// UnexpectedToken reports a token the grammar has no production for.
type UnexpectedToken struct {
	Range token.Range
	Found string
	Message
}

func NewUnexpectedToken(r token.Range, found string) *UnexpectedToken {
	return &UnexpectedToken{Range: r, Found: found, Message: NewMessagef("unexpected token %s", found)}
}
func (e *UnexpectedToken) Position() token.Range { return e.Range }

// SimpleStmtsInSameLine reports a simple statement directly followed by
// another without an intervening ';'.
type SimpleStmtsInSameLine struct {
	Range token.Range
	Message
}

func NewSimpleStmtsInSameLine(r token.Range) *SimpleStmtsInSameLine {
	return &SimpleStmtsInSameLine{Range: r, Message: NewMessagef("simple statements on the same line must be separated by semicolons")}
}
func (e *SimpleStmtsInSameLine) Position() token.Range { return e.Range }

// SimpleStmtAndCompoundStmtInSameLine reports a compound statement opened on
// the same logical line as a preceding simple statement.
type SimpleStmtAndCompoundStmtInSameLine struct {
	Range token.Range
	Message
}

func NewSimpleStmtAndCompoundStmtInSameLine(r token.Range) *SimpleStmtAndCompoundStmtInSameLine {
	return &SimpleStmtAndCompoundStmtInSameLine{Range: r, Message: NewMessagef("compound statements are not allowed on the same line as simple statements")}
}
func (e *SimpleStmtAndCompoundStmtInSameLine) Position() token.Range { return e.Range }

// StmtIsNotAsync reports `async` applied to a statement kind that cannot be
// asynchronous (anything but for/with/def).
type StmtIsNotAsync struct {
	Range token.Range
	Kind  string
	Message
}

func NewStmtIsNotAsync(r token.Range, kind string) *StmtIsNotAsync {
	return &StmtIsNotAsync{Range: r, Kind: kind, Message: NewMessagef("%s statement cannot be async", kind)}
}
func (e *StmtIsNotAsync) Position() token.Range { return e.Range }

// AssignmentError reports an invalid assignment target.
type AssignmentError struct {
	Range token.Range
	Message
}

func NewAssignmentError(r token.Range) *AssignmentError {
	return &AssignmentError{Range: r, Message: NewMessagef("cannot assign to this expression")}
}
func (e *AssignmentError) Position() token.Range { return e.Range }

// AugAssignmentError reports an invalid augmented-assignment target.
type AugAssignmentError struct {
	Range token.Range
	Message
}

func NewAugAssignmentError(r token.Range) *AugAssignmentError {
	return &AugAssignmentError{Range: r, Message: NewMessagef("invalid augmented assignment target")}
}
func (e *AugAssignmentError) Position() token.Range { return e.Range }

// NamedAssignmentError reports an invalid annotated-assignment target
// (e.g. a tuple).
type NamedAssignmentError struct {
	Range token.Range
	Message
}

func NewNamedAssignmentError(r token.Range) *NamedAssignmentError {
	return &NamedAssignmentError{Range: r, Message: NewMessagef("illegal target for annotation")}
}
func (e *NamedAssignmentError) Position() token.Range { return e.Range }

// DefaultArgumentError reports a non-default parameter following a default
// one in the same group.
type DefaultArgumentError struct {
	Range token.Range
	Message
}

func NewDefaultArgumentError(r token.Range) *DefaultArgumentError {
	return &DefaultArgumentError{Range: r, Message: NewMessagef("parameter without a default follows parameter with a default")}
}
func (e *DefaultArgumentError) Position() token.Range { return e.Range }

// PositionalArgumentError reports a positional argument following a keyword
// argument in a call.
type PositionalArgumentError struct {
	Range token.Range
	Message
}

func NewPositionalArgumentError(r token.Range) *PositionalArgumentError {
	return &PositionalArgumentError{Range: r, Message: NewMessagef("positional argument follows keyword argument")}
}
func (e *PositionalArgumentError) Position() token.Range { return e.Range }

// UnpackedArgumentError reports a *starred argument following a **unpack.
type UnpackedArgumentError struct {
	Range token.Range
	Message
}

func NewUnpackedArgumentError(r token.Range) *UnpackedArgumentError {
	return &UnpackedArgumentError{Range: r, Message: NewMessagef("iterable argument unpacking follows keyword argument unpacking")}
}
func (e *UnpackedArgumentError) Position() token.Range { return e.Range }

// ParamFollowsVarKeywordParam reports a parameter declared after **kwargs.
type ParamFollowsVarKeywordParam struct {
	Range token.Range
	Message
}

func NewParamFollowsVarKeywordParam(r token.Range) *ParamFollowsVarKeywordParam {
	return &ParamFollowsVarKeywordParam{Range: r, Message: NewMessagef("parameter follows var-keyword parameter")}
}
func (e *ParamFollowsVarKeywordParam) Position() token.Range { return e.Range }

// EmptySlice reports `x[]`, which has no valid index or slice reading.
type EmptySlice struct {
	Range token.Range
	Message
}

func NewEmptySlice(r token.Range) *EmptySlice {
	return &EmptySlice{Range: r, Message: NewMessagef("subscript cannot be empty")}
}
func (e *EmptySlice) Position() token.Range { return e.Range }

// InvalidMatchPatternLiteral reports a literal that cannot appear in the
// given pattern position.
type InvalidMatchPatternLiteral struct {
	Range   token.Range
	Pattern string
	Message
}

func NewInvalidMatchPatternLiteral(r token.Range, pattern string) *InvalidMatchPatternLiteral {
	return &InvalidMatchPatternLiteral{Range: r, Pattern: pattern, Message: NewMessagef("invalid literal in %s pattern", pattern)}
}
func (e *InvalidMatchPatternLiteral) Position() token.Range { return e.Range }

// FStringErrorKind enumerates the distinct ways an f-string body can be
// malformed.
type FStringErrorKind int

const (
	FStringUnclosedLBrace FStringErrorKind = iota
	FStringInvalidConversion
	FStringUnterminatedString
	FStringLambdaWithoutParentheses
	FStringEmptyExpression
	FStringMismatchedParen
)

var fstringErrMsgs = map[FStringErrorKind]string{
	FStringUnclosedLBrace:           "f-string: expecting '}'",
	FStringInvalidConversion:        "f-string: invalid conversion character",
	FStringUnterminatedString:       "f-string: unterminated string",
	FStringLambdaWithoutParentheses: "f-string: lambda expressions are not allowed without parentheses",
	FStringEmptyExpression:          "f-string: empty expression not allowed",
	FStringMismatchedParen:          "f-string: mismatched '('",
}

// FStringError reports a malformed f-string construct.
type FStringError struct {
	Range token.Range
	Kind  FStringErrorKind
	Message
}

func NewFStringError(r token.Range, kind FStringErrorKind) *FStringError {
	msg := fstringErrMsgs[kind]
	if msg == "" {
		msg = "f-string: invalid syntax"
	}
	return &FStringError{Range: r, Kind: kind, Message: NewMessagef("%s", msg)}
}
func (e *FStringError) Position() token.Range { return e.Range }

// Lexical wraps a diagnostic produced by the (out-of-scope) lexer that the
// token source passed through untouched (Finish()).
type Lexical struct {
	Range token.Range
	Message
}

func NewLexical(r token.Range, format string, args ...interface{}) *Lexical {
	return &Lexical{Range: r, Message: NewMessagef(format, args...)}
}
func (e *Lexical) Position() token.Range { return e.Range }

// OtherError is the catch-all for messages that don't warrant a dedicated
// Kind -- recovery-skip notices, "unexpected indentation", and similar.
type OtherError struct {
	Range token.Range
	Message
}

func (e *OtherError) Position() token.Range { return e.Range }
