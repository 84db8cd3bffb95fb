package chat

import "github.com/tendly/tenderchat/pkg/query"

// Result is the outcome of one chat turn: exactly success or failure.
// The constructors are the only way to build one, so the "exactly one of"
// invariant holds structurally.
type Result struct {
	question string
	sql      string
	rows     *query.Rows
	errText  string
	failed   bool
}

func Succeeded(question, sql string, rows *query.Rows) Result {
	return Result{question: question, sql: sql, rows: rows}
}

func Failed(question, errText string) Result {
	if errText == "" {
		errText = "unknown error"
	}
	return Result{question: question, errText: errText, failed: true}
}

func (r Result) OK() bool {
	return !r.failed
}

func (r Result) Question() string {
	return r.question
}

// SQL returns the executed statement; empty on the failure variant.
func (r Result) SQL() string {
	return r.sql
}

// Rows is nil on the failure variant.
func (r Result) Rows() *query.Rows {
	return r.rows
}

// ErrorMessage is non-empty exactly on the failure variant.
func (r Result) ErrorMessage() string {
	return r.errText
}
