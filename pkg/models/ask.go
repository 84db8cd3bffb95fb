package models

type AskRequest struct {
	Question string `json:"question"`
}

// AskResponse is the wire shape of a chat turn: a success flag, the rows or
// the error, and the original question echoed back.
type AskResponse struct {
	Success  bool       `json:"success"`
	Question string     `json:"question"`
	SQL      string     `json:"sql,omitempty"`
	Columns  []string   `json:"columns,omitempty"`
	Rows     [][]string `json:"rows,omitempty"`
	Error    string     `json:"error,omitempty"`
}
