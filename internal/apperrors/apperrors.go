// Package apperrors defines the error vocabulary of the shipment API. Every
// error carries a fixed HTTP status and renders under a top-level "detail" key,
// either as a location-tagged object or as a bare message string.
package apperrors

// Detail is the location-tagged payload attached to validation failures.
type Detail struct {
	Loc   []string `json:"loc"`
	Msg   string   `json:"msg"`
	Param []string `json:"param,omitempty"`
	Type  string   `json:"type"`
}

// Error is an application error with a fixed HTTP status. When Loc is set the
// response detail is a Detail object, otherwise the bare message string.
type Error struct {
	Status int
	Msg    string
	Loc    []string
	Param  []string
}

func (e *Error) Error() string { return e.Msg }

// Body returns the value serialized under the response's "detail" key.
func (e *Error) Body() any {
	if len(e.Loc) == 0 {
		return e.Msg
	}
	return Detail{Loc: e.Loc, Msg: e.Msg, Param: e.Param, Type: "value_error"}
}
