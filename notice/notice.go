// ABOUTME: Redirect-encoded admin notices.
// ABOUTME: A notice lives for exactly one redirect round-trip in query params.

package notice

import "net/url"

// Query parameter names used on the redirect target.
const (
	ParamNotice = "notice"
	ParamType   = "notice_type"
	ParamResult = "result"
)

// Params lists every notice parameter, for stripping before re-encoding.
var Params = []string{ParamNotice, ParamType, ParamResult}

// Notice is the transient outcome of an action. It is encoded into the
// redirect URL after an action runs and decoded on the next page load; it is
// never stored anywhere else.
type Notice struct {
	// Action is the action id that produced the notice.
	Action string

	Success bool

	// Result carries the item id or processed count, free-form.
	Result string
}

// Encode writes the notice into query values, replacing any previous notice.
func (n Notice) Encode(v url.Values) {
	v.Set(ParamNotice, n.Action)
	if n.Success {
		v.Set(ParamType, "success")
	} else {
		v.Set(ParamType, "error")
	}
	if n.Result != "" {
		v.Set(ParamResult, n.Result)
	} else {
		v.Del(ParamResult)
	}
}

// Decode reads a notice back out of query values. Returns nil when the
// request carries none.
func Decode(v url.Values) *Notice {
	action := v.Get(ParamNotice)
	if action == "" {
		return nil
	}
	return &Notice{
		Action:  action,
		Success: v.Get(ParamType) != "error",
		Result:  v.Get(ParamResult),
	}
}

// Strip removes all notice parameters so they do not survive past one page
// load when links are rebuilt.
func Strip(v url.Values) {
	for _, p := range Params {
		v.Del(p)
	}
}
