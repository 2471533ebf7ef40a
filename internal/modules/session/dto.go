package session

// User-facing messages for failures the store detects itself. Generic remote
// failures surface the remote message verbatim.
const (
	MsgTooManyAttempts = "Too many signup attempts. Please try again in a few minutes."
	MsgUnexpected      = "Something went wrong. Please try again."
)

// ActionResult is what every session action settles to. Actions never panic
// through to the caller: failures land in Err so the UI can render inline.
type ActionResult struct {
	Err string `json:"error,omitempty"`
}

func (r ActionResult) OK() bool { return r.Err == "" }

func failure(msg string) ActionResult { return ActionResult{Err: msg} }

type SignUpParams struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"full_name" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=buyer seller"`
}

type LoginParams struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
