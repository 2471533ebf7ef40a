package profiles

// ContactPatch carries the contact fields a user may edit. Nil fields are
// left untouched remotely.
type ContactPatch struct {
	FullName  *string `json:"full_name,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}
