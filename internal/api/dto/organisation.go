package dto

type OrganisationRequest struct {
	Name string `json:"name"`
}

func (r OrganisationRequest) Validate() map[string]string {
	errors := make(map[string]string)
	if r.Name == "" {
		errors["name"] = "Name is required"
	}
	return errors
}

type MemberRequest struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
}

// Validate requires user_id and role to be present. The role string is not
// checked against the ADMIN/USER enum; an unrecognised role simply grants no
// admin rights.
func (r MemberRequest) Validate() map[string]string {
	errors := make(map[string]string)
	if r.UserID == 0 {
		errors["user_id"] = "User ID is required"
	}
	if r.Role == "" {
		errors["role"] = "Role is required"
	}
	return errors
}

type RemoveMemberRequest struct {
	UserID uint `json:"user_id"`
}

func (r RemoveMemberRequest) Validate() map[string]string {
	errors := make(map[string]string)
	if r.UserID == 0 {
		errors["user_id"] = "User ID is required"
	}
	return errors
}
