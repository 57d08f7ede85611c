package models

// AssignmentStatus enumerates the states of an assignment.
type AssignmentStatus int

const (
	AssignmentToDo AssignmentStatus = iota
	AssignmentInProgress
	AssignmentDone
)

// Valid reports whether the status is within the enum range.
func (s AssignmentStatus) Valid() bool {
	return s >= AssignmentToDo && s <= AssignmentDone
}

// NoParentProject is the sentinel parent project id meaning "not attached to
// any project".
const NoParentProject = 0

// Assignment is the persisted assignment entity. An assignment optionally
// references its parent project by id; the project holds no back reference.
type Assignment struct {
	ID              int              `json:"id"`
	Name            string           `json:"name"`
	Status          AssignmentStatus `json:"status"`
	Description     string           `json:"description"`
	Priority        int              `json:"priority"`
	ParentProjectID int              `json:"parentProjectId"`
}

// AssignmentBody carries the writable assignment fields a client may supply.
type AssignmentBody struct {
	Name            string           `json:"name"`
	Status          AssignmentStatus `json:"status"`
	Description     string           `json:"description"`
	Priority        int              `json:"priority"`
	ParentProjectID int              `json:"parentProjectId"`
}

// BodyToAssignment maps a body onto a full assignment entity with the given id.
func BodyToAssignment(body AssignmentBody, id int) *Assignment {
	return &Assignment{
		ID:              id,
		Name:            body.Name,
		Status:          body.Status,
		Description:     body.Description,
		Priority:        body.Priority,
		ParentProjectID: body.ParentProjectID,
	}
}

// AssignmentToBody maps an assignment entity back to its writable fields.
func AssignmentToBody(a *Assignment) AssignmentBody {
	return AssignmentBody{
		Name:            a.Name,
		Status:          a.Status,
		Description:     a.Description,
		Priority:        a.Priority,
		ParentProjectID: a.ParentProjectID,
	}
}
