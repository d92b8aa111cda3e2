// Package access decides whether an actor may perform an action on a resource.
// Decisions are binary: nil grants, domain.ErrUnauthorized rejects an anonymous
// actor, domain.ErrForbidden rejects an authenticated but under-privileged one,
// and domain.ErrMethodNotAllowed marks verbs a resource does not expose.
package access

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/yamdb-backend/internal/domain"
)

// Action is the kind of operation requested on a resource.
type Action int

const (
	ActionList Action = iota
	ActionRetrieve
	ActionCreate
	ActionUpdate
	ActionDelete
)

func (a Action) String() string {
	switch a {
	case ActionList:
		return "list"
	case ActionRetrieve:
		return "retrieve"
	case ActionCreate:
		return "create"
	case ActionUpdate:
		return "update"
	case ActionDelete:
		return "delete"
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// IsSafe reports whether the action only reads.
func (a Action) IsSafe() bool {
	return a == ActionList || a == ActionRetrieve
}

// ActionFromMethod maps an HTTP method to an action. detail is true for
// per-object URLs. Unknown methods map to ok=false.
func ActionFromMethod(method string, detail bool) (Action, bool) {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		if detail {
			return ActionRetrieve, true
		}
		return ActionList, true
	case http.MethodPost:
		return ActionCreate, true
	case http.MethodPut, http.MethodPatch:
		return ActionUpdate, true
	case http.MethodDelete:
		return ActionDelete, true
	}
	return 0, false
}

// isAdmin reports whether the actor holds administrative rights.
// Superusers are administrators regardless of role.
func isAdmin(a domain.Actor) bool {
	if !a.IsAuthenticated() {
		return false
	}
	if a.IsSuperuser {
		return true
	}
	switch a.Role {
	case domain.UserRoleAdmin:
		return true
	case domain.UserRoleModerator, domain.UserRoleUser:
		return false
	}
	return false
}

// isModerator reports whether the actor may manage other users' reviews and comments.
func isModerator(a domain.Actor) bool {
	if !a.IsAuthenticated() {
		return false
	}
	if a.IsSuperuser {
		return true
	}
	switch a.Role {
	case domain.UserRoleAdmin, domain.UserRoleModerator:
		return true
	case domain.UserRoleUser:
		return false
	}
	return false
}

func requireAuthenticated(a domain.Actor) error {
	if !a.IsAuthenticated() {
		return domain.ErrUnauthorized
	}
	return nil
}

func requireAdmin(a domain.Actor) error {
	if err := requireAuthenticated(a); err != nil {
		return err
	}
	if !isAdmin(a) {
		return domain.ErrForbidden
	}
	return nil
}

// Taxonomy guards categories and genres. Anyone may list; only admins create
// or delete. Per-object retrieve and update are not exposed.
func Taxonomy(a domain.Actor, action Action) error {
	switch action {
	case ActionList:
		return nil
	case ActionCreate, ActionDelete:
		return requireAdmin(a)
	case ActionRetrieve, ActionUpdate:
		return domain.ErrMethodNotAllowed
	}
	return domain.ErrMethodNotAllowed
}

// Titles guards titles: reads are open, writes need an admin.
func Titles(a domain.Actor, action Action) error {
	if action.IsSafe() {
		return nil
	}
	return requireAdmin(a)
}

// Discussion guards the review and comment collections before any object is
// loaded. Reads are open, creation needs an authenticated user. Update and
// delete pass here and are decided by DiscussionObject.
func Discussion(a domain.Actor, action Action) error {
	switch action {
	case ActionList, ActionRetrieve:
		return nil
	case ActionCreate, ActionUpdate, ActionDelete:
		return requireAuthenticated(a)
	}
	return domain.ErrMethodNotAllowed
}

// DiscussionObject guards a loaded review or comment written by authorID.
// Moderators and admins may change any object; other users only their own.
// Both update and delete require ownership.
func DiscussionObject(a domain.Actor, action Action, authorID uuid.UUID) error {
	if action.IsSafe() {
		return nil
	}
	if err := requireAuthenticated(a); err != nil {
		return err
	}
	if isModerator(a) {
		return nil
	}
	switch action {
	case ActionUpdate, ActionDelete:
		if a.Owns(authorID) {
			return nil
		}
		return domain.ErrForbidden
	case ActionCreate:
		return nil
	}
	return domain.ErrForbidden
}

// Users guards the user administration endpoints: every verb needs an admin.
func Users(a domain.Actor, _ Action) error {
	return requireAdmin(a)
}

// Me guards the self-service profile: any authenticated user may read and
// partially update their own record. Nothing else is exposed.
func Me(a domain.Actor, action Action) error {
	switch action {
	case ActionRetrieve, ActionUpdate:
		return requireAuthenticated(a)
	case ActionList, ActionCreate, ActionDelete:
		return domain.ErrMethodNotAllowed
	}
	return domain.ErrMethodNotAllowed
}

// CanChangeOwnRole reports whether a self-service update may include the role field.
func CanChangeOwnRole(a domain.Actor) bool {
	return isAdmin(a)
}
