package flow

// ActionKind tags the persistence operation intended for one entity.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionAdded
	ActionUpdated
	ActionDeleted
)

func (k ActionKind) String() string {
	switch k {
	case ActionAdded:
		return "added"
	case ActionUpdated:
		return "updated"
	case ActionDeleted:
		return "deleted"
	default:
		return "none"
	}
}

// EntityAction pairs a domain entity with the operation the materializer
// should apply to it. Entities mint these through their Added/Updated/Deleted
// capability methods; flows never construct them directly.
type EntityAction struct {
	Entity any
	Kind   ActionKind
}

// Added lifts an entity into an insert action. Entity capability methods
// delegate here so the engine stays decoupled from concrete entity types.
func Added(entity any) EntityAction {
	return EntityAction{Entity: entity, Kind: ActionAdded}
}

// Updated lifts an entity into an update action.
func Updated(entity any) EntityAction {
	return EntityAction{Entity: entity, Kind: ActionUpdated}
}

// Deleted lifts an entity into a delete action.
func Deleted(entity any) EntityAction {
	return EntityAction{Entity: entity, Kind: ActionDeleted}
}

// IsNone reports whether the action is the per-slot identity and carries
// nothing to apply.
func (a EntityAction) IsNone() bool {
	return a.Kind == ActionNone || a.Entity == nil
}
