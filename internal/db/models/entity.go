package models

import "fmt"

// Entity is implemented by every host type that casts or receives votes.
type Entity interface {
	EntityKind() string
	EntityID() int64
}

// Reference is the polymorphic (kind, id) key stored in the votes table.
type Reference struct {
	Kind string `json:"kind"`
	ID   int64  `json:"id"`
}

func Ref(kind string, id int64) Reference {
	return Reference{Kind: kind, ID: id}
}

func RefOf(entity Entity) Reference {
	return Reference{Kind: entity.EntityKind(), ID: entity.EntityID()}
}

func (r Reference) EntityKind() string {
	return r.Kind
}

func (r Reference) EntityID() int64 {
	return r.ID
}

func (r Reference) String() string {
	return fmt.Sprintf("%s#%d", r.Kind, r.ID)
}

// Labeled is a reference loaded together with a display name.
type Labeled struct {
	Reference
	Label string
}

func (l Labeled) String() string {
	if l.Label == "" {
		return l.Reference.String()
	}
	return l.Label
}
