package staticcalls

import "github.com/aster-lang/aster/internal/bir"

// OwnerKind classifies a function's owner for this lowering. The kinds are
// mutually exclusive; a function owner is at most one of these.
type OwnerKind int

const (
	// OwnerNeither: the function is top level or owned by an ordinary
	// class; the lowering leaves it alone.
	OwnerNeither OwnerKind = iota
	// OwnerCompanion: owned by a companion object.
	OwnerCompanion
	// OwnerSingleton: owned by a standalone singleton object.
	OwnerSingleton
)

// Owner is the classified owner of a function. Enclosing is the class the
// companion is attached to, set only for OwnerCompanion.
type Owner struct {
	Kind      OwnerKind
	Object    *bir.Class
	Enclosing *bir.Class
}

// ownerOf classifies fn's owner.
func ownerOf(fn *bir.Function) Owner {
	cls, ok := fn.DeclParent().(*bir.Class)
	if !ok {
		return Owner{Kind: OwnerNeither}
	}
	switch cls.Kind {
	case bir.KindCompanionObject:
		enclosing, _ := cls.DeclParent().(*bir.Class)
		return Owner{Kind: OwnerCompanion, Object: cls, Enclosing: enclosing}
	case bir.KindObject:
		return Owner{Kind: OwnerSingleton, Object: cls}
	default:
		return Owner{Kind: OwnerNeither}
	}
}
