package builder

import (
	kerrors "github.com/asm-nop/proost/internal/errors"
	kernel "github.com/asm-nop/proost/internal/kernel"
)

// LevelBuilder resolves named universe levels against a LevelEnvironment
// and interns them through arena, mirroring TermBuilder's role on the
// term side.
type LevelBuilder struct {
	arena *kernel.Arena
	env   *LevelEnvironment
}

// NewLevelBuilder returns a builder over arena resolving names in env.
func NewLevelBuilder(arena *kernel.Arena, env *LevelEnvironment) *LevelBuilder {
	return &LevelBuilder{arena: arena, env: env}
}

// Zero builds level 0.
func (b *LevelBuilder) Zero() kernel.Level {
	return b.arena.LevelZero()
}

// Var resolves name to its LevelVar, failing with ConstNotFound if name
// isn't one of this builder's declared universe parameters.
func (b *LevelBuilder) Var(name string) (kernel.Level, error) {
	idx, ok := b.env.Resolve(name)
	if !ok {
		return nil, kerrors.ConstNotFound(name)
	}
	return b.arena.LevelVar(idx), nil
}

// Succ builds l + 1.
func (b *LevelBuilder) Succ(l kernel.Level) kernel.Level {
	return b.arena.LevelSucc(l)
}

// Add builds l + k.
func (b *LevelBuilder) Add(l kernel.Level, k uint32) kernel.Level {
	return b.arena.LevelAdd(l, k)
}

// Max builds max(l, r).
func (b *LevelBuilder) Max(l, r kernel.Level) kernel.Level {
	return b.arena.LevelMax(l, r)
}

// IMax builds imax(l, r).
func (b *LevelBuilder) IMax(l, r kernel.Level) kernel.Level {
	return b.arena.LevelIMax(l, r)
}
