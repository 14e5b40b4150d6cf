package program

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Routine that can be executed as part of a program. Routines may
// include HTTP servers or one-shot processing of input. Each routine
// may launch additional routines that run as its siblings.
type Routine func(ctx context.Context, siblingsGroup Group) error

// Group of routines. This interface can be used to launch additional
// routines.
type Group interface {
	Go(routine Routine)
}

type errgroupGroup struct {
	group *errgroup.Group
	ctx   context.Context
}

func (g *errgroupGroup) Go(routine Routine) {
	g.group.Go(func() error {
		return routine(g.ctx, g)
	})
}

// Run a routine and all of its siblings until they have terminated.
// As soon as one of the routines fails, the context that is provided
// to all of them is canceled. The first error is returned.
func Run(ctx context.Context, routine Routine) error {
	group, groupCtx := errgroup.WithContext(ctx)
	g := &errgroupGroup{
		group: group,
		ctx:   groupCtx,
	}
	g.Go(routine)
	return group.Wait()
}
