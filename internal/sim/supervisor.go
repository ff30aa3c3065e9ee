package sim

import (
	"context"

	"github.com/rs/zerolog/log"
	tomb "gopkg.in/tomb.v2"
)

// Task is a long-running collaborator of the engine. Tasks talk to the
// book only through its public API and must return promptly once their
// context is done.
type Task interface {
	Name() string
	Run(ctx context.Context) error
}

// Supervisor runs a set of tasks under one tomb: if any task fails, the
// rest are signalled to die and the first error is returned.
type Supervisor struct {
	tasks []Task
}

func NewSupervisor(tasks ...Task) *Supervisor {
	return &Supervisor{tasks: tasks}
}

func (s *Supervisor) Run(ctx context.Context) error {
	t, ctx := tomb.WithContext(ctx)

	for _, task := range s.tasks {
		t.Go(func() error {
			log.Info().Str("task", task.Name()).Msg("task starting")
			err := task.Run(ctx)
			if err != nil {
				log.Error().Err(err).Str("task", task.Name()).Msg("task failed")
			}
			return err
		})
	}

	return t.Wait()
}
