package cli

import (
	"context"
	"fmt"

	"campuscli/internal/client/poll"
)

// Watch refreshes the occupancy dashboard on the configured interval
// until the user presses Enter or the context is cancelled. A refresh
// still in flight when the next tick fires is never doubled up.
func (a *App) Watch(ctx context.Context) error {
	fmt.Fprintf(a.out, "Watching occupancy every %s, press Enter to stop\n", a.config.PollInterval)

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := poll.New(a.config.PollInterval, a.log, func(ctx context.Context) error {
		if err := a.Libraries(ctx); err != nil {
			return err
		}
		return a.Labs(ctx)
	})

	done := make(chan struct{})
	go func() {
		p.Run(watchCtx)
		close(done)
	}()

	// The Enter listener drains the line only on the Enter-to-stop path;
	// on cancellation the session is shutting down and the REPL exits
	// with it, so no later command can be swallowed.
	enter := make(chan struct{})
	go func() {
		_, _ = a.reader.ReadString('\n')
		close(enter)
	}()

	select {
	case <-enter:
	case <-ctx.Done():
	}
	cancel()
	<-done

	fmt.Fprintln(a.out, "Stopped watching")
	return nil
}
