package handlers

import (
	"HomeBoxed/internal/services"
	"fmt"
	"github.com/spf13/cobra"
	"io"
	"os"
	"os/signal"
	"syscall"
)

type JanitorHandler struct {
	janitor *services.Janitor
}

func NewJanitorHandler(janitor *services.Janitor) *JanitorHandler {
	return &JanitorHandler{janitor: janitor}
}

func (h *JanitorHandler) Clean(c *cobra.Command, args []string) error {
	purged, err := h.janitor.CleanNow()
	if err != nil {
		return err
	}
	return respond(c, map[string]interface{}{"purged": purged}, func(w io.Writer) {
		fmt.Fprintf(w, "Purged %d deleted records\n", purged)
	})
}

// Watch purges once right away, then on the schedule until interrupted.
func (h *JanitorHandler) Watch(c *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := h.janitor.StartCleanCycle(); err != nil {
		return err
	}
	if err := h.janitor.ForceStartCleanCycle(); err != nil {
		h.janitor.StopClean()
		return err
	}
	fmt.Fprintln(c.ErrOrStderr(), "janitor running, press Ctrl+C to stop")
	<-ctx.Done()
	if h.janitor.IsCleaning() {
		fmt.Fprintln(c.ErrOrStderr(), "waiting for the running purge to finish")
	}
	h.janitor.StopClean()
	return nil
}
