package abstractsearch

import (
	"fmt"

	"github.com/rs/zerolog"

	"localsearch/internal/observer"
	"localsearch/internal/solution"
)

// NewLoggingListener builds an observer.Listener that logs one structured
// line per Notify through logger, tagged with the search's ID so separate
// concurrent runs stay distinguishable in a shared log stream.
func NewLoggingListener[C solution.Scalar](logger zerolog.Logger) *observer.LoggingListener[*Search[C]] {
	return observer.NewLoggingListener(logger, func(s *Search[C]) observer.LogEvent {
		fields := map[string]any{
			"search_id": s.ID.String(),
			"iteration": s.Iteration,
			"step":      s.Step.String(),
			"cost":      s.Cost(),
		}
		if s.CurrentMove != nil {
			if str, ok := s.CurrentMove.(fmt.Stringer); ok {
				fields["move"] = str.String()
			}
		}
		return observer.LogEvent{Message: "search iteration", Fields: fields}
	})
}
