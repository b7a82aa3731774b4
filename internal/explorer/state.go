package explorer

import "github.com/emiliopalmerini/genex/internal/domain"

// Fixed user-facing failure messages, one per stream.
const (
	ErrFetchDatasets     = "Failed to fetch datasets. Please try again."
	ErrAnalyzeExpression = "Failed to analyze gene expression."
	ErrPredictHealth     = "Failed to predict gene health status."
)

// Mode is the single presentation state of a stream.
type Mode int

const (
	ModeLoading Mode = iota
	ModeFailed
	ModeEmpty
	ModeReady
)

func (m Mode) String() string {
	switch m {
	case ModeLoading:
		return "loading"
	case ModeFailed:
		return "failed"
	case ModeEmpty:
		return "empty"
	case ModeReady:
		return "ready"
	}
	return "unknown"
}

// Stream is the request state of one backend channel.
// Loading and a non-empty Err are never both set.
type Stream[T any] struct {
	Loading bool
	Err     string
	Value   T
	Present bool
}

// Mode resolves the stream in priority order: loading, failed, empty, ready.
func (s Stream[T]) Mode() Mode {
	switch {
	case s.Loading:
		return ModeLoading
	case s.Err != "":
		return ModeFailed
	case !s.Present:
		return ModeEmpty
	default:
		return ModeReady
	}
}

func (s *Stream[T]) start() {
	s.Loading = true
	s.Err = ""
}

func (s *Stream[T]) succeed(v T) {
	s.Loading = false
	s.Err = ""
	s.Value = v
	s.Present = true
}

func (s *Stream[T]) fail(msg string) {
	s.Loading = false
	s.Err = msg
}

func (s *Stream[T]) reset() {
	var zero T
	s.Err = ""
	s.Value = zero
	s.Present = false
}

// State is a read-only view of the explorer. Snapshot returns copies.
type State struct {
	Query      string
	GeneID     string
	Datasets   Stream[[]domain.Dataset]
	Selected   *domain.Dataset
	Expression Stream[domain.ExpressionResult]
	Prediction Stream[domain.PredictionResult]
}

func (s State) clone() State {
	out := s
	if s.Datasets.Value != nil {
		out.Datasets.Value = append([]domain.Dataset(nil), s.Datasets.Value...)
	}
	if s.Selected != nil {
		d := *s.Selected
		out.Selected = &d
	}
	return out
}
