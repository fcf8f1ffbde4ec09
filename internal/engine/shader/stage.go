package shader

// Stage identifies one step of the programmable pipeline.
type Stage int

const (
	Vertex Stage = iota
	Fragment
	Geometry
	TessControl
	TessEvaluation
	Compute
)

var stageNames = [...]string{
	Vertex:         "vertex",
	Fragment:       "fragment",
	Geometry:       "geometry",
	TessControl:    "tess-control",
	TessEvaluation: "tess-evaluation",
	Compute:        "compute",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return "unknown"
	}
	return stageNames[s]
}

// Sources holds the source file path of every stage. Empty means unused.
type Sources struct {
	Vertex         string
	Fragment       string
	Geometry       string
	TessControl    string
	TessEvaluation string
	Compute        string
}

// Path returns the configured path for a stage.
func (s Sources) Path(stage Stage) string {
	switch stage {
	case Vertex:
		return s.Vertex
	case Fragment:
		return s.Fragment
	case Geometry:
		return s.Geometry
	case TessControl:
		return s.TessControl
	case TessEvaluation:
		return s.TessEvaluation
	case Compute:
		return s.Compute
	}
	return ""
}

// initOrder is the order Initialize compiles stages in.
var initOrder = []Stage{Vertex, Geometry, TessEvaluation, TessControl, Fragment, Compute}

// Files returns every configured path in compile order.
func (s Sources) Files() []string {
	var files []string
	for _, st := range initOrder {
		if p := s.Path(st); p != "" {
			files = append(files, p)
		}
	}
	return files
}
