package shader

// Stage is the pipeline role a shader object fills.
type Stage uint32

const (
	StageNone Stage = iota // sentinel, never a valid stage
	StageVertex
	StageFragment
	StageGeometry
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	case StageGeometry:
		return "geometry"
	default:
		return "none"
	}
}

// NotFound is the location drivers report for an unknown uniform or attribute.
const NotFound int32 = -1
