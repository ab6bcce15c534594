package override

// Channel names one theme-controlled value that an event override can
// patch. The set is closed; the compositor iterates AllChannels with an
// exhaustive switch in its apply/restore step.
type Channel uint8

const (
	ChannelGrid Channel = iota
	ChannelStarfield
	ChannelRain
	ChannelParticles
	ChannelMatrix
	ChannelShape
	ChannelSprite
	ChannelCursorColor
	ChannelCursorShape
	ChannelForeground
	ChannelBackground
	ChannelTextShadow
	ChannelFlash
)

// AllChannels lists every effect channel in apply order
var AllChannels = [...]Channel{
	ChannelGrid,
	ChannelStarfield,
	ChannelRain,
	ChannelParticles,
	ChannelMatrix,
	ChannelShape,
	ChannelSprite,
	ChannelCursorColor,
	ChannelCursorShape,
	ChannelForeground,
	ChannelBackground,
	ChannelTextShadow,
	ChannelFlash,
}

func (c Channel) String() string {
	switch c {
	case ChannelGrid:
		return "grid"
	case ChannelStarfield:
		return "starfield"
	case ChannelRain:
		return "rain"
	case ChannelParticles:
		return "particles"
	case ChannelMatrix:
		return "matrix"
	case ChannelShape:
		return "shape"
	case ChannelSprite:
		return "sprite"
	case ChannelCursorColor:
		return "cursor-color"
	case ChannelCursorShape:
		return "cursor-shape"
	case ChannelForeground:
		return "foreground"
	case ChannelBackground:
		return "background"
	case ChannelTextShadow:
		return "text-shadow"
	case ChannelFlash:
		return "flash"
	default:
		return "unknown"
	}
}

// ChannelSet tracks which channels currently diverge from the baseline
// theme, so the compositor knows when a restore write is owed. Only the
// compositor mutates it.
type ChannelSet struct {
	set map[Channel]struct{}
}

// NewChannelSet creates an empty set
func NewChannelSet() *ChannelSet {
	return &ChannelSet{set: make(map[Channel]struct{})}
}

// Add marks a channel as patched
func (s *ChannelSet) Add(c Channel) {
	s.set[c] = struct{}{}
}

// Remove clears a channel's patched mark
func (s *ChannelSet) Remove(c Channel) {
	delete(s.set, c)
}

// Contains reports whether a channel is currently patched
func (s *ChannelSet) Contains(c Channel) bool {
	_, ok := s.set[c]
	return ok
}

// Len returns the number of patched channels
func (s *ChannelSet) Len() int {
	return len(s.set)
}
