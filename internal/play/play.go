// Package play holds the polymorphic Play record (spec §3) and its
// supporting enumerations (Possession, Down, PlayType, Penalty, Fumble,
// Injury).
//
// Design note (spec §9): the source models play variants through class
// inheritance (RunPlay : Play). This package instead uses one Play
// struct tagged by Type, with optional pointer sub-structs carrying only
// the fields a given PlayType needs (PassDetail, RunDetail, KickDetail) —
// a tagged sum type, not an inheritance hierarchy. Mechanics and
// processors dispatch on Type.
package play

import "github.com/charleschow/gridiron-sim/internal/player"

// Possession identifies which side has the ball, or neither (pre-snap /
// dead-ball bookkeeping).
type Possession int

const (
	PossessionNone Possession = iota
	PossessionHome
	PossessionAway
)

// Opponent returns the other side, or PossessionNone for PossessionNone.
func (p Possession) Opponent() Possession {
	switch p {
	case PossessionHome:
		return PossessionAway
	case PossessionAway:
		return PossessionHome
	default:
		return PossessionNone
	}
}

// Down is the attempt number within a four-down series, or None when not
// applicable (kickoffs, extra points).
type Down int

const (
	DownNone Down = iota
	First
	Second
	Third
	Fourth
)

// Next returns the following down, or DownNone past Fourth (the caller
// is responsible for detecting turnover-on-downs before calling this).
func (d Down) Next() Down {
	if d == DownNone || d == Fourth {
		return DownNone
	}
	return d + 1
}

// Type enumerates the play types spec §3 names.
type Type int

const (
	TypeRun Type = iota
	TypePass
	TypeFieldGoal
	TypePunt
	TypeKickoff
	TypeSpike
	TypeKneel
)

func (t Type) String() string {
	switch t {
	case TypeRun:
		return "Run"
	case TypePass:
		return "Pass"
	case TypeFieldGoal:
		return "FieldGoal"
	case TypePunt:
		return "Punt"
	case TypeKickoff:
		return "Kickoff"
	case TypeSpike:
		return "Spike"
	case TypeKneel:
		return "Kneel"
	default:
		return "Unknown"
	}
}

// PenaltyName is a closed enumeration of penalty types (spec §3/§4.5).
type PenaltyName string

const (
	PenaltyDefensiveHolding      PenaltyName = "Defensive Holding"
	PenaltyOffensiveHolding      PenaltyName = "Offensive Holding"
	PenaltyRoughingThePasser     PenaltyName = "Roughing the Passer"
	PenaltyRoughingTheKicker     PenaltyName = "Roughing the Kicker"
	PenaltyPassInterferenceDef   PenaltyName = "Defensive Pass Interference"
	PenaltyPassInterferenceOff   PenaltyName = "Offensive Pass Interference"
	PenaltyFalseStart            PenaltyName = "False Start"
	PenaltyOffside               PenaltyName = "Offside"
	PenaltyDelayOfGame           PenaltyName = "Delay of Game"
	PenaltyUnnecessaryRoughness  PenaltyName = "Unnecessary Roughness"
	PenaltyIntentionalGrounding  PenaltyName = "Intentional Grounding"
	PenaltyIllegalBlock          PenaltyName = "Illegal Block in the Back"
	PenaltyFacemask              PenaltyName = "Facemask"
)

// AutomaticFirstDownPenalties is the fixed enumeration of penalties that
// always carry an automatic first down when accepted (spec §4.5).
var AutomaticFirstDownPenalties = map[PenaltyName]bool{
	PenaltyDefensiveHolding:    true,
	PenaltyRoughingThePasser:   true,
	PenaltyPassInterferenceDef: true,
	PenaltyRoughingTheKicker:   true,
}

// Occurrence is when a penalty happened relative to the play it's
// attached to.
type Occurrence int

const (
	Before Occurrence = iota
	During
	After
)

// Penalty records a single called penalty (spec §3). Accepted is a
// pointer so "not yet decided" (nil) is distinguishable from a decided
// false — PenaltyDecisionEngine is the only thing that sets it.
type Penalty struct {
	Name      PenaltyName
	Yards     int
	CalledOn  Possession
	Occurred  Occurrence
	Accepted  *bool
}

// Fumble records a single fumble event within a play.
type Fumble struct {
	LostBy         *player.Player
	RecoveredBy    *player.Player
	RecoveringSide Possession
	OutOfBounds    bool
}

// Injury records a player leaving a play with an injury flag. Generation
// of injuries is out of scope (spec §1); this struct exists only so the
// engine has somewhere to increment an injury counter if a caller wires
// one in later.
type Injury struct {
	Player  *player.Player
	Severity string
}

// Completion is the explicit pass-result state spec §9 calls for, to
// resolve the flagged validator bug where a 0-yard completion is
// misclassified as an incompletion by inferring from YardsGained alone.
type Completion int

const (
	CompletionNone Completion = iota // not a pass, or no result yet
	Complete
	Incomplete
	Intercepted
)

// PassDetail carries pass-play-specific fields.
type PassDetail struct {
	IsSpike    bool
	PassType   int // distributions.PassType, stored as int so this package does not import distributions
	AirYards   int
	YAC        int
	Completion Completion
	Sacked     bool
	Passer     *player.Player
	Target     *player.Player
	Intercepts *player.Player // defender who intercepted, if any
}

// RunDetail carries run-play-specific fields.
type RunDetail struct {
	IsKneel     bool
	BrokeTackle bool
	Breakaway   bool
	Carrier     *player.Player
}

// ReturnSegment is one leg of a kick/punt return.
type ReturnSegment struct {
	Yards    int
	Returner *player.Player
}

// KickDetail carries field-goal/punt/kickoff-specific fields.
type KickDetail struct {
	Kicker        *player.Player
	Punter        *player.Player
	Distance      int
	HangTime      float64
	Blocked       bool
	Good          bool // field goal made
	MissDirection string
	Touchback     bool
	FairCatch     bool
	Downed        bool
	OutOfBounds   bool
	Onside        bool
	Return        *ReturnSegment
}

// Play is the single tagged record every mechanic writes into and every
// processor reads from. It is constructed in Pre-play, mutated through
// the pipeline, and frozen once appended to Game.Plays (spec §3).
//
// Play references players only by back-reference (player lifetime is
// the Team's, spec §9) and never references Game directly, breaking the
// Play<->Game cycle the source has: the play-result processor takes Game
// and Play as separate arguments instead.
type Play struct {
	Type      Type
	Possession Possession
	Down      Down
	YardsToGo int

	StartFieldPosition int
	EndFieldPosition   int
	YardsGained        int
	ElapsedTime        float64

	GoodSnap         bool
	ClockStopped     bool
	PossessionChange bool
	IsTouchdown      bool
	IsSafety         bool
	IsTwoPointConversion bool

	QuarterExpired bool
	HalfExpired    bool

	Penalties []Penalty
	Fumbles   []Fumble
	Injuries  []Injury

	OffensePlayersOnField []*player.Player
	DefensePlayersOnField []*player.Player

	Pass *PassDetail
	Run  *RunDetail
	Kick *KickDetail
}

// New constructs a Play in the given possession/down/situation, with no
// type-specific sub-data populated yet — the mechanic fills that in.
func New(t Type, possession Possession, down Down, yardsToGo, startFieldPosition int) *Play {
	return &Play{
		Type:               t,
		Possession:         possession,
		Down:               down,
		YardsToGo:          yardsToGo,
		StartFieldPosition: startFieldPosition,
		EndFieldPosition:   startFieldPosition,
	}
}

// IsComplete reports whether a pass play ended in a completion, using the
// explicit Completion state rather than inferring from yardage (the
// spec §9 fix).
func (p *Play) IsComplete() bool {
	return p.Pass != nil && p.Pass.Completion == Complete
}
